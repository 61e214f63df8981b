package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation selects the scaler used for preview bitmaps.
type Interpolation int

const (
	// InterpolationNearest keeps hard sample edges. Used to blow up the
	// sampled luma grid so each cell stays a visible square.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationCatmullRom is the high quality choice for shrinking
	// large sources into thumbnails.
	InterpolationCatmullRom
)

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resize scales an RGBA image to width x height. It is meant for display;
// conversion uses SampleNearest, whose sampling grid is exact.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	interp.scaler().Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGray scales a grayscale image to width x height.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	interp.scaler().Scale(dst.Gray, dst.Bounds(), img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}

// Enlarge scales img by an integer factor with nearest-neighbor. A factor
// below 1 is treated as 1.
func Enlarge(img image.Image, factor int) *RGBAImage {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := NewRGBAImage(b.Dx()*factor, b.Dy()*factor)
	draw.NearestNeighbor.Scale(dst.RGBA, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FitWithin returns the largest size with the aspect ratio of
// (width, height) that fits in maxWidth x maxHeight, never upscaling.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	w, h := maxWidth, height*maxWidth/width
	if h > maxHeight {
		w, h = width*maxHeight/height, maxHeight
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
