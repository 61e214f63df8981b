// Package imageutil holds the bitmap plumbing behind text-art conversion:
// RGB and luma buffers, the exact point sampler, grayscale conversion,
// preview scaling and image file I/O.
package imageutil

import (
	"image"
	"image/color"
)

// RGB is an 8-bit per channel color without alpha.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.RGBA.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor returns the straight (non-premultiplied) channels of c.
// Alpha is discarded, so a half transparent red reads as full red.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// RGBAImage wraps image.RGBA. Pixels written through SetRGB are opaque.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// RGBAImageFromImage copies any image.Image into an RGBAImage anchored at
// the origin. Alpha is dropped; see RGBFromColor.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	b := img.Bounds()
	out := NewRGBAImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetRGB(x, y, RGBFromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return out
}

func (img *RGBAImage) Width() int  { return img.Bounds().Dx() }
func (img *RGBAImage) Height() int { return img.Bounds().Dy() }

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB stores c at (x, y) with full opacity.
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// GrayImage wraps image.Gray and holds one luma sample per pixel.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{Gray: image.NewGray(image.Rect(0, 0, width, height))}
}

func (img *GrayImage) Width() int  { return img.Bounds().Dx() }
func (img *GrayImage) Height() int { return img.Bounds().Dy() }

// GetGray returns the luma sample at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.Pix[img.PixOffset(x, y)]
}

// SetGrayValue sets the luma sample at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Pix[img.PixOffset(x, y)] = v
}

// Row returns the samples of row y. The slice aliases the image buffer.
func (img *GrayImage) Row(y int) []uint8 {
	off := img.PixOffset(0, y)
	return img.Pix[off : off+img.Width()]
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// ToRGBA expands the luma samples into an opaque RGBA image, the form
// preview surfaces expect.
func (img *GrayImage) ToRGBA() *RGBAImage {
	out := NewRGBAImage(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x, v := range img.Row(y) {
			out.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return out
}
