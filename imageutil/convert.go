package imageutil

// LumaWeights are integer channel weights for grayscale conversion:
//
//	luma = (R*r + G*g + B*b + Bias) / Sum
type LumaWeights struct {
	R, G, B int
	Sum     int
	Bias    int
}

var (
	// BT601 matches OpenCV's COLOR_BGR2GRAY (0.299, 0.587, 0.114), rounded.
	BT601 = LumaWeights{R: 299, G: 587, B: 114, Sum: 1000, Bias: 500}

	// Rec709 is the sRGB luma weighting (0.2126, 0.7152, 0.0722), truncated.
	// Text-art conversion uses it.
	Rec709 = LumaWeights{R: 2126, G: 7152, B: 722, Sum: 10000}
)

// Luma returns the weighted luminance of c.
func (w LumaWeights) Luma(c RGB) uint8 {
	l := (w.R*int(c.R) + w.G*int(c.G) + w.B*int(c.B) + w.Bias) / w.Sum
	if l > 255 {
		l = 255
	}
	return uint8(l)
}

// ToGrayscaleWeighted converts an RGBA image to grayscale with weights w.
func ToGrayscaleWeighted(img *RGBAImage, w LumaWeights) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		row := gray.Row(y)
		for x := 0; x < width; x++ {
			row[x] = w.Luma(img.GetRGB(x, y))
		}
	}
	return gray
}

// ToGrayscale converts an RGBA image to grayscale with BT.601 weights.
func ToGrayscale(img *RGBAImage) *GrayImage {
	return ToGrayscaleWeighted(img, BT601)
}

// ToLuma converts an RGBA image to grayscale with Rec.709 weights.
func ToLuma(img *RGBAImage) *GrayImage {
	return ToGrayscaleWeighted(img, Rec709)
}
