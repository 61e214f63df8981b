// Package img2ascii renders raster images as text art. Each output
// character stands for one nearest-neighbor sample of the source, chosen
// from Ramp by the sample's luminance.
//
// The conversion itself is a pure function, Convert. Everything that
// moves images in and text out (files, previews, typesetting) sits behind
// the ImageSource and TextSink interfaces, and Session holds the state an
// interactive front end keeps between redraws.
package img2ascii

import (
	"image"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/wbrown/img2ascii/imageutil"
)

// CharAspect is the height-to-width ratio of a terminal character cell.
// Output rows are divided by it so the art is not stretched vertically.
const CharAspect = 2

var (
	// ErrInvalidWidth is returned for an output width below one column.
	ErrInvalidWidth = errors.New("img2ascii: width must be at least 1")

	// ErrDegenerateImage is returned for a nil or zero-area source image.
	ErrDegenerateImage = errors.New("img2ascii: source image has no pixels")

	// ErrUnsupportedImage is returned by image sources when the input
	// cannot be decoded.
	ErrUnsupportedImage = errors.New("img2ascii: unsupported image")
)

// Art is a rendered text-art page.
type Art struct {
	// Width is the number of glyphs in every row.
	Width int
	// Height is the number of rows. It may be zero for very wide sources.
	Height int
	// Rows holds the glyph rows without line terminators.
	Rows []string
	// Samples is the width x height luma grid the rows were quantized
	// from, or nil when Height is zero.
	Samples *imageutil.GrayImage
}

// String joins the rows, terminating every row (the last included) with
// a newline.
func (a *Art) String() string {
	var b strings.Builder
	b.Grow((a.Width + 1) * a.Height)
	for _, row := range a.Rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the page to w in the form returned by String.
func (a *Art) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}

// OutputSize returns the glyph grid for a source of srcWidth x srcHeight
// pixels rendered at width columns:
//
//	height = floor(width * (srcHeight / srcWidth) / CharAspect)
//
// evaluated exactly in integer arithmetic. height is zero when the source
// is too wide and short for a single row at this width.
func OutputSize(srcWidth, srcHeight, width int) (int, int, error) {
	if width < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidWidth, "got %d", width)
	}
	if srcWidth < 1 || srcHeight < 1 {
		return 0, 0, errors.Wrapf(ErrDegenerateImage, "%dx%d", srcWidth, srcHeight)
	}
	height := int64(width) * int64(srcHeight) / (CharAspect * int64(srcWidth))
	return width, int(height), nil
}

// Convert renders img as text art width glyphs wide. The source is point
// sampled to width x height (see OutputSize and imageutil.SampleNearest),
// reduced to Rec.709 luma with alpha ignored, and each sample is replaced
// by GlyphFor(sample).
//
// When the computed height is zero Convert returns an empty page rather
// than an error. img is only read.
func Convert(img image.Image, width int) (*Art, error) {
	if img == nil {
		return nil, errors.Wrap(ErrDegenerateImage, "nil image")
	}
	b := img.Bounds()
	width, height, err := OutputSize(b.Dx(), b.Dy(), width)
	if err != nil {
		return nil, err
	}

	art := &Art{Width: width, Height: height}
	if height == 0 {
		return art, nil
	}

	art.Samples = imageutil.ToLuma(imageutil.SampleNearest(img, width, height))
	art.Rows = glyphRows(art.Samples)
	return art, nil
}

// ImageToASCII is Convert returning the page as a string.
func ImageToASCII(img image.Image, width int) (string, error) {
	art, err := Convert(img, width)
	if err != nil {
		return "", err
	}
	return art.String(), nil
}

// glyphRows quantizes every row of samples into ramp glyphs.
func glyphRows(samples *imageutil.GrayImage) []string {
	rows := make([]string, samples.Height())
	buf := make([]byte, samples.Width())
	for y := range rows {
		for x, p := range samples.Row(y) {
			buf[x] = GlyphFor(p)
		}
		rows[y] = string(buf)
	}
	return rows
}
