package img2ascii

import (
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

const (
	// FontGoMono selects the embedded Go Mono TrueType font.
	FontGoMono = "gomono"
	// FontBasic selects the built-in 7x13 bitmap face.
	FontBasic = "basic"

	// DefaultFontSize is the TrueType size in points at 72 DPI.
	DefaultFontSize = 12.0
)

// Typesetter draws text-art pages as images with a monospace font. Every
// ramp glyph is rasterized once into a coverage mask the size of one
// character cell; pages are then assembled by stamping masks.
type Typesetter struct {
	name  string
	cellW int
	cellH int
	masks map[byte]*image.Alpha

	// Ink colors glyph coverage and Paper the background. The ramp is
	// ordered by ink density, so dark ink on light paper reads correctly.
	Ink   color.Color
	Paper color.Color
}

// TypesetterOption configures a Typesetter.
type TypesetterOption func(*Typesetter)

// WithColors sets the ink and paper colors.
func WithColors(ink, paper color.Color) TypesetterOption {
	return func(t *Typesetter) {
		t.Ink = ink
		t.Paper = paper
	}
}

func newTypesetter(name string, cellW, cellH int, opts []TypesetterOption) *Typesetter {
	t := &Typesetter{
		name:  name,
		cellW: cellW,
		cellH: cellH,
		masks: make(map[byte]*image.Alpha, len(Ramp)),
		Ink:   color.Black,
		Paper: color.White,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// LoadTypesetter picks a font by name: FontGoMono (or ""), FontBasic, or
// the path of a TrueType file. size is ignored for FontBasic.
func LoadTypesetter(name string, size float64, opts ...TypesetterOption) (*Typesetter, error) {
	switch name {
	case "", FontGoMono:
		return NewTrueTypeTypesetter(FontGoMono, gomono.TTF, size, opts...)
	case FontBasic:
		return NewBasicTypesetter(opts...), nil
	}
	ttf, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read font")
	}
	return NewTrueTypeTypesetter(name, ttf, size, opts...)
}

// NewBasicTypesetter uses basicfont.Face7x13, which needs no font file.
func NewBasicTypesetter(opts ...TypesetterOption) *Typesetter {
	face := basicfont.Face7x13
	t := newTypesetter(FontBasic, face.Advance, face.Height, opts)
	for i := 0; i < len(Ramp); i++ {
		mask := image.NewAlpha(image.Rect(0, 0, t.cellW, t.cellH))
		d := font.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, face.Ascent),
		}
		d.DrawString(Ramp[i : i+1])
		t.masks[Ramp[i]] = mask
	}
	return t
}

// NewTrueTypeTypesetter rasterizes the ramp from TrueType data at size
// points. The cell is the advance of '@' wide and one line high.
func NewTrueTypeTypesetter(name string, ttf []byte, size float64, opts ...TypesetterOption) (*Typesetter, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse font %s", name)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	adv, ok := face.GlyphAdvance('@')
	if !ok {
		return nil, errors.Errorf("font %s has no '@' glyph", name)
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := max(metrics.Height.Ceil(), ascent+metrics.Descent.Ceil())

	t := newTypesetter(name, adv.Ceil(), height, opts)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetSrc(image.Opaque)
	ctx.SetHinting(font.HintingFull)

	for i := 0; i < len(Ramp); i++ {
		mask := image.NewAlpha(image.Rect(0, 0, t.cellW, t.cellH))
		ctx.SetClip(mask.Bounds())
		ctx.SetDst(mask)
		if _, err := ctx.DrawString(Ramp[i:i+1], freetype.Pt(0, ascent)); err != nil {
			return nil, errors.Wrapf(err, "failed to render %q", Ramp[i])
		}
		t.masks[Ramp[i]] = mask
	}
	return t, nil
}

// Name reports the font the typesetter was built from.
func (t *Typesetter) Name() string { return t.name }

// CellSize returns the pixel size of one character cell.
func (t *Typesetter) CellSize() (int, int) { return t.cellW, t.cellH }

// Render draws the page. An empty page renders as one blank row so the
// result is always a valid, encodable image.
func (t *Typesetter) Render(art *Art) *image.RGBA {
	rows := max(art.Height, 1)
	cols := max(art.Width, 1)
	img := image.NewRGBA(image.Rect(0, 0, cols*t.cellW, rows*t.cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(t.Paper), image.Point{}, draw.Src)

	ink := image.NewUniform(t.Ink)
	for y, row := range art.Rows {
		for x := 0; x < len(row); x++ {
			mask, ok := t.masks[row[x]]
			if !ok {
				continue
			}
			cell := image.Rect(x*t.cellW, y*t.cellH, (x+1)*t.cellW, (y+1)*t.cellH)
			draw.DrawMask(img, cell, ink, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}
	return img
}

// Coverage returns the number of inked pixels in the mask of glyph g, or
// -1 when g is not in the ramp.
func (t *Typesetter) Coverage(g byte) int {
	mask, ok := t.masks[g]
	if !ok {
		return -1
	}
	n := 0
	for _, a := range mask.Pix {
		if a > 64 {
			n++
		}
	}
	return n
}
