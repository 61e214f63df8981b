package img2ascii

import (
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/wbrown/img2ascii/imageutil"
)

const (
	// PreviewCell is the edge length, in pixels, each sample of the resized
	// stage occupies when saved.
	PreviewCell = 8

	// PreviewMax bounds the saved original and grayscale previews. Larger
	// sources are shrunk to fit, keeping their aspect ratio.
	PreviewMax = 1024
)

// Stages are the intermediate bitmaps of a conversion, for display next
// to the text. They are copies; modifying them does not affect the source.
type Stages struct {
	// Original is the source image anchored at the origin, alpha dropped.
	Original *imageutil.RGBAImage
	// Grayscale is the full resolution Rec.709 luma of the source.
	Grayscale *imageutil.GrayImage
	// Resized is the width x height luma grid the glyphs were chosen
	// from. It is nil when the page has no rows.
	Resized *imageutil.GrayImage
}

type preview struct {
	name string
	img  image.Image
}

// BuildStages converts img at width and returns the page together with
// its intermediate bitmaps.
func BuildStages(img image.Image, width int) (*Art, *Stages, error) {
	art, err := Convert(img, width)
	if err != nil {
		return nil, nil, err
	}
	original := imageutil.RGBAImageFromImage(img)
	return art, &Stages{
		Original:  original,
		Grayscale: imageutil.ToLuma(original),
		Resized:   art.Samples,
	}, nil
}

// Save writes original.png, grayscale.png and resized.png into dir,
// creating it if needed. The first two are shrunk to fit PreviewMax. The
// resized grid is enlarged by PreviewCell so single samples remain visible.
func (s *Stages) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create preview directory")
	}

	w, h := imageutil.FitWithin(s.Original.Width(), s.Original.Height(), PreviewMax, PreviewMax)
	original, grayscale := s.Original, s.Grayscale
	if w != original.Width() || h != original.Height() {
		original = imageutil.Resize(original, w, h, imageutil.InterpolationCatmullRom)
		grayscale = imageutil.ResizeGray(grayscale, w, h, imageutil.InterpolationCatmullRom)
	}

	previews := []preview{
		{"original.png", original},
		{"grayscale.png", grayscale},
	}
	if s.Resized != nil {
		previews = append(previews, preview{"resized.png", imageutil.Enlarge(s.Resized, PreviewCell)})
	}

	var g errgroup.Group
	for _, p := range previews {
		p := p
		g.Go(func() error {
			if err := imageutil.SavePNG(p.img, filepath.Join(dir, p.name)); err != nil {
				return errors.Wrapf(err, "failed to save %s preview", p.name)
			}
			return nil
		})
	}
	return g.Wait()
}
