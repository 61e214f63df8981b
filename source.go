package img2ascii

import (
	"bytes"
	"context"
	"image"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/wbrown/img2ascii/imageutil"
)

// ImageSource yields a decoded image on demand. Front ends implement it
// over file dialogs, uploads or clipboards; the converter never sees how
// the image arrived.
type ImageSource interface {
	Image(ctx context.Context) (image.Image, error)
}

// FileSource reads and decodes an image file.
type FileSource string

// Image implements ImageSource.
func (p FileSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(string(p))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}
	defer f.Close()
	return decodeSource(f, string(p))
}

// BytesSource decodes an image already held in memory, such as the
// contents of a picked or uploaded file.
type BytesSource []byte

// Image implements ImageSource.
func (b BytesSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decodeSource(bytes.NewReader(b), "in-memory image")
}

// ReaderSource decodes an image from a stream. It can be read once.
type ReaderSource struct {
	R    io.Reader
	Name string
}

// Image implements ImageSource.
func (r ReaderSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := r.Name
	if name == "" {
		name = "stream"
	}
	return decodeSource(r.R, name)
}

// StaticSource hands out an already decoded image.
type StaticSource struct {
	Img image.Image
}

// Image implements ImageSource.
func (s StaticSource) Image(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Img == nil || s.Img.Bounds().Empty() {
		return nil, errors.Wrap(ErrUnsupportedImage, "empty image")
	}
	return s.Img, nil
}

func decodeSource(r io.Reader, name string) (image.Image, error) {
	img, _, err := imageutil.DecodeImage(r)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedImage, "%s: %v", name, err)
	}
	if img.Bounds().Empty() {
		return nil, errors.Wrapf(ErrUnsupportedImage, "%s: zero-area image", name)
	}
	return img, nil
}
