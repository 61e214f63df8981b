package img2ascii

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/wbrown/img2ascii/imageutil"
)

// TextSink accepts a rendered page: a terminal, a text widget, a file.
type TextSink interface {
	WriteArt(ctx context.Context, art *Art) error
}

// WriterSink writes the plain text page to W.
type WriterSink struct {
	W io.Writer
}

// WriteArt implements TextSink.
func (s WriterSink) WriteArt(ctx context.Context, art *Art) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := art.WriteTo(s.W)
	return errors.Wrap(err, "failed to write art")
}

// FileSink writes the plain text page to a file, replacing it.
type FileSink string

// WriteArt implements TextSink.
func (p FileSink) WriteArt(ctx context.Context, art *Art) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(string(p), []byte(art.String()), 0644); err != nil {
		return errors.Wrap(err, "failed to write art")
	}
	return nil
}

// ImageSink typesets the page and saves it as an image at Path. The
// format follows the extension (see imageutil.SaveImage).
type ImageSink struct {
	Path       string
	Typesetter *Typesetter
}

// WriteArt implements TextSink.
func (s ImageSink) WriteArt(ctx context.Context, art *Art) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Typesetter == nil {
		return errors.New("image sink has no typesetter")
	}
	if err := imageutil.SaveImage(s.Typesetter.Render(art), s.Path); err != nil {
		return errors.Wrapf(err, "failed to save %s", filepath.Base(s.Path))
	}
	return nil
}

// SinkFunc adapts a function to TextSink.
type SinkFunc func(ctx context.Context, art *Art) error

// WriteArt implements TextSink.
func (f SinkFunc) WriteArt(ctx context.Context, art *Art) error {
	return f(ctx, art)
}
