// Command img2ascii converts an image file to text art.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wbrown/img2ascii"
)

// stdin is read when the input is "-".
var stdin io.Reader = os.Stdin

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2ascii: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	start := time.Now()
	session := img2ascii.NewSession(
		img2ascii.WithLogger(log),
		img2ascii.WithWidth(cfg.Width),
	)
	if err := session.Load(ctx, inputSource(cfg.Input)); err != nil {
		return err
	}

	sink, err := outputSink(cfg, stdout)
	if err != nil {
		return err
	}
	if err := session.Render(ctx, sink); err != nil {
		return err
	}

	if cfg.Previews != "" {
		stages, err := session.Stages()
		if err != nil {
			return err
		}
		if err := stages.Save(cfg.Previews); err != nil {
			return err
		}
		log.Info("previews written", zap.String("dir", cfg.Previews))
	}

	art, _ := session.Art()
	log.Info("done",
		zap.String("input", cfg.Input),
		zap.Int("columns", art.Width),
		zap.Int("rows", art.Height),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func inputSource(input string) img2ascii.ImageSource {
	if input == "-" {
		return img2ascii.ReaderSource{R: stdin, Name: "stdin"}
	}
	return img2ascii.FileSource(input)
}

// imageExts are output extensions that are typeset rather than written as
// text.
var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}

func outputSink(cfg *config, stdout io.Writer) (img2ascii.TextSink, error) {
	if cfg.Output == "" {
		return img2ascii.WriterSink{W: stdout}, nil
	}
	if !imageExts[strings.ToLower(filepath.Ext(cfg.Output))] {
		return img2ascii.FileSink(cfg.Output), nil
	}
	ts, err := img2ascii.LoadTypesetter(cfg.Font, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	return img2ascii.ImageSink{Path: cfg.Output, Typesetter: ts}, nil
}
