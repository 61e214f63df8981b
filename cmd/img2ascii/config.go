package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wbrown/img2ascii"
)

// config holds the command line settings. Every flag defaults to the
// matching IMG2ASCII_* environment variable when it is set.
type config struct {
	Input    string
	Output   string
	Width    int
	Previews string
	Font     string
	FontSize float64
	Verbose  bool
}

func envString(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

func envInt(env string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(env))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat64(env string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(env), 64)
	if err != nil {
		return fallback
	}
	return v
}

func envBool(env string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(env))
	if err != nil {
		return fallback
	}
	return v
}

// parseConfig parses args (without the program name). Usage and parse
// errors go to stderr.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("img2ascii", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Input, "input", envString("IMG2ASCII_INPUT", ""),
		"Path to the input image file, or - for stdin (required)")
	fs.StringVar(&cfg.Output, "output", envString("IMG2ASCII_OUTPUT", ""),
		"Path to save the output; .png/.jpg/.gif typesets an image, "+
			"anything else writes text (default: stdout)")
	fs.IntVar(&cfg.Width, "width", envInt("IMG2ASCII_WIDTH", img2ascii.DefaultWidth),
		fmt.Sprintf("Output width in characters (%d-%d)",
			img2ascii.MinWidth, img2ascii.MaxWidth))
	fs.StringVar(&cfg.Previews, "previews", envString("IMG2ASCII_PREVIEWS", ""),
		"Directory to write original/grayscale/resized preview PNGs")
	fs.StringVar(&cfg.Font, "font", envString("IMG2ASCII_FONT", img2ascii.FontGoMono),
		"Font for image output: 'gomono', 'basic', or path to a TTF file")
	fs.Float64Var(&cfg.FontSize, "fontsize", envFloat64("IMG2ASCII_FONTSIZE", img2ascii.DefaultFontSize),
		"TrueType font size in points")
	fs.BoolVar(&cfg.Verbose, "verbose", envBool("IMG2ASCII_VERBOSE", false),
		"Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Input == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Input == "" {
		return errors.New("please provide the image using the -input flag")
	}
	if c.Width < img2ascii.MinWidth || c.Width > img2ascii.MaxWidth {
		return errors.Errorf("width %d out of range %d-%d",
			c.Width, img2ascii.MinWidth, img2ascii.MaxWidth)
	}
	if c.FontSize <= 0 {
		return errors.Errorf("font size must be positive, got %g", c.FontSize)
	}
	return nil
}
