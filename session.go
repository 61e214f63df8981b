package img2ascii

import (
	"context"
	"image"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// MinWidth and MaxWidth bound the width a Session accepts, matching
	// the width slider of the interactive front end.
	MinWidth = 10
	MaxWidth = 200

	// DefaultWidth is the width a new Session starts with.
	DefaultWidth = 100
)

// ErrNoImage is returned when a Session renders before an image is loaded.
var ErrNoImage = errors.New("img2ascii: no image loaded")

// Session keeps the state a front end holds between redraws: the current
// image, the chosen width, and the most recent page and stages. A page is
// only recomputed when the image or the width changes. A Session is safe
// for use by a loader goroutine and a render loop at the same time.
type Session struct {
	log *zap.Logger

	mu     sync.Mutex
	img    image.Image
	width  int
	art    *Art
	stages *Stages
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// WithWidth sets the initial width, clamped to [MinWidth, MaxWidth].
func WithWidth(width int) SessionOption {
	return func(s *Session) {
		s.width = ClampWidth(width)
	}
}

// NewSession creates an empty Session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		log:   zap.NewNop(),
		width: DefaultWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClampWidth limits width to [MinWidth, MaxWidth].
func ClampWidth(width int) int {
	return min(max(width, MinWidth), MaxWidth)
}

// Load pulls an image from src and makes it current. On failure the
// previous image and page are kept.
func (s *Session) Load(ctx context.Context, src ImageSource) error {
	img, err := src.Image(ctx)
	if err != nil {
		s.log.Warn("image load failed, keeping previous image", zap.Error(err))
		return err
	}

	b := img.Bounds()
	s.mu.Lock()
	s.img = img
	s.art, s.stages = nil, nil
	s.mu.Unlock()

	s.log.Info("image loaded",
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))
	return nil
}

// LoadAsync runs Load on a new goroutine and delivers its result on the
// returned channel, which is closed afterwards.
func (s *Session) LoadAsync(ctx context.Context, src ImageSource) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- s.Load(ctx, src)
	}()
	return done
}

// SetWidth changes the output width, clamped to [MinWidth, MaxWidth], and
// returns the width in effect.
func (s *Session) SetWidth(width int) int {
	clamped := ClampWidth(width)
	if clamped != width {
		s.log.Debug("width clamped", zap.Int("requested", width), zap.Int("width", clamped))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if clamped != s.width {
		s.width = clamped
		s.art, s.stages = nil, nil
	}
	return s.width
}

// Width returns the current output width.
func (s *Session) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// Art returns the page for the current image and width, converting only
// if either changed since the last call.
func (s *Session) Art() (*Art, error) {
	art, _, err := s.current()
	return art, err
}

// Stages returns the intermediate bitmaps for the current page.
func (s *Session) Stages() (*Stages, error) {
	_, stages, err := s.current()
	return stages, err
}

func (s *Session) current() (*Art, *Stages, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.img == nil {
		return nil, nil, ErrNoImage
	}
	if s.art != nil {
		return s.art, s.stages, nil
	}

	art, stages, err := BuildStages(s.img, s.width)
	if err != nil {
		s.log.Error("conversion failed", zap.Int("width", s.width), zap.Error(err))
		return nil, nil, err
	}
	if art.Height == 0 {
		s.log.Warn("image too wide for a single row at this width",
			zap.Int("width", s.width))
	}
	s.log.Debug("converted",
		zap.Int("columns", art.Width),
		zap.Int("rows", art.Height))

	s.art, s.stages = art, stages
	return art, stages, nil
}

// Render delivers the current page to every sink in order, stopping at
// the first failure.
func (s *Session) Render(ctx context.Context, sinks ...TextSink) error {
	art, err := s.Art()
	if err != nil {
		return err
	}
	for i, sink := range sinks {
		if err := sink.WriteArt(ctx, art); err != nil {
			return errors.Wrapf(err, "sink %d", i)
		}
	}
	return nil
}
