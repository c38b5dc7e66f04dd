package blobs

import (
	"slices"

	"blobsplit/internal/core"
	corerng "blobsplit/pkg/core"

	"go.uber.org/zap"
)

// DefaultSeed seeds the random source when no Source option is given.
const DefaultSeed int64 = 1337

// State is the session lifecycle state.
type State uint8

const (
	// Active sessions accept ticks and taps.
	Active State = iota
	// GameOver is entered when two tier-0 circles touch. Only Reset leaves it.
	GameOver
)

// String returns a human readable name for the state.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Source supplies uniform random values in [0, 1) for split generation.
type Source interface {
	Float64() float64
}

// Session owns the circles, score and state of one game. It is not safe for
// concurrent use; ticks, taps and rescales must be serialized by the caller.
type Session struct {
	circles []Circle
	score   int
	state   State
	bounds  core.Size

	rng   Source
	log   *zap.Logger
	hooks Hooks
}

// Option configures a Session.
type Option func(*Session)

// WithSource injects the random source used for splits.
func WithSource(src Source) Option {
	return func(s *Session) {
		if src != nil {
			s.rng = src
		}
	}
}

// WithSeed seeds a deterministic PCG source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = corerng.NewRNG(seed) }
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithHooks registers event callbacks.
func WithHooks(h Hooks) Option {
	return func(s *Session) { s.hooks = h }
}

// NewSession returns an active session for a width by height playfield holding
// a single centered tier-0 circle.
func NewSession(width, height float64, opts ...Option) *Session {
	s := &Session{
		bounds: core.Size{W: width, H: height},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = corerng.NewRNG(DefaultSeed)
	}
	s.Reset()
	return s
}

// Reset starts a new game within the current bounds.
func (s *Session) Reset() {
	center := s.bounds.Center()
	s.circles = []Circle{{X: center.X, Y: center.Y, Tier: MinTier}}
	s.score = 0
	s.state = Active
	s.log.Info("new game",
		zap.Float64("width", s.bounds.W),
		zap.Float64("height", s.bounds.H))
	s.hooks.reset()
}

// Tick advances the simulation by one frame: physics once, then merges until
// none remain or the game ends. It does nothing once the game is over.
func (s *Session) Tick() {
	if s.state != Active {
		return
	}
	Step(s)
	resolveMerges(s)
}

// Tap handles a player action at p. A finished session is reset and p is
// ignored.
func (s *Session) Tap(p core.Point) {
	if s.state == GameOver {
		s.Reset()
		return
	}
	HandleTap(s, p)
}

// Rescale resizes the playfield, scaling circle positions so they keep their
// relative placement. Positions are not re-clamped; the next Tick does that.
func (s *Session) Rescale(width, height float64) {
	sx, sy := 1.0, 1.0
	if s.bounds.W != 0 {
		sx = width / s.bounds.W
	}
	if s.bounds.H != 0 {
		sy = height / s.bounds.H
	}
	for i := range s.circles {
		s.circles[i].X *= sx
		s.circles[i].Y *= sy
	}
	s.bounds = core.Size{W: width, H: height}
}

// Circles returns a copy of the circles in insertion order.
func (s *Session) Circles() []Circle { return slices.Clone(s.circles) }

// Len returns the number of circles.
func (s *Session) Len() int { return len(s.circles) }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Bounds returns the playfield size.
func (s *Session) Bounds() core.Size { return s.bounds }
