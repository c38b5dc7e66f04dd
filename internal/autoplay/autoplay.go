package autoplay

import (
	"context"
	"fmt"

	"blobsplit/internal/blobs"
	"blobsplit/internal/core"
	corerng "blobsplit/pkg/core"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ctxCheckInterval is how many ticks run between context checks.
const ctxCheckInterval = 256

// Result summarizes one seeded run.
type Result struct {
	Seed        int64
	Ticks       int
	Games       int
	Score       int
	BestScore   int
	Merges      int
	Splits      int
	Pops        int
	PeakCircles int
	GameOver    bool
}

// Run plays a single session for cfg.Ticks ticks. The session and the bot's
// target choice are both seeded from seed, so a run is reproducible.
func Run(ctx context.Context, cfg Config, seed int64, log *zap.Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	res := Result{Seed: seed}
	hooks := blobs.Hooks{
		Merge: func(from, to blobs.Tier) { res.Merges++ },
		Split: func(blobs.Tier) { res.Splits++ },
		Pop:   func() { res.Pops++ },
		GameOver: func(score int) {
			res.Games++
			if score > res.BestScore {
				res.BestScore = score
			}
		},
	}
	session := blobs.NewSession(cfg.Width, cfg.Height,
		blobs.WithSeed(seed),
		blobs.WithHooks(hooks),
		blobs.WithLogger(log.With(zap.Int64("seed", seed))),
	)
	bot := newBot(cfg.Strategy, seed)

	for tick := 0; tick < cfg.Ticks; tick++ {
		if tick%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("seed %d at tick %d: %w", seed, tick, err)
			}
		}
		if session.State() == blobs.GameOver {
			if !cfg.Restart {
				break
			}
			session.Tap(session.Bounds().Center())
		} else if tick%cfg.TapEvery == 0 {
			if p, ok := bot.choose(session.Circles()); ok {
				session.Tap(p)
			}
		}
		session.Tick()
		res.Ticks++
		if n := session.Len(); n > res.PeakCircles {
			res.PeakCircles = n
		}
	}

	res.Score = session.Score()
	res.GameOver = session.State() == blobs.GameOver
	if res.Score > res.BestScore {
		res.BestScore = res.Score
	}
	return res, nil
}

// RunMany runs one session per seed on up to workers goroutines. Results are
// returned in seed order. The first error cancels the remaining runs.
func RunMany(ctx context.Context, cfg Config, seeds []int64, workers int, log *zap.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := Run(ctx, cfg, seed, log)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Seeds returns count consecutive seeds starting at first.
func Seeds(first int64, count int) []int64 {
	if count <= 0 {
		return nil
	}
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}

// bot picks tap targets for a strategy.
type bot struct {
	strategy Strategy
	rng      *corerng.RNG
}

func newBot(strategy Strategy, seed int64) *bot {
	// Offset the seed so the bot does not replay the session's split draws.
	return &bot{strategy: strategy, rng: corerng.NewRNG(seed ^ 0x5eed)}
}

func (b *bot) choose(circles []blobs.Circle) (p core.Point, ok bool) {
	if len(circles) == 0 {
		return p, false
	}
	switch b.strategy {
	case StrategyNewest:
		return circles[len(circles)-1].Position(), true
	case StrategySmallest:
		best := len(circles) - 1
		for i := len(circles) - 2; i >= 0; i-- {
			if circles[i].Tier > circles[best].Tier {
				best = i
			}
		}
		return circles[best].Position(), true
	case StrategyRandom:
		return circles[b.rng.IntN(len(circles))].Position(), true
	}
	return p, false
}
