package blobs

import (
	"math"
	"slices"

	"blobsplit/internal/core"
	corerng "blobsplit/pkg/core"

	"go.uber.org/zap"
)

// HandleTap resolves a tap at p against the circles, newest first. The first
// circle containing p is either popped (MaxTier, +PopScore) or replaced by
// SplitCount children one tier smaller. Taps that miss every circle, and taps
// on a finished session, do nothing.
func HandleTap(s *Session, p core.Point) {
	if s.state != Active {
		return
	}
	idx := hitTest(s.circles, p)
	if idx < 0 {
		return
	}
	target := s.circles[idx]
	s.circles = slices.Delete(s.circles, idx, idx+1)

	if target.Tier == MaxTier {
		s.score += PopScore
		s.log.Debug("pop", zap.Int("score", s.score))
		s.hooks.pop()
		return
	}

	s.circles = append(s.circles, splitChildren(target, s.rng)...)
	s.log.Debug("split",
		zap.Int("tier", int(target.Tier)),
		zap.Int("circles", len(s.circles)))
	s.hooks.split(target.Tier)
}

// hitTest returns the index of the most recently added circle containing p, or
// -1 when none does.
func hitTest(circles []Circle, p core.Point) int {
	for i := len(circles) - 1; i >= 0; i-- {
		if circles[i].Contains(p) {
			return i
		}
	}
	return -1
}

// splitChildren spawns SplitCount circles around parent. Each child draws its
// angle, then vx, then vy from rng.
func splitChildren(parent Circle, rng Source) []Circle {
	tier := parent.Tier + 1
	offset := tier.Radius() * SplitOffset
	children := make([]Circle, 0, SplitCount)
	for k := 0; k < SplitCount; k++ {
		angle := corerng.Angle(rng)
		vx := corerng.Symmetric(rng, VelocityRange)
		vy := corerng.Symmetric(rng, VelocityRange)
		children = append(children, Circle{
			X:    parent.X + math.Cos(angle)*offset,
			Y:    parent.Y + math.Sin(angle)*offset,
			VX:   vx,
			VY:   vy,
			Tier: tier,
		})
	}
	return children
}
