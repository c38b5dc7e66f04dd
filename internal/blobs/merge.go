package blobs

import "go.uber.org/zap"

// MergeResult reports the outcome of a single merge pass.
type MergeResult struct {
	Merged   bool
	Terminal bool
}

// ResolveOnePass scans the circles for the first touching pair of equal tier in
// row-major (i, j) order and resolves it. A tier-0 pair ends the session and
// leaves both circles in place. Any other pair is replaced by one circle of the
// next larger tier, appended after the survivors.
func ResolveOnePass(s *Session) MergeResult {
	i, j, ok := findMergePair(s.circles)
	if !ok {
		return MergeResult{}
	}
	a, b := s.circles[i], s.circles[j]
	if a.Tier == MinTier {
		s.state = GameOver
		s.log.Info("game over",
			zap.Int("score", s.score),
			zap.Int("circles", len(s.circles)))
		s.hooks.gameOver(s.score)
		return MergeResult{Terminal: true}
	}

	merged := Circle{
		X:    (a.X + b.X) / 2,
		Y:    (a.Y + b.Y) / 2,
		VX:   (a.VX + b.VX) / 2,
		VY:   (a.VY + b.VY) / 2,
		Tier: a.Tier - 1,
	}
	next := make([]Circle, 0, len(s.circles)-1)
	for k, c := range s.circles {
		if k == i || k == j {
			continue
		}
		next = append(next, c)
	}
	s.circles = append(next, merged)
	s.score += merged.Tier.MergeScore()

	s.log.Debug("merge",
		zap.Int("from", int(a.Tier)),
		zap.Int("to", int(merged.Tier)),
		zap.Int("score", s.score))
	s.hooks.merge(a.Tier, merged.Tier)
	return MergeResult{Merged: true}
}

// resolveMerges drives ResolveOnePass until a pass merges nothing or the
// session ends. Every merge removes one circle, so the loop runs at most
// len(circles) times.
func resolveMerges(s *Session) {
	for limit := len(s.circles); limit > 0; limit-- {
		res := ResolveOnePass(s)
		if !res.Merged || res.Terminal {
			return
		}
	}
}

func findMergePair(circles []Circle) (int, int, bool) {
	for i := 0; i < len(circles); i++ {
		a := circles[i]
		for j := i + 1; j < len(circles); j++ {
			b := circles[j]
			if a.Tier != b.Tier {
				continue
			}
			if a.touches(b) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
