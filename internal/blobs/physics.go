package blobs

import "math"

// Step advances every circle by its velocity and reflects it off the walls.
// Each axis is resolved independently.
func Step(s *Session) {
	w, h := s.bounds.W, s.bounds.H
	for i := range s.circles {
		c := &s.circles[i]
		c.X += c.VX
		c.Y += c.VY
		r := c.Radius()
		c.X, c.VX = reflect(c.X, c.VX, r, w)
		c.Y, c.VY = reflect(c.Y, c.VY, r, h)
	}
}

func reflect(pos, vel, r, limit float64) (float64, float64) {
	switch {
	case pos-r < 0:
		return r, math.Abs(vel)
	case pos+r > limit:
		return limit - r, -math.Abs(vel)
	}
	return pos, vel
}
