package blobs

import "blobsplit/internal/core"

// Circle is a single blob. Position and velocity change every tick; the tier is
// fixed for the circle's lifetime.
type Circle struct {
	X, Y   float64
	VX, VY float64
	Tier   Tier
}

// Radius returns the radius derived from the circle's tier.
func (c Circle) Radius() float64 { return c.Tier.Radius() }

// Color returns the display colour derived from the circle's tier.
func (c Circle) Color() string { return c.Tier.Color() }

// Position returns the circle center.
func (c Circle) Position() core.Point { return core.Point{X: c.X, Y: c.Y} }

// Contains reports whether p lies within the circle, boundary included.
func (c Circle) Contains(p core.Point) bool {
	r := c.Radius()
	dx := p.X - c.X
	dy := p.Y - c.Y
	return dx*dx+dy*dy <= r*r
}

// touches reports whether two circles of the same tier overlap or touch.
func (c Circle) touches(o Circle) bool {
	reach := 2 * c.Radius()
	dx := o.X - c.X
	dy := o.Y - c.Y
	return dx*dx+dy*dy <= reach*reach
}
