package core

// Point is a location in world coordinates.
type Point struct {
	X float64
	Y float64
}

// Size describes the dimensions of the playfield in world units.
type Size struct {
	W float64
	H float64
}

// Center returns the midpoint of the playfield.
func (s Size) Center() Point {
	return Point{X: s.W / 2, Y: s.H / 2}
}

