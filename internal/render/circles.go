//go:build ebiten

package render

import (
	"blobsplit/internal/blobs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CirclePainter draws session circles in world coordinates, which the app maps
// one-to-one onto the logical screen.
type CirclePainter struct {
	antialias bool
}

// NewCirclePainter constructs a painter.
func NewCirclePainter(antialias bool) *CirclePainter {
	return &CirclePainter{antialias: antialias}
}

// Draw clears dst and paints circles in insertion order so newer circles sit on
// top. Circles fade toward the background once state is GameOver.
func (cp *CirclePainter) Draw(dst *ebiten.Image, circles []blobs.Circle, state blobs.State) {
	dst.Fill(Background())
	for _, c := range circles {
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(c.Radius()), FillColor(c.Tier, state), cp.antialias)
	}
}
