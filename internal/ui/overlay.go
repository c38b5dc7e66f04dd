//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"blobsplit/internal/blobs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type circleProvider interface {
	Circles() []blobs.Circle
}

// Overlay draws optional debugging visuals on top of the playfield: a center
// dot and a velocity vector for every circle.
type Overlay struct {
	src   circleProvider
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src circleProvider) *Overlay {
	o := &Overlay{src: src}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay with D.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.src == nil {
		return
	}
	const (
		velocityScale = 24.0
		maxSpeed      = 1.7
		dotSize       = 3.0
		thickness     = 1.5
	)
	for _, c := range o.src.Circles() {
		o.drawPoint(screen, c.X, c.Y, dotSize, color.RGBA{R: 255, G: 255, B: 255, A: 200})
		speed := math.Hypot(c.VX, c.VY)
		if speed < 1e-6 {
			continue
		}
		col := interpolateColor(clamp01(speed / maxSpeed))
		o.drawLine(screen, c.X, c.Y, c.X+c.VX*velocityScale, c.Y+c.VY*velocityScale, thickness, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
