package render

import (
	"fmt"
	"image/color"

	"blobsplit/internal/blobs"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	background = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	tierColors = mustBuildPalette()
)

// Background is the clear colour behind the playfield.
func Background() color.RGBA { return background }

// TierColor returns the fill colour for a tier.
func TierColor(t blobs.Tier) color.RGBA {
	if !t.Valid() {
		return color.RGBA{A: 0xff}
	}
	return tierColors[t]
}

// GameOverDim is how far circles fade toward the background once the game is over.
const GameOverDim = 0.6

// FillColor returns the colour a circle of tier t is painted with in state.
func FillColor(t blobs.Tier, state blobs.State) color.RGBA {
	if state == blobs.GameOver {
		return Dimmed(t, GameOverDim)
	}
	return TierColor(t)
}

// Dimmed blends every tier colour toward the background by amount in [0, 1].
func Dimmed(t blobs.Tier, amount float64) color.RGBA {
	amount = clamp01(amount)
	base := toColorful(TierColor(t))
	bg := toColorful(background)
	return toRGBA(base.BlendRgb(bg, amount))
}

func mustBuildPalette() []color.RGBA {
	palette, err := buildPalette()
	if err != nil {
		panic(err)
	}
	return palette
}

func buildPalette() ([]color.RGBA, error) {
	palette := make([]color.RGBA, blobs.TierCount)
	for t := blobs.MinTier; t <= blobs.MaxTier; t++ {
		c, err := colorful.Hex(t.Color())
		if err != nil {
			return nil, fmt.Errorf("tier %d color: %w", t, err)
		}
		palette[t] = toRGBA(c)
	}
	return palette, nil
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
