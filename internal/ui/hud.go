//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"blobsplit/internal/blobs"
	"blobsplit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Scoreboard is the read-only view of a session the HUD needs.
type Scoreboard interface {
	core.ParameterProvider
	Score() int
	State() blobs.State
}

// HUD renders the score, the game over banner and an optional constants panel.
type HUD struct {
	src        Scoreboard
	showParams bool
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src Scoreboard) *HUD {
	return &HUD{src: src}
}

// Update toggles the constants panel with Tab.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.showParams = !h.showParams
	}
}

// Draw paints the HUD over the playfield.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.src == nil {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score: %d", h.src.Score()), face, panelPadding, panelPadding+headerBaseline, color.White)

	if h.showParams {
		h.drawParameters(screen)
	}
	if h.src.State() == blobs.GameOver {
		h.drawGameOver(screen)
	}
}

func (h *HUD) drawGameOver(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, ht := bounds.Dx(), bounds.Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(ht), color.RGBA{A: 153}, false)

	drawCentered(screen, "GAME OVER", w/2, ht/2-bannerGap, color.White)
	drawCentered(screen, "Tap to Restart", w/2, ht/2+bannerGap, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func (h *HUD) drawParameters(screen *ebiten.Image) {
	face := basicfont.Face7x13
	snapshot := h.src.Parameters()
	y := panelPadding + headerBaseline + lineHeight
	for _, group := range snapshot.Groups {
		y += lineHeight / 2
		text.Draw(screen, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, param := range group.Params {
			line := fmt.Sprintf("  %s: %s", param.Label, param.Value)
			text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			y += lineHeight
		}
	}
}

func drawCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2
	y := cy + b.Dy()/2
	text.Draw(screen, s, face, x, y, clr)
}

const (
	panelPadding   = 16
	headerBaseline = 13
	lineHeight     = 16
	bannerGap      = 12
)
