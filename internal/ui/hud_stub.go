//go:build !ebiten

package ui

import (
	"blobsplit/internal/blobs"
	"blobsplit/internal/core"
)

// Scoreboard is the read-only view of a session the HUD needs.
type Scoreboard interface {
	core.ParameterProvider
	Score() int
	State() blobs.State
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Scoreboard) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
