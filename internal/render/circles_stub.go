//go:build !ebiten

package render

import "blobsplit/internal/blobs"

// CirclePainter is a no-op placeholder for headless builds.
type CirclePainter struct{}

// NewCirclePainter returns a stub painter in the headless build.
func NewCirclePainter(bool) *CirclePainter { return &CirclePainter{} }

// Draw is a no-op in the headless build.
func (cp *CirclePainter) Draw(any, []blobs.Circle, blobs.State) {}
