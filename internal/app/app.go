//go:build ebiten

package app

import (
	"blobsplit/internal/blobs"
	"blobsplit/internal/core"
	"blobsplit/internal/render"
	"blobsplit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Game adapts a blobs session to the ebiten.Game interface. Logical screen
// coordinates are world coordinates, so cursor and touch positions are passed
// to the session unchanged.
type Game struct {
	session *blobs.Session
	painter *render.CirclePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *zap.Logger

	paused   bool
	tickOnce bool

	layoutW, layoutH int
	touches          []ebiten.TouchID
}

// New constructs a Game from the configuration.
func New(cfg *Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	session := blobs.NewSession(float64(cfg.Width), float64(cfg.Height),
		blobs.WithSeed(cfg.EffectiveSeed()),
		blobs.WithLogger(log.Named("session")),
	)
	return &Game{
		session: session,
		painter: render.NewCirclePainter(cfg.Antialias),
		hud:     ui.NewHUD(session),
		overlay: ui.NewOverlay(session),
		log:     log,
		layoutW: cfg.Width,
		layoutH: cfg.Height,
	}
}

// Reset starts a new game.
func (g *Game) Reset() {
	g.session.Reset()
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	g.applyResize()
	if p, ok := g.pointerTap(); ok {
		g.session.Tap(p)
	}

	g.hud.Update()
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.session.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Circles(), g.session.State())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout records the window size; the session is rescaled on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.layoutW, g.layoutH = outsideWidth, outsideHeight
	}
	return g.layoutW, g.layoutH
}

func (g *Game) applyResize() {
	b := g.session.Bounds()
	w, h := float64(g.layoutW), float64(g.layoutH)
	if b.W == w && b.H == h {
		return
	}
	g.log.Debug("resize",
		zap.Float64("from_w", b.W), zap.Float64("from_h", b.H),
		zap.Float64("to_w", w), zap.Float64("to_h", h))
	g.session.Rescale(w, h)
}

// pointerTap returns the first touch that began this frame, falling back to a
// left click.
func (g *Game) pointerTap() (core.Point, bool) {
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		return core.Point{X: float64(x), Y: float64(y)}, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return core.Point{X: float64(x), Y: float64(y)}, true
	}
	return core.Point{}, false
}
