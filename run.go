package parallax

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS overlays FPS, TPS, and the scroll offset and progress.
	ShowFPS bool
	// ExitOnScriptDone ends Run once an attached ScrollScript has finished.
	ExitOnScriptDone bool
}

// Run opens a window and drives c with the Ebitengine game loop until the
// window is closed. Real wheel and keyboard input is enabled.
func Run(c *Container, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	c.InputEnabled = true
	return ebiten.RunGame(&game{c: c, cfg: cfg})
}

// game adapts a Container to ebiten.Game.
type game struct {
	c   *Container
	cfg RunConfig
}

func (g *game) Update() error {
	g.c.Update()
	if g.cfg.ExitOnScriptDone && g.c.script != nil && g.c.script.Done() {
		logger.Info("scroll script finished", "offset", g.c.ScrollOffset())
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.c.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscroll: %.0f (%.2f)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.c.ScrollOffset(), g.c.Progress()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
