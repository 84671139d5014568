package parallax

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pageFraction is how much of the viewport PageUp/PageDown scrolls.
const pageFraction = 0.9

// processInput consumes one injected wheel event, or reads the real mouse
// wheel and keyboard when InputEnabled is set, and scrolls accordingly.
func (c *Container) processInput() {
	if c.processInjectedInput() {
		return
	}
	if !c.InputEnabled {
		return
	}

	delta := c.wheelDelta(ebiten.Wheel())
	delta += c.keyDelta()
	if delta != 0 {
		c.ScrollBy(delta)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		c.ScrollTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		s := c.ScrollState()
		c.ScrollTo(c.clampScroll(s.ContentExtent))
	}
}

// wheelDelta converts a wheel reading to a scroll delta along the scroll
// axis. Ebitengine reports wheel-down as negative y. Horizontal containers
// accept either wheel axis so a plain mouse can drive them.
func (c *Container) wheelDelta(dx, dy float64) float64 {
	if c.cfg.Orientation == Horizontal {
		if dx != 0 {
			return -dx * c.cfg.WheelStep
		}
		return -dy * c.cfg.WheelStep
	}
	return -dy * c.cfg.WheelStep
}

// keyDelta returns the scroll delta for arrow and page keys pressed this tick.
func (c *Container) keyDelta() float64 {
	back, fwd := ebiten.KeyArrowUp, ebiten.KeyArrowDown
	if c.cfg.Orientation == Horizontal {
		back, fwd = ebiten.KeyArrowLeft, ebiten.KeyArrowRight
	}
	page := c.root.Bounds().Extent(c.cfg.Orientation) * pageFraction

	var d float64
	if inpututil.IsKeyJustPressed(back) {
		d -= c.cfg.WheelStep
	}
	if inpututil.IsKeyJustPressed(fwd) {
		d += c.cfg.WheelStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		d -= page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		d += page
	}
	return d
}
