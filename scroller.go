package parallax

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds an active smooth-scroll tween.
type scrollAnim struct {
	tween *gween.Tween
}

// ScrollTo jumps to offset, truncated to whole pixels, and re-runs the
// engine. Any smooth scroll in progress is cancelled. The offset is not
// clamped; use ScrollBy for bounded, input-style scrolling.
func (c *Container) ScrollTo(offset float64) {
	c.smooth = nil
	c.NotifyScrollChanged(math.Trunc(offset))
}

// ScrollBy scrolls by delta, clamped to the scrollable range [0, content -
// viewport]. Cancels any smooth scroll in progress.
func (c *Container) ScrollBy(delta float64) {
	c.smooth = nil
	c.NotifyScrollChanged(c.clampScroll(c.scroll + delta))
}

// SmoothScrollTo animates the scroll offset to offset over duration seconds.
// The engine runs on every frame of the animation.
func (c *Container) SmoothScrollTo(offset float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	c.smooth = &scrollAnim{
		tween: gween.New(float32(c.scroll), float32(offset), duration, easeFn),
	}
}

// Scrolling reports whether a smooth scroll is in progress.
func (c *Container) Scrolling() bool {
	return c.smooth != nil
}

// updateSmoothScroll advances the smooth-scroll tween. Called from UpdateDT.
func (c *Container) updateSmoothScroll(dt float32) {
	if c.smooth == nil {
		return
	}
	val, done := c.smooth.tween.Update(dt)
	if done {
		c.smooth = nil
	}
	c.NotifyScrollChanged(float64(val))
}

// clampScroll restricts offset to the scrollable range.
func (c *Container) clampScroll(offset float64) float64 {
	s := c.ScrollState()
	maxOffset := math.Max(0, s.ContentExtent-s.ViewportExtent)
	return math.Max(0, math.Min(offset, maxOffset))
}
