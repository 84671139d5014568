package parallax

// wheelEvent is a single injected wheel reading, in the same units as
// ebiten.Wheel.
type wheelEvent struct {
	dx, dy float64
}

// InjectWheel queues a synthetic wheel event. Negative dy scrolls forward,
// matching ebiten.Wheel. One event is consumed per Update, ahead of real
// input.
func (c *Container) InjectWheel(dx, dy float64) {
	c.injectQueue = append(c.injectQueue, wheelEvent{dx: dx, dy: dy})
}

// InjectWheelSteps queues n wheel notches in the forward (n > 0) or backward
// (n < 0) direction along the scroll axis. Consumes |n| frames.
func (c *Container) InjectWheelSteps(n int) {
	dy := -1.0
	if n < 0 {
		dy = 1
		n = -n
	}
	for i := 0; i < n; i++ {
		if c.cfg.Orientation == Horizontal {
			c.InjectWheel(dy, 0)
		} else {
			c.InjectWheel(0, dy)
		}
	}
}

// processInjectedInput pops one event from the inject queue and scrolls by
// it. Returns true if an event was consumed (real input should be skipped).
func (c *Container) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if d := c.wheelDelta(evt.dx, evt.dy); d != 0 {
		c.ScrollBy(d)
	}
	return true
}
