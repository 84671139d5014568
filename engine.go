package parallax

import "math"

// strategy is the per-mode engine. Exactly one is chosen by NewContainer.
type strategy interface {
	// scrollChanged repositions the content panel to offset and recomputes.
	scrollChanged(c *Container, offset float64)
	// visibilityCheck runs an on-demand pass.
	visibilityCheck(c *Container)
}

func newStrategy(m Mode) strategy {
	if m == ModeThreshold {
		return thresholdStrategy{}
	}
	return continuousStrategy{}
}

// --- Continuous ---

// continuousStrategy interpolates every child from identity toward its
// target by the scroll fraction on each scroll change. No tweens.
type continuousStrategy struct{}

func (continuousStrategy) scrollChanged(c *Container, offset float64) {
	c.setScroll(offset)
	c.applyParallax()
}

func (continuousStrategy) visibilityCheck(c *Container) {}

// applyParallax writes the interpolated transform of every configured child
// of the content panel.
func (c *Container) applyParallax() {
	f := c.ScrollState().Fraction()
	translateX := c.cfg.ParallaxAxis.translatesX(c.cfg.Orientation)
	for _, child := range c.content.children {
		spec := child.Params
		if spec == nil {
			logger.Debug("skipping child without params", "node", child.Name)
			continue
		}
		child.SetTransform(spec.Target().Lerp(f, translateX))
	}
}

// --- Threshold ---

// thresholdStrategy fires a one-shot reveal per child once enough of it is
// visible. Scrolling only moves the content and re-runs the pass.
type thresholdStrategy struct{}

func (thresholdStrategy) scrollChanged(c *Container, offset float64) {
	c.setScroll(math.Trunc(offset))
	c.checkVisibility()
}

func (thresholdStrategy) visibilityCheck(c *Container) {
	c.checkVisibility()
}

// checkVisibility tests every untriggered child against its trigger fraction
// in attachment order and starts the reveal for each one that crosses it.
func (c *Container) checkVisibility() {
	c.refresh()

	parent, ok := c.visibility.VisibleRect(c.root)
	if !ok {
		logger.Debug("container has no visible area, skipping pass", "container", c.root.Name)
		return
	}

	o := c.cfg.Orientation
	for _, child := range c.content.children {
		spec := child.Params
		if spec == nil {
			logger.Debug("skipping child without params", "node", child.Name)
			continue
		}
		if spec.Triggered() {
			continue
		}
		rect, ok := c.visibility.VisibleRect(child)
		if !ok {
			continue
		}
		frac, ok := VisibleFraction(parent, rect, child.Bounds().Extent(o), o)
		if !ok {
			continue
		}
		if frac < spec.TriggerFraction {
			continue
		}

		spec.MarkTriggered()
		target := spec.Target()
		logger.Debug("reveal triggered", "node", child.Name, "fraction", frac, "threshold", spec.TriggerFraction)
		if c.sink != nil {
			c.sink.EmitTrigger(TriggerEvent{
				NodeID:   child.ID,
				Name:     child.Name,
				Fraction: frac,
				Target:   target,
				UserData: child.UserData,
			})
		}
		c.animator.Animate(child, target, c.cfg.RevealDuration, c.cfg.RevealEase)
	}
}
