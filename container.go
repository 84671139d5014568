package parallax

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Container is the top-level object that owns the viewport node, the
// scrolling content panel, and the engine that drives the panel's children.
//
// The tree is:
//
//	root (viewport, ClipChildren)
//	└── content (moved by the scroll offset)
//	    ├── child 0
//	    └── child 1 ...
//
// All methods must be called from the goroutine that runs the frame loop.
type Container struct {
	cfg     Config
	root    *Node
	content *Node
	engine  strategy

	scroll      float64
	seedPending bool
	laidOut     bool

	visibility VisibilityProvider
	animator   Animator
	sink       EventSink

	smooth          *scrollAnim
	injectQueue     []wheelEvent
	script          *ScrollScript
	screenshotQueue []string

	// InputEnabled makes Update read the mouse wheel and keyboard. Run sets it.
	InputEnabled bool
	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files. Default "screenshots".
	ScreenshotDir string
}

// NewContainer creates a container from cfg. The engine strategy is fixed
// here by cfg.Mode.
func NewContainer(cfg Config) *Container {
	cfg = cfg.withDefaults()

	root := NewNode("viewport", cfg.Viewport)
	root.ClipChildren = true
	content := NewPanel("content")
	root.AddChild(content)

	return &Container{
		cfg:         cfg,
		root:        root,
		content:     content,
		engine:      newStrategy(cfg.Mode),
		seedPending: cfg.InitialScrollOffset != 0,
		visibility:  treeVisibility{},
		animator:    NewTweenAnimator(),

		ScreenshotDir: "screenshots",
	}
}

// Config returns the configuration the container was built with, defaults
// applied.
func (c *Container) Config() Config { return c.cfg }

// Mode returns the engine mode.
func (c *Container) Mode() Mode { return c.cfg.Mode }

// Orientation returns the scroll axis.
func (c *Container) Orientation() Orientation { return c.cfg.Orientation }

// Root returns the viewport node.
func (c *Container) Root() *Node { return c.root }

// Content returns the content panel that scrolls inside the viewport.
func (c *Container) Content() *Node { return c.content }

// Children returns the driven children in attachment order. The returned
// slice MUST NOT be mutated.
func (c *Container) Children() []*Node { return c.content.children }

// AddChild attaches n to the content panel with spec as its parallax
// configuration. A nil spec keeps whatever n.Params already holds; children
// with no Params at all are drawn but skipped by the engine.
func (c *Container) AddChild(n *Node, spec *ChildSpec) {
	if n == nil {
		panic("parallax: cannot add nil child")
	}
	if spec != nil {
		n.Params = spec
	}
	c.content.AddChild(n)
}

// RemoveChild detaches n from the content panel. Its ChildSpec goes with it.
func (c *Container) RemoveChild(n *Node) {
	c.content.RemoveChild(n)
}

// SetVisibilityProvider replaces the source of visible rectangles used by
// threshold mode. A nil provider restores the default, which derives bounds
// from the node tree.
func (c *Container) SetVisibilityProvider(p VisibilityProvider) {
	if p == nil {
		p = treeVisibility{}
	}
	c.visibility = p
}

// SetAnimator replaces the reveal animator. A nil animator restores a fresh
// TweenAnimator. Update only advances animators that have an
// Update(dt float32) method.
func (c *Container) SetAnimator(a Animator) {
	if a == nil {
		a = NewTweenAnimator()
	}
	c.animator = a
}

// SetEventSink sets the optional trigger event sink.
func (c *Container) SetEventSink(sink EventSink) {
	c.sink = sink
}

// --- Host-facing engine API ---

// NotifyScrollChanged tells the engine the scroll offset changed. Continuous
// mode recomputes every child's transform; threshold mode moves the content
// to the whole-pixel offset and re-runs the visibility pass.
func (c *Container) NotifyScrollChanged(offset float64) {
	c.engine.scrollChanged(c, offset)
}

// NotifyVisibilityCheckRequested runs the threshold-mode visibility pass.
// No-op in continuous mode.
func (c *Container) NotifyVisibilityCheckRequested() {
	c.engine.visibilityCheck(c)
}

// SeedInitialOffset applies Config.InitialScrollOffset once. Later calls do
// nothing. Update and Draw call it automatically, so hosts only need it when
// they drive the container without the frame loop.
func (c *Container) SeedInitialOffset() {
	if !c.seedPending {
		return
	}
	c.seedPending = false
	logger.Debug("seeding initial scroll offset", "offset", c.cfg.InitialScrollOffset)
	c.engine.scrollChanged(c, c.cfg.InitialScrollOffset)
}

// --- Scroll state ---

// ScrollOffset returns the current scroll offset along the scroll axis.
func (c *Container) ScrollOffset() float64 { return c.scroll }

// ScrollState returns the current offset with the content and viewport
// extents along the scroll axis.
func (c *Container) ScrollState() ScrollState {
	return ScrollState{
		Offset:         c.scroll,
		ContentExtent:  c.contentExtent(),
		ViewportExtent: c.root.Bounds().Extent(c.cfg.Orientation),
	}
}

// Progress returns the current scroll fraction. See Fraction.
func (c *Container) Progress() float64 {
	return c.ScrollState().Fraction()
}

// contentExtent returns the configured content size along the scroll axis,
// or the far edge of the furthest child when none is configured.
func (c *Container) contentExtent() float64 {
	if c.cfg.Orientation == Horizontal {
		if c.cfg.ContentWidth > 0 {
			return c.cfg.ContentWidth
		}
	} else if c.cfg.ContentHeight > 0 {
		return c.cfg.ContentHeight
	}

	var extent float64
	for _, child := range c.content.children {
		if c.cfg.Orientation == Horizontal {
			extent = math.Max(extent, child.X+child.Width)
		} else {
			extent = math.Max(extent, child.Y+child.Height)
		}
	}
	return extent
}

// setScroll records offset and moves the content panel opposite to it.
func (c *Container) setScroll(offset float64) {
	c.scroll = offset
	if c.cfg.Orientation == Horizontal {
		c.content.SetPosition(-offset, 0)
	} else {
		c.content.SetPosition(0, -offset)
	}
}

// refresh recomputes world transforms for the whole tree.
func (c *Container) refresh() {
	updateWorldTransform(c.root, identityTransform, 1.0, false)
}

// --- Frame loop ---

// Update advances the container by one tick of the Ebitengine loop.
func (c *Container) Update() {
	c.UpdateDT(float32(1.0 / float64(ebiten.TPS())))
}

// UpdateDT advances the container by dt seconds: applies the initial offset,
// runs the first threshold pass after layout, steps any attached script,
// processes input, advances smooth scrolling and reveal tweens, and refreshes
// world transforms.
func (c *Container) UpdateDT(dt float32) {
	c.SeedInitialOffset()
	if !c.laidOut {
		c.laidOut = true
		c.engine.visibilityCheck(c)
	}

	if c.script != nil {
		c.script.step(c)
	}
	c.processInput()
	c.updateSmoothScroll(dt)

	if u, ok := c.animator.(interface{ Update(float32) }); ok {
		u.Update(dt)
	}
	c.refresh()
}
