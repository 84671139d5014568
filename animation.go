package parallax

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultRevealDuration is the threshold-mode reveal tween length in seconds.
const DefaultRevealDuration float32 = 0.4

// DefaultRevealEase is the easing applied to reveal tweens when Config leaves
// RevealEase nil.
var DefaultRevealEase ease.TweenFunc = ease.InOutQuad

// maxTweenFields is the number of Transform fields a group can drive.
const maxTweenFields = 6

// TweenGroup animates up to six float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenTranslation, TweenScale,
// TweenAlpha, TweenRotation, TweenTransform) and call Update(dt) each frame.
// The group auto-applies values and marks the node dirty. If the target node
// is disposed, the group stops immediately.
type TweenGroup struct {
	tweens  [maxTweenFields]*gween.Tween
	count   int
	fields  [maxTweenFields]*float64
	targets [maxTweenFields]float64
	target  *Node
	Done    bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.targets[g.count] = to
	g.count++
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			// gween runs in float32; land on the exact float64 target.
			*g.fields[i] = g.targets[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenTranslation animates node.TranslationX and node.TranslationY.
func TweenTranslation(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.TranslationX, toX, duration, fn)
	g.add(&node.TranslationY, toY, duration, fn)
	return g
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.ScaleX, toSX, duration, fn)
	g.add(&node.ScaleY, toSY, duration, fn)
	return g
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Alpha, to, duration, fn)
	return g
}

// TweenRotation animates node.Rotation (degrees).
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Rotation, to, duration, fn)
	return g
}

// TweenTransform animates every Transform field of node from its current
// values to to.
func TweenTransform(node *Node, to Transform, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.TranslationX, to.TranslationX, duration, fn)
	g.add(&node.TranslationY, to.TranslationY, duration, fn)
	g.add(&node.ScaleX, to.ScaleX, duration, fn)
	g.add(&node.ScaleY, to.ScaleY, duration, fn)
	g.add(&node.Alpha, to.Alpha, duration, fn)
	g.add(&node.Rotation, to.Rotation, duration, fn)
	return g
}

// Animator starts a tween of a node's transform toward to. Implementations
// run the tween independently; the caller never waits for completion and
// gets no callback.
type Animator interface {
	Animate(node *Node, to Transform, duration float32, fn ease.TweenFunc)
}

// TweenAnimator is the default Animator. It owns the running TweenGroups and
// advances them when Update is called, normally once per frame by the
// Container.
type TweenAnimator struct {
	groups []*TweenGroup
}

// NewTweenAnimator returns an empty TweenAnimator.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{}
}

// Animate starts a TweenTransform group for node.
func (a *TweenAnimator) Animate(node *Node, to Transform, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = DefaultRevealEase
	}
	a.groups = append(a.groups, TweenTransform(node, to, duration, fn))
}

// Update advances every running group by dt seconds and drops finished ones.
func (a *TweenAnimator) Update(dt float32) {
	live := a.groups[:0]
	for _, g := range a.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(a.groups); i++ {
		a.groups[i] = nil
	}
	a.groups = live
}

// Active returns the number of groups still running.
func (a *TweenAnimator) Active() int {
	return len(a.groups)
}
