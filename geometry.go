package parallax

// VisibleFraction intersects a child's visible rectangle with the container's
// and returns the intersected extent along the orientation's axis divided by
// childExtent, the child's full layout size on that axis. It reports false
// when the rectangles do not overlap or childExtent is not positive.
//
// Callers are expected to skip the whole pass when the container itself has
// no visible rectangle.
func VisibleFraction(container, child Rect, childExtent float64, o Orientation) (float64, bool) {
	if childExtent <= 0 {
		return 0, false
	}
	hit, ok := container.Intersect(child)
	if !ok {
		return 0, false
	}
	return hit.Extent(o) / childExtent, true
}

// VisibilityProvider reports a node's visible bounds in a coordinate space
// shared by every node of a container. ok is false when the node has no
// visible area (offscreen, hidden, zero-sized, or clipped away).
type VisibilityProvider interface {
	VisibleRect(n *Node) (r Rect, ok bool)
}

// VisibilityFunc adapts a function to VisibilityProvider.
type VisibilityFunc func(n *Node) (Rect, bool)

// VisibleRect calls f(n).
func (f VisibilityFunc) VisibleRect(n *Node) (Rect, bool) { return f(n) }

// treeVisibility is the default provider. It derives bounds from world
// transforms, clipped by every ancestor with ClipChildren set.
type treeVisibility struct{}

func (treeVisibility) VisibleRect(n *Node) (Rect, bool) {
	return n.GlobalVisibleRect()
}

// GlobalVisibleRect returns the node's world-space axis-aligned bounds
// clipped by each ClipChildren ancestor. It reports false if the node or an
// ancestor is hidden, the node is zero-sized, or nothing survives clipping.
// World transforms must be current; Container refreshes them before each
// engine pass.
func (n *Node) GlobalVisibleRect() (Rect, bool) {
	if n.Width <= 0 || n.Height <= 0 {
		return Rect{}, false
	}
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return Rect{}, false
		}
	}
	r := worldAABB(n.worldTransform, n.Width, n.Height)
	for p := n.Parent; p != nil; p = p.Parent {
		if !p.ClipChildren {
			continue
		}
		var ok bool
		r, ok = r.Intersect(worldAABB(p.worldTransform, p.Width, p.Height))
		if !ok {
			return Rect{}, false
		}
	}
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}
