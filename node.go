package parallax

// nodeIDCounter is a plain counter; nodes are created on the frame-loop goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a rectangular element in a container's tree. Layout fields place
// the node inside its parent; transform fields are driven by the engine on
// top of that layout, the way a view's translation and scale sit on top of
// its laid-out frame.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout (local to parent)
	X, Y          float64
	Width, Height float64

	// Transform (local, applied about the pivot)
	TranslationX, TranslationY float64
	ScaleX, ScaleY             float64
	Rotation                   float64 // degrees, clockwise
	// PivotX and PivotY are fractions of Width and Height. Default 0.5.
	PivotX, PivotY float64

	// Computed (unexported, refreshed by updateWorldTransform)
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Appearance
	Alpha   float64
	Visible bool
	Color   Color

	// ClipChildren restricts the visible bounds (and drawing) of descendants
	// to this node's rectangle.
	ClipChildren bool

	// Params is the parallax configuration for this node when it is a child
	// of a Container. Nodes with nil Params are laid out and drawn but never
	// driven by the engine.
	Params *ChildSpec

	// Metadata
	UserData any

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.PivotX = 0.5
	n.PivotY = 0.5
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewNode creates a node with the given layout rectangle.
func NewNode(name string, bounds Rect) *Node {
	n := &Node{
		Name:   name,
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.Width,
		Height: bounds.Height,
	}
	nodeDefaults(n)
	return n
}

// NewPanel creates a zero-sized grouping node.
func NewPanel(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// Bounds returns the node's layout rectangle in its parent's space.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Transform returns the node's current engine-driven transform.
func (n *Node) Transform() Transform {
	return Transform{
		TranslationX: n.TranslationX,
		TranslationY: n.TranslationY,
		ScaleX:       n.ScaleX,
		ScaleY:       n.ScaleY,
		Alpha:        n.Alpha,
		Rotation:     n.Rotation,
	}
}

// SetTransform writes every transform field and marks the node dirty.
func (n *Node) SetTransform(t Transform) {
	n.TranslationX = t.TranslationX
	n.TranslationY = t.TranslationY
	n.ScaleX = t.ScaleX
	n.ScaleY = t.ScaleY
	n.Alpha = t.Alpha
	n.Rotation = t.Rotation
	n.transformDirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("parallax: cannot add nil child")
	}
	if debugMode {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("parallax: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if debugMode {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("parallax: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("parallax: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("parallax: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("parallax: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list in attachment order. The returned slice
// MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens targeting a disposed
// node stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Params = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
