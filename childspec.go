package parallax

// Default ChildSpec values.
const (
	DefaultTriggerFraction = 0.5
)

// Transform is the set of per-node properties the engine drives. Rotation is
// in degrees.
type Transform struct {
	TranslationX, TranslationY float64
	ScaleX, ScaleY             float64
	Alpha                      float64
	Rotation                   float64
}

// IdentityTransform leaves a node exactly at its layout position.
var IdentityTransform = Transform{ScaleX: 1, ScaleY: 1, Alpha: 1}

// Lerp interpolates from IdentityTransform toward t by fraction. Only the
// translation component selected by translateX is written; the other is
// zero. fraction is not clamped, so values outside [0, 1] extrapolate past
// the identity or the target.
func (t Transform) Lerp(fraction float64, translateX bool) Transform {
	out := Transform{
		ScaleX:   1 + (t.ScaleX-1)*fraction,
		ScaleY:   1 + (t.ScaleY-1)*fraction,
		Alpha:    1 + (t.Alpha-1)*fraction,
		Rotation: t.Rotation * fraction,
	}
	if translateX {
		out.TranslationX = t.TranslationX * fraction
	} else {
		out.TranslationY = t.TranslationY * fraction
	}
	return out
}

// ChildSpec is the per-child parallax configuration, attached to a node as
// Node.Params. Continuous mode treats the target fields as the transform at
// full scroll progress; threshold mode treats them as the end state of the
// reveal tween.
type ChildSpec struct {
	TranslationX, TranslationY float64
	ScaleX, ScaleY             float64
	Alpha                      float64
	Rotation                   float64 // degrees

	// TriggerFraction is the minimum visible fraction of the child, along the
	// scroll axis, that fires the reveal in threshold mode. Inclusive.
	TriggerFraction float64

	triggered bool
}

// NewChildSpec returns a ChildSpec with identity targets and the default
// trigger fraction.
func NewChildSpec() *ChildSpec {
	return &ChildSpec{
		ScaleX:          1,
		ScaleY:          1,
		Alpha:           1,
		TriggerFraction: DefaultTriggerFraction,
	}
}

// Target returns the spec's end transform.
func (s *ChildSpec) Target() Transform {
	return Transform{
		TranslationX: s.TranslationX,
		TranslationY: s.TranslationY,
		ScaleX:       s.ScaleX,
		ScaleY:       s.ScaleY,
		Alpha:        s.Alpha,
		Rotation:     s.Rotation,
	}
}

// Triggered reports whether the reveal has fired for this child.
func (s *ChildSpec) Triggered() bool {
	return s.triggered
}

// MarkTriggered latches the triggered flag. Once set it stays set.
func (s *ChildSpec) MarkTriggered() {
	s.triggered = true
}

// SetTriggered sets the triggered flag. Attempts to clear a flag that is
// already set are ignored and reported false.
func (s *ChildSpec) SetTriggered(v bool) bool {
	if !v && s.triggered {
		logger.Debug("ignoring reset of triggered flag")
		return false
	}
	s.triggered = v
	return true
}
