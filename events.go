package parallax

// EventSink is the interface for optional event forwarding. When set on a
// Container, every threshold-mode reveal is reported before its tween starts.
type EventSink interface {
	EmitTrigger(event TriggerEvent)
}

// TriggerEvent describes a child whose reveal fired.
type TriggerEvent struct {
	NodeID   uint32
	Name     string
	Fraction float64 // visible fraction that crossed the threshold
	Target   Transform
	UserData any
}
