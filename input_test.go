package parallax

import "testing"

func TestWheelDelta(t *testing.T) {
	tests := []struct {
		name   string
		o      Orientation
		dx, dy float64
		want   float64
	}{
		{"vertical down", Vertical, 0, -1, 40},
		{"vertical up", Vertical, 0, 1, -40},
		{"vertical ignores sideways", Vertical, 3, 0, 0},
		{"horizontal sideways", Horizontal, -2, 0, 80},
		{"horizontal accepts vertical wheel", Horizontal, 0, -1, 40},
		{"horizontal prefers sideways", Horizontal, 1, -5, -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(Config{Orientation: tt.o})
			assertNear(t, "delta", c.wheelDelta(tt.dx, tt.dy), tt.want)
		})
	}
}

func TestProcessInputDisabledIsNoop(t *testing.T) {
	c, _ := newScrollContainer(t)
	c.processInput() // InputEnabled is false; must not touch ebiten input state
	assertNear(t, "ScrollOffset", c.ScrollOffset(), 0)
}
