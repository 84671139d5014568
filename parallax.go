package parallax

import (
	"fmt"
	"math"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlapping region of r and other. Each edge is
// clamped against the other rectangle; an empty or inverted result reports
// false with a zero Rect. Rectangles that only share an edge do not
// intersect.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Extent returns the rectangle's size along the orientation's scroll axis.
func (r Rect) Extent(o Orientation) float64 {
	if o == Horizontal {
		return r.Width
	}
	return r.Height
}

// Orientation selects the axis a Container scrolls along.
type Orientation uint8

// The zero value is Vertical.
const (
	Vertical   Orientation = iota // scrolls along Y
	Horizontal                    // scrolls along X
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// UnmarshalText parses "horizontal" or "vertical" (case-insensitive).
func (o *Orientation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "horizontal", "0":
		*o = Horizontal
	case "vertical", "1":
		*o = Vertical
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOrientation, text)
	}
	return nil
}

// ParallaxAxis selects which translation component continuous mode drives,
// relative to the scroll axis. The other component is held at zero.
type ParallaxAxis uint8

const (
	AxisAlongScroll  ParallaxAxis = iota // Vertical drives Y, Horizontal drives X
	AxisAcrossScroll                     // Vertical drives X, Horizontal drives Y
)

func (a ParallaxAxis) String() string {
	switch a {
	case AxisAlongScroll:
		return "along"
	case AxisAcrossScroll:
		return "across"
	default:
		return fmt.Sprintf("ParallaxAxis(%d)", uint8(a))
	}
}

// UnmarshalText parses "along" or "across" (case-insensitive).
func (a *ParallaxAxis) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "along", "":
		*a = AxisAlongScroll
	case "across":
		*a = AxisAcrossScroll
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParallaxAxis, text)
	}
	return nil
}

// translatesX reports whether continuous mode writes TranslationX (and
// zeroes TranslationY) for the given orientation.
func (a ParallaxAxis) translatesX(o Orientation) bool {
	along := a == AxisAlongScroll
	if o == Horizontal {
		return along
	}
	return !along
}

// Mode selects the engine strategy a Container runs.
type Mode uint8

const (
	ModeContinuous Mode = iota // per-scroll linear interpolation
	ModeThreshold              // one-shot reveal on visibility
)

func (m Mode) String() string {
	switch m {
	case ModeContinuous:
		return "continuous"
	case ModeThreshold:
		return "threshold"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// UnmarshalText parses "continuous" or "threshold" (case-insensitive).
func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "continuous", "":
		*m = ModeContinuous
	case "threshold":
		*m = ModeThreshold
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, text)
	}
	return nil
}
