package parallax

import "math"

// minScrollRange keeps the progress divisor positive when content fits
// inside the viewport.
const minScrollRange = 1

// ScrollState is a snapshot of a container's scroll position along its
// scroll axis. It is rebuilt on every scroll callback.
type ScrollState struct {
	Offset         float64
	ContentExtent  float64
	ViewportExtent float64
}

// MaxScroll returns the scrollable distance, never less than 1.
func (s ScrollState) MaxScroll() float64 {
	return math.Max(minScrollRange, s.ContentExtent-s.ViewportExtent)
}

// Fraction returns Offset / MaxScroll. See Fraction.
func (s ScrollState) Fraction() float64 {
	return s.Offset / s.MaxScroll()
}

// Fraction maps a scroll offset to progress through the scrollable range.
// The result is not clamped: negative offsets and overscroll past the end
// produce values below 0 or above 1, and everything derived from it (alpha,
// scale) extrapolates accordingly.
func Fraction(offset, contentExtent, viewportExtent float64) float64 {
	return ScrollState{
		Offset:         offset,
		ContentExtent:  contentExtent,
		ViewportExtent: viewportExtent,
	}.Fraction()
}
