package parallax

import (
	"math"
	"testing"
)

func TestFractionBasic(t *testing.T) {
	// viewport 1000, content 3000 → maxScroll 2000.
	assertNear(t, "fraction(0)", Fraction(0, 3000, 1000), 0)
	assertNear(t, "fraction(1000)", Fraction(1000, 3000, 1000), 0.5)
	assertNear(t, "fraction(2000)", Fraction(2000, 3000, 1000), 1)
}

func TestFractionNotClamped(t *testing.T) {
	assertNear(t, "overscroll", Fraction(3000, 3000, 1000), 1.5)
	assertNear(t, "negative", Fraction(-500, 3000, 1000), -0.25)
}

func TestFractionZeroRange(t *testing.T) {
	tests := []struct {
		name              string
		content, viewport float64
	}{
		{"equal extents", 1000, 1000},
		{"content smaller", 400, 1000},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScrollState{Offset: 10, ContentExtent: tt.content, ViewportExtent: tt.viewport}
			if s.MaxScroll() != 1 {
				t.Errorf("MaxScroll = %v, want 1", s.MaxScroll())
			}
			f := s.Fraction()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				t.Fatalf("Fraction = %v, want finite", f)
			}
			assertNear(t, "fraction", f, 10)
		})
	}
}

func TestFractionMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for offset := -200.0; offset <= 2400; offset += 37 {
		f := Fraction(offset, 3000, 1000)
		if f < prev {
			t.Fatalf("Fraction(%v) = %v < previous %v", offset, f, prev)
		}
		prev = f
	}
}
