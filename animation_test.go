package parallax

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenTranslationReachesTarget(t *testing.T) {
	node := NewPanel("pos")
	node.TranslationX = 10
	node.TranslationY = 20

	g := TweenTranslation(node, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.TranslationX-100) > 0.5 {
		t.Errorf("TranslationX = %f, want ~100", node.TranslationX)
	}
	if math.Abs(node.TranslationY-200) > 0.5 {
		t.Errorf("TranslationY = %f, want ~200", node.TranslationY)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewPanel("scale")

	g := TweenScale(node, 2.0, 3.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.ScaleX-2.0) > 0.01 {
		t.Errorf("ScaleX = %f, want ~2.0", node.ScaleX)
	}
	if math.Abs(node.ScaleY-3.0) > 0.01 {
		t.Errorf("ScaleY = %f, want ~3.0", node.ScaleY)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewPanel("alpha")

	tw := TweenAlpha(node, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(node.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.0", node.Alpha)
	}
}

func TestTweenRotationReachesTarget(t *testing.T) {
	node := NewPanel("rot")

	tw := TweenRotation(node, 180, 1.0, ease.Linear)
	tw.Update(0.5)
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(node.Rotation-180) > 0.05 {
		t.Errorf("Rotation = %f, want ~180", node.Rotation)
	}
}

func TestTweenTransformAllFields(t *testing.T) {
	node := NewPanel("all")
	to := Transform{TranslationX: 30, TranslationY: -40, ScaleX: 0.5, ScaleY: 2, Alpha: 0.25, Rotation: 45}

	g := TweenTransform(node, to, 0.4, ease.Linear)
	g.Update(0.2)
	g.Update(0.2)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	got := node.Transform()
	checks := []struct {
		name      string
		got, want float64
	}{
		{"TranslationX", got.TranslationX, to.TranslationX},
		{"TranslationY", got.TranslationY, to.TranslationY},
		{"ScaleX", got.ScaleX, to.ScaleX},
		{"ScaleY", got.ScaleY, to.ScaleY},
		{"Alpha", got.Alpha, to.Alpha},
		{"Rotation", got.Rotation, to.Rotation},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 0.01 {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewPanel("done")
	g := TweenTranslation(node, 50, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op and must not panic.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewPanel("dirty")
	node.transformDirty = false

	g := TweenTranslation(node, 100, 100, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.transformDirty {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedMidAnimation(t *testing.T) {
	node := NewPanel("mid-dispose")

	g := TweenTranslation(node, 100, 100, 1.0, ease.Linear)
	g.Update(0.1)
	if g.Done {
		t.Fatal("should not be Done yet")
	}

	node.Dispose()
	saved := node.TranslationX

	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done after node disposed mid-animation")
	}
	if node.TranslationX != saved {
		t.Error("node fields should not change after disposal")
	}
}

func TestTweenAnimatorDropsFinishedGroups(t *testing.T) {
	a := NewTweenAnimator()
	n1, n2 := NewPanel("a"), NewPanel("b")
	a.Animate(n1, Transform{ScaleX: 1, ScaleY: 1, Alpha: 0}, 0.2, ease.Linear)
	a.Animate(n2, Transform{ScaleX: 1, ScaleY: 1, Alpha: 0}, 0.6, nil)

	if a.Active() != 2 {
		t.Fatalf("Active = %d, want 2", a.Active())
	}
	a.Update(0.1)
	a.Update(0.1)
	if a.Active() != 1 {
		t.Errorf("Active = %d, want 1 after first tween finished", a.Active())
	}
	for i := 0; i < 10; i++ {
		a.Update(0.1)
	}
	if a.Active() != 0 {
		t.Errorf("Active = %d, want 0", a.Active())
	}
	if math.Abs(n2.Alpha) > 0.01 {
		t.Errorf("n2.Alpha = %f, want ~0", n2.Alpha)
	}
}

func TestTweenGroupLandsOnExactTarget(t *testing.T) {
	node := NewPanel("exact")
	to := Transform{TranslationX: 12.3, TranslationY: -0.1, ScaleX: 1.1, ScaleY: 0.7, Alpha: 0.3, Rotation: 33.3}

	g := TweenTransform(node, to, 0.3, ease.InOutQuad)
	for i := 0; i < 4; i++ {
		g.Update(0.1)
	}

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if got := node.Transform(); got != to {
		t.Errorf("Transform() = %+v, want exactly %+v", got, to)
	}
}
