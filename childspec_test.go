package parallax

import "testing"

func TestNewChildSpecDefaults(t *testing.T) {
	s := NewChildSpec()
	if s.Target() != IdentityTransform {
		t.Errorf("Target = %+v, want identity", s.Target())
	}
	if s.TriggerFraction != 0.5 {
		t.Errorf("TriggerFraction = %v, want 0.5", s.TriggerFraction)
	}
	if s.Triggered() {
		t.Error("new spec should not be triggered")
	}
}

func TestTriggeredIsMonotonic(t *testing.T) {
	s := NewChildSpec()
	if !s.SetTriggered(false) {
		t.Error("clearing an untriggered flag should be accepted")
	}
	s.MarkTriggered()
	if !s.Triggered() {
		t.Fatal("expected triggered after MarkTriggered")
	}
	if s.SetTriggered(false) {
		t.Error("SetTriggered(false) on triggered spec should be rejected")
	}
	if !s.Triggered() {
		t.Error("triggered flag was reset")
	}
	s.MarkTriggered()
	if !s.Triggered() {
		t.Error("MarkTriggered twice should keep the flag set")
	}
}

func TestTransformLerp(t *testing.T) {
	target := Transform{TranslationX: 40, TranslationY: 200, ScaleX: 2, ScaleY: 0.5, Alpha: 0, Rotation: 90}

	zero := target.Lerp(0, false)
	if zero != IdentityTransform {
		t.Errorf("Lerp(0) = %+v, want identity", zero)
	}

	full := target.Lerp(1, false)
	want := Transform{TranslationY: 200, ScaleX: 2, ScaleY: 0.5, Alpha: 0, Rotation: 90}
	if full != want {
		t.Errorf("Lerp(1, y) = %+v, want %+v", full, want)
	}

	half := target.Lerp(0.5, true)
	assertNear(t, "TranslationX", half.TranslationX, 20)
	assertNear(t, "TranslationY", half.TranslationY, 0)
	assertNear(t, "ScaleX", half.ScaleX, 1.5)
	assertNear(t, "ScaleY", half.ScaleY, 0.75)
	assertNear(t, "Alpha", half.Alpha, 0.5)
	assertNear(t, "Rotation", half.Rotation, 45)
}

func TestTransformLerpOverscroll(t *testing.T) {
	target := Transform{ScaleX: 1, ScaleY: 1, Alpha: 0}
	got := target.Lerp(1.5, false)
	// Alpha extrapolates below zero; nothing clamps it.
	assertNear(t, "Alpha", got.Alpha, -0.5)
}
