package parallax

import (
	"strings"
	"testing"
)

func TestLoadScrollScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "scroll", "offset": 300},
			{"action": "wheel", "steps": -2},
			{"action": "wait", "frames": 3},
			{"action": "smooth", "offset": 900, "duration": 0.5},
			{"action": "check"}
		]
	}`)

	script, err := LoadScrollScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(script.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(script.steps))
	}
	if script.steps[0].Action != "scroll" || script.steps[0].Offset != 300 {
		t.Error("step 0 mismatch")
	}
	if script.steps[1].Action != "wheel" || script.steps[1].Steps != -2 {
		t.Error("step 1 mismatch")
	}
	if script.steps[3].Duration != 0.5 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScrollScript_Invalid(t *testing.T) {
	_, err := LoadScrollScript([]byte(`not json`))
	if err == nil || !strings.Contains(err.Error(), "parse scroll script") {
		t.Errorf("expected wrapped parse error, got %v", err)
	}
}

func TestLoadScrollScript_Empty(t *testing.T) {
	_, err := LoadScrollScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScrollScript_UnknownAction(t *testing.T) {
	_, err := LoadScrollScript([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil || !strings.Contains(err.Error(), `"click"`) {
		t.Errorf("expected unknown action error, got %v", err)
	}
}

func TestScriptStep_ScrollAndWheel(t *testing.T) {
	c, n := newScrollContainer(t)
	script, err := LoadScrollScript([]byte(`{"steps": [
		{"action": "scroll", "offset": 1000},
		{"action": "wheel", "steps": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScrollScript(script)

	c.UpdateDT(0.016) // scroll
	assertNear(t, "TranslationY", n.TranslationY, 100)

	c.UpdateDT(0.016) // queue wheel, consume first notch
	c.UpdateDT(0.016) // second notch
	assertNear(t, "ScrollOffset", c.ScrollOffset(), 1080)

	c.UpdateDT(0.016)
	if !script.Done() {
		t.Error("script should be done")
	}
}

func TestScriptStep_WaitBlocksAdvance(t *testing.T) {
	c, _ := newScrollContainer(t)
	script, err := LoadScrollScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "scroll", "offset": 500}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScrollScript(script)

	for i := 0; i < 3; i++ {
		c.UpdateDT(0.016)
		if c.ScrollOffset() != 0 {
			t.Fatalf("frame %d: scrolled before wait finished", i)
		}
	}
	c.UpdateDT(0.016)
	assertNear(t, "ScrollOffset", c.ScrollOffset(), 500)
	if !script.Done() {
		t.Error("script should be done after last step")
	}
}

func TestScriptStep_SmoothWaitsForTween(t *testing.T) {
	c, _ := newScrollContainer(t)
	script, err := LoadScrollScript([]byte(`{"steps": [
		{"action": "smooth", "offset": 1000, "duration": 0.2},
		{"action": "scroll", "offset": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScrollScript(script)

	c.UpdateDT(0.1)
	if !c.Scrolling() {
		t.Fatal("expected smooth scroll in progress")
	}
	c.UpdateDT(0.1) // script blocked while the tween runs
	if c.ScrollOffset() == 5 {
		t.Fatal("scroll step ran before smooth scroll finished")
	}
	for i := 0; i < 5 && !script.Done(); i++ {
		c.UpdateDT(0.1)
	}
	if !script.Done() {
		t.Fatal("script should finish")
	}
	assertNear(t, "ScrollOffset", c.ScrollOffset(), 5)
}

func TestScriptStep_CheckRunsPass(t *testing.T) {
	c, a := newThreshold(t)
	child := NewNode("child", Rect{0, 0, 300, 100})
	c.AddChild(child, NewChildSpec())
	v := &fixedVisibility{rects: map[*Node]Rect{c.Root(): {0, 0, 300, 300}}}
	c.SetVisibilityProvider(v)

	script, err := LoadScrollScript([]byte(`{"steps": [{"action": "wait", "frames": 1}, {"action": "check"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScrollScript(script)

	c.UpdateDT(0.016) // layout pass: child not visible yet
	if len(a.calls) != 0 {
		t.Fatal("child should not be revealed yet")
	}
	v.rects[child] = Rect{0, 0, 300, 100}
	c.UpdateDT(0.016)
	if len(a.calls) != 1 {
		t.Errorf("Animate calls = %d, want 1 after check", len(a.calls))
	}
}

func TestScriptStep_Screenshot(t *testing.T) {
	c, _ := newScrollContainer(t)
	script, err := LoadScrollScript([]byte(`{"steps": [
		{"action": "scroll", "offset": 400},
		{"action": "screenshot", "label": "mid page"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScrollScript(script)

	c.UpdateDT(0.016)
	c.UpdateDT(0.016)

	if len(c.screenshotQueue) != 1 || c.screenshotQueue[0] != "mid page" {
		t.Errorf("screenshotQueue = %v, want [mid page]", c.screenshotQueue)
	}
	if !script.Done() {
		t.Error("script should be done")
	}
}
