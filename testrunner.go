package parallax

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action   string  `json:"action"`
	Offset   float64 `json:"offset,omitempty"`
	Steps    int     `json:"steps,omitempty"`
	Duration float32 `json:"duration,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Label    string  `json:"label,omitempty"`
}

// scriptFile is the top-level JSON structure for a scroll script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// ScrollScript sequences scroll actions across frames for automated runs of
// a Container. Attach via Container.SetScrollScript.
//
// Actions:
//
//	scroll      jump to "offset"
//	smooth      animate to "offset" over "duration" seconds
//	wheel       inject "steps" wheel notches (negative scrolls back)
//	check       request a visibility pass
//	screenshot  capture the next drawn frame as "label"
//	wait        idle for "frames" frames
type ScrollScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScrollScript parses a JSON scroll script.
func LoadScrollScript(jsonData []byte) (*ScrollScript, error) {
	var script scriptFile
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "smooth", "wheel", "check", "screenshot", "wait":
		default:
			return nil, fmt.Errorf("parse scroll script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScrollScript{steps: script.Steps}, nil
}

// SetScrollScript attaches a script. Its step method is called from UpdateDT
// before input is processed each frame.
func (c *Container) SetScrollScript(s *ScrollScript) {
	c.script = s
}

// Done reports whether all steps in the script have been executed.
func (s *ScrollScript) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *ScrollScript) step(c *Container) {
	if s.done {
		return
	}
	// Wait for pending injections and smooth scrolls to drain before advancing.
	if len(c.injectQueue) > 0 || c.smooth != nil {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "scroll":
		c.ScrollTo(st.Offset)
	case "smooth":
		c.SmoothScrollTo(st.Offset, st.Duration, nil)
	case "wheel":
		c.InjectWheelSteps(st.Steps)
	case "check":
		c.NotifyVisibilityCheckRequested()
	case "screenshot":
		c.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(c.injectQueue) == 0 && c.smooth == nil {
		s.done = true
	}
}
