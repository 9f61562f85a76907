package picker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Button string  `json:"button,omitempty"` // drag only: "left" (default) or "middle"
	Key    string  `json:"key,omitempty"`
	Kind   string  `json:"kind,omitempty"` // create only: widget kind name
	Ctrl   bool    `json:"ctrl,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
}

func (st testStep) mods() KeyModifiers {
	var m KeyModifiers
	if st.Ctrl {
		m |= ModCtrl
	}
	if st.Shift {
		m |= ModShift
	}
	return m
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var keyNames = map[string]Key{
	"a":      KeyA,
	"f":      KeyF,
	"delete": KeyDelete,
	"home":   KeyHome,
	"plus":   KeyPlus,
	"minus":  KeyMinus,
	"0":      Key0,
	"escape": KeyEscape,
}

var errNoSteps = errors.New("no steps")

// TestRunner sequences injected input events across frames for scripted
// sessions. Attach to a Canvas via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached to a Canvas via SetTestRunner. Actions are click, doubleclick,
// drag, wheel, key, create and wait.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func validateStep(st testStep) error {
	switch st.Action {
	case "click", "doubleclick", "wheel", "wait":
		return nil
	case "drag":
		switch st.Button {
		case "", "left", "middle":
			return nil
		}
		return fmt.Errorf("unknown button %q", st.Button)
	case "key":
		if _, ok := keyNames[strings.ToLower(st.Key)]; !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	case "create":
		_, err := ParseWidgetKind(st.Kind)
		return err
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// SetTestRunner attaches a TestRunner to the canvas. The runner advances from
// Canvas.Update each frame, before queued input is consumed.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the first error raised while executing a step.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the test runner by one frame. Called from Canvas.Update.
func (r *TestRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		c.InjectClick(st.X, st.Y, st.mods())
	case "doubleclick":
		c.InjectDoubleClick(st.X, st.Y)
	case "drag":
		if st.Button == "middle" {
			c.InjectPanDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		} else {
			c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, st.mods())
		}
	case "wheel":
		c.InjectWheel(st.X, st.Y, st.DX, st.DY, st.mods())
	case "key":
		c.InjectKey(keyNames[strings.ToLower(st.Key)], st.mods())
	case "create":
		at := Vec2{st.X, st.Y}
		if _, err := c.CreateItem(st.Kind, &at); err != nil && r.err == nil {
			r.err = fmt.Errorf("step %d: %w", r.cursor-1, err)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
