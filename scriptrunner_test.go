package marionette

import (
	"math"
	"testing"
)

const demoScript = `{
	"steps": [
		{"frames": 60, "velocityX": 120},
		{"frames": 30, "action": "attack"},
		{"frames": 30, "action": "roll", "facing": -1},
		{"frames": 60, "wind": 0.6, "temperature": 0.1}
	]
}`

func TestLoadScriptRejectsGarbage(t *testing.T) {
	if _, err := LoadScript([]byte("{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script accepted")
	}
}

func TestScriptFrameCount(t *testing.T) {
	s, err := LoadScript([]byte(demoScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if got := s.Frames(); got != 180 {
		t.Errorf("Frames() = %d, want 180", got)
	}
}

func TestScriptRunVisitsEveryFrame(t *testing.T) {
	s, err := LoadScript([]byte(demoScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	a := NewAnimator(DefaultConfig())
	n := 0
	s.Run(a, func(out *FrameOutput) {
		n++
		assertFinite(t, "pelvis", out.Pose.Pelvis.Pos)
	})
	if n != s.Frames() {
		t.Errorf("callback ran %d times, want %d", n, s.Frames())
	}
}

func TestScriptIntegratesPosition(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"frames": 60, "velocityX": 120}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	cfg := DefaultConfig()
	a := NewAnimator(cfg)
	var last *FrameOutput
	s.Run(a, func(out *FrameOutput) { last = out })

	// One second at 120 units/s; the pelvis lands there give or take the
	// lateral weight shift.
	if math.Abs(last.Pose.Pelvis.Pos.X-120) > cfg.WeightShiftAmount+1 {
		t.Errorf("pelvis x %v after 1s at 120 u/s, want near 120", last.Pose.Pelvis.Pos.X)
	}
}

func TestScriptReplayIsChecksumStable(t *testing.T) {
	s, err := LoadScript([]byte(demoScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	checksum := func() float64 {
		a := NewAnimator(DefaultConfig())
		sum := 0.0
		s.Run(a, func(out *FrameOutput) {
			sum += out.Pose.Head.Pos.X + out.Pose.RightLeg.Foot.Pos.Y +
				out.Transform.Rotation + out.Frame.GaitPhase
		})
		return sum
	}

	c1 := checksum()
	c2 := checksum()
	if c1 != c2 {
		t.Errorf("replay checksum drifted: %v vs %v", c1, c2)
	}
}

func TestScriptExpressesZeroVitals(t *testing.T) {
	// An explicit zero must reach the context; only an absent field keeps
	// the full-vitals default.
	s, err := LoadScript([]byte(`{"steps": [{"frames": 120, "temperature": 0, "stamina": 0}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	a := NewAnimator(DefaultConfig())
	maxShiver := 0.0
	s.Run(a, func(out *FrameOutput) {
		if v := math.Abs(out.Frame.Shiver); v > maxShiver {
			maxShiver = v
		}
	})
	if maxShiver == 0 {
		t.Error("temperature 0 produced no shiver; the zero never reached the context")
	}

	warm, err := LoadScript([]byte(`{"steps": [{"frames": 120}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	a = NewAnimator(DefaultConfig())
	warm.Run(a, func(out *FrameOutput) {
		if out.Frame.Shiver != 0 {
			t.Fatal("default vitals should stay warm and shiver-free")
		}
	})
}

func TestParseActionLabels(t *testing.T) {
	cases := map[string]ActionState{
		"attack":  ActionAttacking,
		"block":   ActionBlocking,
		"roll":    ActionRolling,
		"hurt":    ActionHurt,
		"idle":    ActionIdle,
		"":        ActionIdle,
		"mystery": ActionIdle,
	}
	for label, want := range cases {
		if got := parseAction(label); got != want {
			t.Errorf("parseAction(%q) = %v, want %v", label, got, want)
		}
	}
}
