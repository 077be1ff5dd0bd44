package marionette

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one segment of a context script: a context held for a number
// of frames. ActionTime sweeps 0 to 1 across the segment automatically.
type scriptStep struct {
	Frames      int     `json:"frames"`
	DT          float64 `json:"dt,omitempty"` // seconds per frame, default 1/60
	VelocityX   float64 `json:"velocityX,omitempty"`
	VelocityY   float64 `json:"velocityY,omitempty"`
	Facing      float64 `json:"facing,omitempty"`
	Action      string  `json:"action,omitempty"` // idle, attack, block, roll, hurt
	Airborne    bool    `json:"airborne,omitempty"`
	Wind        float64 `json:"wind,omitempty"`

	// Pointer-typed so a script can set an explicit 0 (freezing, exhausted)
	// and an absent field still means the full-vitals default.
	Temperature *float64 `json:"temperature,omitempty"`
	Stamina     *float64 `json:"stamina,omitempty"`
}

// scriptFile is the top-level JSON structure.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a recorded sequence of contexts through an Animator. It
// exists for reproducibility testing and demo choreography: the same script
// against a fresh Animator always yields the same pose sequence.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON context script.
func LoadScript(data []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse context script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse context script: no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// Frames returns the total number of frames the script spans.
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.steps {
		n += st.Frames
	}
	return n
}

// Run replays the script through the animator, integrating position from
// velocity, and calls fn (if non-nil) with every frame's output.
func (s *Script) Run(a *Animator, fn func(*FrameOutput)) {
	pos := Vec2{}
	for _, st := range s.steps {
		dt := st.DT
		if dt <= 0 {
			dt = 1.0 / 60.0
		}
		frames := st.Frames
		if frames <= 0 {
			frames = 1
		}
		for i := 0; i < frames; i++ {
			ctx := DefaultContext()
			ctx.Velocity = Vec2{st.VelocityX, st.VelocityY}
			ctx.Action = parseAction(st.Action)
			ctx.ActionTime = float64(i) / float64(frames)
			ctx.Grounded = !st.Airborne
			ctx.Wind = st.Wind
			if st.Temperature != nil {
				ctx.Temperature = *st.Temperature
			}
			if st.Stamina != nil {
				ctx.Stamina = *st.Stamina
			}
			if st.Facing != 0 {
				ctx.Facing = st.Facing
			}

			pos.X += ctx.Velocity.X * dt
			pos.Y += ctx.Velocity.Y * dt
			ctx.Position = pos

			out := a.Update(dt, ctx)
			if fn != nil {
				fn(out)
			}
		}
	}
}

// parseAction maps a script action label to an ActionState. Unknown labels
// degrade to idle, matching the pipeline's defaulting rules.
func parseAction(label string) ActionState {
	switch label {
	case "attack":
		return ActionAttacking
	case "block":
		return ActionBlocking
	case "roll":
		return ActionRolling
	case "hurt":
		return ActionHurt
	}
	return ActionIdle
}
