package marionette

import "math"

// Vec2 is a 2D vector used for positions, velocities, offsets, and
// directions throughout the API. Y increases downward, matching screen
// coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Side selects the left or right limb of a bilateral pair. Per-side state is
// stored in [2]-element arrays indexed by Side.
type Side int

const (
	SideLeft  Side = iota // left arm / left leg
	SideRight             // right arm / right leg
)

// ActionState is the combat-layer action label supplied by the game core.
// The zero value is ActionIdle, so an unset Context degrades to idle posing.
type ActionState uint8

const (
	ActionIdle      ActionState = iota // no action; locomotion-driven posing
	ActionAttacking                    // windup -> strike -> recovery envelope
	ActionBlocking                     // raised guard, braced stance
	ActionRolling                      // tucked evade roll
	ActionHurt                         // hit reaction
)

// ImpulseEvent is a discrete gameplay event that injects a directional
// impulse into the secondary-motion layer (equipment recoil).
type ImpulseEvent uint8

const (
	EventLanding     ImpulseEvent = iota // touched down after airborne
	EventHurt                            // took a hit
	EventBlockImpact                     // absorbed a hit while blocking
)

// Context carries the per-frame inputs read by every pipeline stage. It is
// immutable for the duration of one Update call; the animator never writes
// to it and never retains it across frames.
//
// All fields are defensively clamped: a zero-value Context is a valid
// "standing still, idle" frame. Use DefaultContext for sensible vitals.
type Context struct {
	// Position is the character's root anchor in world space. Foot planting
	// freezes ground positions in this space, so it must be the same space
	// the renderer uses.
	Position Vec2

	// Velocity is the character's movement vector in world units per second.
	Velocity Vec2

	// Facing is the horizontal facing sign: +1 right, -1 left. Zero is
	// treated as +1.
	Facing float64

	// Action is the current combat action; ActionTime is the normalized
	// [0, 1] progress through it.
	Action     ActionState
	ActionTime float64

	// Grounded reports whether the character is standing on ground. Gait
	// and foot planting are suspended while airborne.
	Grounded bool

	// Wind is the normalized [0, 1] environmental wind strength.
	// Temperature is the normalized [0, 1] ambient temperature; values
	// below Config.ShiverThreshold trigger shivering.
	Wind        float64
	Temperature float64

	// Stamina and Health are normalized [0, 1] vitals. Low stamina slows
	// the gait and deepens breathing.
	Stamina float64
	Health  float64

	// GroundSlope is the terrain slope under the character (rise per unit
	// run, positive downhill in screen space). Foot ground heights adapt
	// toward it at a bounded rate.
	GroundSlope float64

	// LookAt, when non-nil, overrides head stabilization with a clamped
	// look-at toward the target point.
	LookAt *Vec2

	// SpineBend and PelvisOffset are authoritative overlays: when non-nil
	// they replace the internally approximated spine curvature and pelvis
	// height offset, letting a higher-fidelity source supersede the
	// approximation without code changes.
	SpineBend    *float64
	PelvisOffset *float64

	// Events are the discrete impulse events that occurred this frame.
	Events []ImpulseEvent
}

// DefaultContext returns an idle, grounded, full-vitals context facing right
// in warm, windless conditions.
func DefaultContext() Context {
	return Context{
		Facing:      1,
		Grounded:    true,
		Stamina:     1,
		Health:      1,
		Temperature: 1,
	}
}

// sanitize clamps every scalar into its documented range and maps any
// non-finite value to its neutral default, so downstream trigonometry and
// smoothing never see NaN or Inf. Bad input degrades, it never fails.
func (c *Context) sanitize() {
	if c.Facing >= 0 || math.IsNaN(c.Facing) {
		c.Facing = 1
	} else {
		c.Facing = -1
	}
	c.ActionTime = clamp01(finiteOr(c.ActionTime, 0))
	c.Wind = clamp01(finiteOr(c.Wind, 0))
	c.Temperature = clamp01(finiteOr(c.Temperature, 1))
	c.Stamina = clamp01(finiteOr(c.Stamina, 1))
	c.Health = clamp01(finiteOr(c.Health, 1))
	c.GroundSlope = finiteOr(c.GroundSlope, 0)
	c.Position.X = finiteOr(c.Position.X, 0)
	c.Position.Y = finiteOr(c.Position.Y, 0)
	c.Velocity.X = finiteOr(c.Velocity.X, 0)
	c.Velocity.Y = finiteOr(c.Velocity.Y, 0)

	// Overlays carrying non-finite values fall back to the internal
	// approximations. The pointed-to values are never written.
	if c.LookAt != nil && (!isFinite(c.LookAt.X) || !isFinite(c.LookAt.Y)) {
		c.LookAt = nil
	}
	if c.SpineBend != nil && !isFinite(*c.SpineBend) {
		c.SpineBend = nil
	}
	if c.PelvisOffset != nil && !isFinite(*c.PelvisOffset) {
		c.PelvisOffset = nil
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteOr replaces NaN and infinities with a safe default.
func finiteOr(v, def float64) float64 {
	if !isFinite(v) {
		return def
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap01 wraps v into [0, 1).
func wrap01(v float64) float64 {
	v -= math.Floor(v)
	if v >= 1 { // guard against -1e-18 flooring artifacts
		v = 0
	}
	return v
}
