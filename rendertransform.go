package marionette

import "math"

// RenderTransform is the flattened whole-body transform handed to the
// renderer alongside the pose: squash/stretch scale, body rotation, and a
// positional offset in world units. Identity is {1, 1, 0, (0,0)}.
type RenderTransform struct {
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Offset   Vec2
}

// renderTransformState accumulates the smoothed quantities behind the render
// transform: breathing phase and the momentum overlay.
type renderTransformState struct {
	cfg         *Config
	momentum    Vec2
	breathPhase float64
}

// update composes breathing, lean, momentum, and the action envelopes into
// one transform. Everything is additive over identity; no stage below the
// animator ever reads it back.
func (r *renderTransformState) update(dt float64, ctx *Context, fr *Frame) RenderTransform {
	cfg := r.cfg
	out := RenderTransform{ScaleX: 1, ScaleY: 1}

	fatigue := 1 - ctx.Stamina

	// Breathing: slower and deeper when tired, suppressed while blocking.
	r.breathPhase += cfg.BreathRate * (1 - fatigue*cfg.FatigueInfluence) * dt
	intensity := 1 + fatigue*0.5
	if ctx.Action == ActionBlocking {
		intensity *= 0.7
	}
	breath := math.Sin(r.breathPhase*2*math.Pi) * intensity
	out.ScaleY *= 1 + breath*cfg.BreathAmount
	out.Offset.Y += breath * cfg.BreathAmount * 20

	// Injury slump: a wounded character sags regardless of action.
	out.Offset.Y += (1 - ctx.Health) * cfg.InjurySlump

	// Velocity lean with shoulder counter-rotation. Tired characters lean
	// harder.
	speed := ctx.Velocity.Length()
	if speed > 1e-9 && ctx.Action != ActionRolling && ctx.Action != ActionBlocking {
		nx := ctx.Velocity.X / speed
		lean := clamp(nx*cfg.LeanGain*(1+fatigue*cfg.FatigueInfluence), -cfg.LeanClamp, cfg.LeanClamp)
		out.Rotation += lean
		fr.ShoulderTilt = -lean * cfg.ShoulderCounter
	} else {
		fr.ShoulderTilt = 0
	}

	// Momentum overlay: a damped trail of recent velocity.
	r.momentum = DampVec(r.momentum, ctx.Velocity, cfg.MomentumDamp, dt)
	out.Offset.X += r.momentum.X * cfg.MomentumGain
	out.Offset.Y += r.momentum.Y * cfg.MomentumGain * 0.6

	switch ctx.Action {
	case ActionRolling:
		r.applyRoll(ctx, &out)
	case ActionAttacking:
		r.applyAttack(ctx, &out)
	case ActionBlocking:
		out.ScaleY *= cfg.BlockCrouch
		out.Offset.Y += cfg.BlockDip
		out.Rotation += ctx.Facing * cfg.GuardLean
	}

	return out
}

// applyRoll drives squash and stretch through the eased roll time:
// compression for the first 30%, maximum squash mid-roll, extension for the
// last 30%, with body rotation following the eased progress.
func (r *renderTransformState) applyRoll(ctx *Context, out *RenderTransform) {
	cfg := r.cfg
	t := ctx.ActionTime
	w := float64(cfg.RollEase(float32(t), 0, 1, 1))

	switch {
	case t < 0.3:
		c := t / 0.3
		out.ScaleY *= 1 - cfg.RollSquash*c
		out.ScaleX *= 1 + cfg.RollStretch*c
	case t > 0.7:
		e := (t - 0.7) / 0.3
		out.ScaleY *= 1 - cfg.RollSquash*(1-e)
		out.ScaleX *= 1 + cfg.RollStretch*(1-e)
	default:
		out.ScaleY *= 1 - cfg.RollSquash
		out.ScaleX *= 1 + cfg.RollStretch
	}

	out.Rotation += ctx.Facing * cfg.RollRotation * w
}

// applyAttack adds the anticipation/strike/recovery body offsets. The phase
// split reuses the pronation window: windup before it, active swing inside
// it, recovery after.
func (r *renderTransformState) applyAttack(ctx *Context, out *RenderTransform) {
	cfg := r.cfg
	t := ctx.ActionTime
	ws, we := cfg.PronationWindowStart, cfg.PronationWindowEnd

	switch {
	case t < ws:
		// Anticipation: draw back and coil.
		a := float64(cfg.AttackEase(float32(t/ws), 0, 1, 1))
		out.Offset.X -= ctx.Facing * cfg.AttackAnticipation * a
		out.Offset.Y -= cfg.AttackAnticipation * 0.15 * a
	case t < we:
		// Strike: explosive forward commitment.
		s := float64(cfg.AttackEase(float32((t-ws)/(we-ws)), 0, 1, 1))
		out.Offset.X += ctx.Facing * cfg.AttackThrust * s
		out.Offset.Y += cfg.AttackThrust * 0.2 * s
	default:
		// Recovery: settle back to stance.
		rec := 1 - float64(cfg.AttackEase(float32((t-we)/(1-we)), 0, 1, 1))
		out.Offset.X += ctx.Facing * cfg.AttackThrust * 0.45 * rec
	}
}
