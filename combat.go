package marionette

import "math"

// CombatModule maps the action state to hand-target intents. It emits only
// targets; every joint is resolved later by the arm IK stage, so there is
// exactly one place that does arm geometry.
type CombatModule struct {
	cfg     *Config
	targets [2]Vec2
	primed  bool
}

func newCombatModule(cfg *Config) *CombatModule {
	return &CombatModule{cfg: cfg}
}

// Apply computes the desired hand positions for the current action and damps
// the smoothed targets toward them. Targets never snap, even across action
// transitions.
func (m *CombatModule) Apply(dt float64, pose *Pose, ctx *Context, fr *Frame) {
	cfg := m.cfg

	var desired [2]Vec2
	for _, s := range [2]Side{SideLeft, SideRight} {
		desired[s] = m.desiredTarget(s, pose, ctx, fr)
	}

	if !m.primed {
		// First frame: start at the desired pose instead of sweeping in
		// from the zero vector.
		m.targets = desired
		m.primed = true
	}

	// Hands track faster when the body moves faster.
	rate := cfg.HandDampBase + fr.SpeedRatio*cfg.HandDampSpeedGain
	for _, s := range [2]Side{SideLeft, SideRight} {
		m.targets[s] = DampVec(m.targets[s], desired[s], rate, dt)
		fr.HandTarget[s] = m.targets[s]
	}
}

// desiredTarget returns the raw (undamped) hand target for one side.
func (m *CombatModule) desiredTarget(s Side, pose *Pose, ctx *Context, fr *Frame) Vec2 {
	cfg := m.cfg
	sign := -1.0
	if s == SideRight {
		sign = 1.0
	}
	shoulder := Vec2{pose.Torso.Pos.X + sign*cfg.ShoulderGap, pose.Torso.Pos.Y}
	hang := cfg.UpperArmLen + cfg.ForearmLen*0.7

	switch ctx.Action {
	case ActionAttacking:
		// Windup -> peak -> retract envelope. The weapon hand leads; the
		// off hand pulls back for balance.
		reach := math.Sin(ctx.ActionTime*math.Pi) * cfg.AttackStrength
		if s == SideRight {
			return Vec2{
				X: shoulder.X + ctx.Facing*(cfg.ForearmLen+reach),
				Y: shoulder.Y + cfg.UpperArmLen*0.5 - math.Sin(ctx.ActionTime*math.Pi)*cfg.AttackLift,
			}
		}
		return Vec2{
			X: shoulder.X - ctx.Facing*reach*0.4,
			Y: shoulder.Y + hang*0.8,
		}

	case ActionBlocking:
		// Both hands raised to guard height, shifted slightly into the
		// incoming direction.
		spread := sign * 2.0
		return Vec2{
			X: pose.Torso.Pos.X + ctx.Facing*(cfg.GuardReach+cfg.GuardLean*cfg.TorsoLen) + spread,
			Y: pose.Torso.Pos.Y - cfg.GuardHeight + math.Abs(spread),
		}

	case ActionRolling:
		// Tucked symmetrically against the torso.
		return Vec2{
			X: pose.Torso.Pos.X + sign*cfg.TuckRadius*0.6,
			Y: pose.Torso.Pos.Y + cfg.TuckRadius,
		}
	}

	// Idle / locomotion: arms hang and counter-swing the legs (the left arm
	// swings with the right leg), gated by the moving flag.
	swing := 0.0
	if fr.Moving {
		swing = math.Sin(fr.GaitPhase*2*math.Pi) * cfg.ArmSwingAmount * fr.SpeedRatio
	}
	return Vec2{
		X: shoulder.X + sign*1.5 - sign*swing,
		Y: shoulder.Y + hang,
	}
}
