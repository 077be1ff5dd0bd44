package marionette

import "math"

// ArmIKModule resolves the combat stage's hand targets into elbow and wrist
// positions via the shared two-bone solver, and computes wrist orientation
// and pronation per action state.
type ArmIKModule struct {
	cfg       *Config
	chain     IKChain
	wristRot  [2]float64
	pronation [2]float64
}

func newArmIKModule(cfg *Config) *ArmIKModule {
	return &ArmIKModule{
		cfg:   cfg,
		chain: NewIKChain(cfg.UpperArmLen, cfg.ForearmLen),
	}
}

// Apply solves both arms against the smoothed hand targets with the
// anatomical elbow-down preference, then extends the hand tip from the wrist
// along the damped wrist orientation.
func (m *ArmIKModule) Apply(dt float64, pose *Pose, ctx *Context, fr *Frame) {
	cfg := m.cfg

	for _, s := range [2]Side{SideLeft, SideRight} {
		sign := -1.0
		if s == SideRight {
			sign = 1.0
		}
		arm := pose.ArmSide(s)
		arm.Shoulder.Pos = Vec2{pose.Torso.Pos.X + sign*cfg.ShoulderGap, pose.Torso.Pos.Y}

		target := fr.HandTarget[s]
		elbow, wrist := m.chain.Solve(arm.Shoulder.Pos, target, elbowDownBend(arm.Shoulder.Pos, target))
		arm.Elbow.Pos = elbow
		arm.Wrist.Pos = wrist

		// Wrist orientation follows the forearm; pronation depends on the
		// action. Both are damped so action transitions never snap.
		forearmAngle := math.Atan2(wrist.Y-elbow.Y, wrist.X-elbow.X)
		m.wristRot[s] = Damp(m.wristRot[s], forearmAngle, cfg.WristResponsiveness, dt)
		m.pronation[s] = Damp(m.pronation[s], m.desiredPronation(ctx), cfg.WristResponsiveness, dt)

		rot := m.wristRot[s]
		arm.Wrist.Rotation = rot
		arm.Wrist.Pronation = m.pronation[s]

		// Hand tip extends a fixed hand length from the wrist; pronation
		// tilts it, mirrored by the facing sign.
		tilt := rot + m.pronation[s]*0.3*ctx.Facing
		arm.Hand.Pos = Vec2{
			X: wrist.X + math.Cos(tilt)*cfg.HandLen,
			Y: wrist.Y + math.Sin(tilt)*cfg.HandLen,
		}
		arm.Hand.Rotation = tilt

		fr.WristRotation[s] = rot
		fr.Pronation[s] = m.pronation[s]
	}
}

// desiredPronation returns the target palm-turn for the current action:
// pronated only inside the active-swing window of an attack, supinated while
// winding up, retracting, or guarding, near-neutral otherwise.
func (m *ArmIKModule) desiredPronation(ctx *Context) float64 {
	cfg := m.cfg
	switch ctx.Action {
	case ActionAttacking:
		if ctx.ActionTime >= cfg.PronationWindowStart && ctx.ActionTime <= cfg.PronationWindowEnd {
			return -cfg.PronationAmount
		}
		return cfg.SupinationAmount
	case ActionBlocking:
		return cfg.SupinationAmount
	}
	return 0
}
