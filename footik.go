package marionette

// FootState is the persistent per-foot state owned by the foot IK stage.
// It lives for the character's lifetime and is mutated every frame.
type FootState struct {
	// Planted reports ground contact. While true, PlantedPos is the world
	// position frozen at the plant transition: the zero-slip guarantee.
	Planted    bool
	PlantedPos Vec2
	// ContactTime is seconds since the current plant began.
	ContactTime float64
	// RollPhase is the [0, 1] heel-to-toe roll progress through the stance.
	RollPhase float64

	// groundOffset is the smoothed slope-derived height offset, adapted at
	// a bounded rate.
	groundOffset float64
}

// FootIKModule runs the per-foot plant/roll state machine and resolves both
// legs through the shared two-bone solver.
type FootIKModule struct {
	cfg   *Config
	chain IKChain
	feet  [2]FootState
}

func newFootIKModule(cfg *Config) *FootIKModule {
	return &FootIKModule{
		cfg:   cfg,
		chain: NewIKChain(cfg.ThighLen, cfg.ShinLen),
	}
}

// Foot returns the persistent state of one foot, for metrics subscribers.
func (m *FootIKModule) Foot(s Side) *FootState { return &m.feet[s] }

// Apply adjusts foot targets for terrain, advances the plant/roll machines,
// nudges the pelvis toward the feet, and solves both knees.
func (m *FootIKModule) Apply(dt float64, pose *Pose, ctx *Context, fr *Frame) {
	cfg := m.cfg

	// Pass 1: terrain adaptation and planting. Targets must be final before
	// the pelvis nudge so the nudge can't feed back into plant positions.
	var targets [2]Vec2
	var heightDev float64
	for _, s := range [2]Side{SideLeft, SideRight} {
		foot := &m.feet[s]
		target := fr.FootTarget[s]

		// Ground height adapts toward the slope-derived offset at a bounded
		// rate; it never snaps even across terrain seams.
		slopeOffset := ctx.GroundSlope * cfg.GroundSlopeScale * (target.X - ctx.Position.X)
		foot.groundOffset = MoveToward(foot.groundOffset, slopeOffset, cfg.GroundAdaptSpeed*dt)
		target.Y += foot.groundOffset

		// Plant while entering the stance band; release once the phase
		// leaves it (or the ground does). Phase-based release means a slow
		// shuffle whose swing arc never clears PlantThreshold still breaks
		// its plants on schedule.
		h := fr.SwingHeight[s]
		p := fr.FootPhase[s]
		inStance := p >= cfg.StanceBandStart && p < cfg.StanceBandEnd
		switch {
		case !foot.Planted && fr.Moving && inStance && h < cfg.PlantThreshold:
			foot.Planted = true
			foot.PlantedPos = target
			foot.ContactTime = 0
		case foot.Planted && (!inStance || h > cfg.PlantThreshold || !ctx.Grounded):
			foot.Planted = false
			foot.RollPhase = 0
		}

		if foot.Planted {
			target = foot.PlantedPos
			foot.ContactTime += dt
			foot.RollPhase = clamp01(foot.ContactTime / cfg.RollDuration)
		}

		targets[s] = target
		heightDev += target.Y - fr.GroundY

		fr.Planted[s] = foot.Planted
		fr.ContactTime[s] = foot.ContactTime
		fr.RollPhase[s] = foot.RollPhase
	}

	// Pelvis follows the terrain: sink/lift by a fraction of the average
	// foot-height deviation. Skipped when an authoritative pelvis overlay
	// was supplied.
	if !fr.PelvisOverlay {
		nudge := cfg.PelvisDropRatio * heightDev / 2
		pose.Pelvis.Pos.Y += nudge
		pose.Torso.Pos.Y += nudge
		pose.Head.Pos.Y += nudge
	}

	// Pass 2: leg resolution.
	bend := kneeForwardBend(ctx.Facing)
	for _, s := range [2]Side{SideLeft, SideRight} {
		sign := -1.0
		if s == SideRight {
			sign = 1.0
		}
		leg := pose.LegSide(s)
		leg.Hip.Pos = Vec2{pose.Pelvis.Pos.X + sign*cfg.HipGap, pose.Pelvis.Pos.Y}

		ankleTarget := Vec2{targets[s].X, targets[s].Y - cfg.AnkleHeight}
		knee, ankle := m.chain.Solve(leg.Hip.Pos, ankleTarget, bend)
		leg.Knee.Pos = knee
		leg.Ankle.Pos = ankle

		// Foot marker sits ahead of the ankle at sole height; the toe rolls
		// forward as the stance progresses.
		foot := &m.feet[s]
		leg.Foot.Pos = Vec2{ankle.X + ctx.Facing*cfg.FootLen, targets[s].Y}
		leg.Toe.Pos = Vec2{
			leg.Foot.Pos.X + ctx.Facing*(cfg.ToeLen+foot.RollPhase*cfg.ToeRollBias),
			targets[s].Y,
		}
	}
}
