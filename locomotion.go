package marionette

import "math"

// LocomotionModule owns the continuous gait phase and generates per-foot
// path targets for the foot IK stage. It also lays down the base body line
// (pelvis, torso, head) that later stages hang limbs from.
type LocomotionModule struct {
	cfg         *Config
	phase       float64
	weightShift float64
}

func newLocomotionModule(cfg *Config) *LocomotionModule {
	return &LocomotionModule{cfg: cfg, phase: cfg.RestPhase}
}

// Apply advances the gait phase, computes foot path targets and contact
// cues, and writes the pelvis/torso/head base positions.
func (m *LocomotionModule) Apply(dt float64, pose *Pose, ctx *Context, fr *Frame) {
	cfg := m.cfg

	speed := ctx.Velocity.Length()
	speedRatio := clamp01(speed / cfg.MaxSpeed)
	fatigue := 1 - ctx.Stamina

	cadence := cfg.BaseCadence * (1 + speedRatio*cfg.CadenceScale)
	cadence *= 1 - fatigue*cfg.FatigueInfluence

	moving := ctx.Grounded && speed > cfg.MoveThreshold && ctx.Action != ActionRolling

	if moving {
		m.phase = wrap01(m.phase + cadence*dt)
	} else {
		// Relax toward the rest phase along the shortest arc so the legs
		// settle instead of spinning through a full cycle.
		d := m.phase - cfg.RestPhase
		if d > 0.5 {
			d -= 1
		} else if d < -0.5 {
			d += 1
		}
		m.phase = wrap01(cfg.RestPhase + d*(1-dampFactor(cfg.RestRelaxSpeed, dt)))
	}

	// Alternating gait: the right foot runs half a cycle ahead, plus any
	// configured asymmetry bias.
	fr.FootPhase[SideLeft] = wrap01(m.phase)
	fr.FootPhase[SideRight] = wrap01(m.phase + 0.5 + cfg.GaitAsymmetry)

	// Movement class: compare |vx| against |vy| to pick the stride blend.
	ax := math.Abs(ctx.Velocity.X)
	ay := math.Abs(ctx.Velocity.Y)
	ratio := ay / math.Max(ax, 1e-9)
	blend := cfg.StrideBlendHorizontal
	switch {
	case ratio > cfg.DiagonalRatioHigh:
		blend = cfg.StrideBlendVertical
	case ratio > cfg.DiagonalRatioLow:
		blend = cfg.StrideBlendDiagonal
	}

	dirX := ctx.Facing
	if ax > cfg.MoveThreshold {
		dirX = math.Copysign(1, ctx.Velocity.X)
	}
	dirY := 0.0
	if ay > cfg.MoveThreshold {
		dirY = math.Copysign(1, ctx.Velocity.Y)
	}

	stride := cfg.StrideLength * speedRatio
	groundY := ctx.Position.Y + cfg.legLength()

	for _, s := range [2]Side{SideLeft, SideRight} {
		sign := -1.0
		if s == SideRight {
			sign = 1.0
		}
		hipX := ctx.Position.X + sign*cfg.HipGap

		var along, height float64
		switch {
		case !ctx.Grounded:
			// Airborne: tuck slightly and hold the feet above the plant
			// threshold so any plant releases.
			along, height = 0, cfg.StepHeight
		case moving:
			along, height = m.footPath(fr.FootPhase[s], stride)
			// Step clearance grows with speed; a shuffle barely lifts the
			// feet while a sprint clears the full StepHeight.
			height *= math.Sqrt(speedRatio)
		default:
			// At rest both feet settle under the hips.
			along, height = 0, 0
		}

		fr.SwingHeight[s] = height
		fr.FootTarget[s] = Vec2{
			X: hipX + along*blend.X*dirX,
			Y: groundY - height + along*blend.Y*dirY,
		}

		p := fr.FootPhase[s]
		fr.FootContact[s] = moving && (p < cfg.ContactWindow || p > 1-cfg.ContactWindow)
	}

	// Lateral weight shift, damped for balance recovery.
	shiftTarget := math.Sin(m.phase*2*math.Pi) * cfg.WeightShiftAmount * speedRatio
	m.weightShift = Damp(m.weightShift, shiftTarget, cfg.BalanceSpeed, dt)

	// Pelvis bob runs at double the gait frequency (two footfalls per cycle).
	bob := 0.0
	if ctx.Grounded {
		bob = math.Sin(m.phase*4*math.Pi) * cfg.PelvisBobAmount * speedRatio
	}

	// Upper-body shaping cues consumed by later stages and the render
	// transform. An authoritative spine overlay wins over the approximation.
	fr.TorsoTwist = math.Sin(m.phase*2*math.Pi) * speedRatio * cfg.TorsoTwistGain
	if ctx.SpineBend != nil {
		fr.SpineCurve = *ctx.SpineBend
	} else if speed > 1e-9 {
		fr.SpineCurve = ctx.Velocity.X / speed * speedRatio * cfg.SpineCurveGain
	} else {
		fr.SpineCurve = 0
	}

	// Base body line, recomputed top-down every frame. The spine curve bows
	// the line: half the bend at the torso, the rest at the head, so shoulders
	// and everything hung from them follow the bend.
	pelvisY := ctx.Position.Y + bob
	if ctx.PelvisOffset != nil {
		pelvisY = ctx.Position.Y + *ctx.PelvisOffset
		fr.PelvisOverlay = true
	} else {
		fr.PelvisOverlay = false
	}
	bend := fr.SpineCurve * cfg.TorsoLen
	pose.Pelvis.Pos = Vec2{ctx.Position.X + m.weightShift, pelvisY}
	pose.Torso.Pos = Vec2{pose.Pelvis.Pos.X + bend*0.5, pose.Pelvis.Pos.Y - cfg.TorsoLen}
	pose.Torso.Rotation = fr.SpineCurve
	pose.Head.Pos = Vec2{pose.Torso.Pos.X + bend*0.5, pose.Torso.Pos.Y - cfg.NeckLen}

	fr.GaitPhase = m.phase
	fr.Moving = moving
	fr.Cadence = cadence
	fr.SpeedRatio = speedRatio
	fr.WeightShift = m.weightShift
	fr.GroundY = groundY
}

// footPath returns the stride-relative forward offset and ground clearance
// for one foot at gait phase p.
//
// Inside the stance band the foot carries weight: clearance is zero and the
// offset sweeps from front to back as the body passes over it, plus a small
// forward weight-transfer advance. Outside the band the foot swings through
// a cubic Bezier arc from the stance exit point back to the front.
func (m *LocomotionModule) footPath(p, stride float64) (along, height float64) {
	cfg := m.cfg
	bandLen := cfg.StanceBandEnd - cfg.StanceBandStart

	if p >= cfg.StanceBandStart && p < cfg.StanceBandEnd {
		ps := (p - cfg.StanceBandStart) / bandLen
		along = (0.5-ps)*stride + cfg.WeightTransferFraction*stride*ps
		return along, 0
	}

	// Swing progress: the band outside [start, end) spans 1-bandLen of the
	// cycle, wrapping through 0.
	var s float64
	if p >= cfg.StanceBandEnd {
		s = (p - cfg.StanceBandEnd) / (1 - bandLen)
	} else {
		s = (p + 1 - cfg.StanceBandEnd) / (1 - bandLen)
	}

	exitX := (0.5-1)*stride + cfg.WeightTransferFraction*stride // stance exit offset
	enterX := 0.5 * stride                                      // stance entry offset

	// Cubic Bezier low -> peak clearance -> low. The 4/3 control height
	// makes the apex hit exactly StepHeight at s = 0.5.
	x0, x3 := exitX, enterX
	x1 := x0 + (x3-x0)/3
	x2 := x0 + (x3-x0)*2/3
	h := cfg.StepHeight * 4 / 3

	u := 1 - s
	along = u*u*u*x0 + 3*u*u*s*x1 + 3*u*s*s*x2 + s*s*s*x3
	height = 3*u*u*s*h + 3*u*s*s*h
	return along, height
}
