package marionette

import "math"

// Equipment is the resolved state of a held item: position, tilt, and the
// decaying recoil impulse currently acting on it.
type Equipment struct {
	Pos      Vec2
	Rotation float64
}

// SecondaryMotionModule relaxes the trailing cloth and hair chains toward
// their anchors and drives the equipment jiggle and impulse response. The
// chains are allocated once at construction and never resized; relaxation is
// a cheap deterministic approximation, not a physical integrator.
type SecondaryMotionModule struct {
	cfg     *Config
	cloth   []Vec2
	hair    []Vec2
	impulse Vec2
	time    float64
	primed  bool
}

func newSecondaryMotionModule(cfg *Config) *SecondaryMotionModule {
	return &SecondaryMotionModule{
		cfg:   cfg,
		cloth: make([]Vec2, cfg.ClothPoints),
		hair:  make([]Vec2, cfg.HairPoints),
	}
}

// Apply relaxes every chain point toward its predecessor plus a directional
// bias (wind, momentum, per-index oscillation), anchors equipment to the
// resolved weapon hand, and decays the impulse accumulator.
func (m *SecondaryMotionModule) Apply(dt float64, pose *Pose, ctx *Context, fr *Frame) {
	cfg := m.cfg
	m.time += dt

	if !m.primed {
		m.seed(pose, ctx)
		m.primed = true
	}

	// Shared directional bias: wind pushes sideways, momentum trails the
	// chain opposite to travel.
	bias := Vec2{
		X: ctx.Wind*cfg.WindDragFactor - ctx.Velocity.X*cfg.MomentumFactor,
		Y: -ctx.Velocity.Y * cfg.MomentumFactor,
	}

	m.relaxChain(m.cloth, pose.Pelvis.Pos, cfg.ClothSpacing, cfg.ClothStiffness, bias, ctx, dt)
	m.relaxChain(m.hair, pose.Head.Pos, cfg.HairSpacing, cfg.HairStiffness, bias, ctx, dt)

	// Equipment: anchored to the weapon hand, plus jiggle and recoil.
	for _, ev := range ctx.Events {
		switch ev {
		case EventLanding:
			m.impulse.Y += cfg.LandingImpulse
		case EventHurt:
			m.impulse.X -= ctx.Facing * cfg.HurtImpulse
		case EventBlockImpact:
			m.impulse.X -= ctx.Facing * cfg.BlockImpulse
		}
	}
	decay := math.Exp(-cfg.ImpulseDecay * dt)
	m.impulse.X *= decay
	m.impulse.Y *= decay

	hand := pose.RightArm.Hand
	jiggle := math.Sin(m.time*cfg.SwayFrequency*2) * cfg.JiggleAmount * (0.5 + fr.SpeedRatio)
	fr.Equipment = Equipment{
		Pos: Vec2{
			X: hand.Pos.X + m.impulse.X,
			Y: hand.Pos.Y + jiggle + m.impulse.Y,
		},
		Rotation: hand.Rotation + jiggle*0.05,
	}
	fr.EquipmentImpulse = m.impulse
	fr.Cloth = m.cloth
	fr.Hair = m.hair
}

// relaxChain damps every point toward previous-point + rest offset + bias,
// with a per-index sway/bounce oscillation so the tail moves more than the
// root.
func (m *SecondaryMotionModule) relaxChain(points []Vec2, anchor Vec2, spacing, stiffness float64, bias Vec2, ctx *Context, dt float64) {
	cfg := m.cfg
	prev := anchor
	for i := range points {
		depth := float64(i + 1)
		osc := m.time*cfg.SwayFrequency + depth*0.7
		target := Vec2{
			X: prev.X - ctx.Facing*spacing*cfg.ClothDrape + (bias.X+math.Sin(osc)*cfg.SwayAmount)*depth,
			Y: prev.Y + spacing + (bias.Y+math.Cos(osc)*cfg.BounceAmount)*depth*0.5,
		}
		points[i] = DampVec(points[i], target, stiffness, dt)
		prev = points[i]
	}
}

// seed drops the chains straight down from their anchors so the first frame
// doesn't whip in from the origin.
func (m *SecondaryMotionModule) seed(pose *Pose, ctx *Context) {
	cfg := m.cfg
	prev := pose.Pelvis.Pos
	for i := range m.cloth {
		prev = Vec2{prev.X - ctx.Facing*cfg.ClothSpacing*cfg.ClothDrape, prev.Y + cfg.ClothSpacing}
		m.cloth[i] = prev
	}
	prev = pose.Head.Pos
	for i := range m.hair {
		prev = Vec2{prev.X - ctx.Facing*cfg.HairSpacing*cfg.ClothDrape, prev.Y + cfg.HairSpacing}
		m.hair[i] = prev
	}
}
