package marionette

import "math"

// HeadGazeModule stabilizes the head against torso motion, optionally aims
// it at a look-at target, and adds a micro-nod on footfalls.
type HeadGazeModule struct {
	cfg         *Config
	yaw         float64
	pitch       float64
	nod         float64
	prevContact [2]bool
}

func newHeadGazeModule(cfg *Config) *HeadGazeModule {
	return &HeadGazeModule{cfg: cfg}
}

// Apply writes the head rotation and nod offset. Yaw counters the torso
// twist anti-phase unless a look-at target overrides it.
func (m *HeadGazeModule) Apply(dt float64, pose *Pose, ctx *Context, fr *Frame) {
	cfg := m.cfg

	// Default: anti-phase stabilization against the torso twist.
	yawTarget := -fr.TorsoTwist * cfg.HeadCounterRatio
	pitchTarget := 0.0

	if ctx.LookAt != nil {
		dx := ctx.LookAt.X - pose.Head.Pos.X
		dy := ctx.LookAt.Y - pose.Head.Pos.Y

		// In-plane turn toward the target, relative to the facing
		// direction, clamped to the anatomical range.
		ang := math.Atan2(dy, dx)
		if ctx.Facing < 0 {
			ang = normalizeAngle(math.Pi - ang)
		}
		yawTarget = clamp(ang, -cfg.MaxHeadYaw, cfg.MaxHeadYaw)
		pitchTarget = clamp(math.Atan2(dy, math.Abs(dx)+1e-9), -cfg.MaxHeadPitch, cfg.MaxHeadPitch)
	}

	m.yaw = Damp(m.yaw, yawTarget, cfg.HeadResponsiveness, dt)
	m.pitch = Damp(m.pitch, pitchTarget, cfg.HeadResponsiveness, dt)

	// Footfall micro-nod: an impulse on each new ground contact, decaying
	// via damped interpolation.
	for _, s := range [2]Side{SideLeft, SideRight} {
		if fr.FootContact[s] && !m.prevContact[s] {
			m.nod = cfg.NodAmount
		}
		m.prevContact[s] = fr.FootContact[s]
	}
	m.nod = Damp(m.nod, 0, cfg.NodDecay, dt)

	pose.Head.Rotation = m.yaw * ctx.Facing
	pose.Head.Pos.Y += m.nod + m.pitch*cfg.NeckLen*0.3

	fr.HeadYaw = m.yaw
	fr.HeadNod = m.nod
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
