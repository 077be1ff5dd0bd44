package marionette

import "math"

// EnvironmentModule applies wind and temperature as small additive offsets.
// It runs last so it never fights the resolution done by earlier stages.
type EnvironmentModule struct {
	cfg  *Config
	time float64
}

func newEnvironmentModule(cfg *Config) *EnvironmentModule {
	return &EnvironmentModule{cfg: cfg}
}

// Apply nudges the torso, head, and hands sideways with the wind and adds a
// shiver oscillation once the temperature drops below the threshold.
func (m *EnvironmentModule) Apply(dt float64, pose *Pose, ctx *Context, fr *Frame) {
	cfg := m.cfg
	m.time += dt

	sway := math.Sin(m.time*cfg.WindFrequency) * ctx.Wind * cfg.WindResponse
	pose.Torso.Pos.X += sway
	pose.Head.Pos.X += sway * 1.3
	pose.LeftArm.Hand.Pos.X += sway * 0.5
	pose.RightArm.Hand.Pos.X += sway * 0.5

	shiver := 0.0
	if ctx.Temperature < cfg.ShiverThreshold {
		intensity := (cfg.ShiverThreshold - ctx.Temperature) / cfg.ShiverThreshold
		shiver = math.Sin(m.time*cfg.ShiverFrequency) * intensity * cfg.ShiverAmount
		pose.Torso.Pos.Y += shiver
		pose.Head.Pos.Y += shiver
	}

	fr.WindSway = sway
	fr.Shiver = shiver
}
