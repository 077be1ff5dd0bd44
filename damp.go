package marionette

import "math"

// Damp moves current toward target with critically damped exponential
// smoothing:
//
//	next = current + (target - current) * (1 - e^(-speed*dt))
//
// Convergence is monotonic, never overshoots, and is frame-rate independent:
// two half-steps land where one full step does. speed and dt are clamped to
// be non-negative; speed 0 returns current unchanged.
//
// This is the library's one blending primitive. Linear lerps would make pose
// smoothing depend on tick rate, so every smoothed quantity goes through
// here (or DampVec).
func Damp(current, target, speed, dt float64) float64 {
	return current + (target-current)*dampFactor(speed, dt)
}

// DampVec applies Damp per axis.
func DampVec(current, target Vec2, speed, dt float64) Vec2 {
	f := dampFactor(speed, dt)
	return Vec2{
		X: current.X + (target.X-current.X)*f,
		Y: current.Y + (target.Y-current.Y)*f,
	}
}

// dampFactor returns 1 - e^(-speed*dt), clamped into [0, 1].
func dampFactor(speed, dt float64) float64 {
	if speed <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-speed*dt)
}

// MoveToward moves current toward target by at most maxDelta, never
// overshooting. Unlike Damp the approach rate is constant, which is what
// bounded-rate adaptation (foot ground height) wants.
func MoveToward(current, target, maxDelta float64) float64 {
	d := target - current
	if math.Abs(d) <= maxDelta {
		return target
	}
	if d > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}
