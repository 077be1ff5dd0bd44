package marionette

import (
	"math"
	"testing"
)

func transformFixture() (renderTransformState, Context, Frame) {
	cfg := DefaultConfig()
	return renderTransformState{cfg: &cfg}, DefaultContext(), Frame{}
}

func TestTransformNearIdentityAtRest(t *testing.T) {
	r, ctx, fr := transformFixture()

	out := r.update(stepDT, &ctx, &fr)
	assertNear(t, "scale x", out.ScaleX, 1)
	assertNear(t, "rotation", out.Rotation, 0)
	assertNear(t, "offset x", out.Offset.X, 0)
	if math.Abs(out.ScaleY-1) > r.cfg.BreathAmount*2 {
		t.Errorf("scale y %v, want identity plus breathing only", out.ScaleY)
	}
}

func TestBreathingStaysBounded(t *testing.T) {
	r, ctx, fr := transformFixture()
	ctx.Stamina = 0 // deepest breathing

	for i := 0; i < 600; i++ {
		out := r.update(stepDT, &ctx, &fr)
		if math.Abs(out.ScaleY-1) > r.cfg.BreathAmount*1.5+1e-9 {
			t.Fatalf("frame %d: scale y %v outside breathing envelope", i, out.ScaleY)
		}
	}
}

func TestInjurySlump(t *testing.T) {
	r, ctx, fr := transformFixture()
	healthy := r.update(stepDT, &ctx, &fr)

	r2, ctx2, fr2 := transformFixture()
	ctx2.Health = 0
	wounded := r2.update(stepDT, &ctx2, &fr2)

	assertNearTol(t, "slump", wounded.Offset.Y-healthy.Offset.Y, r.cfg.InjurySlump, 1e-9)
}

func TestLeanClampedAndCountered(t *testing.T) {
	r, ctx, fr := transformFixture()
	ctx.Velocity = Vec2{X: 500}
	ctx.Stamina = 0 // fatigue amplifies lean into the clamp

	out := r.update(stepDT, &ctx, &fr)
	momentumLean := 0.0 // momentum only offsets, never rotates
	assertNearTol(t, "clamped lean", out.Rotation-momentumLean, r.cfg.LeanClamp, 1e-9)
	assertNearTol(t, "shoulder counter", fr.ShoulderTilt, -r.cfg.LeanClamp*r.cfg.ShoulderCounter, 1e-9)
}

func TestRollSquashProfile(t *testing.T) {
	cfg := DefaultConfig()
	ctx := DefaultContext()
	ctx.Action = ActionRolling
	var fr Frame

	at := func(tm float64) RenderTransform {
		r := renderTransformState{cfg: &cfg}
		ctx.ActionTime = tm
		return r.update(stepDT, &ctx, &fr)
	}

	mid := at(0.5)
	assertNearTol(t, "mid-roll squash", mid.ScaleY, 1-cfg.RollSquash, 0.01)
	assertNearTol(t, "mid-roll stretch", mid.ScaleX, 1+cfg.RollStretch, 0.01)
	assertNearTol(t, "mid-roll rotation", mid.Rotation, ctx.Facing*cfg.RollRotation*0.5, 1e-3)

	start := at(0.01)
	end := at(0.99)
	assertNearTol(t, "roll-in scale", start.ScaleY, 1, 0.02)
	assertNearTol(t, "roll-out scale", end.ScaleY, 1, 0.02)
	if end.Rotation < mid.Rotation {
		t.Errorf("roll rotation regressed: end %v < mid %v", end.Rotation, mid.Rotation)
	}
}

func TestAttackPhaseOffsets(t *testing.T) {
	cfg := DefaultConfig()
	ctx := DefaultContext()
	ctx.Action = ActionAttacking
	var fr Frame

	at := func(tm float64) RenderTransform {
		r := renderTransformState{cfg: &cfg}
		ctx.ActionTime = tm
		return r.update(stepDT, &ctx, &fr)
	}

	windup := at(0.15)
	strike := at(0.5)
	recovery := at(0.85)

	if windup.Offset.X >= 0 {
		t.Errorf("windup offset %v, want a pull-back against facing", windup.Offset.X)
	}
	if strike.Offset.X <= 0 {
		t.Errorf("strike offset %v, want forward thrust", strike.Offset.X)
	}
	if recovery.Offset.X <= 0 || recovery.Offset.X >= strike.Offset.X {
		t.Errorf("recovery offset %v, want settling between strike %v and stance", recovery.Offset.X, strike.Offset.X)
	}
}

func TestBlockingCrouches(t *testing.T) {
	r, ctx, fr := transformFixture()
	ctx.Action = ActionBlocking

	out := r.update(stepDT, &ctx, &fr)
	if out.ScaleY >= 1 {
		t.Errorf("scale y %v, want a crouch below 1", out.ScaleY)
	}
	if out.Offset.Y < r.cfg.BlockDip*0.5 {
		t.Errorf("offset y %v, want the guard dip", out.Offset.Y)
	}
	assertNear(t, "guard lean", out.Rotation, ctx.Facing*r.cfg.GuardLean)
}

func TestMomentumTrailsAfterStop(t *testing.T) {
	r, ctx, fr := transformFixture()
	ctx.Velocity = Vec2{X: 200}
	for i := 0; i < 60; i++ {
		r.update(stepDT, &ctx, &fr)
	}

	ctx.Velocity = Vec2{}
	out := r.update(stepDT, &ctx, &fr)
	if out.Offset.X <= 0 {
		t.Errorf("offset x %v right after stopping, want residual momentum", out.Offset.X)
	}
	for i := 0; i < 180; i++ {
		out = r.update(stepDT, &ctx, &fr)
	}
	assertNearTol(t, "settled offset", out.Offset.X, 0, 0.05)
}
