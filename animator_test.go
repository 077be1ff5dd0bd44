package marionette

import (
	"math"
	"testing"
)

func TestUpdateDeterministicReplay(t *testing.T) {
	run := func() ([]Pose, []RenderTransform) {
		a := NewAnimator(DefaultConfig())
		ctx := DefaultContext()
		poses := make([]Pose, 0, 300)
		xforms := make([]RenderTransform, 0, 300)

		for i := 0; i < 300; i++ {
			switch {
			case i < 100:
				ctx.Velocity = Vec2{X: 180}
				ctx.Action = ActionIdle
			case i < 160:
				ctx.Velocity = Vec2{}
				ctx.Action = ActionAttacking
				ctx.ActionTime = float64(i-100) / 60
			default:
				ctx.Action = ActionRolling
				ctx.ActionTime = float64(i-160) / 140
				ctx.Wind = 0.4
				ctx.Temperature = 0.1
			}
			ctx.Position.X += ctx.Velocity.X * stepDT
			out := a.Update(stepDT, ctx)
			poses = append(poses, out.Pose)
			xforms = append(xforms, out.Transform)
		}
		return poses, xforms
	}

	p1, x1 := run()
	p2, x2 := run()
	for i := range p1 {
		// Bit-identical, not merely close: same inputs, same history, same
		// pose, with no hidden clock or randomness anywhere.
		if p1[i] != p2[i] {
			t.Fatalf("frame %d: replayed pose differs", i)
		}
		if x1[i] != x2[i] {
			t.Fatalf("frame %d: replayed transform differs", i)
		}
	}
}

func TestUpdateAllocatesNothing(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	ctx := DefaultContext()
	ctx.Velocity = Vec2{X: 120}
	for i := 0; i < 10; i++ {
		a.Update(stepDT, ctx)
	}

	allocs := testing.AllocsPerRun(200, func() {
		ctx.Position.X += ctx.Velocity.X * stepDT
		a.Update(stepDT, ctx)
	})
	if allocs != 0 {
		t.Errorf("Update allocates %v times per frame, want 0", allocs)
	}
}

func TestUpdateClampsHugeTimeStep(t *testing.T) {
	a1 := NewAnimator(DefaultConfig())
	a2 := NewAnimator(DefaultConfig())
	ctx := DefaultContext()
	ctx.Velocity = Vec2{X: 120}

	out1 := a1.Update(10, ctx)
	out2 := a2.Update(maxDeltaTime, ctx)
	if out1.Pose != out2.Pose {
		t.Error("a 10s step should behave exactly like the clamp ceiling")
	}
}

func TestUpdateIgnoresNegativeTimeStep(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	ctx := DefaultContext()
	ctx.Velocity = Vec2{X: 120}

	a.Update(stepDT, ctx)
	before := *a.Pose()
	out := a.Update(-5, ctx)
	if out.Pose != before {
		t.Error("negative dt advanced the pipeline")
	}
}

func TestZeroContextIsSafe(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	for i := 0; i < 120; i++ {
		out := a.Update(stepDT, Context{})
		for _, v := range []Vec2{
			out.Pose.Head.Pos, out.Pose.Torso.Pos, out.Pose.Pelvis.Pos,
			out.Pose.LeftArm.Hand.Pos, out.Pose.RightArm.Hand.Pos,
			out.Pose.LeftLeg.Foot.Pos, out.Pose.RightLeg.Foot.Pos,
		} {
			assertFinite(t, "joint", v)
		}
	}
}

func TestGarbageContextDegradesGracefully(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	ctx := Context{
		Velocity:    Vec2{math.Inf(1), math.NaN()},
		Facing:      -42,
		ActionTime:  3,
		Wind:        -9,
		Temperature: 99,
		Stamina:     -1,
	}
	for i := 0; i < 60; i++ {
		out := a.Update(stepDT, ctx)
		assertFinite(t, "head", out.Pose.Head.Pos)
		assertFinite(t, "right foot", out.Pose.RightLeg.Foot.Pos)
	}
}

func TestNaNScalarsNeverPoisonPose(t *testing.T) {
	nan := math.NaN()

	// A NaN ActionTime mid-attack feeds the sin envelopes and the hand IK.
	a := NewAnimator(DefaultConfig())
	ctx := DefaultContext()
	ctx.Action = ActionAttacking
	ctx.ActionTime = nan
	out := a.Update(stepDT, ctx)
	assertFinite(t, "attacking hand", out.Pose.RightArm.Hand.Pos)
	assertFinite(t, "attacking wrist", out.Pose.RightArm.Wrist.Pos)

	// A NaN Position feeds every foot target and the pelvis line.
	a = NewAnimator(DefaultConfig())
	ctx = DefaultContext()
	ctx.Position = Vec2{nan, 0}
	out = a.Update(stepDT, ctx)
	assertFinite(t, "pelvis", out.Pose.Pelvis.Pos)
	assertFinite(t, "left foot", out.Pose.LeftLeg.Foot.Pos)

	// NaN environmental scalars feed the oscillators.
	a = NewAnimator(DefaultConfig())
	ctx = DefaultContext()
	ctx.Wind = nan
	ctx.Temperature = nan
	ctx.Stamina = nan
	ctx.GroundSlope = nan
	for i := 0; i < 30; i++ {
		out = a.Update(stepDT, ctx)
	}
	assertFinite(t, "head", out.Pose.Head.Pos)
	assertFinite(t, "torso", out.Pose.Torso.Pos)
	if out.Transform.ScaleY != out.Transform.ScaleY {
		t.Error("render transform scale went NaN")
	}

	// Non-finite overlay values fall back to the approximations.
	a = NewAnimator(DefaultConfig())
	ctx = DefaultContext()
	ctx.SpineBend = &nan
	ctx.PelvisOffset = &nan
	out = a.Update(stepDT, ctx)
	assertFinite(t, "overlay pelvis", out.Pose.Pelvis.Pos)
}

func TestUpdatePopulatesFrame(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAnimator(cfg)
	ctx := DefaultContext()
	ctx.Velocity = Vec2{X: 150}
	ctx.Position.X += ctx.Velocity.X * stepDT

	out := a.Update(stepDT, ctx)
	if out.Frame.Cadence <= cfg.BaseCadence {
		t.Errorf("cadence %v, want raised above base while running", out.Frame.Cadence)
	}
	if !out.Frame.Moving {
		t.Error("moving flag unset while running")
	}
	if len(out.Frame.Cloth) != cfg.ClothPoints || len(out.Frame.Hair) != cfg.HairPoints {
		t.Error("secondary chains missing from frame")
	}
	if out.Frame.GroundY != ctx.Position.Y+cfg.legLength() {
		t.Errorf("ground line %v, want %v", out.Frame.GroundY, ctx.Position.Y+cfg.legLength())
	}
}

func TestNewAnimatorPanicsOnZeroSkeleton(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewAnimator with a zero config did not panic on limb lengths")
		}
	}()
	NewAnimator(Config{})
}

func TestAnimatorsAreIndependent(t *testing.T) {
	a1 := NewAnimator(DefaultConfig())
	a2 := NewAnimator(DefaultConfig())
	ctx := DefaultContext()
	ctx.Velocity = Vec2{X: 100}

	// Feeding only one animator must not disturb the other.
	idle := DefaultContext()
	var outRun, outIdle *FrameOutput
	for i := 0; i < 60; i++ {
		ctx.Position.X += ctx.Velocity.X * stepDT
		outRun = a1.Update(stepDT, ctx)
		outIdle = a2.Update(stepDT, idle)
	}
	if !outRun.Frame.Moving {
		t.Error("running animator not moving")
	}
	if outIdle.Frame.Moving {
		t.Error("idle animator influenced by its neighbor")
	}
}
