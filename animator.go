package marionette

import (
	"fmt"
	"os"

	"github.com/tanema/gween/ease"
)

// Module is one stage of the animation pipeline. Each stage mutates the
// shared pose and publishes small auxiliary values into the Frame for later
// stages and external subscribers. Stages run in one fixed order per frame
// and never read values a later stage produces.
type Module interface {
	Apply(dt float64, pose *Pose, ctx *Context, fr *Frame)
}

// Frame carries the per-frame auxiliary outputs of every stage: the wiring
// between pipeline stages and the procedural metrics external systems
// (footstep audio, dust particles) subscribe to. Slices reference buffers
// owned by the animator and are valid until the next Update call.
type Frame struct {
	// Locomotion.
	GaitPhase   float64    // [0, 1) stride cycle progress
	Moving      bool       // locomotion active this frame
	Cadence     float64    // current cycle rate (cycles per second)
	SpeedRatio  float64    // speed normalized by Config.MaxSpeed
	WeightShift float64    // damped lateral pelvis shift
	TorsoTwist  float64    // torso twist cue (radians)
	SpineCurve  float64    // spine curvature cue (overlay-aware)
	FootPhase   [2]float64 // per-foot gait phase
	FootContact [2]bool    // footstep cue (phase near 0/1 while moving)
	SwingHeight [2]float64 // swing-arc ground clearance
	FootTarget  [2]Vec2    // generated foot path targets
	GroundY     float64    // neutral ground line this frame

	// Foot IK.
	Planted       [2]bool
	ContactTime   [2]float64
	RollPhase     [2]float64
	PelvisOverlay bool // authoritative pelvis offset was supplied

	// Combat / arm IK.
	HandTarget    [2]Vec2
	WristRotation [2]float64
	Pronation     [2]float64

	// Head gaze.
	HeadYaw float64
	HeadNod float64

	// Secondary motion.
	Cloth            []Vec2
	Hair             []Vec2
	Equipment        Equipment
	EquipmentImpulse Vec2

	// Environment / render transform.
	WindSway     float64
	Shiver       float64
	ShoulderTilt float64
}

// FrameOutput is everything one Update produces: the resolved pose snapshot,
// the flattened render transform, and the auxiliary frame data. The pointer
// returned by Update references animator-owned storage that is overwritten
// by the next Update; copy what you need to retain.
type FrameOutput struct {
	Pose      Pose
	Transform RenderTransform
	Frame     Frame
}

// maxDeltaTime caps a single step so a stalled host (debugger, tab switch)
// can't teleport the smoothed state.
const maxDeltaTime = 0.25

// Animator runs the seven-stage procedural animation pipeline for one
// character. Each character owns exactly one Animator; instances share no
// state, so separate characters may update concurrently without locking.
//
// Given an identical sequence of (Context, dt) pairs, a freshly constructed
// Animator reproduces the identical pose sequence.
type Animator struct {
	cfg     Config
	pose    Pose
	modules [7]Module
	footIK  *FootIKModule
	xform   renderTransformState
	out     FrameOutput
	debug   bool
}

// NewAnimator builds the pipeline for the given config. Non-positive limb
// segment lengths are a configuration error and panic here, at construction;
// no per-frame condition is ever fatal. Nil ease functions fall back to
// ease.InOutCubic.
func NewAnimator(cfg Config) *Animator {
	if cfg.AttackEase == nil {
		cfg.AttackEase = ease.InOutCubic
	}
	if cfg.RollEase == nil {
		cfg.RollEase = ease.InOutCubic
	}

	a := &Animator{cfg: cfg}
	footIK := newFootIKModule(&a.cfg)
	a.footIK = footIK
	a.modules = [7]Module{
		newLocomotionModule(&a.cfg),
		footIK,
		newCombatModule(&a.cfg),
		newArmIKModule(&a.cfg),
		newHeadGazeModule(&a.cfg),
		newSecondaryMotionModule(&a.cfg),
		newEnvironmentModule(&a.cfg),
	}
	a.xform = renderTransformState{cfg: &a.cfg}
	a.pose = NeutralPose(&a.cfg, Vec2{})
	return a
}

// Config returns a pointer to the animator's config for live tuning.
// Skeleton dimensions must not be changed after construction; the IK chains
// are built from them once.
func (a *Animator) Config() *Config { return &a.cfg }

// Pose returns the current resolved pose without running an update.
func (a *Animator) Pose() *Pose { return &a.pose }

// Foot exposes one foot's persistent plant state for metrics subscribers.
func (a *Animator) Foot(s Side) *FootState { return a.footIK.Foot(s) }

// SetDebug enables stderr warnings for suspicious input (clamped time
// steps). Off by default; never affects the produced pose.
func (a *Animator) SetDebug(enabled bool) { a.debug = enabled }

// Update advances the pipeline by dt seconds against the given context and
// returns the frame result. All context scalars are defensively clamped; a
// zero Context animates an idle standing character. Update allocates
// nothing after the first frame.
func (a *Animator) Update(dt float64, ctx Context) *FrameOutput {
	if dt < 0 {
		dt = 0
	}
	if dt > maxDeltaTime {
		if a.debug {
			fmt.Fprintf(os.Stderr, "[marionette] clamping dt %.3fs to %.3fs\n", dt, maxDeltaTime)
		}
		dt = maxDeltaTime
	}
	ctx.sanitize()

	fr := &a.out.Frame
	for _, m := range a.modules {
		m.Apply(dt, &a.pose, &ctx, fr)
	}
	a.out.Transform = a.xform.update(dt, &ctx, fr)
	a.out.Pose = a.pose
	return &a.out
}
