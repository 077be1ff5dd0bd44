package marionette

import "github.com/tanema/gween/ease"

// Config holds every tuning constant of the animation pipeline. All fields
// are plain values so a Config can be copied, serialized, or tweaked live.
// Start from DefaultConfig and override what you need; NewAnimator validates
// only the fatal preconditions (positive limb segment lengths).
type Config struct {
	// --- skeleton dimensions (world units) ---

	TorsoLen    float64 // pelvis to chest
	NeckLen     float64 // chest to head
	ShoulderGap float64 // half distance between shoulders
	HipGap      float64 // half distance between hips
	UpperArmLen float64 // shoulder to elbow
	ForearmLen  float64 // elbow to wrist
	HandLen     float64 // wrist to hand tip
	ThighLen    float64 // hip to knee
	ShinLen     float64 // knee to ankle
	AnkleHeight float64 // ankle above sole
	FootLen     float64 // ankle to foot marker
	ToeLen      float64 // foot marker to toe

	// --- locomotion ---

	// BaseCadence is the gait frequency in cycles per second at zero speed;
	// cadence = BaseCadence * (1 + speedRatio*CadenceScale). The defaults
	// reproduce the 0.48..1.58 Hz band of the reference tuning.
	BaseCadence  float64
	CadenceScale float64
	// MaxSpeed normalizes velocity into speedRatio [0, 1].
	MaxSpeed float64
	// MoveThreshold is the minimum speed treated as locomotion.
	MoveThreshold float64
	// RestPhase is the neutral gait phase relaxed toward while stationary,
	// and RestRelaxSpeed the damping rate of that relaxation.
	RestPhase      float64
	RestRelaxSpeed float64
	// GaitAsymmetry biases the right foot away from the exact half-cycle
	// offset (injury/limp styling). Zero for a symmetric gait.
	GaitAsymmetry float64
	// StanceBandStart/End delimit the gait-phase band in which a foot is in
	// ground contact; outside it the foot follows the swing arc.
	StanceBandStart float64
	StanceBandEnd   float64
	// WeightTransferFraction is the small forward stride fraction a stance
	// foot advances during weight transfer.
	WeightTransferFraction float64
	StrideLength           float64 // full stride at speedRatio 1
	StepHeight             float64 // swing arc clearance
	// DiagonalRatioLow/High split |vy|/|vx| into horizontal, diagonal, and
	// vertical movement classes. Kept as named constants because the
	// reference tuning was never documented as intentional.
	DiagonalRatioLow  float64
	DiagonalRatioHigh float64
	// StrideBlend* are the (x, y) stride-offset weights per movement class.
	StrideBlendHorizontal Vec2
	StrideBlendVertical   Vec2
	StrideBlendDiagonal   Vec2
	// WeightShiftAmount scales the sin(2piphi) lateral weight shift and
	// BalanceSpeed its damped recovery rate.
	WeightShiftAmount float64
	BalanceSpeed      float64
	PelvisBobAmount   float64 // vertical pelvis bob (double gait frequency)
	// ContactWindow is the phase distance from 0/1 within which a foot
	// reports ground contact (footstep cue).
	ContactWindow float64

	// --- foot IK ---

	// PlantThreshold is the swing-arc height below which a moving foot
	// plants (freezing its world position) and above which it releases.
	PlantThreshold float64
	// RollDuration is the stance time over which the heel-to-toe roll
	// completes; ToeRollBias the forward toe shift at full roll.
	RollDuration float64
	ToeRollBias  float64
	// GroundAdaptSpeed bounds how fast a foot's ground height tracks the
	// slope-derived offset (units per second, never snapping).
	GroundAdaptSpeed float64
	// GroundSlopeScale converts Context.GroundSlope into a per-foot height
	// offset across the hip gap.
	GroundSlopeScale float64
	// PelvisDropRatio is the fraction of the average foot-height deviation
	// applied to the pelvis.
	PelvisDropRatio float64

	// --- combat (hand intents) ---

	// HandDampBase is the hand-target damping rate at rest and
	// HandDampSpeedGain its increase per unit speedRatio.
	HandDampBase      float64
	HandDampSpeedGain float64
	AttackStrength    float64 // peak reach of the sin(pi*t) attack envelope
	AttackLift        float64 // upward bias of the striking hand at peak
	GuardHeight       float64 // hand raise above the chest while blocking
	GuardReach        float64 // forward guard distance while blocking
	GuardLean         float64 // block lean toward the incoming direction
	TuckRadius        float64 // hand tuck distance while rolling
	ArmSwingAmount    float64 // idle/walk arm swing amplitude

	// --- arm IK / wrist ---

	PronationAmount  float64 // wrist pronation inside the active window
	SupinationAmount float64 // wrist supination outside it / while guarding
	// PronationWindowStart/End is the normalized attack-time window of the
	// active swing; pronation goes negative only inside it. The same split
	// drives the windup/active/recovery render offsets.
	PronationWindowStart float64
	PronationWindowEnd   float64
	WristResponsiveness  float64 // wrist damping rate

	// --- head gaze ---

	HeadCounterRatio   float64 // anti-phase yaw ratio against torso twist
	HeadResponsiveness float64 // gaze damping rate
	MaxHeadYaw         float64 // anatomical yaw clamp (radians)
	MaxHeadPitch       float64 // anatomical pitch clamp (radians)
	NodAmount          float64 // footstep micro-nod impulse
	NodDecay           float64 // nod damping rate

	// --- secondary motion ---

	ClothPoints    int     // trailing cloth chain length (fixed at build)
	ClothSpacing   float64 // rest distance between cloth points
	ClothStiffness float64 // per-axis damping rate toward the chain target
	ClothDrape     float64 // backward drape fraction against facing
	HairPoints     int
	HairSpacing    float64
	HairStiffness  float64
	SwayAmount     float64 // per-index x oscillation amplitude
	BounceAmount   float64 // per-index y oscillation amplitude
	SwayFrequency  float64 // oscillation rate (radians per second)
	WindDragFactor float64 // wind contribution to chain bias
	MomentumFactor float64 // velocity contribution to chain bias (trails)
	JiggleAmount   float64 // equipment jiggle oscillation amplitude
	// ImpulseDecay is the exponential decay rate of the equipment impulse
	// accumulator; an impulse falls below 1% within ln(100)/ImpulseDecay s.
	ImpulseDecay   float64
	LandingImpulse float64 // downward kick on EventLanding
	HurtImpulse    float64 // backward kick on EventHurt
	BlockImpulse   float64 // backward kick on EventBlockImpact

	// --- environment overlay ---

	WindResponse    float64 // additive x sway per unit wind
	WindFrequency   float64 // wind sway rate (radians per second)
	ShiverThreshold float64 // shiver below this normalized temperature
	ShiverFrequency float64 // shiver rate (radians per second)
	ShiverAmount    float64 // shiver y amplitude at full intensity

	// --- render transform ---

	BreathRate         float64 // breathing cycles per second (slowed by fatigue)
	BreathAmount       float64 // breathing scale amplitude
	FatigueInfluence   float64 // how strongly fatigue reshapes gait/lean
	LeanGain           float64 // velocity-proportional body lean
	LeanClamp          float64 // lean limit (radians)
	ShoulderCounter    float64 // shoulder counter-rotation vs lean
	SpineCurveGain     float64 // spine curvature per unit directed speed
	TorsoTwistGain     float64 // torso twist amplitude while moving
	MomentumDamp       float64 // momentum accumulator damping rate
	MomentumGain       float64 // momentum contribution to render offset
	RollSquash         float64 // max vertical compression mid-roll
	RollStretch        float64 // max horizontal stretch mid-roll
	RollRotation       float64 // roll body rotation at full ease
	AttackAnticipation float64 // windup pull-back offset
	AttackThrust       float64 // active-phase forward offset
	BlockCrouch        float64 // vertical scale while blocking
	BlockDip           float64 // downward offset while blocking
	InjurySlump        float64 // downward sag at zero health

	// AttackEase and RollEase shape the attack and roll envelopes. They
	// default to ease.InOutCubic, matching the reference implementation.
	AttackEase ease.TweenFunc
	RollEase   ease.TweenFunc
}

// DefaultConfig returns the reference tuning for a roughly 100-unit-tall
// biped. All rates are per second, so the result is frame-rate independent.
func DefaultConfig() Config {
	return Config{
		TorsoLen:    26,
		NeckLen:     9,
		ShoulderGap: 9,
		HipGap:      6,
		UpperArmLen: 14,
		ForearmLen:  12,
		HandLen:     4,
		ThighLen:    18,
		ShinLen:     16,
		AnkleHeight: 3,
		FootLen:     5,
		ToeLen:      3,

		BaseCadence:            0.5,
		CadenceScale:           2.3,
		MaxSpeed:               240,
		MoveThreshold:          4,
		RestPhase:              0.25,
		RestRelaxSpeed:         3,
		GaitAsymmetry:          0,
		StanceBandStart:        0.1,
		StanceBandEnd:          0.6,
		WeightTransferFraction: 0.12,
		StrideLength:           30,
		StepHeight:             8,
		DiagonalRatioLow:       0.5,
		DiagonalRatioHigh:      2.0,
		StrideBlendHorizontal:  Vec2{X: 1, Y: 0.15},
		StrideBlendVertical:    Vec2{X: 0.3, Y: 0.85},
		StrideBlendDiagonal:    Vec2{X: 0.7, Y: 0.5},
		WeightShiftAmount:      2.2,
		BalanceSpeed:           8,
		PelvisBobAmount:        1.6,
		ContactWindow:          0.08,

		PlantThreshold:   1.2,
		RollDuration:     0.35,
		ToeRollBias:      2.5,
		GroundAdaptSpeed: 40,
		GroundSlopeScale: 1.0,
		PelvisDropRatio:  0.3,

		HandDampBase:      9,
		HandDampSpeedGain: 4,
		AttackStrength:    16,
		AttackLift:        5,
		GuardHeight:       10,
		GuardReach:        8,
		GuardLean:         0.05,
		TuckRadius:        5,
		ArmSwingAmount:    7,

		PronationAmount:      0.6,
		SupinationAmount:     0.25,
		PronationWindowStart: 0.3,
		PronationWindowEnd:   0.7,
		WristResponsiveness:  14,

		HeadCounterRatio:   0.6,
		HeadResponsiveness: 10,
		MaxHeadYaw:         0.9,
		MaxHeadPitch:       0.6,
		NodAmount:          1.1,
		NodDecay:           10,

		ClothPoints:    5,
		ClothSpacing:   5,
		ClothStiffness: 12,
		ClothDrape:     0.35,
		HairPoints:     4,
		HairSpacing:    3,
		HairStiffness:  16,
		SwayAmount:     0.8,
		BounceAmount:   0.5,
		SwayFrequency:  2.5,
		WindDragFactor: 3.5,
		MomentumFactor: 0.02,
		JiggleAmount:   0.6,
		ImpulseDecay:   9,
		LandingImpulse: 6,
		HurtImpulse:    5,
		BlockImpulse:   3,

		WindResponse:    1.5,
		WindFrequency:   0.8,
		ShiverThreshold: 0.3,
		ShiverFrequency: 12,
		ShiverAmount:    0.8,

		BreathRate:         1.2,
		BreathAmount:       0.015,
		FatigueInfluence:   0.3,
		LeanGain:           0.18,
		LeanClamp:          0.2,
		ShoulderCounter:    0.6,
		SpineCurveGain:     0.12,
		TorsoTwistGain:     0.08,
		MomentumDamp:       6,
		MomentumGain:       0.04,
		RollSquash:         0.15,
		RollStretch:        0.08,
		RollRotation:       0.25,
		AttackAnticipation: 3.0,
		AttackThrust:       4.5,
		BlockCrouch:        0.96,
		BlockDip:           1.5,
		InjurySlump:        2.0,

		AttackEase: ease.InOutCubic,
		RollEase:   ease.InOutCubic,
	}
}

// legLength returns the hip-to-sole distance of the neutral stance.
func (c *Config) legLength() float64 {
	return c.ThighLen + c.ShinLen + c.AnkleHeight
}
