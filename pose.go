package marionette

// Joint is one named point of the skeleton. Rotation and Pronation are
// optional scalars; most joints only use Pos.
type Joint struct {
	Pos Vec2
	// Rotation is the joint's orientation in radians where meaningful
	// (head yaw, wrist angle, equipment tilt).
	Rotation float64
	// Pronation is the wrist palm-turn scalar: negative pronated, positive
	// supinated. Only wrists use it.
	Pronation float64
}

// Arm is the four-joint chain of one arm.
type Arm struct {
	Shoulder Joint
	Elbow    Joint
	Wrist    Joint
	Hand     Joint
}

// Leg is the five-joint chain of one leg.
type Leg struct {
	Hip   Joint
	Knee  Joint
	Ankle Joint
	Foot  Joint
	Toe   Joint
}

// Pose is the full fixed-topology joint tree of one character. It is a plain
// value: copying it snapshots the frame, and the zero value is a valid
// (collapsed) pose. Joint positions are world-space and fully recomputed
// top-down every frame; nothing in a Pose refers to another joint.
type Pose struct {
	Head   Joint
	Torso  Joint
	Pelvis Joint

	LeftArm  Arm
	RightArm Arm
	LeftLeg  Leg
	RightLeg Leg
}

// ArmSide returns the arm for the given side.
func (p *Pose) ArmSide(s Side) *Arm {
	if s == SideLeft {
		return &p.LeftArm
	}
	return &p.RightArm
}

// LegSide returns the leg for the given side.
func (p *Pose) LegSide(s Side) *Leg {
	if s == SideLeft {
		return &p.LeftLeg
	}
	return &p.RightLeg
}

// NeutralPose builds the rest pose for the given skeleton dimensions,
// anchored so the pelvis sits at root. Modules overwrite every joint each
// frame; the neutral pose exists so a never-updated animator still renders
// something anatomically sane.
func NeutralPose(cfg *Config, root Vec2) Pose {
	groundY := root.Y + cfg.legLength()
	var p Pose
	p.Pelvis.Pos = root
	p.Torso.Pos = Vec2{root.X, root.Y - cfg.TorsoLen}
	p.Head.Pos = Vec2{root.X, p.Torso.Pos.Y - cfg.NeckLen}

	for _, s := range [2]Side{SideLeft, SideRight} {
		sign := -1.0
		if s == SideRight {
			sign = 1.0
		}

		arm := p.ArmSide(s)
		arm.Shoulder.Pos = Vec2{p.Torso.Pos.X + sign*cfg.ShoulderGap, p.Torso.Pos.Y}
		arm.Elbow.Pos = Vec2{arm.Shoulder.Pos.X, arm.Shoulder.Pos.Y + cfg.UpperArmLen}
		arm.Wrist.Pos = Vec2{arm.Elbow.Pos.X, arm.Elbow.Pos.Y + cfg.ForearmLen}
		arm.Hand.Pos = Vec2{arm.Wrist.Pos.X, arm.Wrist.Pos.Y + cfg.HandLen}

		leg := p.LegSide(s)
		leg.Hip.Pos = Vec2{root.X + sign*cfg.HipGap, root.Y}
		leg.Knee.Pos = Vec2{leg.Hip.Pos.X, leg.Hip.Pos.Y + cfg.ThighLen}
		leg.Ankle.Pos = Vec2{leg.Hip.Pos.X, groundY - cfg.AnkleHeight}
		leg.Foot.Pos = Vec2{leg.Hip.Pos.X + cfg.FootLen, groundY}
		leg.Toe.Pos = Vec2{leg.Foot.Pos.X + cfg.ToeLen, groundY}
	}
	return p
}
