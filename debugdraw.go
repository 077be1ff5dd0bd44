package marionette

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawOptions controls DrawPose. The zero value draws white bones and gray
// chains at scale 1 with no offset.
type DrawOptions struct {
	// Offset is added to every world position; Scale multiplies positions
	// after offsetting (camera transform for the debug view).
	Offset Vec2
	Scale  float64

	BoneColor  color.Color // skeleton segments (default white)
	ChainColor color.Color // cloth/hair chains (default gray)
	JointColor color.Color // joint dots (default same as bones)
	LineWidth  float32     // stroke width (default 2)
}

// DrawPose strokes the resolved skeleton, the secondary-motion chains, and
// the equipment marker onto dst. It is a debugging aid and the renderer used
// by the bundled examples; game renderers will usually skin the pose
// themselves.
func DrawPose(dst *ebiten.Image, out *FrameOutput, opts DrawOptions) {
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.BoneColor == nil {
		opts.BoneColor = color.White
	}
	if opts.ChainColor == nil {
		opts.ChainColor = color.Gray{Y: 150}
	}
	if opts.JointColor == nil {
		opts.JointColor = opts.BoneColor
	}
	if opts.LineWidth == 0 {
		opts.LineWidth = 2
	}

	p := &out.Pose
	d := drawer{dst: dst, opts: opts}

	// Spine.
	d.bone(p.Pelvis.Pos, p.Torso.Pos)
	d.bone(p.Torso.Pos, p.Head.Pos)
	d.circle(p.Head.Pos, 4)

	// Arms.
	for _, arm := range [2]*Arm{&p.LeftArm, &p.RightArm} {
		d.bone(p.Torso.Pos, arm.Shoulder.Pos)
		d.bone(arm.Shoulder.Pos, arm.Elbow.Pos)
		d.bone(arm.Elbow.Pos, arm.Wrist.Pos)
		d.bone(arm.Wrist.Pos, arm.Hand.Pos)
		d.joint(arm.Elbow.Pos)
		d.joint(arm.Wrist.Pos)
	}

	// Legs.
	for _, leg := range [2]*Leg{&p.LeftLeg, &p.RightLeg} {
		d.bone(p.Pelvis.Pos, leg.Hip.Pos)
		d.bone(leg.Hip.Pos, leg.Knee.Pos)
		d.bone(leg.Knee.Pos, leg.Ankle.Pos)
		d.bone(leg.Ankle.Pos, leg.Foot.Pos)
		d.bone(leg.Foot.Pos, leg.Toe.Pos)
		d.joint(leg.Knee.Pos)
	}

	// Secondary motion.
	d.chain(p.Pelvis.Pos, out.Frame.Cloth)
	d.chain(p.Head.Pos, out.Frame.Hair)
	d.circle(out.Frame.Equipment.Pos, 3)
}

// drawer holds the transform and styles for one DrawPose call.
type drawer struct {
	dst  *ebiten.Image
	opts DrawOptions
}

func (d *drawer) project(v Vec2) (float32, float32) {
	return float32((v.X + d.opts.Offset.X) * d.opts.Scale),
		float32((v.Y + d.opts.Offset.Y) * d.opts.Scale)
}

func (d *drawer) bone(a, b Vec2) {
	x0, y0 := d.project(a)
	x1, y1 := d.project(b)
	vector.StrokeLine(d.dst, x0, y0, x1, y1, d.opts.LineWidth, d.opts.BoneColor, true)
}

func (d *drawer) joint(v Vec2) {
	x, y := d.project(v)
	vector.DrawFilledCircle(d.dst, x, y, d.opts.LineWidth, d.opts.JointColor, true)
}

func (d *drawer) circle(v Vec2, r float32) {
	x, y := d.project(v)
	vector.StrokeCircle(d.dst, x, y, r*float32(d.opts.Scale), d.opts.LineWidth, d.opts.BoneColor, true)
}

func (d *drawer) chain(anchor Vec2, points []Vec2) {
	prev := anchor
	for _, pt := range points {
		x0, y0 := d.project(prev)
		x1, y1 := d.project(pt)
		vector.StrokeLine(d.dst, x0, y0, x1, y1, d.opts.LineWidth, d.opts.ChainColor, true)
		prev = pt
	}
}
