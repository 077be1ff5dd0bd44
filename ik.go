package marionette

import (
	"fmt"
	"math"
)

// BendDirection selects which side of the root-to-target line the mid joint
// bends toward.
type BendDirection int8

const (
	// BendPositive places the mid joint on the positive-angle side
	// (counter-clockwise from the root-to-target direction in screen
	// coordinates).
	BendPositive BendDirection = 1
	// BendNegative places it on the opposite side.
	BendNegative BendDirection = -1
)

// ikEpsilon keeps the clamped target distance strictly inside the solvable
// range so the acos arguments never leave [-1, 1].
const ikEpsilon = 1e-6

// IKChain is a stateless analytic two-bone solver for a root-mid-end chain
// with fixed segment lengths (proximal L1, distal L2). One chain value is
// shared by the leg and arm stages; the law-of-cosines math lives only here.
type IKChain struct {
	l1, l2 float64
}

// NewIKChain builds a solver for the given segment lengths. Non-positive
// lengths are a configuration error and panic; this is the pipeline's only
// fatal precondition, checked at construction and never per frame.
func NewIKChain(l1, l2 float64) IKChain {
	if l1 <= 0 || l2 <= 0 {
		panic(fmt.Sprintf("marionette: IK segment lengths must be positive (got %v, %v)", l1, l2))
	}
	return IKChain{l1: l1, l2: l2}
}

// Lengths returns the proximal and distal segment lengths.
func (c IKChain) Lengths() (l1, l2 float64) { return c.l1, c.l2 }

// Solve places the mid and end joints for the given root and target. The
// target distance is clamped into [|L1-L2|+eps, L1+L2-eps] first, so every
// input has a solution: unreachable targets resolve to a fully extended
// chain pointing at the target, and coincident targets to a fully folded
// one. Resolved segment lengths equal L1 and L2 to floating tolerance.
func (c IKChain) Solve(root, target Vec2, bend BendDirection) (mid, end Vec2) {
	dx := target.X - root.X
	dy := target.Y - root.Y
	d := math.Hypot(dx, dy)

	minD := math.Abs(c.l1-c.l2) + ikEpsilon
	maxD := c.l1 + c.l2 - ikEpsilon
	d = clamp(d, minD, maxD)

	// Direction root->target. A degenerate zero vector (root == target)
	// falls back to straight down; the clamp above already moved d off
	// zero, only the angle is arbitrary.
	base := math.Pi / 2
	if dx != 0 || dy != 0 {
		base = math.Atan2(dy, dx)
	}

	// Law of cosines on (L1, d, L2): interior angle at the root.
	cosRoot := (c.l1*c.l1 + d*d - c.l2*c.l2) / (2 * c.l1 * d)
	rootAngle := math.Acos(clamp(cosRoot, -1, 1))

	a := base + float64(bend)*rootAngle
	mid = Vec2{root.X + c.l1*math.Cos(a), root.Y + c.l1*math.Sin(a)}
	// End sits at the clamped target along the base direction, which puts
	// it exactly L2 from the mid joint by the same triangle.
	end = Vec2{root.X + d*math.Cos(base), root.Y + d*math.Sin(base)}
	return mid, end
}

// elbowDownBend returns the bend direction that places the mid joint on the
// lower (screen +y) side of the root-to-target line: the anatomical elbow
// preference. The mid joint's y is root.y + L1*sin(base +/- rootAngle);
// its derivative with respect to the bend angle is cos(base), so the sign
// of cos(base) picks the downward branch.
func elbowDownBend(root, target Vec2) BendDirection {
	if target.X-root.X >= 0 {
		return BendPositive
	}
	return BendNegative
}

// kneeForwardBend returns the bend direction that points the knee toward the
// facing direction for a target below the hip (the leg case: sin(base) > 0,
// so the forward branch is -facing).
func kneeForwardBend(facing float64) BendDirection {
	if facing >= 0 {
		return BendNegative
	}
	return BendPositive
}
