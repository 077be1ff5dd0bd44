// Package marionette synthesizes full-body character poses from sparse
// run-time signals instead of playing back authored animation clips.
//
// Feed an [Animator] a [Context] (velocity, action state, grounded flag,
// environmental scalars) once per simulation tick and it produces a complete
// skeletal [Pose], a flattened [RenderTransform], trailing cloth/hair point
// lists, and small procedural metrics (foot plant flags, gait phase) that
// other systems such as footstep audio can subscribe to.
//
// # Quick start
//
//	anim := marionette.NewAnimator(marionette.DefaultConfig())
//
//	// each tick:
//	ctx := marionette.DefaultContext()
//	ctx.Position = player.Pos
//	ctx.Velocity = player.Vel
//	ctx.Action = marionette.ActionAttacking
//	ctx.ActionTime = attackProgress // normalized [0, 1]
//	out := anim.Update(dt, ctx)
//
//	// out.Pose holds every joint position; out.Transform holds the
//	// flattened scale/rotation/offset for the sprite.
//
// # Pipeline
//
// Each Update runs seven fixed-order stages against one shared mutable pose:
// locomotion (gait phase and foot paths), foot IK (zero-slip planting and leg
// resolution), combat (hand target intents), arm IK (elbow and wrist
// resolution), head gaze (stabilization and look-at), secondary motion
// (cloth, hair, equipment), and environment (wind and temperature overlay).
// The order never changes and no stage reads a later stage's output, so an
// identical sequence of (Context, dt) pairs always reproduces the same pose
// sequence.
//
// Animators are fully independent: one per character, no shared state, no
// locking. A host that simulates many characters may update them from
// separate goroutines. The Donburi adapter in marionette/ecs runs one
// Animator per ECS entity.
//
// # Rendering
//
// The core stages are renderer-agnostic. [DrawPose] strokes the resolved
// skeleton and secondary-motion chains onto an ebiten.Image for debugging
// and the bundled examples.
package marionette
