// Package ecs provides ECS adapters for marionette.
//
// The primary adapter is the [Character] component, which embeds one
// [marionette.Animator] per entity into a [Donburi] world. [UpdateAll]
// advances every character in one pass and publishes [FootstepEventType]
// events on new ground contacts, so audio and particle systems can subscribe
// instead of polling frame data.
//
// Usage:
//
//	world := donburi.NewWorld()
//	entity := ecs.NewCharacter(world, marionette.DefaultConfig())
//	// each frame:
//	ecs.Character.Get(world.Entry(entity)).Ctx.Velocity = vel
//	ecs.UpdateAll(world, 1.0/60.0)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
