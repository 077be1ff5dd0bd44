// Package ecs provides ECS adapters for marionette.
package ecs

import (
	"github.com/phanxgames/marionette"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// FootstepEvent is published whenever a character's foot makes a new ground
// contact. Subscribe to FootstepEventType in audio or particle systems.
type FootstepEvent struct {
	Entity   donburi.Entity
	Side     marionette.Side
	Position marionette.Vec2
}

// FootstepEventType is the Donburi event type for footstep cues. Events are
// queued by UpdateAll; consume them with events.Subscribe and ProcessEvents.
var FootstepEventType = events.NewEventType[FootstepEvent]()

// CharacterData is the per-entity animation state: one animator, the context
// the game fills in each frame, and the output of the latest update.
type CharacterData struct {
	Animator *marionette.Animator
	// Ctx is read (not reset) by UpdateAll every frame; Ctx.Events is
	// cleared after each update so impulses fire exactly once.
	Ctx marionette.Context
	// Out is the latest frame result. Nil until the first UpdateAll.
	Out *marionette.FrameOutput

	prevContact [2]bool
}

// Character is the Donburi component holding one animated character.
var Character = donburi.NewComponentType[CharacterData]()

var characterQuery = donburi.NewQuery(filter.Contains(Character))

// NewCharacter creates an entity with a freshly built animator and a default
// context.
func NewCharacter(world donburi.World, cfg marionette.Config) donburi.Entity {
	entity := world.Create(Character)
	Character.SetValue(world.Entry(entity), CharacterData{
		Animator: marionette.NewAnimator(cfg),
		Ctx:      marionette.DefaultContext(),
	})
	return entity
}

// UpdateAll advances every Character in the world by dt seconds and publishes
// a FootstepEvent for each new ground contact. Characters are independent, so
// iteration order never affects the result.
func UpdateAll(world donburi.World, dt float64) {
	characterQuery.Each(world, func(entry *donburi.Entry) {
		d := Character.Get(entry)
		if d.Animator == nil {
			return
		}
		d.Out = d.Animator.Update(dt, d.Ctx)
		d.Ctx.Events = d.Ctx.Events[:0]

		for _, s := range [2]marionette.Side{marionette.SideLeft, marionette.SideRight} {
			contact := d.Out.Frame.FootContact[s]
			if contact && !d.prevContact[s] {
				FootstepEventType.Publish(world, FootstepEvent{
					Entity:   entry.Entity(),
					Side:     s,
					Position: d.Out.Frame.FootTarget[s],
				})
			}
			d.prevContact[s] = contact
		}
	})
}
