// Package ecs hosts the evaluation engine inside a donburi world: entities
// own contexts through a component, a system evaluates the registry once per
// frame, and action transitions flow out as donburi events.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/wispfire/actionflow/engine"
)

// ContextsData lists the context names registered for the entity.
type ContextsData struct {
	Names []string
}

var Contexts = donburi.NewComponentType[ContextsData]()

// ActionTransition is published once per raised transition each frame.
// Subscribe to react to action state changes; events are delivered by
// events.ProcessAllEvents, which the system calls at the end of its update.
var ActionTransition = events.NewEventType[engine.Transition]()
