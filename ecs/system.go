package ecs

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"

	"github.com/wispfire/actionflow/action"
	"github.com/wispfire/actionflow/engine"
	"github.com/wispfire/actionflow/input"
)

// System evaluates all registered contexts once per logic frame.
//
// Add its Update method to the donburi ECS:
//
//	sys := ecs.NewSystem(input.NewEbitenBackend())
//	world.AddSystem(sys.Update)
//
// Entities removed from the world are detached automatically on the next
// update.
type System struct {
	registry  *engine.Registry
	reader    *input.Reader
	clock     clock.Clock
	timeScale float64

	last    time.Time
	started bool
	owners  map[donburi.Entity][]string
}

// NewSystem returns a system polling the given backend with real time.
func NewSystem(backend input.Backend) *System {
	return &System{
		registry:  engine.NewRegistry(),
		reader:    input.NewReader(backend),
		clock:     clock.New(),
		timeScale: 1,
		owners:    make(map[donburi.Entity][]string),
	}
}

// WithClock replaces the wall clock, letting tests drive frame deltas with
// clock.NewMock.
func (s *System) WithClock(c clock.Clock) *System {
	s.clock = c
	return s
}

// Registry exposes the underlying context registry.
func (s *System) Registry() *engine.Registry { return s.registry }

// Reader exposes the underlying input reader.
func (s *System) Reader() *input.Reader { return s.reader }

// SetTimeScale scales virtual time relative to real time. Zero pauses every
// timed condition; real-time conditions keep ticking.
func (s *System) SetTimeScale(scale float64) {
	s.timeScale = scale
}

// TimeScale returns the current virtual time scale.
func (s *System) TimeScale() float64 { return s.timeScale }

// Attach registers a context for an entity and records it on the entity's
// Contexts component.
func (s *System) Attach(w donburi.World, entity donburi.Entity, ctx *engine.Context) {
	s.registry.Add(engine.OwnerID(entity), ctx)
	s.owners[entity] = append(s.owners[entity], ctx.Name())

	entry := w.Entry(entity)
	if entry.HasComponent(Contexts) {
		data := Contexts.Get(entry)
		data.Names = append(data.Names, ctx.Name())
		return
	}
	entry.AddComponent(Contexts)
	Contexts.Set(entry, &ContextsData{Names: []string{ctx.Name()}})
}

// Detach unregisters the named context from an entity, publishing the reset
// transitions.
func (s *System) Detach(w donburi.World, entity donburi.Entity, name string) {
	s.publish(w, s.registry.Remove(engine.OwnerID(entity), name, s.frozenTime()))

	names := s.owners[entity]
	for i, n := range names {
		if n == name {
			s.owners[entity] = append(names[:i], names[i+1:]...)
			break
		}
	}
	if len(s.owners[entity]) == 0 {
		delete(s.owners, entity)
	}

	if w.Valid(entity) {
		entry := w.Entry(entity)
		if entry.HasComponent(Contexts) {
			data := Contexts.Get(entry)
			for i, n := range data.Names {
				if n == name {
					data.Names = append(data.Names[:i], data.Names[i+1:]...)
					break
				}
			}
		}
	}
}

// RebuildAll resets and rebuilds every context, publishing the reset
// transitions. Use after remapping inputs.
func (s *System) RebuildAll(w donburi.World) {
	s.publish(w, s.registry.RebuildAll(s.frozenTime()))
}

// Update runs one evaluation frame. Register it as a donburi system.
func (s *System) Update(e *decs.ECS) {
	t := s.frameTime()

	for entity, names := range s.owners {
		if e.World.Valid(entity) {
			continue
		}
		for _, name := range names {
			s.publish(e.World, s.registry.Remove(engine.OwnerID(entity), name, t))
		}
		delete(s.owners, entity)
	}

	s.reader.BeginFrame()
	s.publish(e.World, s.registry.Evaluate(s.reader, t))
	events.ProcessAllEvents(e.World)
}

func (s *System) publish(w donburi.World, transitions []engine.Transition) {
	for _, tr := range transitions {
		ActionTransition.Publish(w, tr)
	}
}

// frameTime advances the clock sample and returns this frame's deltas.
func (s *System) frameTime() action.FrameTime {
	now := s.clock.Now()
	var real time.Duration
	if s.started {
		real = now.Sub(s.last)
	}
	s.started = true
	s.last = now
	return action.FrameTime{
		Delta:     time.Duration(float64(real) * s.timeScale),
		RealDelta: real,
	}
}

// frozenTime is frameTime without advancing the clock sample, for resets
// that happen between frames.
func (s *System) frozenTime() action.FrameTime {
	return action.FrameTime{}
}
