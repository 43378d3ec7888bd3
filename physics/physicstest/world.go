// Package physicstest provides an in-memory physics.World for tests.
//
// World does no collision detection. Tests place bodies, queue the
// collision-start pairs they want reported, and call Step. Positions are
// integrated from velocity and gravity so elimination scenarios can be
// scripted without a real engine.
package physicstest

import (
	"errors"
	"time"

	"pinball-lottery/physics"
)

// ErrNotReady is returned by NotReadyEngine.NewWorld
var ErrNotReady = errors.New("physicstest: engine not ready")

// World is a scripted physics.World
type World struct {
	physics.Dispatcher

	// Gravity applied to dynamic bodies each step, units per second squared
	Gravity physics.Vec

	// Frozen disables integration; bodies only move through SetPosition
	Frozen bool

	bodies []physics.BodyID
	states map[physics.BodyID]*physics.BodyState
	queued [][]physics.CollisionPair
	steps  int
	closed bool
}

// NewWorld creates an empty scripted world
func NewWorld(opts physics.WorldOptions) *World {
	return &World{
		Gravity: opts.Gravity,
		states:  make(map[physics.BodyID]*physics.BodyState),
	}
}

// Add implements physics.World
func (w *World) Add(defs ...physics.BodyDef) []physics.BodyID {
	ids := make([]physics.BodyID, 0, len(defs))
	for _, def := range defs {
		id := physics.NewBodyID()
		w.states[id] = &physics.BodyState{
			ID:       id,
			Tag:      def.Tag,
			Static:   def.Static,
			Sensor:   def.Sensor,
			Position: def.Position,
			Velocity: def.Velocity,
		}
		w.bodies = append(w.bodies, id)
		ids = append(ids, id)
	}
	return ids
}

// Remove implements physics.World
func (w *World) Remove(ids ...physics.BodyID) {
	for _, id := range ids {
		if _, ok := w.states[id]; !ok {
			continue
		}
		delete(w.states, id)
		for i, b := range w.bodies {
			if b == id {
				w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
				break
			}
		}
	}
}

// Body implements physics.World
func (w *World) Body(id physics.BodyID) (physics.BodyState, bool) {
	s, ok := w.states[id]
	if !ok {
		return physics.BodyState{}, false
	}
	return *s, true
}

// SetVelocity implements physics.World
func (w *World) SetVelocity(id physics.BodyID, v physics.Vec) bool {
	s, ok := w.states[id]
	if !ok || s.Static {
		return false
	}
	s.Velocity = v
	return true
}

// SetPosition implements physics.World
func (w *World) SetPosition(id physics.BodyID, p physics.Vec) bool {
	s, ok := w.states[id]
	if !ok || s.Static {
		return false
	}
	s.Position = p
	return true
}

// Queue schedules pairs to be reported as collision starts by the next Step
func (w *World) Queue(pairs ...physics.CollisionPair) {
	w.queued = append(w.queued, pairs)
}

// Step implements physics.World
func (w *World) Step(dt time.Duration) {
	if w.closed {
		return
	}
	w.steps++

	if !w.Frozen {
		sec := dt.Seconds()
		for _, id := range w.bodies {
			s := w.states[id]
			if s.Static {
				continue
			}
			s.Velocity = s.Velocity.Add(w.Gravity.Scale(sec))
			s.Position = s.Position.Add(s.Velocity.Scale(sec))
		}
	}

	var pairs []physics.CollisionPair
	if len(w.queued) > 0 {
		pairs = w.queued[0]
		w.queued = w.queued[1:]
	}
	w.DispatchCollisions(pairs)
	if w.closed {
		return
	}
	w.DispatchAfterUpdate()
}

// Steps returns how many times Step ran
func (w *World) Steps() int {
	return w.steps
}

// Bodies returns every registered body ID in insertion order
func (w *World) Bodies() []physics.BodyID {
	out := make([]physics.BodyID, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Tagged returns the IDs of bodies carrying tag
func (w *World) Tagged(tag string) []physics.BodyID {
	var out []physics.BodyID
	for _, id := range w.bodies {
		if w.states[id].Tag == tag {
			out = append(out, id)
		}
	}
	return out
}

// Closed reports whether Close was called
func (w *World) Closed() bool {
	return w.closed
}

// Close implements physics.World
func (w *World) Close() error {
	w.closed = true
	w.Reset()
	return nil
}

// Engine hands out scripted worlds and remembers the last one
type Engine struct {
	Last    *World
	Created int

	// Overlaps counts worlds created while the previous one was still open
	Overlaps int

	// Frozen is copied onto every new world
	Frozen bool
}

// Ready implements physics.Engine
func (e *Engine) Ready() bool {
	return true
}

// NewWorld implements physics.Engine
func (e *Engine) NewWorld(opts physics.WorldOptions) (physics.World, error) {
	if e.Last != nil && !e.Last.Closed() {
		e.Overlaps++
	}
	w := NewWorld(opts)
	w.Frozen = e.Frozen
	e.Last = w
	e.Created++
	return w, nil
}

// NotReadyEngine models an engine whose backend has not finished loading
type NotReadyEngine struct{}

// Ready implements physics.Engine
func (NotReadyEngine) Ready() bool {
	return false
}

// NewWorld implements physics.Engine
func (NotReadyEngine) NewWorld(physics.WorldOptions) (physics.World, error) {
	return nil, ErrNotReady
}
