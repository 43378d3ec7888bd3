// Package physics defines the rigid-body engine boundary used by the lottery
// core, a fixed-timestep runner, and a Chipmunk2D backed implementation.
package physics

import "time"

// CollisionPair is reported once when two bodies begin overlapping
type CollisionPair struct {
	A, B BodyID

	// Contacts holds world-space contact points, possibly empty for sensors
	Contacts []Vec
}

// Other returns the body paired with id, and false if id is not part of the pair
func (p CollisionPair) Other(id BodyID) (BodyID, bool) {
	switch id {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}
	return InvalidBodyID, false
}

// CollisionHandler receives every collision-start pair of one step
type CollisionHandler func(pairs []CollisionPair)

// StepHandler runs after a step's collision handlers have completed
type StepHandler func()

// Subscription detaches a handler. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// WorldOptions configures a new world
type WorldOptions struct {
	// Gravity in units per second squared
	Gravity Vec

	// Iterations is the solver iteration count
	Iterations int

	// Damping is the fraction of velocity a body keeps after one second (1 = none)
	Damping float64
}

// World is the engine surface consumed by the game core.
//
// Within one Step the world integrates, then calls collision handlers with
// the pairs that began during that step, then calls after-update handlers.
// Handlers may mutate bodies; the mutations take effect on the next step.
type World interface {
	// Add registers bodies and returns their IDs in the same order
	Add(defs ...BodyDef) []BodyID

	// Remove unregisters bodies; unknown IDs are ignored
	Remove(ids ...BodyID)

	// Body returns a snapshot of a registered body
	Body(id BodyID) (BodyState, bool)

	// SetVelocity overrides a body's velocity; false if the body is unknown
	SetVelocity(id BodyID, v Vec) bool

	// SetPosition moves a body; false if the body is unknown
	SetPosition(id BodyID, p Vec) bool

	OnCollisionStart(h CollisionHandler) Subscription
	OnAfterUpdate(h StepHandler) Subscription

	// Step advances the simulation by dt
	Step(dt time.Duration)

	// Close releases the world; later calls are no-ops
	Close() error
}

// Engine creates worlds. An engine that is still loading reports Ready false.
type Engine interface {
	Ready() bool
	NewWorld(opts WorldOptions) (World, error)
}
