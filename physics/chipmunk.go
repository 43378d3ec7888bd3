package physics

import (
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
)

// bodyCollisionType is shared by every shape so one handler sees all pairs
const bodyCollisionType cp.CollisionType = 1

// dynamicMass is the mass of every dynamic body; the core only deals in velocities
const dynamicMass = 1.0

// ChipmunkEngine creates Chipmunk2D backed worlds. It is always ready.
type ChipmunkEngine struct{}

// Ready implements Engine
func (ChipmunkEngine) Ready() bool {
	return true
}

// NewWorld implements Engine
func (ChipmunkEngine) NewWorld(opts WorldOptions) (World, error) {
	w, err := NewChipmunkWorld(opts)
	if err != nil {
		return nil, err
	}
	return w, nil
}

type chipmunkBody struct {
	id     BodyID
	tag    string
	static bool
	sensor bool
	body   *cp.Body
	shape  *cp.Shape
}

// ChipmunkWorld implements World on top of a cp.Space.
// Restitution of a contact is the product of both shapes' elasticity.
//
// Collision-start pairs are buffered while the space steps and handed to
// subscribers after cp.Space.Step returns, so handlers can freely set
// positions and velocities without touching a space that is mid-step.
type ChipmunkWorld struct {
	Dispatcher

	space   *cp.Space
	bodies  map[BodyID]*chipmunkBody
	pending []CollisionPair
	closed  bool
}

// NewChipmunkWorld creates an empty world
func NewChipmunkWorld(opts WorldOptions) (*ChipmunkWorld, error) {
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("physics: invalid solver iterations %d", opts.Iterations)
	}
	if opts.Damping < 0 || opts.Damping > 1 {
		return nil, fmt.Errorf("physics: damping %.3f outside [0, 1]", opts.Damping)
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: opts.Gravity.X, Y: opts.Gravity.Y})
	space.Iterations = uint(opts.Iterations)
	if opts.Damping > 0 {
		space.SetDamping(opts.Damping)
	}

	w := &ChipmunkWorld{
		space:  space,
		bodies: make(map[BodyID]*chipmunkBody),
	}

	handler := space.NewCollisionHandler(bodyCollisionType, bodyCollisionType)
	handler.BeginFunc = w.begin

	return w, nil
}

// begin records a pair the first step two shapes touch
func (w *ChipmunkWorld) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	idA, okA := a.UserData.(BodyID)
	idB, okB := b.UserData.(BodyID)
	if !okA || !okB {
		return true
	}

	set := arb.ContactPointSet()
	contacts := make([]Vec, 0, set.Count)
	for i := 0; i < set.Count; i++ {
		p := set.Points[i].PointA
		contacts = append(contacts, Vec{X: p.X, Y: p.Y})
	}

	w.pending = append(w.pending, CollisionPair{A: idA, B: idB, Contacts: contacts})
	return true
}

// Add implements World
func (w *ChipmunkWorld) Add(defs ...BodyDef) []BodyID {
	ids := make([]BodyID, 0, len(defs))
	for _, def := range defs {
		ids = append(ids, w.add(def))
	}
	return ids
}

func (w *ChipmunkWorld) add(def BodyDef) BodyID {
	if w.closed {
		return InvalidBodyID
	}

	var body *cp.Body
	if def.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(dynamicMass, momentFor(def))
	}
	body.SetPosition(toCP(def.Position))
	body.SetAngle(def.Angle)

	var shape *cp.Shape
	switch def.Shape {
	case ShapeRect:
		shape = cp.NewBox(body, def.Width, def.Height, 0)
	default:
		shape = cp.NewCircle(body, def.Radius, cp.Vector{})
	}
	shape.SetElasticity(def.Restitution)
	shape.SetFriction(def.Friction)
	shape.SetSensor(def.Sensor)
	shape.SetCollisionType(bodyCollisionType)

	id := NewBodyID()
	body.UserData = id

	w.space.AddBody(body)
	w.space.AddShape(shape)
	if !def.Static {
		body.SetVelocity(def.Velocity.X, def.Velocity.Y)
	}

	w.bodies[id] = &chipmunkBody{
		id:     id,
		tag:    def.Tag,
		static: def.Static,
		sensor: def.Sensor,
		body:   body,
		shape:  shape,
	}
	return id
}

func momentFor(def BodyDef) float64 {
	if def.Shape == ShapeRect {
		return cp.MomentForBox(dynamicMass, def.Width, def.Height)
	}
	return cp.MomentForCircle(dynamicMass, 0, def.Radius, cp.Vector{})
}

// Remove implements World
func (w *ChipmunkWorld) Remove(ids ...BodyID) {
	for _, id := range ids {
		b, ok := w.bodies[id]
		if !ok {
			continue
		}
		w.space.RemoveShape(b.shape)
		w.space.RemoveBody(b.body)
		delete(w.bodies, id)
	}
}

// Body implements World
func (w *ChipmunkWorld) Body(id BodyID) (BodyState, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return BodyState{}, false
	}
	return BodyState{
		ID:       b.id,
		Tag:      b.tag,
		Static:   b.static,
		Sensor:   b.sensor,
		Position: fromCP(b.body.Position()),
		Velocity: fromCP(b.body.Velocity()),
	}, true
}

// SetVelocity implements World. Static bodies cannot be given a velocity.
func (w *ChipmunkWorld) SetVelocity(id BodyID, v Vec) bool {
	b, ok := w.bodies[id]
	if !ok || b.static {
		return false
	}
	b.body.SetVelocity(v.X, v.Y)
	return true
}

// SetPosition implements World
func (w *ChipmunkWorld) SetPosition(id BodyID, p Vec) bool {
	b, ok := w.bodies[id]
	if !ok || b.static {
		return false
	}
	b.body.SetPosition(toCP(p))
	return true
}

// Step implements World
func (w *ChipmunkWorld) Step(dt time.Duration) {
	if w.closed {
		return
	}

	w.pending = nil
	w.space.Step(dt.Seconds())
	pairs := w.pending
	w.pending = nil

	w.DispatchCollisions(pairs)
	if w.closed {
		return
	}
	w.DispatchAfterUpdate()
}

// BodyCount returns the number of registered bodies
func (w *ChipmunkWorld) BodyCount() int {
	return len(w.bodies)
}

// Close implements World
func (w *ChipmunkWorld) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.Reset()
	w.bodies = make(map[BodyID]*chipmunkBody)
	w.pending = nil
	return nil
}

func toCP(v Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) Vec {
	return Vec{X: v.X, Y: v.Y}
}
