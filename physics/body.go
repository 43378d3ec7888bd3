package physics

import "sync/atomic"

// BodyID is a unique identifier for a body registered with a World.
// IDs are never reused within a process, so a stale ID simply fails lookups.
type BodyID uint64

// InvalidBodyID represents an unset body reference
const InvalidBodyID BodyID = 0

var nextBodyID uint64

// NewBodyID returns a fresh unique body ID
func NewBodyID() BodyID {
	return BodyID(atomic.AddUint64(&nextBodyID, 1))
}

// ShapeKind identifies the collision shape of a body
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// BodyDef describes a body to create
type BodyDef struct {
	// Tag is the role label carried by the body (entrant name or zone tag)
	Tag string

	Shape ShapeKind

	// Position of the body centre
	Position Vec

	// Radius for circles
	Radius float64

	// Width and Height for rectangles (before rotation)
	Width, Height float64

	// Angle in radians, clockwise on screen
	Angle float64

	// Static bodies never move; Sensor bodies report overlaps but do not collide
	Static bool
	Sensor bool

	// Material
	Restitution float64
	Friction    float64

	// Initial velocity in units per second (dynamic bodies only)
	Velocity Vec
}

// BodyState is a snapshot of a registered body
type BodyState struct {
	ID       BodyID
	Tag      string
	Static   bool
	Sensor   bool
	Position Vec
	Velocity Vec
}
