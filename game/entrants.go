package game

import (
	"errors"
	"image/color"
	"math"
	"strings"

	"pinball-lottery/physics"
)

// ErrEmptyEntrantList is returned when the entrant input holds no names
var ErrEmptyEntrantList = errors.New("game: entrant list is empty")

// Entrant is one named participant
type Entrant struct {
	// Index in input order
	Index int

	// Label shared by every mover of this entrant
	Label string

	// Hue in degrees used for the entrant's movers
	Hue float64
}

// Color returns the entrant's mover colour
func (e Entrant) Color() color.RGBA {
	return HueColor(e.Hue, 0.65)
}

// MoverSpec describes one mover to spawn
type MoverSpec struct {
	// Entrant index in input order
	Entrant int

	// Label of the owning entrant
	Label string

	// Position and velocity at spawn
	Position physics.Vec
	Velocity physics.Vec

	// Collision radius in pixels
	Radius float64

	// Material
	Restitution float64
	Friction    float64
}

// BodyDef returns the physics body for this mover
func (m MoverSpec) BodyDef() physics.BodyDef {
	return physics.BodyDef{
		Tag:         m.Label,
		Shape:       physics.ShapeCircle,
		Position:    m.Position,
		Radius:      m.Radius,
		Restitution: m.Restitution,
		Friction:    m.Friction,
		Velocity:    m.Velocity,
	}
}

// Mover is a spawned mover registered with a world
type Mover struct {
	ID      physics.BodyID
	Entrant int
	Label   string
}

// MoverView is a render snapshot of one mover
type MoverView struct {
	Label    string
	Entrant  int
	Position physics.Vec
	Radius   float64
	Color    color.RGBA
}

// ParseNames splits raw input on runs of newlines and commas, trims each
// piece and drops blanks. Order and duplicates are kept.
func ParseNames(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// NewEntrants assigns indices and hues to names
func NewEntrants(names []string) []Entrant {
	entrants := make([]Entrant, len(names))
	for i, name := range names {
		entrants[i] = Entrant{Index: i, Label: name, Hue: EntrantHue(i)}
	}
	return entrants
}

// Populate spawns MoversPerEntrant movers per name, in input order, at the
// spawn point, each launched in an independent random direction.
func Populate(cfg Config, names []string, rng Random) ([]MoverSpec, error) {
	if len(names) == 0 {
		return nil, ErrEmptyEntrantList
	}

	spawn := physics.Vec{X: cfg.ArenaWidth / 2, Y: cfg.SpawnY}
	specs := make([]MoverSpec, 0, len(names)*cfg.MoversPerEntrant)
	for idx, name := range names {
		for k := 0; k < cfg.MoversPerEntrant; k++ {
			angle := rng.Float64() * 2 * math.Pi
			specs = append(specs, MoverSpec{
				Entrant:     idx,
				Label:       name,
				Position:    spawn,
				Velocity:    physics.FromAngle(angle, cfg.LaunchSpeed),
				Radius:      cfg.MoverRadius,
				Restitution: cfg.MoverRestitution,
				Friction:    cfg.MoverFriction,
			})
		}
	}
	return specs, nil
}
