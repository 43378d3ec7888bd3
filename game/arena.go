package game

import (
	"image/color"
	"math"

	"pinball-lottery/physics"
)

// Random is the randomness source of arena layout, spawning and effects.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// ZoneDesc describes one static arena body
type ZoneDesc struct {
	Kind  ZoneKind
	Shape physics.ShapeKind

	Position physics.Vec
	Radius   float64
	Width    float64
	Height   float64
	Angle    float64

	Restitution float64

	// Color is the fill of obstacles and the outline of everything else
	Color color.RGBA

	// Pair is the portal pair index, -1 for other zones
	Pair int
}

// BodyDef returns the physics body for this zone
func (z ZoneDesc) BodyDef() physics.BodyDef {
	cfg := GetZoneConfig(z.Kind)
	return physics.BodyDef{
		Tag:         cfg.Tag,
		Shape:       z.Shape,
		Position:    z.Position,
		Radius:      z.Radius,
		Width:       z.Width,
		Height:      z.Height,
		Angle:       z.Angle,
		Static:      true,
		Sensor:      cfg.Sensor,
		Restitution: z.Restitution,
	}
}

// Arena is the static layout of one game
type Arena struct {
	Width  float64
	Height float64

	Zones []ZoneDesc

	// CrowdedPegs counts pegs placed after the attempt budget ran out
	CrowdedPegs int
}

// Pegs returns the obstacle descriptors
func (a Arena) Pegs() []ZoneDesc {
	return a.OfKind(ZoneObstacle)
}

// OfKind returns the descriptors of one zone kind in layout order
func (a Arena) OfKind(kind ZoneKind) []ZoneDesc {
	var out []ZoneDesc
	for _, z := range a.Zones {
		if z.Kind == kind {
			out = append(out, z)
		}
	}
	return out
}

// BuildArena lays out walls, ramps, pegs, zones and portals.
// It only describes bodies; nothing is registered with a world.
func BuildArena(cfg Config, rng Random) Arena {
	w, h := cfg.ArenaWidth, cfg.ArenaHeight
	arena := Arena{Width: w, Height: h}

	arena.Zones = append(arena.Zones, buildWalls(cfg)...)

	pegs, crowded := placePegs(cfg, rng)
	arena.Zones = append(arena.Zones, pegs...)
	arena.CrowdedPegs = crowded

	arena.Zones = append(arena.Zones,
		rectZone(ZoneAccelerator, physics.Vec{X: w / 2, Y: h/2 - cfg.ZoneOffset}, cfg.ZoneWidth, cfg.ZoneHeight, 0),
		rectZone(ZoneDecelerator, physics.Vec{X: w / 2, Y: h/2 + cfg.ZoneOffset}, cfg.ZoneWidth, cfg.ZoneHeight, 0),
		rectZone(ZoneAntiGravityWing, physics.Vec{X: cfg.WingInset, Y: h - cfg.WingBottomOffset}, cfg.WingWidth, cfg.WingHeight, 0),
		rectZone(ZoneAntiGravityWing, physics.Vec{X: w - cfg.WingInset, Y: h - cfg.WingBottomOffset}, cfg.WingWidth, cfg.WingHeight, 0),
	)

	portals := [][2]physics.Vec{
		{{X: 70, Y: 250}, {X: w - 70, Y: 300}},
		{{X: w/2 - 140, Y: 350}, {X: w/2 + 140, Y: 200}},
	}
	for i, p := range portals {
		ca, cb := PortalColors(i)
		arena.Zones = append(arena.Zones,
			portalZone(p[0], cfg.PortalRadius, ca, i),
			portalZone(p[1], cfg.PortalRadius, cb, i),
		)
	}

	return arena
}

func buildWalls(cfg Config) []ZoneDesc {
	w, h, t := cfg.ArenaWidth, cfg.ArenaHeight, cfg.WallThickness
	rampOffset := cfg.RampGap/2 + cfg.RampWidth/2
	rampY := h - cfg.RampBottomOffset

	walls := []ZoneDesc{
		rectZone(ZoneWall, physics.Vec{X: w / 2, Y: -t / 2}, w, t, 0),
		rectZone(ZoneWall, physics.Vec{X: -t / 2, Y: h / 2}, t, h, 0),
		rectZone(ZoneWall, physics.Vec{X: w + t/2, Y: h / 2}, t, h, 0),
		rectZone(ZoneWall, physics.Vec{X: w/2 - rampOffset, Y: rampY}, cfg.RampWidth, cfg.RampHeight, cfg.RampAngle),
		rectZone(ZoneWall, physics.Vec{X: w/2 + rampOffset, Y: rampY}, cfg.RampWidth, cfg.RampHeight, -cfg.RampAngle),
	}
	for i := range walls {
		walls[i].Restitution = cfg.WallRestitution
	}
	return walls
}

// placePegs draws candidates uniformly and rejects those closer than the
// minimum separation to an earlier peg. When the attempt budget runs out the
// last candidate is kept anyway. Returns the pegs and how many were crowded.
func placePegs(cfg Config, rng Random) ([]ZoneDesc, int) {
	w, h := cfg.ArenaWidth, cfg.ArenaHeight
	spanX := w - 2*cfg.PegMargin
	spanY := h - cfg.PegTop - cfg.PegBottomMargin

	grid := NewGrid(cfg.PegMargin, cfg.PegTop, spanX, spanY, cfg.PegMinSeparation)
	pegs := make([]ZoneDesc, 0, cfg.PegCount)
	crowded := 0

	for i := 0; i < cfg.PegCount; i++ {
		radius := cfg.PegMinRadius + rng.Float64()*cfg.PegRadiusSpread

		var pos physics.Vec
		ok := false
		for attempt := 0; attempt < cfg.PegPlacementAttempts && !ok; attempt++ {
			pos = physics.Vec{
				X: cfg.PegMargin + rng.Float64()*spanX,
				Y: cfg.PegTop + rng.Float64()*spanY,
			}
			ok = !grid.AnyWithin(pos, cfg.PegMinSeparation)
		}
		if !ok {
			crowded++
		}
		grid.Insert(pos)

		pegs = append(pegs, ZoneDesc{
			Kind:        ZoneObstacle,
			Shape:       physics.ShapeCircle,
			Position:    pos,
			Radius:      radius,
			Restitution: cfg.PegRestitution,
			Color:       HueColor(rng.Float64()*360, 0.6),
			Pair:        -1,
		})
	}
	return pegs, crowded
}

func rectZone(kind ZoneKind, pos physics.Vec, width, height, angle float64) ZoneDesc {
	return ZoneDesc{
		Kind:     kind,
		Shape:    physics.ShapeRect,
		Position: pos,
		Width:    width,
		Height:   height,
		Angle:    angle,
		Color:    GetZoneConfig(kind).Color,
		Pair:     -1,
	}
}

func portalZone(pos physics.Vec, radius float64, clr color.RGBA, pair int) ZoneDesc {
	return ZoneDesc{
		Kind:     ZonePortalNode,
		Shape:    physics.ShapeCircle,
		Position: pos,
		Radius:   radius,
		Color:    clr,
		Pair:     pair,
	}
}

// Corners returns the four corners of a rectangular zone after rotation
func (z ZoneDesc) Corners() [4]physics.Vec {
	hw, hh := z.Width/2, z.Height/2
	sin, cos := math.Sincos(z.Angle)
	local := [4]physics.Vec{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	var out [4]physics.Vec
	for i, p := range local {
		out[i] = physics.Vec{
			X: z.Position.X + p.X*cos - p.Y*sin,
			Y: z.Position.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}
