package game

import "image/color"

// ZoneKind identifies the role of a static arena body
type ZoneKind int

const (
	ZoneNone ZoneKind = iota
	ZoneWall
	ZoneObstacle
	ZoneAccelerator
	ZoneDecelerator
	ZoneAntiGravityWing
	ZonePortalNode
)

// Reserved body tags. A dynamic body carrying any other tag is a mover.
const (
	TagWall     = "wall"
	TagObstacle = "circle"
	TagAccel    = "accel"
	TagSlow     = "slow"
	TagWing     = "anti"
	TagPortal   = "portal"
)

// ZoneConfig holds configuration for each zone kind
type ZoneConfig struct {
	Kind   ZoneKind
	Name   string
	Tag    string
	Sensor bool
	Color  color.RGBA // outline colour; obstacles and portals colour each body
}

var (
	// ZoneConfigs holds configuration for each zone kind
	ZoneConfigs = map[ZoneKind]ZoneConfig{
		ZoneWall: {
			Kind:  ZoneWall,
			Name:  "Wall",
			Tag:   TagWall,
			Color: color.RGBA{70, 70, 110, 255},
		},
		ZoneObstacle: {
			Kind:  ZoneObstacle,
			Name:  "Obstacle",
			Tag:   TagObstacle,
			Color: color.RGBA{255, 255, 255, 255},
		},
		ZoneAccelerator: {
			Kind:   ZoneAccelerator,
			Name:   "Accelerator",
			Tag:    TagAccel,
			Sensor: true,
			Color:  color.RGBA{0x00, 0xff, 0xa6, 255},
		},
		ZoneDecelerator: {
			Kind:   ZoneDecelerator,
			Name:   "Decelerator",
			Tag:    TagSlow,
			Sensor: true,
			Color:  color.RGBA{0xff, 0x00, 0x6e, 255},
		},
		ZoneAntiGravityWing: {
			Kind:   ZoneAntiGravityWing,
			Name:   "Anti-gravity wing",
			Tag:    TagWing,
			Sensor: true,
			Color:  color.RGBA{0xff, 0x9c, 0x00, 255},
		},
		ZonePortalNode: {
			Kind:   ZonePortalNode,
			Name:   "Portal",
			Tag:    TagPortal,
			Sensor: true,
			Color:  color.RGBA{0x8f, 0x5c, 0xff, 255},
		},
	}

	zoneByTag = map[string]ZoneKind{
		TagWall:     ZoneWall,
		TagObstacle: ZoneObstacle,
		TagAccel:    ZoneAccelerator,
		TagSlow:     ZoneDecelerator,
		TagWing:     ZoneAntiGravityWing,
		TagPortal:   ZonePortalNode,
	}
)

// GetZoneConfig returns configuration for a zone kind
func GetZoneConfig(kind ZoneKind) ZoneConfig {
	if config, ok := ZoneConfigs[kind]; ok {
		return config
	}
	return ZoneConfig{
		Kind:  kind,
		Name:  "Unknown",
		Color: color.RGBA{255, 100, 0, 255},
	}
}

// ZoneForTag maps a body tag to its zone kind
func ZoneForTag(tag string) (ZoneKind, bool) {
	kind, ok := zoneByTag[tag]
	return kind, ok
}

// IsReservedTag reports whether tag names an arena zone rather than an entrant
func IsReservedTag(tag string) bool {
	_, ok := zoneByTag[tag]
	return ok
}

// String returns the zone name
func (k ZoneKind) String() string {
	return GetZoneConfig(k).Name
}

// Portal pair outline colours, one pair per entry
var portalColors = [][2]color.RGBA{
	{{0x8f, 0x5c, 0xff, 255}, {0xff, 0x5c, 0xaa, 255}},
	{{0xff, 0xd9, 0x5c, 255}, {0x5c, 0x9b, 0xff, 255}},
}

// PortalColors returns the outline colours of portal pair i
func PortalColors(i int) (color.RGBA, color.RGBA) {
	if i < 0 {
		i = 0
	}
	c := portalColors[i%len(portalColors)]
	return c[0], c[1]
}
