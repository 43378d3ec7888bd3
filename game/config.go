package game

import (
	"math"
	"time"
)

// Config holds game configuration constants.
// Distances are in arena pixels, speeds in pixels per second.
type Config struct {
	// ScreenWidth is the window width in pixels (side panel plus arena)
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// PanelWidth is the width of the entrant input panel left of the arena
	PanelWidth int

	// ArenaWidth is the playfield width
	ArenaWidth float64

	// ArenaHeight is the playfield height; movers below it are eliminated
	ArenaHeight float64

	// WallThickness of the top, left and right boundary slabs
	WallThickness float64

	// RampGap is the opening between the two funnel ramps
	RampGap float64

	// RampWidth and RampHeight size each funnel ramp
	RampWidth  float64
	RampHeight float64

	// RampAngle is the ramp tilt in radians (left ramp positive, right ramp negative)
	RampAngle float64

	// RampBottomOffset is the distance of the ramp centres above the bottom boundary
	RampBottomOffset float64

	// PegCount is the number of obstacle pegs
	PegCount int

	// PegMinRadius and PegRadiusSpread give peg radii in [min, min+spread)
	PegMinRadius    float64
	PegRadiusSpread float64

	// PegMargin is the horizontal margin pegs keep from the side walls
	PegMargin float64

	// PegTop is the highest peg centre; pegs stay PegBottomMargin above the bottom
	PegTop          float64
	PegBottomMargin float64

	// PegMinSeparation is the minimum distance between peg centres
	PegMinSeparation float64

	// PegPlacementAttempts is the number of candidates tried per peg
	PegPlacementAttempts int

	// ZoneWidth and ZoneHeight size the accelerator and decelerator
	ZoneWidth  float64
	ZoneHeight float64

	// ZoneOffset is the vertical distance of both zones from the arena centre
	ZoneOffset float64

	// WingWidth and WingHeight size the anti-gravity wings
	WingWidth  float64
	WingHeight float64

	// WingInset is the horizontal distance of wing centres from the side walls
	WingInset float64

	// WingBottomOffset is the distance of wing centres above the bottom boundary
	WingBottomOffset float64

	// PortalRadius of each portal node
	PortalRadius float64

	// MoversPerEntrant is the number of movers spawned for each name
	MoversPerEntrant int

	// MoverRadius of each mover
	MoverRadius float64

	// MoverRestitution is above 1 so movers gain energy on bounces
	MoverRestitution float64

	// MoverFriction of each mover
	MoverFriction float64

	// LaunchSpeed is the initial speed of every mover
	LaunchSpeed float64

	// SpawnY is the spawn height; movers spawn at the horizontal centre
	SpawnY float64

	// PegRestitution and WallRestitution are the static body materials
	PegRestitution  float64
	WallRestitution float64

	// PegBoost scales mover velocity on peg hits
	PegBoost float64

	// WallBoost scales mover velocity on wall hits
	WallBoost float64

	// AccelBoost scales mover velocity entering the accelerator
	AccelBoost float64

	// SlowFactor scales mover velocity entering the decelerator
	SlowFactor float64

	// WingLaunchSpeed is the upward speed set by an anti-gravity wing
	WingLaunchSpeed float64

	// PortalDamping scales mover velocity after a teleport
	PortalDamping float64

	// PortalCooldown is the minimum time between two teleports of one mover
	PortalCooldown time.Duration

	// BubbleChance is the probability of a speech bubble after an effect
	BubbleChance float64

	// BubbleDuration is how long a speech bubble stays visible
	BubbleDuration time.Duration

	// Gravity is the downward acceleration
	Gravity float64

	// SolverIterations for the physics engine
	SolverIterations int

	// AirDamping is the fraction of velocity a mover keeps per second of flight
	AirDamping float64

	// StepRate is the number of fixed physics steps per second
	StepRate int

	// MaxParticles caps live confetti; emission stops while full
	MaxParticles int

	// BurstParticles, SparkParticles and CelebrationParticles are emission counts
	BurstParticles       int
	SparkParticles       int
	CelebrationParticles int

	// ParticleLife is the confetti lifetime in display frames
	ParticleLife int

	// ParticleSize is the confetti square edge
	ParticleSize float64

	// ParticleSpeed spreads initial confetti velocity, per frame
	ParticleSpeed float64

	// ParticleGravity is added to confetti vertical velocity each frame
	ParticleGravity float64

	// ParticleDrag scales confetti velocity each frame
	ParticleDrag float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 720,
		PanelWidth:   320,

		ArenaWidth:       480,
		ArenaHeight:      720,
		WallThickness:    60,
		RampGap:          60,
		RampWidth:        280,
		RampHeight:       14,
		RampAngle:        math.Pi / 4.2,
		RampBottomOffset: 40,

		PegCount:             18,
		PegMinRadius:         6,
		PegRadiusSpread:      4,
		PegMargin:            60,
		PegTop:               120,
		PegBottomMargin:      200,
		PegMinSeparation:     35,
		PegPlacementAttempts: 60,

		ZoneWidth:        120,
		ZoneHeight:       20,
		ZoneOffset:       140,
		WingWidth:        140,
		WingHeight:       30,
		WingInset:        90,
		WingBottomOffset: 25,
		PortalRadius:     16,

		MoversPerEntrant: 25,
		MoverRadius:      7,
		MoverRestitution: 1.2,
		MoverFriction:    0.0005,
		LaunchSpeed:      240, // 4 px per 60 Hz frame
		SpawnY:           40,

		PegRestitution:  1.2,
		WallRestitution: 1.0,

		PegBoost:        1.5,
		WallBoost:       1.2,
		AccelBoost:      1.2,
		SlowFactor:      0.8,
		WingLaunchSpeed: 1200, // 20 px per 60 Hz frame
		PortalDamping:   0.6,
		PortalCooldown:  600 * time.Millisecond,

		BubbleChance:   0.1,
		BubbleDuration: 1400 * time.Millisecond,

		Gravity:          250,
		SolverIterations: 12,
		AirDamping:       0.55,
		StepRate:         120,

		MaxParticles:         300,
		BurstParticles:       24,
		SparkParticles:       12,
		CelebrationParticles: 60,
		ParticleLife:         45,
		ParticleSize:         3,
		ParticleSpeed:        7,
		ParticleGravity:      0.1,
		ParticleDrag:         0.98,
	}
}

// StepDuration returns the fixed physics timestep
func (c Config) StepDuration() time.Duration {
	if c.StepRate <= 0 {
		return time.Second / 120
	}
	return time.Second / time.Duration(c.StepRate)
}

// Center returns the arena centre
func (c Config) Center() (float64, float64) {
	return c.ArenaWidth / 2, c.ArenaHeight / 2
}
