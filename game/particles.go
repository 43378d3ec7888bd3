package game

import (
	"image/color"
	"math"

	"pinball-lottery/physics"
)

// DisplayRate is the frame rate confetti motion is tuned for
const DisplayRate = 60

// Particle represents a single confetti square
type Particle struct {
	Pos physics.Vec // arena position
	Vel physics.Vec // velocity in pixels per display frame

	// Life is the remaining lifetime in display frames
	Life float64

	// MaxLife is the lifetime at emission
	MaxLife float64

	Color color.RGBA
	Size  float64
}

// IsAlive returns true if the particle has life left
func (p *Particle) IsAlive() bool {
	return p.Life > 0
}

// Fade returns the remaining fraction of the particle's life
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Life/p.MaxLife))
}

// ParticleSystem keeps confetti in a fixed ring. Emission stops while the
// ring is full; expired particles leave from the oldest end.
type ParticleSystem struct {
	ring  []Particle
	head  int
	count int

	life    float64
	size    float64
	speed   float64
	gravity float64
	drag    float64

	rng Random
}

// NewParticleSystem creates a particle system sized from cfg
func NewParticleSystem(cfg Config, rng Random) *ParticleSystem {
	return &ParticleSystem{
		ring:    make([]Particle, max(1, cfg.MaxParticles)),
		life:    float64(cfg.ParticleLife),
		size:    cfg.ParticleSize,
		speed:   cfg.ParticleSpeed,
		gravity: cfg.ParticleGravity,
		drag:    cfg.ParticleDrag,
		rng:     rng,
	}
}

// Emit spawns up to n particles at pos and returns how many were emitted
func (ps *ParticleSystem) Emit(pos physics.Vec, n int) int {
	emitted := 0
	for i := 0; i < n && ps.count < len(ps.ring); i++ {
		vel := physics.Vec{
			X: (ps.rng.Float64() - 0.5) * ps.speed,
			Y: (ps.rng.Float64() - 1) * ps.speed,
		}
		idx := (ps.head + ps.count) % len(ps.ring)
		ps.ring[idx] = Particle{
			Pos:     pos,
			Vel:     vel,
			Life:    ps.life,
			MaxLife: ps.life,
			Color:   ConfettiColor(ps.rng),
			Size:    ps.size,
		}
		ps.count++
		emitted++
	}
	return emitted
}

// Update advances every particle by frames display frames
func (ps *ParticleSystem) Update(frames float64) {
	if frames <= 0 {
		return
	}
	damp := math.Pow(ps.drag, frames)
	for i := 0; i < ps.count; i++ {
		p := &ps.ring[(ps.head+i)%len(ps.ring)]
		p.Pos = p.Pos.Add(p.Vel.Scale(frames))
		p.Vel.Y += ps.gravity * frames
		p.Vel = p.Vel.Scale(damp)
		p.Life -= frames
	}

	// Remove expired particles from the oldest end
	for ps.count > 0 && !ps.ring[ps.head].IsAlive() {
		ps.ring[ps.head] = Particle{}
		ps.head = (ps.head + 1) % len(ps.ring)
		ps.count--
	}
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return ps.count
}

// Cap returns the ring capacity
func (ps *ParticleSystem) Cap() int {
	return len(ps.ring)
}

// AppendTo appends live particles, oldest first, to dst
func (ps *ParticleSystem) AppendTo(dst []Particle) []Particle {
	for i := 0; i < ps.count; i++ {
		dst = append(dst, ps.ring[(ps.head+i)%len(ps.ring)])
	}
	return dst
}

// Reset drops every particle
func (ps *ParticleSystem) Reset() {
	for i := range ps.ring {
		ps.ring[i] = Particle{}
	}
	ps.head = 0
	ps.count = 0
}
