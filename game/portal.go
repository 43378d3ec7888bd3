package game

import (
	"time"

	"pinball-lottery/physics"
)

// PortalManager relocates movers between paired portal nodes and enforces
// a per-mover cooldown so a mover arriving on a node is not sent straight back.
type PortalManager struct {
	world    physics.World
	cooldown time.Duration
	damping  float64

	// partner maps each node to the other node of its pair
	partner map[physics.BodyID]physics.BodyID

	// last holds each mover's most recent teleport time
	last map[physics.BodyID]time.Time

	teleports int
}

// NewPortalManager creates a manager with no pairs
func NewPortalManager(world physics.World, cooldown time.Duration, damping float64) *PortalManager {
	return &PortalManager{
		world:    world,
		cooldown: cooldown,
		damping:  damping,
		partner:  make(map[physics.BodyID]physics.BodyID),
		last:     make(map[physics.BodyID]time.Time),
	}
}

// AddPair links two portal nodes
func (p *PortalManager) AddPair(a, b physics.BodyID) {
	p.partner[a] = b
	p.partner[b] = a
}

// IsNode reports whether id belongs to a registered pair
func (p *PortalManager) IsNode(id physics.BodyID) bool {
	_, ok := p.partner[id]
	return ok
}

// TryTeleport moves mover from node to the paired node and scales its
// velocity. It declines when node is not paired, when the mover teleported
// less than the cooldown before now, or when the world rejects the update.
func (p *PortalManager) TryTeleport(mover, node physics.BodyID, now time.Time) bool {
	target, ok := p.partner[node]
	if !ok {
		return false
	}
	if last, ok := p.last[mover]; ok && now.Sub(last) < p.cooldown {
		return false
	}

	dest, ok := p.world.Body(target)
	if !ok {
		return false
	}
	state, ok := p.world.Body(mover)
	if !ok {
		return false
	}
	if !p.world.SetPosition(mover, dest.Position) {
		return false
	}
	p.world.SetVelocity(mover, state.Velocity.Scale(p.damping))

	p.last[mover] = now
	p.teleports++
	return true
}

// LastTeleport returns when mover last teleported
func (p *PortalManager) LastTeleport(mover physics.BodyID) (time.Time, bool) {
	t, ok := p.last[mover]
	return t, ok
}

// Teleports returns the number of successful teleports
func (p *PortalManager) Teleports() int {
	return p.teleports
}

// Reset forgets every cooldown
func (p *PortalManager) Reset() {
	p.last = make(map[physics.BodyID]time.Time)
	p.teleports = 0
}
