package game

import "pinball-lottery/physics"

// ResolverStats counts collision outcomes
type ResolverStats struct {
	Resolved  int // effects applied
	Ignored   int // pairs without exactly one mover or without a rule to apply
	Dropped   int // pairs referencing bodies the world does not know
	Teleports int
	Declined  int // portal entries refused by the cooldown or the world
}

// CollisionResolver applies zone effects to movers when a collision starts
type CollisionResolver struct {
	cfg      Config
	world    physics.World
	portals  *PortalManager
	feedback Feedback
	rng      Random
	clock    Clock

	stats ResolverStats
}

// NewCollisionResolver creates a resolver bound to one world
func NewCollisionResolver(cfg Config, world physics.World, portals *PortalManager, feedback Feedback, rng Random, clock Clock) *CollisionResolver {
	if feedback == nil {
		feedback = NopFeedback{}
	}
	return &CollisionResolver{
		cfg:      cfg,
		world:    world,
		portals:  portals,
		feedback: feedback,
		rng:      rng,
		clock:    clock,
	}
}

// HandlePairs resolves every pair of one step in order
func (c *CollisionResolver) HandlePairs(pairs []physics.CollisionPair) {
	for _, pair := range pairs {
		c.OnCollision(pair)
	}
}

// isMover reports whether a body is a mover: dynamic and not zone-tagged
func isMover(s physics.BodyState) bool {
	return !s.Static && !IsReservedTag(s.Tag)
}

// OnCollision resolves one collision-start pair
func (c *CollisionResolver) OnCollision(pair physics.CollisionPair) {
	a, okA := c.world.Body(pair.A)
	b, okB := c.world.Body(pair.B)
	if !okA || !okB {
		c.stats.Dropped++
		return
	}

	var mover, other physics.BodyState
	switch moverA, moverB := isMover(a), isMover(b); {
	case moverA && !moverB:
		mover, other = a, b
	case moverB && !moverA:
		mover, other = b, a
	default:
		c.stats.Ignored++
		return
	}

	kind, ok := ZoneForTag(other.Tag)
	if !ok {
		c.stats.Ignored++
		return
	}

	switch kind {
	case ZoneObstacle:
		c.scale(mover, c.cfg.PegBoost)
		c.feedback.Burst(mover.Position)

	case ZoneWall:
		c.scale(mover, c.cfg.WallBoost)
		at := mover.Position
		if len(pair.Contacts) > 0 {
			at = pair.Contacts[0]
		}
		c.feedback.Spark(at)

	case ZoneAccelerator:
		c.scale(mover, c.cfg.AccelBoost)

	case ZoneDecelerator:
		c.scale(mover, c.cfg.SlowFactor)

	case ZoneAntiGravityWing:
		c.world.SetVelocity(mover.ID, physics.Vec{X: mover.Velocity.X, Y: -c.cfg.WingLaunchSpeed})
		c.feedback.Spark(mover.Position)

	case ZonePortalNode:
		if c.portals == nil || !c.portals.IsNode(other.ID) {
			c.stats.Ignored++
			return
		}
		if !c.portals.TryTeleport(mover.ID, other.ID, c.clock.Now()) {
			c.stats.Declined++
			return
		}
		c.stats.Teleports++
		// Bubble at the arrival point
		if moved, ok := c.world.Body(mover.ID); ok {
			mover = moved
		}

	default:
		c.stats.Ignored++
		return
	}

	c.stats.Resolved++
	if c.rng.Float64() < c.cfg.BubbleChance {
		c.feedback.Bubble(mover.Tag, mover.Position)
	}
}

func (c *CollisionResolver) scale(mover physics.BodyState, factor float64) {
	c.world.SetVelocity(mover.ID, mover.Velocity.Scale(factor))
}

// Stats returns the outcome counters
func (c *CollisionResolver) Stats() ResolverStats {
	return c.stats
}
