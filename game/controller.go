package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"pinball-lottery/physics"
)

// ErrEngineNotReady is returned by Start while the physics engine is unavailable
var ErrEngineNotReady = errors.New("game: physics engine not ready")

// State is the lifecycle state of a Controller
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateFinished
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures a Controller. Zero fields get defaults.
type Options struct {
	// Clock for cooldowns and bubble expiry; defaults to SystemClock
	Clock Clock

	// Random source; defaults to a time-seeded *rand.Rand
	Random Random

	// Logger for lifecycle messages; defaults to log.Default()
	Logger *log.Logger

	// Listener receives every decorative trigger after confetti and bubbles
	Listener Feedback
}

// Controller owns one lottery session: the world, the collision rules, the
// win check and the decorative state. It is driven by a single host loop
// and is not safe for concurrent use.
type Controller struct {
	cfg    Config
	engine physics.Engine
	clock  Clock
	rng    Random
	logger *log.Logger

	particles *ParticleSystem
	bubbles   *BubbleBoard
	fx        *effects

	state   State
	outcome Outcome

	arena    Arena
	entrants []Entrant
	movers   []Mover

	world    physics.World
	runner   *physics.Runner
	subs     []physics.Subscription
	resolver *CollisionResolver
	portals  *PortalManager
	detector *WinDetector
}

// NewController creates an idle controller
func NewController(cfg Config, engine physics.Engine, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Listener == nil {
		opts.Listener = NopFeedback{}
	}

	c := &Controller{
		cfg:       cfg,
		engine:    engine,
		clock:     opts.Clock,
		rng:       opts.Random,
		logger:    opts.Logger,
		particles: NewParticleSystem(cfg, opts.Random),
		bubbles:   NewBubbleBoard(cfg.BubbleDuration, opts.Random),
	}
	c.fx = &effects{
		cfg:       cfg,
		particles: c.particles,
		bubbles:   c.bubbles,
		clock:     c.clock,
		listener:  opts.Listener,
	}
	return c
}

// Start parses raw entrant input and begins a new game.
// Starting while a game is playing does nothing. Starting after a finish
// discards the previous game.
func (c *Controller) Start(raw string) error {
	if c.state == StatePlaying {
		return nil
	}
	if c.engine == nil || !c.engine.Ready() {
		c.logger.Printf("start rejected: %v", ErrEngineNotReady)
		return ErrEngineNotReady
	}
	names := ParseNames(raw)
	if len(names) == 0 {
		c.logger.Printf("start rejected: %v", ErrEmptyEntrantList)
		return ErrEmptyEntrantList
	}

	// The previous world goes before the next one is created
	c.teardown()
	c.particles.Reset()
	c.bubbles.Reset()
	c.state = StateIdle

	world, err := c.engine.NewWorld(physics.WorldOptions{
		Gravity:    physics.Vec{Y: c.cfg.Gravity},
		Iterations: c.cfg.SolverIterations,
		Damping:    c.cfg.AirDamping,
	})
	if err != nil {
		return fmt.Errorf("game: create world: %w", err)
	}

	arena := BuildArena(c.cfg, c.rng)
	specs, err := Populate(c.cfg, names, c.rng)
	if err != nil {
		world.Close()
		return err
	}

	// Zones first so their IDs line up with arena.Zones
	zoneDefs := make([]physics.BodyDef, len(arena.Zones))
	for i, z := range arena.Zones {
		zoneDefs[i] = z.BodyDef()
	}
	zoneIDs := world.Add(zoneDefs...)

	portals := NewPortalManager(world, c.cfg.PortalCooldown, c.cfg.PortalDamping)
	pairNodes := make(map[int][]physics.BodyID)
	for i, z := range arena.Zones {
		if z.Kind == ZonePortalNode && z.Pair >= 0 {
			pairNodes[z.Pair] = append(pairNodes[z.Pair], zoneIDs[i])
		}
	}
	for _, nodes := range pairNodes {
		if len(nodes) == 2 {
			portals.AddPair(nodes[0], nodes[1])
		}
	}

	moverDefs := make([]physics.BodyDef, len(specs))
	for i, s := range specs {
		moverDefs[i] = s.BodyDef()
	}
	moverIDs := world.Add(moverDefs...)
	movers := make([]Mover, len(specs))
	for i, s := range specs {
		movers[i] = Mover{ID: moverIDs[i], Entrant: s.Entrant, Label: s.Label}
	}

	cx, cy := c.cfg.Center()
	c.world = world
	c.arena = arena
	c.entrants = NewEntrants(names)
	c.movers = movers
	c.portals = portals
	c.resolver = NewCollisionResolver(c.cfg, world, portals, c.fx, c.rng, c.clock)
	c.detector = NewWinDetector(world, movers, c.cfg.ArenaHeight, physics.Vec{X: cx, Y: cy}, c.fx, c.finish)
	c.subs = append(c.subs,
		world.OnCollisionStart(c.resolver.HandlePairs),
		world.OnAfterUpdate(c.detector.Check),
	)
	c.runner = physics.NewRunner(world, c.cfg.StepDuration())
	c.outcome = Outcome{}
	c.state = StatePlaying

	c.logger.Printf("game started: %d entrants, %d movers, %d pegs (%d crowded)",
		len(names), len(movers), len(arena.Pegs()), arena.CrowdedPegs)
	return nil
}

// finish records the outcome; the world keeps running so the board stays lively
func (c *Controller) finish(o Outcome) {
	if c.state != StatePlaying {
		return
	}
	c.outcome = o
	c.state = StateFinished
	c.logger.Printf("game finished on step %d: %s", o.Tick, o)
}

// Advance feeds elapsed host time to the physics runner and ages confetti
// and bubbles. Returns the number of physics steps run.
func (c *Controller) Advance(elapsed time.Duration) int {
	steps := 0
	if c.runner != nil {
		steps = c.runner.Advance(elapsed)
	}
	c.particles.Update(elapsed.Seconds() * DisplayRate)
	c.bubbles.Prune(c.clock.Now())
	return steps
}

// Close releases the current world. No handler runs after Close returns.
func (c *Controller) Close() {
	c.teardown()
	if c.state == StatePlaying {
		c.state = StateIdle
	}
}

func (c *Controller) teardown() {
	for _, sub := range c.subs {
		sub.Unsubscribe()
	}
	c.subs = nil
	if c.runner != nil {
		c.runner.Stop()
		c.runner = nil
	}
	if c.world != nil {
		if err := c.world.Close(); err != nil {
			c.logger.Printf("closing world: %v", err)
		}
		c.world = nil
	}
	c.resolver = nil
	c.detector = nil
	if c.portals != nil {
		c.portals.Reset()
		c.portals = nil
	}
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Outcome returns the result once the game has finished
func (c *Controller) Outcome() (Outcome, bool) {
	return c.outcome, c.state == StateFinished
}

// Config returns the controller configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// Arena returns the current layout
func (c *Controller) Arena() Arena {
	return c.arena
}

// Entrants returns the entrants of the current game
func (c *Controller) Entrants() []Entrant {
	return c.entrants
}

// Movers returns a position snapshot of every mover
func (c *Controller) Movers() []MoverView {
	if c.world == nil {
		return nil
	}
	views := make([]MoverView, 0, len(c.movers))
	for _, m := range c.movers {
		s, ok := c.world.Body(m.ID)
		if !ok {
			continue
		}
		views = append(views, MoverView{
			Label:    m.Label,
			Entrant:  m.Entrant,
			Position: s.Position,
			Radius:   c.cfg.MoverRadius,
			Color:    c.entrants[m.Entrant].Color(),
		})
	}
	return views
}

// Particles returns the live confetti, oldest first
func (c *Controller) Particles() []Particle {
	return c.particles.AppendTo(make([]Particle, 0, c.particles.Len()))
}

// Bubbles returns the live speech bubbles
func (c *Controller) Bubbles() []Bubble {
	return c.bubbles.Active()
}

// Steps returns the physics steps run in the current game
func (c *Controller) Steps() uint64 {
	if c.runner == nil {
		return 0
	}
	return c.runner.Steps()
}

// Debug returns the overlay snapshot
func (c *Controller) Debug() DebugInfo {
	info := DebugInfo{
		State:       c.state,
		Tick:        c.Steps(),
		Movers:      len(c.movers),
		Particles:   c.particles.Len(),
		ParticleCap: c.particles.Cap(),
		Bubbles:     c.bubbles.Len(),
		Crowded:     c.arena.CrowdedPegs,
	}
	if c.detector != nil {
		info.Alive = c.detector.Alive()
	}
	if c.resolver != nil {
		info.Resolver = c.resolver.Stats()
	}
	return info
}
