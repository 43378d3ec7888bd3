package game

import "pinball-lottery/physics"

// Feedback receives decorative triggers from the simulation. Implementations
// must return quickly; they run inside physics step handlers.
type Feedback interface {
	// Burst fires when a mover strikes an obstacle peg
	Burst(pos physics.Vec)

	// Spark fires on wall contacts and wing launches
	Spark(pos physics.Vec)

	// Bubble shows a speech bubble for label at pos
	Bubble(label string, pos physics.Vec)

	// Celebrate fires once when a winner is decided
	Celebrate(pos physics.Vec)
}

// NopFeedback ignores every trigger
type NopFeedback struct{}

func (NopFeedback) Burst(physics.Vec)          {}
func (NopFeedback) Spark(physics.Vec)          {}
func (NopFeedback) Bubble(string, physics.Vec) {}
func (NopFeedback) Celebrate(physics.Vec)      {}

// effects turns triggers into confetti and bubbles, then forwards them
// to an optional listener such as a sound player
type effects struct {
	cfg       Config
	particles *ParticleSystem
	bubbles   *BubbleBoard
	clock     Clock
	listener  Feedback
}

func (e *effects) Burst(pos physics.Vec) {
	e.particles.Emit(pos, e.cfg.BurstParticles)
	e.listener.Burst(pos)
}

func (e *effects) Spark(pos physics.Vec) {
	e.particles.Emit(pos, e.cfg.SparkParticles)
	e.listener.Spark(pos)
}

func (e *effects) Bubble(label string, pos physics.Vec) {
	e.bubbles.Add(label, pos, e.clock.Now())
	e.listener.Bubble(label, pos)
}

func (e *effects) Celebrate(pos physics.Vec) {
	e.particles.Emit(pos, e.cfg.CelebrationParticles)
	e.listener.Celebrate(pos)
}
