package game

import (
	"slices"
	"strings"

	"pinball-lottery/physics"
)

// Outcome is the result of a finished game
type Outcome struct {
	// Winner is the surviving label; empty for a draw
	Winner string

	// Draw is set when every remaining entrant fell in the same tick
	Draw bool

	// Finalists are the labels alive just before a draw
	Finalists []string

	// Tick is the physics step on which the game finished
	Tick uint64
}

// String returns the banner text
func (o Outcome) String() string {
	if o.Draw {
		return "DRAW: " + strings.Join(o.Finalists, ", ")
	}
	return o.Winner + " WINS!"
}

// WinDetector watches mover heights after each step and decides the game
// once a single label has movers above the elimination bound
type WinDetector struct {
	world    physics.World
	movers   []Mover
	bound    float64
	center   physics.Vec
	feedback Feedback
	finish   func(Outcome)

	alive     []string
	lastAlive []string
	ticks     uint64
	done      bool
}

// NewWinDetector creates a detector; finish is called at most once
func NewWinDetector(world physics.World, movers []Mover, bound float64, center physics.Vec, feedback Feedback, finish func(Outcome)) *WinDetector {
	if feedback == nil {
		feedback = NopFeedback{}
	}
	d := &WinDetector{
		world:    world,
		movers:   movers,
		bound:    bound,
		center:   center,
		feedback: feedback,
		finish:   finish,
	}
	// Every entrant counts as alive before the first step
	for _, m := range movers {
		d.lastAlive = appendLabel(d.lastAlive, m.Label)
	}
	return d
}

// Check collects the labels still in play and finishes the game when one
// label remains. If every label falls in the same tick the game is a draw
// among the labels alive on the previous tick.
func (d *WinDetector) Check() {
	d.ticks++
	if d.done {
		return
	}

	d.alive = d.collectAlive(d.alive[:0])

	var outcome Outcome
	switch len(d.alive) {
	case 1:
		outcome = Outcome{Winner: d.alive[0]}
	case 0:
		outcome = Outcome{Draw: true, Finalists: append([]string(nil), d.lastAlive...)}
	default:
		d.lastAlive = append(d.lastAlive[:0], d.alive...)
		return
	}
	outcome.Tick = d.ticks

	d.done = true
	if !outcome.Draw {
		d.feedback.Celebrate(d.center)
	}
	if d.finish != nil {
		d.finish(outcome)
	}
}

// collectAlive appends distinct labels with a mover above the bound, in
// first-mover order
func (d *WinDetector) collectAlive(dst []string) []string {
	for _, m := range d.movers {
		s, ok := d.world.Body(m.ID)
		if !ok || s.Position.Y >= d.bound {
			continue
		}
		dst = appendLabel(dst, m.Label)
	}
	return dst
}

func appendLabel(labels []string, label string) []string {
	if slices.Contains(labels, label) {
		return labels
	}
	return append(labels, label)
}

// Alive returns the labels alive after the last check
func (d *WinDetector) Alive() []string {
	return append([]string(nil), d.alive...)
}

// Done reports whether the game has been decided
func (d *WinDetector) Done() bool {
	return d.done
}
