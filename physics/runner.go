package physics

import "time"

// DefaultMaxCatchUp bounds the steps taken by one Advance call
const DefaultMaxCatchUp = 8

// Runner drives a World at a fixed timestep from variable host frame times.
// It is not safe for concurrent use; the host loop owns it.
type Runner struct {
	world      World
	step       time.Duration
	accum      time.Duration
	maxCatchUp int
	steps      uint64
	stopped    bool
}

// NewRunner creates a runner stepping world every step
func NewRunner(world World, step time.Duration) *Runner {
	return &Runner{
		world:      world,
		step:       step,
		maxCatchUp: DefaultMaxCatchUp,
	}
}

// Step returns the fixed timestep
func (r *Runner) Step() time.Duration {
	return r.step
}

// Steps returns how many fixed steps have run
func (r *Runner) Steps() uint64 {
	return r.steps
}

// Advance accumulates elapsed host time and runs whole fixed steps.
// Time beyond the catch-up budget is dropped so a long stall does not
// trigger a burst of steps. Returns the number of steps run.
func (r *Runner) Advance(elapsed time.Duration) int {
	if r.stopped || r.step <= 0 || elapsed <= 0 {
		return 0
	}

	r.accum += elapsed
	n := 0
	for r.accum >= r.step && n < r.maxCatchUp {
		r.world.Step(r.step)
		r.accum -= r.step
		r.steps++
		n++

		// A handler may have stopped us mid-frame
		if r.stopped {
			return n
		}
	}
	if n == r.maxCatchUp && r.accum >= r.step {
		r.accum = 0
	}
	return n
}

// Stop halts the runner; later Advance calls do nothing
func (r *Runner) Stop() {
	r.stopped = true
	r.accum = 0
}

// Stopped reports whether Stop was called
func (r *Runner) Stopped() bool {
	return r.stopped
}
