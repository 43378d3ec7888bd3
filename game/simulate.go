package game

import (
	"context"
	"fmt"
	"time"

	"pinball-lottery/physics"
)

// SimulateOptions configures a headless run
type SimulateOptions struct {
	// Engine defaults to physics.ChipmunkEngine
	Engine physics.Engine

	// Random defaults to a time-seeded source
	Random Random

	// MaxDuration bounds simulated time; zero means no bound
	MaxDuration time.Duration

	// Listener receives decorative triggers
	Listener Feedback

	// Progress, when set, is called every ProgressEvery simulated time
	Progress      func(elapsed time.Duration, alive []string)
	ProgressEvery time.Duration
}

// SimulateResult summarizes a headless run
type SimulateResult struct {
	Outcome  Outcome
	Finished bool
	Steps    uint64
	Elapsed  time.Duration
	Resolver ResolverStats
}

// Simulate runs a game without graphics as fast as possible, stepping a
// manual clock in lockstep with physics. It stops when the game finishes,
// when MaxDuration of simulated time has passed, or when ctx is done.
func Simulate(ctx context.Context, cfg Config, raw string, opts SimulateOptions) (SimulateResult, error) {
	if opts.Engine == nil {
		opts.Engine = physics.ChipmunkEngine{}
	}
	clock := NewManualClock(time.Unix(0, 0))
	ctrl := NewController(cfg, opts.Engine, Options{
		Clock:    clock,
		Random:   opts.Random,
		Listener: opts.Listener,
	})
	defer ctrl.Close()

	if err := ctrl.Start(raw); err != nil {
		return SimulateResult{}, err
	}

	step := cfg.StepDuration()
	var elapsed, sinceProgress time.Duration
	for ctrl.State() == StatePlaying {
		if opts.MaxDuration > 0 && elapsed >= opts.MaxDuration {
			break
		}
		// Poll ctx once per simulated second
		if ctrl.Steps()%uint64(max(1, cfg.StepRate)) == 0 {
			if err := ctx.Err(); err != nil {
				return summarize(ctrl, elapsed), fmt.Errorf("game: simulation interrupted: %w", err)
			}
		}

		clock.Advance(step)
		ctrl.Advance(step)
		elapsed += step

		if opts.Progress != nil && opts.ProgressEvery > 0 {
			sinceProgress += step
			if sinceProgress >= opts.ProgressEvery {
				sinceProgress = 0
				opts.Progress(elapsed, ctrl.Debug().Alive)
			}
		}
	}

	return summarize(ctrl, elapsed), nil
}

func summarize(ctrl *Controller, elapsed time.Duration) SimulateResult {
	outcome, finished := ctrl.Outcome()
	return SimulateResult{
		Outcome:  outcome,
		Finished: finished,
		Steps:    ctrl.Steps(),
		Elapsed:  elapsed,
		Resolver: ctrl.Debug().Resolver,
	}
}
