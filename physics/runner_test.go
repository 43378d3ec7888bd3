package physics_test

import (
	"testing"
	"time"

	"pinball-lottery/physics"
	"pinball-lottery/physics/physicstest"
)

const step = time.Second / 120

func TestRunnerStepsWholeIntervals(t *testing.T) {
	w := physicstest.NewWorld(physics.WorldOptions{})
	r := physics.NewRunner(w, step)

	if n := r.Advance(step / 2); n != 0 {
		t.Fatalf("half a step ran %d steps", n)
	}
	if n := r.Advance(step - step/2); n != 1 {
		t.Fatalf("accumulated step ran %d steps, want 1", n)
	}
	if n := r.Advance(3 * step); n != 3 {
		t.Errorf("three steps ran %d", n)
	}
	if w.Steps() != 4 || r.Steps() != 4 {
		t.Errorf("world steps = %d, runner steps = %d, want 4", w.Steps(), r.Steps())
	}
}

func TestRunnerBoundsCatchUp(t *testing.T) {
	w := physicstest.NewWorld(physics.WorldOptions{})
	r := physics.NewRunner(w, step)

	n := r.Advance(5 * time.Second)
	if n != physics.DefaultMaxCatchUp {
		t.Fatalf("stall ran %d steps, want %d", n, physics.DefaultMaxCatchUp)
	}
	// Leftover stall time is dropped
	if n := r.Advance(step); n != 1 {
		t.Errorf("next frame ran %d steps, want 1", n)
	}
}

func TestRunnerStopFromHandler(t *testing.T) {
	w := physicstest.NewWorld(physics.WorldOptions{})
	r := physics.NewRunner(w, step)

	w.OnAfterUpdate(func() {
		if w.Steps() == 2 {
			r.Stop()
		}
	})

	if n := r.Advance(6 * step); n != 2 {
		t.Errorf("ran %d steps, want 2", n)
	}
	if !r.Stopped() {
		t.Fatal("runner not stopped")
	}
	if n := r.Advance(time.Second); n != 0 {
		t.Errorf("stopped runner ran %d steps", n)
	}
}

func TestRunnerIgnoresNonPositiveElapsed(t *testing.T) {
	w := physicstest.NewWorld(physics.WorldOptions{})
	r := physics.NewRunner(w, step)

	r.Advance(0)
	r.Advance(-time.Second)
	if w.Steps() != 0 {
		t.Errorf("world stepped %d times", w.Steps())
	}
}
