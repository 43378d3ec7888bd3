package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProfilerWritesProfileAndTrace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p, err := NewProfiler(dir, 0)
	if err != nil {
		t.Fatal(err)
	}

	stop, err := p.Start("sim")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsProfiling() {
		t.Error("not profiling after Start")
	}
	if _, err := p.Start("again"); !errors.Is(err, ErrProfilerBusy) {
		t.Errorf("second Start = %v, want ErrProfilerBusy", err)
	}
	if err := stop(); err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Errorf("second stop = %v", err)
	}
	if p.IsProfiling() {
		t.Error("still profiling after stop")
	}

	for _, pattern := range []string{"sim-*.cpu.pprof", "sim-*.trace"} {
		matches, _ := filepath.Glob(filepath.Join(dir, pattern))
		if len(matches) != 1 {
			t.Errorf("%s: %d files", pattern, len(matches))
			continue
		}
		if info, err := os.Stat(matches[0]); err != nil || info.Size() == 0 {
			t.Errorf("%s empty: %v", matches[0], err)
		}
	}
}

func TestProfilerCooldown(t *testing.T) {
	p, err := NewProfiler(t.TempDir(), 10*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	clock := NewManualClock(epoch)
	p.clock = clock

	stop, err := p.Start("stall")
	if err != nil {
		t.Fatal(err)
	}
	stop()

	clock.Advance(9 * time.Second)
	if _, err := p.Start("stall"); !errors.Is(err, ErrProfilerBusy) {
		t.Fatalf("Start inside cooldown = %v", err)
	}
	clock.Advance(time.Second)
	stop, err = p.Start("stall")
	if err != nil {
		t.Fatalf("Start after cooldown = %v", err)
	}
	stop()
}
