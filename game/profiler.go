package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// ErrProfilerBusy is returned while a capture is running or cooling down
var ErrProfilerBusy = errors.New("game: profiler busy")

// Profiler writes CPU profiles and execution traces into a directory.
// Only one capture runs at a time.
type Profiler struct {
	mu          sync.Mutex
	isProfiling bool
	lastCapture time.Time
	cooldown    time.Duration
	dir         string
	clock       Clock
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, cooldown time.Duration) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("game: create profile dir: %w", err)
	}
	return &Profiler{dir: dir, cooldown: cooldown, clock: SystemClock{}}, nil
}

// Start begins a CPU profile and a trace named after reason. The returned
// stop function finishes both and reports the first error.
func (p *Profiler) Start(reason string) (stop func() error, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	if p.isProfiling || (!p.lastCapture.IsZero() && now.Sub(p.lastCapture) < p.cooldown) {
		return nil, ErrProfilerBusy
	}

	base := filepath.Join(p.dir, fmt.Sprintf("%s-%s", reason, now.Format("20060102-150405")))
	cpuFile, err := os.Create(base + ".cpu.pprof")
	if err != nil {
		return nil, fmt.Errorf("game: create cpu profile: %w", err)
	}
	traceFile, err := os.Create(base + ".trace")
	if err != nil {
		cpuFile.Close()
		return nil, fmt.Errorf("game: create trace: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		traceFile.Close()
		return nil, fmt.Errorf("game: start cpu profile: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		traceFile.Close()
		return nil, fmt.Errorf("game: start trace: %w", err)
	}

	p.isProfiling = true
	p.lastCapture = now

	var once sync.Once
	var stopErr error
	return func() error {
		once.Do(func() {
			trace.Stop()
			pprof.StopCPUProfile()
			stopErr = errors.Join(traceFile.Close(), cpuFile.Close())

			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		})
		return stopErr
	}, nil
}

// Capture profiles for duration in the background. Stalls trigger it from
// the frame loop, so it never blocks.
func (p *Profiler) Capture(reason string, duration time.Duration, done func(error)) error {
	stop, err := p.Start(reason)
	if err != nil {
		return err
	}
	go func() {
		time.Sleep(duration)
		err := stop()
		if done != nil {
			done(err)
		}
	}()
	return nil
}

// IsProfiling returns whether a capture is running
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
