package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pinball-lottery/game"
	"pinball-lottery/physics"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always runs
func run() int {
	// Parse command line flags
	names := flag.String("names", "", "Comma or newline separated entrant names (or - to read stdin)")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the clock)")
	maxDuration := flag.Duration("max", 10*time.Minute, "Simulated time limit")
	progress := flag.Duration("progress", 0, "Log survivors every interval of simulated time")
	quiet := flag.Bool("quiet", false, "Only print the result")
	profileDir := flag.String("profile", "", "Write a CPU profile and trace of the run into this directory")
	flag.Parse()

	raw := *names
	if raw == "" && flag.NArg() > 0 {
		raw = strings.Join(flag.Args(), ",")
	}
	if raw == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Printf("Failed to read names: %v", err)
			return 1
		}
		raw = string(data)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *quiet {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *profileDir != "" {
		profiler, err := game.NewProfiler(*profileDir, 0)
		if err != nil {
			log.Printf("Failed to set up profiling: %v", err)
			return 1
		}
		stopProfile, err := profiler.Start("sim")
		if err != nil {
			log.Printf("Failed to start profiling: %v", err)
			return 1
		}
		defer func() {
			if err := stopProfile(); err != nil {
				log.Printf("Failed to write profile: %v", err)
			}
		}()
	}

	log.Printf("Simulating with seed=%d", *seed)
	start := time.Now()
	res, err := game.Simulate(ctx, game.DefaultConfig(), raw, game.SimulateOptions{
		Engine:        physics.ChipmunkEngine{},
		Random:        rand.New(rand.NewSource(*seed)),
		MaxDuration:   *maxDuration,
		ProgressEvery: *progress,
		Progress: func(elapsed time.Duration, alive []string) {
			log.Printf("%8s alive: %s", elapsed.Truncate(time.Millisecond), strings.Join(alive, ", "))
		},
	})
	switch {
	case errors.Is(err, game.ErrEmptyEntrantList):
		fmt.Fprintln(os.Stderr, "No entrants given. Use -names \"Alice, Bob\"")
		return 2
	case errors.Is(err, context.Canceled):
		log.Printf("Interrupted after %v simulated", res.Elapsed)
		return 130
	case err != nil:
		log.Printf("Simulation failed: %v", err)
		return 1
	}

	log.Printf("Simulated %v in %d steps (%v wall), %d effects, %d teleports",
		res.Elapsed.Truncate(time.Millisecond), res.Steps, time.Since(start).Truncate(time.Millisecond),
		res.Resolver.Resolved, res.Resolver.Teleports)

	if !res.Finished {
		fmt.Println("NO RESULT: time limit reached")
		return 1
	}
	fmt.Println(res.Outcome)
	return 0
}
