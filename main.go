package main

import (
	"flag"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pinball-lottery/game"
	"pinball-lottery/physics"
	"pinball-lottery/ui"
)

func main() {
	// Parse command line flags
	names := flag.String("names", "", "Comma separated entrant names to pre-fill")
	seed := flag.Int64("seed", 0, "Random seed for the arena and launches (0 uses the clock)")
	tps := flag.Int("tps", 0, "Physics steps per second (0 keeps the default)")
	debug := flag.Bool("debug", false, "Start with the debug overlay on")
	profileDir := flag.String("profile-dir", "", "Capture a CPU profile and trace into this directory when a frame stalls")
	flag.Parse()

	config := game.DefaultConfig()
	if *tps > 0 {
		config.StepRate = *tps
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting pinball lottery: seed=%d tps=%d", *seed, config.StepRate)

	g := ui.NewGame(config, physics.ChipmunkEngine{}, game.Options{
		Random: rand.New(rand.NewSource(*seed)),
	})
	defer g.Close()

	if *names != "" {
		g.SetNames(strings.ReplaceAll(*names, ",", "\n"))
	}
	ui.GetDebugState().ShowOverlay = *debug

	if *profileDir != "" {
		profiler, err := game.NewProfiler(*profileDir, 10*time.Second)
		if err != nil {
			log.Fatalf("Failed to set up profiling: %v", err)
		}
		g.SetProfiler(profiler)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Anti-Gravity Pinball Lottery")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.StepRate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
