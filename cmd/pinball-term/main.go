package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"pinball-lottery/game"
	"pinball-lottery/physics"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	names := flag.String("names", "", "Comma separated entrant names")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the clock)")
	mute := flag.Bool("mute", false, "Disable sound")
	debugLog := flag.Bool("debug", false, "Write logs to logs/pinball-term.log")
	flag.Parse()

	if logFile := setupLogging(*debugLog); logFile != nil {
		defer logFile.Close()
	}

	raw := *names
	if raw == "" {
		fmt.Fprintln(os.Stderr, "Usage: pinball-term -names \"Alice, Bob, Carol\"")
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "pinball-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sound := newTonePlayer(!*mute)
	defer sound.Close()

	ctrl := game.NewController(game.DefaultConfig(), physics.ChipmunkEngine{}, game.Options{
		Random:   rand.New(rand.NewSource(*seed)),
		Logger:   logger,
		Listener: sound,
	})
	defer ctrl.Close()

	app := &app{
		screen: screen,
		ctrl:   ctrl,
		view:   newView(screen, ctrl.Config()),
		raw:    raw,
	}
	app.start()
	app.run()
	screen.Fini()
}

// app drives one controller from terminal events and a frame ticker
type app struct {
	screen tcell.Screen
	ctrl   *game.Controller
	view   *view
	raw    string
	status string
}

func (a *app) start() {
	err := a.ctrl.Start(a.raw)
	switch {
	case err == nil:
		a.status = "Rolling... r restart  q quit"
	case errors.Is(err, game.ErrEmptyEntrantList):
		a.status = "No names to play with. q quit"
	default:
		a.status = "Start failed: " + err.Error()
	}
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			a.ctrl.Advance(now.Sub(last))
			last = now
			if outcome, ok := a.ctrl.Outcome(); ok {
				a.status = outcome.String() + "  r restart  q quit"
			}
			a.view.draw(a.ctrl, a.status)
			a.screen.Show()
		}
	}
}

// handleEvent returns false when the user asked to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			a.ctrl.Close()
			a.start()
		}

	case *tcell.EventResize:
		a.view.resize()
		a.screen.Sync()
	}
	return true
}
