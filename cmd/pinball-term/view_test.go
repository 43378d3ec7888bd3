package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"pinball-lottery/game"
	"pinball-lottery/physics"
	"pinball-lottery/physics/physicstest"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestViewCellMapping(t *testing.T) {
	cfg := game.DefaultConfig()
	v := newView(newSimScreen(t, 48, 25), cfg)

	if x, y, ok := v.cell(physics.Vec{X: 0, Y: 0}); !ok || x != 0 || y != 0 {
		t.Errorf("origin -> %d,%d,%v", x, y, ok)
	}
	if x, y, ok := v.cell(physics.Vec{X: cfg.ArenaWidth - 1, Y: cfg.ArenaHeight - 1}); !ok || x != 47 || y != 23 {
		t.Errorf("far corner -> %d,%d,%v", x, y, ok)
	}
	if _, _, ok := v.cell(physics.Vec{X: 10, Y: cfg.ArenaHeight + 1}); ok {
		t.Error("point below the arena mapped onto the board")
	}
	if _, _, ok := v.cell(physics.Vec{X: -1, Y: 10}); ok {
		t.Error("point left of the arena mapped onto the board")
	}
}

func TestViewDrawsGame(t *testing.T) {
	screen := newSimScreen(t, 48, 25)
	ctrl := game.NewController(game.DefaultConfig(), &physicstest.Engine{Frozen: true}, game.Options{
		Random: rand.New(rand.NewSource(1)),
	})
	defer ctrl.Close()
	if err := ctrl.Start("Solo"); err != nil {
		t.Fatal(err)
	}
	ctrl.Advance(ctrl.Config().StepDuration())

	v := newView(screen, ctrl.Config())
	v.draw(ctrl, "status line")

	if got := rowText(screen, 24, 48); !strings.HasPrefix(got, "status line") {
		t.Errorf("status row = %q", got)
	}
	// Movers spawn at the top centre
	x, y, _ := v.cell(ctrl.Movers()[0].Position)
	if r, _, _, _ := screen.GetContent(x, y); r != moverGlyph {
		t.Errorf("spawn cell = %q, want mover", r)
	}
	if got := rowText(screen, 12, 48); !strings.Contains(got, "Solo WINS!") {
		t.Errorf("banner row = %q", got)
	}
}
