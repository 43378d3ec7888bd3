package ui

import (
	"errors"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pinball-lottery/game"
	"pinball-lottery/physics"
)

const (
	// maxFrameDelta clamps host time fed to the controller after a stall
	maxFrameDelta = 100 * time.Millisecond

	stallCaptureDuration = 5 * time.Second
)

// Game is the ebiten shell around a Controller
type Game struct {
	config   game.Config
	ctrl     *game.Controller
	input    *TextInput
	renderer *Renderer
	camera   *Camera

	status    string
	statusErr bool

	// Last update time for delta time calculation
	lastUpdateTime time.Time

	// Performance profiling on frame stalls
	profiler *game.Profiler
}

// NewGame creates a new game window state
func NewGame(config game.Config, engine physics.Engine, opts game.Options) *Game {
	camera := NewCamera(float64(config.PanelWidth), 0)
	return &Game{
		config:   config,
		ctrl:     game.NewController(config, engine, opts),
		input:    NewTextInput(),
		renderer: NewRenderer(config, camera),
		camera:   camera,
		status:   "Waiting for names",
	}
}

// Controller returns the underlying controller
func (g *Game) Controller() *game.Controller {
	return g.ctrl
}

// SetNames pre-fills the entrant box
func (g *Game) SetNames(raw string) {
	g.input.SetText(raw)
}

// Update handles input and advances the simulation
func (g *Game) Update() error {
	now := time.Now()
	delta := now.Sub(g.lastUpdateTime)
	if !g.lastUpdateTime.IsZero() && delta > maxFrameDelta {
		g.onStall(delta)
	}
	if g.lastUpdateTime.IsZero() || delta > maxFrameDelta {
		delta = g.config.StepDuration()
	}
	g.lastUpdateTime = now

	// Handle debug key presses (F1 overlay, F2 wireframe bodies)
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowOverlay = !debugState.ShowOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debugState := GetDebugState()
		debugState.ShowBodies = !debugState.ShowBodies
	}

	g.input.SetEnabled(g.ctrl.State() != game.StatePlaying)
	submit := g.input.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(g.renderer.Layout().Button) {
			submit = true
		}
	}
	if submit {
		g.start()
	}

	g.ctrl.Advance(delta)
	g.refreshStatus()
	return nil
}

// SetProfiler enables profile capture when a frame stalls
func (g *Game) SetProfiler(p *game.Profiler) {
	g.profiler = p
}

func (g *Game) onStall(delta time.Duration) {
	if g.profiler == nil || g.ctrl.State() != game.StatePlaying {
		return
	}
	err := g.profiler.Capture("stall", stallCaptureDuration, func(err error) {
		if err != nil {
			log.Printf("Stall profile failed: %v", err)
		}
	})
	if err == nil {
		log.Printf("Frame stalled for %v, capturing profile", delta)
	}
}

func (g *Game) start() {
	if g.ctrl.State() == game.StatePlaying {
		return
	}
	err := g.ctrl.Start(g.input.Text())
	switch {
	case err == nil:
		g.setStatus("Rolling...", false)
	case errors.Is(err, game.ErrEmptyEntrantList):
		g.setStatus("Enter at least one name", true)
	case errors.Is(err, game.ErrEngineNotReady):
		g.setStatus("Physics engine not ready", true)
	default:
		g.setStatus("Start failed: "+err.Error(), true)
	}
}

func (g *Game) refreshStatus() {
	if outcome, ok := g.ctrl.Outcome(); ok {
		g.setStatus(outcome.String(), false)
	}
}

func (g *Game) setStatus(s string, isErr bool) {
	g.status = s
	g.statusErr = isErr
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, Frame{
		Controller: g.ctrl,
		Input:      g.input,
		Status:     g.status,
		StatusErr:  g.statusErr,
		Debug:      GetDebugState(),
	})
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Close releases the physics world
func (g *Game) Close() {
	g.ctrl.Close()
}
