package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pinball-lottery/game"
	"pinball-lottery/physics"
)

var (
	colorBackground = color.RGBA{10, 10, 18, 255}
	colorArena      = color.RGBA{0, 0, 0, 255}
	colorPanelText  = color.RGBA{220, 220, 235, 255}
	colorDimText    = color.RGBA{150, 150, 170, 255}
	colorInputBox   = color.RGBA{24, 24, 30, 255}
	colorInputEdge  = color.RGBA{200, 0, 200, 110}
	colorButton     = color.RGBA{220, 40, 140, 255}
	colorButtonOff  = color.RGBA{90, 40, 70, 255}
	colorLabel      = color.RGBA{255, 255, 255, 255}
	colorBubbleBack = color.RGBA{0, 0, 0, 166}
	colorBanner     = color.RGBA{120, 255, 230, 255}
	colorStatus     = color.RGBA{110, 240, 170, 255}
	colorError      = color.RGBA{255, 110, 110, 255}
)

// Glyph metrics of basicfont.Face7x13
const (
	glyphWidth  = 7
	glyphHeight = 13
)

// Camera maps arena coordinates to screen coordinates
type Camera struct {
	X, Y float64 // Screen position of the arena origin
	Zoom float64 // Zoom level
}

// NewCamera creates a camera placing the arena at (x, y)
func NewCamera(x, y float64) *Camera {
	return &Camera{X: x, Y: y, Zoom: 1.0}
}

// WorldToScreen converts arena coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return c.X + wx*c.Zoom, c.Y + wy*c.Zoom
}

// ScreenToWorld converts screen coordinates to arena coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - c.X) / c.Zoom, (sy - c.Y) / c.Zoom
}

// PanelLayout holds the side panel rectangles
type PanelLayout struct {
	Input  image.Rectangle
	Button image.Rectangle
	Status image.Point
}

// NewPanelLayout lays out the side panel for cfg
func NewPanelLayout(cfg game.Config) PanelLayout {
	w := cfg.PanelWidth
	return PanelLayout{
		Input:  image.Rect(16, 90, w-16, 90+13*glyphHeight+16),
		Button: image.Rect(16, 90+13*glyphHeight+32, w-16, 90+13*glyphHeight+80),
		Status: image.Pt(16, 90+13*glyphHeight+110),
	}
}

// Renderer draws the arena and the side panel
type Renderer struct {
	camera *Camera
	layout PanelLayout
	cfg    game.Config
}

// NewRenderer creates a new renderer
func NewRenderer(cfg game.Config, camera *Camera) *Renderer {
	return &Renderer{
		camera: camera,
		layout: NewPanelLayout(cfg),
		cfg:    cfg,
	}
}

// Layout returns the side panel layout
func (r *Renderer) Layout() PanelLayout {
	return r.layout
}

// Frame is everything one Draw call needs
type Frame struct {
	Controller *game.Controller
	Input      *TextInput
	Status     string
	StatusErr  bool
	Debug      *DebugState
}

// Render draws one frame
func (r *Renderer) Render(screen *ebiten.Image, f Frame) {
	screen.Fill(colorBackground)

	ctrl := f.Controller
	ax, ay := r.camera.WorldToScreen(0, 0)
	vector.DrawFilledRect(screen, float32(ax), float32(ay), float32(r.cfg.ArenaWidth*r.camera.Zoom), float32(r.cfg.ArenaHeight*r.camera.Zoom), colorArena, false)

	if ctrl.State() != game.StateIdle {
		r.renderZones(screen, ctrl.Arena(), f.Debug != nil && f.Debug.ShowBodies)
		movers := ctrl.Movers()
		r.renderMovers(screen, movers)
		r.renderParticles(screen, ctrl.Particles())
		r.renderLabels(screen, movers)
		r.renderBubbles(screen, ctrl.Bubbles())
		if outcome, ok := ctrl.Outcome(); ok {
			r.renderBanner(screen, outcome.String())
		}
	}

	r.renderPanel(screen, f)

	if f.Debug != nil && f.Debug.ShowOverlay {
		r.renderDebug(screen, ctrl.Debug())
	}
}

func (r *Renderer) renderZones(screen *ebiten.Image, arena game.Arena, wireframe bool) {
	zoom := float32(r.camera.Zoom)
	for _, z := range arena.Zones {
		sx, sy := r.camera.WorldToScreen(z.Position.X, z.Position.Y)
		x, y := float32(sx), float32(sy)

		switch {
		case z.Shape == physics.ShapeCircle && z.Kind == game.ZoneObstacle && !wireframe:
			vector.DrawFilledCircle(screen, x, y, float32(z.Radius)*zoom, z.Color, true)

		case z.Shape == physics.ShapeCircle:
			vector.StrokeCircle(screen, x, y, float32(z.Radius)*zoom, 3, z.Color, true)

		case z.Angle != 0:
			// Rotated ramps: a thick line along the long axis
			c := z.Corners()
			x0, y0 := r.camera.WorldToScreen((c[0].X+c[3].X)/2, (c[0].Y+c[3].Y)/2)
			x1, y1 := r.camera.WorldToScreen((c[1].X+c[2].X)/2, (c[1].Y+c[2].Y)/2)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(z.Height)*zoom, z.Color, true)

		case z.Kind == game.ZoneWall && !wireframe:
			w, h := float32(z.Width)*zoom, float32(z.Height)*zoom
			vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, z.Color, false)

		default:
			w, h := float32(z.Width)*zoom, float32(z.Height)*zoom
			vector.StrokeRect(screen, x-w/2, y-h/2, w, h, 2, z.Color, false)
		}
	}
}

func (r *Renderer) renderMovers(screen *ebiten.Image, movers []game.MoverView) {
	for _, m := range movers {
		sx, sy := r.camera.WorldToScreen(m.Position.X, m.Position.Y)
		radius := m.Radius * r.camera.Zoom
		if radius < 1 {
			radius = 1
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), m.Color, true)
	}
}

func (r *Renderer) renderParticles(screen *ebiten.Image, particles []game.Particle) {
	for _, p := range particles {
		sx, sy := r.camera.WorldToScreen(p.Pos.X, p.Pos.Y)
		size := float32(p.Size * r.camera.Zoom)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), size, size, fadeColor(p.Color, p.Fade()), false)
	}
}

// renderLabels draws entrant names over movers still inside the arena
func (r *Renderer) renderLabels(screen *ebiten.Image, movers []game.MoverView) {
	for _, m := range movers {
		if m.Position.Y < 0 || m.Position.Y > r.cfg.ArenaHeight {
			continue
		}
		sx, sy := r.camera.WorldToScreen(m.Position.X, m.Position.Y)
		drawCentered(screen, m.Label, int(sx), int(sy)+glyphHeight/3, colorLabel)
	}
}

func (r *Renderer) renderBubbles(screen *ebiten.Image, bubbles []game.Bubble) {
	for _, b := range bubbles {
		sx, sy := r.camera.WorldToScreen(b.Position.X, b.Position.Y)
		w := float32(len([]rune(b.Text))*glyphWidth + 8)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), w, glyphHeight+4, colorBubbleBack, false)
		text.Draw(screen, b.Text, basicfont.Face7x13, int(sx)+4, int(sy)+glyphHeight-1, colorLabel)
	}
}

func (r *Renderer) renderBanner(screen *ebiten.Image, banner string) {
	cx, cy := r.camera.WorldToScreen(r.cfg.ArenaWidth/2, r.cfg.ArenaHeight/2)
	w := float32(len([]rune(banner))*glyphWidth + 24)
	vector.DrawFilledRect(screen, float32(cx)-w/2, float32(cy)-20, w, 36, colorBubbleBack, false)
	drawCentered(screen, banner, int(cx), int(cy)+4, colorBanner)
}

func (r *Renderer) renderPanel(screen *ebiten.Image, f Frame) {
	text.Draw(screen, "ANTI-GRAVITY PINBALL LOTTERY", basicfont.Face7x13, 16, 32, colorPanelText)
	text.Draw(screen, "Names, separated by commas or lines.", basicfont.Face7x13, 16, 56, colorDimText)
	text.Draw(screen, "Ctrl+Enter or GO to start. F1 debug.", basicfont.Face7x13, 16, 72, colorDimText)

	in := r.layout.Input
	vector.DrawFilledRect(screen, float32(in.Min.X), float32(in.Min.Y), float32(in.Dx()), float32(in.Dy()), colorInputBox, false)
	vector.StrokeRect(screen, float32(in.Min.X), float32(in.Min.Y), float32(in.Dx()), float32(in.Dy()), 1, colorInputEdge, false)

	lines := f.Input.Lines()
	visible := (in.Dy() - 8) / glyphHeight
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	textColor := colorPanelText
	if !f.Input.Enabled() {
		textColor = colorDimText
	}
	maxCols := (in.Dx() - 12) / glyphWidth
	for i, line := range lines {
		if rs := []rune(line); len(rs) > maxCols {
			line = string(rs[len(rs)-maxCols:])
		}
		if i == len(lines)-1 && f.Input.Enabled() {
			line += "_"
		}
		text.Draw(screen, line, basicfont.Face7x13, in.Min.X+6, in.Min.Y+4+(i+1)*glyphHeight-2, textColor)
	}

	btn := r.layout.Button
	btnColor := colorButton
	label := "GO!"
	if f.Controller.State() == game.StatePlaying {
		btnColor = colorButtonOff
		label = "PLAYING"
	}
	vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), btnColor, false)
	drawCentered(screen, label, (btn.Min.X+btn.Max.X)/2, (btn.Min.Y+btn.Max.Y)/2+4, colorLabel)

	if f.Status != "" {
		statusColor := colorStatus
		if f.StatusErr {
			statusColor = colorError
		}
		text.Draw(screen, f.Status, basicfont.Face7x13, r.layout.Status.X, r.layout.Status.Y, statusColor)
	}

	if entrants := f.Controller.Entrants(); len(entrants) > 0 && f.Controller.State() != game.StateIdle {
		y := r.layout.Status.Y + 2*glyphHeight
		for _, e := range entrants {
			if y > r.cfg.ScreenHeight-glyphHeight {
				break
			}
			vector.DrawFilledCircle(screen, 22, float32(y-4), 5, e.Color(), true)
			text.Draw(screen, e.Label, basicfont.Face7x13, 34, y, colorPanelText)
			y += glyphHeight + 3
		}
	}
}

func (r *Renderer) renderDebug(screen *ebiten.Image, info game.DebugInfo) {
	lines := []string{
		fmt.Sprintf("state: %s  tick: %d  fps: %.0f", info.State, info.Tick, ebiten.ActualFPS()),
		fmt.Sprintf("movers: %d  alive: %s", info.Movers, strings.Join(info.Alive, ",")),
		fmt.Sprintf("particles: %d/%d  bubbles: %d  crowded pegs: %d", info.Particles, info.ParticleCap, info.Bubbles, info.Crowded),
		fmt.Sprintf("resolved: %d  ignored: %d  dropped: %d", info.Resolver.Resolved, info.Resolver.Ignored, info.Resolver.Dropped),
		fmt.Sprintf("teleports: %d  declined: %d", info.Resolver.Teleports, info.Resolver.Declined),
	}
	ax, _ := r.camera.WorldToScreen(0, 0)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), int(ax)+8, 8)
}

func drawCentered(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	w := len([]rune(s)) * glyphWidth
	text.Draw(screen, s, basicfont.Face7x13, x-w/2, y, clr)
}

// fadeColor scales a colour by f in premultiplied alpha
func fadeColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
