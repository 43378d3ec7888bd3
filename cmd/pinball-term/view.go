package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"pinball-lottery/game"
	"pinball-lottery/physics"
)

// Glyphs per zone kind
var zoneGlyphs = map[game.ZoneKind]rune{
	game.ZoneWall:            '#',
	game.ZoneObstacle:        'o',
	game.ZoneAccelerator:     '>',
	game.ZoneDecelerator:     '<',
	game.ZoneAntiGravityWing: '^',
	game.ZonePortalNode:      '@',
}

const moverGlyph = '●'

// view scales the arena onto the terminal grid, one status row at the bottom
type view struct {
	screen tcell.Screen
	cfg    game.Config

	cols, rows int
}

func newView(screen tcell.Screen, cfg game.Config) *view {
	v := &view{screen: screen, cfg: cfg}
	v.resize()
	return v
}

func (v *view) resize() {
	w, h := v.screen.Size()
	v.cols = max(1, w)
	v.rows = max(1, h-1)
}

// cell maps an arena point to a terminal cell; ok is false outside the arena
func (v *view) cell(p physics.Vec) (x, y int, ok bool) {
	x = int(math.Floor(p.X / v.cfg.ArenaWidth * float64(v.cols)))
	y = int(math.Floor(p.Y / v.cfg.ArenaHeight * float64(v.rows)))
	return x, y, x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

func (v *view) set(p physics.Vec, r rune, style tcell.Style) {
	if x, y, ok := v.cell(p); ok {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// draw renders one frame without showing it
func (v *view) draw(ctrl *game.Controller, status string) {
	v.screen.Clear()

	if ctrl.State() != game.StateIdle {
		for _, z := range ctrl.Arena().Zones {
			v.drawZone(z)
		}
		for _, m := range ctrl.Movers() {
			v.set(m.Position, moverGlyph, styleFor(m.Color))
		}
		for _, b := range ctrl.Bubbles() {
			v.drawText(b.Position, b.Text, tcell.StyleDefault.Foreground(tcell.ColorWhite).Dim(true))
		}
		if outcome, ok := ctrl.Outcome(); ok {
			banner := " " + outcome.String() + " "
			x := (v.cols - runewidth.StringWidth(banner)) / 2
			v.drawRow(max(0, x), v.rows/2, banner, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua).Bold(true))
		}
	}

	v.drawRow(0, v.rows, runewidth.FillRight(runewidth.Truncate(status, v.cols, "…"), v.cols), tcell.StyleDefault.Reverse(true))
}

func (v *view) drawZone(z game.ZoneDesc) {
	style := styleFor(z.Color)
	glyph := zoneGlyphs[z.Kind]

	switch {
	case z.Shape == physics.ShapeCircle:
		v.set(z.Position, glyph, style)

	case z.Angle != 0:
		// Sample along the long axis of a rotated slab
		c := z.Corners()
		a := physics.Vec{X: (c[0].X + c[3].X) / 2, Y: (c[0].Y + c[3].Y) / 2}
		b := physics.Vec{X: (c[1].X + c[2].X) / 2, Y: (c[1].Y + c[2].Y) / 2}
		n := max(2, int(a.Dist(b)/4))
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			v.set(a.Add(b.Sub(a).Scale(t)), glyph, style)
		}

	default:
		x0, y0, _ := v.cell(physics.Vec{X: z.Position.X - z.Width/2, Y: z.Position.Y - z.Height/2})
		x1, y1, _ := v.cell(physics.Vec{X: z.Position.X + z.Width/2, Y: z.Position.Y + z.Height/2})
		for y := max(0, y0); y <= min(y1, v.rows-1); y++ {
			for x := max(0, x0); x <= min(x1, v.cols-1); x++ {
				v.screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}
}

func (v *view) drawText(p physics.Vec, s string, style tcell.Style) {
	x, y, ok := v.cell(p)
	if !ok {
		return
	}
	v.drawRow(max(0, x), y, runewidth.Truncate(s, v.cols-max(0, x), ""), style)
}

// drawRow writes s from column x, advancing by each rune's display width
func (v *view) drawRow(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= v.cols {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
}
