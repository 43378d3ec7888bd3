package game

import (
	"math"

	"pinball-lottery/physics"
)

// Grid is a uniform occupancy grid used while laying out the arena.
// With the cell size equal to the query radius, every point within that
// radius of a query lies in the 3x3 block around the query's cell.
type Grid struct {
	// Preallocated 2D grid of cells
	Cells [][]*Cell

	CellSize float64
	MinX     float64
	MinY     float64

	countX int
	countY int
}

// NewGrid creates a grid covering width x height from (minX, minY)
func NewGrid(minX, minY, width, height, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	countX := max(1, int(math.Ceil(width/cellSize)))
	countY := max(1, int(math.Ceil(height/cellSize)))

	cells := make([][]*Cell, countX)
	for x := 0; x < countX; x++ {
		cells[x] = make([]*Cell, countY)
		for y := 0; y < countY; y++ {
			cells[x][y] = NewCell(2)
		}
	}

	return &Grid{
		Cells:    cells,
		CellSize: cellSize,
		MinX:     minX,
		MinY:     minY,
		countX:   countX,
		countY:   countY,
	}
}

// WorldToCell converts arena coordinates to cell coordinates
func (g *Grid) WorldToCell(x, y float64) (int, int) {
	cellX := int(math.Floor((x - g.MinX) / g.CellSize))
	cellY := int(math.Floor((y - g.MinY) / g.CellSize))

	// Clamp to valid cell range
	cellX = max(0, min(cellX, g.countX-1))
	cellY = max(0, min(cellY, g.countY-1))

	return cellX, cellY
}

// GetCell returns the cell at the given cell coordinates
func (g *Grid) GetCell(cellX, cellY int) *Cell {
	if cellX < 0 || cellX >= g.countX || cellY < 0 || cellY >= g.countY {
		return nil
	}
	return g.Cells[cellX][cellY]
}

// Insert registers a point in its cell
func (g *Grid) Insert(p physics.Vec) {
	cx, cy := g.WorldToCell(p.X, p.Y)
	g.Cells[cx][cy].AddPoint(p)
}

// Neighborhood returns the 3x3 block of cells around p
func (g *Grid) Neighborhood(p physics.Vec) []*Cell {
	cells := make([]*Cell, 0, 9)
	centerX, centerY := g.WorldToCell(p.X, p.Y)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if cell := g.GetCell(centerX+dx, centerY+dy); cell != nil {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// AnyWithin reports whether a registered point lies strictly closer than
// radius to p. Radius must not exceed the cell size.
func (g *Grid) AnyWithin(p physics.Vec, radius float64) bool {
	for _, cell := range g.Neighborhood(p) {
		for _, q := range cell.GetPoints() {
			if q.Dist(p) < radius {
				return true
			}
		}
	}
	return false
}

