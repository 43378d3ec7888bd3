package game

import "pinball-lottery/physics"

// Cell represents a spatial partition cell containing placed points
type Cell struct {
	// Points in this cell (preallocated slice)
	Points []physics.Vec

	// Current count of points
	Count int
}

// NewCell creates a new cell with preallocated point storage
func NewCell(initialCapacity int) *Cell {
	return &Cell{
		Points: make([]physics.Vec, 0, initialCapacity),
		Count:  0,
	}
}

// AddPoint adds a point to this cell
func (c *Cell) AddPoint(p physics.Vec) {
	if c.Count < len(c.Points) {
		c.Points[c.Count] = p
	} else {
		c.Points = append(c.Points, p)
	}
	c.Count++
}

// GetPoints returns all points in this cell
func (c *Cell) GetPoints() []physics.Vec {
	return c.Points[:c.Count]
}

