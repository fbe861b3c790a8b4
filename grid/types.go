package grid

import "fmt"

// Position identifies a single grid cell by row and column.
// Positions are plain values; every step produces a fresh one.
type Position struct {
	Row, Col int
}

// Add returns the position offset by (dRow, dCol).
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Move returns the position one step away from p in direction d.
// An invalid direction leaves p unchanged.
func (p Position) Move(d Direction) Position {
	dr, dc := d.Delta()
	return p.Add(dr, dc)
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four orthogonal walking directions.
type Direction int

const (
	// Right moves along a row towards higher column indices.
	Right Direction = iota
	// Down moves along a column towards higher row indices.
	Down
	// Left moves along a row towards lower column indices.
	Left
	// Up moves along a column towards lower row indices.
	Up
)

// heading is the per-direction data: step delta, turn target and name.
type heading struct {
	dRow, dCol int
	next       Direction
	name       string
}

// headings is indexed by Direction. The next fields encode the cycle
// Right → Down → Left → Up → Right.
var headings = [...]heading{
	Right: {dRow: 0, dCol: 1, next: Down, name: "right"},
	Down:  {dRow: 1, dCol: 0, next: Left, name: "down"},
	Left:  {dRow: 0, dCol: -1, next: Up, name: "left"},
	Up:    {dRow: -1, dCol: 0, next: Right, name: "up"},
}

// Directions returns the four directions in turn order, starting at Right.
func Directions() []Direction {
	return []Direction{Right, Down, Left, Up}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

// Delta returns the (row, col) offset of a single step in direction d.
// Invalid directions yield (0, 0).
func (d Direction) Delta() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	h := headings[d]

	return h.dRow, h.dCol
}

// Next returns the direction after a clockwise quarter turn.
// Invalid directions are returned unchanged.
func (d Direction) Next() Direction {
	if !d.Valid() {
		return d
	}

	return headings[d].next
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return headings[d].name
}

// Grid is an immutable rectangular grid of values.
// Cells[r][c] holds the value at row r, column c.
type Grid[V any] struct {
	rows, cols int
	cells      [][]V
}
