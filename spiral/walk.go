package spiral

import (
	"fmt"

	"github.com/katalvlaran/spiral/grid"
)

// Walk collects the spiral order of cells into a slice.
// If the walk stops early (context or OnVisit error) the values gathered so
// far are returned together with that error.
func Walk[V any](cells [][]V, opts ...Option) ([]V, error) {
	t, err := New(cells, opts...)
	if err != nil {
		return nil, err
	}
	seq, err := t.Traverse()
	if err != nil {
		return nil, err
	}

	out := make([]V, 0, len(cells)*len(cells[0]))
	for v := range seq {
		out = append(out, v)
	}

	return out, t.Err()
}

// FromGrid prepares a Traverser over a validated grid.Grid.
func FromGrid[V any](g *grid.Grid[V], opts ...Option) (*Traverser[V], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidInput)
	}

	return New(g.Cells(), opts...)
}

// Order returns the spiral visiting order of a rows×cols grid as positions.
func Order(rows, cols int) ([]grid.Position, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidInput, rows, cols)
	}
	cells := make([][]struct{}, rows)
	for r := range cells {
		cells[r] = make([]struct{}, cols)
	}
	t, err := New(cells)
	if err != nil {
		return nil, err
	}
	all, err := t.All()
	if err != nil {
		return nil, err
	}

	out := make([]grid.Position, 0, rows*cols)
	for p := range all {
		out = append(out, p)
	}

	return out, nil
}
