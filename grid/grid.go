package grid

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation by the caller is not observed.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New[V any](cells [][]V) (*Grid[V], error) {
	if err := Validate(cells); err != nil {
		return nil, err
	}
	rows, cols := len(cells), len(cells[0])
	// Deep copy to prevent external mutation
	cp := make([][]V, rows)
	for r := 0; r < rows; r++ {
		cp[r] = make([]V, cols)
		copy(cp[r], cells[r])
	}

	return &Grid[V]{rows: rows, cols: cols, cells: cp}, nil
}

// Validate checks that cells is non-empty and rectangular without copying it.
func Validate[V any](cells [][]V) error {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return ErrNonRectangular
		}
	}

	return nil
}

// Rows returns the number of rows.
func (g *Grid[V]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[V]) Cols() int { return g.cols }

// Cells returns the underlying rows. Callers must treat them as read-only.
func (g *Grid[V]) Cells() [][]V { return g.cells }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid[V]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the value stored at p. ok is false when p is out of bounds.
func (g *Grid[V]) At(p Position) (v V, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}

	return g.cells[p.Row][p.Col], true
}
