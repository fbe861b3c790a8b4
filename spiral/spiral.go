package spiral

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/spiral/boundary"
	"github.com/katalvlaran/spiral/grid"
)

// retires maps each heading to the boundary side it uses up.
// Walking right finishes the top row, down finishes the right column,
// left finishes the bottom row, up finishes the left column.
var retires = [...]boundary.Side{
	grid.Right: boundary.Top,
	grid.Down:  boundary.Right,
	grid.Left:  boundary.Bottom,
	grid.Up:    boundary.Left,
}

// Traverser walks one grid in spiral order. It borrows the grid read-only
// and owns its position, heading and boundary. A Traverser produces a single
// sequence; build a new one to walk again.
type Traverser[V any] struct {
	cells      [][]V
	rows, cols int

	dir     grid.Direction
	pos     grid.Position
	tracker *boundary.Tracker

	opts    Options
	started bool
	drained bool
	err     error
}

// New prepares a spiral walk over cells starting at (0,0) heading Right.
// Only options are validated here; grid shape is checked by Traverse and All.
// Rows are assumed to share the length of cells[0].
func New[V any](cells [][]V, opts ...Option) (*Traverser[V], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows, cols := len(cells), 0
	if rows > 0 {
		cols = len(cells[0])
	}

	return &Traverser[V]{
		cells:   cells,
		rows:    rows,
		cols:    cols,
		dir:     grid.Right,
		pos:     grid.Position{},
		tracker: boundary.New(rows-1, cols-1),
		opts:    o,
	}, nil
}

// Direction returns the current heading.
func (t *Traverser[V]) Direction() grid.Direction { return t.dir }

// Position returns the current cell.
func (t *Traverser[V]) Position() grid.Position { return t.pos }

// Boundary returns the tracker of the unvisited rectangle.
func (t *Traverser[V]) Boundary() *boundary.Tracker { return t.tracker }

// Err returns the reason the last walk stopped early: a context error or
// an OnVisit error. It is nil after a complete walk or an early break by
// the consumer.
func (t *Traverser[V]) Err() error { return t.err }

// NextPosition returns the cell one step ahead without moving.
func (t *Traverser[V]) NextPosition() grid.Position {
	return t.pos.Move(t.dir)
}

// Turn advances the heading clockwise: Right → Down → Left → Up → Right.
func (t *Traverser[V]) Turn() {
	t.dir = t.dir.Next()
}

// ShrinkBoundaryForTurn shrinks the side finished by the current heading.
// It must run before Turn.
func (t *Traverser[V]) ShrinkBoundaryForTurn() {
	if !t.dir.Valid() {
		return
	}
	t.tracker.Shrink(retires[t.dir])
}

// Step moves one cell. If the cell ahead is outside the boundary, the
// finished side is shrunk, the heading turns, and the step is recomputed
// from the new heading.
func (t *Traverser[V]) Step() {
	next := t.NextPosition()
	if t.tracker.IsOutOfBoundary(next) {
		from := t.dir
		t.ShrinkBoundaryForTurn()
		t.Turn()
		next = t.NextPosition()
		t.opts.Logger.Debug("spiral: turn",
			"from", from.String(),
			"to", t.dir.String(),
			"at", t.pos.String(),
			"bounds", t.tracker.String())
		t.opts.OnTurn(from, t.dir, t.tracker)
	}
	t.pos = next
}

// Traverse returns the spiral sequence of values. It fails with
// ErrInvalidInput when the grid has no rows or no columns and with
// ErrAlreadyTraversed on a second call. The sequence is lazy and can be
// ranged over once; later ranges yield nothing.
func (t *Traverser[V]) Traverse() (iter.Seq[V], error) {
	all, err := t.All()
	if err != nil {
		return nil, err
	}

	return func(yield func(V) bool) {
		for _, v := range all {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// All is Traverse with the position of every value.
func (t *Traverser[V]) All() (iter.Seq2[grid.Position, V], error) {
	if t.rows == 0 || t.cols == 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidInput, t.rows, t.cols)
	}
	if t.started {
		return nil, ErrAlreadyTraversed
	}
	t.started = true

	return func(yield func(grid.Position, V) bool) {
		if t.drained {
			return
		}
		t.drained = true
		t.walk(yield)
	}, nil
}

// walk yields (0,0), then steps and yields until the boundary is a single
// visited cell. An inverted boundary, or a step that lands outside it,
// ends the walk without yielding.
func (t *Traverser[V]) walk(yield func(grid.Position, V) bool) {
	if !t.visit(0, yield) {
		return
	}
	for n := 1; !t.tracker.IsDeadEnd(); n++ {
		if t.tracker.IsCollapsed() {
			return
		}
		if t.opts.MaxSteps > 0 && n >= t.opts.MaxSteps {
			return
		}
		t.Step()
		if t.tracker.IsOutOfBoundary(t.pos) {
			return
		}
		if !t.visit(n, yield) {
			return
		}
	}
}

// visit runs the per-cell checks and hands the current value to yield.
func (t *Traverser[V]) visit(n int, yield func(grid.Position, V) bool) bool {
	if err := t.opts.Ctx.Err(); err != nil {
		t.err = err
		return false
	}
	if err := t.opts.OnVisit(t.pos, n); err != nil {
		t.err = err
		return false
	}

	return yield(t.pos, t.cells[t.pos.Row][t.pos.Col])
}
