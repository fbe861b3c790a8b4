package spiral

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spiral/boundary"
	"github.com/katalvlaran/spiral/grid"
)

// Sentinel errors for spiral traversal.
var (
	// ErrInvalidInput is returned when the grid has no rows or no columns.
	ErrInvalidInput = errors.New("spiral: grid must have at least one row and one column")

	// ErrAlreadyTraversed is returned when a Traverser is asked for a second sequence.
	ErrAlreadyTraversed = errors.New("spiral: traverser has already been used")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spiral: invalid option supplied")
)

// Option configures a Traverser via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks that customise a traversal.
type Options struct {
	// Ctx is checked before every visited cell; cancellation ends the walk
	// and is reported by Traverser.Err.
	Ctx context.Context

	// OnVisit is called before each value is yielded, with the cell
	// position and its 0-based visit index. A non-nil error stops the walk.
	OnVisit func(pos grid.Position, step int) error

	// OnTurn is called after each corner, once the boundary has shrunk
	// and the heading has changed from `from` to `to`.
	OnTurn func(from, to grid.Direction, b *boundary.Tracker)

	// Logger receives a debug record per turn. Defaults to a discarding logger.
	Logger *slog.Logger

	// MaxSteps, if > 0, caps the number of yielded values.
	// Zero means no cap.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op hooks
//   - a logger that discards everything
//   - no step cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(grid.Position, int) error { return nil },
		OnTurn:   func(grid.Direction, grid.Direction, *boundary.Tracker) {},
		Logger:   slog.New(slog.DiscardHandler),
		MaxSteps: 0,
	}
}

// WithContext sets a context used to cancel the walk early.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run before each value is yielded;
// returning an error stops the walk.
func WithOnVisit(fn func(pos grid.Position, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnTurn registers a callback run after each corner.
func WithOnTurn(fn func(from, to grid.Direction, b *boundary.Tracker)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTurn = fn
		}
	}
}

// WithLogger sets the logger used for per-turn debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSteps caps the number of yielded values.
//
//	n > 0:  stop after n values
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
