package boundary

import (
	"fmt"

	"github.com/katalvlaran/spiral/grid"
)

// Side names one edge of the tracked rectangle.
type Side int

const (
	// Top is the lowest-index row still in bounds.
	Top Side = iota
	// Right is the highest-index column still in bounds.
	Right
	// Bottom is the highest-index row still in bounds.
	Bottom
	// Left is the lowest-index column still in bounds.
	Left
)

var sideNames = [...]string{Top: "top", Right: "right", Bottom: "bottom", Left: "left"}

func (s Side) String() string {
	if s < Top || s > Left {
		return fmt.Sprintf("Side(%d)", int(s))
	}

	return sideNames[s]
}

// shrinkers maps each side to the method that pulls it inward.
var shrinkers = [...]func(*Tracker){
	Top:    (*Tracker).ShrinkTop,
	Right:  (*Tracker).ShrinkRight,
	Bottom: (*Tracker).ShrinkBottom,
	Left:   (*Tracker).ShrinkLeft,
}

// Tracker holds the inclusive bounds of the unvisited rectangle.
type Tracker struct {
	top, bottom int
	left, right int
}

// New returns a Tracker covering rows [0, maxRow] and columns [0, maxCol].
// For an R×C grid pass (R-1, C-1).
func New(maxRow, maxCol int) *Tracker {
	return &Tracker{top: 0, bottom: maxRow, left: 0, right: maxCol}
}

// IsOutOfBoundary reports whether p lies outside the remaining rectangle.
func (t *Tracker) IsOutOfBoundary(p grid.Position) bool {
	return p.Row < t.top || p.Row > t.bottom || p.Col < t.left || p.Col > t.right
}

// IsDeadEnd reports whether the rectangle has collapsed to exactly one cell.
func (t *Tracker) IsDeadEnd() bool {
	return t.top == t.bottom && t.left == t.right
}

// IsCollapsed reports whether the rectangle is inverted and holds no cells.
func (t *Tracker) IsCollapsed() bool {
	return t.bottom < t.top || t.right < t.left
}

// ShrinkTop moves the top side down by one row.
func (t *Tracker) ShrinkTop() { t.top++ }

// ShrinkBottom moves the bottom side up by one row.
func (t *Tracker) ShrinkBottom() { t.bottom-- }

// ShrinkLeft moves the left side right by one column.
func (t *Tracker) ShrinkLeft() { t.left++ }

// ShrinkRight moves the right side left by one column.
func (t *Tracker) ShrinkRight() { t.right-- }

// Shrink pulls side s inward by one unit. Unknown sides are ignored.
func (t *Tracker) Shrink(s Side) {
	if s < Top || s > Left {
		return
	}
	shrinkers[s](t)
}

// Bounds returns the current inclusive bounds.
func (t *Tracker) Bounds() (top, bottom, left, right int) {
	return t.top, t.bottom, t.left, t.right
}

// String renders the bounds as "rows[top..bottom] cols[left..right]".
func (t *Tracker) String() string {
	return fmt.Sprintf("rows[%d..%d] cols[%d..%d]", t.top, t.bottom, t.left, t.right)
}
