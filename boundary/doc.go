// Package boundary tracks the shrinking rectangle of a spiral walk.
//
// A Tracker holds four inclusive bounds (top, bottom, left, right) that
// describe the part of a grid not yet fully visited. Each side only moves
// inward, one unit per Shrink call, and only after the walker has finished
// that side.
//
// Queries:
//
//   - IsOutOfBoundary(p): p lies outside the remaining rectangle.
//   - IsDeadEnd():        the rectangle is a single cell.
//   - IsCollapsed():      the rectangle is inverted and holds no cells.
//
// Shrinking out of order can invert the rectangle (bottom < top or
// right < left). That is not an error: every position is then out of
// boundary, and walkers treat IsCollapsed as immediate termination.
//
// All operations are O(1) and allocation-free. A Tracker is not safe for
// concurrent mutation; each walk owns its own.
package boundary
