// Package spiral walks a rectangular grid in spiral order: right along the
// top row, down the right column, left along the bottom row, up the left
// column, then inward on the remaining rectangle until every cell is seen.
//
// 🚀 How it works
//
//	A Traverser owns a position, a heading and a boundary.Tracker. Each
//	Step looks one cell ahead. If that cell has left the unvisited
//	rectangle, the side just walked is shrunk, the heading turns
//	clockwise, and the step is recomputed. Shrink happens before the turn
//	because the side to retire depends on the heading being left behind.
//
//	    0 → 1 → 2
//	            ↓
//	    3 → 4   5
//	    ↑       ↓
//	    6 ← 7 ← 8      visits 0 1 2 5 8 7 6 3 4
//
// ✨ Key features:
//   - lazy iter.Seq / iter.Seq2 output, exactly R×C values
//   - per-heading behaviour (delta, turn target, side to shrink) as tables
//   - functional options: context cancellation, visit/turn hooks, slog
//     debug logging, step cap
//
// ⚙️ Usage:
//
//	values, err := spiral.Walk([][]int{{0, 1}, {2, 3}})
//	// values == []int{0, 1, 3, 2}
//
//	t, _ := spiral.New(cells, spiral.WithContext(ctx))
//	seq, err := t.Traverse()
//	for v := range seq {
//	    fmt.Println(v)
//	}
//	if err := t.Err(); err != nil { ... }
//
// Errors:
//
//   - ErrInvalidInput:     the grid has zero rows or zero columns.
//   - ErrAlreadyTraversed: Traverse or All was called twice on one Traverser.
//   - ErrOptionViolation:  an Option received an invalid value.
//
// Performance:
//
//   - Time:   O(R×C), one pass.
//   - Memory: O(1) beyond the caller's grid (Walk allocates the result).
//
// Concurrency: a Traverser is single-use and not safe for concurrent use.
// Distinct Traversers share no state and may run in parallel over grids
// that nobody mutates.
package spiral
