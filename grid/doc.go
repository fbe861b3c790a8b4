// Package grid provides the small geometric vocabulary shared by the spiral
// traversal packages: a rectangular 2D grid of values, cell positions, and
// the four orthogonal walking directions.
//
// What:
//
//   - Grid[V] wraps a validated rectangular [][]V with row-major helpers.
//   - Position is a (Row, Col) pair; Move applies one step in a Direction.
//   - Direction cycles Right → Down → Left → Up → Right. Its step delta and
//     turn target come from a lookup table, not from branching.
//
// Why:
//
//   - Traversals (spiral, boustrophedon, perimeter walks) all need the same
//     bounds checks and direction arithmetic.
//   - Keeping the cyclic order as data makes the turn contract explicit.
//
// Complexity:
//
//   - New: O(R×C) time and memory (deep copy).
//   - At, InBounds, Move, Next: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
