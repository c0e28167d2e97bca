// Package grid provides a dense, rectangular, row-major container of
// arbitrary cell values, addressed by (x,y) Locations.
//
// What:
//
//   - Location: a value-type (x,y) coordinate with Manhattan distance
//     and reading-order comparison.
//   - Grid[T]: a width×height matrix of T, zero-initialized at
//     construction and never resized, addressed only by Location.
//   - All: lazy, restartable row-major iteration over (Location, value)
//     pairs in reading order.
//   - Neighbors / NeighborsAll: 4- and 8-direction adjacency with
//     out-of-bounds candidates silently clipped, in a fixed probe order.
//   - Fprint / FprintAligned: row-by-row rendering of displayable grids.
//
// Why:
//
//   - Puzzle maps: board state for grid puzzles and cellular automata.
//   - Pathfinding substrate: the neighbor and distance primitives a
//     BFS or Dijkstra consumer needs, without imposing an algorithm.
//   - Deterministic enumeration: reading-order traversal and a fixed
//     neighbor probe order make outputs reproducible and testable.
//
// Complexity:
//
//   - New / FromRows / Clone:     O(W×H) time and memory.
//   - Get / At / Set / InBounds:  O(1).
//   - All:                        O(W×H) per full traversal, O(1) memory.
//   - Neighbors / NeighborsAll:   O(1), at most 4 or 8 probes.
//
// Contract:
//
//   - Get, At and Set require an in-bounds Location; violating that is a
//     precondition fault and panics (index out of range) rather than
//     returning an error. Locations produced by All, Neighbors and
//     NeighborsAll are in-bounds by construction; use InBounds to guard
//     any other source of coordinates.
//
// Errors:
//
//   - ErrNonRectangular: FromRows input rows have differing lengths.
package grid
