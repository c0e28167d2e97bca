// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridkit.
package grid

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Location is an (x,y) coordinate into a Grid.
// X is the column and grows rightward; Y is the row and grows downward,
// so (0,0) is the top-left cell of any grid it indexes.
//
// Any pair of ints is a valid Location — negative coordinates arise
// transiently during neighbor-offset arithmetic and are clipped by
// bounds checks, never rejected at construction. Location is a plain
// comparable struct: equality is structural and it works as a map key.
type Location struct {
	X, Y int
}

// String renders the location as "(x,y)", e.g. "(3,5)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Distance returns the Manhattan distance between l and other:
// |Δx| + |Δy|. Commutative, and zero exactly when l == other.
// Complexity: O(1).
func (l Location) Distance(other Location) int {
	return absDiff(l.X, other.X) + absDiff(l.Y, other.Y)
}

// absDiff subtracts the smaller operand from the larger, so the
// subtraction cannot wrap when a and b share a sign.
func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Compare orders locations in reading order: by row first, then by
// column within a row. Returns -1 if l sorts before other, +1 if after,
// and 0 on equality, so it plugs straight into slices.SortFunc.
// Note this deviates from field-declaration order on purpose — sorting
// by X first would enumerate columns, not rows.
// Complexity: O(1).
func (l Location) Compare(other Location) int {
	if c := cmp.Compare(l.Y, other.Y); c != 0 {
		return c
	}
	return cmp.Compare(l.X, other.X)
}

// Less reports whether l sorts strictly before other in reading order.
func (l Location) Less(other Location) bool {
	return l.Compare(other) < 0
}

// Cell pairs a Location with the value stored there, so neighbor and
// traversal results keep the coordinate alongside the value.
type Cell[T any] struct {
	Loc   Location
	Value T
}

// Neighbor probe offsets. The order is observable in Neighbors and
// NeighborsAll results and must not change: east, west, south, north,
// then the four diagonals.
var (
	orthoOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagOffsets  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)
