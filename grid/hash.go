package grid

import "github.com/mitchellh/hashstructure/v2"

// gridView exposes a grid's content to hashstructure, which cannot
// reflect over unexported fields.
type gridView[T any] struct {
	Width  int
	Height int
	Cells  [][]T
}

// Hash returns a structural content hash of the grid: equal grids hash
// equal, and changing any cell or dimension changes the result with
// high probability. Useful for memoizing visited board states.
// Returns an error only if T contains a value hashstructure cannot
// walk (e.g. a function).
// Complexity: O(W×H).
func (g *Grid[T]) Hash() (uint64, error) {
	view := gridView[T]{Width: g.width, Height: g.height, Cells: g.cells}

	return hashstructure.Hash(view, hashstructure.FormatV2, nil)
}
