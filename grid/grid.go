// Package grid implements the dense rectangular Grid container.
// It supports:
//
//   - Construction from dimensions (New) or from existing rows (FromRows)
//   - O(1) cell access by Location (Get, At, Set)
//   - Deep cloning and structural equality
//
// A Grid never resizes after construction, so pointers returned by At
// stay valid for the grid's lifetime.
package grid

// Grid is a dense width×height matrix of T stored row-major.
// Every cell exists and is initialized from the moment of construction;
// there is no sparse or missing-cell state. The zero Grid is a valid
// empty (0×0) grid.
//
// The grid owns its cells exclusively: FromRows and Clone deep-copy,
// and accessors hand out copies (Get) or pointers into storage (At),
// never shared backing slices.
type Grid[T any] struct {
	cells  [][]T
	width  int
	height int
}

// New constructs a width×height grid with every cell set to T's zero
// value. Zero width or height is legal and yields an empty grid whose
// iteration terminates immediately. Negative dimensions are a
// precondition violation and panic.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic("grid: negative dimension")
	}
	cells := make([][]T, height)
	for y := range cells {
		cells[y] = make([]T, width)
	}

	return &Grid[T]{cells: cells, width: width, height: height}
}

// FromRows builds a grid from a 2D slice, deep-copying the input so
// later mutation of rows cannot alias the grid.
// Returns ErrNonRectangular if any row length differs from the first.
// An empty input yields an empty 0×0 grid.
// Complexity: O(W×H) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0), nil
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := New[T](w, len(rows))
	for y, row := range rows {
		copy(g.cells[y], row)
	}

	return g, nil
}

// Width returns the constructed grid width.
// Complexity: O(1).
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the constructed grid height.
// Complexity: O(1).
func (g *Grid[T]) Height() int {
	return g.height
}

// InBounds reports whether l lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(l Location) bool {
	return l.X >= 0 && l.X < g.width && l.Y >= 0 && l.Y < g.height
}

// Get returns a copy of the cell at l.
// l must be in bounds; an out-of-range Location panics.
// Complexity: O(1).
func (g *Grid[T]) Get(l Location) T {
	return g.cells[l.Y][l.X]
}

// At returns a pointer to the cell at l for in-place mutation.
// The pointer stays valid for the grid's lifetime, since a Grid never
// resizes. l must be in bounds; an out-of-range Location panics.
// Complexity: O(1).
func (g *Grid[T]) At(l Location) *T {
	return &g.cells[l.Y][l.X]
}

// Set overwrites the cell at l with v.
// l must be in bounds; an out-of-range Location panics.
// Complexity: O(1).
func (g *Grid[T]) Set(l Location, v T) {
	g.cells[l.Y][l.X] = v
}

// Clone returns a deep copy of the grid: same dimensions, every cell
// copied, no shared backing storage. Cell values themselves are copied
// by assignment, so pointer-typed T still aliases.
// Complexity: O(W×H) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	c := New[T](g.width, g.height)
	for y, row := range g.cells {
		copy(c.cells[y], row)
	}

	return c
}

// Equal reports whether a and b have identical dimensions and cell
// contents. Package-level rather than a method because it needs T to be
// comparable, a tighter bound than Grid's own.
// Complexity: O(W×H).
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for y := range a.cells {
		for x := range a.cells[y] {
			if a.cells[y][x] != b.cells[y][x] {
				return false
			}
		}
	}

	return true
}
