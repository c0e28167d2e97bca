package grid

import "iter"

// All returns a lazy row-major traversal of every cell in reading
// order: row 0 left to right, then row 1, and so on. The sequence is
// finite and restartable — every range over it starts a fresh scan from
// (0,0). Yielded values are copies; use At for in-place access.
//
// An empty grid yields nothing.
// Complexity: O(W×H) per full traversal, O(1) memory.
func (g *Grid[T]) All() iter.Seq2[Location, T] {
	return func(yield func(Location, T) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Location{X: x, Y: y}, g.cells[y][x]) {
					return
				}
			}
		}
	}
}

// Locations returns a lazy sequence of every in-bounds Location in
// reading order, without touching cell values. Handy when only the
// coordinates matter.
// Complexity: O(W×H) per full traversal, O(1) memory.
func (g *Grid[T]) Locations() iter.Seq[Location] {
	return func(yield func(Location) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Location{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
