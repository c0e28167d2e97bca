package grid

// appendNeighbors probes each offset from l and appends the in-bounds
// cells to buf in probe order.
func (g *Grid[T]) appendNeighbors(buf []Cell[T], l Location, offsets [4][2]int) []Cell[T] {
	for _, d := range offsets {
		n := Location{X: l.X + d[0], Y: l.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		buf = append(buf, Cell[T]{Loc: n, Value: g.cells[n.Y][n.X]})
	}

	return buf
}

// Neighbors returns the orthogonal neighbors of l that lie inside the
// grid, probed east, west, south, north — (+1,0), (-1,0), (0,+1),
// (0,-1). Out-of-bounds candidates are dropped silently, never an
// error, so edge and corner cells simply return fewer results. l itself
// need not be in bounds.
// Complexity: O(1), at most 4 probes.
func (g *Grid[T]) Neighbors(l Location) []Cell[T] {
	return g.appendNeighbors(make([]Cell[T], 0, 4), l, orthoOffsets)
}

// NeighborsAll returns the orthogonal neighbors of l followed by the
// in-bounds diagonal ones, probed (+1,+1), (+1,-1), (-1,+1), (-1,-1)
// after the orthogonal four. Up to eight results, same clipping rule as
// Neighbors.
// Complexity: O(1), at most 8 probes.
func (g *Grid[T]) NeighborsAll(l Location) []Cell[T] {
	buf := g.appendNeighbors(make([]Cell[T], 0, 8), l, orthoOffsets)

	return g.appendNeighbors(buf, l, diagOffsets)
}
