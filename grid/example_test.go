// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: row-major iteration
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_All demonstrates reading-order traversal: row 0 left to
// right, then row 1, and so on.
//
// Complexity: O(W·H), Memory: O(1)
func ExampleGrid_All() {
	g, _ := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	for l, v := range g.All() {
		fmt.Printf("%v=%d ", l, v)
	}
	fmt.Println()

	// Output:
	// (0,0)=1 (1,0)=2 (2,0)=3 (0,1)=4 (1,1)=5 (2,1)=6
}

////////////////////////////////////////////////////////////////////////////////
// Example: neighbor enumeration
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors demonstrates 4-direction adjacency on a 3×3
// grid. The probe order is fixed: east, west, south, north.
// Out-of-bounds candidates are clipped, never an error.
//
// Complexity: O(1)
func ExampleGrid_Neighbors() {
	g := grid.New[int](3, 3)
	g.Set(grid.Location{X: 1, Y: 1}, 5)

	for _, c := range g.Neighbors(grid.Location{X: 1, Y: 1}) {
		fmt.Printf("%v=%d ", c.Loc, c.Value)
	}

	// Output:
	// (2,1)=0 (0,1)=0 (1,2)=0 (1,0)=0
}

// ExampleGrid_NeighborsAll demonstrates 8-direction adjacency:
// orthogonal four first, then the diagonals.
//
// Complexity: O(1)
func ExampleGrid_NeighborsAll() {
	g := grid.New[int](3, 3)

	for _, c := range g.NeighborsAll(grid.Location{X: 1, Y: 1}) {
		fmt.Printf("%v ", c.Loc)
	}
	fmt.Println()

	// Output:
	// (2,1) (0,1) (1,2) (1,0) (2,2) (2,0) (0,2) (0,0)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Manhattan distance & printing
////////////////////////////////////////////////////////////////////////////////

// ExampleLocation_Distance demonstrates Manhattan distance between two
// cells of a puzzle map.
func ExampleLocation_Distance() {
	a := grid.Location{X: 1, Y: 1}
	b := grid.Location{X: 4, Y: 5}
	fmt.Println(a.Distance(b), b.Distance(a))

	// Output:
	// 7 7
}

// ExamplePrint demonstrates the row-by-row display helper: cells with
// no separator, a newline per row, one blank line after the grid.
func ExamplePrint() {
	g, _ := grid.FromRows([][]string{
		{"A", "B"},
		{"C", "D"},
	})
	grid.Print(g)

	// Output:
	// AB
	// CD
}
