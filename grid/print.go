package grid

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// Fprint writes the grid to w row by row: each cell rendered with %v
// and no separator, a newline after the last column of each row, and
// one trailing blank line after the whole grid.
//
// Printing requires T to render meaningfully under %v; that constraint
// lives here, outside the core accessors, so grids of non-displayable
// types pay nothing for it.
// Complexity: O(W×H).
func Fprint[T any](w io.Writer, g *Grid[T]) error {
	last := g.Width() - 1
	for l, v := range g.All() {
		if _, err := fmt.Fprint(w, v); err != nil {
			return err
		}
		if l.X == last {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

// FprintAligned writes the grid like Fprint, but pads every cell on the
// right to the widest cell's display width, measured with go-runewidth
// so wide (CJK) runes keep columns aligned. When every cell renders at
// the same width the output matches Fprint exactly.
// Complexity: O(W×H), two rendering passes.
func FprintAligned[T any](w io.Writer, g *Grid[T]) error {
	max := 0
	for _, v := range g.All() {
		if n := runewidth.StringWidth(fmt.Sprint(v)); n > max {
			max = n
		}
	}
	last := g.Width() - 1
	for l, v := range g.All() {
		if _, err := io.WriteString(w, runewidth.FillRight(fmt.Sprint(v), max)); err != nil {
			return err
		}
		if l.X == last {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

// Print renders the grid to stdout via Fprint.
func Print[T any](g *Grid[T]) {
	_ = Fprint(os.Stdout, g)
}
