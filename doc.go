// Package gridkit is your in-memory playground for two-dimensional
// grids — the dense, rectangular boards behind puzzle solvers, cellular
// automata and tile-based maps.
//
// 🚀 What is gridkit?
//
//	A small, focused library that brings together:
//		• Location: a value-type (x,y) coordinate with Manhattan distance
//		• Grid[T]: a generic width×height matrix, zero-initialized, never resized
//		• Row-major lazy iteration in reading order
//		• 4- and 8-direction neighbor enumeration with silent edge clipping
//		• Row-by-row rendering, with optional wide-rune column alignment
//
// ✨ Why choose gridkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed traversal and neighbor probe order, reproducible output
//   - Pure Go – no cgo, generics throughout
//   - Honest contracts – in-bounds preconditions panic, never silently corrupt
//
// Everything lives under one subpackage:
//
//	grid/ — Location, Grid[T], iteration, neighbors & printing
//
// Quick ASCII example:
//
//	    (0,0)──(1,0)
//	      │      │
//	    (0,1)──(1,1)
//
//	a 2×2 grid: four cells, reading order left-to-right then top-to-bottom.
//
// Dive into the grid package docs for the full contract, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/gridkit/grid
package gridkit
