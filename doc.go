// Package gridpath is a step-wise path discovery engine for uniform-cost
// 4-connected grids, with three interchangeable search strategies behind
// one uniform contract.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• grid/      — Coord and immutable wall-matrix primitives + '.'/'#' parsing
//		• ringqueue/ — generic growable circular FIFO (the BFS frontier)
//		• minheap/   — generic comparator-ordered binary min-heap (the A* frontier)
//		• search/    — DepthFirst, BreadthFirst and AStar strategies, the
//		               candidate Source contract, and the step-wise Driver
//
// ✨ Why choose gridpath?
//
//   - Step-by-step execution — one expansion per Step call, so a renderer can
//     animate the frontier at its own cadence
//   - Deterministic traversal — fixed up/down/left/right expansion order
//   - Hooks (OnVisit, OnCandidate) for custom observation logic
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example, breadth-first from S to T:
//
//	S . # . .
//	. . # . .
//	. . . . T
//
// Build the grid with grid.Parse, feed start and target to search.NewDriver,
// and call Step until Solved or Failed; Path returns the start→target route.
//
// See each subpackage's doc.go for contracts, complexity, and errors.
package gridpath
