// Package persistence is the representation layer for persistent-homology
// output: barcodes of (possibly infinite) intervals grouped by homological
// dimension, and the simplicial chain-basis elements whose boundaries
// produce them.
//
// 🚀 What is in the box?
//
//	A small, pure-Go core consumed by a persistence pipeline (filtration +
//	boundary-matrix reduction, both outside this module):
//		• Intervals: open/closed/infinite endpoints, persistence ordering
//		• Barcodes: dimension-indexed intervals with generators, filters
//		• Simplices: faces and alternating-sign boundary coefficients
//		• Boundary matrices: ∂ laid out for an external reducer
//
// Under the hood, everything is organized under four subpackages:
//
//	interval/    — Interval[T], twelve named constructors, ordering, rendering
//	barcode/     — Descriptor, AnnotatedCollection, Collection, erased Generator
//	chain/       — BasisElement capability, Simplex, BoundaryMatrix
//	coefficient/ — thread-safe memoized boundary coefficients
//
// Quick ASCII example (a filled triangle):
//
//	      2
//	     / \        ∂[0 1 2] = +[1 2] −[0 2] +[0 1]
//	    0───1
//
// See examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/persistence
package persistence
