// SPDX-License-Identifier: MIT

// Package barcode stores persistence barcodes: per-dimension multisets of
// intervals, each paired with a generating homology class.
//
// Layers, leaves first:
//
//	Descriptor[I, G]          — dimension → parallel lists of intervals,
//	                            generators and (interval, generator) pairs
//	AnnotatedCollection[T, G] — builds interval.Interval[T] values under
//	                            default closure flags; infinite/dimension filters
//	Collection[T, G]          — same, for callers that do not track generators
//
// The default closure convention is birth-inclusive, death-exclusive:
// [birth, death). Override it with WithLeftClosed / WithRightClosed.
//
// FilterByMaxDimension keeps only INFINITE intervals below the given
// dimension. Finite intervals are always dropped by it, whatever their
// dimension.
//
// Lookups at an unrecorded dimension return an empty slice; that is a
// normal state, not an error. Negative dimensions are programmer errors
// and panic.
//
// None of the types lock internally; a collection shared across
// goroutines needs external synchronization.
package barcode
