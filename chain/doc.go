// SPDX-License-Identifier: MIT

// Package chain defines primitive basis elements of a chain complex and
// their simplicial implementation.
//
// A BasisElement knows its dimension, its ordered codimension-1 faces and
// the signed coefficients pairing it with those faces. Simplex implements
// the contract for cells of a simplicial complex identified by a sorted
// list of integer vertex labels:
//
//	[0 1 2]  ─∂→  +[1 2] −[0 2] +[0 1]
//
// Boundary coefficients come from a coefficient.Cache: the process-wide
// coefficient.Default() or one injected via BoundaryCoefficientsFrom.
//
// BuildBoundaryMatrix lays the boundaries of a list of cells out against a
// list of faces as an integer matrix, the input of an external reducer.
// This package performs no reduction.
//
// Errors:
//
//	ErrUnknownFace       - a boundary face is absent from the face list.
//	ErrDimensionMismatch - cells, or faces, do not share one dimension.
//	ErrDuplicateElement  - the same key appears twice among faces or cells.
//	ErrOutOfRange        - matrix index outside its bounds.
//	ErrEmptyMatrix       - gonum export of a matrix with a zero dimension.
package chain
