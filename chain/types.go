// SPDX-License-Identifier: MIT

package chain

import "errors"

// Sentinel errors for boundary-matrix assembly and access.
var (
	// ErrUnknownFace indicates a cell's boundary face is missing from the face list.
	ErrUnknownFace = errors.New("chain: boundary face not in face list")

	// ErrDimensionMismatch indicates mixed dimensions among cells or faces,
	// or faces whose dimension is not one below the cells'.
	ErrDimensionMismatch = errors.New("chain: dimension mismatch")

	// ErrDuplicateElement indicates two faces (or two cells) share a key.
	ErrDuplicateElement = errors.New("chain: duplicate basis element")

	// ErrOutOfRange indicates a row or column index outside matrix bounds.
	ErrOutOfRange = errors.New("chain: index out of range")

	// ErrEmptyMatrix indicates an export of a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("chain: matrix has zero rows or columns")
)

// BasisElement is a primitive basis element of a chain complex.
//
// E is the concrete element type, so BoundaryArray yields elements of the
// same kind (Simplex → []Simplex).
type BasisElement[E any] interface {
	// Dimension returns the homological dimension of the element.
	Dimension() int

	// BoundaryArray returns the codimension-1 faces in canonical order.
	BoundaryArray() []E

	// BoundaryCoefficients returns the signed coefficients aligned with
	// BoundaryArray.
	BoundaryCoefficients() []int
}

// Simplex is a simplicial cell given by a sorted sequence of vertex ids.
// Duplicated ids are kept; such degenerate simplices are meaningless and
// callers should avoid building them.
type Simplex struct {
	vertices []int // sorted ascending, owned by the Simplex
}

// Compile-time check.
var _ BasisElement[Simplex] = Simplex{}

const panicRemoveIndex = "chain: RemoveIndex index out of range"
