// SPDX-License-Identifier: MIT
// Package chain: boundary-matrix assembly (dense, integer).
//
// Layout:
//   - rows follow the given face order, columns the given cell order;
//   - entry (i, j) is the coefficient of face i in ∂(cell j), 0 elsewhere;
//   - a face hit twice by the same cell (degenerate input) accumulates.
//
// Complexity:
//   - BuildBoundaryMatrix: O(F + C·k) time with k faces per cell, O(F·C) space.
//   - Accessors: O(1) except Column (O(rows)) and String/ToDense (O(rows·cols)).

package chain

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// BoundaryMatrix is the dense matrix of ∂ restricted to Cells → Faces.
type BoundaryMatrix[E any] struct {
	Faces    []E            // row order
	Cells    []E            // column order
	RowIndex map[string]int // face key → row

	r, c int
	data []int // row-major, len == r*c
}

// BuildBoundaryMatrix assembles the boundary matrix of cells against faces.
// key must be injective on each list; it identifies faces returned by
// BoundaryArray with entries of faces.
//
// Stage 1 (Validate): cells share one dimension d, faces share d−1, keys unique.
// Stage 2 (Prepare): index faces by key.
// Stage 3 (Execute): write every cell's coefficients into its column.
//
// Errors: ErrDimensionMismatch, ErrDuplicateElement, ErrUnknownFace (wrapped
// with the offending keys).
func BuildBoundaryMatrix[E BasisElement[E]](faces, cells []E, key func(E) string) (*BoundaryMatrix[E], error) {
	if err := sameDimension(faces); err != nil {
		return nil, fmt.Errorf("BuildBoundaryMatrix: faces: %w", err)
	}
	if err := sameDimension(cells); err != nil {
		return nil, fmt.Errorf("BuildBoundaryMatrix: cells: %w", err)
	}
	if len(faces) > 0 && len(cells) > 0 && faces[0].Dimension() != cells[0].Dimension()-1 {
		return nil, fmt.Errorf("BuildBoundaryMatrix: face dim %d, cell dim %d: %w",
			faces[0].Dimension(), cells[0].Dimension(), ErrDimensionMismatch)
	}

	rowIndex := make(map[string]int, len(faces))
	for i, f := range faces {
		k := key(f)
		if _, dup := rowIndex[k]; dup {
			return nil, fmt.Errorf("BuildBoundaryMatrix: face %q: %w", k, ErrDuplicateElement)
		}
		rowIndex[k] = i
	}
	seen := make(map[string]struct{}, len(cells))
	for _, c := range cells {
		k := key(c)
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("BuildBoundaryMatrix: cell %q: %w", k, ErrDuplicateElement)
		}
		seen[k] = struct{}{}
	}

	bm := &BoundaryMatrix[E]{
		Faces:    append([]E(nil), faces...),
		Cells:    append([]E(nil), cells...),
		RowIndex: rowIndex,
		r:        len(faces),
		c:        len(cells),
		data:     make([]int, len(faces)*len(cells)),
	}

	var row int
	var ok bool
	for j, cell := range cells {
		bnd := cell.BoundaryArray()
		coeffs := cell.BoundaryCoefficients()
		for k, f := range bnd {
			row, ok = rowIndex[key(f)]
			if !ok {
				return nil, fmt.Errorf("BuildBoundaryMatrix: face %q of cell %q: %w", key(f), key(cell), ErrUnknownFace)
			}
			bm.data[row*bm.c+j] += coeffs[k]
		}
	}

	return bm, nil
}

// SimplexBoundaryMatrix is BuildBoundaryMatrix keyed by Simplex.Key.
func SimplexBoundaryMatrix(faces, cells []Simplex) (*BoundaryMatrix[Simplex], error) {
	return BuildBoundaryMatrix(faces, cells, Simplex.Key)
}

// sameDimension reports ErrDimensionMismatch unless all elements share a dimension.
func sameDimension[E BasisElement[E]](elems []E) error {
	for i := 1; i < len(elems); i++ {
		if elems[i].Dimension() != elems[0].Dimension() {
			return fmt.Errorf("index %d has dim %d, want %d: %w",
				i, elems[i].Dimension(), elems[0].Dimension(), ErrDimensionMismatch)
		}
	}

	return nil
}

// Rows returns the number of faces.
func (m *BoundaryMatrix[E]) Rows() int { return m.r }

// Cols returns the number of cells.
func (m *BoundaryMatrix[E]) Cols() int { return m.c }

// At returns entry (row, col) or ErrOutOfRange.
func (m *BoundaryMatrix[E]) At(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("BoundaryMatrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Column returns a copy of column col, the boundary of Cells[col] in face
// coordinates.
func (m *BoundaryMatrix[E]) Column(col int) ([]int, error) {
	if col < 0 || col >= m.c {
		return nil, fmt.Errorf("BoundaryMatrix.Column(%d): %w", col, ErrOutOfRange)
	}
	out := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+col]
	}

	return out, nil
}

// ToDense exports the matrix as a gonum *mat.Dense for downstream linear algebra.
// gonum rejects zero-length shapes, hence ErrEmptyMatrix.
func (m *BoundaryMatrix[E]) ToDense() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("BoundaryMatrix.ToDense: %dx%d: %w", m.r, m.c, ErrEmptyMatrix)
	}
	vals := make([]float64, len(m.data))
	for i, v := range m.data {
		vals[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, vals), nil
}

// String renders one bracketed row per line, e.g. "[1, -1]\n".
func (m *BoundaryMatrix[E]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
