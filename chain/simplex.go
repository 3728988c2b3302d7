// SPDX-License-Identifier: MIT

package chain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/persistence/coefficient"
)

// NewSimplex returns the simplex on the given vertices, sorted ascending.
// The argument slice is copied, never retained.
// Complexity: O(n log n).
func NewSimplex(vertices ...int) Simplex {
	vs := make([]int, len(vertices))
	copy(vs, vertices)
	sort.Ints(vs)

	return Simplex{vertices: vs}
}

// FromRange returns the simplex on vertices lo, lo+1, …, hi-1.
// An empty range (hi <= lo) yields the empty simplex.
func FromRange(lo, hi int) Simplex {
	if hi <= lo {
		return Simplex{vertices: []int{}}
	}
	vs := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		vs = append(vs, v)
	}

	return Simplex{vertices: vs}
}

// Vertices returns a copy of the sorted vertex ids.
func (s Simplex) Vertices() []int {
	out := make([]int, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// Len returns the vertex count.
func (s Simplex) Len() int { return len(s.vertices) }

// Dimension returns vertex count − 1; the empty simplex has dimension -1.
func (s Simplex) Dimension() int { return len(s.vertices) - 1 }

// BoundaryArray returns the faces obtained by deleting the vertex at each
// position 0..n-1, in position order. A single vertex has one face, the
// empty simplex. The empty simplex has no faces (empty, non-nil result).
// Complexity: O(n²).
func (s Simplex) BoundaryArray() []Simplex {
	n := len(s.vertices)
	if n == 1 {
		return []Simplex{{vertices: []int{}}}
	}

	faces := make([]Simplex, n)
	for i := 0; i < n; i++ {
		faces[i] = Simplex{vertices: RemoveIndex(s.vertices, i)}
	}

	return faces
}

// BoundaryCoefficients returns [+1, −1, …] aligned with BoundaryArray,
// served by coefficient.Default().
func (s Simplex) BoundaryCoefficients() []int {
	return s.BoundaryCoefficientsFrom(coefficient.Default())
}

// BoundaryCoefficientsFrom is BoundaryCoefficients with an injected cache.
// The length equals the face count: 1 for a single vertex (its one face is
// the empty simplex), the vertex count otherwise, 0 for the empty simplex.
func (s Simplex) BoundaryCoefficientsFrom(c *coefficient.Cache) []int {
	return c.BoundaryCoefficients(len(s.vertices))
}

// Equal reports whether s and o have the same vertex sequence.
func (s Simplex) Equal(o Simplex) bool {
	if len(s.vertices) != len(o.vertices) {
		return false
	}
	for i, v := range s.vertices {
		if o.vertices[i] != v {
			return false
		}
	}

	return true
}

// Key returns a stable string key, e.g. "0,1,2"; the empty simplex maps to "".
func (s Simplex) Key() string {
	var sb strings.Builder
	for i, v := range s.vertices {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// String renders the vertices as "[0 1 2]".
func (s Simplex) String() string {
	return "[" + strings.ReplaceAll(s.Key(), ",", " ") + "]"
}

// RemoveIndex returns a new slice equal to arr without the element at index.
// Panics if index is outside [0, len(arr)).
func RemoveIndex(arr []int, index int) []int {
	if index < 0 || index >= len(arr) {
		panic(panicRemoveIndex)
	}
	out := make([]int, 0, len(arr)-1)
	out = append(out, arr[:index]...)

	return append(out, arr[index+1:]...)
}
