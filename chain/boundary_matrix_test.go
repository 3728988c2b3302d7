// SPDX-License-Identifier: MIT

package chain_test

import (
	"testing"

	"github.com/katalvlaran/persistence/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// triangle fixtures: vertices, edges, the 2-cell.
func triangle() (vertices, edges, faces []chain.Simplex) {
	vertices = []chain.Simplex{chain.NewSimplex(0), chain.NewSimplex(1), chain.NewSimplex(2)}
	edges = []chain.Simplex{chain.NewSimplex(0, 1), chain.NewSimplex(0, 2), chain.NewSimplex(1, 2)}
	faces = []chain.Simplex{chain.NewSimplex(0, 1, 2)}

	return
}

// TestSimplexBoundaryMatrix_Edges: ∂1 of a triangle puts −1 at the lower
// vertex and +1 at the upper one.
func TestSimplexBoundaryMatrix_Edges(t *testing.T) {
	t.Parallel()
	vertices, edges, _ := triangle()

	bm, err := chain.SimplexBoundaryMatrix(vertices, edges)
	require.NoError(t, err)
	require.Equal(t, 3, bm.Rows())
	require.Equal(t, 3, bm.Cols())

	want := [][]int{
		{-1, -1, 0},
		{1, 0, -1},
		{0, 1, 1},
	}
	for i := range want {
		for j := range want[i] {
			got, err := bm.At(i, j)
			require.NoError(t, err)
			assert.Equalf(t, want[i][j], got, "entry (%d,%d)", i, j)
		}
	}
	assert.Equal(t, "[-1, -1, 0]\n[1, 0, -1]\n[0, 1, 1]\n", bm.String())
	assert.Equal(t, 2, bm.RowIndex["2"])
}

// TestSimplexBoundaryMatrix_SquaresToZero checks ∂1·∂2 = 0 through the
// gonum export.
func TestSimplexBoundaryMatrix_SquaresToZero(t *testing.T) {
	t.Parallel()
	vertices, edges, faces := triangle()

	d1, err := chain.SimplexBoundaryMatrix(vertices, edges)
	require.NoError(t, err)
	d2, err := chain.SimplexBoundaryMatrix(edges, faces)
	require.NoError(t, err)

	col, err := d2.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1, 1}, col)

	a, err := d1.ToDense()
	require.NoError(t, err)
	b, err := d2.ToDense()
	require.NoError(t, err)

	var prod mat.Dense
	prod.Mul(a, b)
	r, c := prod.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 1, c)
	for i := 0; i < r; i++ {
		assert.Zero(t, prod.At(i, 0))
	}
}

// TestSimplexBoundaryMatrix_Vertices: ∂0 maps every vertex to the empty simplex.
func TestSimplexBoundaryMatrix_Vertices(t *testing.T) {
	t.Parallel()
	vertices, _, _ := triangle()

	bm, err := chain.SimplexBoundaryMatrix([]chain.Simplex{chain.NewSimplex()}, vertices)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		v, err := bm.At(0, j)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	}
}

// TestSimplexBoundaryMatrix_Errors covers every sentinel.
func TestSimplexBoundaryMatrix_Errors(t *testing.T) {
	t.Parallel()
	vertices, edges, faces := triangle()

	_, err := chain.SimplexBoundaryMatrix(vertices[:2], edges)
	assert.ErrorIs(t, err, chain.ErrUnknownFace)

	_, err = chain.SimplexBoundaryMatrix(vertices, append(edges, faces[0]))
	assert.ErrorIs(t, err, chain.ErrDimensionMismatch, "mixed cell dimensions")

	_, err = chain.SimplexBoundaryMatrix(vertices, faces)
	assert.ErrorIs(t, err, chain.ErrDimensionMismatch, "faces two below cells")

	_, err = chain.SimplexBoundaryMatrix(append(vertices, chain.NewSimplex(1)), edges)
	assert.ErrorIs(t, err, chain.ErrDuplicateElement)

	_, err = chain.SimplexBoundaryMatrix(vertices, append(edges, chain.NewSimplex(1, 0)))
	assert.ErrorIs(t, err, chain.ErrDuplicateElement)

	bm, err := chain.SimplexBoundaryMatrix(vertices, edges)
	require.NoError(t, err)
	_, err = bm.At(3, 0)
	assert.ErrorIs(t, err, chain.ErrOutOfRange)
	_, err = bm.At(0, -1)
	assert.ErrorIs(t, err, chain.ErrOutOfRange)
	_, err = bm.Column(3)
	assert.ErrorIs(t, err, chain.ErrOutOfRange)

	empty, err := chain.SimplexBoundaryMatrix(vertices, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Cols())
	_, err = empty.ToDense()
	assert.ErrorIs(t, err, chain.ErrEmptyMatrix)
}

// TestBuildBoundaryMatrix_CustomKey works through the generic entry with a
// caller-supplied key.
func TestBuildBoundaryMatrix_CustomKey(t *testing.T) {
	t.Parallel()
	vertices, edges, _ := triangle()

	key := func(s chain.Simplex) string { return s.String() }
	bm, err := chain.BuildBoundaryMatrix(vertices, edges, key)
	require.NoError(t, err)
	assert.Equal(t, 1, bm.RowIndex["[1]"])
	assert.Len(t, bm.Cells, 3)
}
