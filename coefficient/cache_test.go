// SPDX-License-Identifier: MIT

package coefficient_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/persistence/coefficient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoundaryCoefficients_Values checks the alternating pattern for small
// lengths served from the table.
func TestBoundaryCoefficients_Values(t *testing.T) {
	t.Parallel()
	c := coefficient.New()

	assert.Equal(t, []int{}, c.BoundaryCoefficients(0))
	assert.Equal(t, []int{1}, c.BoundaryCoefficients(1))
	assert.Equal(t, []int{1, -1}, c.BoundaryCoefficients(2))
	assert.Equal(t, []int{1, -1, 1}, c.BoundaryCoefficients(3))
	assert.Equal(t, []int{1, -1, 1, -1}, c.BoundaryCoefficients(4))
}

// TestBoundaryCoefficients_AcrossCacheBoundary: lengths 9 (cached) and 11
// (computed) follow the same rule, and repeated calls agree.
func TestBoundaryCoefficients_AcrossCacheBoundary(t *testing.T) {
	t.Parallel()
	c := coefficient.New()
	require.Equal(t, coefficient.DefaultCacheSize, c.Size())

	for _, n := range []int{9, 10, 11, 25} {
		got := c.BoundaryCoefficients(n)
		require.Len(t, got, n)
		for j, v := range got {
			want := 1
			if j%2 == 1 {
				want = -1
			}
			assert.Equalf(t, want, v, "length %d index %d", n, j)
		}
		assert.Equal(t, got, c.BoundaryCoefficients(n), "idempotent for length %d", n)
	}
}

// TestBoundaryCoefficients_ReturnsCopy: mutating a result must not leak into
// the table.
func TestBoundaryCoefficients_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c := coefficient.New()

	first := c.BoundaryCoefficients(5)
	first[0] = 42
	assert.Equal(t, []int{1, -1, 1, -1, 1}, c.BoundaryCoefficients(5))
}

// TestWithSize: a zero-size cache computes everything on demand.
func TestWithSize(t *testing.T) {
	t.Parallel()

	c := coefficient.New(coefficient.WithSize(0))
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, []int{1, -1, 1}, c.BoundaryCoefficients(3))

	c = coefficient.New(coefficient.WithSize(64))
	assert.Len(t, c.BoundaryCoefficients(63), 63)

	assert.PanicsWithValue(t, "coefficient: WithSize requires size >= 0", func() {
		coefficient.WithSize(-1)
	})
}

// TestBoundaryCoefficients_NegativeLength panics.
func TestBoundaryCoefficients_NegativeLength(t *testing.T) {
	assert.PanicsWithValue(t, "coefficient: negative length", func() {
		coefficient.Default().BoundaryCoefficients(-1)
	})
}

// TestDefault_Singleton returns the same instance every time.
func TestDefault_Singleton(t *testing.T) {
	t.Parallel()
	assert.Same(t, coefficient.Default(), coefficient.Default())
}

// TestConcurrentBoundaryCoefficients hammers a fresh cache from many
// goroutines so the lazy populate races with reads (run with -race).
func TestConcurrentBoundaryCoefficients(t *testing.T) {
	c := coefficient.New()
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make([][]int, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			results[id] = c.BoundaryCoefficients(id % 12)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Len(t, got, i%12)
		if len(got) > 0 {
			require.Equal(t, 1, got[0])
		}
	}
}
