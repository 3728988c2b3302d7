// SPDX-License-Identifier: MIT

package coefficient

import "sync"

// DefaultCacheSize is the number of lengths (0..DefaultCacheSize-1) kept in
// the precomputed table.
const DefaultCacheSize = 10

// Fixed panic messages for programmer errors.
const (
	panicNegativeLength = "coefficient: negative length"
	panicNegativeSize   = "coefficient: WithSize requires size >= 0"
)

// Option configures a Cache at construction.
type Option func(c *Cache)

// WithSize sets how many lengths are precomputed.
// Panics if size < 0.
func WithSize(size int) Option {
	if size < 0 {
		panic(panicNegativeSize)
	}

	return func(c *Cache) { c.size = size }
}

// Cache memoizes alternating boundary coefficient sequences.
// mu guards the lazily built table.
type Cache struct {
	mu    sync.Mutex
	size  int     // lengths below size are served from table
	table [][]int // table[n] = [+1, −1, …] of length n; nil until first use
}

// New returns an empty Cache; the table is built on first request.
func New(opts ...Option) *Cache {
	c := &Cache{size: DefaultCacheSize}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide Cache, created on first call.
func Default() *Cache {
	defaultOnce.Do(func() { defaultCache = New() })

	return defaultCache
}

// Size returns the number of precomputed lengths.
func (c *Cache) Size() int { return c.size }

// BoundaryCoefficients returns a fresh slice of the given length whose
// j-th entry is +1 for even j and −1 for odd j.
// Lengths below Size are copied from the table; longer ones are computed.
// Panics if length < 0.
// Complexity: O(length).
func (c *Cache) BoundaryCoefficients(length int) []int {
	if length < 0 {
		panic(panicNegativeLength)
	}
	if length >= c.size {
		return alternating(length)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table == nil {
		c.populate()
	}
	out := make([]int, length)
	copy(out, c.table[length])

	return out
}

// populate builds table[0..size-1]. Caller holds mu.
func (c *Cache) populate() {
	c.table = make([][]int, c.size)
	for n := 0; n < c.size; n++ {
		c.table[n] = alternating(n)
	}
}

// alternating builds [+1, −1, +1, …] of length n.
func alternating(n int) []int {
	out := make([]int, n)
	for j := range out {
		if j%2 == 0 {
			out[j] = 1
		} else {
			out[j] = -1
		}
	}

	return out
}
