// SPDX-License-Identifier: MIT

package barcode

import "sort"

const panicNegativeDimension = "barcode: negative dimension"

// Pair couples an interval with the generator that witnesses it.
type Pair[I, G any] struct {
	Interval  I
	Generator G
}

// Descriptor is a dimension-indexed persistence invariant: for every
// recorded dimension, three equal-length lists where index i in each
// denotes the same barcode entry, in insertion order.
type Descriptor[I, G any] struct {
	intervals  map[int][]I
	generators map[int][]G
	pairs      map[int][]Pair[I, G]
}

// NewDescriptor returns an empty Descriptor.
func NewDescriptor[I, G any]() *Descriptor[I, G] {
	return &Descriptor[I, G]{
		intervals:  make(map[int][]I),
		generators: make(map[int][]G),
		pairs:      make(map[int][]Pair[I, G]),
	}
}

// AddInterval appends one entry at dimension, to all three lists at once.
// Panics if dimension < 0.
// Complexity: amortized O(1).
func (d *Descriptor[I, G]) AddInterval(dimension int, iv I, generator G) {
	if dimension < 0 {
		panic(panicNegativeDimension)
	}
	d.intervals[dimension] = append(d.intervals[dimension], iv)
	d.generators[dimension] = append(d.generators[dimension], generator)
	d.pairs[dimension] = append(d.pairs[dimension], Pair[I, G]{Interval: iv, Generator: generator})
}

// Dimensions returns every dimension holding at least one entry, ascending.
// Complexity: O(D log D).
func (d *Descriptor[I, G]) Dimensions() []int {
	dims := make([]int, 0, len(d.intervals))
	for dim, ivs := range d.intervals {
		if len(ivs) > 0 {
			dims = append(dims, dim)
		}
	}
	sort.Ints(dims)

	return dims
}

// IntervalsAt returns a copy of the intervals at dimension, or an empty slice.
func (d *Descriptor[I, G]) IntervalsAt(dimension int) []I {
	return cloneSlice(d.intervals[dimension])
}

// GeneratorsAt returns a copy of the generators at dimension, or an empty slice.
func (d *Descriptor[I, G]) GeneratorsAt(dimension int) []G {
	return cloneSlice(d.generators[dimension])
}

// PairsAt returns a copy of the (interval, generator) pairs at dimension,
// or an empty slice.
func (d *Descriptor[I, G]) PairsAt(dimension int) []Pair[I, G] {
	return cloneSlice(d.pairs[dimension])
}

// Len returns the total number of entries across all dimensions.
func (d *Descriptor[I, G]) Len() int {
	n := 0
	for _, ivs := range d.intervals {
		n += len(ivs)
	}

	return n
}

// RetainDimensions removes, from all three mappings together, every
// dimension for which keep returns false.
func (d *Descriptor[I, G]) RetainDimensions(keep func(dimension int) bool) {
	for dim := range d.intervals {
		if !keep(dim) {
			delete(d.intervals, dim)
			delete(d.generators, dim)
			delete(d.pairs, dim)
		}
	}
}

// Clone returns a Descriptor with copied lists. Elements are copied by
// value; generators holding references still share what they point to.
func (d *Descriptor[I, G]) Clone() *Descriptor[I, G] {
	out := NewDescriptor[I, G]()
	for dim := range d.intervals {
		out.intervals[dim] = cloneSlice(d.intervals[dim])
		out.generators[dim] = cloneSlice(d.generators[dim])
		out.pairs[dim] = cloneSlice(d.pairs[dim])
	}

	return out
}

// cloneSlice copies s; nil and empty inputs yield an empty non-nil slice.
func cloneSlice[E any](s []E) []E {
	out := make([]E, len(s))
	copy(out, s)

	return out
}
