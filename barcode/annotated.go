// SPDX-License-Identifier: MIT

package barcode

import "github.com/katalvlaran/persistence/interval"

// AnnotatedCollection is a barcode whose intervals carry generators of type G.
// Intervals added from bare endpoints take the collection's default closure
// flags; the neutral generator is G's zero value.
type AnnotatedCollection[T interval.Numeric, G any] struct {
	leftClosed  bool
	rightClosed bool
	descriptor  *Descriptor[interval.Interval[T], G]
}

// NewAnnotatedCollection wraps d with explicit default closure flags.
// A nil d starts an empty descriptor. The collection takes ownership of d.
func NewAnnotatedCollection[T interval.Numeric, G any](leftClosed, rightClosed bool, d *Descriptor[interval.Interval[T], G]) *AnnotatedCollection[T, G] {
	if d == nil {
		d = NewDescriptor[interval.Interval[T], G]()
	}

	return &AnnotatedCollection[T, G]{
		leftClosed:  leftClosed,
		rightClosed: rightClosed,
		descriptor:  d,
	}
}

// DefaultAnnotatedCollection returns an empty collection using [birth, death)
// unless opts say otherwise.
func DefaultAnnotatedCollection[T interval.Numeric, G any](opts ...Option) *AnnotatedCollection[T, G] {
	o := gatherOptions(opts)

	return NewAnnotatedCollection[T, G](o.leftClosed, o.rightClosed, nil)
}

// LeftClosedDefault reports the closure applied to starts of added intervals.
func (c *AnnotatedCollection[T, G]) LeftClosedDefault() bool { return c.leftClosed }

// RightClosedDefault reports the closure applied to ends of added intervals.
func (c *AnnotatedCollection[T, G]) RightClosedDefault() bool { return c.rightClosed }

// AddInterval records the finite interval start..end at dimension.
func (c *AnnotatedCollection[T, G]) AddInterval(dimension int, start, end T, generator G) {
	iv := interval.New(&start, &end, c.leftClosed, c.rightClosed, false, false)
	c.descriptor.AddInterval(dimension, iv, generator)
}

// AddRightInfiniteInterval records start..+infinity at dimension.
func (c *AnnotatedCollection[T, G]) AddRightInfiniteInterval(dimension int, start T, generator G) {
	iv := interval.New(&start, nil, c.leftClosed, c.rightClosed, false, true)
	c.descriptor.AddInterval(dimension, iv, generator)
}

// AddLeftInfiniteInterval records -infinity..end at dimension.
func (c *AnnotatedCollection[T, G]) AddLeftInfiniteInterval(dimension int, end T, generator G) {
	iv := interval.New(nil, &end, c.leftClosed, c.rightClosed, true, false)
	c.descriptor.AddInterval(dimension, iv, generator)
}

// InfiniteIntervals returns a new default-configured collection holding
// every infinite interval (with its generator), per dimension in insertion
// order. The receiver is not modified.
// Complexity: O(N).
func (c *AnnotatedCollection[T, G]) InfiniteIntervals() *AnnotatedCollection[T, G] {
	result := DefaultAnnotatedCollection[T, G]()
	for _, dim := range c.descriptor.Dimensions() {
		for _, p := range c.descriptor.pairs[dim] {
			if p.Interval.IsInfinite() {
				result.descriptor.AddInterval(dim, p.Interval, p.Generator)
			}
		}
	}

	return result
}

// FilterByMaxDimension returns the infinite intervals recorded at
// dimensions strictly below maxDim. Finite intervals never survive, at any
// dimension. The receiver is not modified.
func (c *AnnotatedCollection[T, G]) FilterByMaxDimension(maxDim int) *AnnotatedCollection[T, G] {
	result := c.InfiniteIntervals()
	result.descriptor.RetainDimensions(func(dim int) bool { return dim < maxDim })

	return result
}

// Dimensions returns the recorded dimensions, ascending.
func (c *AnnotatedCollection[T, G]) Dimensions() []int { return c.descriptor.Dimensions() }

// IntervalsAt returns the intervals at dimension (empty if none).
func (c *AnnotatedCollection[T, G]) IntervalsAt(dimension int) []interval.Interval[T] {
	return c.descriptor.IntervalsAt(dimension)
}

// GeneratorsAt returns the generators at dimension (empty if none).
func (c *AnnotatedCollection[T, G]) GeneratorsAt(dimension int) []G {
	return c.descriptor.GeneratorsAt(dimension)
}

// PairsAt returns the (interval, generator) pairs at dimension (empty if none).
func (c *AnnotatedCollection[T, G]) PairsAt(dimension int) []Pair[interval.Interval[T], G] {
	return c.descriptor.PairsAt(dimension)
}

// Len returns the number of recorded intervals.
func (c *AnnotatedCollection[T, G]) Len() int { return c.descriptor.Len() }

// Descriptor returns a copy of the underlying descriptor.
func (c *AnnotatedCollection[T, G]) Descriptor() *Descriptor[interval.Interval[T], G] {
	return c.descriptor.Clone()
}

// Clone returns an independent copy with the same defaults.
func (c *AnnotatedCollection[T, G]) Clone() *AnnotatedCollection[T, G] {
	return NewAnnotatedCollection[T, G](c.leftClosed, c.rightClosed, c.descriptor.Clone())
}

// Forget returns a copy of c whose generators are erased to Generator,
// keeping intervals, order and default flags.
func Forget[T interval.Numeric, G any](c *AnnotatedCollection[T, G]) *AnnotatedCollection[T, Generator] {
	out := NewAnnotatedCollection[T, Generator](c.leftClosed, c.rightClosed, nil)
	for _, dim := range c.descriptor.Dimensions() {
		for _, p := range c.descriptor.pairs[dim] {
			out.descriptor.AddInterval(dim, p.Interval, Erase(p.Generator))
		}
	}

	return out
}
