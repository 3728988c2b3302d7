// SPDX-License-Identifier: MIT

package barcode

import "github.com/katalvlaran/persistence/interval"

// Collection is a barcode for callers that do not track generators: every
// interval is recorded with G's zero value.
type Collection[T interval.Numeric, G any] struct {
	annotated *AnnotatedCollection[T, G]
}

// NewCollection wraps a. A nil a starts a default annotated collection.
func NewCollection[T interval.Numeric, G any](a *AnnotatedCollection[T, G]) *Collection[T, G] {
	if a == nil {
		a = DefaultAnnotatedCollection[T, G]()
	}

	return &Collection[T, G]{annotated: a}
}

// DefaultCollection returns an empty Collection using [birth, death) unless
// opts say otherwise.
func DefaultCollection[T interval.Numeric, G any](opts ...Option) *Collection[T, G] {
	return NewCollection(DefaultAnnotatedCollection[T, G](opts...))
}

// Annotated returns the wrapped collection (shared, not copied).
func (c *Collection[T, G]) Annotated() *AnnotatedCollection[T, G] { return c.annotated }

// AddInterval records the finite interval start..end at dimension.
func (c *Collection[T, G]) AddInterval(dimension int, start, end T) {
	var zero G
	c.annotated.AddInterval(dimension, start, end, zero)
}

// AddRightInfiniteInterval records start..+infinity at dimension.
func (c *Collection[T, G]) AddRightInfiniteInterval(dimension int, start T) {
	var zero G
	c.annotated.AddRightInfiniteInterval(dimension, start, zero)
}

// AddLeftInfiniteInterval records -infinity..end at dimension.
func (c *Collection[T, G]) AddLeftInfiniteInterval(dimension int, end T) {
	var zero G
	c.annotated.AddLeftInfiniteInterval(dimension, end, zero)
}

// AddDirectInterval re-adds iv's endpoints as a finite interval under this
// collection's default closures. iv's own closure and infinity flags are
// NOT kept, only its endpoint values.
// Panics if iv lacks either endpoint.
func (c *Collection[T, G]) AddDirectInterval(dimension int, iv interval.Interval[T]) {
	c.AddInterval(dimension, iv.MustStart(), iv.MustEnd())
}

// InfiniteIntervals returns the infinite subset as a new Collection.
func (c *Collection[T, G]) InfiniteIntervals() *Collection[T, G] {
	return NewCollection(c.annotated.InfiniteIntervals())
}

// FilterByMaxDimension returns the infinite intervals below maxDim as a new
// Collection; see AnnotatedCollection.FilterByMaxDimension.
func (c *Collection[T, G]) FilterByMaxDimension(maxDim int) *Collection[T, G] {
	return NewCollection(c.annotated.FilterByMaxDimension(maxDim))
}

// Dimensions returns the recorded dimensions, ascending.
func (c *Collection[T, G]) Dimensions() []int { return c.annotated.Dimensions() }

// IntervalsAt returns the intervals at dimension (empty if none).
func (c *Collection[T, G]) IntervalsAt(dimension int) []interval.Interval[T] {
	return c.annotated.IntervalsAt(dimension)
}

// Len returns the number of recorded intervals.
func (c *Collection[T, G]) Len() int { return c.annotated.Len() }
