// SPDX-License-Identifier: MIT

package barcode

// Default closure convention for finite persistence intervals: [birth, death).
const (
	DefaultLeftClosed  = true
	DefaultRightClosed = false
)

// Option configures the default closure flags of a collection.
type Option func(o *options)

type options struct {
	leftClosed  bool
	rightClosed bool
}

// WithLeftClosed sets whether intervals added from bare endpoints include
// their start.
func WithLeftClosed(closed bool) Option {
	return func(o *options) { o.leftClosed = closed }
}

// WithRightClosed sets whether intervals added from bare endpoints include
// their end.
func WithRightClosed(closed bool) Option {
	return func(o *options) { o.rightClosed = closed }
}

// gatherOptions applies opts over the defaults, left to right.
func gatherOptions(opts []Option) options {
	o := options{leftClosed: DefaultLeftClosed, rightClosed: DefaultRightClosed}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
