// SPDX-License-Identifier: MIT

package interval

import "golang.org/x/exp/constraints"

// Numeric is the set of endpoint types an Interval accepts: ordered,
// comparable, printable and closed under subtraction.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Interval is an immutable, possibly infinite interval over T.
//
// When leftInfinite is set the start endpoint is ignored (and normally
// absent); symmetrically for the right side. A finite interval carries
// both endpoints.
type Interval[T Numeric] struct {
	start    T    // left endpoint, meaningful only when hasStart
	end      T    // right endpoint, meaningful only when hasEnd
	hasStart bool // start is present
	hasEnd   bool // end is present

	leftClosed    bool // '[' vs '('
	rightClosed   bool // ']' vs ')'
	leftInfinite  bool // start is -infinity
	rightInfinite bool // end is +infinity
}

// Symbols used by String.
const (
	leftClosedSymbol  = "["
	leftOpenSymbol    = "("
	rightClosedSymbol = "]"
	rightOpenSymbol   = ")"
	negInfinityText   = "-infinity"
	posInfinityText   = "infinity"
)

// Fixed panic messages for absent-endpoint access.
const (
	panicNoStart = "interval: start endpoint is absent"
	panicNoEnd   = "interval: end endpoint is absent"
)
