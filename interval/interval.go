// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"strings"
)

// Start returns the left endpoint and whether it is present.
func (iv Interval[T]) Start() (T, bool) { return iv.start, iv.hasStart }

// End returns the right endpoint and whether it is present.
func (iv Interval[T]) End() (T, bool) { return iv.end, iv.hasEnd }

// MustStart returns the left endpoint.
// Panics if the endpoint is absent: the caller assumed a finite left side.
func (iv Interval[T]) MustStart() T {
	if !iv.hasStart {
		panic(panicNoStart)
	}

	return iv.start
}

// MustEnd returns the right endpoint.
// Panics if the endpoint is absent: the caller assumed a finite right side.
func (iv Interval[T]) MustEnd() T {
	if !iv.hasEnd {
		panic(panicNoEnd)
	}

	return iv.end
}

// IsLeftClosed reports whether the left side includes its endpoint.
func (iv Interval[T]) IsLeftClosed() bool { return iv.leftClosed }

// IsRightClosed reports whether the right side includes its endpoint.
func (iv Interval[T]) IsRightClosed() bool { return iv.rightClosed }

// IsLeftInfinite reports whether the interval extends to -infinity.
func (iv Interval[T]) IsLeftInfinite() bool { return iv.leftInfinite }

// IsRightInfinite reports whether the interval extends to +infinity.
func (iv Interval[T]) IsRightInfinite() bool { return iv.rightInfinite }

// IsInfinite reports whether either side is infinite.
func (iv Interval[T]) IsInfinite() bool {
	return iv.leftInfinite || iv.rightInfinite
}

// ContainsPoint reports whether p lies in the interval.
//
// Each finite side tests p against its endpoint under that side's closure;
// an infinite side never excludes. When a side is marked finite but its
// endpoint is absent, p is compared with itself, so that side never
// excludes either.
// Complexity: O(1).
func (iv Interval[T]) ContainsPoint(p T) bool {
	if !iv.leftInfinite {
		bound := p
		if iv.hasStart {
			bound = iv.start
		}
		if iv.leftClosed && p < bound {
			return false
		}
		if !iv.leftClosed && p <= bound {
			return false
		}
	}

	if !iv.rightInfinite {
		bound := p
		if iv.hasEnd {
			bound = iv.end
		}
		if iv.rightClosed && p > bound {
			return false
		}
		if !iv.rightClosed && p >= bound {
			return false
		}
	}

	return true
}

// Length returns end−start for a finite interval; ok is false when either
// side is infinite.
// Panics if the interval is marked finite but lacks an endpoint.
func (iv Interval[T]) Length() (length T, ok bool) {
	if iv.IsInfinite() {
		return length, false
	}

	return iv.MustEnd() - iv.MustStart(), true
}

// Compare orders iv against other by persistence:
//
//	both infinite      →  0
//	only iv infinite   → +1
//	only other infinite→ -1
//	both finite        → sign(len(iv) − len(other))
//
// ok is false only when the finite lengths are unordered (NaN). Equal
// lengths compare 0 regardless of position; the order is not total.
// Complexity: O(1).
func (iv Interval[T]) Compare(other Interval[T]) (cmp int, ok bool) {
	a, b := iv.IsInfinite(), other.IsInfinite()
	switch {
	case a && b:
		return 0, true
	case a:
		return 1, true
	case b:
		return -1, true
	}

	l0, _ := iv.Length()
	l1, _ := other.Length()
	switch {
	case l0 < l1:
		return -1, true
	case l0 > l1:
		return 1, true
	case l0 == l1:
		return 0, true
	}

	return 0, false
}

// Less reports whether iv ranks strictly below other under Compare.
func (iv Interval[T]) Less(other Interval[T]) bool {
	c, ok := iv.Compare(other)

	return ok && c < 0
}

// Equal reports structural equality: both endpoints (with presence) and
// all four flags.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.hasStart == other.hasStart &&
		iv.hasEnd == other.hasEnd &&
		(!iv.hasStart || iv.start == other.start) &&
		(!iv.hasEnd || iv.end == other.end) &&
		iv.leftClosed == other.leftClosed &&
		iv.rightClosed == other.rightClosed &&
		iv.leftInfinite == other.leftInfinite &&
		iv.rightInfinite == other.rightInfinite
}

// String renders "{L}{start}, {end}{R}", e.g. "[2, 5)" or "(-infinity, 10]".
// Panics if a finite side lacks its endpoint.
func (iv Interval[T]) String() string {
	var sb strings.Builder

	if iv.leftClosed {
		sb.WriteString(leftClosedSymbol)
	} else {
		sb.WriteString(leftOpenSymbol)
	}
	if iv.leftInfinite {
		sb.WriteString(negInfinityText)
	} else {
		fmt.Fprintf(&sb, "%v", iv.MustStart())
	}

	sb.WriteString(", ")

	if iv.rightInfinite {
		sb.WriteString(posInfinityText)
	} else {
		fmt.Fprintf(&sb, "%v", iv.MustEnd())
	}
	if iv.rightClosed {
		sb.WriteString(rightClosedSymbol)
	} else {
		sb.WriteString(rightOpenSymbol)
	}

	return sb.String()
}
