// SPDX-License-Identifier: MIT

package interval

// New is the raw constructor. A nil start or end marks that endpoint as
// absent. No consistency check links the infinity flags to endpoint
// presence; callers are responsible for it.
// Complexity: O(1).
func New[T Numeric](start, end *T, leftClosed, rightClosed, leftInfinite, rightInfinite bool) Interval[T] {
	iv := Interval[T]{
		leftClosed:    leftClosed,
		rightClosed:   rightClosed,
		leftInfinite:  leftInfinite,
		rightInfinite: rightInfinite,
	}
	if start != nil {
		iv.start, iv.hasStart = *start, true
	}
	if end != nil {
		iv.end, iv.hasEnd = *end, true
	}

	return iv
}

// FiniteClosed returns [start, end].
func FiniteClosed[T Numeric](start, end T) Interval[T] {
	return New(&start, &end, true, true, false, false)
}

// FiniteRightOpen returns [start, end).
func FiniteRightOpen[T Numeric](start, end T) Interval[T] {
	return New(&start, &end, true, false, false, false)
}

// FiniteLeftOpen returns (start, end].
func FiniteLeftOpen[T Numeric](start, end T) Interval[T] {
	return New(&start, &end, false, true, false, false)
}

// FiniteOpen returns (start, end).
func FiniteOpen[T Numeric](start, end T) Interval[T] {
	return New(&start, &end, false, false, false, false)
}

// RightInfiniteClosed returns [start, infinity].
func RightInfiniteClosed[T Numeric](start T) Interval[T] {
	return New(&start, nil, true, true, false, true)
}

// RightInfiniteOpen returns (start, infinity).
func RightInfiniteOpen[T Numeric](start T) Interval[T] {
	return New(&start, nil, false, false, false, true)
}

// RightInfiniteRightOpen returns [start, infinity).
func RightInfiniteRightOpen[T Numeric](start T) Interval[T] {
	return New(&start, nil, true, false, false, true)
}

// RightInfiniteLeftOpen returns (start, infinity].
func RightInfiniteLeftOpen[T Numeric](start T) Interval[T] {
	return New(&start, nil, false, true, false, true)
}

// LeftInfiniteClosed returns [-infinity, end].
func LeftInfiniteClosed[T Numeric](end T) Interval[T] {
	return New(nil, &end, true, true, true, false)
}

// LeftInfiniteRightOpen returns [-infinity, end).
func LeftInfiniteRightOpen[T Numeric](end T) Interval[T] {
	return New(nil, &end, true, false, true, false)
}

// LeftInfiniteLeftOpen returns (-infinity, end].
func LeftInfiniteLeftOpen[T Numeric](end T) Interval[T] {
	return New(nil, &end, false, true, true, false)
}

// LeftInfiniteOpen returns (-infinity, end).
func LeftInfiniteOpen[T Numeric](end T) Interval[T] {
	return New(nil, &end, false, false, true, false)
}
