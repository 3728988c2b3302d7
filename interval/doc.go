// SPDX-License-Identifier: MIT

// Package interval models persistence intervals: generic one- or two-sided
// infinite intervals over a numeric type, with independent left/right
// closure flags.
//
// 🚀 What is an Interval?
//
//	An Interval[T] is the geometric object stored in a barcode. A finite
//	interval has both endpoints; a left- or right-infinite interval drops
//	the endpoint on its infinite side and renders it as ∓infinity.
//
// ✨ Key features:
//   - twelve named constructors for the finite and one-sided-infinite cases
//   - ContainsPoint honoring closure and infinity per side
//   - a partial order by finite length (infinite ranks greater, ties allowed)
//   - canonical rendering: "[2, 5)", "(-infinity, 10]", "[3, infinity)"
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/persistence/interval"
//
//	a := interval.FiniteRightOpen(2, 5)    // [2, 5)
//	b := interval.RightInfiniteClosed(10)  // [10, infinity]
//	cmp, _ := a.Compare(b)                 // -1: infinite ranks greater
//
// Ordering is intentionally not total: equal-length finite intervals
// compare equal whatever their position, and two infinite intervals always
// compare equal.
//
// Intervals are immutable values; copy them freely across goroutines.
package interval
