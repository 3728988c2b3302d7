// SPDX-License-Identifier: MIT

// Package coefficient provides memoized boundary coefficients: the
// alternating sign sequences [+1, −1, +1, …] that pair a simplex with its
// codimension-1 faces.
//
// A Cache precomputes the sequences for every length below its size (10 by
// default) on first use and computes longer ones on demand. It is safe for
// concurrent use; callers serialize only for the table read or populate,
// never for the surrounding boundary computation.
//
// Default returns the process-wide cache used by chain.Simplex. Components
// that want isolation construct their own with New and inject it.
package coefficient
