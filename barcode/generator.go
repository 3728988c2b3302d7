// SPDX-License-Identifier: MIT

package barcode

import "reflect"

// Generator is a type-erased generator: any value plus the operations a
// barcode needs on it. The zero Generator is the neutral default.
type Generator struct {
	value any
}

// Erase wraps g. A zero-valued g still erases to a Generator holding it,
// so IsZero reports true for it as well.
func Erase[G any](g G) Generator {
	return Generator{value: g}
}

// Value returns the wrapped value (nil for the neutral Generator).
func (g Generator) Value() any { return g.value }

// IsZero reports whether g is neutral: nothing wrapped, or a wrapped zero value.
func (g Generator) IsZero() bool {
	if g.value == nil {
		return true
	}

	return reflect.ValueOf(g.value).IsZero()
}

// Equal reports deep equality of the wrapped values. Two neutral
// generators are equal whatever types they were erased from.
func (g Generator) Equal(o Generator) bool {
	if g.IsZero() && o.IsZero() {
		return true
	}

	return reflect.DeepEqual(g.value, o.value)
}

// Clone returns a Generator sharing the wrapped value. Generators are
// values; a wrapped reference type still aliases its target.
func (g Generator) Clone() Generator { return Generator{value: g.value} }

// As unwraps g as a G; ok is false on a type mismatch. The neutral
// Generator unwraps to G's zero value with ok true.
func As[G any](g Generator) (v G, ok bool) {
	if g.value == nil {
		return v, true
	}
	v, ok = g.value.(G)

	return v, ok
}
