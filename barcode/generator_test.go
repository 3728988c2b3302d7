// SPDX-License-Identifier: MIT

package barcode_test

import (
	"testing"

	"github.com/katalvlaran/persistence/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerator_Neutral: the zero Generator and erased zero values are neutral.
func TestGenerator_Neutral(t *testing.T) {
	t.Parallel()

	var g barcode.Generator
	assert.True(t, g.IsZero())
	assert.Nil(t, g.Value())

	assert.True(t, barcode.Erase(0).IsZero())
	assert.True(t, barcode.Erase("").IsZero())
	assert.True(t, barcode.Erase(cycle{}).IsZero())
	assert.False(t, barcode.Erase(3).IsZero())

	assert.True(t, g.Equal(barcode.Erase("")), "neutral values are equal across types")
}

// TestGenerator_EqualAndClone compares wrapped values deeply.
func TestGenerator_EqualAndClone(t *testing.T) {
	t.Parallel()

	a := barcode.Erase(cycle{Edges: []string{"ab", "bc"}})
	b := barcode.Erase(cycle{Edges: []string{"ab", "bc"}})
	c := barcode.Erase(cycle{Edges: []string{"ab"}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, barcode.Erase(1).Equal(barcode.Erase(int64(1))), "different dynamic types")
	assert.True(t, a.Clone().Equal(a))
}

// TestGenerator_As unwraps with a type check.
func TestGenerator_As(t *testing.T) {
	t.Parallel()

	v, ok := barcode.As[int](barcode.Erase(7))
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = barcode.As[string](barcode.Erase(7))
	assert.False(t, ok)

	s, ok := barcode.As[string](barcode.Generator{})
	require.True(t, ok)
	assert.Equal(t, "", s)
}
