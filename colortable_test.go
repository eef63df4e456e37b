package polyplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorTableEntryCount(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 10, 20, 100} {
		ct := newColorTable(n)
		assert.Equal(t, n*(n-1)/2, ct.Len(), "n=%d", n)
	}
}

func TestColorTableSingleEntry(t *testing.T) {
	// A two-point "polygon" has exactly one line, colored by entry [1][0].
	ct := newColorTable(2)
	assert.Equal(t, 1, ct.Len())
	assert.Equal(t, Color{R: 128, G: 0, B: 191}, ct.At(1, 0))
}

func TestColorTableValues(t *testing.T) {
	// n=4: ramp is 0, 64, 128, 192; blue is 255 minus half the r+g sum.
	ct := newColorTable(4)
	assert.Equal(t, Color{R: 64, G: 0, B: 223}, ct.At(1, 0))
	assert.Equal(t, Color{R: 128, G: 64, B: 159}, ct.At(2, 1))
	assert.Equal(t, Color{R: 192, G: 128, B: 95}, ct.At(3, 2))
}

func TestColorTableCanonicalLookup(t *testing.T) {
	ct := newColorTable(7)
	for i := 0; i < 7; i++ {
		for j := 0; j < i; j++ {
			assert.Equal(t, ct.At(i, j), ct.At(j, i), "pair {%d,%d}", i, j)
		}
	}
}

func TestColorTableDeterministic(t *testing.T) {
	a := newColorTable(9)
	b := newColorTable(9)
	for i := 0; i < 9; i++ {
		for j := 0; j < i; j++ {
			assert.Equal(t, a.At(i, j), b.At(i, j), "pair {%d,%d}", i, j)
		}
	}
}

func TestChannelRampClamped(t *testing.T) {
	// Every channel the table can produce stays inside [0,255].
	for _, n := range []int{2, 3, 17, 256} {
		for i := 0; i < n; i++ {
			r := channelRamp(i, n)
			assert.GreaterOrEqual(t, r, 0)
			assert.LessOrEqual(t, r, 255)
		}
	}
	assert.Equal(t, 0, clampChannel(-5))
	assert.Equal(t, 255, clampChannel(300))
}
