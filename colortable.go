package polyplot

// ColorTable assigns a fixed color to every unordered vertex pair {i,j},
// i ≠ j, so each edge and diagonal keeps the same color on every frame.
// Only the pairs with j < i are materialized; the table is a flat arena
// with row i starting at index i*(i-1)/2, which gives O(1) lookup without
// per-row allocations.
type ColorTable struct {
	points int
	colors []Color
}

// newColorTable builds the table for an n-vertex polygon. Colors blend
// two channel ramps that scale with the vertex indices, yielding a
// reproducible warm-to-cool gradient across pairs: repeated redraws with
// no state change look identical.
func newColorTable(n int) ColorTable {
	t := ColorTable{
		points: n,
		colors: make([]Color, n*(n-1)/2),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			r := channelRamp(i, n)
			g := channelRamp(j, n)
			t.colors[i*(i-1)/2+j] = Color{
				R: uint8(r),
				G: uint8(g),
				B: uint8(clampChannel(255 - (r+g)/2)),
			}
		}
	}
	return t
}

// channelRamp scales a vertex index to a color channel value.
func channelRamp(x, n int) int {
	return clampChannel(x * 256 / n)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// At returns the color for the pair {i,j}. Lookups with j > i read the
// canonical entry for {j,i}; there is no entry for i == j and the zero
// Color is returned.
func (t ColorTable) At(i, j int) Color {
	if j > i {
		i, j = j, i
	}
	if i == j {
		return Color{}
	}
	return t.colors[i*(i-1)/2+j]
}

// Len returns the number of stored entries, one per vertex pair.
func (t ColorTable) Len() int {
	return len(t.colors)
}
