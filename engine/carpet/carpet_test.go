package carpet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(ox, oy, size float32, iterations int) []Placement {
	var out []Placement
	for p := range Generate(ox, oy, size, iterations) {
		out = append(out, p)
	}
	return out
}

func TestCount(t *testing.T) {
	tests := []struct {
		iterations int
		want       int
	}{
		{iterations: 1, want: 1},
		{iterations: 2, want: 9},
		{iterations: 3, want: 73},
		{iterations: 4, want: 585},
		{iterations: 5, want: 4681},
		{iterations: 0, want: 1},
		{iterations: -3, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.iterations), "iterations=%d", tt.iterations)
	}
}

func TestGenerateMatchesCount(t *testing.T) {
	for iterations := 1; iterations <= 5; iterations++ {
		got := collect(-1, -1, 2, iterations)
		assert.Len(t, got, Count(iterations), "iterations=%d", iterations)
	}
}

func TestGenerateSingleIteration(t *testing.T) {
	got := collect(-1, -1, 2, 1)
	require.Len(t, got, 1)

	// The only cube sits at the center of the region, resting on the plane.
	third := float32(2.0) / 3.0
	assert.InDelta(t, 0.0, got[0].X, 1e-6)
	assert.InDelta(t, 0.0, got[0].Y, 1e-6)
	assert.InDelta(t, third/2.0, got[0].Z, 1e-6)
	assert.InDelta(t, third, got[0].Size, 1e-6)
}

func TestGenerateTwoIterations(t *testing.T) {
	got := collect(-1, -1, 2, 2)
	require.Len(t, got, 9)

	sizes := map[float32]int{}
	for _, p := range got {
		sizes[p.Size]++
	}
	// One large center cube plus eight cubes one level down.
	large := float32(2.0) / 3.0
	small := large / 3.0
	assert.Equal(t, 1, sizes[large])
	assert.Equal(t, 8, sizes[small])
}

func TestGenerateClampsIterations(t *testing.T) {
	assert.Equal(t, collect(0, 0, 1, 1), collect(0, 0, 1, 0))
	assert.Equal(t, collect(0, 0, 1, 1), collect(0, 0, 1, -7))
}

func TestGenerateDeterministic(t *testing.T) {
	first := collect(-1, -1, 2, 4)
	second := collect(-1, -1, 2, 4)
	// Same inputs must produce bit-identical placements in the same order.
	assert.Equal(t, first, second)
}

func TestGenerateDistinctCenters(t *testing.T) {
	got := collect(-1, -1, 2, 4)
	seen := make(map[[3]float32]bool, len(got))
	for _, p := range got {
		key := [3]float32{p.X, p.Y, p.Z}
		assert.False(t, seen[key], "duplicate center at %v", key)
		seen[key] = true
	}
}

func TestGeneratePlacementsInsideRegion(t *testing.T) {
	const (
		ox, oy = float32(-1), float32(-1)
		size   = float32(2)
	)
	for p := range Generate(ox, oy, size, 4) {
		half := p.Size / 2.0
		assert.GreaterOrEqual(t, p.X-half, ox-1e-5)
		assert.LessOrEqual(t, p.X+half, ox+size+1e-5)
		assert.GreaterOrEqual(t, p.Y-half, oy-1e-5)
		assert.LessOrEqual(t, p.Y+half, oy+size+1e-5)
		assert.InDelta(t, half, p.Z, 1e-6, "cube must rest on the plane")
	}
}

func TestGenerateEarlyStop(t *testing.T) {
	var got []Placement
	for p := range Generate(-1, -1, 2, 5) {
		got = append(got, p)
		if len(got) == 10 {
			break
		}
	}
	require.Len(t, got, 10)

	// A partial walk yields the same prefix as a full one.
	full := collect(-1, -1, 2, 5)
	assert.Equal(t, full[:10], got)
}
