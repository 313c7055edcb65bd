package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStitchTwoEqualRegions(t *testing.T) {
	// Regions (0,2,3) and (4,6,7) are each already split into two zeros
	// then two ones; one swap of d[2:4] with d[4:6] merges them.
	d := []int{0, 0, 1, 1, 0, 0, 1, 1}
	regions := []Region{
		{Left: 0, Split: 2, Right: 3},
		{Left: 4, Split: 6, Right: 7},
	}
	split := Stitch(d, regions)
	require.Equal(t, 4, split)
	for i := 0; i < split; i++ {
		require.Equal(t, 0, d[i])
	}
	for i := split; i < len(d); i++ {
		require.Equal(t, 1, d[i])
	}
}

func TestStitchUnequalRegions(t *testing.T) {
	// Region 1: [0,4) split at 1 (one zero, three ones).
	// Region 2: [4,8) split at 7 (three zeros, one one).
	d := []int{0, 1, 1, 1, 0, 0, 0, 1}
	regions := []Region{
		{Left: 0, Split: 1, Right: 3},
		{Left: 4, Split: 7, Right: 7},
	}
	split := Stitch(d, regions)
	require.Equal(t, 4, split)
	for i := 0; i < split; i++ {
		require.Equalf(t, 0, d[i], "index %d", i)
	}
	for i := split; i < len(d); i++ {
		require.Equalf(t, 1, d[i], "index %d", i)
	}
}

func TestStitchThreeRegions(t *testing.T) {
	d := []int{
		0, 1, 1, // region A: split at 1
		0, 0, 1, // region B: split at 5
		0, 1, 1, 1, // region C: split at 7
	}
	regions := []Region{
		{Left: 0, Split: 1, Right: 2},
		{Left: 3, Split: 5, Right: 5},
		{Left: 6, Split: 7, Right: 9},
	}
	split := Stitch(d, regions)
	require.Equal(t, 4, split)
	for i := 0; i < split; i++ {
		require.Equalf(t, 0, d[i], "index %d", i)
	}
	for i := split; i < len(d); i++ {
		require.Equalf(t, 1, d[i], "index %d", i)
	}
}

func TestStitchAllZeroRegion(t *testing.T) {
	d := []int{0, 0, 0, 0}
	regions := []Region{{Left: 0, Split: 4, Right: 3}}
	split := Stitch(d, regions)
	require.Equal(t, 4, split)
}

func TestStitchAllOneRegion(t *testing.T) {
	d := []int{1, 1, 1, 1}
	regions := []Region{{Left: 0, Split: 0, Right: 3}}
	split := Stitch(d, regions)
	require.Equal(t, 0, split)
}
