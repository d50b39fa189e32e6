package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleMap = []string{
	"..##.......",
	"#...#...#..",
	".#....#..#.",
	"..#.#...#.#",
	".#...##..#.",
	"..#.##.....",
	".#.#.#....#",
	".#........#",
	"#.##...#...",
	"#...##....#",
	".#..#...#.#",
}

func TestTravelToExit_Sample(t *testing.T) {
	g := parseGrid(sampleMap)
	tests := []struct {
		s    slope
		want int
	}{
		{slope{1, 1}, 2},
		{slope{3, 1}, 7},
		{slope{5, 1}, 3},
		{slope{7, 1}, 4},
		{slope{1, 2}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.s.String(), func(t *testing.T) {
			got, err := travelToExit(g, tt.s, point{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTravelSlopes_Sample(t *testing.T) {
	got, err := travelSlopes(parseGrid(sampleMap), defaultSlopes, point{})
	require.NoError(t, err)
	assert.Equal(t, 336, got)
}

// A one-row map is left on the first step, before any cell is inspected.
func TestTravelToExit_SingleRow(t *testing.T) {
	for _, row := range []string{"#", "##", ".#.", "###"} {
		got, err := travelToExit(parseGrid([]string{row}), slope{DX: 1, DY: 1}, point{})
		require.NoError(t, err)
		assert.Equal(t, 0, got, "row %q", row)
	}
}

func TestTravelToExit_WrapsPerRow(t *testing.T) {
	g := parseGrid([]string{
		".",
		"..#",
		"#.",
		"",
		"....#",
	})
	// x: 4%3=1, (1+4)%2=1, row 3 empty keeps 5, (5+4)%5=4 is a tree.
	got, err := travelToExit(g, slope{DX: 4, DY: 1}, point{})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Negative dx wraps to the left: -1 -> 2 is a tree, 1, row 3 keeps 0,
	// -1 -> 4 is a tree.
	got, err = travelToExit(g, slope{DX: -1, DY: 1}, point{})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

// The wrapped x is carried into the next step, so a wider row after a narrow
// one sees the narrow row's remainder rather than the running total.
func TestTravelToExit_CarriesWrappedX(t *testing.T) {
	g := parseGrid([]string{".....", "..", "#.."})
	// x: 3%2=1, then (1+3)%3=1 is open. Without carrying, 6%3=0 would be a tree.
	got, err := travelToExit(g, slope{DX: 3, DY: 1}, point{})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	g = parseGrid([]string{".", "..", "....#"})
	// x: 3%2=1, then (1+3)%5=4 is a tree. Without carrying, 6%5=1 would be open.
	got, err = travelToExit(g, slope{DX: 3, DY: 1}, point{})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestTravelToExit_StartPosition(t *testing.T) {
	g := parseGrid(sampleMap)
	got, err := travelToExit(g, slope{DX: 3, DY: 1}, point{X: 0, Y: len(sampleMap) - 1})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = travelToExit(g, slope{DX: 1, DY: 1}, point{X: 1, Y: 8})
	require.NoError(t, err)
	// (2,9) is '.', (3,10) is '.'.
	assert.Equal(t, 0, got)
}

func TestTravelToExit_EmptyGrid(t *testing.T) {
	got, err := travelToExit(nil, slope{DX: 3, DY: 1}, point{})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestTravelToExit_InvalidSlope(t *testing.T) {
	g := parseGrid(sampleMap)
	for _, s := range []slope{{3, 0}, {1, -1}} {
		_, err := travelToExit(g, s, point{})
		assert.True(t, errors.Is(err, errInvalidSlope), "slope %s: got %v", s, err)
	}

	_, err := travelSlopes(g, []slope{{1, 1}, {2, 0}}, point{})
	assert.True(t, errors.Is(err, errInvalidSlope))
}

func TestTravelSlopes_NoSlopes(t *testing.T) {
	got, err := travelSlopes(parseGrid(sampleMap), nil, point{})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
