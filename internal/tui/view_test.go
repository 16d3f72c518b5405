package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busline/internal/modules/seatmap"
)

func TestCitySuggestionsFiltersAndCaps(t *testing.T) {
	assert.Equal(t, "Harare", citySuggestions("hara"))

	all := citySuggestions("")
	assert.Len(t, strings.Split(all, ", "), 5)

	assert.Empty(t, citySuggestions("Gotham"))
}

func TestRenderSeatGridShape(t *testing.T) {
	seats := seatmap.New([]int{3}, 2, nil)
	seats.SelectSeat(1)

	grid := renderSeatGrid(seats, 6)
	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")
	require.Len(t, lines, seatmap.Rows)

	// every seat number appears exactly once
	assert.Contains(t, grid, "70")
	assert.Equal(t, 1, strings.Count(grid, "70"))
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "11,12", joinInts([]int{11, 12}))
	assert.Equal(t, "-", joinInts(nil))
}
