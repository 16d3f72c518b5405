package seatmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatNumberFormula(t *testing.T) {
	assert.Equal(t, 1, SeatNumber(0, 0))
	assert.Equal(t, 5, SeatNumber(0, 4))
	assert.Equal(t, 6, SeatNumber(1, 0))
	assert.Equal(t, 70, SeatNumber(13, 4))
}

func TestSeatNumbersUniqueAcrossGrid(t *testing.T) {
	seen := make(map[int]bool)
	for r := 0; r < Rows; r++ {
		for i := 0; i < SeatsPerRow; i++ {
			n := SeatNumber(r, i)
			require.False(t, seen[n], "seat %d assigned twice", n)
			require.GreaterOrEqual(t, n, 1)
			require.LessOrEqual(t, n, TotalSeats)
			seen[n] = true
		}
	}
	assert.Len(t, seen, TotalSeats)
}

func TestLayoutSplitsPairAndTriple(t *testing.T) {
	rows := Layout()
	require.Len(t, rows, Rows)
	assert.Equal(t, []int{1, 2}, rows[0].Left)
	assert.Equal(t, []int{3, 4, 5}, rows[0].Right)
	assert.Equal(t, []int{66, 67}, rows[13].Left)
	assert.Equal(t, []int{68, 69, 70}, rows[13].Right)
}

func TestOccupiedSeatClickIsNoOp(t *testing.T) {
	m := New([]int{7}, 3, nil)

	res := m.SelectSeat(7)
	assert.Equal(t, ClickIgnoredOccupied, res)
	assert.Empty(t, m.Selected())
	assert.Equal(t, Occupied, m.Status(7))
}

func TestToggleReturnsToPriorState(t *testing.T) {
	m := New(nil, 3, nil)

	require.Equal(t, ClickSelected, m.SelectSeat(10))
	require.Equal(t, Selected, m.Status(10))

	require.Equal(t, ClickDeselected, m.SelectSeat(10))
	assert.Empty(t, m.Selected())
	assert.Equal(t, Available, m.Status(10))
}

func TestCapacityClickIgnoredButToggleOffStillAllowed(t *testing.T) {
	m := New(nil, 2, nil)
	m.SelectSeat(1)
	m.SelectSeat(2)

	assert.Equal(t, ClickIgnoredCapacity, m.SelectSeat(3))
	assert.Equal(t, []int{1, 2}, m.Selected())

	// deselection is unconditional even at capacity
	assert.Equal(t, ClickDeselected, m.SelectSeat(1))
	assert.Equal(t, []int{2}, m.Selected())
}

func TestCallbackReceivesFullSelectionAfterEveryMutation(t *testing.T) {
	var reported [][]int
	m := New(nil, 3, func(sel []int) { reported = append(reported, sel) })

	m.SelectSeat(4)
	m.SelectSeat(9)
	m.SelectSeat(4) // toggle off
	m.SelectSeat(50)
	m.SelectSeat(200) // out of range, no-op

	require.Len(t, reported, 4, "no-ops must not report")
	assert.Equal(t, []int{4}, reported[0])
	assert.Equal(t, []int{4, 9}, reported[1])
	assert.Equal(t, []int{9}, reported[2])
	assert.Equal(t, []int{9, 50}, reported[3])
}

func TestSetMaxSeatsTrimsMostRecentFirst(t *testing.T) {
	m := New(nil, 4, nil)
	m.SelectSeat(1)
	m.SelectSeat(2)
	m.SelectSeat(3)

	m.SetMaxSeats(2)
	assert.Equal(t, []int{1, 2}, m.Selected())

	m.SetMaxSeats(0) // no-op
	assert.Equal(t, 2, m.MaxSeats())
}

func TestSetOccupiedDropsNowOccupiedSelection(t *testing.T) {
	m := New(nil, 3, nil)
	m.SelectSeat(5)
	m.SelectSeat(6)

	m.SetOccupied([]int{6, 7})
	assert.Equal(t, []int{5}, m.Selected())
	assert.Equal(t, Occupied, m.Status(6))
}

func TestInvariantsHoldUnderRandomClicks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	occupied := []int{2, 13, 27, 33, 41, 58, 70}
	occ := make(map[int]bool)
	for _, n := range occupied {
		occ[n] = true
	}

	m := New(occupied, 3, nil)
	for i := 0; i < 5000; i++ {
		m.SelectSeat(rng.Intn(TotalSeats+4) - 1) // includes out-of-range clicks

		sel := m.Selected()
		require.LessOrEqual(t, len(sel), 3)
		for _, n := range sel {
			require.False(t, occ[n], "occupied seat %d entered the selection", n)
			require.GreaterOrEqual(t, n, 1)
			require.LessOrEqual(t, n, TotalSeats)
		}
	}
}
