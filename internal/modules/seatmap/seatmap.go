// Package seatmap models the fixed coach layout: 14 rows of 5 seats, a
// left pair and a right triple split by an aisle that carries no numbering
// gap. Selection can never include an occupied seat and never grows past
// the configured capacity.
package seatmap

const (
	Rows        = 14
	SeatsPerRow = 5
	TotalSeats  = Rows * SeatsPerRow

	LeftSeats = 2 // local indexes {0,1}; the right triple is {2,3,4}
)

type Status int

const (
	Available Status = iota
	Selected
	Occupied
)

// ClickResult names what a click did so the caller may surface feedback;
// the model itself stays silent on no-ops.
type ClickResult int

const (
	ClickIgnoredOccupied ClickResult = iota
	ClickIgnoredCapacity
	ClickIgnoredInvalid
	ClickSelected
	ClickDeselected
)

// SeatNumber maps a 0-indexed row and local seat index to the 1..70
// row-major seat number.
func SeatNumber(row, localIndex int) int {
	return row*SeatsPerRow + localIndex + 1
}

type Map struct {
	occupied map[int]bool
	selected []int // in selection order, oldest first
	maxSeats int

	// onSelect receives the full updated selection after every mutation.
	onSelect func(selected []int)
}

func New(occupiedSeats []int, maxSeats int, onSelect func([]int)) *Map {
	if maxSeats < 1 {
		maxSeats = 1
	}
	occ := make(map[int]bool, len(occupiedSeats))
	for _, n := range occupiedSeats {
		occ[n] = true
	}
	return &Map{
		occupied: occ,
		maxSeats: maxSeats,
		onSelect: onSelect,
	}
}

func (m *Map) MaxSeats() int { return m.maxSeats }

// Selected returns the selection in selection order.
func (m *Map) Selected() []int {
	out := make([]int, len(m.selected))
	copy(out, m.selected)
	return out
}

func (m *Map) Status(seatNumber int) Status {
	if m.occupied[seatNumber] {
		return Occupied
	}
	for _, n := range m.selected {
		if n == seatNumber {
			return Selected
		}
	}
	return Available
}

// SelectSeat applies one click. Occupied seats are untouchable, a selected
// seat toggles off unconditionally, and a new seat is only added below
// capacity. Every state change reports the full selection to the callback.
func (m *Map) SelectSeat(seatNumber int) ClickResult {
	if seatNumber < 1 || seatNumber > TotalSeats {
		return ClickIgnoredInvalid
	}
	if m.occupied[seatNumber] {
		return ClickIgnoredOccupied
	}
	for i, n := range m.selected {
		if n == seatNumber {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			m.report()
			return ClickDeselected
		}
	}
	if len(m.selected) >= m.maxSeats {
		return ClickIgnoredCapacity
	}
	m.selected = append(m.selected, seatNumber)
	m.report()
	return ClickSelected
}

// SetMaxSeats changes capacity. Shrinking below the current selection
// drops the most recently selected seats so the bound always holds.
func (m *Map) SetMaxSeats(maxSeats int) {
	if maxSeats < 1 {
		return
	}
	m.maxSeats = maxSeats
	if len(m.selected) > maxSeats {
		m.selected = m.selected[:maxSeats]
		m.report()
	}
}

// SetOccupied replaces the occupied set, e.g. after a bus-details refresh.
// Any selected seat that became occupied is dropped.
func (m *Map) SetOccupied(occupiedSeats []int) {
	occ := make(map[int]bool, len(occupiedSeats))
	for _, n := range occupiedSeats {
		occ[n] = true
	}
	m.occupied = occ

	kept := m.selected[:0]
	changed := false
	for _, n := range m.selected {
		if occ[n] {
			changed = true
			continue
		}
		kept = append(kept, n)
	}
	m.selected = kept
	if changed {
		m.report()
	}
}

func (m *Map) report() {
	if m.onSelect != nil {
		m.onSelect(m.Selected())
	}
}

// Row is one bench of the layout for rendering: the left pair, then the
// right triple.
type Row struct {
	Left  []int
	Right []int
}

func Layout() []Row {
	rows := make([]Row, Rows)
	for r := 0; r < Rows; r++ {
		row := Row{}
		for i := 0; i < SeatsPerRow; i++ {
			n := SeatNumber(r, i)
			if i < LeftSeats {
				row.Left = append(row.Left, n)
			} else {
				row.Right = append(row.Right, n)
			}
		}
		rows[r] = row
	}
	return rows
}
