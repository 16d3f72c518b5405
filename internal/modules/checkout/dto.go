package checkout

import "strconv"

const (
	MinSeatQuantity = 1
	MaxSeatQuantity = 5
)

// Params are the navigation parameters the checkout page is opened with.
// All values arrive as strings, query-parameter style.
type Params struct {
	BusID string
	Route string
	From  string
	To    string
	Date  string
	Price string
	Seats string
}

// seedQuantity parses the seats parameter, defaulting to 1 when absent or
// non-numeric and clamping into the allowed range.
func (p Params) seedQuantity() int {
	n, err := strconv.Atoi(p.Seats)
	if err != nil {
		return MinSeatQuantity
	}
	if n < MinSeatQuantity {
		return MinSeatQuantity
	}
	if n > MaxSeatQuantity {
		return MaxSeatQuantity
	}
	return n
}

// pricePerSeat parses the list price passed through navigation. The integer
// parse mirrors the source of truth; a fractional string falls back to
// truncation and anything unparsable counts as zero.
func (p Params) pricePerSeat() int {
	if n, err := strconv.Atoi(p.Price); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(p.Price, 64); err == nil {
		return int(f)
	}
	return 0
}

// Result is what a successful submission hands back to the caller, which is
// expected to navigate to RedirectURL.
type Result struct {
	BookingID   string
	PollURL     string
	RedirectURL string
}
