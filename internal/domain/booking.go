package domain

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Terminal reports whether no further status transitions are possible.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

type PayerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is the server-confirmed record. The pre-submission draft lives in
// the checkout package and never leaves the process.
type Booking struct {
	ID            string        `json:"_id"`
	BusRouteID    string        `json:"busRouteId"`
	BookingDate   string        `json:"bookingDate"`
	SeatsBooked   int           `json:"seatsBooked"`
	TotalPrice    float64       `json:"totalPrice"`
	BookerName    string        `json:"bookerName"`
	BookerEmail   string        `json:"bookerEmail"`
	BookerPhone   string        `json:"bookerPhone"`
	SelectedSeats []int         `json:"selectedSeats"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PollURL       string        `json:"pollUrl,omitempty"`

	Route *BusRoute `json:"busRoute,omitempty"`
}
