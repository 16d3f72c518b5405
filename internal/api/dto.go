package api

import "busline/internal/domain"

type ListMeta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	TotalPages  int `json:"totalPages"`
}

type BusListResponse struct {
	Buses []domain.BusRoute `json:"buses"`
	Meta  ListMeta          `json:"meta"`
}

// EmbeddedBooking is the slice of an existing booking attached to a bus
// route; only the claimed seats matter to the client.
type EmbeddedBooking struct {
	ID            string `json:"_id"`
	SeatsBooked   int    `json:"seatsBooked"`
	SelectedSeats []int  `json:"selectedSeats"`
}

type BusDetails struct {
	domain.BusRoute
	Bookings []EmbeddedBooking `json:"bookings"`
}

type CreateBookingRequest struct {
	BusID         string   `json:"busId"`
	SeatsBooked   int      `json:"seatsBooked"`
	TotalPrice    float64  `json:"totalPrice"`
	BookerName    string   `json:"bookerName"`
	BookerPhone   string   `json:"bookerPhone"`
	BookerEmail   string   `json:"bookerEmail"`
	Passengers    []string `json:"passengers"`
	SelectedSeats []int    `json:"selectedSeats"`
}

type PaymentInit struct {
	RedirectURL string `json:"redirectUrl"`
	PollURL     string `json:"pollUrl"`
}

type CreateBookingResponse struct {
	Booking domain.Booking `json:"booking"`
	Payment PaymentInit    `json:"payment"`
}

type BookingGroup struct {
	Date          string           `json:"date"`
	Bookings      []domain.Booking `json:"bookings"`
	TotalBookings int              `json:"totalBookings"`
	TotalAmount   float64          `json:"totalAmount"`
}

type BookingListMeta struct {
	Total       int `json:"total"`
	GroupedDays int `json:"groupedDays"`
}

type BookingListResponse struct {
	Groups []BookingGroup  `json:"data"`
	Meta   BookingListMeta `json:"meta"`
}

type CreateBusRequest struct {
	RouteName      string  `json:"routeName"`
	TravelDate     string  `json:"travelDate"`
	PickupTime     string  `json:"pickupTime"`
	DropOffTime    string  `json:"dropOffTime"`
	StartingPoint  string  `json:"startingPoint"`
	Destination    string  `json:"destination"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seatsAvailable"`
	BusType        string  `json:"busType"`
}
