// Package checkout owns the draft booking from page load to submission:
// bus lookup, occupied-seat derivation, seat selection, payer details,
// price computation and the redirect-to-payment handoff.
package checkout

import (
	"context"
	"fmt"
	"sync"

	"busline/internal/api"
	"busline/internal/domain"
	"busline/internal/modules/seatmap"
	"busline/internal/store"
)

type Service struct {
	client  BookingAPI
	refs    PaymentRefSaver
	loggerf func(format string, args ...interface{})

	mu          sync.Mutex
	params      Params
	quantity    int
	payer       domain.PayerDetails
	seats       *seatmap.Map
	bus         *api.BusDetails
	occupied    []int
	loadErr     error
	loading     bool
	submitting  bool
	redirecting bool
}

func NewService(client BookingAPI, refs PaymentRefSaver, params Params, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		client:   client,
		refs:     refs,
		loggerf:  loggerf,
		params:   params,
		quantity: params.seedQuantity(),
	}
}

// Load fetches the bus details and derives the occupied-seat list by
// flattening the selected seats of every booking already on the route.
// On failure the error is recorded and seat selection stays unavailable;
// the caller may invoke Load again (manual refresh, never automatic).
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	bus, err := s.client.GetBus(ctx, s.params.BusID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.loadErr = fmt.Errorf("failed to fetch bus details: %w", err)
		s.loggerf("level=error msg=bus details fetch failed bus_id=%s err=%v", s.params.BusID, err)
		return s.loadErr
	}

	occupied := make([]int, 0)
	for _, b := range bus.Bookings {
		occupied = append(occupied, b.SelectedSeats...)
	}

	s.bus = bus
	s.occupied = occupied
	s.loadErr = nil
	if s.seats == nil {
		s.seats = seatmap.New(occupied, s.quantity, nil)
	} else {
		s.seats.SetOccupied(occupied)
	}
	return nil
}

func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Service) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *Service) Bus() *api.BusDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bus
}

func (s *Service) Params() Params { return s.params }

// Seats exposes the seat map; nil until a successful Load, which is how
// seat selection stays halted after a fetch failure.
func (s *Service) Seats() *seatmap.Map {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats
}

func (s *Service) SeatQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantity
}

// IncrementSeats and DecrementSeats move the quantity inside [1,5];
// anything outside the range is a silent no-op. Shrinking capacity trims
// the selection through the seat map so the draft never carries more
// selected seats than it will submit.
func (s *Service) IncrementSeats() { s.setQuantity(s.SeatQuantity() + 1) }

func (s *Service) DecrementSeats() { s.setQuantity(s.SeatQuantity() - 1) }

func (s *Service) setQuantity(n int) {
	if n < MinSeatQuantity || n > MaxSeatQuantity {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantity = n
	if s.seats != nil {
		s.seats.SetMaxSeats(n)
	}
}

func (s *Service) SetPayer(p domain.PayerDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payer = p
}

func (s *Service) Payer() domain.PayerDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payer
}

// TotalPrice derives price-per-seat × quantity from the navigation price,
// which stays authoritative over the fetched bus details.
func (s *Service) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.pricePerSeat() * s.quantity
}

func (s *Service) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *Service) Redirecting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirecting
}

// Submit validates the draft in order (payer details first, then the exact
// seat-count match), creates the booking and persists the payment poll
// reference before handing the redirect URL back. Validation failures abort
// before any network call; any failure leaves the draft untouched so the
// user can correct and retry.
func (s *Service) Submit(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	if s.submitting || s.redirecting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if s.payer.Name == "" || s.payer.Email == "" || s.payer.Phone == "" {
		s.mu.Unlock()
		return nil, ErrPayerDetails
	}
	if s.seats == nil {
		s.mu.Unlock()
		return nil, ErrNotLoaded
	}
	selected := s.seats.Selected()
	if len(selected) != s.quantity {
		s.mu.Unlock()
		return nil, ErrSeatCountMismatch
	}

	req := api.CreateBookingRequest{
		BusID:         s.params.BusID,
		SeatsBooked:   s.quantity,
		TotalPrice:    float64(s.params.pricePerSeat() * s.quantity),
		BookerName:    s.payer.Name,
		BookerPhone:   s.payer.Phone,
		BookerEmail:   s.payer.Email,
		Passengers:    []string{},
		SelectedSeats: selected,
	}
	s.submitting = true
	s.mu.Unlock()

	resp, err := s.client.CreateBooking(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		s.loggerf("level=error msg=booking create failed bus_id=%s err=%v", s.params.BusID, err)
		return nil, err
	}

	if resp.Payment.PollURL != "" && s.refs != nil {
		ref := store.PaymentRef{PollURL: resp.Payment.PollURL, BookingID: resp.Booking.ID}
		if err := s.refs.SavePaymentRef(ref); err != nil {
			s.loggerf("level=error msg=failed to persist payment ref booking_id=%s err=%v", resp.Booking.ID, err)
		}
	}

	if resp.Payment.RedirectURL == "" {
		return nil, ErrNoRedirectURL
	}

	s.redirecting = true
	s.loggerf("level=info msg=booking created booking_id=%s total=%.0f seats=%d", resp.Booking.ID, req.TotalPrice, req.SeatsBooked)
	return &Result{
		BookingID:   resp.Booking.ID,
		PollURL:     resp.Payment.PollURL,
		RedirectURL: resp.Payment.RedirectURL,
	}, nil
}
