package checkout

import (
	"context"

	"busline/internal/api"
	"busline/internal/store"
)

// BookingAPI is the slice of the backend client the checkout flow needs.
type BookingAPI interface {
	GetBus(ctx context.Context, id string) (*api.BusDetails, error)
	CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*api.CreateBookingResponse, error)
}

// PaymentRefSaver persists the poll URL / booking id pair so the status
// page can find it after the external payment redirect.
type PaymentRefSaver interface {
	SavePaymentRef(ref store.PaymentRef) error
}
