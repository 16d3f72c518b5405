package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busline/internal/domain"
)

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "bk-42",
		BookerName:    "John Doe",
		BookerEmail:   "john@example.com",
		BookerPhone:   "+263771234567",
		SeatsBooked:   2,
		TotalPrice:    90,
		SelectedSeats: []int{11, 12},
		PaymentStatus: domain.PaymentCompleted,
		Route: &domain.BusRoute{
			RouteName:     "Express Morning Route",
			StartingPoint: "Harare",
			Destination:   "Bulawayo",
			TravelDate:    "2026-09-25",
			PickupTime:    "07:00 AM",
			DropOffTime:   "11:30 AM",
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	raw, err := Render(completedBooking())
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestRenderRejectsPendingBooking(t *testing.T) {
	b := completedBooking()
	b.PaymentStatus = domain.PaymentPending
	_, err := Render(b)
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestRenderRejectsNil(t *testing.T) {
	_, err := Render(nil)
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestTicketLinesFallBackOnMissingFields(t *testing.T) {
	b := completedBooking()
	b.Route = nil
	b.SelectedSeats = nil
	b.BookerPhone = ""

	lines := ticketLines(b)
	assert.Contains(t, lines, "Seats      : -")
	assert.Contains(t, lines, "Phone      : -")
}
