// Package ticket renders a confirmed booking to a printable PDF, the
// stand-in for the confirmation page's "Print Ticket" action.
package ticket

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"

	"busline/internal/domain"
)

var ErrNotCompleted = errors.New("ticket: booking payment is not completed")

// Render produces a one-page A4 ticket for a completed booking.
func Render(b *domain.Booking) ([]byte, error) {
	if b == nil || b.PaymentStatus != domain.PaymentCompleted {
		return nil, ErrNotCompleted
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bus Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range ticketLines(b) {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Show this ticket at the bus station and arrive at least 30 minutes before departure.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	return buf.Bytes(), nil
}

func ticketLines(b *domain.Booking) []string {
	lines := []string{
		fmt.Sprintf("Booking ID : %s", b.ID),
		fmt.Sprintf("Name       : %s", safe(b.BookerName)),
		fmt.Sprintf("Email      : %s", safe(b.BookerEmail)),
		fmt.Sprintf("Phone      : %s", safe(b.BookerPhone)),
		fmt.Sprintf("Seats      : %s", joinSeats(b.SelectedSeats)),
		fmt.Sprintf("Total      : $%.2f", b.TotalPrice),
		fmt.Sprintf("Status     : %s", b.PaymentStatus),
	}
	if b.Route != nil {
		lines = append(lines,
			fmt.Sprintf("Route      : %s", safe(b.Route.RouteName)),
			fmt.Sprintf("From/To    : %s -> %s", safe(b.Route.StartingPoint), safe(b.Route.Destination)),
			fmt.Sprintf("Date       : %s (%s - %s)", safe(b.Route.TravelDate), safe(b.Route.PickupTime), safe(b.Route.DropOffTime)),
		)
	}
	return lines
}

func joinSeats(seats []int) string {
	if len(seats) == 0 {
		return "-"
	}
	parts := make([]string, len(seats))
	for i, n := range seats {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
