package tui

import (
	"fmt"
	"strings"

	"busline/internal/directory"
	"busline/internal/domain"
	"busline/internal/modules/liststate"
	"busline/internal/modules/seatmap"
)

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSearch:
		return header + "\n\n" + m.searchView()
	case stateLoadingBuses:
		return header + "\n\n" + m.loadingView("Searching buses")
	case stateBusList:
		return header + "\n\n" + m.busListView()
	case stateLoadingBus:
		return header + "\n\n" + m.loadingView("Loading seat availability")
	case stateSeatSelect:
		return header + "\n\n" + m.seatView()
	case statePayerForm:
		return header + "\n\n" + m.payerView()
	case stateSubmitting:
		return header + "\n\n" + m.loadingView("Submitting booking")
	case statePayment:
		return header + "\n\n" + m.paymentView()
	case stateLoadingBookings:
		return header + "\n\n" + m.loadingView("Loading bookings")
	case stateBookings:
		return header + "\n\n" + m.bookingsView()
	case stateLogin:
		return header + "\n\n" + m.loginView()
	case stateError:
		return header + "\n\n" + errStyle.Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := titleStyle.Render("Busline")
	var sub []string
	if m.checkout != nil && m.state != stateSearch && m.state != stateBusList {
		p := m.checkout.Params()
		sub = append(sub, fmt.Sprintf("%s: %s to %s on %s", p.Route, p.From, p.To, p.Date))
	}
	meta := strings.Join(sub, "  ")
	if meta != "" {
		meta = "\n" + faintStyle.Render(meta)
	}
	hints := "ctrl+c quit"
	switch m.state {
	case stateSearch:
		hints = "ctrl+c quit • tab next field • ctrl+a autocomplete city • enter search • ctrl+b my bookings"
	case stateBusList:
		hints = "ctrl+c quit • esc back • up/down move • enter select • left/right page • s sort • r refresh • c clear filters"
	case stateSeatSelect:
		hints = "ctrl+c quit • esc back • arrows move • space toggle seat • +/- passengers • tab continue"
	case statePayerForm:
		hints = "ctrl+c quit • esc back • tab next field • enter pay"
	case statePayment:
		hints = "ctrl+c quit • o open payment page • esc back when settled"
	case stateBookings:
		hints = "ctrl+c quit • esc back"
	case stateLogin:
		hints = "ctrl+c quit • enter save token • esc skip"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) loadingView(what string) string {
	return fmt.Sprintf("%s %s...", m.spinner.View(), what)
}

func (m appModel) searchView() string {
	labels := [searchFieldCount]string{"From", "To", "Travel date", "Passengers"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Find your bus") + "\n\n")
	for i, in := range m.searchInputs {
		b.WriteString(fmt.Sprintf("%-12s %s\n", labels[i], in.View()))
	}
	if m.searchFocus == searchFieldFrom || m.searchFocus == searchFieldTo {
		if sugg := citySuggestions(m.searchInputs[m.searchFocus].Value()); sugg != "" {
			b.WriteString("\n" + hint("Cities: "+sugg) + "\n")
		}
	}
	return b.String()
}

// citySuggestions lists matching directory cities for the typed prefix,
// capped so the line never wraps.
func citySuggestions(term string) string {
	cities := directory.Filter(strings.TrimSpace(term))
	if len(cities) == 0 {
		return ""
	}
	if len(cities) > 5 {
		cities = cities[:5]
	}
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func (m appModel) busListView() string {
	if len(m.buses) == 0 {
		return "No buses found for this search.\n\n" + hint("Press c to clear filters or esc to search again.")
	}
	var b strings.Builder
	q := m.lists.Query()
	order := "earliest first"
	if q.SortOrder == liststate.Desc {
		order = "latest first"
	}
	b.WriteString(fmt.Sprintf("%d routes, %s\n\n", m.totalBuses, order))
	for i, bus := range m.buses {
		line := fmt.Sprintf("%s  %s -> %s  %s %s  $%.0f  %d seats  %s",
			bus.TravelDate, bus.StartingPoint, bus.Destination,
			bus.PickupTime, bus.DropOffTime, bus.Price, bus.SeatsAvailable, bus.BusType)
		if i == m.cursor {
			b.WriteString(cursorRowStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + hint(fmt.Sprintf("Page %d/%d", m.lists.Page(), m.lists.TotalPages())))
	return b.String()
}

func (m appModel) seatView() string {
	seats := m.checkout.Seats()
	if seats == nil {
		return errStyle.Render("Seat availability did not load.") + "\n\n" + hint("Press esc to go back.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Pick %d seat(s), %d selected, total $%d\n\n",
		m.checkout.SeatQuantity(), len(seats.Selected()), m.checkout.TotalPrice()))
	b.WriteString(renderSeatGrid(seats, m.seatCur+1))
	b.WriteString("\n" + hint("available ") + seatSelectedStyle.Render(" selected ") + " " + seatOccupiedStyle.Render("occupied"))
	return b.String()
}

// renderSeatGrid draws the cabin: two seats, an aisle, then three, one
// bus row per line. cursorSeat is the seat number under the cursor.
func renderSeatGrid(seats *seatmap.Map, cursorSeat int) string {
	var b strings.Builder
	for _, row := range seatmap.Layout() {
		for _, n := range row.Left {
			b.WriteString(renderSeat(seats, n, cursorSeat) + " ")
		}
		b.WriteString("   ")
		for _, n := range row.Right {
			b.WriteString(renderSeat(seats, n, cursorSeat) + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSeat(seats *seatmap.Map, n, cursorSeat int) string {
	cell := fmt.Sprintf("%2d", n)
	if n == cursorSeat {
		return seatCursorStyle.Render(cell)
	}
	switch seats.Status(n) {
	case seatmap.Occupied:
		return seatOccupiedStyle.Render(cell)
	case seatmap.Selected:
		return seatSelectedStyle.Render(cell)
	default:
		return seatAvailableStyle.Render(cell)
	}
}

func (m appModel) payerView() string {
	labels := [payerFieldCount]string{"Name", "Email", "Phone"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Who is travelling?") + "\n\n")
	for i, in := range m.payerInputs {
		b.WriteString(fmt.Sprintf("%-8s %s\n", labels[i], in.View()))
	}
	seats := m.checkout.Seats()
	if seats != nil {
		b.WriteString(fmt.Sprintf("\nSeats %s, total $%d\n", joinInts(seats.Selected()), m.checkout.TotalPrice()))
	}
	return b.String()
}

func (m appModel) paymentView() string {
	var b strings.Builder
	if m.result != nil {
		b.WriteString(fmt.Sprintf("Booking %s created.\n", m.result.BookingID))
		if m.result.RedirectURL != "" {
			b.WriteString("Pay at: " + m.result.RedirectURL + "\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.booking != nil && m.booking.PaymentStatus.Terminal():
		if m.booking.PaymentStatus == domain.PaymentCompleted {
			b.WriteString(okStyle.Render("Payment completed.") + "\n")
			if m.ticketPath != "" {
				b.WriteString("Ticket saved to " + m.ticketPath + "\n")
			}
			if m.ticketErr != nil {
				b.WriteString(warnStyle.Render("Ticket not saved: "+m.ticketErr.Error()) + "\n")
			}
		} else {
			b.WriteString(errStyle.Render("Payment failed.") + "\n")
		}
		b.WriteString("\n" + hint("Press esc to start over."))
	case m.pollErr != nil:
		b.WriteString(fmt.Sprintf("%s waiting for payment, last check failed: %v\n", m.spinner.View(), m.pollErr))
	default:
		b.WriteString(fmt.Sprintf("%s waiting for payment confirmation...\n", m.spinner.View()))
	}
	return b.String()
}

func (m appModel) bookingsView() string {
	if len(m.groups) == 0 {
		return "No bookings yet.\n\n" + hint("Press esc to go back.")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d bookings across %d days\n\n", m.groupsMeta.Total, m.groupsMeta.GroupedDays))
	for _, g := range m.groups {
		b.WriteString(titleStyle.Render(g.Date) + faintStyle.Render(fmt.Sprintf("  %d bookings, $%.2f", g.TotalBookings, g.TotalAmount)) + "\n")
		for _, bk := range g.Bookings {
			b.WriteString(fmt.Sprintf("  %s  %s  seats %s  $%.2f  %s\n",
				bk.ID, bk.BookerName, joinInts(bk.SelectedSeats), bk.TotalPrice, bk.PaymentStatus))
		}
	}
	return b.String()
}

func (m appModel) loginView() string {
	return titleStyle.Render("Session expired") + "\n\n" +
		"Your session is no longer valid. Paste a fresh API token to continue.\n\n" +
		m.tokenInput.View() + "\n"
}

func joinInts(ns []int) string {
	if len(ns) == 0 {
		return "-"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ",")
}
