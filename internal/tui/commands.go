package tui

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"busline/internal/api"
	"busline/internal/domain"
	"busline/internal/modules/paystatus"
	"busline/internal/ticket"
)

func (m appModel) fetchBusesCmd() tea.Cmd {
	seq := m.lists.BeginFetch()
	q := m.lists.Query()
	client := m.client
	return func() tea.Msg {
		resp, err := client.ListBuses(context.Background(), api.ListBusesParams{
			Page:       q.Page,
			PerPage:    q.PerPage,
			SortBy:     q.SortBy,
			SortOrder:  string(q.SortOrder),
			Keyword:    q.Keyword,
			TravelDate: q.Date,
		})
		return busesMsg{seq: seq, resp: resp, err: err}
	}
}

func (m appModel) loadBusCmd() tea.Cmd {
	svc := m.checkout
	return func() tea.Msg {
		return busLoadedMsg{err: svc.Load(context.Background())}
	}
}

func (m appModel) submitCmd() tea.Cmd {
	svc := m.checkout
	return func() tea.Msg {
		res, err := svc.Submit(context.Background())
		return submitMsg{result: res, err: err}
	}
}

// startPolling launches the status poller in its own goroutine and turns
// its callback deliveries into messages via a channel. The final
// pollDoneMsg carries the terminal booking.
func (m *appModel) startPolling() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan tea.Msg, 16)
	m.pollCh = ch
	m.cancelPoll = cancel

	poller := paystatus.NewPoller(m.client, m.result.BookingID, m.cfg.PollInterval, m.loggerf)
	go func() {
		booking, err := poller.Run(ctx, func(u paystatus.Update) {
			ch <- statusMsg{update: u}
		})
		ch <- pollDoneMsg{booking: booking, err: err}
	}()

	return m.waitStatusCmd()
}

func (m appModel) waitStatusCmd() tea.Cmd {
	ch := m.pollCh
	return func() tea.Msg {
		return <-ch
	}
}

func (m appModel) writeTicketCmd(b *domain.Booking) tea.Cmd {
	return func() tea.Msg {
		raw, err := ticket.Render(b)
		if err != nil {
			return ticketMsg{err: err}
		}
		path := fmt.Sprintf("ticket-%s.pdf", b.ID)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return ticketMsg{err: err}
		}
		return ticketMsg{path: path}
	}
}

func (m appModel) fetchBookingsCmd() tea.Cmd {
	client := m.client
	perPage := m.cfg.PerPage
	return func() tea.Msg {
		resp, err := client.ListBookings(context.Background(), api.ListBookingsParams{
			Page:    1,
			PerPage: perPage,
		})
		return bookingsMsg{resp: resp, err: err}
	}
}

func (m appModel) saveTokenCmd(token string) tea.Cmd {
	st := m.st
	return func() tea.Msg {
		return tokenSavedMsg{err: st.SetToken(token)}
	}
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS for opening browser: %s", runtime.GOOS)
	}
}
