// Package tui is the terminal front door: search for a route, pick seats,
// enter payer details, submit the booking and watch the payment until it
// settles. Each screen is one appState; everything async arrives as a
// typed message.
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"busline/internal/api"
	"busline/internal/config"
	"busline/internal/directory"
	"busline/internal/domain"
	"busline/internal/modules/checkout"
	"busline/internal/modules/liststate"
	"busline/internal/modules/paystatus"
	"busline/internal/modules/seatmap"
	"busline/internal/store"
)

type appState int

const (
	stateSearch appState = iota
	stateLoadingBuses
	stateBusList
	stateLoadingBus
	stateSeatSelect
	statePayerForm
	stateSubmitting
	statePayment
	stateLoadingBookings
	stateBookings
	stateLogin
	stateError
)

const (
	searchFieldFrom = iota
	searchFieldTo
	searchFieldDate
	searchFieldPassengers
	searchFieldCount
)

const (
	payerFieldName = iota
	payerFieldEmail
	payerFieldPhone
	payerFieldCount
)

type appModel struct {
	cfg     *config.Config
	client  *api.Client
	st      *store.Store
	loggerf func(format string, args ...interface{})

	state     appState
	lastState appState
	err       error

	width  int
	height int

	searchInputs []textinput.Model
	searchFocus  int

	lists      *liststate.Controller
	buses      []domain.BusRoute
	totalBuses int
	cursor     int

	checkout *checkout.Service
	seatCur  int

	payerInputs []textinput.Model
	payerFocus  int

	result     *checkout.Result
	booking    *domain.Booking
	pollErr    error
	pollCh     chan tea.Msg
	cancelPoll context.CancelFunc
	ticketPath string
	ticketErr  error

	groups     []api.BookingGroup
	groupsMeta api.BookingListMeta

	tokenInput textinput.Model

	spinner spinner.Model
}

type errMsg struct {
	err error
}

type busesMsg struct {
	seq  uint64
	resp *api.BusListResponse
	err  error
}

type busLoadedMsg struct {
	err error
}

type submitMsg struct {
	result *checkout.Result
	err    error
}

type statusMsg struct {
	update paystatus.Update
}

type pollDoneMsg struct {
	booking *domain.Booking
	err     error
}

type ticketMsg struct {
	path string
	err  error
}

type bookingsMsg struct {
	resp *api.BookingListResponse
	err  error
}

type tokenSavedMsg struct {
	err error
}

func New(cfg *config.Config, client *api.Client, st *store.Store, loggerf func(format string, args ...interface{})) tea.Model {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	m := appModel{
		cfg:     cfg,
		client:  client,
		st:      st,
		loggerf: loggerf,
		state:   stateSearch,
		lists:   liststate.New(cfg.PerPage),
	}

	m.searchInputs = make([]textinput.Model, searchFieldCount)
	for i := range m.searchInputs {
		m.searchInputs[i] = textinput.New()
		m.searchInputs[i].CharLimit = 64
	}
	m.searchInputs[searchFieldFrom].Placeholder = "Harare"
	m.searchInputs[searchFieldTo].Placeholder = "Bulawayo"
	m.searchInputs[searchFieldDate].Placeholder = "2026-09-25"
	m.searchInputs[searchFieldPassengers].Placeholder = "1"
	m.searchInputs[searchFieldPassengers].CharLimit = 1
	m.searchInputs[searchFieldFrom].Focus()

	m.payerInputs = make([]textinput.Model, payerFieldCount)
	for i := range m.payerInputs {
		m.payerInputs[i] = textinput.New()
		m.payerInputs[i].CharLimit = 80
	}
	m.payerInputs[payerFieldName].Placeholder = "Full name"
	m.payerInputs[payerFieldEmail].Placeholder = "you@example.com"
	m.payerInputs[payerFieldPhone].Placeholder = "+263 77 123 4567"

	m.tokenInput = textinput.New()
	m.tokenInput.Placeholder = "Paste API token"
	m.tokenInput.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingBuses, stateLoadingBus, stateSubmitting, statePayment, stateLoadingBookings:
		return true
	}
	return false
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case spinner.TickMsg:
		if !m.isLoadingState() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case errMsg:
		return m.fail(msg.err)

	case busesMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if !m.lists.Apply(msg.seq, msg.resp.Meta.TotalPages) {
			return m, nil
		}
		m.buses = msg.resp.Buses
		m.totalBuses = msg.resp.Meta.Total
		if m.cursor >= len(m.buses) {
			m.cursor = 0
		}
		m.state = stateBusList
		return m, nil

	case busLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.seatCur = 0
		m.state = stateSeatSelect
		return m, nil

	case submitMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.result = msg.result
		m.booking = nil
		m.pollErr = nil
		m.state = statePayment
		pollCmd := m.startPolling()
		return m, tea.Batch(pollCmd, m.spinner.Tick)

	case statusMsg:
		if msg.update.Err != nil {
			m.pollErr = msg.update.Err
		} else {
			m.pollErr = nil
			m.booking = msg.update.Booking
		}
		return m, m.waitStatusCmd()

	case pollDoneMsg:
		if m.cancelPoll != nil {
			m.cancelPoll()
			m.cancelPoll = nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				return m, nil
			}
			return m.fail(msg.err)
		}
		m.booking = msg.booking
		if msg.booking.PaymentStatus == domain.PaymentCompleted {
			return m, m.writeTicketCmd(msg.booking)
		}
		return m, nil

	case ticketMsg:
		m.ticketPath = msg.path
		m.ticketErr = msg.err
		return m, nil

	case bookingsMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.groups = msg.resp.Groups
		m.groupsMeta = msg.resp.Meta
		m.state = stateBookings
		return m, nil

	case tokenSavedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.tokenInput.SetValue("")
		m.tokenInput.Blur()
		m.state = stateSearch
		cmd := m.focusSearch(m.searchFocus)
		return m, cmd
	}

	return m.updateComponents(msg)
}

func (m appModel) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateSearch:
		m.searchInputs[m.searchFocus], cmd = m.searchInputs[m.searchFocus].Update(msg)
	case statePayerForm:
		m.payerInputs[m.payerFocus], cmd = m.payerInputs[m.payerFocus].Update(msg)
	case stateLogin:
		m.tokenInput, cmd = m.tokenInput.Update(msg)
	}
	return m, cmd
}

// fail routes request errors: an expired or missing session goes to the
// login screen, everything else to the error screen with a way back.
func (m appModel) fail(err error) (tea.Model, tea.Cmd) {
	if m.cancelPoll != nil {
		m.cancelPoll()
		m.cancelPoll = nil
	}
	m.loggerf("level=error msg=screen error state=%d err=%v", m.state, err)
	if isUnauthorized(err) {
		m.lastState = m.recoveryState()
		m.state = stateLogin
		cmd := m.tokenInput.Focus()
		return m, cmd
	}
	m.err = err
	m.lastState = m.recoveryState()
	m.state = stateError
	return m, nil
}

// recoveryState is where esc lands after an error: the nearest screen
// that is not itself a transient loading state.
func (m appModel) recoveryState() appState {
	switch m.state {
	case stateLoadingBuses:
		return stateSearch
	case stateLoadingBus:
		return stateBusList
	case stateSubmitting, statePayment:
		return statePayerForm
	case stateLoadingBookings:
		return stateSearch
	case stateError, stateLogin:
		return m.lastState
	}
	return m.state
}

func isUnauthorized(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.Code == api.CodeUnauthorized
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		if m.cancelPoll != nil {
			m.cancelPoll()
		}
		return m, tea.Quit, true
	}

	switch m.state {
	case stateSearch:
		return m.handleSearchKey(msg)
	case stateBusList:
		return m.handleBusListKey(msg)
	case stateSeatSelect:
		return m.handleSeatKey(msg)
	case statePayerForm:
		return m.handlePayerKey(msg)
	case statePayment:
		return m.handlePaymentKey(msg)
	case stateBookings:
		if msg.String() == "esc" || msg.String() == "q" {
			m.state = stateSearch
			cmd := m.focusSearch(m.searchFocus)
			return m, cmd, true
		}
	case stateLogin:
		switch msg.String() {
		case "enter":
			token := strings.TrimSpace(m.tokenInput.Value())
			if token == "" {
				return m, nil, true
			}
			return m, m.saveTokenCmd(token), true
		case "esc":
			m.tokenInput.Blur()
			m.state = stateSearch
			cmd := m.focusSearch(m.searchFocus)
			return m, cmd, true
		}
	case stateError:
		if msg.String() == "esc" || msg.String() == "enter" {
			m.err = nil
			m.state = m.lastState
			if m.state == stateSearch {
				cmd := m.focusSearch(m.searchFocus)
				return m, cmd, true
			}
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		cmd := m.focusSearch((m.searchFocus + 1) % searchFieldCount)
		return m, cmd, true
	case "shift+tab", "up":
		cmd := m.focusSearch((m.searchFocus + searchFieldCount - 1) % searchFieldCount)
		return m, cmd, true
	case "ctrl+a":
		// complete the focused city field with the first suggestion
		if m.searchFocus == searchFieldFrom || m.searchFocus == searchFieldTo {
			if cities := directory.Filter(strings.TrimSpace(m.searchInputs[m.searchFocus].Value())); len(cities) > 0 {
				m.searchInputs[m.searchFocus].SetValue(cities[0].Name)
				m.searchInputs[m.searchFocus].CursorEnd()
			}
		}
		return m, nil, true
	case "ctrl+b":
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(), m.spinner.Tick), true
	case "enter":
		m.lists.SetKeyword(m.searchKeyword())
		m.lists.SetDate(strings.TrimSpace(m.searchInputs[searchFieldDate].Value()))
		m.state = stateLoadingBuses
		return m, tea.Batch(m.fetchBusesCmd(), m.spinner.Tick), true
	}
	return m, nil, false
}

// searchKeyword joins the origin and destination fields into the single
// keyword the list endpoint searches on.
func (m appModel) searchKeyword() string {
	from := strings.TrimSpace(m.searchInputs[searchFieldFrom].Value())
	to := strings.TrimSpace(m.searchInputs[searchFieldTo].Value())
	return strings.TrimSpace(from + " " + to)
}

func (m *appModel) focusSearch(i int) tea.Cmd {
	m.searchInputs[m.searchFocus].Blur()
	m.searchFocus = i
	return m.searchInputs[i].Focus()
}

func (m appModel) handleBusListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.state = stateSearch
		cmd := m.focusSearch(m.searchFocus)
		return m, cmd, true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil, true
	case "down", "j":
		if m.cursor < len(m.buses)-1 {
			m.cursor++
		}
		return m, nil, true
	case "right", "n":
		if m.lists.CanNext() {
			m.lists.NextPage()
			m.state = stateLoadingBuses
			return m, tea.Batch(m.fetchBusesCmd(), m.spinner.Tick), true
		}
		return m, nil, true
	case "left", "p":
		if m.lists.CanPrev() {
			m.lists.PrevPage()
			m.state = stateLoadingBuses
			return m, tea.Batch(m.fetchBusesCmd(), m.spinner.Tick), true
		}
		return m, nil, true
	case "s":
		m.lists.ToggleSortOrder()
		m.state = stateLoadingBuses
		return m, tea.Batch(m.fetchBusesCmd(), m.spinner.Tick), true
	case "r":
		m.state = stateLoadingBuses
		return m, tea.Batch(m.fetchBusesCmd(), m.spinner.Tick), true
	case "c":
		m.lists.ClearFilters()
		m.state = stateLoadingBuses
		return m, tea.Batch(m.fetchBusesCmd(), m.spinner.Tick), true
	case "enter":
		if m.cursor >= len(m.buses) {
			return m, nil, true
		}
		bus := m.buses[m.cursor]
		m.checkout = checkout.NewService(m.client, m.st, checkout.Params{
			BusID: bus.ID,
			Route: bus.RouteName,
			From:  bus.StartingPoint,
			To:    bus.Destination,
			Date:  bus.TravelDate,
			Price: strconv.FormatFloat(bus.Price, 'f', -1, 64),
			Seats: strings.TrimSpace(m.searchInputs[searchFieldPassengers].Value()),
		}, m.loggerf)
		m.state = stateLoadingBus
		return m, tea.Batch(m.loadBusCmd(), m.spinner.Tick), true
	}
	return m, nil, false
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	seats := m.checkout.Seats()
	switch msg.String() {
	case "esc":
		m.state = stateBusList
		return m, nil, true
	case "up":
		if m.seatCur >= seatmap.SeatsPerRow {
			m.seatCur -= seatmap.SeatsPerRow
		}
		return m, nil, true
	case "down":
		if m.seatCur < seatmap.TotalSeats-seatmap.SeatsPerRow {
			m.seatCur += seatmap.SeatsPerRow
		}
		return m, nil, true
	case "left", "h":
		if m.seatCur%seatmap.SeatsPerRow > 0 {
			m.seatCur--
		}
		return m, nil, true
	case "right", "l":
		if m.seatCur%seatmap.SeatsPerRow < seatmap.SeatsPerRow-1 {
			m.seatCur++
		}
		return m, nil, true
	case " ", "enter":
		if seats != nil {
			seats.SelectSeat(m.seatCur + 1)
		}
		return m, nil, true
	case "+":
		m.checkout.IncrementSeats()
		return m, nil, true
	case "-":
		m.checkout.DecrementSeats()
		return m, nil, true
	case "tab":
		if seats != nil && len(seats.Selected()) == m.checkout.SeatQuantity() {
			m.state = statePayerForm
			cmd := m.focusPayer(m.payerFocus)
			return m, cmd, true
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m *appModel) focusPayer(i int) tea.Cmd {
	m.payerInputs[m.payerFocus].Blur()
	m.payerFocus = i
	return m.payerInputs[i].Focus()
}

func (m appModel) handlePayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.payerInputs[m.payerFocus].Blur()
		m.state = stateSeatSelect
		return m, nil, true
	case "tab", "down":
		cmd := m.focusPayer((m.payerFocus + 1) % payerFieldCount)
		return m, cmd, true
	case "shift+tab", "up":
		cmd := m.focusPayer((m.payerFocus + payerFieldCount - 1) % payerFieldCount)
		return m, cmd, true
	case "enter":
		m.checkout.SetPayer(domain.PayerDetails{
			Name:  strings.TrimSpace(m.payerInputs[payerFieldName].Value()),
			Email: strings.TrimSpace(m.payerInputs[payerFieldEmail].Value()),
			Phone: strings.TrimSpace(m.payerInputs[payerFieldPhone].Value()),
		})
		m.state = stateSubmitting
		return m, tea.Batch(m.submitCmd(), m.spinner.Tick), true
	}
	return m, nil, false
}

func (m appModel) handlePaymentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "o":
		if m.result != nil && m.result.RedirectURL != "" {
			return m, openURLCmd(m.result.RedirectURL), true
		}
		return m, nil, true
	case "esc", "q":
		if m.booking != nil && m.booking.PaymentStatus.Terminal() {
			if m.cancelPoll != nil {
				m.cancelPoll()
				m.cancelPoll = nil
			}
			m.state = stateSearch
			cmd := m.focusSearch(m.searchFocus)
			return m, cmd, true
		}
		return m, nil, true
	}
	return m, nil, false
}
