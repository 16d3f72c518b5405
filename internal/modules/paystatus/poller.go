// Package paystatus watches a booking after the user returns from the
// external payment provider. The status is polled at a fixed interval
// until it reaches a terminal state; pending → completed and
// pending → failed are the only transitions.
package paystatus

import (
	"context"
	"errors"
	"time"

	"busline/internal/domain"
)

const DefaultInterval = 3 * time.Second

var ErrNoBookingRef = errors.New("no booking reference to poll")

type StatusFetcher interface {
	BookingStatus(ctx context.Context, id string) (*domain.Booking, error)
}

// Update is delivered to the observer once per tick: either a fresh
// booking snapshot or the error that tick ran into. A tick error is
// visible but does not break the polling chain.
type Update struct {
	Booking *domain.Booking
	Err     error
}

type Poller struct {
	fetch     StatusFetcher
	bookingID string
	interval  time.Duration
	loggerf   func(format string, args ...interface{})
}

func NewPoller(fetch StatusFetcher, bookingID string, interval time.Duration, loggerf func(format string, args ...interface{})) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Poller{
		fetch:     fetch,
		bookingID: bookingID,
		interval:  interval,
		loggerf:   loggerf,
	}
}

// Run issues the first status request immediately and then exactly one
// request per interval until a terminal status arrives or ctx is
// cancelled. Requests never overlap: the next one is only scheduled after
// the previous returned. Cancellation stops the timer before it can fire
// into a dead observer.
func (p *Poller) Run(ctx context.Context, onUpdate func(Update)) (*domain.Booking, error) {
	if p.bookingID == "" {
		return nil, ErrNoBookingRef
	}
	if onUpdate == nil {
		onUpdate = func(Update) {}
	}

	timer := time.NewTimer(p.interval)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		booking, err := p.fetch.BookingStatus(ctx, p.bookingID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.loggerf("level=error msg=status poll failed booking_id=%s err=%v", p.bookingID, err)
			onUpdate(Update{Err: err})
		} else {
			onUpdate(Update{Booking: booking})
			if booking.PaymentStatus.Terminal() {
				p.loggerf("level=info msg=payment reached terminal status booking_id=%s status=%s", p.bookingID, booking.PaymentStatus)
				return booking, nil
			}
		}

		timer.Reset(p.interval)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
