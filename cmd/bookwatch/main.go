// bookwatch resumes watching the last submitted booking outside the UI:
// it reads the stored payment reference, polls until the payment settles
// and writes the ticket PDF on success.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"busline/internal/api"
	"busline/internal/config"
	"busline/internal/domain"
	"busline/internal/modules/paystatus"
	"busline/internal/store"
	"busline/internal/ticket"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatal(err)
	}

	ref, err := st.PaymentRef()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Fatal("no pending booking to watch")
		}
		log.Fatal(err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, st, log.Printf)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := paystatus.NewPoller(client, ref.BookingID, cfg.PollInterval, log.Printf)
	booking, err := poller.Run(ctx, func(u paystatus.Update) {
		if u.Err != nil {
			log.Printf("level=warn msg=status check failed err=%v", u.Err)
			return
		}
		log.Printf("level=info msg=status booking_id=%s status=%s", u.Booking.ID, u.Booking.PaymentStatus)
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("booking %s settled: %s\n", booking.ID, booking.PaymentStatus)

	if booking.PaymentStatus == domain.PaymentCompleted {
		raw, err := ticket.Render(booking)
		if err != nil {
			log.Fatal(err)
		}
		path := fmt.Sprintf("ticket-%s.pdf", booking.ID)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Println("ticket written to", path)
	}

	if err := st.ClearPaymentRef(); err != nil {
		log.Printf("level=warn msg=could not clear payment ref err=%v", err)
	}
}
