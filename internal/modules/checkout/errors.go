package checkout

import "errors"

var (
	ErrPayerDetails      = errors.New("payer name, email and phone are required")
	ErrSeatCountMismatch = errors.New("selected seats must match the seat quantity")
	ErrNotLoaded         = errors.New("bus details not loaded")
	ErrSubmitInFlight    = errors.New("a submission is already in progress")
	ErrNoRedirectURL     = errors.New("no redirect URL in booking response")
)
