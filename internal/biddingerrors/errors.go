package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrConflict        = errors.New("auction was modified concurrently")
)

// business logic errors
var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidInput     = errors.New("invalid input")
)
