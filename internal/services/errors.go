package services

import "errors"

// Business-rule errors. Handlers translate these into structured
// {success:false, error} results; anything else is an infrastructure
// failure and surfaces as a hard error.
var (
	// ErrInvalidAmount is returned for non-positive amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrBelowMinimum is returned when an amount is below the configured minimum.
	ErrBelowMinimum = errors.New("amount below configured minimum")

	// ErrInsufficientFunds is returned when a debit would take a balance bucket negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrStaleBalance is returned when a balance validated at request time
	// is no longer sufficient at approval time. The transaction stays pending.
	ErrStaleBalance = errors.New("balance changed since request")

	// ErrNotFound is returned for unknown transaction, contract or user ids.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStateTransition is returned when an operation targets a row
	// in a state that does not admit it.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrRateLimited is returned when a user exceeds the submission window.
	ErrRateLimited = errors.New("rate limit exceeded")
)
