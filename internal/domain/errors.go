package domain

import "errors"

// Domain errors raised by account construction and mutation.
// They are sentinel values so callers can match them with errors.Is.
var (
	// ErrInvalidAmount means a deposit or withdrawal amount was zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNegativeInitialBalance means an account was opened with a negative balance.
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")

	// ErrBelowMinimumBalance means a savings account was opened below its required minimum.
	ErrBelowMinimumBalance = errors.New("initial balance is below the savings minimum")

	// ErrAccountNotFound means no account with the requested number is registered.
	ErrAccountNotFound = errors.New("account not found")
)
