package domain

import "errors"

var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoPayment means no instrument was ever saved; ErrPaymentCorrupted means a
	// row exists but at least one field no longer decrypts. Callers that only care
	// about "is there a usable card" treat both the same, but the distinction is
	// kept so corruption is observable.
	ErrNoPayment        = errors.New("no payment instrument saved")
	ErrPaymentCorrupted = errors.New("payment instrument corrupted")

	ErrValidation = errors.New("validation failed")
)
