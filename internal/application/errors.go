package application

import "errors"

// Sentinel errors shared by the services and mapped to HTTP statuses at
// the handler boundary.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the response cannot be used to enumerate accounts. The actual
	// cause is logged server-side only.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotFound      = errors.New("not found")
	ErrTokenNotFound = errors.New("verification token not found")
	ErrTokenExpired  = errors.New("verification token expired")

	// ErrMailNotSent reports a partial success: the state change committed
	// but the notification email could not be enqueued.
	ErrMailNotSent = errors.New("email could not be sent")
)
