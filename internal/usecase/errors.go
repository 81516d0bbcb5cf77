package usecase

import "errors"

// Sentinel errors carry the user-visible message; handlers map them to HTTP
// statuses with errors.Is. Wrapping adds operation context without changing
// the classification, e.g. fmt.Errorf("%w to update this hall", ErrForbidden).
var (
	// Not found
	ErrUserNotFound    = errors.New("user not found")
	ErrHallNotFound    = errors.New("hall not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization
	ErrForbidden = errors.New("not authorized")

	// Conflicts
	ErrEmailTaken        = errors.New("email already registered")
	ErrDateAlreadyBooked = errors.New("hall is already booked for this date")

	// Invalid state
	ErrHallNotBookable         = errors.New("hall is not available for booking")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingAlreadyCompleted = errors.New("booking is already completed")
	ErrAlreadyFavorite         = errors.New("hall is already in favorites")
	ErrNotFavorite             = errors.New("hall is not in favorites")

	// Invalid argument
	ErrInvalidBookingStatus = errors.New("invalid status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidEventDate     = errors.New("invalid event date")
)
