package ledger

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrRoomUnavailable         = errors.New("room not available")
	ErrCustomerBlocked         = errors.New("customer is blacklisted")
	ErrBookingNotActive        = errors.New("booking not found or not active")
	ErrBookingAlreadyProcessed = errors.New("booking not found or already processed")
	ErrDiscountExceedsTotal    = errors.New("discount cannot exceed booking total")
	ErrPaymentExceedsBalance   = errors.New("payment amount exceeds outstanding balance")
	ErrOutstandingBalance      = errors.New("outstanding balance, complete payment before checkout")
	ErrInsufficientStock       = errors.New("insufficient product stock")
)
