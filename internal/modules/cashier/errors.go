package cashier

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrSessionAlreadyOpen = errors.New("cashier already has an open session")
	ErrNoOpenSession      = errors.New("no open session for this cashier")
)
