package ledger

import "errors"

// InvalidOrderError is returned when an order fails the ledger's own
// validation. The only input the ledger checks itself is that the order has
// at least one line item; everything else is the presentation layer's job.
type InvalidOrderError struct {
	Reason string
}

func (e *InvalidOrderError) Error() string {
	return "invalid order: " + e.Reason
}

// ErrInvalidStatus is returned when a status outside the known enumeration
// is passed to UpdateStatus.
var ErrInvalidStatus = errors.New("invalid order status")
