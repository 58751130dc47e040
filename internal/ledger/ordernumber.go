package ledger

import (
	"fmt"
	"time"
)

// generateOrderNumber builds the human-facing order number:
// "ORD-" + epoch milliseconds + "-" + zero-padded random 000..999.
//
// This is a display identifier, not a uniqueness key: two orders created in
// the same millisecond can draw the same suffix. The format is part of the
// user-visible surface and stays as-is; the internal id carries the
// uniqueness contract.
func (l *Ledger) generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%03d", now.UnixMilli(), l.intn(1000))
}
