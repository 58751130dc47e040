package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/egannguyen/supplement-store/internal/entity"
)

// OrderFilter describes the order-management search controls.
type OrderFilter struct {
	// Search matches the order number, the customer's full name, or any
	// product name, case-insensitively.
	Search string
	// Status keeps only orders in this status. Empty means all statuses.
	Status entity.OrderStatus
	// From keeps orders created at or after this instant.
	From time.Time
	// To keeps orders created at or before this instant. A To with a zero
	// clock time is extended to the end of that day, so a plain date is
	// inclusive.
	To time.Time
}

// Search returns the orders matching the filter, most recent first.
func (l *Ledger) Search(ctx context.Context, f OrderFilter) []entity.Order {
	orders := l.GetAllOrders(ctx)

	to := f.To
	if !to.IsZero() {
		if h, m, s := to.Clock(); h == 0 && m == 0 && s == 0 && to.Nanosecond() == 0 {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
	}

	result := orders[:0]
	query := strings.ToLower(f.Search)
	for _, o := range orders {
		if query != "" && !matchesQuery(o, query) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
			continue
		}
		if !to.IsZero() && o.CreatedAt.After(to) {
			continue
		}
		result = append(result, o)
	}
	return result
}

func matchesQuery(o entity.Order, query string) bool {
	if strings.Contains(strings.ToLower(o.OrderNumber), query) {
		return true
	}
	if strings.Contains(strings.ToLower(o.CustomerName()), query) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Product.Name), query) {
			return true
		}
	}
	return false
}
