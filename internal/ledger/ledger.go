// Package ledger owns the in-memory order collection: creation, retrieval,
// enumeration and status transitions. All mutation goes through the Ledger;
// state lives for the process lifetime and is discarded on restart.
package ledger

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/egannguyen/supplement-store/internal/entity"
	"github.com/egannguyen/supplement-store/internal/journal"
	"github.com/egannguyen/supplement-store/internal/messaging"
	"github.com/egannguyen/supplement-store/internal/metrics"
)

// Topics the ledger publishes on.
const (
	TopicOrderCreated       = "orders.created"
	TopicOrderStatusUpdated = "orders.status_updated"
)

const streamTypeOrder = "order"

// Ledger is the sole authority over the order collection. It is safe for
// concurrent use.
type Ledger struct {
	mu     sync.Mutex
	orders []entity.Order

	publisher messaging.Publisher
	journal   journal.Journal
	metrics   *metrics.LedgerMetrics

	now  func() time.Time
	intn func(n int) int
}

// New creates an empty ledger. Publisher, journal and metrics may each be
// nil; the corresponding side channel is simply skipped.
func New(publisher messaging.Publisher, jnl journal.Journal, m *metrics.LedgerMetrics) *Ledger {
	return &Ledger{
		publisher: publisher,
		journal:   jnl,
		metrics:   m,
		now:       time.Now,
		intn:      rand.Intn,
	}
}

// CreateOrderParams carries everything the presentation layer supplies at
// checkout. The monetary amounts are stored as-is; the ledger never
// re-derives them, so callers must pass a consistent, already-rounded set.
type CreateOrderParams struct {
	Items        []entity.OrderItem
	ShippingInfo entity.ShippingInfo
	Subtotal     float64
	Shipping     float64
	Tax          float64
	Total        float64
	Status       entity.OrderStatus
}

// CreateOrder appends a new order to the ledger and returns an independent
// snapshot of it. It fails with *InvalidOrderError if params.Items is empty;
// that is the only validation the ledger performs. An empty Status defaults
// to pending.
func (l *Ledger) CreateOrder(ctx context.Context, params CreateOrderParams) (entity.Order, error) {
	if len(params.Items) == 0 {
		return entity.Order{}, &InvalidOrderError{Reason: "order must have at least one item"}
	}

	status := params.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !status.IsValid() {
		return entity.Order{}, ErrInvalidStatus
	}

	l.mu.Lock()
	now := l.now()
	order := entity.Order{
		ID:           uuid.New().String(),
		OrderNumber:  l.generateOrderNumber(now),
		Items:        append([]entity.OrderItem(nil), params.Items...),
		ShippingInfo: params.ShippingInfo,
		Subtotal:     params.Subtotal,
		Shipping:     params.Shipping,
		Tax:          params.Tax,
		Total:        params.Total,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	l.orders = append(l.orders, order)
	l.mu.Unlock()

	slog.Info("Ledger: Order created",
		"order_id", order.ID, "order_number", order.OrderNumber,
		"items", len(order.Items), "total", order.Total)

	event := entity.OrderCreated{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Items:       order.Items,
		Total:       order.Total,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
	l.record(ctx, order.ID, event, TopicOrderCreated)
	l.metrics.RecordOrderCreated(order.Total)

	return order.Clone(), nil
}

// GetAllOrders returns a snapshot of every order, most recent first. Orders
// sharing a createdAt keep their insertion order relative to each other.
func (l *Ledger) GetAllOrders(ctx context.Context) []entity.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.Order, 0, len(l.orders))
	for _, o := range l.orders {
		out = append(out, o.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GetOrderByID looks an order up by its internal id (not the order number).
// Absence is a normal outcome, reported through the bool.
func (l *Ledger) GetOrderByID(ctx context.Context, id string) (entity.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, o := range l.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return entity.Order{}, false
}

// UpdateStatus sets the order's status unconditionally; any status may move
// to any other, including backwards. This models an administrative override
// tool, not a carrier state machine. A missing id returns false with no
// mutation; a status outside the enumeration returns ErrInvalidStatus.
func (l *Ledger) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (entity.Order, bool, error) {
	if !status.IsValid() {
		return entity.Order{}, false, ErrInvalidStatus
	}

	l.mu.Lock()
	var (
		updated entity.Order
		old     entity.OrderStatus
		found   bool
	)
	for i := range l.orders {
		if l.orders[i].ID == id {
			old = l.orders[i].Status
			l.orders[i].Status = status
			l.orders[i].UpdatedAt = l.now()
			updated = l.orders[i].Clone()
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		return entity.Order{}, false, nil
	}

	slog.Info("Ledger: Order status updated",
		"order_id", id, "old_status", old, "new_status", status)

	event := entity.OrderStatusUpdated{
		OrderID:   id,
		OldStatus: old,
		NewStatus: status,
		UpdatedAt: updated.UpdatedAt,
	}
	l.record(ctx, id, event, TopicOrderStatusUpdated)
	l.metrics.RecordStatusTransition(string(status))

	return updated, true, nil
}

// History returns the journaled events for an order, oldest first. It is
// empty when the ledger has no journal or the id is unknown.
func (l *Ledger) History(ctx context.Context, id string) ([]journal.EventRecord, error) {
	if l.journal == nil {
		return nil, nil
	}
	return l.journal.Load(ctx, id)
}

// record journals the event and publishes it. Both channels are best-effort:
// the order mutation has already happened and the ledger's error contract
// stays narrow, so failures are logged, not returned.
func (l *Ledger) record(ctx context.Context, orderID string, event entity.Event, topic string) {
	if l.journal != nil {
		if err := l.journal.Append(ctx, orderID, streamTypeOrder, []entity.Event{event}); err != nil {
			slog.Error("Failed to journal event", "order_id", orderID, "event", event.EventType(), "err", err)
		}
	}
	if l.publisher != nil {
		if err := l.publisher.PublishEvent(ctx, topic, orderID, event); err != nil {
			slog.Error("Failed to publish event", "order_id", orderID, "topic", topic, "err", err)
		}
	}
}
