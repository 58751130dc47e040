package entity

import "time"

// Event represents a domain event.
type Event interface {
	EventType() string
}

// OrderCreated is emitted when a new order is appended to the ledger.
type OrderCreated struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (e OrderCreated) EventType() string { return "OrderCreated" }

// OrderStatusUpdated is emitted when an order's status is changed.
type OrderStatusUpdated struct {
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (e OrderStatusUpdated) EventType() string { return "OrderStatusUpdated" }
