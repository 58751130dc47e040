package entity

import (
	"fmt"
	"time"
)

// Product represents a product in the store. The core treats products as
// immutable values owned by the catalog.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	Category     string  `json:"category"`
	IsBestSeller bool    `json:"is_best_seller"`
	Stock        int     `json:"stock"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
}

// CartItem is a product currently sitting in a customer's cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderItem is a line item within an order. Product and Price are snapshots
// captured at order time, not live references to the catalog.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ShippingInfo holds the shipping form fields collected at checkout.
// Field-level validation is the presentation layer's job; the core only
// stores and displays these values.
type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// OrderStatus represents the fulfillment stage of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Statuses lists every valid order status.
func Statuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// IsValid reports whether s is one of the five known statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ParseStatus converts a user-supplied string into an OrderStatus.
func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// Order represents a customer order. Monetary amounts are stored as supplied
// at creation so historical orders are immune to later pricing changes.
type Order struct {
	ID           string       `json:"id"`
	OrderNumber  string       `json:"order_number"`
	Items        []OrderItem  `json:"items"`
	ShippingInfo ShippingInfo `json:"shipping_info"`
	Subtotal     float64      `json:"subtotal"`
	Shipping     float64      `json:"shipping"`
	Tax          float64      `json:"tax"`
	Total        float64      `json:"total"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Clone returns a structurally independent copy of the order. Mutating the
// returned value's items never touches the original.
func (o Order) Clone() Order {
	c := o
	c.Items = make([]OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return c
}

// CustomerName is the shipping recipient's full name, as shown in the
// order management table.
func (o Order) CustomerName() string {
	return o.ShippingInfo.FirstName + " " + o.ShippingInfo.LastName
}
