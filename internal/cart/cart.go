package cart

import (
	"sync"

	"github.com/egannguyen/supplement-store/internal/entity"
)

// Cart is the in-memory cart store. Each product may appear at most once;
// adding a product already in the cart is a no-op.
type Cart struct {
	mu    sync.Mutex
	items []entity.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts a product in the cart with quantity 1. It returns false if the
// product is already present.
func (c *Cart) Add(p entity.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.Product.ID == p.ID {
			return false
		}
	}
	c.items = append(c.items, entity.CartItem{Product: p, Quantity: 1})
	return true
}

// Remove takes the product with the given id out of the cart.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the cart. The presentation layer calls this after a
// successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Contains reports whether the product is in the cart.
func (c *Cart) Contains(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// TotalItems returns the number of distinct products in the cart.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// TotalPrice sums price times quantity over every item.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Items returns a snapshot of the cart contents.
func (c *Cart) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]entity.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Checkout returns the cart contents as order line items, capturing each
// product's current price as the price-at-order-time.
func (c *Cart) Checkout() []entity.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]entity.OrderItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, entity.OrderItem{
			Product:  item.Product,
			Quantity: item.Quantity,
			Price:    item.Product.Price,
		})
	}
	return out
}
