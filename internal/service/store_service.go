package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/egannguyen/supplement-store/internal/cart"
	"github.com/egannguyen/supplement-store/internal/catalog"
	"github.com/egannguyen/supplement-store/internal/entity"
	"github.com/egannguyen/supplement-store/internal/journal"
	"github.com/egannguyen/supplement-store/internal/ledger"
	"github.com/egannguyen/supplement-store/internal/pricing"
)

// StoreService orchestrates the storefront flow: browsing, cart, checkout
// and order management. It is the single entry point the presentation layer
// talks to.
type StoreService struct {
	catalog *catalog.Catalog
	cart    *cart.Cart
	ledger  *ledger.Ledger
}

func NewStoreService(cat *catalog.Catalog, c *cart.Cart, l *ledger.Ledger) *StoreService {
	return &StoreService{
		catalog: cat,
		cart:    c,
		ledger:  l,
	}
}

// Products returns the catalog filtered and sorted for the listing page.
func (s *StoreService) Products(filter catalog.Filter) []entity.Product {
	return filter.Apply(s.catalog.FindAll())
}

// Product returns a single product by id.
func (s *StoreService) Product(id string) (entity.Product, bool) {
	return s.catalog.FindByID(id)
}

// Categories returns the distinct product categories.
func (s *StoreService) Categories() []string {
	return s.catalog.Categories()
}

// AddToCart puts the product with the given id in the cart. It returns false
// when the product is already there (one entry per product).
func (s *StoreService) AddToCart(productID string) (bool, error) {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return false, fmt.Errorf("unknown product %q", productID)
	}
	return s.cart.Add(product), nil
}

// Cart returns the current cart contents and its price quote.
func (s *StoreService) Cart() ([]entity.CartItem, pricing.Quote) {
	return s.cart.Items(), pricing.NewQuote(s.cart.TotalPrice())
}

// Checkout turns the cart into an order. It derives the price breakdown from
// the cart subtotal, creates the order with initial status pending and clears
// the cart on success. The cart must not be empty.
func (s *StoreService) Checkout(ctx context.Context, shipping entity.ShippingInfo) (entity.Order, error) {
	items := s.cart.Checkout()
	if len(items) == 0 {
		return entity.Order{}, fmt.Errorf("cannot check out an empty cart")
	}

	quote := pricing.NewQuote(s.cart.TotalPrice())
	slog.Info("Service: Checking out",
		"items", len(items), "subtotal", quote.Subtotal, "total", quote.Total)

	order, err := s.ledger.CreateOrder(ctx, ledger.CreateOrderParams{
		Items:        items,
		ShippingInfo: shipping,
		Subtotal:     quote.Subtotal,
		Shipping:     quote.Shipping,
		Tax:          quote.Tax,
		Total:        quote.Total,
		Status:       entity.OrderStatusPending,
	})
	if err != nil {
		return entity.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	// Clearing the cart is the caller side's job, done only after the ledger
	// accepted the order.
	s.cart.Clear()

	return order, nil
}

// Orders returns every order, most recent first.
func (s *StoreService) Orders(ctx context.Context) []entity.Order {
	return s.ledger.GetAllOrders(ctx)
}

// SearchOrders returns the orders matching the management filters.
func (s *StoreService) SearchOrders(ctx context.Context, f ledger.OrderFilter) []entity.Order {
	return s.ledger.Search(ctx, f)
}

// Order looks an order up by internal id.
func (s *StoreService) Order(ctx context.Context, id string) (entity.Order, bool) {
	return s.ledger.GetOrderByID(ctx, id)
}

// SetOrderStatus transitions an order to the given status.
func (s *StoreService) SetOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (entity.Order, bool, error) {
	return s.ledger.UpdateStatus(ctx, id, status)
}

// OrderHistory returns the journaled events for an order.
func (s *StoreService) OrderHistory(ctx context.Context, id string) ([]journal.EventRecord, error) {
	return s.ledger.History(ctx, id)
}
