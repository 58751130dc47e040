package catalog

import (
	"sort"

	"github.com/egannguyen/supplement-store/internal/entity"
)

// Catalog holds the in-memory product collection. Products are read-only
// values once seeded; every query returns copies, never internal slices.
type Catalog struct {
	products []entity.Product
}

// New creates a catalog seeded with the given products. Use Seed() for the
// stock demo data.
func New(products []entity.Product) *Catalog {
	c := &Catalog{products: make([]entity.Product, len(products))}
	copy(c.products, products)
	return c
}

// FindAll returns every product in catalog order.
func (c *Catalog) FindAll() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID returns the product with the given id, or false if none matches.
func (c *Catalog) FindByID(id string) (entity.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// BestSellers returns the products flagged as best sellers.
func (c *Catalog) BestSellers() []entity.Product {
	var out []entity.Product
	for _, p := range c.products {
		if p.IsBestSeller {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct product categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
