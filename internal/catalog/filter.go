package catalog

import (
	"sort"
	"strings"

	"github.com/egannguyen/supplement-store/internal/entity"
)

// Sort modes for product listings.
const (
	SortFeatured    = "featured"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortNameAsc     = "name-asc"
	SortNameDesc    = "name-desc"
	SortBestSellers = "best-sellers"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Filter describes the product-listing filter and sort controls.
type Filter struct {
	Search          string
	Category        string
	PriceMin        float64
	PriceMax        float64
	BestSellersOnly bool
	SortBy          string
}

// DefaultFilter matches the listing page defaults: everything, featured order.
func DefaultFilter() Filter {
	return Filter{
		Category: CategoryAll,
		PriceMin: 0,
		PriceMax: 200,
		SortBy:   SortFeatured,
	}
}

// Apply filters and sorts products, returning a new slice. The input slice is
// never reordered.
func (f Filter) Apply(products []entity.Product) []entity.Product {
	result := make([]entity.Product, 0, len(products))

	search := strings.ToLower(f.Search)
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if p.Price < f.PriceMin || p.Price > f.PriceMax {
			continue
		}
		if f.BestSellersOnly && !p.IsBestSeller {
			continue
		}
		result = append(result, p)
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name > result[j].Name
		})
	case SortBestSellers:
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].IsBestSeller != result[j].IsBestSeller {
				return result[i].IsBestSeller
			}
			return result[i].Reviews > result[j].Reviews
		})
	default:
		// Featured: keep catalog order but float best sellers to the top.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].IsBestSeller && !result[j].IsBestSeller
		})
	}

	return result
}
