package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egannguyen/supplement-store/internal/entity"
)

func TestFilterSearch(t *testing.T) {
	products := Seed()

	f := DefaultFilter()
	f.Search = "protein"
	result := f.Apply(products)

	require.NotEmpty(t, result)
	for _, p := range result {
		nameOrDesc := p.Name + " " + p.Description
		assert.Contains(t, strings.ToLower(nameOrDesc), "protein")
	}

	// Search also matches descriptions: only one product mentions caffeine,
	// and only in its description.
	f = DefaultFilter()
	f.Search = "caffeine"
	result = f.Apply(products)
	require.Len(t, result, 1)
	assert.Equal(t, "Pre-Workout Energy", result[0].Name)
}

func TestFilterCategory(t *testing.T) {
	f := DefaultFilter()
	f.Category = "Protein"
	result := f.Apply(Seed())

	require.Len(t, result, 3)
	for _, p := range result {
		assert.Equal(t, "Protein", p.Category)
	}

	f.Category = CategoryAll
	assert.Len(t, f.Apply(Seed()), 15)
}

func TestFilterPriceRange(t *testing.T) {
	f := DefaultFilter()
	f.PriceMin = 40
	f.PriceMax = 50
	result := f.Apply(Seed())

	require.NotEmpty(t, result)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Price, 40.0)
		assert.LessOrEqual(t, p.Price, 50.0)
	}
}

func TestFilterBestSellersOnly(t *testing.T) {
	f := DefaultFilter()
	f.BestSellersOnly = true
	result := f.Apply(Seed())

	assert.Len(t, result, 6)
}

func TestFilterSorting(t *testing.T) {
	products := Seed()

	tests := []struct {
		name   string
		sortBy string
		check  func(t *testing.T, result []entity.Product)
	}{
		{
			name:   "price low to high",
			sortBy: SortPriceLow,
			check: func(t *testing.T, result []entity.Product) {
				for i := 1; i < len(result); i++ {
					assert.LessOrEqual(t, result[i-1].Price, result[i].Price)
				}
			},
		},
		{
			name:   "price high to low",
			sortBy: SortPriceHigh,
			check: func(t *testing.T, result []entity.Product) {
				for i := 1; i < len(result); i++ {
					assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
				}
			},
		},
		{
			name:   "name ascending",
			sortBy: SortNameAsc,
			check: func(t *testing.T, result []entity.Product) {
				for i := 1; i < len(result); i++ {
					assert.LessOrEqual(t, result[i-1].Name, result[i].Name)
				}
			},
		},
		{
			name:   "name descending",
			sortBy: SortNameDesc,
			check: func(t *testing.T, result []entity.Product) {
				for i := 1; i < len(result); i++ {
					assert.GreaterOrEqual(t, result[i-1].Name, result[i].Name)
				}
			},
		},
		{
			name:   "best sellers first by review count",
			sortBy: SortBestSellers,
			check: func(t *testing.T, result []entity.Product) {
				sawRegular := false
				for _, p := range result {
					if !p.IsBestSeller {
						sawRegular = true
					} else {
						assert.False(t, sawRegular, "best sellers must come before regular products")
					}
				}
				// Within the best sellers, most-reviewed first.
				assert.Equal(t, "Creatine Monohydrate", result[0].Name)
			},
		},
		{
			name:   "featured keeps catalog order within groups",
			sortBy: SortFeatured,
			check: func(t *testing.T, result []entity.Product) {
				require.Len(t, result, 15)
				assert.Equal(t, "Whey Protein Isolate", result[0].Name)
				assert.True(t, result[0].IsBestSeller)
				assert.Equal(t, "Casein Protein", result[6].Name,
					"first non-bestseller keeps its catalog position after the featured block")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFilter()
			f.SortBy = tt.sortBy
			result := f.Apply(products)
			require.NotEmpty(t, result)
			tt.check(t, result)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := Seed()
	first := products[0].Name

	f := DefaultFilter()
	f.SortBy = SortNameDesc
	f.Apply(products)

	assert.Equal(t, first, products[0].Name)
}
