package cli

import (
	"github.com/spf13/cobra"

	"github.com/egannguyen/supplement-store/internal/catalog"
	"github.com/egannguyen/supplement-store/internal/service"
)

func newProductsCmd(svc *service.StoreService) *cobra.Command {
	filter := catalog.DefaultFilter()

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products with the storefront filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			products := svc.Products(filter)
			renderProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "match name or description")
	cmd.Flags().StringVar(&filter.Category, "category", catalog.CategoryAll, "filter by category")
	cmd.Flags().Float64Var(&filter.PriceMin, "min-price", filter.PriceMin, "minimum price")
	cmd.Flags().Float64Var(&filter.PriceMax, "max-price", filter.PriceMax, "maximum price")
	cmd.Flags().BoolVar(&filter.BestSellersOnly, "best-sellers", false, "best sellers only")
	cmd.Flags().StringVar(&filter.SortBy, "sort", catalog.SortFeatured,
		"sort order: featured, price-low, price-high, name-asc, name-desc, best-sellers")

	return cmd
}
