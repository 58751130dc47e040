package cli

import (
	"github.com/spf13/cobra"

	"github.com/egannguyen/supplement-store/internal/service"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd(svc *service.StoreService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "SupplementStore demo storefront",
		Long: "In-memory storefront core: product catalog, cart, checkout and " +
			"order management. All state lives in this process and is discarded on exit.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newProductsCmd(svc))
	cmd.AddCommand(newOrdersCmd(svc))
	cmd.AddCommand(newDemoCmd(svc))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest(svc *service.StoreService) *cobra.Command {
	return newRootCmd(svc)
}

func Execute(svc *service.StoreService) error {
	return newRootCmd(svc).Execute()
}
