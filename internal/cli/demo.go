package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egannguyen/supplement-store/internal/entity"
	"github.com/egannguyen/supplement-store/internal/service"
)

// demoShipping is the sample checkout form used by the scripted flow.
var demoShipping = entity.ShippingInfo{
	FirstName: "Alex",
	LastName:  "Morgan",
	Email:     "alex.morgan@example.com",
	Phone:     "555-0142",
	Address:   "42 Birch Street",
	City:      "Portland",
	State:     "OR",
	ZipCode:   "97201",
	Country:   "USA",
}

func newDemoCmd(svc *service.StoreService) *cobra.Command {
	var productIDs []string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted browse → cart → checkout → fulfillment flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			fmt.Fprintln(out, headerStyle.Render("— Adding to cart —"))
			for _, id := range productIDs {
				added, err := svc.AddToCart(id)
				if err != nil {
					return err
				}
				product, _ := svc.Product(id)
				if added {
					fmt.Fprintf(out, "  + %s ($%.2f)\n", product.Name, product.Price)
				} else {
					fmt.Fprintf(out, "  = %s already in cart\n", product.Name)
				}
			}

			items, quote := svc.Cart()
			fmt.Fprintln(out, headerStyle.Render("\n— Cart —"))
			renderQuote(out, items, quote)

			fmt.Fprintln(out, headerStyle.Render("\n— Checkout —"))
			order, err := svc.Checkout(ctx, demoShipping)
			if err != nil {
				return err
			}
			renderOrderDetail(out, order)

			fmt.Fprintln(out, headerStyle.Render("— Fulfillment —"))
			for _, status := range []entity.OrderStatus{
				entity.OrderStatusProcessing,
				entity.OrderStatusShipped,
			} {
				updated, ok, err := svc.SetOrderStatus(ctx, order.ID, status)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("order %s disappeared from the ledger", order.ID)
				}
				fmt.Fprintf(out, "  %s → %s\n", updated.OrderNumber, renderStatus(updated.Status))
			}

			fmt.Fprintln(out, headerStyle.Render("\n— Orders —"))
			renderOrders(out, svc.Orders(ctx))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&productIDs, "products", []string{"1", "3"},
		"product ids to add to the cart")

	return cmd
}
