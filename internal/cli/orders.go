package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/egannguyen/supplement-store/internal/entity"
	"github.com/egannguyen/supplement-store/internal/ledger"
	"github.com/egannguyen/supplement-store/internal/service"
)

func newOrdersCmd(svc *service.StoreService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Order management",
	}
	cmd.AddCommand(newOrdersListCmd(svc))
	cmd.AddCommand(newOrdersShowCmd(svc))
	cmd.AddCommand(newOrdersStatusCmd(svc))
	cmd.AddCommand(newOrdersHistoryCmd(svc))
	return cmd
}

func newOrdersListCmd(svc *service.StoreService) *cobra.Command {
	var (
		search   string
		status   string
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ledger.OrderFilter{Search: search}

			if status != "" && status != "all" {
				parsed, err := entity.ParseStatus(status)
				if err != nil {
					return err
				}
				filter.Status = parsed
			}
			var err error
			if filter.From, err = parseDate(from); err != nil {
				return err
			}
			if filter.To, err = parseDate(to); err != nil {
				return err
			}

			orders := svc.SearchOrders(cmd.Context(), filter)
			renderOrders(cmd.OutOrStdout(), orders)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match order number, customer or product")
	cmd.Flags().StringVar(&status, "status", "all", "filter by status")
	cmd.Flags().StringVar(&from, "from", "", "orders created on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "orders created on or before this date (YYYY-MM-DD)")

	return cmd
}

func newOrdersShowCmd(svc *service.StoreService) *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show a single order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, ok := svc.Order(cmd.Context(), args[0])
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "order %s not found\n", args[0])
				return nil
			}
			renderOrderDetail(cmd.OutOrStdout(), order)
			return nil
		},
	}
}

func newOrdersStatusCmd(svc *service.StoreService) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Set an order's status (pending, processing, shipped, delivered, cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := entity.ParseStatus(args[1])
			if err != nil {
				return err
			}
			order, ok, err := svc.SetOrderStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "order %s not found\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", order.OrderNumber, renderStatus(order.Status))
			return nil
		},
	}
}

func newOrdersHistoryCmd(svc *service.StoreService) *cobra.Command {
	return &cobra.Command{
		Use:   "history <order-id>",
		Short: "Show the journaled events for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := svc.OrderHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no history for order %s\n", args[0])
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s  %s\n",
					rec.Version, rec.CreatedAt.Format(time.RFC3339), rec.EventType)
			}
			return nil
		},
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}
