package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/egannguyen/supplement-store/internal/entity"
	"github.com/egannguyen/supplement-store/internal/pricing"
)

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")
	info    = lipgloss.Color("#8B949E")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	starStyle   = lipgloss.NewStyle().Foreground(warning)

	statusStyles = map[entity.OrderStatus]lipgloss.Style{
		entity.OrderStatusPending:    lipgloss.NewStyle().Foreground(warning),
		entity.OrderStatusProcessing: lipgloss.NewStyle().Foreground(info),
		entity.OrderStatusShipped:    lipgloss.NewStyle().Foreground(accent),
		entity.OrderStatusDelivered:  lipgloss.NewStyle().Foreground(success),
		entity.OrderStatusCancelled:  lipgloss.NewStyle().Foreground(danger),
	}
)

func renderStatus(s entity.OrderStatus) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

func renderProducts(w io.Writer, products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No products match the current filters."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-3s %-24s %-12s %8s %7s %6s", "ID", "NAME", "CATEGORY", "PRICE", "STOCK", "RATING")))
	for _, p := range products {
		name := p.Name
		if p.IsBestSeller {
			name += " " + starStyle.Render("★")
		}
		fmt.Fprintf(w, "%-3s %-24s %-12s %8.2f %7d %s\n",
			p.ID, name, p.Category, p.Price, p.Stock,
			dimStyle.Render(fmt.Sprintf("%.1f (%d)", p.Rating, p.Reviews)))
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d products", len(products))))
}

func renderOrders(w io.Writer, orders []entity.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No orders."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-24s %-22s %5s %9s %-10s %s", "ORDER", "CUSTOMER", "ITEMS", "TOTAL", "STATUS", "CREATED")))
	for _, o := range orders {
		fmt.Fprintf(w, "%-24s %-22s %5d %9.2f %-10s %s\n",
			o.OrderNumber, o.CustomerName(), len(o.Items), o.Total,
			renderStatus(o.Status), dimStyle.Render(o.CreatedAt.Format("2006-01-02 15:04:05")))
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d orders", len(orders))))
}

func renderOrderDetail(w io.Writer, o entity.Order) {
	var b strings.Builder

	b.WriteString(headerStyle.Render(o.OrderNumber))
	b.WriteString("  " + renderStatus(o.Status) + "\n")
	b.WriteString(dimStyle.Render("id: "+o.ID) + "\n\n")

	for _, item := range o.Items {
		b.WriteString(fmt.Sprintf("  %dx %-28s %8.2f\n", item.Quantity, item.Product.Name, item.Price))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-12s %8.2f\n", "Subtotal", o.Subtotal))
	if o.Shipping == 0 {
		b.WriteString(fmt.Sprintf("  %-12s %8s\n", "Shipping", lipgloss.NewStyle().Foreground(success).Render("FREE")))
	} else {
		b.WriteString(fmt.Sprintf("  %-12s %8.2f\n", "Shipping", o.Shipping))
	}
	b.WriteString(fmt.Sprintf("  %-12s %8.2f\n", "Tax", o.Tax))
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-12s %8.2f", "Total", o.Total)) + "\n\n")

	b.WriteString(fmt.Sprintf("  Ship to: %s, %s, %s, %s %s, %s\n",
		o.CustomerName(), o.ShippingInfo.Address, o.ShippingInfo.City,
		o.ShippingInfo.State, o.ShippingInfo.ZipCode, o.ShippingInfo.Country))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  created %s, updated %s",
		o.CreatedAt.Format("2006-01-02 15:04:05"), o.UpdatedAt.Format("2006-01-02 15:04:05"))))

	fmt.Fprintln(w, b.String())
}

func renderQuote(w io.Writer, items []entity.CartItem, quote pricing.Quote) {
	for _, item := range items {
		fmt.Fprintf(w, "  %dx %-28s %8.2f\n", item.Quantity, item.Product.Name, item.Product.Price)
	}
	fmt.Fprintf(w, "  %-12s %8.2f\n", "Subtotal", quote.Subtotal)
	fmt.Fprintf(w, "  %-12s %8.2f\n", "Shipping", quote.Shipping)
	fmt.Fprintf(w, "  %-12s %8.2f\n", "Tax", quote.Tax)
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("  %-12s %8.2f", "Total", quote.Total)))

	if remaining := pricing.AmountToFreeShipping(quote.Subtotal); remaining > 0 {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("  Add $%.2f more to get free shipping!", remaining)))
	}
}
