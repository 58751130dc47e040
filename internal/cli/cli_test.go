package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egannguyen/supplement-store/internal/cart"
	"github.com/egannguyen/supplement-store/internal/catalog"
	"github.com/egannguyen/supplement-store/internal/journal"
	"github.com/egannguyen/supplement-store/internal/ledger"
	"github.com/egannguyen/supplement-store/internal/service"
)

func newTestRoot() (*service.StoreService, *bytes.Buffer) {
	l := ledger.New(nil, journal.NewMemoryJournal(), nil)
	svc := service.NewStoreService(catalog.New(catalog.Seed()), cart.New(), l)
	return svc, &bytes.Buffer{}
}

func runCommand(t *testing.T, svc *service.StoreService, out *bytes.Buffer, args ...string) error {
	t.Helper()
	cmd := NewRootCmdForTest(svc)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestProductsCommand(t *testing.T) {
	svc, out := newTestRoot()

	require.NoError(t, runCommand(t, svc, out, "products", "--category", "Protein", "--sort", "price-low"))

	output := out.String()
	assert.Contains(t, output, "Plant Protein Blend")
	assert.Contains(t, output, "Whey Protein Isolate")
	assert.NotContains(t, output, "Creatine Monohydrate")
}

func TestOrdersListEmpty(t *testing.T) {
	svc, out := newTestRoot()

	require.NoError(t, runCommand(t, svc, out, "orders", "list"))
	assert.Contains(t, out.String(), "No orders")
}

func TestDemoFlow(t *testing.T) {
	svc, out := newTestRoot()

	require.NoError(t, runCommand(t, svc, out, "demo", "--products", "1,3"))

	output := out.String()
	assert.Contains(t, output, "Whey Protein Isolate")
	assert.Contains(t, output, "Omega-3 Fish Oil")
	assert.Contains(t, output, "ORD-")
	assert.Contains(t, output, "Alex Morgan")

	// The demo's two status updates leave the order shipped.
	orders := svc.Orders(context.Background())
	require.Len(t, orders, 1)
	assert.Equal(t, "shipped", string(orders[0].Status))
}

func TestOrdersStatusUnknownOrder(t *testing.T) {
	svc, out := newTestRoot()

	require.NoError(t, runCommand(t, svc, out, "orders", "status", "no-such-id", "shipped"))
	assert.Contains(t, out.String(), "not found")
}

func TestOrdersStatusRejectsUnknownStatus(t *testing.T) {
	svc, out := newTestRoot()

	err := runCommand(t, svc, out, "orders", "status", "some-id", "misplaced")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	svc, out := newTestRoot()

	require.NoError(t, runCommand(t, svc, out, "version"))
	assert.Contains(t, out.String(), "storefront")
}
