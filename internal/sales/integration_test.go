package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mercadito-app/mercadito/internal/catalog"
	"github.com/mercadito-app/mercadito/internal/ledger"
	"github.com/mercadito-app/mercadito/internal/platform/store"
	"github.com/mercadito-app/mercadito/internal/sales"
)

// The full commit/ledger/delete flow against the real file store.
func TestSaleLifecycleOverFileStore(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	catalogService := catalog.NewService(catalog.NewStoreRepository(fs))
	ledgerService := ledger.NewService(ledger.NewStoreRepository(fs))
	salesService := sales.NewService(sales.NewStoreRepository(fs), catalogService, ledgerService)

	productA, err := catalogService.Create(ctx, catalog.ProductInput{Code: "BLUSA-01", PriceNormal: 100, Stock: 10})
	require.NoError(t, err)

	sale, err := salesService.Commit(ctx, sales.SaleInput{
		Client:       "Ana",
		Date:         "2024-03-01",
		Items:        []sales.LineItem{{ProductID: productA.ID, Quantity: 3, Tier: catalog.TierNormal}},
		InitialAbono: 100,
	})
	require.NoError(t, err)
	require.Equal(t, 300.0, sale.Total)

	reloaded, err := catalogService.Get(ctx, productA.ID)
	require.NoError(t, err)
	require.Equal(t, 7, reloaded.Stock)

	details, err := salesService.List(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, 100.0, details[0].Ledger.TotalPaid)
	require.Equal(t, 200.0, details[0].Ledger.Balance)
	require.Equal(t, ledger.StatusPending, details[0].Ledger.Status)

	_, err = ledgerService.Register(ctx, ledger.AbonoInput{SaleID: sale.ID, Amount: 300, Date: "2024-03-10"})
	require.NoError(t, err)

	detail, err := salesService.Get(ctx, sale.ID)
	require.NoError(t, err)
	require.Equal(t, 400.0, detail.Ledger.TotalPaid)
	require.Equal(t, -100.0, detail.Ledger.Balance)
	require.Equal(t, ledger.StatusPaid, detail.Ledger.Status)

	require.NoError(t, salesService.Delete(ctx, sale.ID))

	orphans, err := ledgerService.ListBySale(ctx, sale.ID)
	require.NoError(t, err)
	require.Empty(t, orphans)

	after, err := catalogService.Get(ctx, productA.ID)
	require.NoError(t, err)
	require.Equal(t, 7, after.Stock, "deleting a sale does not restore stock")
}

// Sales persisted by earlier revisions in the flattened single-item shape
// must read back as one-line sales.
func TestLegacySaleShapeReadsThroughStore(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	legacy := []byte(`[{"id":"s-legacy","client":"Luz","productId":"p1","quantity":2,"tier":"cash","total":160,"date":"2023-11-20"}]`)
	require.NoError(t, fs.Save(ctx, store.Sales, legacy))

	repo := sales.NewStoreRepository(fs)
	got, err := repo.Get(ctx, "s-legacy")
	require.NoError(t, err)
	require.Len(t, got.LineItems, 1)
	require.Equal(t, "p1", got.LineItems[0].ProductID)
	require.Equal(t, 2, got.LineItems[0].Quantity)
	require.Equal(t, catalog.TierCash, got.LineItems[0].Tier)
}
