package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/enum"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
	"github.com/sangkips/pos-register/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soldSnapshot(lines ...entity.LineItem) entity.SaleSnapshot {
	sale := entity.NewSale(nil)
	for _, l := range lines {
		sale.AddItem(l.Item, l.Quantity)
	}
	return sale.Snapshot()
}

func TestMemoryCatalog_GetItem(t *testing.T) {
	ctx := context.Background()
	catalog := NewDefaultMemoryCatalog(666, 10)

	item, err := catalog.GetItem(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", item.Description)
	assert.Equal(t, "15.00", item.Price.String())
	assert.Equal(t, 25, item.TaxRate)

	_, err = catalog.GetItem(ctx, 999)
	var notFound *domainRepo.ItemNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 999, notFound.ItemID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = catalog.GetItem(ctx, 666)
	var failure *domainRepo.LookupFailureError
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.False(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMemoryCatalog_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDefaultMemoryCatalog(0, 1).GetItem(ctx, 101)
	var failure *domainRepo.LookupFailureError
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCatalog_UpdateInventory(t *testing.T) {
	ctx := context.Background()
	catalog := NewDefaultMemoryCatalog(666, 5)
	coffee, _ := catalog.GetItem(ctx, 101)
	croissant, _ := catalog.GetItem(ctx, 102)

	snap := soldSnapshot(
		entity.LineItem{Item: coffee, Quantity: 2},
		entity.LineItem{Item: croissant, Quantity: 1},
		entity.LineItem{Item: coffee, Quantity: 1},
	)
	require.NoError(t, catalog.UpdateInventory(ctx, snap))

	stock, ok := catalog.Stock(101)
	require.True(t, ok)
	assert.Equal(t, 2, stock)
	stock, _ = catalog.Stock(102)
	assert.Equal(t, 4, stock)

	// selling more than is stocked floors at zero
	require.NoError(t, catalog.UpdateInventory(ctx, soldSnapshot(entity.LineItem{Item: coffee, Quantity: 9})))
	stock, _ = catalog.Stock(101)
	assert.Equal(t, 0, stock)

	_, ok = catalog.Stock(999)
	assert.False(t, ok)
}

func TestMemoryDiscounts_GetDiscount(t *testing.T) {
	ctx := context.Background()
	discounts := NewDefaultMemoryDiscounts()
	discounts.Put(4321, *entity.NewFixedDiscount(entity.NewMoney(5)))

	d, err := discounts.GetDiscount(ctx, 1234, entity.SaleSnapshot{})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, enum.DiscountKindPercentage, d.Kind)
	assert.Equal(t, 10, d.Percentage)

	// callers get a copy
	d.Percentage = 90
	again, _ := discounts.GetDiscount(ctx, 1234, entity.SaleSnapshot{})
	assert.Equal(t, 10, again.Percentage)

	fixed, err := discounts.GetDiscount(ctx, 4321, entity.SaleSnapshot{})
	require.NoError(t, err)
	assert.Equal(t, enum.DiscountKindFixedAmount, fixed.Kind)
	assert.Equal(t, "5.00", fixed.Amount.String())

	none, err := discounts.GetDiscount(ctx, 5678, entity.SaleSnapshot{})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAccountingLedger(t *testing.T) {
	ctx := context.Background()
	ledger := NewAccountingLedger()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ledger.now = func() time.Time { return fixed }

	coffee := entity.CatalogItem{ID: 101, Price: entity.NewMoney(15), TaxRate: 25, Description: "Coffee"}
	snap := soldSnapshot(entity.LineItem{Item: coffee, Quantity: 2})
	require.NoError(t, ledger.UpdateAccounting(ctx, snap))
	require.NoError(t, ledger.UpdateAccounting(ctx, soldSnapshot(entity.LineItem{Item: coffee, Quantity: 1})))

	entries := ledger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, fixed, entries[0].RecordedAt)
	assert.Equal(t, "37.50", entries[0].Total().String())
	assert.Equal(t, []string{"Coffee (Qty: 2, Price: 15.00, Tax: 25%)"}, entries[0].Lines)
	assert.Equal(t, "56.25", ledger.Total().String())

	// the ledger keeps its own copy of the lines
	snap.Lines[0] = "changed"
	assert.Equal(t, "Coffee (Qty: 2, Price: 15.00, Tax: 25%)", ledger.Entries()[0].Lines[0])
}
