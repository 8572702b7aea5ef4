package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/enum"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
	"github.com/sangkips/pos-register/internal/infrastructure/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type gormFixture struct {
	db        *gorm.DB
	products  *ProductRepository
	discounts *DiscountRepository
}

// setupGormRepositories runs the gorm repositories against a SQLite file
// through the pure-Go "sqlite" driver, migrated and seeded with stock 5.
func setupGormRepositories(t *testing.T) *gormFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		DSN:        filepath.Join(t.TempDir(), "catalog.db"),
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	f := &gormFixture{
		db:        db,
		products:  NewProductRepository(db),
		discounts: NewDiscountRepository(db),
	}
	require.NoError(t, SeedCatalog(context.Background(), f.products, f.discounts,
		database.DefaultProducts(5), database.DefaultDiscounts()))
	return f
}

func TestProductRepository_GetItem(t *testing.T) {
	ctx := context.Background()
	f := setupGormRepositories(t)

	item, err := f.products.GetItem(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 101, item.ID)
	assert.Equal(t, "Coffee", item.Description)
	assert.Equal(t, "15.00", item.Price.String())
	assert.Equal(t, 25, item.TaxRate)

	_, err = f.products.GetItem(ctx, 999)
	var notFound *domainRepo.ItemNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 999, notFound.ItemID)
}

func TestProductRepository_GetItemOnClosedDatabase(t *testing.T) {
	f := setupGormRepositories(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = f.products.GetItem(context.Background(), 101)

	var lookup *domainRepo.LookupFailureError
	require.ErrorAs(t, err, &lookup)
	var notFound *domainRepo.ItemNotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestProductRepository_UpdateInventory(t *testing.T) {
	ctx := context.Background()
	f := setupGormRepositories(t)
	coffee, err := f.products.GetItem(ctx, 101)
	require.NoError(t, err)
	croissant, err := f.products.GetItem(ctx, 102)
	require.NoError(t, err)

	snap := soldSnapshot(
		entity.LineItem{Item: coffee, Quantity: 2},
		entity.LineItem{Item: croissant, Quantity: 1},
		entity.LineItem{Item: coffee, Quantity: 1},
	)
	require.NoError(t, f.products.UpdateInventory(ctx, snap))

	qty, err := f.products.Quantity(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
	qty, err = f.products.Quantity(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, 4, qty)
}

func TestProductRepository_UpdateInventoryShortfall(t *testing.T) {
	ctx := context.Background()
	f := setupGormRepositories(t)
	coffee, err := f.products.GetItem(ctx, 101)
	require.NoError(t, err)
	croissant, err := f.products.GetItem(ctx, 102)
	require.NoError(t, err)

	snap := soldSnapshot(
		entity.LineItem{Item: coffee, Quantity: 6},
		entity.LineItem{Item: croissant, Quantity: 2},
	)
	require.NoError(t, f.products.UpdateInventory(ctx, snap))

	qty, err := f.products.Quantity(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 5, qty, "short item must not be decremented")
	qty, err = f.products.Quantity(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)
}

func TestProductRepository_UpsertKeepsStock(t *testing.T) {
	ctx := context.Background()
	f := setupGormRepositories(t)

	coffee, err := f.products.GetItem(ctx, 101)
	require.NoError(t, err)
	require.NoError(t, f.products.UpdateInventory(ctx, soldSnapshot(entity.LineItem{Item: coffee, Quantity: 3})))

	repriced := entity.Product{ItemID: 101, Description: "Filter Coffee", Price: decimal.RequireFromString("16.50"), TaxRate: 25, Quantity: 100}
	require.NoError(t, f.products.Upsert(ctx, &repriced))
	assert.Equal(t, 2, repriced.Quantity)

	item, err := f.products.GetItem(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Filter Coffee", item.Description)
	assert.Equal(t, "16.50", item.Price.String())
	qty, err := f.products.Quantity(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	water := entity.Product{ItemID: 50, Description: "Water", Price: decimal.RequireFromString("1.00"), Quantity: 7}
	require.NoError(t, f.products.Upsert(ctx, &water))
	qty, err = f.products.Quantity(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestSeedCatalogIsRepeatable(t *testing.T) {
	ctx := context.Background()
	f := setupGormRepositories(t)

	require.NoError(t, SeedCatalog(ctx, f.products, f.discounts,
		database.DefaultProducts(50), database.DefaultDiscounts()))

	var count int64
	require.NoError(t, f.db.Model(&entity.Product{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	qty, err := f.products.Quantity(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)
}

func TestDiscountRepository_GetDiscount(t *testing.T) {
	ctx := context.Background()
	f := setupGormRepositories(t)

	d, err := f.discounts.GetDiscount(ctx, 1234, entity.SaleSnapshot{})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, enum.DiscountKindPercentage, d.Kind)
	assert.Equal(t, 10, d.Percentage)

	none, err := f.discounts.GetDiscount(ctx, 5678, entity.SaleSnapshot{})
	require.NoError(t, err)
	assert.Nil(t, none)

	fixed := entity.CustomerDiscount{CustomerID: 1234, Kind: enum.DiscountKindFixedAmount, Amount: decimal.RequireFromString("4.25")}
	require.NoError(t, f.discounts.Upsert(ctx, &fixed))

	d, err = f.discounts.GetDiscount(ctx, 1234, entity.SaleSnapshot{})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, enum.DiscountKindFixedAmount, d.Kind)
	assert.Equal(t, "4.25", d.Amount.String())
}
