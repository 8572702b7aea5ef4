package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/enum"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
	"github.com/shopspring/decimal"
)

type productRow struct {
	ItemID      int             `db:"item_id"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	TaxRate     int             `db:"tax_rate"`
	Quantity    int             `db:"quantity"`
}

type discountRow struct {
	CustomerID int             `db:"customer_id"`
	Kind       int             `db:"kind"`
	Percentage int             `db:"percentage"`
	Amount     decimal.Decimal `db:"amount"`
}

// SQLiteCatalog serves items, stock and customer discounts from a local
// SQLite database
type SQLiteCatalog struct {
	db *sqlx.DB
}

// NewSQLiteCatalog creates a new SQLite-backed catalog
func NewSQLiteCatalog(db *sqlx.DB) *SQLiteCatalog {
	return &SQLiteCatalog{db: db}
}

var (
	_ domainRepo.CatalogRepository  = (*SQLiteCatalog)(nil)
	_ domainRepo.InventorySystem    = (*SQLiteCatalog)(nil)
	_ domainRepo.DiscountRepository = (*SQLiteCatalog)(nil)
)

func (c *SQLiteCatalog) GetItem(ctx context.Context, itemID int) (entity.CatalogItem, error) {
	var row productRow
	err := c.db.GetContext(ctx, &row,
		`SELECT item_id, description, price, tax_rate, quantity FROM products WHERE item_id = ?`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.CatalogItem{}, &domainRepo.ItemNotFoundError{ItemID: itemID}
	}
	if err != nil {
		return entity.CatalogItem{}, &domainRepo.LookupFailureError{Cause: err}
	}

	return entity.CatalogItem{
		ID:          row.ItemID,
		Price:       entity.NewMoneyFromDecimal(row.Price),
		TaxRate:     row.TaxRate,
		Description: row.Description,
	}, nil
}

// Quantity returns the stock count for itemID
func (c *SQLiteCatalog) Quantity(ctx context.Context, itemID int) (int, error) {
	var quantity int
	err := c.db.GetContext(ctx, &quantity, `SELECT quantity FROM products WHERE item_id = ?`, itemID)
	return quantity, err
}

// UpdateInventory decrements stock for every sold item in one transaction.
// Items without enough stock are left untouched and logged.
func (c *SQLiteCatalog) UpdateInventory(ctx context.Context, sale entity.SaleSnapshot) error {
	decrements := quantitiesByItem(sale)
	if len(decrements) == 0 {
		return nil
	}

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	defer tx.Rollback()

	var shortIDs []int
	for itemID, amount := range decrements {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP WHERE item_id = ? AND quantity >= ?`,
			amount, itemID, amount)
		if err != nil {
			return fmt.Errorf("failed to decrement item %d: %w", itemID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			shortIDs = append(shortIDs, itemID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit inventory update: %w", err)
	}
	for _, id := range shortIDs {
		have, err := c.Quantity(ctx, id)
		if err != nil {
			log.Printf("Inventory: item %d not stocked, quantity not decremented", id)
			continue
		}
		log.Printf("Inventory: insufficient stock for item %d (have %d, sold %d), quantity not decremented", id, have, decrements[id])
	}
	return nil
}

func (c *SQLiteCatalog) GetDiscount(ctx context.Context, customerID int, sale entity.SaleSnapshot) (*entity.DiscountInfo, error) {
	var row discountRow
	err := c.db.GetContext(ctx, &row,
		`SELECT customer_id, kind, percentage, amount FROM customer_discounts WHERE customer_id = ?`, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entity.DiscountInfo{
		Kind:       enum.DiscountKind(row.Kind),
		Percentage: row.Percentage,
		Amount:     entity.NewMoneyFromDecimal(row.Amount),
	}, nil
}
