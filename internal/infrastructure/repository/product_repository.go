package repository

import (
	"context"
	"errors"
	"log"

	"github.com/sangkips/pos-register/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
	"gorm.io/gorm"
)

// ProductRepository serves catalog lookups and stock updates from the products table
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var (
	_ domainRepo.CatalogRepository = (*ProductRepository)(nil)
	_ domainRepo.InventorySystem   = (*ProductRepository)(nil)
)

func (r *ProductRepository) GetItem(ctx context.Context, itemID int) (entity.CatalogItem, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "item_id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.CatalogItem{}, &domainRepo.ItemNotFoundError{ItemID: itemID}
	}
	if err != nil {
		return entity.CatalogItem{}, &domainRepo.LookupFailureError{Cause: err}
	}
	return product.ToCatalogItem(), nil
}

// Upsert creates the product or updates the description, price and tax rate
// of the existing row with the same item id. Stock is only set on create;
// afterwards it belongs to UpdateInventory.
func (r *ProductRepository) Upsert(ctx context.Context, product *entity.Product) error {
	var existing entity.Product
	err := r.db.WithContext(ctx).First(&existing, "item_id = ?", product.ItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(product).Error
	}
	if err != nil {
		return err
	}

	product.ID = existing.ID
	product.Quantity = existing.Quantity
	return r.db.WithContext(ctx).Model(&existing).
		Select("description", "price", "tax_rate").
		Updates(product).Error
}

// Quantity returns the stock count for itemID
func (r *ProductRepository) Quantity(ctx context.Context, itemID int) (int, error) {
	var product entity.Product
	if err := r.db.WithContext(ctx).Select("quantity").First(&product, "item_id = ?", itemID).Error; err != nil {
		return 0, err
	}
	return product.Quantity, nil
}

// UpdateInventory atomically decrements stock for every sold item in a single
// transaction. Uses: UPDATE products SET quantity = quantity - ? WHERE item_id = ? AND quantity >= ?
// Items without enough stock are left untouched and logged.
func (r *ProductRepository) UpdateInventory(ctx context.Context, sale entity.SaleSnapshot) error {
	decrements := quantitiesByItem(sale)
	if len(decrements) == 0 {
		return nil
	}

	var shortIDs []int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for itemID, amount := range decrements {
			result := tx.Model(&entity.Product{}).
				Where("item_id = ? AND quantity >= ?", itemID, amount).
				Update("quantity", gorm.Expr("quantity - ?", amount))

			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				shortIDs = append(shortIDs, itemID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, id := range shortIDs {
		have, err := r.Quantity(ctx, id)
		if err != nil {
			log.Printf("Inventory: item %d not stocked, quantity not decremented", id)
			continue
		}
		log.Printf("Inventory: insufficient stock for item %d (have %d, sold %d), quantity not decremented", id, have, decrements[id])
	}
	return nil
}
