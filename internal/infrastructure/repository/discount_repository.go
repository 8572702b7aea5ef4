package repository

import (
	"context"
	"errors"

	"github.com/sangkips/pos-register/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
	"gorm.io/gorm"
)

// DiscountRepository reads customer discounts from the customer_discounts table
type DiscountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

var _ domainRepo.DiscountRepository = (*DiscountRepository)(nil)

func (r *DiscountRepository) GetDiscount(ctx context.Context, customerID int, sale entity.SaleSnapshot) (*entity.DiscountInfo, error) {
	var discount entity.CustomerDiscount
	err := r.db.WithContext(ctx).First(&discount, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return discount.ToDiscountInfo(), nil
}

// Upsert creates the discount or replaces the kind, percentage and amount of
// the existing one for the same customer
func (r *DiscountRepository) Upsert(ctx context.Context, discount *entity.CustomerDiscount) error {
	var existing entity.CustomerDiscount
	err := r.db.WithContext(ctx).First(&existing, "customer_id = ?", discount.CustomerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(discount).Error
	}
	if err != nil {
		return err
	}

	discount.ID = existing.ID
	return r.db.WithContext(ctx).Model(&existing).
		Select("kind", "percentage", "amount").
		Updates(discount).Error
}
