package repository

import (
	"context"

	"github.com/sangkips/pos-register/internal/domain/entity"
)

// DiscountRepository finds the discount a customer is entitled to.
// A nil DiscountInfo with a nil error means no discount applies.
type DiscountRepository interface {
	GetDiscount(ctx context.Context, customerID int, sale entity.SaleSnapshot) (*entity.DiscountInfo, error)
}
