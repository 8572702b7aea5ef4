package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/sangkips/pos-register/internal/domain/entity"
)

// SeedCatalog upserts the given products and customer discounts. Existing
// stock counts are left alone, so seeding on every start is safe.
func SeedCatalog(
	ctx context.Context,
	products *ProductRepository,
	discounts *DiscountRepository,
	items []entity.Product,
	customerDiscounts []entity.CustomerDiscount,
) error {
	log.Println("Seeding default data...")

	for i := range items {
		if err := products.Upsert(ctx, &items[i]); err != nil {
			return fmt.Errorf("failed to seed product %d: %w", items[i].ItemID, err)
		}
	}

	for i := range customerDiscounts {
		if err := discounts.Upsert(ctx, &customerDiscounts[i]); err != nil {
			return fmt.Errorf("failed to seed discount for customer %d: %w", customerDiscounts[i].CustomerID, err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
