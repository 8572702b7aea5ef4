package repository

import (
	"context"
	"sync"

	"github.com/sangkips/pos-register/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
)

// MemoryDiscounts maps customer ids to discounts
type MemoryDiscounts struct {
	mu         sync.RWMutex
	byCustomer map[int]entity.DiscountInfo
}

// NewMemoryDiscounts creates an empty discount table
func NewMemoryDiscounts() *MemoryDiscounts {
	return &MemoryDiscounts{byCustomer: make(map[int]entity.DiscountInfo)}
}

// NewDefaultMemoryDiscounts gives customer 1234 ten percent off
func NewDefaultMemoryDiscounts() *MemoryDiscounts {
	d := NewMemoryDiscounts()
	d.Put(1234, *entity.NewPercentageDiscount(10))
	return d
}

var _ domainRepo.DiscountRepository = (*MemoryDiscounts)(nil)

// Put sets the discount for customerID
func (d *MemoryDiscounts) Put(customerID int, discount entity.DiscountInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byCustomer[customerID] = discount
}

// GetDiscount returns a copy of the customer's discount, or nil when there is none
func (d *MemoryDiscounts) GetDiscount(ctx context.Context, customerID int, sale entity.SaleSnapshot) (*entity.DiscountInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	discount, ok := d.byCustomer[customerID]
	if !ok {
		return nil, nil
	}
	return &discount, nil
}
