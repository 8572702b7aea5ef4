package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/pos-register/internal/domain/enum"
	"github.com/sangkips/pos-register/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog row backing item lookup and stock keeping
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ItemID      int             `gorm:"uniqueIndex;not null" json:"item_id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"` // before tax
	TaxRate     int             `gorm:"default:0" json:"tax_rate"`                // percent
	Quantity    int             `gorm:"default:0" json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = utils.NewUUID()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ToCatalogItem converts the row into the snapshot handed to a sale
func (p *Product) ToCatalogItem() CatalogItem {
	return CatalogItem{
		ID:          p.ItemID,
		Price:       NewMoneyFromDecimal(p.Price),
		TaxRate:     p.TaxRate,
		Description: p.Description,
	}
}

// CustomerDiscount is a discount granted to a customer at the register
type CustomerDiscount struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID int               `gorm:"uniqueIndex;not null" json:"customer_id"`
	Kind       enum.DiscountKind `gorm:"default:0" json:"kind"`
	Percentage int               `gorm:"default:0" json:"percentage"`
	Amount     decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"amount"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer discount
func (d *CustomerDiscount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = utils.NewUUID()
	}
	return nil
}

// TableName returns the table name for the CustomerDiscount model
func (CustomerDiscount) TableName() string {
	return "customer_discounts"
}

// ToDiscountInfo converts the row into the value applied to a sale
func (d *CustomerDiscount) ToDiscountInfo() *DiscountInfo {
	return &DiscountInfo{
		Kind:       d.Kind,
		Percentage: d.Percentage,
		Amount:     NewMoneyFromDecimal(d.Amount),
	}
}
