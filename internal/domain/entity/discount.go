package entity

import "github.com/sangkips/pos-register/internal/domain/enum"

// DiscountInfo describes a discount returned by the discount lookup
type DiscountInfo struct {
	Kind       enum.DiscountKind `json:"kind"`
	Percentage int               `json:"percentage"`
	Amount     Money             `json:"amount"`
}

// NewPercentageDiscount creates a discount of p percent off the subtotal
func NewPercentageDiscount(p int) *DiscountInfo {
	return &DiscountInfo{Kind: enum.DiscountKindPercentage, Percentage: p, Amount: ZeroMoney()}
}

// NewFixedDiscount creates a discount of a fixed amount off the subtotal
func NewFixedDiscount(amount Money) *DiscountInfo {
	return &DiscountInfo{Kind: enum.DiscountKindFixedAmount, Amount: amount}
}
