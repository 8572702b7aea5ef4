package repository

import (
	"context"

	"github.com/sangkips/pos-register/internal/domain/entity"
)

// AccountingSystem records completed sales
type AccountingSystem interface {
	UpdateAccounting(ctx context.Context, sale entity.SaleSnapshot) error
}

// InventorySystem adjusts stock after a completed sale
type InventorySystem interface {
	UpdateInventory(ctx context.Context, sale entity.SaleSnapshot) error
}

// ReceiptSink prints or otherwise delivers a receipt
type ReceiptSink interface {
	PrintReceipt(ctx context.Context, receipt *entity.Receipt) error
}

// SaleObserver is notified with the finalized total every time a sale is paid
type SaleObserver interface {
	OnSalePaid(total entity.Money)
}

// SaleObserverFunc adapts a plain function to SaleObserver
type SaleObserverFunc func(total entity.Money)

func (f SaleObserverFunc) OnSalePaid(total entity.Money) {
	f(total)
}
