package service

import (
	"context"
	"errors"
	"log"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/enum"
	"github.com/sangkips/pos-register/internal/domain/repository"
	"github.com/sangkips/pos-register/pkg/apperror"
)

// RegisterService drives one sale at a time through
// start → enter items → discount → end → pay.
type RegisterService struct {
	catalog    repository.CatalogRepository
	discounts  repository.DiscountRepository
	accounting repository.AccountingSystem
	inventory  repository.InventorySystem
	receipts   repository.ReceiptSink
	observers  *SaleObserverRegistry

	sale  *entity.Sale
	state enum.SaleState
}

// NewRegisterService creates a new register service
func NewRegisterService(
	catalog repository.CatalogRepository,
	discounts repository.DiscountRepository,
	accounting repository.AccountingSystem,
	inventory repository.InventorySystem,
	receipts repository.ReceiptSink,
	observers *SaleObserverRegistry,
) *RegisterService {
	if observers == nil {
		observers = NewSaleObserverRegistry()
	}
	return &RegisterService{
		catalog:    catalog,
		discounts:  discounts,
		accounting: accounting,
		inventory:  inventory,
		receipts:   receipts,
		observers:  observers,
		state:      enum.SaleStateNoSale,
	}
}

// AddSaleObserver registers an observer notified on every paid sale.
// Observers should be registered before the first sale starts.
func (s *RegisterService) AddSaleObserver(observer repository.SaleObserver) {
	s.observers.Register(observer)
}

// RemoveSaleObserver stops notifying observer. It reports false when the
// observer was not registered.
func (s *RegisterService) RemoveSaleObserver(observer repository.SaleObserver) bool {
	return s.observers.Unregister(observer)
}

// State returns where the register is in the sale lifecycle
func (s *RegisterService) State() enum.SaleState {
	return s.state
}

// CurrentSnapshot returns a snapshot of the active sale, if any
func (s *RegisterService) CurrentSnapshot() (entity.SaleSnapshot, bool) {
	if s.sale == nil {
		return entity.SaleSnapshot{}, false
	}
	return s.sale.Snapshot(), true
}

// StartSale discards any previous sale and opens a new one
func (s *RegisterService) StartSale() {
	s.sale = entity.NewSale(s.observers)
	s.state = enum.SaleStateOpen
}

// EnterItem looks up itemID and adds quantity of it to the open sale.
// Without an open sale, or with a quantity below one, the call is ignored.
func (s *RegisterService) EnterItem(ctx context.Context, itemID, quantity int) error {
	if s.state != enum.SaleStateOpen {
		log.Printf("Register: no open sale, ignoring item %d", itemID)
		return nil
	}
	if quantity <= 0 {
		log.Printf("Register: invalid quantity %d for item %d, ignoring", quantity, itemID)
		return nil
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		var notFound *repository.ItemNotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return apperror.NewOperationFailedError("operation failed due to a catalog error", err)
	}

	s.sale.AddItem(item, quantity)
	return nil
}

// RequestDiscount asks the discount lookup for customerID and applies the result
func (s *RegisterService) RequestDiscount(ctx context.Context, customerID int) error {
	if s.state != enum.SaleStateOpen {
		log.Printf("Register: no open sale, ignoring discount request for customer %d", customerID)
		return nil
	}

	discount, err := s.discounts.GetDiscount(ctx, customerID, s.sale.SnapshotForDiscount())
	if err != nil {
		return apperror.NewOperationFailedError("operation failed due to a discount lookup error", err)
	}
	if discount == nil {
		return nil
	}

	if !discount.Kind.IsKnown() {
		log.Printf("Warning: unknown discount kind %s for customer %d, no discount applied", discount.Kind, customerID)
		return nil
	}
	if !s.sale.ApplyDiscount(discount) {
		log.Printf("Register: a discount is already applied, ignoring discount for customer %d", customerID)
	}
	return nil
}

// EndSale fixes the final total of the open sale. The bool is false when
// there is no sale to end.
func (s *RegisterService) EndSale() (entity.Money, bool) {
	switch s.state {
	case enum.SaleStateOpen, enum.SaleStateEnded:
		total := s.sale.EndSale()
		s.state = enum.SaleStateEnded
		return total, true
	default:
		log.Printf("Register: cannot end sale in state %s", s.state)
		return entity.ZeroMoney(), false
	}
}

// MakePayment settles the ended sale, then prints the receipt and updates
// accounting and inventory. Collaborator failures after the payment has been
// recorded are logged and do not undo it.
func (s *RegisterService) MakePayment(ctx context.Context, amount entity.Money) (*entity.Receipt, error) {
	switch s.state {
	case enum.SaleStateNoSale:
		return nil, entity.ErrSaleNotStarted
	case enum.SaleStateOpen:
		return nil, entity.ErrSaleNotEnded
	case enum.SaleStatePaid:
		return nil, entity.ErrSaleAlreadyPaid
	}

	receipt, err := s.sale.ProcessPayment(amount)
	if err != nil {
		return nil, err
	}
	s.state = enum.SaleStatePaid

	if err := s.receipts.PrintReceipt(ctx, receipt); err != nil {
		log.Printf("Register: receipt printing failed: %v", err)
	}
	if err := s.accounting.UpdateAccounting(ctx, s.sale.SnapshotForAccounting()); err != nil {
		log.Printf("Register: accounting update failed: %v", err)
	}
	if err := s.inventory.UpdateInventory(ctx, s.sale.SnapshotForInventory()); err != nil {
		log.Printf("Register: inventory update failed: %v", err)
	}

	return receipt, nil
}

// GetChange returns the change for the current sale, zero when there is none
func (s *RegisterService) GetChange() entity.Money {
	if s.sale == nil {
		return entity.ZeroMoney()
	}
	return s.sale.ChangeDue()
}
