package entity

import (
	"time"

	"github.com/sangkips/pos-register/internal/domain/enum"
)

// PaymentNotifier is told the finalized total once a sale has been paid
type PaymentNotifier interface {
	NotifySalePaid(total Money)
}

// SaleSnapshot is a read-only view of a sale handed to collaborators.
// Every call builds a fresh copy; it never aliases the sale's own slices.
type SaleSnapshot struct {
	SubtotalBeforeTax Money      `json:"subtotal_before_tax"`
	AccumulatedTax    Money      `json:"accumulated_tax"`
	Lines             []string   `json:"lines"`
	Items             []LineItem `json:"items"`
}

// Sale is one sale made by one customer and paid with one payment (aggregate root).
type Sale struct {
	startedAt       time.Time
	items           []LineItem
	subtotal        Money
	tax             Money
	finalTotal      Money
	ended           bool
	amountPaid      Money
	change          Money
	paid            bool
	discountApplied bool
	notifier        PaymentNotifier
	now             func() time.Time
}

// NewSale starts a sale with zero totals. notifier may be nil.
func NewSale(notifier PaymentNotifier) *Sale {
	return &Sale{
		startedAt:  time.Now(),
		items:      make([]LineItem, 0),
		subtotal:   ZeroMoney(),
		tax:        ZeroMoney(),
		finalTotal: ZeroMoney(),
		amountPaid: ZeroMoney(),
		change:     ZeroMoney(),
		notifier:   notifier,
		now:        time.Now,
	}
}

// AddItem appends a line and updates the running subtotal and VAT.
// Quantity is validated by the caller.
func (s *Sale) AddItem(item CatalogItem, quantity int) {
	line := LineItem{Item: item, Quantity: quantity}
	s.items = append(s.items, line)

	s.subtotal = s.subtotal.Plus(line.LineTotal())
	// VAT is computed per unit and then scaled, not on the line total
	s.tax = s.tax.Plus(line.LineTax())
}

// ApplyDiscount reduces the subtotal before tax. VAT keeps its pre-discount
// figure. Returns false when nothing was applied: nil discount, unknown kind,
// or a discount already applied to this sale.
func (s *Sale) ApplyDiscount(discount *DiscountInfo) bool {
	if discount == nil || s.discountApplied {
		return false
	}

	switch discount.Kind {
	case enum.DiscountKindPercentage:
		s.subtotal = s.subtotal.Minus(s.subtotal.Percent(discount.Percentage))
	case enum.DiscountKindFixedAmount:
		s.subtotal = s.subtotal.Minus(discount.Amount)
	default:
		return false
	}
	s.discountApplied = true
	return true
}

// EndSale fixes the final total. Calling it again recomputes from current state.
func (s *Sale) EndSale() Money {
	s.finalTotal = s.subtotal.Plus(s.tax)
	s.ended = true
	return s.finalTotal
}

// ProcessPayment records the payment, computes change, notifies the
// PaymentNotifier and returns the receipt.
func (s *Sale) ProcessPayment(paid Money) (*Receipt, error) {
	if !s.ended {
		return nil, ErrSaleNotEnded
	}
	if s.paid {
		return nil, ErrSaleAlreadyPaid
	}
	if paid.LessThan(s.finalTotal) {
		return nil, &InsufficientPaymentError{Paid: paid, Due: s.finalTotal}
	}

	s.amountPaid = paid
	s.change = paid.Minus(s.finalTotal)
	s.paid = true

	if s.notifier != nil {
		s.notifier.NotifySalePaid(s.finalTotal)
	}

	return s.buildReceipt(), nil
}

func (s *Sale) buildReceipt() *Receipt {
	items := make([]ReceiptItem, 0, len(s.items))
	for _, line := range s.items {
		items = append(items, ReceiptItem{
			Name:      line.Item.Description,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
			TaxRate:   line.Item.TaxRate,
			Total:     line.LineTotal(),
		})
	}

	return &Receipt{
		CompletedAt: s.now(),
		Lines:       s.formattedLines(),
		Items:       items,
		SubTotal:    s.subtotal,
		VAT:         s.tax,
		Total:       s.finalTotal,
		Paid:        s.amountPaid,
		Change:      s.change,
	}
}

func (s *Sale) formattedLines() []string {
	lines := make([]string, 0, len(s.items))
	for _, line := range s.items {
		lines = append(lines, line.Format())
	}
	return lines
}

// Snapshot returns the current subtotal, VAT and line items
func (s *Sale) Snapshot() SaleSnapshot {
	return SaleSnapshot{
		SubtotalBeforeTax: s.subtotal,
		AccumulatedTax:    s.tax,
		Lines:             s.formattedLines(),
		Items:             s.Items(),
	}
}

// SnapshotForDiscount is the view handed to the discount lookup
func (s *Sale) SnapshotForDiscount() SaleSnapshot { return s.Snapshot() }

// SnapshotForAccounting is the view handed to the accounting system
func (s *Sale) SnapshotForAccounting() SaleSnapshot { return s.Snapshot() }

// SnapshotForInventory is the view handed to the inventory system
func (s *Sale) SnapshotForInventory() SaleSnapshot { return s.Snapshot() }

func (s *Sale) StartedAt() time.Time { return s.startedAt }

// Items returns a copy of the line items in insertion order
func (s *Sale) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Sale) SubtotalBeforeTax() Money { return s.subtotal }

func (s *Sale) AccumulatedTax() Money { return s.tax }

// FinalTotal returns the total with tax and whether the sale has been ended
func (s *Sale) FinalTotal() (Money, bool) {
	return s.finalTotal, s.ended
}

func (s *Sale) IsEnded() bool { return s.ended }

func (s *Sale) IsPaid() bool { return s.paid }

func (s *Sale) AmountPaid() Money { return s.amountPaid }

// ChangeDue returns the change, zero until payment has been processed
func (s *Sale) ChangeDue() Money { return s.change }

func (s *Sale) DiscountApplied() bool { return s.discountApplied }
