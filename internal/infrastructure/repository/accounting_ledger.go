package repository

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/pos-register/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
)

// LedgerEntry is one completed sale as booked by the accounting ledger
type LedgerEntry struct {
	RecordedAt time.Time
	Subtotal   entity.Money
	VAT        entity.Money
	Lines      []string
}

// Total returns subtotal plus VAT
func (e LedgerEntry) Total() entity.Money {
	return e.Subtotal.Plus(e.VAT)
}

// AccountingLedger keeps booked sales in memory
type AccountingLedger struct {
	mu      sync.RWMutex
	entries []LedgerEntry
	now     func() time.Time
}

// NewAccountingLedger creates an empty ledger
func NewAccountingLedger() *AccountingLedger {
	return &AccountingLedger{now: time.Now}
}

var _ domainRepo.AccountingSystem = (*AccountingLedger)(nil)

func (l *AccountingLedger) UpdateAccounting(ctx context.Context, sale entity.SaleSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, len(sale.Lines))
	copy(lines, sale.Lines)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LedgerEntry{
		RecordedAt: l.now(),
		Subtotal:   sale.SubtotalBeforeTax,
		VAT:        sale.AccumulatedTax,
		Lines:      lines,
	})
	return nil
}

// Entries returns a copy of every booked sale in booking order
func (l *AccountingLedger) Entries() []LedgerEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Total returns the sum of all booked sales including VAT
func (l *AccountingLedger) Total() entity.Money {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := entity.ZeroMoney()
	for _, e := range l.entries {
		total = total.Plus(e.Total())
	}
	return total
}
