package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/repository"
)

// TotalRevenueFileOutput keeps a running revenue total and appends it to a
// file every time a sale is paid
type TotalRevenueFileOutput struct {
	mu    sync.Mutex
	total entity.Money
	w     io.Writer
	c     io.Closer
	now   func() time.Time
}

// NewTotalRevenueFileOutput opens path for appending, creating it when missing
func NewTotalRevenueFileOutput(path string) (*TotalRevenueFileOutput, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open revenue log %s: %w", path, err)
	}
	out := NewTotalRevenueOutput(f)
	out.c = f
	return out, nil
}

// NewTotalRevenueOutput writes revenue lines to w
func NewTotalRevenueOutput(w io.Writer) *TotalRevenueFileOutput {
	return &TotalRevenueFileOutput{
		total: entity.ZeroMoney(),
		w:     w,
		now:   time.Now,
	}
}

var _ repository.SaleObserver = (*TotalRevenueFileOutput)(nil)

// OnSalePaid adds total to the running revenue and writes
// "<time>: Total Revenue: <revenue>"
func (o *TotalRevenueFileOutput) OnSalePaid(total entity.Money) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.total = o.total.Plus(total)
	if _, err := fmt.Fprintf(o.w, "%s: Total Revenue: %s\n", o.now().Format(time.RFC3339), o.total); err != nil {
		log.Printf("Warning: failed to write revenue log: %v", err)
	}
}

// TotalRevenue returns the revenue recorded so far
func (o *TotalRevenueFileOutput) TotalRevenue() entity.Money {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.total
}

// Close releases the underlying file, if any
func (o *TotalRevenueFileOutput) Close() error {
	if o.c == nil {
		return nil
	}
	return o.c.Close()
}
