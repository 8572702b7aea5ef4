package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/repository"
)

// TotalRevenueView shows the revenue of every sale paid since startup
type TotalRevenueView struct {
	mu    sync.Mutex
	total entity.Money
	out   io.Writer
}

// NewTotalRevenueView creates a view printing to out
func NewTotalRevenueView(out io.Writer) *TotalRevenueView {
	return &TotalRevenueView{total: entity.ZeroMoney(), out: out}
}

var _ repository.SaleObserver = (*TotalRevenueView)(nil)

func (v *TotalRevenueView) OnSalePaid(total entity.Money) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.total = v.total.Plus(total)
	fmt.Fprintln(v.out, "--- Total Revenue Update ---")
	fmt.Fprintf(v.out, "Current Total Revenue: %s\n", v.total)
	fmt.Fprintln(v.out, "--------------------------")
}

// TotalRevenue returns the revenue shown so far
func (v *TotalRevenueView) TotalRevenue() entity.Money {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}
