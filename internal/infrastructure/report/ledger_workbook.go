package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/infrastructure/repository"
	"github.com/xuri/excelize/v2"
)

const ledgerSheet = "Sales"

// LedgerSource lists booked sales
type LedgerSource interface {
	Entries() []repository.LedgerEntry
}

// LedgerWorkbook writes the day's booked sales to an .xlsx workbook
type LedgerWorkbook struct {
	ledger LedgerSource
	path   string
}

// NewLedgerWorkbook creates an exporter writing ledger to path
func NewLedgerWorkbook(ledger LedgerSource, path string) *LedgerWorkbook {
	return &LedgerWorkbook{ledger: ledger, path: path}
}

// Name identifies the export in closeout logs
func (w *LedgerWorkbook) Name() string {
	return "sales workbook"
}

// Export writes one row per sale followed by a totals row
func (w *LedgerWorkbook) Export(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return err
	}

	header := []interface{}{"#", "Recorded At", "Subtotal", "VAT", "Total", "Items"}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return err
	}

	entries := w.ledger.Entries()
	subtotal, vat, total := entity.ZeroMoney(), entity.ZeroMoney(), entity.ZeroMoney()
	for i, e := range entries {
		row := []interface{}{
			i + 1,
			e.RecordedAt.Format(time.RFC3339),
			e.Subtotal.Decimal().InexactFloat64(),
			e.VAT.Decimal().InexactFloat64(),
			e.Total().Decimal().InexactFloat64(),
			strings.Join(e.Lines, "; "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return err
		}
		subtotal = subtotal.Plus(e.Subtotal)
		vat = vat.Plus(e.VAT)
		total = total.Plus(e.Total())
	}

	totals := []interface{}{
		"",
		"Total",
		subtotal.Decimal().InexactFloat64(),
		vat.Decimal().InexactFloat64(),
		total.Decimal().InexactFloat64(),
		fmt.Sprintf("%d sales", len(entries)),
	}
	cell, err := excelize.CoordinatesToCellName(1, len(entries)+2)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(ledgerSheet, cell, &totals); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save sales workbook %s: %w", w.path, err)
	}
	return nil
}
