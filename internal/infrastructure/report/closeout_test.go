package report

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeLedger struct {
	entries []repository.LedgerEntry
}

func (f fakeLedger) Entries() []repository.LedgerEntry { return f.entries }

type countingExporter struct {
	name  string
	err   error
	calls *int32
}

func (c countingExporter) Name() string { return c.name }

func (c countingExporter) Export(ctx context.Context) error {
	atomic.AddInt32(c.calls, 1)
	return c.err
}

func TestLedgerWorkbookExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	recorded := time.Date(2026, 4, 1, 17, 0, 0, 0, time.UTC)
	ledger := fakeLedger{entries: []repository.LedgerEntry{
		{RecordedAt: recorded, Subtotal: entity.NewMoney(27), VAT: entity.NewMoney(7.5), Lines: []string{"Coffee (Qty: 2, Price: 15.00, Tax: 25%)"}},
		{RecordedAt: recorded, Subtotal: entity.NewMoney(2.5), VAT: entity.NewMoney(0.3), Lines: []string{"Croissant (Qty: 1, Price: 2.50, Tax: 12%)"}},
	}}

	require.NoError(t, NewLedgerWorkbook(ledger, path).Export(context.Background()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ledgerSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"#", "Recorded At", "Subtotal", "VAT", "Total", "Items"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2026-04-01T17:00:00Z", rows[1][1])
	assert.Equal(t, "34.5", rows[1][4])
	assert.Equal(t, "Croissant (Qty: 1, Price: 2.50, Tax: 12%)", rows[2][5])
	assert.Equal(t, "Total", rows[3][1])
	assert.Equal(t, "2 sales", rows[3][5])
}

func TestLedgerWorkbookTotalsAreExact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	entry := repository.LedgerEntry{Subtotal: entity.MustParseMoney("0.10"), VAT: entity.MustParseMoney("0.20")}
	ledger := fakeLedger{entries: []repository.LedgerEntry{entry, entry, entry}}

	require.NoError(t, NewLedgerWorkbook(ledger, path).Export(context.Background()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	for cell, want := range map[string]string{"C5": "0.3", "D5": "0.6", "E5": "0.9"} {
		got, err := f.GetCellValue(ledgerSheet, cell, raw)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}

func TestLedgerWorkbookEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, NewLedgerWorkbook(fakeLedger{}, path).Export(context.Background()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ledgerSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "0 sales", rows[1][5])
}

func TestRunCloseout(t *testing.T) {
	var calls int32
	err := RunCloseout(context.Background(),
		countingExporter{name: "a", calls: &calls},
		nil,
		countingExporter{name: "b", calls: &calls},
	)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRunCloseoutReportsFailure(t *testing.T) {
	var calls int32
	boom := errors.New("disk full")

	err := RunCloseout(context.Background(),
		countingExporter{name: "workbook", err: boom, calls: &calls},
		countingExporter{name: "metrics", calls: &calls},
	)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "workbook: disk full")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
