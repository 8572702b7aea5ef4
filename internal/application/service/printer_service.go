package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/pkg/printer"
	"github.com/sangkips/pos-register/pkg/utils"
)

// ReceiptPrinterService formats paid-sale receipts and sends them to a printer.
type ReceiptPrinterService struct {
	printer       printer.Printer
	header        entity.ReceiptHeader
	printerType   string
	paperWidth    int
	receiptPrefix string
}

// NewReceiptPrinterService creates a new receipt printer service.
func NewReceiptPrinterService(
	p printer.Printer,
	header entity.ReceiptHeader,
	printerType string,
	paperWidth int,
	receiptPrefix string,
) *ReceiptPrinterService {
	if paperWidth <= 0 {
		paperWidth = 32 // 58mm paper
	}
	return &ReceiptPrinterService{
		printer:       p,
		header:        header,
		printerType:   printerType,
		paperWidth:    paperWidth,
		receiptPrefix: receiptPrefix,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptPrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt stamps the store header and a receipt number on the receipt,
// then prints it.
func (s *ReceiptPrinterService) PrintReceipt(ctx context.Context, receipt *entity.Receipt) error {
	if receipt == nil {
		return fmt.Errorf("no receipt to print")
	}

	receipt.Header = s.header
	if receipt.ReceiptNo == "" {
		receipt.ReceiptNo = utils.GenerateReceiptNo(s.receiptPrefix)
	}

	data := FormatReceipt(receipt, s.paperWidth)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (receipt %s): %v", receipt.ReceiptNo, err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}

	return nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.CompletedAt.Format("2006-01-02 15:04"))

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, item.Total.String())
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", item.UnitPrice)
		}
		doc.TextF("  VAT %d%%", item.TaxRate)
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", r.SubTotal.String()).
		KeyValue("VAT:", r.VAT.String())
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total.String()).
		SetBold(false)

	doc.KeyValue("Cash:", r.Paid.String()).
		KeyValue("Change:", r.Change.String())

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
