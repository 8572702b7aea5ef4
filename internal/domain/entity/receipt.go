package entity

import "time"

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
	TaxRate   int    `json:"tax_rate"`
	Total     Money  `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is produced once, when the sale is paid. Header and ReceiptNo are
// filled in by whoever prints it.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	ReceiptNo   string        `json:"receipt_no,omitempty"`
	CompletedAt time.Time     `json:"completed_at"`
	Lines       []string      `json:"lines"`
	Items       []ReceiptItem `json:"items"`
	SubTotal    Money         `json:"sub_total"`
	VAT         Money         `json:"vat"`
	Total       Money         `json:"total"`
	Paid        Money         `json:"paid"`
	Change      Money         `json:"change"`
}
