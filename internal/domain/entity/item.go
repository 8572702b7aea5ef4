package entity

import "fmt"

// CatalogItem is the catalog's snapshot of a sellable item
type CatalogItem struct {
	ID          int    `json:"id"`
	Price       Money  `json:"price"`    // unit price before tax
	TaxRate     int    `json:"tax_rate"` // percent, e.g. 25
	Description string `json:"description"`
}

// LineItem pairs a catalog snapshot with the quantity sold
type LineItem struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
}

// LineTotal returns unit price × quantity
func (l LineItem) LineTotal() Money {
	return l.Item.Price.Times(l.Quantity)
}

// UnitTax returns the VAT for a single unit
func (l LineItem) UnitTax() Money {
	return l.Item.Price.Percent(l.Item.TaxRate)
}

// LineTax returns the VAT for the line, computed per unit then scaled
func (l LineItem) LineTax() Money {
	return l.UnitTax().Times(l.Quantity)
}

// Format renders the line as "Coffee (Qty: 2, Price: 15.00, Tax: 25%)"
func (l LineItem) Format() string {
	return fmt.Sprintf("%s (Qty: %d, Price: %s, Tax: %d%%)",
		l.Item.Description, l.Quantity, l.Item.Price, l.Item.TaxRate)
}
