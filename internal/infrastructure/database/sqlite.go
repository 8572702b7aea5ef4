package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens a SQLite database at path (":memory:" for a private
// in-memory database)
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	log.Printf("Successfully opened SQLite database %s", path)
	return db, nil
}

// MigrateSQLite creates the catalog and discount tables
func MigrateSQLite(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS products (
            item_id INTEGER PRIMARY KEY,
            description TEXT NOT NULL,
            price TEXT NOT NULL,
            tax_rate INTEGER NOT NULL DEFAULT 0,
            quantity INTEGER NOT NULL DEFAULT 0,
            updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS customer_discounts (
            customer_id INTEGER PRIMARY KEY,
            kind INTEGER NOT NULL DEFAULT 0,
            percentage INTEGER NOT NULL DEFAULT 0,
            amount TEXT NOT NULL DEFAULT '0'
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("sqlite migration failed: %w", err)
		}
	}
	return nil
}

// SeedSQLite inserts the starter catalog and discounts when missing
func SeedSQLite(db *sqlx.DB, initialStock int) error {
	for _, p := range DefaultProducts(initialStock) {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO products (item_id, description, price, tax_rate, quantity) VALUES (?, ?, ?, ?, ?)`,
			p.ItemID, p.Description, p.Price.StringFixed(2), p.TaxRate, p.Quantity,
		); err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ItemID, err)
		}
	}

	for _, d := range DefaultDiscounts() {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO customer_discounts (customer_id, kind, percentage, amount) VALUES (?, ?, ?, ?)`,
			d.CustomerID, int(d.Kind), d.Percentage, d.Amount.StringFixed(2),
		); err != nil {
			return fmt.Errorf("failed to seed discount for customer %d: %w", d.CustomerID, err)
		}
	}
	return nil
}
