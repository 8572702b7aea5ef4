package repository

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/sangkips/pos-register/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
)

// ErrCatalogUnavailable is the simulated backend failure returned for the
// configured failure item id
var ErrCatalogUnavailable = errors.New("could not connect to the item database")

type stockedItem struct {
	item  entity.CatalogItem
	stock int
}

// MemoryCatalog is an in-memory item catalog that also keeps stock counts.
// It serves as both the catalog lookup and the inventory system.
type MemoryCatalog struct {
	mu        sync.RWMutex
	items     map[int]stockedItem
	failureID int
}

// NewMemoryCatalog creates an empty catalog. Looking up failureID always
// fails with a LookupFailureError; pass 0 to disable it.
func NewMemoryCatalog(failureID int) *MemoryCatalog {
	return &MemoryCatalog{
		items:     make(map[int]stockedItem),
		failureID: failureID,
	}
}

// NewDefaultMemoryCatalog returns a catalog stocked with coffee and croissants
func NewDefaultMemoryCatalog(failureID, initialStock int) *MemoryCatalog {
	c := NewMemoryCatalog(failureID)
	c.Put(entity.CatalogItem{ID: 101, Price: entity.NewMoney(15.00), TaxRate: 25, Description: "Coffee"}, initialStock)
	c.Put(entity.CatalogItem{ID: 102, Price: entity.NewMoney(2.50), TaxRate: 12, Description: "Croissant"}, initialStock)
	return c
}

var (
	_ domainRepo.CatalogRepository = (*MemoryCatalog)(nil)
	_ domainRepo.InventorySystem   = (*MemoryCatalog)(nil)
)

// Put adds or replaces an item together with its stock count
func (c *MemoryCatalog) Put(item entity.CatalogItem, stock int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[item.ID] = stockedItem{item: item, stock: stock}
}

func (c *MemoryCatalog) GetItem(ctx context.Context, itemID int) (entity.CatalogItem, error) {
	if c.failureID != 0 && itemID == c.failureID {
		return entity.CatalogItem{}, &domainRepo.LookupFailureError{Cause: ErrCatalogUnavailable}
	}
	if err := ctx.Err(); err != nil {
		return entity.CatalogItem{}, &domainRepo.LookupFailureError{Cause: err}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.items[itemID]
	if !ok {
		return entity.CatalogItem{}, &domainRepo.ItemNotFoundError{ItemID: itemID}
	}
	return s.item, nil
}

// Stock returns the current stock count for itemID
func (c *MemoryCatalog) Stock(itemID int) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.items[itemID]
	return s.stock, ok
}

// UpdateInventory decrements stock for every sold line. Stock never goes
// below zero; shortfalls are logged.
func (c *MemoryCatalog) UpdateInventory(ctx context.Context, sale entity.SaleSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, sold := range quantitiesByItem(sale) {
		s, ok := c.items[id]
		if !ok {
			log.Printf("Inventory: item %d not stocked, skipping", id)
			continue
		}
		if s.stock < sold {
			log.Printf("Inventory: insufficient stock for item %d (have %d, sold %d)", id, s.stock, sold)
			s.stock = 0
		} else {
			s.stock -= sold
		}
		c.items[id] = s
	}
	return nil
}

// quantitiesByItem sums sold quantities per item id
func quantitiesByItem(sale entity.SaleSnapshot) map[int]int {
	out := make(map[int]int, len(sale.Items))
	for _, line := range sale.Items {
		out[line.Item.ID] += line.Quantity
	}
	return out
}
