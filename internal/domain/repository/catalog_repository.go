package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/pkg/apperror"
)

// CatalogRepository looks up item snapshots by item id
type CatalogRepository interface {
	// GetItem returns *ItemNotFoundError when the id is unknown and
	// *LookupFailureError when the catalog could not be consulted.
	GetItem(ctx context.Context, itemID int) (entity.CatalogItem, error)
}

// ItemNotFoundError reports an item id that does not exist in the catalog
type ItemNotFoundError struct {
	ItemID int
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item with id %d was not found in the catalog", e.ItemID)
}

// Is lets callers match with errors.Is(err, apperror.ErrNotFound)
func (e *ItemNotFoundError) Is(target error) bool {
	return target == apperror.ErrNotFound
}

// LookupFailureError reports that the catalog backend was unavailable, so it is
// unknown whether the item exists
type LookupFailureError struct {
	Cause error
}

func (e *LookupFailureError) Error() string {
	return "catalog lookup failed: " + e.Cause.Error()
}

func (e *LookupFailureError) Unwrap() error {
	return e.Cause
}
