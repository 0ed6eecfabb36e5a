// Package ports defines repository interfaces for the commerce domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"commerce/internal/core/domain/model/item"
	"commerce/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog item aggregates.
// Provides methods for storing, retrieving, and querying items
// with their complete state including stock levels.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	// The item must be valid and not already exist in the repository.
	// Fails with a business rule violation when the SKU is already taken.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate.
	// The item must exist in the repository and be valid.
	// Fails with a concurrency conflict when the stored version no longer
	// matches the version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item aggregate by its unique identifier.
	// Returns the complete item with its stock level and catalog attributes.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetBySKU retrieves an item aggregate by its stock keeping unit.
	// SKUs are unique across the catalog, so at most one item matches.
	// Stock operations address items this way because warehouse flows
	// key on SKU rather than on the internal identifier.
	//
	// Example:
	//   sku, err := item.NewSKU("PROD-001")
	//   if err != nil {
	//       return err
	//   }
	//   found, err := repo.GetBySKU(ctx, sku)
	//   if err != nil {
	//       return fmt.Errorf("failed to look up %s: %w", sku, err)
	//   }
	//   fmt.Printf("%s has %d units available\n", found.Name(), found.StockLevel().Available())
	GetBySKU(ctx context.Context, sku item.SKU) (*item.Item, error)
}
