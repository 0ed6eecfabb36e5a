package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveItemsQueryHandler retrieves the active catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveItemsQueryHandler creates a handler for active catalog queries.
// Requires a GORM database connection for query execution.
func NewGetActiveItemsQueryHandler(db *gorm.DB) GetActiveItemsQueryHandler {
	return GetActiveItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active items.
// Returns a slice of item read models sorted by SKU.
func (h GetActiveItemsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveItemsQuery,
) ([]GetActiveItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetActiveItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			description,
			price_amount,
			price_currency,
			category,
			stock_available,
			stock_reserved
		FROM items
		WHERE is_active = true
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetActiveItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.SKU,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Currency,
			&item.Category,
			&item.Available,
			&item.Reserved,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
