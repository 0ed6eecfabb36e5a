// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveItemsQueryIsNotConstructed = errors.New(
	"GetActiveItemsQuery must be created via NewGetActiveItemsQuery constructor",
)

// GetActiveItemsQuery retrieves all items currently offered for sale.
// Returns catalog attributes and stock counts for listing pages.
//
// Example:
//
//	query := NewGetActiveItemsQuery()
//	handler := NewGetActiveItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve items: %w", err)
//	}
//
//	for _, item := range items {
//	    fmt.Printf("%s: %s %s (%d available)\n",
//	        item.SKU, item.Price, item.Currency, item.Available)
//	}
type GetActiveItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveItemsQuery creates a query to retrieve all active items.
// This is a parameterless query that fetches the complete active catalog.
func NewGetActiveItemsQuery() GetActiveItemsQuery {
	return GetActiveItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveItemsQueryIsNotConstructed if validation fails.
func (q GetActiveItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveItemsQueryIsNotConstructed)
}

// GetActiveItemsQueryResponse represents item information in the read model.
// Contains essential catalog data for display without domain reconstruction.
type GetActiveItemsQueryResponse struct {
	ID          kernel.UUID
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	Category    string
	Available   int
	Reserved    int
}
