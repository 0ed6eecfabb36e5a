package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
		"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// GetLowStockItemsQuery retrieves active items running low on available stock.
// Used by the replenishment report; inactive items are excluded because
// no stock operations can run against them anyway.
type GetLowStockItemsQuery struct { //nolint:recvcheck //using for validation
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a query for items below the given threshold.
// Validates that the threshold is positive.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	query := GetLowStockItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setThreshold(threshold); err != nil {
		return GetLowStockItemsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockItemsQueryIsNotConstructed if validation fails.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// Threshold returns the available count below which an item is reported.
func (q GetLowStockItemsQuery) Threshold() int {
	return q.threshold
}

func (q *GetLowStockItemsQuery) setThreshold(threshold int) error {
	if threshold <= 0 {
		return ErrThresholdIsInvalid
	}

	q.threshold = threshold
	return nil
}

// GetLowStockItemsQueryResponse represents a low stock warning in the read model.
type GetLowStockItemsQueryResponse struct {
	ID        kernel.UUID
	SKU       string
	Name      string
	Available int
	Reserved  int
}
