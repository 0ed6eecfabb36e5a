package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// GetCustomerOrdersQuery retrieves the order history of a single customer.
// Returns order summaries sorted newest first.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
// Validates that the customer id is not empty.
func NewGetCustomerOrdersQuery(customerID string) (GetCustomerOrdersQuery, error) {
	query := GetCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders to fetch.
func (q GetCustomerOrdersQuery) CustomerID() string {
	return q.customerID
}

func (q *GetCustomerOrdersQuery) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	q.customerID = customerID
	return nil
}

// GetCustomerOrdersQueryResponse represents an order summary in the read model.
// The status is rendered as its display string; line details stay behind
// the item count.
type GetCustomerOrdersQueryResponse struct {
	ID             kernel.UUID
	Status         string
	TotalAmount    decimal.Decimal
	OrderDate      time.Time
	TrackingNumber *string
	ItemCount      int
}
