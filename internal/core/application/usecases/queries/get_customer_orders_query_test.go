package queries_test

import (
	"testing"

	"commerce/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery("customer-42")
	require.NoError(t, err)

	assert.Equal(t, "customer-42", query.CustomerID())
	assert.NoError(t, query.Validate())
}

func TestNewGetCustomerOrdersQuery_EmptyCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCustomerIDIsRequired)
}

func TestGetCustomerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}
