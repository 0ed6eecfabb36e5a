package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"object not found", errs.NewObjectNotFoundError("item", "PROD-001"), http.StatusNotFound},
		{"business rule violated", errs.NewBusinessRuleError("sku must be unique"), http.StatusConflict},
		{"concurrency conflict", errs.NewConcurrencyConflictError("item", "PROD-001"), http.StatusConflict},
		{"value required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("sku"), http.StatusBadRequest},
		{"value out of range", errs.NewValueIsOutOfRangeError("quantity", -1, 0, 100), http.StatusBadRequest},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFromError(tt.err))
		})
	}
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders", "")

	err := respondDomainError(ctx, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestHealth(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, server.Health(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRegisterRoutes(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	e := echo.New()
	server.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /openapi.yml",
		"POST /api/v1/items",
		"GET /api/v1/items",
		"GET /api/v1/items/low-stock",
		"PUT /api/v1/items/:id",
		"POST /api/v1/items/:id/activate",
		"POST /api/v1/items/:id/deactivate",
		"POST /api/v1/items/:sku/stock/reserve",
		"POST /api/v1/items/:sku/stock/release",
		"POST /api/v1/items/:sku/stock/commit",
		"POST /api/v1/items/:sku/stock/adjust",
		"POST /api/v1/orders",
		"GET /api/v1/orders",
		"PUT /api/v1/orders/:id/items",
		"POST /api/v1/orders/:id/validate",
		"POST /api/v1/orders/:id/payment",
		"POST /api/v1/orders/:id/ship",
		"POST /api/v1/orders/:id/deliver",
		"POST /api/v1/orders/:id/cancel",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s must be registered", route)
	}
}

func TestCreateItem_InvalidBody(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/items", `{"sku":`)

	require.NoError(t, server.CreateItem(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestCreateItem_InvalidData(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	body := `{"sku":"","name":"Gaming Mouse","price":49.50,"category":"electronics","initialStock":10}`
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/items", body)

	require.NoError(t, server.CreateItem(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid item data")
}

func TestUpdateItem_InvalidID(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	body := `{"name":"Gaming Mouse","price":49.50,"category":"electronics"}`
	ctx, rec := newTestContext(http.MethodPut, "/api/v1/items/not-a-uuid", body)
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")

	require.NoError(t, server.UpdateItem(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid item id")
}

func TestReserveStock_NonPositiveQuantity(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/items/PROD-001/stock/reserve", `{"quantity":0}`)
	ctx.SetParamNames("sku")
	ctx.SetParamValues("PROD-001")

	require.NoError(t, server.ReserveStock(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid stock data")
}

func TestCreateOrder_MissingLines(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders", `{"customerId":"customer-42","lines":[]}`)

	require.NoError(t, server.CreateOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order data")
}

func TestCreateOrder_MissingCustomer(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	body := `{"customerId":"","lines":[{"productId":"PROD-001","quantity":2,"unitPrice":25.99}]}`
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders", body)

	require.NoError(t, server.CreateOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order data")
}

func TestShipOrder_MissingTrackingNumber(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(
		http.MethodPost,
		"/api/v1/orders/0d8f5a9e-3c1b-4f6a-9d2e-8b7c6a5d4e3f/ship",
		`{"trackingNumber":""}`,
	)
	ctx.SetParamNames("id")
	ctx.SetParamValues("0d8f5a9e-3c1b-4f6a-9d2e-8b7c6a5d4e3f")

	require.NoError(t, server.ShipOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order data")
}

func TestCancelOrder_InvalidID(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(http.MethodPost, "/api/v1/orders/42/cancel", `{"reason":"changed my mind"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")

	require.NoError(t, server.CancelOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order id")
}

func TestGetLowStockItems_InvalidThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(Handlers{}, 10)
			ctx, rec := newTestContext(http.MethodGet, "/api/v1/items/low-stock?threshold="+tt.threshold, "")

			require.NoError(t, server.GetLowStockItems(ctx))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetCustomerOrders_MissingCustomerID(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(http.MethodGet, "/api/v1/orders", "")

	require.NoError(t, server.GetCustomerOrders(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid customer id")
}

func TestLoadContract(t *testing.T) {
	doc, err := LoadContract()
	require.NoError(t, err)

	assert.Equal(t, "Commerce API", doc.Info.Title)

	for _, path := range []string{
		"/items",
		"/items/low-stock",
		"/items/{sku}/stock/reserve",
		"/orders",
		"/orders/{id}/cancel",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "contract must document %s", path)
	}
}

func TestServeContract(t *testing.T) {
	server := NewServer(Handlers{}, 10)
	ctx, rec := newTestContext(http.MethodGet, "/openapi.yml", "")

	require.NoError(t, server.ServeContract(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}
