package http

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body returned for every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID types.UUID `json:"id" swaggertype:"string" format:"uuid"`
}

// CreateItemRequest is the payload for registering a new catalog item.
type CreateItemRequest struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency,omitempty"`
	Category     string  `json:"category"`
	InitialStock int     `json:"initialStock"`
}

// UpdateItemRequest is the payload for changing a catalog item's attributes.
// Stock is adjusted through the dedicated stock endpoints, not here.
type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency,omitempty"`
	Category    string  `json:"category"`
}

// StockOperationRequest carries the quantity for reserve, release, and
// commit stock operations.
type StockOperationRequest struct {
	Quantity int `json:"quantity"`
}

// AdjustStockRequest overwrites the available quantity after a recount.
type AdjustStockRequest struct {
	NewAvailable int `json:"newAvailable"`
}

// ItemSummary is the read model for catalog listings.
type ItemSummary struct {
	ID          types.UUID      `json:"id" swaggertype:"string" format:"uuid"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category,omitempty"`
	Available   int             `json:"available"`
	Reserved    int             `json:"reserved"`
}

// LowStockItem is the read model for the low stock report.
type LowStockItem struct {
	ID        types.UUID `json:"id" swaggertype:"string" format:"uuid"`
	SKU       string     `json:"sku"`
	Name      string     `json:"name"`
	Available int        `json:"available"`
	Reserved  int        `json:"reserved"`
}

// OrderLineRequest is one requested line of an order.
// ItemID optionally links the line to a catalog item for stock tracking.
type OrderLineRequest struct {
	ProductID string      `json:"productId"`
	ItemID    *types.UUID `json:"itemId,omitempty" swaggertype:"string" format:"uuid"`
	Quantity  int         `json:"quantity"`
	UnitPrice float64     `json:"unitPrice"`
}

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Lines      []OrderLineRequest `json:"lines"`
}

// UpdateOrderLinesRequest replaces the full set of lines on a pending order.
type UpdateOrderLinesRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// ShipOrderRequest carries the carrier tracking number for shipping.
type ShipOrderRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// CancelOrderRequest carries the reason an order is being cancelled.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderSummary is the read model for a customer's order history.
type OrderSummary struct {
	ID             types.UUID      `json:"id" swaggertype:"string" format:"uuid"`
	Status         string          `json:"status"`
	TotalAmount    decimal.Decimal `json:"totalAmount" swaggertype:"string"`
	OrderDate      time.Time       `json:"orderDate"`
	TrackingNumber *string         `json:"trackingNumber,omitempty"`
	ItemCount      int             `json:"itemCount"`
}
