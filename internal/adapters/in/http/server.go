// Package http exposes the application's use cases over a REST API.
// Thin echo handlers bind requests, build commands and queries, and map
// domain errors onto HTTP status codes. No business logic lives here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateItem     commands.CreateItemCommandHandler
	UpdateItem     commands.UpdateItemCommandHandler
	ActivateItem   commands.ActivateItemCommandHandler
	DeactivateItem commands.DeactivateItemCommandHandler
	ReserveStock   commands.ReserveStockCommandHandler
	ReleaseStock   commands.ReleaseStockCommandHandler
	CommitStock    commands.CommitStockCommandHandler
	AdjustStock    commands.AdjustStockCommandHandler

	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrderItems    commands.UpdateOrderItemsCommandHandler
	ValidateOrder       commands.ValidateOrderCommandHandler
	ProcessOrderPayment commands.ProcessOrderPaymentCommandHandler
	ShipOrder           commands.ShipOrderCommandHandler
	DeliverOrder        commands.DeliverOrderCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler

	ActiveItems    queries.GetActiveItemsQueryHandler
	LowStockItems  queries.GetLowStockItemsQueryHandler
	CustomerOrders queries.GetCustomerOrdersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers

	// lowStockThreshold is the default for GET /items/low-stock when the
	// caller does not pass an explicit threshold.
	lowStockThreshold int
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, lowStockThreshold int) *Server {
	return &Server{
		handlers:          handlers,
		lowStockThreshold: lowStockThreshold,
	}
}

// RegisterRoutes attaches all routes to the given echo instance.
// Business routes live under /api/v1; health and the OpenAPI contract are
// served from the root.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.yml", s.ServeContract)

	api := e.Group("/api/v1")

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.GetActiveItems)
	api.GET("/items/low-stock", s.GetLowStockItems)
	api.PUT("/items/:id", s.UpdateItem)
	api.POST("/items/:id/activate", s.ActivateItem)
	api.POST("/items/:id/deactivate", s.DeactivateItem)
	api.POST("/items/:sku/stock/reserve", s.ReserveStock)
	api.POST("/items/:sku/stock/release", s.ReleaseStock)
	api.POST("/items/:sku/stock/commit", s.CommitStock)
	api.POST("/items/:sku/stock/adjust", s.AdjustStock)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetCustomerOrders)
	api.PUT("/orders/:id/items", s.UpdateOrderItems)
	api.POST("/orders/:id/validate", s.ValidateOrder)
	api.POST("/orders/:id/payment", s.ProcessOrderPayment)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateItem handles POST /api/v1/items.
// @Summary Register a new catalog item
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item registration request"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "SKU already in use"
// @Router /items [post]
func (s *Server) CreateItem(ctx echo.Context) error {
	var req CreateItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(
		itemID,
		req.SKU,
		req.Name,
		req.Description,
		req.Price,
		req.Currency,
		req.Category,
		req.InitialStock,
	)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.CreateItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: itemID.Bytes()})
}

// GetActiveItems handles GET /api/v1/items.
// @Summary List active catalog items
// @Tags items
// @Produce json
// @Success 200 {array} ItemSummary
// @Failure 500 {object} ErrorResponse
// @Router /items [get]
func (s *Server) GetActiveItems(ctx echo.Context) error {
	query := queries.NewGetActiveItemsQuery()

	items, err := s.handlers.ActiveItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to retrieve items")
	}

	response := make([]ItemSummary, len(items))
	for i, item := range items {
		response[i] = ItemSummary{
			ID:          item.ID.Bytes(),
			SKU:         item.SKU,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Currency:    item.Currency,
			Category:    item.Category,
			Available:   item.Available,
			Reserved:    item.Reserved,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockItems handles GET /api/v1/items/low-stock.
// @Summary List active items with available stock below a threshold
// @Tags items
// @Produce json
// @Param threshold query int false "Availability threshold (exclusive)"
// @Success 200 {array} LowStockItem
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/low-stock [get]
func (s *Server) GetLowStockItems(ctx echo.Context) error {
	threshold := s.lowStockThreshold
	if raw := ctx.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, "Invalid threshold")
		}
		threshold = parsed
	}

	query, err := queries.NewGetLowStockItemsQuery(threshold)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid threshold: "+err.Error())
	}

	items, queryErr := s.handlers.LowStockItems.Handle(ctx.Request().Context(), query)
	if queryErr != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to retrieve items")
	}

	response := make([]LowStockItem, len(items))
	for i, item := range items {
		response[i] = LowStockItem{
			ID:        item.ID.Bytes(),
			SKU:       item.SKU,
			Name:      item.Name,
			Available: item.Available,
			Reserved:  item.Reserved,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateItem handles PUT /api/v1/items/:id.
// @Summary Update a catalog item's attributes
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param request body UpdateItemRequest true "Item update request"
// @Success 204 "Item updated"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /items/{id} [put]
func (s *Server) UpdateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid item id")
	}

	var req UpdateItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, req.Name, req.Description, req.Price, req.Currency, req.Category)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActivateItem handles POST /api/v1/items/:id/activate.
// @Summary Make an item orderable again
// @Tags items
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 204 "Item activated"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id}/activate [post]
func (s *Server) ActivateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid item id")
	}

	cmd, err := commands.NewActivateItemCommand(itemID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.ActivateItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateItem handles POST /api/v1/items/:id/deactivate.
// @Summary Remove an item from sale without deleting it
// @Tags items
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 204 "Item deactivated"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id}/deactivate [post]
func (s *Server) DeactivateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid item id")
	}

	cmd, err := commands.NewDeactivateItemCommand(itemID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.DeactivateItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReserveStock handles POST /api/v1/items/:sku/stock/reserve.
// @Summary Reserve available stock for an order
// @Tags stock
// @Accept json
// @Produce json
// @Param sku path string true "Item SKU"
// @Param request body StockOperationRequest true "Quantity to reserve"
// @Success 204 "Stock reserved"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient available stock"
// @Router /items/{sku}/stock/reserve [post]
func (s *Server) ReserveStock(ctx echo.Context) error {
	var req StockOperationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewReserveStockCommand(ctx.Param("sku"), req.Quantity)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid stock data: "+err.Error())
	}

	if handleErr := s.handlers.ReserveStock.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseStock handles POST /api/v1/items/:sku/stock/release.
// @Summary Return reserved stock to the available pool
// @Tags stock
// @Accept json
// @Produce json
// @Param sku path string true "Item SKU"
// @Param request body StockOperationRequest true "Quantity to release"
// @Success 204 "Stock released"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quantity exceeds reserved stock"
// @Router /items/{sku}/stock/release [post]
func (s *Server) ReleaseStock(ctx echo.Context) error {
	var req StockOperationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewReleaseStockCommand(ctx.Param("sku"), req.Quantity)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid stock data: "+err.Error())
	}

	if handleErr := s.handlers.ReleaseStock.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CommitStock handles POST /api/v1/items/:sku/stock/commit.
// @Summary Consume reserved stock on fulfillment
// @Tags stock
// @Accept json
// @Produce json
// @Param sku path string true "Item SKU"
// @Param request body StockOperationRequest true "Quantity to commit"
// @Success 204 "Stock committed"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quantity exceeds reserved stock"
// @Router /items/{sku}/stock/commit [post]
func (s *Server) CommitStock(ctx echo.Context) error {
	var req StockOperationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCommitStockCommand(ctx.Param("sku"), req.Quantity)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid stock data: "+err.Error())
	}

	if handleErr := s.handlers.CommitStock.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdjustStock handles POST /api/v1/items/:sku/stock/adjust.
// @Summary Overwrite available stock after a manual recount
// @Tags stock
// @Accept json
// @Produce json
// @Param sku path string true "Item SKU"
// @Param request body AdjustStockRequest true "New available quantity"
// @Success 204 "Stock adjusted"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{sku}/stock/adjust [post]
func (s *Server) AdjustStock(ctx echo.Context) error {
	var req AdjustStockRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAdjustStockCommand(ctx.Param("sku"), req.NewAvailable)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid stock data: "+err.Error())
	}

	if handleErr := s.handlers.AdjustStock.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
// @Summary Place a new order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order creation request"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines, err := linesFromRequest(req.Lines)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerID, lines)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.Bytes()})
}

// GetCustomerOrders handles GET /api/v1/orders?customerId=.
// @Summary List a customer's orders, newest first
// @Tags orders
// @Produce json
// @Param customerId query string true "Customer identifier"
// @Success 200 {array} OrderSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.QueryParam("customerId"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid customer id: "+err.Error())
	}

	orders, queryErr := s.handlers.CustomerOrders.Handle(ctx.Request().Context(), query)
	if queryErr != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderSummary, len(orders))
	for i, summary := range orders {
		response[i] = OrderSummary{
			ID:             summary.ID.Bytes(),
			Status:         summary.Status,
			TotalAmount:    summary.TotalAmount,
			OrderDate:      summary.OrderDate,
			TrackingNumber: summary.TrackingNumber,
			ItemCount:      summary.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderItems handles PUT /api/v1/orders/:id/items.
// @Summary Replace the lines of a pending order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param request body UpdateOrderLinesRequest true "Replacement order lines"
// @Success 204 "Order lines replaced"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order no longer accepts item changes"
// @Router /orders/{id}/items [put]
func (s *Server) UpdateOrderItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req UpdateOrderLinesRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines, err := linesFromRequest(req.Lines)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(orderID, lines)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateOrderItems.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateOrder handles POST /api/v1/orders/:id/validate.
// @Summary Confirm a pending order's items and pricing
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 204 "Order validated"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order is not pending"
// @Router /orders/{id}/validate [post]
func (s *Server) ValidateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewValidateOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.ValidateOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessOrderPayment handles POST /api/v1/orders/:id/payment.
// @Summary Run payment for a validated order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 204 "Payment processed"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order is not validated"
// @Router /orders/{id}/payment [post]
func (s *Server) ProcessOrderPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewProcessOrderPaymentCommand(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.ProcessOrderPayment.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
// @Summary Ship a paid order with a tracking number
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param request body ShipOrderRequest true "Shipping details"
// @Success 204 "Order shipped"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order is not paid"
// @Router /orders/{id}/ship [post]
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req ShipOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, req.TrackingNumber)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.ShipOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
// @Summary Mark a shipped order as delivered
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 204 "Order delivered"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order is not shipped"
// @Router /orders/{id}/deliver [post]
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
// @Summary Cancel an order that has not been delivered
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param request body CancelOrderRequest true "Cancellation reason"
// @Success 204 "Order cancelled"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order is already final"
// @Router /orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// linesFromRequest converts request order lines into command order lines,
// parsing the optional catalog item references.
func linesFromRequest(lines []OrderLineRequest) ([]commands.OrderLine, error) {
	result := make([]commands.OrderLine, 0, len(lines))
	for _, line := range lines {
		commandLine := commands.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}

		if line.ItemID != nil {
			itemID, err := kernel.UUIDFromBytes(line.ItemID[:])
			if err != nil {
				return nil, err
			}
			commandLine.ItemID = &itemID
		}

		result = append(result, commandLine)
	}

	return result, nil
}

// statusFromError maps domain and application errors onto HTTP status codes.
// Unrecognized errors map to 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolated),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondDomainError writes an error response for a failed command,
// hiding internals behind a generic message for unexpected errors.
func respondDomainError(ctx echo.Context, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return respondError(ctx, status, "Internal server error")
	}
	return respondError(ctx, status, err.Error())
}

func respondError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
