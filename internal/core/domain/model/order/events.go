package order

import "github.com/shopspring/decimal"

// Domain event names for the order aggregate. Names are used as the event-type
// header and drive topic routing in the publishing adapter.
const (
	OrderCreatedEventName   = "order.created"
	OrderValidatedEventName = "order.validated"
	OrderPaidEventName      = "order.paid"
	OrderShippedEventName   = "order.shipped"
	OrderDeliveredEventName = "order.delivered"
	OrderCancelledEventName = "order.cancelled"
)

// OrderCreated is raised once when a new order enters the system.
type OrderCreated struct {
	OrderID     string          `json:"orderId"`
	CustomerID  string          `json:"customerId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// EventName returns the event type identifier.
func (e OrderCreated) EventName() string { return OrderCreatedEventName }

// AggregateID returns the ID of the order that raised the event.
func (e OrderCreated) AggregateID() string { return e.OrderID }

// OrderValidated is raised when a pending order passes validation.
type OrderValidated struct {
	OrderID string `json:"orderId"`
}

// EventName returns the event type identifier.
func (e OrderValidated) EventName() string { return OrderValidatedEventName }

// AggregateID returns the ID of the order that raised the event.
func (e OrderValidated) AggregateID() string { return e.OrderID }

// OrderPaid is raised when payment completes, carrying the charged amount.
type OrderPaid struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
}

// EventName returns the event type identifier.
func (e OrderPaid) EventName() string { return OrderPaidEventName }

// AggregateID returns the ID of the order that raised the event.
func (e OrderPaid) AggregateID() string { return e.OrderID }

// OrderShipped is raised when the order leaves the warehouse.
type OrderShipped struct {
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
}

// EventName returns the event type identifier.
func (e OrderShipped) EventName() string { return OrderShippedEventName }

// AggregateID returns the ID of the order that raised the event.
func (e OrderShipped) AggregateID() string { return e.OrderID }

// OrderDelivered is raised when the order reaches the customer.
type OrderDelivered struct {
	OrderID string `json:"orderId"`
}

// EventName returns the event type identifier.
func (e OrderDelivered) EventName() string { return OrderDeliveredEventName }

// AggregateID returns the ID of the order that raised the event.
func (e OrderDelivered) AggregateID() string { return e.OrderID }

// OrderCancelled is raised when the order is cancelled before delivery.
// Reason is empty when the caller gave none.
type OrderCancelled struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// EventName returns the event type identifier.
func (e OrderCancelled) EventName() string { return OrderCancelledEventName }

// AggregateID returns the ID of the order that raised the event.
func (e OrderCancelled) AggregateID() string { return e.OrderID }
