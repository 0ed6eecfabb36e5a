package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// maxTrackingNumberLength is the maximum number of characters allowed in a tracking number.
	maxTrackingNumberLength = 100
	// maxCancelReasonLength is the maximum number of characters allowed in a cancellation reason.
	maxCancelReasonLength = 500
)

var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from creation through validation, payment and shipping
// to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer ID
//   - Must contain at least one order line at all times
//   - The total amount always equals the sum of the line totals
//   - Status transitions follow the lifecycle state machine
//   - Every effective mutation stamps updatedAt and increments the version
//
// A rejected transition leaves the order unchanged and raises no event;
// a successful one buffers exactly one domain event.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID string

	// orderDate is when the order was placed
	orderDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items are the order lines, in the order the customer added them
	items []*OrderItem

	// totalAmount is the sum of all line totals, recomputed on item changes
	totalAmount kernel.Money

	// trackingNumber is set when the order ships, nil before that
	trackingNumber *string

	// createdAt is when the order entered the system
	createdAt time.Time

	// updatedAt is when the order last changed
	updatedAt time.Time

	// version is incremented on every effective mutation
	version int

	// loadedVersion is the version read from storage, used for conflict detection
	loadedVersion int

	// events buffers domain events until pulled after persistence
	events []kernel.DomainEvent

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with the given lines. This is the only way to
// create a valid Order instance.
//
// The order starts Pending with the order date set to now, the total amount
// computed from the lines, and an OrderCreated event buffered.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the ordering customer (must not be empty)
//   - items: Order lines (must contain at least one valid line)
//
// Returns:
//   - *Order: A fully initialized order in Pending status
//   - error: Aggregated validation errors, if any
func NewOrder(id kernel.UUID, customerID string, items []*OrderItem) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		orderDate: now,
		createdAt: now,
		updatedAt: now,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.raise(OrderCreated{
		OrderID:     o.id.String(),
		CustomerID:  o.customerID,
		TotalAmount: o.totalAmount.Amount(),
	})
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder which creates fresh pending orders, this constructor
// restores an order to its previously persisted state, including its status,
// tracking number and concurrency version. No event is raised.
//
// The total amount is recomputed from the restored lines, so the sum
// invariant holds for restored orders exactly as it does for new ones.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: Identifier of the ordering customer
//   - orderDate: When the order was placed
//   - status: Persisted lifecycle status
//   - items: Persisted order lines
//   - trackingNumber: Tracking number if the order shipped, nil otherwise
//   - createdAt: When the order entered the system
//   - updatedAt: When the order last changed
//   - version: Persisted concurrency version (must be ≥ 1)
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Aggregated validation errors, if any
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	orderDate time.Time,
	status Status,
	items []*OrderItem,
	trackingNumber *string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		orderDate: orderDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setItems(items),
		o.setTrackingNumber(trackingNumber),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	o.loadedVersion = version
	return o, nil
}

// IsEqual compares two orders for equality based on their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Validate checks if the Order was properly constructed using the NewOrder or
// RestoreOrder constructor. The zero value of Order is invalid.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order lines in the order the customer added them.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// TotalAmount returns the sum of all line totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// TrackingNumber returns the carrier tracking number assigned at shipping.
// Returns nil if the order has not shipped.
func (o *Order) TrackingNumber() *string {
	return o.trackingNumber
}

// CreatedAt returns when the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the current concurrency version of the order.
// It is incremented on every effective mutation.
func (o *Order) Version() int {
	return o.version
}

// LoadedVersion returns the concurrency version the order carried when it was
// loaded from storage. Repositories use it to detect concurrent updates.
func (o *Order) LoadedVersion() int {
	return o.loadedVersion
}

// Events returns a copy of the buffered domain events without draining them.
func (o *Order) Events() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(o.events))
	copy(out, o.events)
	return out
}

// PullEvents drains the buffered domain events and returns them.
// Subsequent calls return an empty slice until new events are raised.
// It is called once per unit of work, after the order has been persisted.
func (o *Order) PullEvents() []kernel.DomainEvent {
	out := o.events
	o.events = nil
	return out
}

// MarkValidated moves a pending order to Validated and buffers an
// OrderValidated event.
//
// Business rules enforced:
//   - The order must be in Pending status
//
// On violation the order is left unchanged and no event is raised.
func (o *Order) MarkValidated() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.MarkValidated()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	o.raise(OrderValidated{OrderID: o.id.String()})
	return nil
}

// ProcessPayment charges a validated order and moves it to Paid, buffering an
// OrderPaid event carrying the charged amount. The transition passes through
// PaymentProcessing within this single call.
//
// Business rules enforced:
//   - The order must be in Validated status
//
// On violation the order is left unchanged and no event is raised.
func (o *Order) ProcessPayment() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.ProcessPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	o.raise(OrderPaid{OrderID: o.id.String(), Amount: o.totalAmount.Amount()})
	return nil
}

// MarkShipped records that a paid order left the warehouse with the given
// carrier tracking number and buffers an OrderShipped event.
//
// Business rules enforced:
//   - The tracking number must be non-empty and at most 100 characters
//   - The order must be in Paid status
//
// On any violation the order is left unchanged and no event is raised.
func (o *Order) MarkShipped(trackingNumber string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := validateTrackingNumber(trackingNumber); err != nil {
		return err
	}

	newStatus, err := o.status.MarkShipped()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.trackingNumber = &trackingNumber
	o.touch()
	o.raise(OrderShipped{OrderID: o.id.String(), TrackingNumber: trackingNumber})
	return nil
}

// MarkDelivered records that a shipped order reached the customer and buffers
// an OrderDelivered event. Delivered is a final state.
//
// Business rules enforced:
//   - The order must be in Shipped status
//
// On violation the order is left unchanged and no event is raised.
func (o *Order) MarkDelivered() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	o.raise(OrderDelivered{OrderID: o.id.String()})
	return nil
}

// Cancel cancels the order with an optional reason and buffers an
// OrderCancelled event. Cancelled is a final state.
//
// Business rules enforced:
//   - The reason, when given, must be at most 500 characters
//   - The order must not be Delivered or already Cancelled
//
// On any violation the order is left unchanged and no event is raised.
func (o *Order) Cancel(reason string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if len(reason) > maxCancelReasonLength {
		return errs.NewValueIsOutOfRangeError("reason", reason, 0, maxCancelReasonLength)
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	o.raise(OrderCancelled{OrderID: o.id.String(), Reason: reason})
	return nil
}

// ReplaceItems swaps the order lines for the given ones and recomputes the
// total amount. No event is raised; the follow-up OrderValidated or OrderPaid
// events already carry the resulting total.
//
// Business rules enforced:
//   - Items may only change while the order is Pending or Validated
//   - The new lines must contain at least one valid line
//
// On any violation the order is left unchanged.
func (o *Order) ReplaceItems(items []*OrderItem) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.status.AllowsItemChanges() {
		return errs.NewBusinessRuleErrorWithCause(
			"order items can only be changed before payment",
			fmt.Errorf("%s is not a valid status to replace items", o.status),
		)
	}

	if err := o.setItems(items); err != nil {
		return err
	}

	o.touch()
	return nil
}

// touch stamps the modification time and advances the concurrency version.
// Called exactly once per effective mutation.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
	o.version++
}

// raise appends a domain event to the buffer.
func (o *Order) raise(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

// setStatus validates and sets the order's lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates the given lines, recomputes the total amount and
// installs both together so a failed validation never leaves the order
// half-changed. Used during construction and item replacement.
func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, orderItem := range items {
		if err := orderItem.Validate(); err != nil {
			return err
		}
	}

	total, err := computeTotal(items)
	if err != nil {
		return err
	}

	o.items = make([]*OrderItem, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

// setTrackingNumber validates and sets the optional tracking number.
// This is a private method used only during restoration.
func (o *Order) setTrackingNumber(trackingNumber *string) error {
	if trackingNumber != nil {
		if err := validateTrackingNumber(*trackingNumber); err != nil {
			return err
		}
	}

	o.trackingNumber = trackingNumber
	return nil
}

// setVersion sets the persisted concurrency version.
// Used during restoration only; new orders always start at version 1.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version is invalid",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}

	o.version = version
	return nil
}

// validateTrackingNumber rejects empty or overlong tracking numbers.
func validateTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if len(trackingNumber) > maxTrackingNumberLength {
		return errs.NewValueIsOutOfRangeError("trackingNumber", trackingNumber, 1, maxTrackingNumberLength)
	}
	return nil
}

// computeTotal sums the line totals of the given order lines.
func computeTotal(items []*OrderItem) (kernel.Money, error) {
	total, err := kernel.NewMoney(decimal.Zero)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, orderItem := range items {
		linePrice, err := orderItem.TotalPrice()
		if err != nil {
			return kernel.Money{}, err
		}

		total, err = total.Add(linePrice)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}
