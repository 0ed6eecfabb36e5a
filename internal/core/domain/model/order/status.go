package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Validated ──> PaymentProcessing ──> Paid ──> Shipped ──> Delivered
//	   │            │                │                │         │
//	   └────────────┴────────────────┴────────────────┴─────────┴──> Cancelled
//
// Delivered and Cancelled are final states with no further transitions.
// PaymentProcessing is an intermediate state passed through within a single
// payment call; it is never observed between calls.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status await validation and may still change items.
	Pending

	// Validated indicates the order passed validation and is ready for payment.
	Validated

	// PaymentProcessing indicates a payment attempt is in flight.
	// The payment transition passes through this state and lands on Paid
	// within the same call.
	PaymentProcessing

	// Paid indicates payment completed and the order awaits shipping.
	Paid

	// Shipped indicates the order left the warehouse with a tracking number.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Pending:           "Pending",
		Validated:         "Validated",
		PaymentProcessing: "PaymentProcessing",
		Paid:              "Paid",
		Shipped:           "Shipped",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:           "Pending",
		Validated:         "Validated",
		PaymentProcessing: "PaymentProcessing",
		Paid:              "Paid",
		Shipped:           "Shipped",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
	}
}

// StatusFromString parses a persisted status name back into a Status value.
//
// Returns:
//   - the matching Status for a known name
//   - (Unknown, error) for names that do not map to a valid status
//
// This function is used when reconstructing orders from the database.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Validated, PaymentProcessing, Paid, Shipped,
// Delivered, Cancelled. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - the status name for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
// Delivered and Cancelled are final.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// AllowsItemChanges reports whether order items may still be replaced.
// Items are mutable only before payment, while Pending or Validated.
func (s Status) AllowsItemChanges() bool {
	return s == Pending || s == Validated
}

// MarkValidated transitions the status to Validated.
//
// Valid transitions:
//   - Pending -> Validated
//
// Returns:
//   - (Validated, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.MarkValidated() to enforce state transitions.
func (s Status) MarkValidated() (Status, error) {
	if s != Pending {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"order status transition",
			fmt.Errorf("%s is not a valid status to validate", s.String()),
		)
	}

	return Validated, nil
}

// ProcessPayment transitions the status to Paid.
//
// The transition conceptually passes through PaymentProcessing and lands on
// Paid within the same call, so PaymentProcessing is never observed between
// calls.
//
// Valid transitions:
//   - Validated -> Paid
//
// Returns:
//   - (Paid, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.ProcessPayment() to enforce state transitions.
func (s Status) ProcessPayment() (Status, error) {
	if s != Validated {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"order status transition",
			fmt.Errorf("%s is not a valid status to process payment", s.String()),
		)
	}

	return Paid, nil
}

// MarkShipped transitions the status to Shipped.
//
// Valid transitions:
//   - Paid -> Shipped
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.MarkShipped() to enforce state transitions.
func (s Status) MarkShipped() (Status, error) {
	if s != Paid {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"order status transition",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// MarkDelivered transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.MarkDelivered() to enforce state transitions.
// Delivered is a final state with no further transitions possible.
func (s Status) MarkDelivered() (Status, error) {
	if s != Shipped {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"order status transition",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending, Validated, PaymentProcessing, Paid, Shipped -> Cancelled
//
// Invalid transitions:
//   - Delivered -> Cancelled (delivered orders cannot be cancelled)
//   - Cancelled -> Cancelled (already cancelled)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Cancel() to enforce state transitions.
// Cancelled is a final state with no further transitions possible.
func (s Status) Cancel() (Status, error) {
	if s.Validate() != nil || s.IsFinal() {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"order status transition",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
