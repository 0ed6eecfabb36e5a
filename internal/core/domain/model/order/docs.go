// Package order provides domain entities and business logic for customer
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, totals and lifecycle
//   - OrderItem: An order line owned by exactly one order
//   - Status: A state machine that enforces valid order status transitions
//   - Domain events raised by order state changes
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer and at least one line
//   - The total amount always equals the sum of the line totals
//   - Order status follows a defined workflow:
//     Pending -> Validated -> Paid -> Shipped -> Delivered
//   - Orders can be cancelled from any status except Delivered and Cancelled
//   - Order lines can only be replaced before payment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
