// Package item contains the Item aggregate and its supporting value objects
// for the product catalog and inventory side of the system.
//
// The package provides:
//   - Item: aggregate root owning catalog attributes, stock and events
//   - SKU: validated stock keeping unit code
//   - StockLevel: immutable available/reserved stock partitioning
//   - Domain events raised by item and stock state changes
//
// Stock transitions are pure functions on StockLevel; Item wraps them with
// identity, activity and event concerns. Every effective mutation advances
// the item's integer version, which the persistence layer uses for optimistic
// concurrency control.
package item
