// Package kernel provides core domain primitives shared by the commerce
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the aggregates.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A single-currency monetary amount for the order context
//   - Price: An amount plus currency code for the item context
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//   - DomainEvent: The contract every buffered aggregate event satisfies
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent reads.
package kernel
