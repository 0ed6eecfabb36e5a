package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so that an unconstructed object always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks structs that must be built through a constructor
// function. Commands, queries, and aggregates embed it unexported; a zero
// value of the embedding struct fails Validate, so handlers reject literals
// that bypassed validation.
//
// Typical usage:
//
//	var ErrCreateItemCommandIsNotConstructed = errs.NewValueIsRequiredError(
//	    "CreateItemCommand must be created via NewCreateItemCommand")
//
//	type CreateItemCommand struct {
//	    sku   item.SKU
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateItemCommand(sku item.SKU) (CreateItemCommand, error) {
//	    // field validation...
//	    return CreateItemCommand{sku: sku, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateItemCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the embedding object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the embedding object came from its constructor,
// otherwise the supplied validationError (or ErrDefaultConstructorGuard when
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
