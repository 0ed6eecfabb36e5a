package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// It prevents direct struct initialization from bypassing validation rules.
//
// The guard keeps an internal flag that is only set when the object is created
// through the proper constructor. A zero-value struct fails validation, which
// is how the domain layer detects literals that skipped the constructor.
//
// The kernel's own value objects (Money, Price) and the domain's value
// objects and owned entities embed this guard; aggregate roots, commands,
// and queries embed the identical guard from internal/pkg/guard.
//
// Example usage:
//
//	var ErrDiscountNotConstructed = errors.New("Discount must be created via NewDiscount")
//
//	type Discount struct {
//	    percent int
//	    guard   ConstructorGuard
//	}
//
//	func NewDiscount(percent int) (Discount, error) {
//	    if percent < 0 || percent > 100 {
//	        return Discount{}, errors.New("percent must be between 0 and 100")
//	    }
//	    return Discount{
//	        percent: percent,
//	        guard:   NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (d Discount) Validate() error {
//	    return d.guard.Validate(ErrDiscountNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it only from constructors so zero-value
// instances stay distinguishable.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value, this method returns the provided
// validationError; when validationError is nil, ErrDefaultConstructorGuard is
// returned instead.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and object not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
