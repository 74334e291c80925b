// Package guard detects domain values that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into value objects, entities and commands.
// Only NewConstructorGuard produces a guard that validates, so a struct built
// with a composite literal instead of its constructor fails Validate.
//
// Example:
//
//	type Capacity struct {
//	    weight decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c Capacity) Validate() error {
//	    return c.guard.Validate(ErrCapacityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
