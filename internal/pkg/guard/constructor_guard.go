// Package guard provides a defensive-programming helper that ensures value objects,
// entities, commands, and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes it possible
// to detect zero-value instances that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its constructor.
// The zero value fails validation, so structs embedding a guard cannot be used
// when instantiated directly.
//
// Example:
//
//	type Money struct {
//	    amount   float64
//	    currency string
//
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMoney(amount float64, currency string) (Money, error) {
//	    if currency == "" {
//	        return Money{}, errs.NewValueIsRequiredError("currency")
//	    }
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
