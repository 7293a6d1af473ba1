// Package guard implements the constructor-guard pattern used by domain
// objects to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their designated
// constructor from zero values. Embedding a guard in a struct and checking it
// in Validate keeps domain invariants intact even when a struct is created
// directly.
//
// Example usage:
//
//	type RefundRequest struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRefundRequest(amount float64) (RefundRequest, error) {
//	    if amount <= 0 {
//	        return RefundRequest{}, errors.New("amount must be positive")
//	    }
//	    return RefundRequest{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r RefundRequest) Validate() error {
//	    return r.guard.Validate(ErrRefundRequestIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it inside
// the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// guards it returns validationError, or ErrDefaultConstructorGuard when
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
