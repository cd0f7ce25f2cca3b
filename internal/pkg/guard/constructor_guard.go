// Package guard holds the constructor guard shared by commands, queries and
// value objects that must only be built through their New... functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. The zero value
// reports "not constructed", so embedding it turns a forgotten constructor call
// into a validation error instead of a silently empty object.
//
// Example:
//
//	type GetParcelQuery struct {
//	    barcode kernel.Barcode
//	    guard   guard.ConstructorGuard
//	}
//
//	func (q GetParcelQuery) Validate() error {
//	    return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that validates successfully.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
