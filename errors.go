// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result

//--------------------
// IMPORTS
//--------------------

import (
	"fmt"
)

//--------------------
// ERROR TYPES
//--------------------

// UnwrapError is panicked when a variant specific accessor is
// called on the other variant.
type UnwrapError struct {
	Op      string
	Variant Variant
}

// Error implements the error interface.
func (e *UnwrapError) Error() string {
	return fmt.Sprintf("attempted to call `Result.%s` on a %v value", e.Op, e.Variant)
}

// NewUnwrapError creates a new unwrap error.
func NewUnwrapError(op string, variant Variant) *UnwrapError {
	return &UnwrapError{
		Op:      op,
		Variant: variant,
	}
}

// ExpectError is panicked when an expectation on the variant
// of a Result fails. Payload is the stringified value of the
// variant found instead.
type ExpectError struct {
	Message string
	Payload string
}

// Error implements the error interface.
func (e *ExpectError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Payload)
}

// NewExpectError creates a new expect error.
func NewExpectError(message string, payload any) *ExpectError {
	return &ExpectError{
		Message: message,
		Payload: fmt.Sprint(payload),
	}
}

// PanicError contains the reason of a panic recovered while
// resolving a computation.
type PanicError struct {
	Reason any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Reason)
}

// Unwrap implements error unwrapping.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Reason.(error); ok {
		return err
	}
	return nil
}

// NewPanicError creates a new panic error.
func NewPanicError(reason any) *PanicError {
	return &PanicError{
		Reason: reason,
	}
}

// EOF
