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
	"reflect"
)

//--------------------
// VARIANT
//--------------------

// Variant tells which outcome a Result contains.
type Variant int

const (
	// VariantUndefined is the variant of the zero Result.
	VariantUndefined Variant = iota
	// VariantSuccess signals a success value.
	VariantSuccess
	// VariantFailure signals a failure value.
	VariantFailure
)

// String implements the Stringer interface.
func (v Variant) String() string {
	switch v {
	case VariantSuccess:
		return "success"
	case VariantFailure:
		return "failure"
	default:
		return "undefined"
	}
}

//--------------------
// OUTCOMES
//--------------------

// outcome is implemented by the two variants a Result can hold.
type outcome interface {
	variant() Variant
}

type success[V any] struct {
	value V
}

func (success[V]) variant() Variant {
	return VariantSuccess
}

type failure[E any] struct {
	err E
}

func (failure[E]) variant() Variant {
	return VariantFailure
}

//--------------------
// RESULT
//--------------------

// Result contains either a success value of type V or a failure
// value of type E. It is immutable and can only be created by the
// constructor functions. The zero value is undefined, all accesses
// to its payload panic.
type Result[V, E any] struct {
	outcome outcome
}

// Success creates a Result containing the success value v.
func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		outcome: success[V]{value: v},
	}
}

// Failure creates a Result containing the failure value e.
func Failure[V, E any](e E) Result[V, E] {
	return Result[V, E]{
		outcome: failure[E]{err: e},
	}
}

// EmptySuccess creates a success carrying no data.
func EmptySuccess[E any]() Result[Nothing, E] {
	return Success[Nothing, E](None)
}

// EmptyFailure creates a failure carrying no data.
func EmptyFailure[V any]() Result[V, Nothing] {
	return Failure[V, Nothing](None)
}

// FromNullable creates a success with the value v points to. If v is
// nil it creates a failure with e.
func FromNullable[V, E any](v *V, e E) Result[V, E] {
	if v == nil {
		return Failure[V](e)
	}
	return Success[V, E](*v)
}

// FromOptional creates a success with v if ok is true, otherwise an
// empty failure. It takes the comma-ok pair of map lookups or type
// assertions.
func FromOptional[V any](v V, ok bool) Result[V, Nothing] {
	if !ok {
		return EmptyFailure[V]()
	}
	return Success[V, Nothing](v)
}

// FromFailureOptional creates a failure with e if ok is true, otherwise
// an empty success.
func FromFailureOptional[E any](e E, ok bool) Result[Nothing, E] {
	if !ok {
		return EmptySuccess[E]()
	}
	return Failure[Nothing](e)
}

// FromError creates a failure with err if it is not nil, otherwise
// a success with v.
func FromError[V any](v V, err error) Result[V, error] {
	if err != nil {
		return Failure[V](err)
	}
	return Success[V, error](v)
}

// Variant returns the variant of the Result.
func (r Result[V, E]) Variant() Variant {
	if r.outcome == nil {
		return VariantUndefined
	}
	return r.outcome.variant()
}

// IsSuccess returns true if the Result contains a success value.
func (r Result[V, E]) IsSuccess() bool {
	return r.Variant() == VariantSuccess
}

// IsFailure returns true if the Result contains a failure value.
func (r Result[V, E]) IsFailure() bool {
	return r.Variant() == VariantFailure
}

// UnwrapSuccess returns the success value. It panics with an
// *UnwrapError if the Result is a failure.
func (r Result[V, E]) UnwrapSuccess() V {
	v, _, ok := r.split("UnwrapSuccess")
	if !ok {
		panic(NewUnwrapError("UnwrapSuccess", VariantFailure))
	}
	return v
}

// UnwrapFailure returns the failure value. It panics with an
// *UnwrapError if the Result is a success.
func (r Result[V, E]) UnwrapFailure() E {
	_, e, ok := r.split("UnwrapFailure")
	if ok {
		panic(NewUnwrapError("UnwrapFailure", VariantSuccess))
	}
	return e
}

// UnwrapSuccessOr returns the success value or def in case of a failure.
func (r Result[V, E]) UnwrapSuccessOr(def V) V {
	v, _, ok := r.split("UnwrapSuccessOr")
	if !ok {
		return def
	}
	return v
}

// UnwrapFailureOr returns the failure value or def in case of a success.
func (r Result[V, E]) UnwrapFailureOr(def E) E {
	_, e, ok := r.split("UnwrapFailureOr")
	if ok {
		return def
	}
	return e
}

// UnwrapSuccessOrRaise returns the success value. In case of a
// failure it panics with err.
func (r Result[V, E]) UnwrapSuccessOrRaise(err error) V {
	v, _, ok := r.split("UnwrapSuccessOrRaise")
	if !ok {
		panic(err)
	}
	return v
}

// UnwrapSuccessOrRaiseWith returns the success value. In case of a
// failure it panics with the error the factory creates out of the
// failure value.
func (r Result[V, E]) UnwrapSuccessOrRaiseWith(factory func(E) error) V {
	v, e, ok := r.split("UnwrapSuccessOrRaiseWith")
	if !ok {
		panic(factory(e))
	}
	return v
}

// ExpectSuccess returns the success value. In case of a failure it
// panics with an *ExpectError containing message and the failure.
func (r Result[V, E]) ExpectSuccess(message string) V {
	v, e, ok := r.split("ExpectSuccess")
	if !ok {
		panic(NewExpectError(message, e))
	}
	return v
}

// ExpectFailure returns the failure value. In case of a success it
// panics with an *ExpectError containing message and the success.
func (r Result[V, E]) ExpectFailure(message string) E {
	v, e, ok := r.split("ExpectFailure")
	if ok {
		panic(NewExpectError(message, v))
	}
	return e
}

// ToOptional returns the success value and true, or the zero
// value and false.
func (r Result[V, E]) ToOptional() (V, bool) {
	v, _, ok := r.split("ToOptional")
	return v, ok
}

// ToFailureOptional returns the failure value and true, or the
// zero value and false.
func (r Result[V, E]) ToFailureOptional() (E, bool) {
	_, e, ok := r.split("ToFailureOptional")
	return e, !ok
}

// Unpack returns the success value and nil, or the zero value and
// the error convert returns for the failure.
func (r Result[V, E]) Unpack(convert func(E) error) (V, error) {
	v, e, ok := r.split("Unpack")
	if !ok {
		return v, convert(e)
	}
	return v, nil
}

// OnSuccess calls action with the success value, if any.
func (r Result[V, E]) OnSuccess(action func(V)) {
	r.Match(action, func(E) {})
}

// OnFailure calls action with the failure value, if any.
func (r Result[V, E]) OnFailure(action func(E)) {
	r.Match(func(V) {}, action)
}

// Match calls onSuccess or onFailure depending on the variant.
func (r Result[V, E]) Match(onSuccess func(V), onFailure func(E)) {
	v, e, ok := r.split("Match")
	if ok {
		onSuccess(v)
		return
	}
	onFailure(e)
}

// Equal returns true if both results are of the same variant
// with deeply equal payloads.
func (r Result[V, E]) Equal(other Result[V, E]) bool {
	return reflect.DeepEqual(r.outcome, other.outcome)
}

// String implements the Stringer interface.
func (r Result[V, E]) String() string {
	switch o := r.outcome.(type) {
	case success[V]:
		return fmt.Sprintf("Result(Success) = %v", o.value)
	case failure[E]:
		return fmt.Sprintf("Result(Failure) = %v", o.err)
	default:
		return "Result(Undefined)"
	}
}

// split returns the payloads and true for a success or false for
// a failure. It panics for the undefined variant.
func (r Result[V, E]) split(op string) (v V, e E, ok bool) {
	switch o := r.outcome.(type) {
	case success[V]:
		return o.value, e, true
	case failure[E]:
		return v, o.err, false
	}
	panic(NewUnwrapError(op, VariantUndefined))
}

// EOF
