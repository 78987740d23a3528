// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result

//--------------------
// RESOLVE
//--------------------

// Resolve calls fn once and returns its value as success. If fn returns
// an error or panics, the failure contains the value mapper creates out
// of the error. A panic is passed to mapper as *PanicError.
func Resolve[V, E any](fn func() (V, error), mapper func(error) E) Result[V, E] {
	v, err := call(fn)
	if err != nil {
		return Failure[V](mapper(err))
	}
	return Success[V, E](v)
}

// ResolveNothing works like Resolve but drops the error.
func ResolveNothing[V any](fn func() (V, error)) Result[V, Nothing] {
	v, err := call(fn)
	if err != nil {
		return EmptyFailure[V]()
	}
	return Success[V, Nothing](v)
}

// call executes fn and turns a panic into a *PanicError.
func call[V any](fn func() (V, error)) (v V, err error) {
	defer func() {
		if reason := recover(); reason != nil {
			var zero V
			v = zero
			err = NewPanicError(reason)
		}
	}()
	return fn()
}

// EOF
