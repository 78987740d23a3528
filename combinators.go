// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result

//--------------------
// COMBINATORS
//--------------------

// MatchResult returns the value of onSuccess or onFailure depending
// on the variant of r.
func MatchResult[V, E, T any](r Result[V, E], onSuccess func(V) T, onFailure func(E) T) T {
	v, e, ok := r.split("MatchResult")
	if ok {
		return onSuccess(v)
	}
	return onFailure(e)
}

// And returns other if r is a success, otherwise the failure of r.
func And[V, N, E any](r Result[V, E], other Result[N, E]) Result[N, E] {
	return MatchResult(r, func(V) Result[N, E] {
		return other
	}, Failure[N, E])
}

// AndThen returns the result of fn called with the success value
// of r, otherwise the failure of r. It is the lazy form of And.
func AndThen[V, N, E any](r Result[V, E], fn func(V) Result[N, E]) Result[N, E] {
	return MatchResult(r, fn, Failure[N, E])
}

// Or returns r if it is a success, otherwise other.
func Or[V, E, N any](r Result[V, E], other Result[V, N]) Result[V, N] {
	return MatchResult(r, Success[V, N], func(E) Result[V, N] {
		return other
	})
}

// OrElse returns the success of r, otherwise the result of fn called
// with the failure value. It is the lazy form of Or.
func OrElse[V, E, N any](r Result[V, E], fn func(E) Result[V, N]) Result[V, N] {
	return MatchResult(r, Success[V, N], fn)
}

// Map returns a success with the mapped success value of r, otherwise
// the failure of r.
func Map[V, N, E any](r Result[V, E], fn func(V) N) Result[N, E] {
	return MatchResult(r, func(v V) Result[N, E] {
		return Success[N, E](fn(v))
	}, Failure[N, E])
}

// MapOr returns the mapped success value of r or def in case of
// a failure.
func MapOr[V, N, E any](r Result[V, E], fn func(V) N, def N) N {
	return MatchResult(r, fn, func(E) N {
		return def
	})
}

// MapFailure returns a failure with the mapped failure value of r,
// otherwise the success of r.
func MapFailure[V, E, N any](r Result[V, E], fn func(E) N) Result[V, N] {
	return MatchResult(r, Success[V, N], func(e E) Result[V, N] {
		return Failure[V, N](fn(e))
	})
}

// EOF
