// Tideland Go Result - Unit Tests
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result_test

//--------------------
// IMPORTS
//--------------------

import (
	"fmt"
	"testing"

	"tideland.dev/go/asserts/verify"

	"tideland.dev/go/result"
)

//--------------------
// TESTS
//--------------------

// TestMatchResult verifies the value returning dispatch.
func TestMatchResult(t *testing.T) {
	length := func(s string) int { return len(s) }

	verify.Equal(t, result.MatchResult(result.Success[string, string]("bob"), length, func(string) int { return 8 }), 3)
	verify.Equal(t, result.MatchResult(result.Failure[string]("hello"), length, func(string) int { return 2 }), 2)
}

// TestAnd verifies the eager chaining of successes.
func TestAnd(t *testing.T) {
	r := result.And(result.Success[int, int](1), result.Success[int, int](2))
	verify.True(t, r.Equal(result.Success[int, int](2)))

	r = result.And(result.Failure[int](6), result.Success[int, int](2))
	verify.True(t, r.Equal(result.Failure[int](6)))

	s := result.And(result.EmptySuccess[string](), result.Failure[string]("yes"))
	verify.True(t, s.Equal(result.Failure[string]("yes")))

	n := result.And(result.Failure[string]("no"), result.EmptySuccess[string]())
	verify.True(t, n.Equal(result.Failure[result.Nothing]("no")))
}

// TestAndThen verifies the lazy chaining of successes.
func TestAndThen(t *testing.T) {
	r := result.AndThen(result.Success[int, int](1), func(n int) result.Result[int, int] {
		return result.Success[int, int](n + 2)
	})
	verify.True(t, r.Equal(result.Success[int, int](3)))

	called := false
	r = result.AndThen(result.Failure[int](6), func(n int) result.Result[int, int] {
		called = true
		return result.Success[int, int](n + 1)
	})
	verify.True(t, r.Equal(result.Failure[int](6)))
	verify.True(t, !called)

	l := result.AndThen(result.Success[string, int]("hello"), func(s string) result.Result[int, int] {
		return result.Failure[int](len(s))
	})
	verify.True(t, l.Equal(result.Failure[int](5)))
}

// TestOr verifies the eager alternative of failures.
func TestOr(t *testing.T) {
	r := result.Or(result.Success[int, int](12), result.Failure[int](8))
	verify.True(t, r.Equal(result.Success[int, int](12)))

	r = result.Or(result.Failure[int](2), result.Failure[int](8))
	verify.True(t, r.Equal(result.Failure[int](8)))

	s := result.Or(result.Failure[string](12), result.Failure[string]("new error"))
	verify.True(t, s.Equal(result.Failure[string]("new error")))
}

// TestOrElse verifies the lazy alternative of failures.
func TestOrElse(t *testing.T) {
	called := false
	r := result.OrElse(result.Success[string, string]("this is ok"), func(e string) result.Result[string, int] {
		called = true
		return result.Failure[string](len(e))
	})
	verify.True(t, r.Equal(result.Success[string, int]("this is ok")))
	verify.True(t, !called)

	c := result.OrElse(result.Failure[rune](65), func(e int) result.Result[rune, int] {
		return result.Success[rune, int](rune(e))
	})
	verify.True(t, c.Equal(result.Success[rune, int]('A')))
}

// TestMap verifies mapping success values.
func TestMap(t *testing.T) {
	r := result.Map(result.Success[int, int](1), func(n int) int { return n + 1 })
	verify.True(t, r.Equal(result.Success[int, int](2)))

	r = result.Map(result.Failure[int](6), func(n int) int { return n - 2 })
	verify.True(t, r.Equal(result.Failure[int](6)))

	s := result.Map(result.Success[int, int](7), func(n int) string { return fmt.Sprintf("#%d", n) })
	verify.True(t, s.Equal(result.Success[string, int]("#7")))
}

// TestMapOr verifies mapping success values with a default.
func TestMapOr(t *testing.T) {
	length := func(s string) int { return len(s) }

	verify.Equal(t, result.MapOr(result.Success[string, string]("hey"), length, 3), 3)
	verify.Equal(t, result.MapOr(result.Success[string, string]("hello"), length, 3), 5)
	verify.Equal(t, result.MapOr(result.Failure[string]("x"), length, 3), 3)
}

// TestMapFailure verifies mapping failure values.
func TestMapFailure(t *testing.T) {
	length := func(s string) int { return len(s) }

	r := result.MapFailure(result.Failure[int]("this is an error"), length)
	verify.True(t, r.Equal(result.Failure[int](16)))

	formatError := func(code int) string { return fmt.Sprintf("Error code: %d", code) }

	s := result.MapFailure(result.Success[string, int]("yes"), formatError)
	verify.True(t, s.Equal(result.Success[string, string]("yes")))

	s = result.MapFailure(result.Failure[string](12), formatError)
	verify.True(t, s.Equal(result.Failure[string]("Error code: 12")))
}

// TestChain verifies a combination of combinators.
func TestChain(t *testing.T) {
	parse := func(s string) result.Result[int, string] {
		return result.Resolve(func() (int, error) {
			var n int
			_, err := fmt.Sscanf(s, "%d", &n)
			return n, err
		}, func(err error) string {
			return "cannot parse " + s
		})
	}
	positive := func(n int) result.Result[int, string] {
		if n <= 0 {
			return result.Failure[int](fmt.Sprintf("%d is not positive", n))
		}
		return result.Success[int, string](n)
	}

	r := result.Map(result.AndThen(parse("21"), positive), func(n int) int { return n * 2 })
	verify.Equal(t, r.UnwrapSuccess(), 42)

	r = result.Map(result.AndThen(parse("-1"), positive), func(n int) int { return n * 2 })
	verify.Equal(t, r.UnwrapFailure(), "-1 is not positive")

	r = result.Map(result.AndThen(parse("joe"), positive), func(n int) int { return n * 2 })
	verify.Equal(t, r.UnwrapFailure(), "cannot parse joe")
}

// EOF
