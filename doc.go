// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

/*
Package result provides a generic and immutable Result type containing either a success
value or a failure value. Failures become data of the type instead of leaving the function
through a second channel, so they can be mapped, chained, defaulted and collected like any
other value.

# Creating Results

A Result is created by one of the constructor functions. As Go cannot infer a type
parameter only used in the result, the other payload type has to be named.

	r := result.Success[int, string](42)
	f := result.Failure[int]("no answer")

Nothing is the payload of variants without data, e.g. for lookups:

	value, ok := cache[key]
	r := result.FromOptional(value, ok) // Result[Value, Nothing]

Code following the Go (value, error) style is bridged with FromError or Resolve.
Resolve also catches panics inside the called function and turns them into a
*PanicError before passing them to the mapper.

	port := result.Resolve(func() (int, error) {
		return strconv.Atoi(os.Getenv("PORT"))
	}, func(err error) string {
		return "invalid port: " + err.Error()
	})

# Inspecting Results

IsSuccess and IsFailure tell about the variant. UnwrapSuccess and UnwrapFailure return
the payload and panic with an *UnwrapError when called on the wrong variant. The same
goes for ExpectSuccess and ExpectFailure, which panic with an *ExpectError containing
the given message. Those panics signal programming errors and are never recovered by
the package. Non-panicking access is provided by UnwrapSuccessOr, ToOptional, Unpack
and the actions OnSuccess, OnFailure and Match.

# Combining Results

Methods in Go cannot introduce own type parameters. So all combinators changing a payload
type are functions taking the Result as first argument.

	doubled := result.Map(port, func(p int) int { return p * 2 })
	checked := result.AndThen(port, func(p int) result.Result[int, string] {
		if p < 1024 {
			return result.Failure[int]("privileged port")
		}
		return result.Success[int, string](p)
	})
	fallback := result.Or(checked, result.Success[int, string](8080))

And and Or take an already created Result, AndThen and OrElse are their lazy forms
only calling the function when needed.

# Collecting Results

CollectSuccesses and CollectFailures return the payloads of one variant out of a slice
of Results, keeping the order. Partition returns both at once.

The zero value of Result is undefined. It is neither a success nor a failure, and each
access to its payload panics with an *UnwrapError.
*/
package result // import "tideland.dev/go/result"

// EOF
