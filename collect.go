// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result

//--------------------
// COLLECT
//--------------------

// CollectSuccesses returns the success values of results in
// their original order.
func CollectSuccesses[V, E any](results []Result[V, E]) []V {
	values := make([]V, 0, len(results))
	for _, r := range results {
		r.OnSuccess(func(v V) {
			values = append(values, v)
		})
	}
	return values
}

// CollectFailures returns the failure values of results in
// their original order.
func CollectFailures[V, E any](results []Result[V, E]) []E {
	errs := make([]E, 0, len(results))
	for _, r := range results {
		r.OnFailure(func(e E) {
			errs = append(errs, e)
		})
	}
	return errs
}

// Partition splits results into their success and failure values,
// both in original order.
func Partition[V, E any](results []Result[V, E]) ([]V, []E) {
	values := []V{}
	errs := []E{}
	for _, r := range results {
		r.Match(func(v V) {
			values = append(values, v)
		}, func(e E) {
			errs = append(errs, e)
		})
	}
	return values, errs
}

// EOF
