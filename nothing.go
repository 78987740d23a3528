// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result

//--------------------
// NOTHING
//--------------------

// Nothing is the payload of a Result variant carrying no data.
// Being a zero-size type all its values are the same value, so
// None is the only instance there is.
type Nothing struct{}

// String implements the Stringer interface.
func (Nothing) String() string {
	return "none"
}

// None is the canonical value of Nothing.
var None Nothing

// EOF
