// SPDX-License-Identifier: MIT

package fol2circuit

import "strconv"

// Address is an opaque, value-type identifier into an arena. It carries no
// semantics of its own — a given numeric value might index a [Tree]'s node
// slice, or a [SymbolTable]'s name vector, depending on which arena handed
// it out. No arithmetic on addresses is exported; callers compare, copy and
// pass them, nothing else.
//
// The zero value is [NoAddress], not a valid address; use it for "no child"
// or "no parent". Internally an address stores its index plus one.
type Address int32

// NoAddress is the distinguished sentinel meaning "no child" or "no parent".
const NoAddress Address = 0

// AddressOf returns the [Address] wrapping the non-negative integer i.
//
// It panics if i is negative; negative values are reserved for [NoAddress]
// and are never a valid node index.
func AddressOf(i int) Address {
	if i < 0 {
		panic("fol2circuit: negative address")
	}
	return Address(i + 1)
}

// IsSome reports whether a is a real address, i.e. not [NoAddress].
func (a Address) IsSome() bool { return a > 0 }

// IsNone reports whether a is [NoAddress].
func (a Address) IsNone() bool { return a <= 0 }

// Int returns the numeric projection of a. Callers must check [Address.IsSome]
// first; the projection of [NoAddress] is -1 and is not a valid index.
func (a Address) Int() int { return int(a) - 1 }

// String renders a for diagnostics, as "#<n>" or "NONE".
func (a Address) String() string {
	if a.IsNone() {
		return "NONE"
	}
	return "#" + strconv.Itoa(a.Int())
}
