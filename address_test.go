// SPDX-License-Identifier: MIT

package fol2circuit

import "testing"

func TestAddressOf(t *testing.T) {
	a := AddressOf(5)
	if !a.IsSome() || a.IsNone() {
		t.Fatalf("AddressOf(5) = %v, want a real address", a)
	}
	if a.Int() != 5 {
		t.Fatalf("Int() = %d, want 5", a.Int())
	}
	if a.String() != "#5" {
		t.Fatalf("String() = %q, want %q", a.String(), "#5")
	}
}

func TestAddressOfNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AddressOf(-1) did not panic")
		}
	}()
	AddressOf(-1)
}

func TestNoAddress(t *testing.T) {
	if !NoAddress.IsNone() || NoAddress.IsSome() {
		t.Fatalf("NoAddress.IsNone() = %v, want true", NoAddress.IsNone())
	}
	if NoAddress.String() != "NONE" {
		t.Fatalf("String() = %q, want %q", NoAddress.String(), "NONE")
	}
}

func TestAddressEquality(t *testing.T) {
	a, b := AddressOf(3), AddressOf(3)
	if a != b {
		t.Fatalf("AddressOf(3) != AddressOf(3)")
	}
	if AddressOf(3) == AddressOf(4) {
		t.Fatalf("AddressOf(3) == AddressOf(4)")
	}
}
