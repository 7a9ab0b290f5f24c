// SPDX-License-Identifier: MIT

package fol2circuit

import "testing"

type testSymbol struct{ arity int }

func (s testSymbol) Arity() int { return s.arity }

func TestNodeReplaceOperand(t *testing.T) {
	var n Node[testSymbol]
	n.Value = testSymbol{arity: 2}
	old := n.ReplaceOperand(0, AddressOf(7))
	if !old.IsNone() {
		t.Fatalf("ReplaceOperand returned %v, want NoAddress", old)
	}
	if n.Child(0) != AddressOf(7) {
		t.Fatalf("Child(0) = %v, want #7", n.Child(0))
	}
	old = n.ReplaceOperand(0, AddressOf(9))
	if old != AddressOf(7) {
		t.Fatalf("ReplaceOperand old = %v, want #7", old)
	}
}

func TestNodeReplaceFirstMatchingOperand(t *testing.T) {
	var n Node[testSymbol]
	n.ReplaceOperand(0, AddressOf(1))
	n.ReplaceOperand(1, AddressOf(2))

	if !n.ReplaceFirstMatchingOperand(AddressOf(1), AddressOf(3)) {
		t.Fatal("ReplaceFirstMatchingOperand did not report a match")
	}
	if n.Child(0) != AddressOf(3) {
		t.Fatalf("Child(0) = %v, want #3", n.Child(0))
	}
	if n.ReplaceFirstMatchingOperand(AddressOf(99), AddressOf(4)) {
		t.Fatal("ReplaceFirstMatchingOperand matched a non-existent address")
	}
}

func TestNodePopFirstOperand(t *testing.T) {
	var n Node[testSymbol]
	n.ReplaceOperand(0, AddressOf(1))
	n.ReplaceOperand(1, AddressOf(2))

	got := n.PopFirstOperand()
	if got != AddressOf(1) {
		t.Fatalf("PopFirstOperand = %v, want #1", got)
	}
	if n.Child(0) != AddressOf(2) {
		t.Fatalf("Child(0) after pop = %v, want #2", n.Child(0))
	}
	if n.Child(1) != NoAddress {
		t.Fatalf("Child(1) after pop = %v, want NONE", n.Child(1))
	}

	if got := n.PopFirstOperand(); got != AddressOf(2) {
		t.Fatalf("second PopFirstOperand = %v, want #2", got)
	}
	if got := n.PopFirstOperand(); got != NoAddress {
		t.Fatalf("PopFirstOperand on empty node = %v, want NONE", got)
	}
}

func TestNodeClearOperands(t *testing.T) {
	var n Node[testSymbol]
	n.ReplaceOperand(0, AddressOf(1))
	n.ReplaceOperand(1, AddressOf(2))
	n.ClearOperands()
	for i := 0; i < MaxArity; i++ {
		if n.Child(i) != NoAddress {
			t.Fatalf("Child(%d) = %v after ClearOperands, want NONE", i, n.Child(i))
		}
	}
}

func TestNodeParent(t *testing.T) {
	var n Node[testSymbol]
	if n.Parent() != NoAddress {
		t.Fatalf("zero-value Parent() = %v, want NONE", n.Parent())
	}
	n.ReplaceParent(AddressOf(5))
	if n.Parent() != AddressOf(5) {
		t.Fatalf("Parent() = %v, want #5", n.Parent())
	}
}
