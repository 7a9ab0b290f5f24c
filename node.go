// SPDX-License-Identifier: MIT

package fol2circuit

// MaxArity is the compile-time maximum number of children a node in any of
// the three fragments (FOL, propositional, probabilistic circuit) may have.
// Every fragment defined in this module has arity <= 2, so nodes carry a
// fixed two-slot child array rather than a slice — one fewer allocation per
// node, and it keeps [Node] a plain value type.
const MaxArity = 2

// Symbol is the constraint satisfied by a fragment's node-value type. Arity
// reports how many of a node's two child slots hold sub-formula operands
// for that symbol. Slots beyond Arity() normally hold [NoAddress]; the one
// exception is a FOL Predicate node (arity 0), whose slot 0 links to the
// next node of its argument chain.
type Symbol interface {
	// Arity returns the number of children a node carrying this symbol
	// value has: 0 for leaves, 1 for unary connectives/quantifiers, 2 for
	// binary connectives.
	Arity() int
}

// Node is the fixed-arity record every arena slot holds: a parent back-
// pointer, up to [MaxArity] children, and a fragment-specific value. Unused
// child slots hold [NoAddress] (see [Symbol] for the FOL predicate-chain
// link, which uses a slot beyond its arity).
//
// All parent/child mutation goes through the methods below — nothing else
// may touch the link fields directly — so invariant maintenance (back-
// pointer consistency, see [Tree]) stays local to one choke point.
type Node[S Symbol] struct {
	Value    S
	parent   Address
	children [MaxArity]Address
}

// Parent returns the node's parent address, or [NoAddress] for a root.
func (n *Node[S]) Parent() Address { return n.parent }

// Child returns the address in child slot i (0-indexed), or [NoAddress] if
// unset. It panics if i is out of [0, MaxArity).
func (n *Node[S]) Child(i int) Address {
	return n.children[i]
}

// Children returns a copy of the node's fixed-size child array.
func (n *Node[S]) Children() [MaxArity]Address { return n.children }

// ReplaceParent sets the node's parent back-pointer to p.
func (n *Node[S]) ReplaceParent(p Address) { n.parent = p }

// ReplaceOperand sets child slot i to addr, returning the address
// previously occupying that slot. It panics if i is out of [0, MaxArity).
func (n *Node[S]) ReplaceOperand(i int, addr Address) (old Address) {
	old = n.children[i]
	n.children[i] = addr
	return old
}

// ReplaceFirstMatchingOperand scans the child slots left to right and
// replaces the first one equal to oldAddr with newAddr. It reports whether
// a match was found and replaced.
func (n *Node[S]) ReplaceFirstMatchingOperand(oldAddr, newAddr Address) bool {
	for i, c := range n.children {
		if c == oldAddr {
			n.children[i] = newAddr
			return true
		}
	}
	return false
}

// PopFirstOperand removes and returns the first non-NONE child, shifting
// any remaining children left and clearing the vacated trailing slot. It
// returns [NoAddress] if the node has no children set.
func (n *Node[S]) PopFirstOperand() Address {
	for i, c := range n.children {
		if c.IsSome() {
			for j := i; j < MaxArity-1; j++ {
				n.children[j] = n.children[j+1]
			}
			n.children[MaxArity-1] = NoAddress
			return c
		}
	}
	return NoAddress
}

// ClearOperands resets every child slot to [NoAddress].
func (n *Node[S]) ClearOperands() {
	for i := range n.children {
		n.children[i] = NoAddress
	}
}

// reset clears a node back to its zero-ish state, for reuse by the
// [Recycler]. The value is zeroed too so a stale symbol never leaks
// through a reused slot.
func (n *Node[S]) reset() {
	var zero S
	n.Value = zero
	n.parent = NoAddress
	n.ClearOperands()
}
