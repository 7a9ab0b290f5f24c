// SPDX-License-Identifier: MIT

package fol2circuit

import "fmt"

// ErrNodeOutOfRange is returned by [Tree.Remove] when asked to remove an
// address past the end of the arena.
var ErrNodeOutOfRange = fmt.Errorf("fol2circuit: this node doesn't exist")

// Tree is the arena: a contiguous, index-addressed node store parameterized
// by a fragment's symbol alphabet S, plus the [SymbolTable] that names
// some of those nodes, plus a distinguished output address marking the root
// of the expression currently rooted in this arena.
//
// Tree owns node lifetime: nodes are appended by [Tree.Push] (the low-level
// primitive a fragment's Builder wraps) and destroyed only by [Tree.Remove]
// or a [Recycler] rewrite, both of which preserve the back-pointer
// consistency invariant — for every child slot c of parent p holding a
// non-NONE address q, node(q).Parent() == p — provided the caller has
// unlinked a removed node from its parent first: [Tree.Remove] fixes the
// links of the node it moves, not a parent slot still naming the removed
// address.
//
// The zero value is an empty, usable arena with output == [NoAddress].
type Tree[S Symbol] struct {
	nodes  []Node[S]
	symtab SymbolTable
	output Address
}

// NewTree returns an empty arena. Equivalent to new(Tree[S]); provided for
// symmetry with fragment constructors that want a one-line call.
func NewTree[S Symbol]() *Tree[S] {
	return &Tree[S]{output: NoAddress}
}

// Len returns the number of live nodes in the arena.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Output returns the arena's current root address, or [NoAddress] if the
// arena is empty.
func (t *Tree[S]) Output() Address {
	if len(t.nodes) == 0 {
		return NoAddress
	}
	return t.output
}

// SetOutput sets the arena's root address.
func (t *Tree[S]) SetOutput(a Address) { t.output = a }

// Symbols returns the arena's embedded symbol table.
func (t *Tree[S]) Symbols() *SymbolTable { return &t.symtab }

// At returns a mutable pointer to the node at a. It panics if a is out of
// range — callers are expected to have a valid address from [Tree.Push],
// [Tree.Output], or a node's own Parent()/Child() link; an out-of-range
// address reaching here is a programmer error, not a data error (compare
// [Tree.Remove], which reports out-of-range as a proper error because it
// is reachable from external input in the [Recycler]'s failure path).
func (t *Tree[S]) At(a Address) *Node[S] {
	return &t.nodes[a.Int()]
}

// Push appends a new node carrying value, with children taken from operands
// (padded with [NoAddress] beyond len(operands)), and returns its address.
//
// Push does not set any back-pointer on the children it references — by
// design (see [Tree] doc) that responsibility belongs to the Builder
// layer, which knows the node is about to become those children's new
// parent and can set it in the same breath it assembles the parent.
func (t *Tree[S]) Push(value S, operands ...Address) Address {
	var n Node[S]
	n.Value = value
	n.parent = NoAddress
	for i := range n.children {
		n.children[i] = NoAddress
	}
	for i, op := range operands {
		if i >= MaxArity {
			panic("fol2circuit: too many operands for node arity")
		}
		n.children[i] = op
	}
	t.nodes = append(t.nodes, n)
	return AddressOf(len(t.nodes) - 1)
}

// Remove deletes the node at a using swap-remove: the last node in the
// arena is moved into slot a, and the moved node's parent and children are
// rewired to reference a instead of its old, now-popped index. It returns
// the pre-pop index the moved node used to occupy, or [NoAddress] if a was
// already the last slot (nothing needed to move).
//
// Remove preserves back-pointer consistency: both directions of the moved
// node's links (its parent's child slot, and each of its children's parent
// field) are fixed up before the function returns. The tree's output
// address is updated too, if it pointed at the slot that moved.
func (t *Tree[S]) Remove(a Address) (movedFrom Address, err error) {
	if a.IsNone() || a.Int() >= len(t.nodes) {
		return NoAddress, ErrNodeOutOfRange
	}

	last := AddressOf(len(t.nodes) - 1)
	if a == last {
		t.nodes = t.nodes[:len(t.nodes)-1]
		if t.output == last {
			t.output = NoAddress
		}
		return NoAddress, nil
	}

	moved := t.nodes[last.Int()]
	t.nodes[a.Int()] = moved

	// Fix the moved node's parent's child slot: it pointed at `last`,
	// now it must point at `a`.
	if moved.parent.IsSome() {
		p := &t.nodes[moved.parent.Int()]
		p.ReplaceFirstMatchingOperand(last, a)
	}

	// Fix each of the moved node's children's parent back-pointer.
	for _, c := range moved.children {
		if c.IsSome() {
			t.nodes[c.Int()].parent = a
		}
	}

	t.nodes = t.nodes[:len(t.nodes)-1]

	if t.output == last {
		t.output = a
	}

	return last, nil
}
