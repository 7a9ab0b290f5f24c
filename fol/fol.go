// SPDX-License-Identifier: MIT

// Package fol implements the first-order-logic fragment: predicate
// chains, universal/existential quantifiers, and the propositional
// connectives, over the shared [fol2circuit.Tree] substrate.
package fol

import "github.com/gaissmai/fol2circuit"

// Kind discriminates the FOL symbol variants.
type Kind uint8

const (
	// Predicate tags both the head of a predicate application chain and
	// each of its argument links; the overload is deliberate.
	// A predicate node's single child slot holds the next link in the
	// chain, or NoAddress at the chain's end; logically, though, a
	// predicate atom takes no sub-formula operand, so Arity reports 0.
	Predicate Kind = iota
	// Universal is ∀id: body. Arity 1.
	Universal
	// Existential is ∃id: body. Arity 1.
	Existential
	// Not negates its operand. Arity 1.
	Not
	// And is binary conjunction. Arity 2.
	And
	// Or is binary disjunction. Arity 2.
	Or
)

// Symbol is the FOL fragment's node-value type. ID means: for Predicate,
// the predicate head's or argument variable's symbol-table address; for
// Universal/Existential, the quantified variable's address.
type Symbol struct {
	Kind Kind
	ID   fol2circuit.Address
}

// Arity implements [fol2circuit.Symbol]. See the Predicate doc above for
// why a predicate node's logical arity is 0 despite a physical chain link.
func (s Symbol) Arity() int {
	switch s.Kind {
	case Predicate:
		return 0
	case Universal, Existential, Not:
		return 1
	default:
		return 2
	}
}

// Tree is a [fol2circuit.Tree] specialized to the FOL fragment.
type Tree = fol2circuit.Tree[Symbol]

// NewTree returns an empty FOL arena.
func NewTree() *Tree { return fol2circuit.NewTree[Symbol]() }

// IsPredicateHead reports whether a is a Predicate-tagged node that is the
// head of its chain, i.e. its parent (if any) is not itself a Predicate
// node. This is how the uniform Predicate tag is disambiguated between
// head and argument-position usage.
func IsPredicateHead(t *Tree, a fol2circuit.Address) bool {
	n := t.At(a)
	if n.Value.Kind != Predicate {
		return false
	}
	p := n.Parent()
	if p.IsNone() {
		return true
	}
	return t.At(p).Value.Kind != Predicate
}

// Args walks the argument chain starting at the node after the head
// (head's Child(0)) and returns the argument variable addresses in order.
// Args trusts the chain shape and does not check that every link is
// Predicate-tagged; ground.Build does that check (reporting
// ground.ErrInvalidPredicate) before any argument chain is read this way.
func Args(t *Tree, head fol2circuit.Address) []fol2circuit.Address {
	var args []fol2circuit.Address
	cur := t.At(head).Child(0)
	for cur.IsSome() {
		n := t.At(cur)
		args = append(args, n.Value.ID)
		cur = n.Child(0)
	}
	return args
}
