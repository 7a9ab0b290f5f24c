// SPDX-License-Identifier: MIT

// Package propositional implements the propositional-logic fragment:
// Variable/Not/And/Or over the shared [fol2circuit.Tree] substrate, plus a
// scoped [Builder] for assembling trees in that fragment.
package propositional

import "github.com/gaissmai/fol2circuit"

// Kind discriminates the propositional symbol variants.
type Kind uint8

const (
	// Var is a leaf naming a propositional variable; Symbol.ID is its
	// address in the tree's symbol table. Arity 0.
	Var Kind = iota
	// Not negates its single operand. Arity 1.
	Not
	// And is binary conjunction. Arity 2.
	And
	// Or is binary disjunction. Arity 2.
	Or
)

// Symbol is the propositional fragment's node-value type: Variable{id} /
// Not / And / Or.
type Symbol struct {
	Kind Kind
	ID   fol2circuit.Address // meaningful only when Kind == Var
}

// Arity implements [fol2circuit.Symbol].
func (s Symbol) Arity() int {
	switch s.Kind {
	case Var:
		return 0
	case Not:
		return 1
	default:
		return 2
	}
}

// Tree is a [fol2circuit.Tree] specialized to the propositional fragment.
type Tree = fol2circuit.Tree[Symbol]

// NewTree returns an empty propositional arena.
func NewTree() *Tree { return fol2circuit.NewTree[Symbol]() }
