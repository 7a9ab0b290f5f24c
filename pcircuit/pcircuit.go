// SPDX-License-Identifier: MIT

// Package pcircuit implements the probabilistic-circuit fragment:
// Variable{id,neg} / Product / Sum{w_l,w_r}, the arithmetic target of
// compile.PropToCircuit, over the shared [fol2circuit.Tree] substrate.
package pcircuit

import "github.com/gaissmai/fol2circuit"

// Kind discriminates the circuit symbol variants.
type Kind uint8

const (
	// Variable is a (possibly negated) leaf. Arity 0.
	Variable Kind = iota
	// Product multiplies its two children. Arity 2.
	Product
	// Sum adds its two children, each scaled by its own weight. Arity 2.
	Sum
)

// Symbol is the circuit fragment's node-value type. ID and Neg are
// meaningful only for Variable; WL and WR only for Sum.
type Symbol struct {
	Kind Kind
	ID   fol2circuit.Address // Variable: symbol-table address
	Neg  bool                 // Variable: true if this leaf is ¬Var
	WL   float64              // Sum: left-branch weight
	WR   float64              // Sum: right-branch weight
}

// Arity implements [fol2circuit.Symbol].
func (s Symbol) Arity() int {
	if s.Kind == Variable {
		return 0
	}
	return 2
}

// Tree is a [fol2circuit.Tree] specialized to the probabilistic-circuit
// fragment.
type Tree = fol2circuit.Tree[Symbol]

// NewTree returns an empty circuit arena.
func NewTree() *Tree { return fol2circuit.NewTree[Symbol]() }
