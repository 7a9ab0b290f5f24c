// SPDX-License-Identifier: MIT

package compile

import (
	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/pcircuit"
	"github.com/gaissmai/fol2circuit/propositional"
)

// PropToCircuit lowers src into a fresh probabilistic-circuit tree:
// a polarity-aware structural map threaded through a reverse flag instead
// of materializing intermediate negated subtrees:
//
//	Var(id)   -> Var(id, neg=reverse)
//	Not(e)    -> recurse on e with !reverse
//	And(l,r)  -> Product(l,r) normally, Sum(l,r) under reverse (De Morgan)
//	Or(l,r)   -> Sum(l,r) normally, Product(l,r) under reverse
//
// Named leaves are copied verbatim from src's symbol table first, so the
// evaluator's variable indexes match src's one-to-one, grounded on
// original_source's logic/circuit/compile.rs propositional_to_circuit.
func PropToCircuit(src *propositional.Tree) *pcircuit.Tree {
	b := pcircuit.NewBuilder()
	b.Tree.Symbols().CopyFrom(src.Symbols())
	if src.Output().IsNone() {
		return b.Tree
	}
	root := p2c(src, src.Output(), b, false)
	b.Tree.SetOutput(root)
	return b.Tree
}

func p2c(src *propositional.Tree, a fol2circuit.Address, b *pcircuit.Builder, reverse bool) fol2circuit.Address {
	n := src.At(a)
	switch n.Value.Kind {
	case propositional.Var:
		if reverse {
			return b.NotVar(n.Value.ID)
		}
		return b.Var(n.Value.ID)

	case propositional.Not:
		return p2c(src, n.Child(0), b, !reverse)

	case propositional.And:
		l := func(b *pcircuit.Builder) fol2circuit.Address { return p2c(src, n.Child(0), b, reverse) }
		r := func(b *pcircuit.Builder) fol2circuit.Address { return p2c(src, n.Child(1), b, reverse) }
		if reverse {
			return b.Sum(l, r)
		}
		return b.Prod(l, r)

	default: // propositional.Or
		l := func(b *pcircuit.Builder) fol2circuit.Address { return p2c(src, n.Child(0), b, reverse) }
		r := func(b *pcircuit.Builder) fol2circuit.Address { return p2c(src, n.Child(1), b, reverse) }
		if reverse {
			return b.Prod(l, r)
		}
		return b.Sum(l, r)
	}
}
