// SPDX-License-Identifier: MIT

// Package nnf implements the NNF rewriter: a single recursive pass
// that pushes negation inward until every Not wraps a leaf — a variable in
// the propositional fragment, a predicate atom in the FOL fragment.
//
// Both rewrites build a fresh destination tree rather than mutating the
// source in place, grounded on original_source's
// logic/propositional/nnf.rs, whose propositional_to_nnf similarly
// compiles into a fresh dst tree.
// Named variable leaves are copied verbatim first so the result's symbol
// table lines up address-for-address with the source.
package nnf

import (
	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/fol"
	"github.com/gaissmai/fol2circuit/propositional"
)

// Propositional returns a new tree holding src's output in negation
// normal form. Idempotent: Propositional(Propositional(src)) is
// structurally identical to Propositional(src).
func Propositional(src *propositional.Tree) *propositional.Tree {
	b := propositional.NewBuilder()
	b.Tree.Symbols().CopyFrom(src.Symbols())
	if src.Output().IsNone() {
		return b.Tree
	}
	root := p2nnf(src, src.Output(), b, false)
	b.Tree.SetOutput(root)
	return b.Tree
}

func p2nnf(src *propositional.Tree, a fol2circuit.Address, b *propositional.Builder, reverse bool) fol2circuit.Address {
	n := src.At(a)
	switch n.Value.Kind {
	case propositional.Var:
		id := n.Value.ID
		if reverse {
			return b.Not(func(b *propositional.Builder) fol2circuit.Address { return b.Var(id) })
		}
		return b.Var(id)

	case propositional.Not:
		return p2nnf(src, n.Child(0), b, !reverse)

	case propositional.And:
		l := func(b *propositional.Builder) fol2circuit.Address { return p2nnf(src, n.Child(0), b, reverse) }
		r := func(b *propositional.Builder) fol2circuit.Address { return p2nnf(src, n.Child(1), b, reverse) }
		if reverse {
			return b.Or(l, r)
		}
		return b.And(l, r)

	default: // propositional.Or
		l := func(b *propositional.Builder) fol2circuit.Address { return p2nnf(src, n.Child(0), b, reverse) }
		r := func(b *propositional.Builder) fol2circuit.Address { return p2nnf(src, n.Child(1), b, reverse) }
		if reverse {
			return b.And(l, r)
		}
		return b.Or(l, r)
	}
}

// FOL returns a new tree holding src's output in negation normal form:
// Not pushed down to predicate atoms, Universal swapped with Existential
// (and vice versa) under an odd number of enclosing negations, with the
// body's own polarity flipping along with it.
func FOL(src *fol.Tree) *fol.Tree {
	b := fol.NewBuilder()
	b.Tree.Symbols().CopyFrom(src.Symbols())
	if src.Output().IsNone() {
		return b.Tree
	}
	root := fol2nnf(src, src.Output(), b, false)
	b.Tree.SetOutput(root)
	return b.Tree
}

func fol2nnf(src *fol.Tree, a fol2circuit.Address, b *fol.Builder, reverse bool) fol2circuit.Address {
	n := src.At(a)
	switch n.Value.Kind {
	case fol.Predicate:
		if reverse {
			return b.Not(func(b *fol.Builder) fol2circuit.Address { return clonePredicate(src, a, b) })
		}
		return clonePredicate(src, a, b)

	case fol.Not:
		return fol2nnf(src, n.Child(0), b, !reverse)

	case fol.And:
		l := func(b *fol.Builder) fol2circuit.Address { return fol2nnf(src, n.Child(0), b, reverse) }
		r := func(b *fol.Builder) fol2circuit.Address { return fol2nnf(src, n.Child(1), b, reverse) }
		if reverse {
			return b.Or(l, r)
		}
		return b.And(l, r)

	case fol.Or:
		l := func(b *fol.Builder) fol2circuit.Address { return fol2nnf(src, n.Child(0), b, reverse) }
		r := func(b *fol.Builder) fol2circuit.Address { return fol2nnf(src, n.Child(1), b, reverse) }
		if reverse {
			return b.And(l, r)
		}
		return b.Or(l, r)

	case fol.Universal:
		id := n.Value.ID
		body := func(b *fol.Builder) fol2circuit.Address { return fol2nnf(src, n.Child(0), b, reverse) }
		if reverse {
			return b.Exist(id, body)
		}
		return b.Every(id, body)

	default: // fol.Existential
		id := n.Value.ID
		body := func(b *fol.Builder) fol2circuit.Address { return fol2nnf(src, n.Child(0), b, reverse) }
		if reverse {
			return b.Every(id, body)
		}
		return b.Exist(id, body)
	}
}

// clonePredicate copies a predicate-application chain rooted at head into
// b. Since b's symbol table is a verbatim [fol2circuit.SymbolTable.CopyFrom]
// copy of src's, the head and argument addresses carry over unchanged.
func clonePredicate(src *fol.Tree, head fol2circuit.Address, b *fol.Builder) fol2circuit.Address {
	n := src.At(head)
	return b.Pred(n.Value.ID, fol.Args(src, head))
}
