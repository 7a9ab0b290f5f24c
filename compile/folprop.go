// SPDX-License-Identifier: MIT

// Package compile implements the two compilers that move between
// fragments: FOLToProp, expanding quantifiers over finite domains
// into iterated conjunction/disjunction of grounded atoms, and
// PropToCircuit, the polarity-aware And/Or -> Product/Sum rewrite.
package compile

import (
	"fmt"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/fol"
	"github.com/gaissmai/fol2circuit/ground"
	"github.com/gaissmai/fol2circuit/propositional"
)

// FOLToProp lowers src — a closed FOL tree — into target, a propositional
// tree containing exactly the atoms table grounded, structurally mirroring
// src's And/Or/Not and expanding each Universal/Existential into an
// iterated conjunction/disjunction over its domain. It returns
// the address of the compiled formula's root within target.
func FOLToProp(src *fol.Tree, domains *fol2circuit.DomainSet, table *ground.Table, target *propositional.Builder) (fol2circuit.Address, error) {
	if src.Output().IsNone() {
		return fol2circuit.NoAddress, nil
	}
	env := make(map[fol2circuit.Address]int)
	return compileNode(src, src.Output(), domains, table, target, env)
}

func compileNode(
	src *fol.Tree,
	a fol2circuit.Address,
	domains *fol2circuit.DomainSet,
	table *ground.Table,
	b *propositional.Builder,
	env map[fol2circuit.Address]int,
) (fol2circuit.Address, error) {
	n := src.At(a)

	switch n.Value.Kind {
	case fol.Not:
		c, err := compileNode(src, n.Child(0), domains, table, b, env)
		if err != nil {
			return fol2circuit.NoAddress, err
		}
		if c.IsNone() {
			// Not(true) would need a "false" sentinel this encoding
			// doesn't have; a closed, grounded FOL tree with a domain
			// wide enough to ground its predicates never produces this
			// (it only arises from an empty-domain quantifier directly
			// under Not, outside this module's supported fragment).
			return fol2circuit.NoAddress, fmt.Errorf("compile: cannot negate the empty/NONE formula")
		}
		return b.Not(constAddr(c)), nil

	case fol.And:
		l, err := compileNode(src, n.Child(0), domains, table, b, env)
		if err != nil {
			return fol2circuit.NoAddress, err
		}
		r, err := compileNode(src, n.Child(1), domains, table, b, env)
		if err != nil {
			return fol2circuit.NoAddress, err
		}
		return combine(b, true, l, r), nil

	case fol.Or:
		l, err := compileNode(src, n.Child(0), domains, table, b, env)
		if err != nil {
			return fol2circuit.NoAddress, err
		}
		r, err := compileNode(src, n.Child(1), domains, table, b, env)
		if err != nil {
			return fol2circuit.NoAddress, err
		}
		return combine(b, false, l, r), nil

	case fol.Predicate:
		return compilePredicate(src, a, table, env)

	case fol.Universal:
		return compileQuantifier(src, a, domains, table, b, env, true)

	default: // fol.Existential
		return compileQuantifier(src, a, domains, table, b, env, false)
	}
}

func compilePredicate(
	src *fol.Tree,
	head fol2circuit.Address,
	table *ground.Table,
	env map[fol2circuit.Address]int,
) (fol2circuit.Address, error) {
	n := src.At(head)
	pred, ok := table.Predicate(n.Value.ID)
	if !ok {
		return fol2circuit.NoAddress, fmt.Errorf("compile: predicate %s was not grounded", src.Symbols().DisplayName(n.Value.ID))
	}

	args := fol.Args(src, head)
	idx := make([]int, len(args))
	for i, v := range args {
		val, ok := env[v]
		if !ok {
			return fol2circuit.NoAddress, fmt.Errorf("compile: unbound variable %s in predicate argument", src.Symbols().DisplayName(v))
		}
		idx[i] = val
	}

	atomAddr, err := pred.GetID(idx)
	if err != nil {
		return fol2circuit.NoAddress, err
	}
	return atomAddr, nil
}

// compileQuantifier expands a Universal (conjunctive) or Existential
// (disjunctive) quantifier over its variable's declared domain, binding
// env[id] to each value in turn while compiling the body once per value.
//
// An empty domain is left unspecified by the original reference; this
// implementation's convention is that compiling a quantifier over an empty
// domain produces [fol2circuit.NoAddress] in both the universal and
// existential case — the neutral element of whichever chain (And or Or)
// the result would otherwise fold into. See package propositional's Eval
// doc for the consequence this has for a tree whose entire output is such
// a NONE.
func compileQuantifier(
	src *fol.Tree,
	a fol2circuit.Address,
	domains *fol2circuit.DomainSet,
	table *ground.Table,
	b *propositional.Builder,
	env map[fol2circuit.Address]int,
	universal bool,
) (fol2circuit.Address, error) {
	n := src.At(a)
	id := n.Value.ID

	dom, ok := domains.Lookup(id)
	if !ok {
		return fol2circuit.NoAddress, fmt.Errorf("compile: %w for quantified variable %s", ground.ErrUnknownDomain, src.Symbols().DisplayName(id))
	}

	var acc fol2circuit.Address = fol2circuit.NoAddress
	for v := 0; v < dom.Card; v++ {
		env[id] = v
		c, err := compileNode(src, n.Child(0), domains, table, b, env)
		if err != nil {
			delete(env, id)
			return fol2circuit.NoAddress, err
		}
		acc = combine(b, universal, acc, c)
	}
	delete(env, id)
	return acc, nil
}

// combine folds l and r with And (conjunctive, for universal quantifiers
// and FOL And) or Or (disjunctive, existential and FOL Or), treating
// [fol2circuit.NoAddress] on either side as that connective's neutral
// element rather than a real operand to push.
func combine(b *propositional.Builder, and bool, l, r fol2circuit.Address) fol2circuit.Address {
	if l.IsNone() {
		return r
	}
	if r.IsNone() {
		return l
	}
	if and {
		return b.And(constAddr(l), constAddr(r))
	}
	return b.Or(constAddr(l), constAddr(r))
}

func constAddr(a fol2circuit.Address) propositional.Func {
	return func(*propositional.Builder) fol2circuit.Address { return a }
}
