// SPDX-License-Identifier: MIT

package pcircuit

import "github.com/gaissmai/fol2circuit"

// Builder is a scoped construction surface over a circuit [Tree]. See
// package propositional's Builder doc for the child-callback contract
// shared by every fragment's Builder.
type Builder struct {
	Tree *Tree
}

// NewBuilder returns a Builder over a fresh, empty [Tree].
func NewBuilder() *Builder { return &Builder{Tree: NewTree()} }

// Func is a subtree-building continuation, as in package propositional.
type Func func(b *Builder) fol2circuit.Address

// Var appends an un-negated Variable leaf bound to id.
func (b *Builder) Var(id fol2circuit.Address) fol2circuit.Address {
	return b.Tree.Push(Symbol{Kind: Variable, ID: id})
}

// NotVar appends a negated Variable leaf bound to id. Unlike the other
// fragments' Not, circuit negation only ever applies to a leaf — applying
// it to anything else is a contract violation the builder can't express
// structurally, so compile.PropToCircuit is the only place Not-on-
// non-variable could arise, and it never does by construction.
func (b *Builder) NotVar(id fol2circuit.Address) fol2circuit.Address {
	return b.Tree.Push(Symbol{Kind: Variable, ID: id, Neg: true})
}

// Prod appends Product(left(), right()).
func (b *Builder) Prod(left, right Func) fol2circuit.Address {
	l := left(b)
	r := right(b)
	addr := b.Tree.Push(Symbol{Kind: Product}, l, r)
	b.setParent(l, addr)
	b.setParent(r, addr)
	return addr
}

// Sum appends Sum(left(), right()) with both weights equal to 1.0.
func (b *Builder) Sum(left, right Func) fol2circuit.Address {
	return b.SumW(1.0, left, 1.0, right)
}

// SumW appends a weighted Sum(left(), right()) with per-branch
// coefficients wl and wr: eval = wl*eval(left) + wr*eval(right).
func (b *Builder) SumW(wl float64, left Func, wr float64, right Func) fol2circuit.Address {
	l := left(b)
	r := right(b)
	addr := b.Tree.Push(Symbol{Kind: Sum, WL: wl, WR: wr}, l, r)
	b.setParent(l, addr)
	b.setParent(r, addr)
	return addr
}

// ProdN builds a left-associated Product chain over items, using build to
// realize each one. Empty items returns [fol2circuit.NoAddress].
func ProdN[T any](b *Builder, items []T, build func(b *Builder, item T) fol2circuit.Address) fol2circuit.Address {
	if len(items) == 0 {
		return fol2circuit.NoAddress
	}
	acc := build(b, items[0])
	for _, it := range items[1:] {
		rhs := build(b, it)
		addr := b.Tree.Push(Symbol{Kind: Product}, acc, rhs)
		b.setParent(acc, addr)
		b.setParent(rhs, addr)
		acc = addr
	}
	return acc
}

// SumN builds a left-associated, optionally-weighted Sum chain over items.
// weights[i] is item i's own coefficient; a short or nil weights slice
// defaults missing entries to 1.0. Empty items returns [fol2circuit.NoAddress].
//
// Weights are coefficients on branches, not on the Sum operator itself,
// and the reference source does not exercise chains longer than two
// elements: once the running
// accumulator is folded into a new Sum node, it occupies that node's left
// branch with weight 1.0, since its own items' weights are already baked
// into the subtree beneath it. Only the very first element's weight is
// ever attached as a literal w_l — everyone else's weight is attached as
// the w_r of the Sum node that introduces them. For a two-element chain
// this is exactly "the first element's weight is the left weight of the
// (only, hence outermost) sum."
func SumN[T any](b *Builder, items []T, weights []float64, build func(b *Builder, item T) fol2circuit.Address) fol2circuit.Address {
	if len(items) == 0 {
		return fol2circuit.NoAddress
	}
	weightOf := func(i int) float64 {
		if i < len(weights) {
			return weights[i]
		}
		return 1.0
	}

	acc := build(b, items[0])
	accWeight := weightOf(0)
	for i := 1; i < len(items); i++ {
		rhs := build(b, items[i])
		addr := b.Tree.Push(Symbol{Kind: Sum, WL: accWeight, WR: weightOf(i)}, acc, rhs)
		b.setParent(acc, addr)
		b.setParent(rhs, addr)
		acc = addr
		accWeight = 1.0
	}
	return acc
}

func (b *Builder) setParent(child, parent fol2circuit.Address) {
	if child.IsSome() {
		b.Tree.At(child).ReplaceParent(parent)
	}
}
