// SPDX-License-Identifier: MIT

package propositional

import "github.com/gaissmai/fol2circuit"

// Builder is a scoped construction surface over a propositional [Tree].
// Every constructor that takes child callbacks follows the same
// three-step contract as every other fragment's Builder:
//
//  1. invoke each callback, which returns the address of that child
//     subtree's root;
//  2. push the parent node;
//  3. for every non-NONE child address, set its back-pointer to the new
//     parent.
//
// Evaluation order is left to right, matching Go's argument evaluation
// order, so callers never need to worry about And/Or's operands being
// built out of source order.
type Builder struct {
	Tree *Tree
}

// NewBuilder returns a Builder over a fresh, empty [Tree].
func NewBuilder() *Builder { return &Builder{Tree: NewTree()} }

// Func is a subtree-building continuation: it appends whatever it builds
// to b.Tree and returns the address of that subtree's root.
type Func func(b *Builder) fol2circuit.Address

// Var appends a Variable leaf bound to the table entry id.
func (b *Builder) Var(id fol2circuit.Address) fol2circuit.Address {
	return b.Tree.Push(Symbol{Kind: Var, ID: id})
}

// VarNamed resolves (or creates) a named variable and appends a Variable
// leaf for it.
func (b *Builder) VarNamed(name string) fol2circuit.Address {
	id := b.Tree.Symbols().AddNamed(name)
	return b.Var(id)
}

// Not appends Not(child()).
func (b *Builder) Not(child Func) fol2circuit.Address {
	c := child(b)
	addr := b.Tree.Push(Symbol{Kind: Not}, c)
	b.setParent(c, addr)
	return addr
}

// And appends And(left(), right()).
func (b *Builder) And(left, right Func) fol2circuit.Address {
	l := left(b)
	r := right(b)
	addr := b.Tree.Push(Symbol{Kind: And}, l, r)
	b.setParent(l, addr)
	b.setParent(r, addr)
	return addr
}

// Or appends Or(left(), right()).
func (b *Builder) Or(left, right Func) fol2circuit.Address {
	l := left(b)
	r := right(b)
	addr := b.Tree.Push(Symbol{Kind: Or}, l, r)
	b.setParent(l, addr)
	b.setParent(r, addr)
	return addr
}

// Conjunction builds a left-associated chain items[0] AND items[1] AND ...
// using build to realize each element. An empty items returns
// [fol2circuit.NoAddress]: the neutral element is not materialized.
func Conjunction[T any](b *Builder, items []T, build func(b *Builder, item T) fol2circuit.Address) fol2circuit.Address {
	return chain(b, items, build, And)
}

// Disjunction builds a left-associated chain items[0] OR items[1] OR ...
// Empty items returns [fol2circuit.NoAddress].
func Disjunction[T any](b *Builder, items []T, build func(b *Builder, item T) fol2circuit.Address) fol2circuit.Address {
	return chain(b, items, build, Or)
}

func chain[T any](b *Builder, items []T, build func(b *Builder, item T) fol2circuit.Address, op Kind) fol2circuit.Address {
	if len(items) == 0 {
		return fol2circuit.NoAddress
	}
	acc := build(b, items[0])
	for _, it := range items[1:] {
		rhs := build(b, it)
		addr := b.Tree.Push(Symbol{Kind: op}, acc, rhs)
		b.setParent(acc, addr)
		b.setParent(rhs, addr)
		acc = addr
	}
	return acc
}

// Clone deep-copies the subtree rooted at src (within the same tree or a
// different one) into b's tree and returns the address of the copy's root.
// Named variable leaves resolve through the destination tree's symbol
// table by name, so copying across trees re-interns rather than aliasing
// addresses blindly.
func (b *Builder) Clone(src *Tree, srcAddr fol2circuit.Address) fol2circuit.Address {
	if srcAddr.IsNone() {
		return fol2circuit.NoAddress
	}
	n := src.At(srcAddr)
	switch n.Value.Kind {
	case Var:
		if name, ok := src.Symbols().NameOf(n.Value.ID); ok {
			return b.VarNamed(name)
		}
		return b.Var(n.Value.ID)
	case Not:
		return b.Not(func(b *Builder) fol2circuit.Address {
			return b.Clone(src, n.Child(0))
		})
	case And:
		return b.And(
			func(b *Builder) fol2circuit.Address { return b.Clone(src, n.Child(0)) },
			func(b *Builder) fol2circuit.Address { return b.Clone(src, n.Child(1)) },
		)
	default: // Or
		return b.Or(
			func(b *Builder) fol2circuit.Address { return b.Clone(src, n.Child(0)) },
			func(b *Builder) fol2circuit.Address { return b.Clone(src, n.Child(1)) },
		)
	}
}

func (b *Builder) setParent(child, parent fol2circuit.Address) {
	if child.IsSome() {
		b.Tree.At(child).ReplaceParent(parent)
	}
}
