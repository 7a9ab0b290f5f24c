// SPDX-License-Identifier: MIT

package fol

import "github.com/gaissmai/fol2circuit"

// Builder is a scoped construction surface over a FOL [Tree]. See
// package propositional's Builder doc for the three-step child-callback
// contract shared by every fragment's Builder.
type Builder struct {
	Tree *Tree
}

// NewBuilder returns a Builder over a fresh, empty [Tree].
func NewBuilder() *Builder { return &Builder{Tree: NewTree()} }

// Func is a subtree-building continuation, as in package propositional.
type Func func(b *Builder) fol2circuit.Address

// Pred appends a predicate-application chain: a head node naming headID,
// followed by one argument-position node per entry in argIDs, terminated
// by a node whose chain-link child is NoAddress. It returns the head's
// address.
func (b *Builder) Pred(headID fol2circuit.Address, argIDs []fol2circuit.Address) fol2circuit.Address {
	next := fol2circuit.NoAddress
	for i := len(argIDs) - 1; i >= 0; i-- {
		addr := b.Tree.Push(Symbol{Kind: Predicate, ID: argIDs[i]}, next)
		b.setParent(next, addr)
		next = addr
	}
	head := b.Tree.Push(Symbol{Kind: Predicate, ID: headID}, next)
	b.setParent(next, head)
	return head
}

// PredNamed is Pred, resolving the head and argument names through the
// tree's symbol table.
func (b *Builder) PredNamed(head string, args []string) fol2circuit.Address {
	argIDs := make([]fol2circuit.Address, len(args))
	for i, a := range args {
		argIDs[i] = b.Tree.Symbols().AddNamed(a)
	}
	return b.Pred(b.Tree.Symbols().AddNamed(head), argIDs)
}

// Every appends ∀id: body().
func (b *Builder) Every(id fol2circuit.Address, body Func) fol2circuit.Address {
	c := body(b)
	addr := b.Tree.Push(Symbol{Kind: Universal, ID: id}, c)
	b.setParent(c, addr)
	return addr
}

// Exist appends ∃id: body().
func (b *Builder) Exist(id fol2circuit.Address, body Func) fol2circuit.Address {
	c := body(b)
	addr := b.Tree.Push(Symbol{Kind: Existential, ID: id}, c)
	b.setParent(c, addr)
	return addr
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

func (b *Builder) setParent(child, parent fol2circuit.Address) {
	if child.IsSome() {
		b.Tree.At(child).ReplaceParent(parent)
	}
}
