// SPDX-License-Identifier: MIT

package nnf_test

import (
	"testing"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/fol"
	"github.com/gaissmai/fol2circuit/nnf"
	"github.com/gaissmai/fol2circuit/propositional"
)

// buildSample assembles ¬¬((¬(¬A ∨ (¬A ∧ ((¬B ∧ C) ∧ ¬(A ∧ C))))) ∧ ¬(¬D ∨ B)),
// a formula chosen to exercise every connective NNF has to rewrite: nested
// double negation, De Morgan over both And and Or, and negation threaded
// through three levels of nesting.
func buildSample() *propositional.Tree {
	b := propositional.NewBuilder()
	notVar := func(name string) propositional.Func {
		return func(b *propositional.Builder) fol2circuit.Address {
			return b.Not(func(b *propositional.Builder) fol2circuit.Address { return b.VarNamed(name) })
		}
	}
	v := func(name string) propositional.Func {
		return func(b *propositional.Builder) fol2circuit.Address { return b.VarNamed(name) }
	}

	root := b.Not(func(b *propositional.Builder) fol2circuit.Address {
		return b.Not(func(b *propositional.Builder) fol2circuit.Address {
			return b.And(
				func(b *propositional.Builder) fol2circuit.Address { // X
					return b.Not(func(b *propositional.Builder) fol2circuit.Address {
						return b.Or(
							notVar("A"),
							func(b *propositional.Builder) fol2circuit.Address {
								return b.And(
									notVar("A"),
									func(b *propositional.Builder) fol2circuit.Address {
										return b.And(
											func(b *propositional.Builder) fol2circuit.Address {
												return b.And(notVar("B"), v("C"))
											},
											func(b *propositional.Builder) fol2circuit.Address {
												return b.Not(func(b *propositional.Builder) fol2circuit.Address {
													return b.And(v("A"), v("C"))
												})
											},
										)
									},
								)
							},
						)
					})
				},
				func(b *propositional.Builder) fol2circuit.Address { // Y
					return b.Not(func(b *propositional.Builder) fol2circuit.Address {
						return b.Or(notVar("D"), v("B"))
					})
				},
			)
		})
	})
	b.Tree.SetOutput(root)
	return b.Tree
}

func TestPropositionalNNFDisplay(t *testing.T) {
	src := buildSample()
	result := nnf.Propositional(src)

	want := "((A∧(A∨((B∨¬C)∨(A∧C))))∧(D∧¬B))"
	if got := propositional.String(result); got != want {
		t.Fatalf("NNF display = %q, want %q", got, want)
	}
}

func TestPropositionalNNFIsIdempotent(t *testing.T) {
	src := buildSample()
	once := nnf.Propositional(src)
	twice := nnf.Propositional(once)

	if got, want := propositional.String(twice), propositional.String(once); got != want {
		t.Fatalf("NNF(NNF(f)) = %q, want %q (NNF of a formula already in NNF must be unchanged)", got, want)
	}
}

func TestPropositionalNNFPreservesSemantics(t *testing.T) {
	src := buildSample()
	result := nnf.Propositional(src)

	n := src.Symbols().NumNamed()
	total := 1 << uint(n)
	for raw := 0; raw < total; raw++ {
		assignment := make([]bool, n)
		for i := range assignment {
			assignment[i] = (raw>>uint(i))&1 != 0
		}
		before := propositional.Eval(src, assignment)
		after := propositional.Eval(result, assignment)
		if before != after {
			t.Fatalf("assignment %v: Eval(src)=%v, Eval(NNF(src))=%v, want equal", assignment, before, after)
		}
	}
}

func TestPropositionalNNFEmptyTree(t *testing.T) {
	src := propositional.NewTree()
	result := nnf.Propositional(src)
	if result.Output() != fol2circuit.NoAddress {
		t.Fatalf("NNF(empty tree).Output() = %v, want NONE", result.Output())
	}
}

func TestFOLNNFSwapsQuantifiers(t *testing.T) {
	b := fol.NewBuilder()
	x := b.Tree.Symbols().AddNamed("x")
	root := b.Not(func(b *fol.Builder) fol2circuit.Address {
		return b.Every(x, func(b *fol.Builder) fol2circuit.Address {
			return b.PredNamed("P", []string{"x"})
		})
	})
	b.Tree.SetOutput(root)

	result := nnf.FOL(b.Tree)
	if got, want := fol.String(result), "∃x: ¬P(x)"; got != want {
		t.Fatalf("NNF display = %q, want %q", got, want)
	}
}
