// SPDX-License-Identifier: MIT

package propositional_test

import (
	"testing"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/propositional"
)

func TestBuilderVarAndDisplay(t *testing.T) {
	b := propositional.NewBuilder()
	root := b.VarNamed("a")
	b.Tree.SetOutput(root)

	if got, want := propositional.String(b.Tree), "a"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestBuilderAndOrNotDisplay(t *testing.T) {
	b := propositional.NewBuilder()
	root := b.Or(
		func(b *propositional.Builder) fol2circuit.Address { return b.VarNamed("a") },
		func(b *propositional.Builder) fol2circuit.Address {
			return b.Not(func(b *propositional.Builder) fol2circuit.Address { return b.VarNamed("b") })
		},
	)
	b.Tree.SetOutput(root)

	if got, want := propositional.String(b.Tree), "(a∨¬b)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestConjunctionEmptyIsNoAddress(t *testing.T) {
	b := propositional.NewBuilder()
	root := propositional.Conjunction(b, []string{}, func(b *propositional.Builder, s string) fol2circuit.Address {
		return b.VarNamed(s)
	})
	if root != fol2circuit.NoAddress {
		t.Fatalf("Conjunction([]) = %v, want NoAddress", root)
	}
}

func TestConjunctionLeftAssociated(t *testing.T) {
	b := propositional.NewBuilder()
	names := []string{"a", "b", "c"}
	root := propositional.Conjunction(b, names, func(b *propositional.Builder, s string) fol2circuit.Address {
		return b.VarNamed(s)
	})
	b.Tree.SetOutput(root)

	if got, want := propositional.String(b.Tree), "((a∧b)∧c)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCloneAcrossTrees(t *testing.T) {
	src := propositional.NewBuilder()
	srcRoot := src.And(
		func(b *propositional.Builder) fol2circuit.Address { return b.VarNamed("a") },
		func(b *propositional.Builder) fol2circuit.Address { return b.VarNamed("b") },
	)
	src.Tree.SetOutput(srcRoot)

	dst := propositional.NewBuilder()
	dstRoot := dst.Clone(src.Tree, src.Tree.Output())
	dst.Tree.SetOutput(dstRoot)

	if got, want := propositional.String(dst.Tree), propositional.String(src.Tree); got != want {
		t.Fatalf("Clone produced %q, want %q", got, want)
	}
	// The clone must live in dst's own arena, not in src's.
	if dst.Tree == src.Tree {
		t.Fatal("Clone returned an address into the source tree")
	}
}

func TestEvalTable(t *testing.T) {
	b := propositional.NewBuilder()
	a := b.Tree.Symbols().AddNamed("a")
	c := b.Tree.Symbols().AddNamed("b")
	root := b.And(
		func(b *propositional.Builder) fol2circuit.Address { return b.Var(a) },
		func(b *propositional.Builder) fol2circuit.Address {
			return b.Not(func(b *propositional.Builder) fol2circuit.Address { return b.Var(c) })
		},
	)
	b.Tree.SetOutput(root)

	cases := []struct {
		a, c bool
		want bool
	}{
		{false, false, false},
		{true, false, true},
		{true, true, false},
		{false, true, false},
	}
	for _, tc := range cases {
		got := propositional.Eval(b.Tree, []bool{tc.a, tc.c})
		if got != tc.want {
			t.Errorf("Eval(a=%v,b=%v) = %v, want %v", tc.a, tc.c, got, tc.want)
		}
	}
}

func TestEvalEmptyTreeIsTrue(t *testing.T) {
	tr := propositional.NewTree()
	if !propositional.Eval(tr, nil) {
		t.Fatal("Eval(empty tree) = false, want true")
	}
}
