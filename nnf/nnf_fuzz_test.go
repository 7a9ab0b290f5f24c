// SPDX-License-Identifier: MIT

package nnf_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/nnf"
	"github.com/gaissmai/fol2circuit/propositional"
)

// randomFormula builds a random propositional formula over names, biased
// toward variables as depth runs out so recursion always terminates.
func randomFormula(b *propositional.Builder, prng *rand.Rand, names []string, depth int) fol2circuit.Address {
	if depth <= 0 {
		return b.VarNamed(names[prng.IntN(len(names))])
	}
	switch prng.IntN(4) {
	case 0:
		return b.VarNamed(names[prng.IntN(len(names))])
	case 1:
		c := randomFormula(b, prng, names, depth-1)
		return b.Not(func(b *propositional.Builder) fol2circuit.Address { return c })
	case 2:
		l := randomFormula(b, prng, names, depth-1)
		r := randomFormula(b, prng, names, depth-1)
		return b.And(
			func(b *propositional.Builder) fol2circuit.Address { return l },
			func(b *propositional.Builder) fol2circuit.Address { return r },
		)
	default:
		l := randomFormula(b, prng, names, depth-1)
		r := randomFormula(b, prng, names, depth-1)
		return b.Or(
			func(b *propositional.Builder) fol2circuit.Address { return l },
			func(b *propositional.Builder) fol2circuit.Address { return r },
		)
	}
}

// FuzzPropositionalNNFPreservesSemantics generalizes
// TestPropositionalNNFPreservesSemantics across random formula shapes:
// whatever the NNF rewrite does structurally, every assignment must
// evaluate the same before and after.
func FuzzPropositionalNNFPreservesSemantics(f *testing.F) {
	f.Add(uint64(1), 3, 4)
	f.Add(uint64(42), 2, 6)
	f.Add(uint64(999), 5, 3)
	f.Add(uint64(7), 1, 5)

	f.Fuzz(func(t *testing.T, seed uint64, nVars, depth int) {
		if nVars < 1 || nVars > 8 || depth < 0 || depth > 6 {
			t.Skip("bounds")
		}

		prng := rand.New(rand.NewPCG(seed, 7))
		b := propositional.NewBuilder()
		names := make([]string, nVars)
		for i := range names {
			names[i] = fmt.Sprintf("v%d", i)
		}
		root := randomFormula(b, prng, names, depth)
		b.Tree.SetOutput(root)

		result := nnf.Propositional(b.Tree)

		n := b.Tree.Symbols().NumNamed()
		total := 1 << uint(n)
		for raw := 0; raw < total; raw++ {
			assignment := make([]bool, n)
			for i := range assignment {
				assignment[i] = (raw>>uint(i))&1 != 0
			}
			before := propositional.Eval(b.Tree, assignment)
			after := propositional.Eval(result, assignment)
			if before != after {
				t.Fatalf("assignment %v: Eval(src)=%v, Eval(NNF(src))=%v, want equal", assignment, before, after)
			}
		}
	})
}
