// SPDX-License-Identifier: MIT

package dnf_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/dnf"
	"github.com/gaissmai/fol2circuit/enumerate"
	"github.com/gaissmai/fol2circuit/propositional"
)

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

// FuzzCountAgreesWithEnumerate generalizes TestCountAgreesWithEnumerate
// across random formula shapes: the distributive-law-based counter must
// agree with brute force on every formula, not just the hand-picked
// fixtures.
func FuzzCountAgreesWithEnumerate(f *testing.F) {
	f.Add(uint64(1), 3, 3)
	f.Add(uint64(9000), 4, 4)
	f.Add(uint64(77), 2, 5)

	f.Fuzz(func(t *testing.T, seed uint64, nVars, depth int) {
		if nVars < 1 || nVars > 10 || depth < 0 || depth > 5 {
			t.Skip("bounds")
		}

		prng := rand.New(rand.NewPCG(seed, 11))
		b := propositional.NewBuilder()
		names := make([]string, nVars)
		for i := range names {
			names[i] = fmt.Sprintf("v%d", i)
		}
		root := randomFormula(b, prng, names, depth)
		b.Tree.SetOutput(root)

		got := dnf.Count(b.Tree)
		want := enumerate.Count(b.Tree)
		if got != want {
			t.Fatalf("dnf.Count() = %d, enumerate.Count() = %d, want equal", got, want)
		}
	})
}
