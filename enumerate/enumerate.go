// SPDX-License-Identifier: MIT

// Package enumerate implements the naive enumerator: it iterates
// every assignment in {0,1}^n, where n is a tree's named-variable count,
// and evaluates the tree once per assignment. It is the oracle every
// faster algorithm in this module (the Grounder, the DNF counter) is
// tested against — grounded on original_source's solver/naive.rs
// Enumerate iterator and its examples/counting.rs call site.
package enumerate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/pcircuit"
	"github.com/gaissmai/fol2circuit/propositional"
)

// Result is one satisfying assignment, as the [bitset.BitSet] of
// variable addresses assigned true. n must fit in a single machine word's
// worth of bits, which is also the [bitset.BitSet] use case gaissmai/bart
// reaches for throughout its own node/prefix sets.
type Result struct {
	Bits *bitset.BitSet
	n    int
}

// Bool returns the truth value assigned to variable id.
func (r Result) Bool(id fol2circuit.Address) bool {
	return r.Bits.Test(uint(id.Int()))
}

// Assignment expands r into the []bool form [propositional.Eval] and
// [pcircuit.Eval] take.
func (r Result) Assignment() []bool {
	a := make([]bool, r.n)
	for i := range a {
		a[i] = r.Bits.Test(uint(i))
	}
	return a
}

// Propositional iterates every assignment under which t evaluates to
// true, in ascending numeric order of the assignment's bit pattern
// (assignment bit i is variable id i). It panics if t has more named
// variables than fit in one machine word minus one.
func Propositional(t *propositional.Tree) []Result {
	n := t.Symbols().NumNamed()
	assertFits(n)

	var out []Result
	total := uint64(1) << uint(n)
	for raw := uint64(0); raw < total; raw++ {
		assignment := expand(raw, n)
		if propositional.Eval(t, assignment) {
			out = append(out, toResult(assignment, n))
		}
	}
	return out
}

// Count is len([Propositional](t)) without materializing the slice.
func Count(t *propositional.Tree) int {
	n := t.Symbols().NumNamed()
	assertFits(n)

	count := 0
	total := uint64(1) << uint(n)
	for raw := uint64(0); raw < total; raw++ {
		if propositional.Eval(t, expand(raw, n)) {
			count++
		}
	}
	return count
}

// CircuitResult pairs a satisfying assignment with the circuit's
// evaluated value at that assignment.
type CircuitResult struct {
	Result
	Value float64
}

// Circuit iterates every assignment together with the circuit's
// evaluated value at that assignment, yielding only the ones whose value
// is nonzero.
func Circuit(t *pcircuit.Tree) []CircuitResult {
	n := t.Symbols().NumNamed()
	assertFits(n)

	var out []CircuitResult
	total := uint64(1) << uint(n)
	for raw := uint64(0); raw < total; raw++ {
		assignment := expand(raw, n)
		v := pcircuit.Eval(t, assignment)
		if v != 0 {
			out = append(out, CircuitResult{toResult(assignment, n), v})
		}
	}
	return out
}

// Probability evaluates t once, at the truth assignment given by truths
// (variables missing from truths are false), and returns the circuit's
// weighted value at that single point — a convenience wrapper
// named directly after the operation original_source/src/logic/circuit/eval.rs
// performs, distinct from the brute-force enumeration above: this module
// does not otherwise name "evaluate the circuit for one external model"
// as its own entry point even though [pcircuit.Eval] already does the
// work. The returned value is an unnormalized weighted sum: the caller
// decides what, if anything, it should sum to.
func Probability(t *pcircuit.Tree, truths map[fol2circuit.Address]bool) float64 {
	n := t.Symbols().NumNamed()
	assignment := make([]bool, n)
	for id, v := range truths {
		assignment[id.Int()] = v
	}
	return pcircuit.Eval(t, assignment)
}

func assertFits(n int) {
	if n > 63 {
		panic("enumerate: variable count exceeds machine-word bits")
	}
}

func expand(raw uint64, n int) []bool {
	a := make([]bool, n)
	for i := 0; i < n; i++ {
		a[i] = (raw>>uint(i))&1 != 0
	}
	return a
}

func toResult(assignment []bool, n int) Result {
	bs := bitset.New(uint(n))
	for i, v := range assignment {
		if v {
			bs.Set(uint(i))
		}
	}
	return Result{Bits: bs, n: n}
}
