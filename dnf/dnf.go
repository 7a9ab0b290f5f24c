// SPDX-License-Identifier: MIT

// Package dnf implements the DNF rewriter and model counter: convert
// a propositional tree to negation normal form, repeatedly apply the
// distributive law (a∨b)∧c => (a∧c)∨(b∧c) until no And has an Or child,
// collect the resulting disjuncts as literal clauses, and count distinct
// satisfying total assignments.
//
// Grounded on original_source's logic/propositional/dnf.rs
// (distribute/distribute_nodes/collect_clauses/count_propositional); the
// per-clause decided-true/decided-false sets are [bitset.BitSet] pairs
// rather than the reference's Vec<Option<bool>>, the one external
// dependency gaissmai/bart carries, repurposed here for a fixed-universe
// membership set.
package dnf

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/nnf"
	"github.com/gaissmai/fol2circuit/propositional"
)

// Clause is a conjunction of literals, one per variable id at most: a
// variable is True, False, or Unset (absent from both sets). A variable
// set in both True and False is a contradiction. The distributed tree can
// contain such a conjunction (x∧¬x), but no Clause ever holds one:
// [collectClause] abandons a conjunction the moment it asserts a variable
// both ways, so [Clauses] drops it.
type Clause struct {
	True  *bitset.BitSet
	False *bitset.BitSet
}

// newClause allocates a Clause sized for n variables, both sets clear.
func newClause(n uint) Clause {
	return Clause{True: bitset.New(n), False: bitset.New(n)}
}

// key returns a canonical string identifying this clause's literal
// pattern, for deduplication in a Go map.
func (c Clause) key() string {
	return c.True.DumpAsBits() + "|" + c.False.DumpAsBits()
}

// Unset returns the number of variables (out of n) this clause leaves
// unconstrained.
func (c Clause) Unset(n uint) int {
	return int(n) - int(c.True.Count()) - int(c.False.Count())
}

// ToDNF returns a new tree holding the disjunctive-normal-form rewrite of
// src's output: an Or-of-Ands-of-literals, or a single And/literal when
// no Or is reachable at all. It does not deduplicate — that is [Count]'s
// and [Clauses]' job once the tree has been flattened into literal-array
// form.
func ToDNF(src *propositional.Tree) *propositional.Tree {
	n := nnf.Propositional(src)
	b := propositional.NewBuilder()
	b.Tree.Symbols().CopyFrom(n.Symbols())
	if n.Output().IsNone() {
		return b.Tree
	}
	root := distribute(b, n, n.Output())
	b.Tree.SetOutput(root)
	return b.Tree
}

// distribute recursively rewrites the NNF subtree rooted at a (read from
// src) into b, applying the distributive law bottom-up: once both
// operands of an And have been distributed, [multiply] flattens any Or
// that surfaced on either side.
func distribute(b *propositional.Builder, src *propositional.Tree, a fol2circuit.Address) fol2circuit.Address {
	n := src.At(a)
	switch n.Value.Kind {
	case propositional.Var, propositional.Not:
		return b.Clone(src, a)

	case propositional.Or:
		l := distribute(b, src, n.Child(0))
		r := distribute(b, src, n.Child(1))
		return b.Or(constAddr(l), constAddr(r))

	default: // propositional.And
		l := distribute(b, src, n.Child(0))
		r := distribute(b, src, n.Child(1))
		return multiply(b, l, r)
	}
}

// multiply returns b.And(dl, dr), first flattening any Or found at dl or
// dr (both already-distributed subtrees within b's own tree) via the
// distributive law. The operand reused on both sides of a split is
// cloned — within the same tree — so each half of the split gets its own
// copy, preserving the one-parent-per-node invariant.
func multiply(b *propositional.Builder, dl, dr fol2circuit.Address) fol2circuit.Address {
	if b.Tree.At(dl).Value.Kind == propositional.Or {
		ll := b.Tree.At(dl).Child(0)
		lr := b.Tree.At(dl).Child(1)
		left := multiply(b, ll, dr)
		right := multiply(b, lr, b.Clone(b.Tree, dr))
		return b.Or(constAddr(left), constAddr(right))
	}
	if b.Tree.At(dr).Value.Kind == propositional.Or {
		rl := b.Tree.At(dr).Child(0)
		rr := b.Tree.At(dr).Child(1)
		left := multiply(b, dl, rl)
		right := multiply(b, b.Clone(b.Tree, dl), rr)
		return b.Or(constAddr(left), constAddr(right))
	}
	return b.And(constAddr(dl), constAddr(dr))
}

func constAddr(a fol2circuit.Address) propositional.Func {
	return func(*propositional.Builder) fol2circuit.Address { return a }
}

// Clauses converts src to DNF and returns its deduplicated disjuncts as
// [Clause] values, each sized for src's num-named variable count.
func Clauses(src *propositional.Tree) []Clause {
	dnfTree := ToDNF(src)
	n := uint(dnfTree.Symbols().NumNamed())

	seen := make(map[string]Clause)
	if dnfTree.Output().IsNone() {
		return nil
	}
	collectDisjuncts(dnfTree, dnfTree.Output(), n, seen)

	out := make([]Clause, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	return out
}

func collectDisjuncts(t *propositional.Tree, a fol2circuit.Address, n uint, seen map[string]Clause) {
	node := t.At(a)
	if node.Value.Kind == propositional.Or {
		collectDisjuncts(t, node.Child(0), n, seen)
		collectDisjuncts(t, node.Child(1), n, seen)
		return
	}
	clause := newClause(n)
	if collectClause(t, a, clause) {
		seen[clause.key()] = clause
	}
}

// collectClause accumulates the literals of a's conjunction into clause,
// returning false (and abandoning clause) the moment a variable is
// asserted both True and False.
func collectClause(t *propositional.Tree, a fol2circuit.Address, clause Clause) bool {
	n := t.At(a)
	switch n.Value.Kind {
	case propositional.Var:
		id := uint(n.Value.ID.Int())
		if clause.False.Test(id) {
			return false
		}
		clause.True.Set(id)
		return true

	case propositional.Not:
		id := uint(t.At(n.Child(0)).Value.ID.Int())
		if clause.True.Test(id) {
			return false
		}
		clause.False.Set(id)
		return true

	default: // propositional.And
		return collectClause(t, n.Child(0), clause) && collectClause(t, n.Child(1), clause)
	}
}

// Count returns the number of distinct total boolean assignments
// consistent with any of src's clauses: each clause with k unset
// variables contributes up to 2^k completions, unioned via a hash set
// keyed by the completed assignment's bit pattern so identical
// completions of different clauses are counted once.
func Count(src *propositional.Tree) int {
	n := uint(src.Symbols().NumNamed())
	if src.Output().IsNone() {
		// An empty tree evaluates to true everywhere (see
		// propositional.Eval's doc), so every assignment satisfies it.
		return 1 << n
	}
	clauses := Clauses(src)

	solutions := make(map[uint64]struct{})
	for _, c := range clauses {
		addCompletions(c, n, solutions)
	}
	return len(solutions)
}

// addCompletions enumerates every completion of clause's unset variables
// and records each one's full n-bit pattern in solutions.
func addCompletions(c Clause, n uint, solutions map[uint64]struct{}) {
	var unsetBits []uint
	for i := uint(0); i < n; i++ {
		if !c.True.Test(i) && !c.False.Test(i) {
			unsetBits = append(unsetBits, i)
		}
	}

	var base uint64
	for j, ok := c.True.NextSet(0); ok; j, ok = c.True.NextSet(j + 1) {
		base |= 1 << j
	}

	k := len(unsetBits)
	for i := 0; i < 1<<k; i++ {
		pattern := base
		for bit, varID := range unsetBits {
			if i&(1<<bit) != 0 {
				pattern |= 1 << varID
			}
		}
		solutions[pattern] = struct{}{}
	}
}
