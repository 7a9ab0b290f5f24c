// SPDX-License-Identifier: MIT

package propositional

import "github.com/gaissmai/fol2circuit"

// Eval recursively evaluates the tree's output under assignment, where
// assignment[i] is the truth value of the variable bound to symbol-table
// address i. It panics if the tree references a variable id outside
// assignment's range — the caller is expected to size assignment by
// t.Symbols().NumNamed().
//
// A tree whose output is [fol2circuit.NoAddress] evaluates to true: this
// is the convention compile.FOLToProp documents for a universal quantifier
// over an empty domain — NONE is the neutral element of whichever chain it
// would otherwise have been folded into, and an empty tree is the
// degenerate case of that fold with nothing left to fold.
func Eval(t *Tree, assignment []bool) bool {
	if t.Output().IsNone() {
		return true
	}
	return eval(t, t.Output(), assignment)
}

func eval(t *Tree, a fol2circuit.Address, assignment []bool) bool {
	n := t.At(a)
	switch n.Value.Kind {
	case Var:
		return assignment[n.Value.ID.Int()]
	case Not:
		return !eval(t, n.Child(0), assignment)
	case And:
		return eval(t, n.Child(0), assignment) && eval(t, n.Child(1), assignment)
	default: // Or
		return eval(t, n.Child(0), assignment) || eval(t, n.Child(1), assignment)
	}
}
