// SPDX-License-Identifier: MIT

package pcircuit

import "github.com/gaissmai/fol2circuit"

// Eval recursively evaluates the tree's output to a real number under
// assignment, where assignment[i] is the truth value of the variable bound
// to symbol-table address i:
//
//   - Variable: 1.0 if assigned true (respecting Neg), else 0.0.
//   - Product: left * right.
//   - Sum: WL*left + WR*right.
func Eval(t *Tree, assignment []bool) float64 {
	if t.Output().IsNone() {
		return 1.0
	}
	return eval(t, t.Output(), assignment)
}

func eval(t *Tree, a fol2circuit.Address, assignment []bool) float64 {
	n := t.At(a)
	switch n.Value.Kind {
	case Variable:
		truth := assignment[n.Value.ID.Int()]
		if n.Value.Neg {
			truth = !truth
		}
		if truth {
			return 1.0
		}
		return 0.0
	case Product:
		return eval(t, n.Child(0), assignment) * eval(t, n.Child(1), assignment)
	default: // Sum
		return n.Value.WL*eval(t, n.Child(0), assignment) + n.Value.WR*eval(t, n.Child(1), assignment)
	}
}
