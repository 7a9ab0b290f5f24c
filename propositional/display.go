// SPDX-License-Identifier: MIT

package propositional

import (
	"strings"

	"github.com/gaissmai/fol2circuit"
)

// String renders the tree's output using the fixed glyph set from spec
// §4.6: ¬ for Not, ∧ for And, ∨ for Or. Binary connectives are always
// fully parenthesized so the printed form round-trips unambiguously.
func String(t *Tree) string {
	var sb strings.Builder
	display(&sb, t, t.Output())
	return sb.String()
}

func display(sb *strings.Builder, t *Tree, a fol2circuit.Address) {
	if a.IsNone() {
		sb.WriteString("NONE")
		return
	}
	n := t.At(a)
	switch n.Value.Kind {
	case Var:
		sb.WriteString(t.Symbols().DisplayName(n.Value.ID))
	case Not:
		sb.WriteString("¬")
		displayOperand(sb, t, n.Child(0))
	case And:
		sb.WriteString("(")
		display(sb, t, n.Child(0))
		sb.WriteString("∧")
		display(sb, t, n.Child(1))
		sb.WriteString(")")
	case Or:
		sb.WriteString("(")
		display(sb, t, n.Child(0))
		sb.WriteString("∨")
		display(sb, t, n.Child(1))
		sb.WriteString(")")
	}
}

// displayOperand wraps a Not's operand without adding a redundant pair of
// parentheses around a bare variable, matching the reference renderer's
// "¬A" rather than "¬(A)".
func displayOperand(sb *strings.Builder, t *Tree, a fol2circuit.Address) {
	if a.IsSome() && t.At(a).Value.Kind == Var {
		display(sb, t, a)
		return
	}
	display(sb, t, a)
}
