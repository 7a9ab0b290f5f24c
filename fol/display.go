// SPDX-License-Identifier: MIT

package fol

import (
	"strings"

	"github.com/gaissmai/fol2circuit"
)

// String renders the tree's output using the glyph set ¬, ∧, ∨, ∀, ∃.
// Predicate applications render as "P(x1, x2)".
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
	case Predicate:
		sb.WriteString(t.Symbols().DisplayName(n.Value.ID))
		sb.WriteString("(")
		for i, arg := range Args(t, a) {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(t.Symbols().DisplayName(arg))
		}
		sb.WriteString(")")
	case Universal:
		sb.WriteString("∀")
		sb.WriteString(t.Symbols().DisplayName(n.Value.ID))
		sb.WriteString(": ")
		display(sb, t, n.Child(0))
	case Existential:
		sb.WriteString("∃")
		sb.WriteString(t.Symbols().DisplayName(n.Value.ID))
		sb.WriteString(": ")
		display(sb, t, n.Child(0))
	case Not:
		sb.WriteString("¬")
		display(sb, t, n.Child(0))
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
