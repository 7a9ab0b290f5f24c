// SPDX-License-Identifier: MIT

package pcircuit

import (
	"strconv"
	"strings"

	"github.com/gaissmai/fol2circuit"
)

// String renders the tree's output as an infix expression: * for Product,
// + for Sum, ¬ prefixing a negated variable leaf. A weighted sum omits its
// weight prefixes entirely when both weights equal 1.0.
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
	case Variable:
		if n.Value.Neg {
			sb.WriteString("¬")
		}
		sb.WriteString(t.Symbols().DisplayName(n.Value.ID))
	case Product:
		sb.WriteString("(")
		display(sb, t, n.Child(0))
		sb.WriteString("*")
		display(sb, t, n.Child(1))
		sb.WriteString(")")
	case Sum:
		omitWeights := n.Value.WL == 1.0 && n.Value.WR == 1.0
		sb.WriteString("(")
		writeWeightedOperand(sb, t, n.Value.WL, n.Child(0), omitWeights)
		sb.WriteString("+")
		writeWeightedOperand(sb, t, n.Value.WR, n.Child(1), omitWeights)
		sb.WriteString(")")
	}
}

func writeWeightedOperand(sb *strings.Builder, t *Tree, w float64, a fol2circuit.Address, omit bool) {
	if !omit {
		sb.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
		sb.WriteString("·")
	}
	display(sb, t, a)
}
