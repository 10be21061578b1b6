package table

import (
	"fmt"
	"strings"

	"github.com/coregx/lstar/alphabet"
)

// renderTable produces an aligned text dump of the (S, E, R) matrix: one
// row per access string (upper rows, then a border section after a "----"
// separator line), one column per experiment, in the spirit of coregex's
// DFA.String() deterministic diagnostic dumps.
func renderTable(t *Table) string {
	var sb strings.Builder

	colLabel := func(e []string) string {
		if len(e) == 0 {
			return "ε"
		}
		return alphabet.Join(e)
	}
	rowLabel := func(s []string) string {
		if len(s) == 0 {
			return "ε"
		}
		return alphabet.Join(s)
	}

	fmt.Fprintf(&sb, "Table(|S|=%d, |E|=%d)\n", len(t.sWords), len(t.eWords))
	fmt.Fprint(&sb, "      ")
	for _, e := range t.eWords {
		fmt.Fprintf(&sb, "%-8s", colLabel(e))
	}
	sb.WriteByte('\n')

	writeRow := func(label string, row []bool) {
		fmt.Fprintf(&sb, "%-6s", label)
		for _, bit := range row {
			if bit {
				fmt.Fprintf(&sb, "%-8s", "1")
			} else {
				fmt.Fprintf(&sb, "%-8s", "0")
			}
		}
		sb.WriteByte('\n')
	}

	for _, s := range t.sWords {
		writeRow(rowLabel(s), t.r[alphabet.Join(s)])
	}
	sb.WriteString("      ----\n")
	for _, s := range t.sWords {
		for i := 0; i < t.alpha.Len(); i++ {
			border := alphabet.Concat(s, []string{t.alpha.Symbol(i)})
			key := alphabet.Join(border)
			if t.inS(border) {
				continue // already printed in the upper section
			}
			writeRow(rowLabel(border), t.r[key])
		}
	}
	return sb.String()
}
