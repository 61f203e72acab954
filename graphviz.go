package fsm

import "github.com/enetx/g"

// ToDOT generates a DOT language representation of the machine's visited
// trail for visualization: the history in order, ending at the current
// state, which is highlighted. The machine only knows where it has been,
// not the provider's full transition graph, so only the trail is rendered.
func (m *Machine[S]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Machine {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	trail := m.history.Clone()
	trail.Push(m.current)

	seen := g.NewSet[S]()

	for state := range trail.Iter() {
		if seen.Contains(state) {
			continue
		}

		seen.Insert(state)

		if state == m.current {
			b.WriteString(g.Format("  \"{}\" [label=\"{}\", fillcolor=\"#90ee90\", shape=doublecircle];\n", state, state))
		} else {
			b.WriteString(g.Format("  \"{}\" [label=\"{}\"];\n", state, state))
		}
	}

	b.WriteByte('\n')

	for i := g.Int(1); i < trail.Len(); i++ {
		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", trail[i-1], trail[i], i))
	}

	b.WriteString("}\n")

	return b.String()
}
