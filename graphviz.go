package minimoore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DOT renders the machine as a Graphviz digraph. States are labeled with
// their id and output symbol; edges carry the input symbol; an arrow from a
// plaintext node marks the initial state.
func DOT[I, O comparable](m *MooreMachine[I, O]) string {
	var sb strings.Builder

	sb.WriteString("digraph MooreMachine {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n\n")

	if init, ok := m.InitialState(); ok {
		sb.WriteString("  init [shape=plaintext, label=\"\"];\n")
		fmt.Fprintf(&sb, "  init -> %d;\n\n", init)
	}

	for state := range m.States() {
		if output, err := m.OutputOf(state); err == nil {
			fmt.Fprintf(&sb, "  %d [label=\"%d: %v\"];\n", state, state, output)
		} else {
			fmt.Fprintf(&sb, "  %d [label=\"%d\"];\n", state, state)
		}
	}
	sb.WriteString("\n")

	for t := range m.Transitions() {
		fmt.Fprintf(&sb, "  %d -> %d [label=\"%v\"];\n", t.Source, t.Dest, t.Symbol)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// SaveGraphviz writes the DOT rendering of the machine to path, forcing a
// .dot suffix.
func SaveGraphviz[I, O comparable](m *MooreMachine[I, O], path string) error {
	if ext := filepath.Ext(path); ext != ".dot" {
		path = strings.TrimSuffix(path, ext) + ".dot"
	}
	if err := os.WriteFile(path, []byte(DOT(m)), 0o644); err != nil {
		return fmt.Errorf("save graphviz: %w", err)
	}
	return nil
}
