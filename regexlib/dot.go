package regexlib

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ExportDOT prints a Graphviz representation of d to w. Explicit
// transitions with a common target are grouped on one edge; the default
// transition is the edge labelled Σ.
func ExportDOT(w io.Writer, d *DFA) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	states := make([]int, 0, len(d.Accepting))
	for s := range d.Accepting {
		states = append(states, s)
	}
	sort.Ints(states)

	for _, s := range states {
		shape := "circle"
		if d.Accepting[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s, shape)

		byTarget := map[int]RuneSet{}
		for key, to := range d.Transition {
			if key.State != s || key.Input == InvalidRune || to == DeadState {
				continue
			}
			byTarget[to] = append(byTarget[to], key.Input)
		}
		targets := make([]int, 0, len(byTarget))
		for to := range byTarget {
			targets = append(targets, to)
		}
		sort.Ints(targets)
		for _, to := range targets {
			runes := newRuneSet(byTarget[to]...)
			var label strings.Builder
			writeClass(&label, runes)
			fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", s, to, label.String())
		}
		if def := d.Transition[TransitionKey{s, InvalidRune}]; def != DeadState {
			fmt.Fprintf(w, "    q%d -> q%d [label=\"Σ\"];\n", s, def)
		}
	}

	fmt.Fprintln(w, "    _start [shape=point]; _start -> q0;")
	fmt.Fprintln(w, "}")
}
