// Package regexfa is the public entry point to the regex compilation
// pipeline: regex string -> postfix -> epsilon-NFA -> DFA -> minimal
// DFA, with a BFS-wave visualizer and a diagnostic simulator for every
// stage. It re-exports the internal packages' API under the names
// SPEC_FULL.md names as the consumer surface, so a caller never needs
// to know the internal/ layout — the boundary an interactive window
// wrapper would sit behind.
package regexfa

import (
	"github.com/rgonzalez/regexfa/internal/automaton"
	"github.com/rgonzalez/regexfa/internal/dfa"
	"github.com/rgonzalez/regexfa/internal/minimize"
	"github.com/rgonzalez/regexfa/internal/nfa"
	"github.com/rgonzalez/regexfa/internal/shuntingyard"
	"github.com/rgonzalez/regexfa/internal/simulate"
	"github.com/rgonzalez/regexfa/internal/visualize"
)

// NFA and DFA are re-exported so callers can hold and pass around
// compiled automata without importing internal/nfa or internal/dfa
// directly.
type (
	NFA = nfa.NFA
	DFA = dfa.DFA
)

// Automaton is the shared rendering/inspection surface both NFA and DFA
// satisfy.
type Automaton = automaton.Automaton

// RegexToPostfix converts an infix regular expression into its postfix
// form via the shunting-yard algorithm, inserting explicit
// concatenation first.
func RegexToPostfix(regex string) (string, error) {
	return shuntingyard.ToPostfix(regex)
}

// RegexToNFA compiles regex all the way to an epsilon-NFA: postfix
// conversion followed by Thompson's construction.
func RegexToNFA(regex string) (*NFA, error) {
	postfix, err := shuntingyard.ToPostfix(regex)
	if err != nil {
		return nil, err
	}
	return nfa.Build(postfix)
}

// NFAToDFA determinizes n via the subset construction, producing a
// total DFA with an explicit trap state.
func NFAToDFA(n *NFA) *DFA {
	return dfa.FromNFA(n)
}

// MinimizeDFA collapses d's equivalent states via table-filling,
// returning a new minimal DFA.
func MinimizeDFA(d *DFA) *DFA {
	return minimize.Run(d)
}

// Draw renders a into directory as a sequence of images, one per BFS
// wave from its start state that has outgoing edges, and returns the
// paths written.
func Draw(a Automaton, directory string) ([]string, error) {
	return visualize.Draw(a, directory)
}

// SimulateNFA reports whether input is accepted by n, via direct
// epsilon-closure subset stepping.
func SimulateNFA(n *NFA, input string) bool {
	return simulate.NFAAccepts(n, input)
}

// SimulateDFA reports whether input is accepted by d, via a direct
// transition walk.
func SimulateDFA(d *DFA, input string) bool {
	return simulate.DFAAccepts(d, input)
}
