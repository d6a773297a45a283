// Package simulate provides a direct, non-backtracking acceptance walk
// over an already-built NFA or DFA. It is not a general matching
// engine (spec.md explicitly excludes that): it only answers whether a
// whole input string is accepted by a given automaton, used by tests
// (SPEC_FULL.md testable property 6) and by the CLI's --simulate flag.
//
// Grounded on EnnnOK-matcher/matcher.go's addstate/step/ismatch shape
// (subset-of-states stepping one input byte at a time) and named after
// DanielRasho-CT-Project-1's internal/runner_simulation.RunnerNFA,
// which cmd/auxiliar/functions.go calls for both its NFA and its DFA.
package simulate

import (
	"github.com/rgonzalez/regexfa/internal/automaton"
	"github.com/rgonzalez/regexfa/internal/dfa"
	"github.com/rgonzalez/regexfa/internal/nfa"
)

// NFAAccepts reports whether input is accepted by n: the current
// subset of live states starts as the ε-closure of n.Start, and is
// advanced one input byte at a time by following matching transitions
// and re-closing over ε, exactly the move()/ε-closure combination the
// subset constructor itself performs.
func NFAAccepts(n *nfa.NFA, input string) bool {
	current := nfa.EpsilonClosure(n, n.Start)

	for i := 0; i < len(input); i++ {
		c := input[i]
		next := automaton.Set{}
		for s := range current {
			if table, ok := n.Transitions[s]; ok {
				for t := range table[c] {
					next.Add(t)
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = nfa.ClosureOfSet(n, next)
	}

	return current.Intersects(n.Final)
}

// DFAAccepts reports whether input is accepted by d: a straight
// transition walk from d.Start, one input byte at a time. It returns
// false immediately upon landing on the trap state — a trap is never
// accepting and, since it self-loops on every symbol, no later input
// byte can walk back out of it, so finishing the walk early is a pure
// performance optimization, not a behavior change.
func DFAAccepts(d *dfa.DFA, input string) bool {
	current := d.Start
	for i := 0; i < len(input); i++ {
		c := input[i]
		if d.IsTrap(current) {
			return false
		}
		target, ok := d.Transitions[current][c]
		if !ok {
			return false
		}
		current = target
	}
	return d.IsFinal(current) && !d.IsTrap(current)
}
