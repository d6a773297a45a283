package nfa

import (
	"fmt"
	"sort"

	"github.com/rgonzalez/regexfa/internal/alphabet"
	"github.com/rgonzalez/regexfa/internal/automaton"
)

// Normalize implements spec.md component E: a depth-first traversal
// from Start assigns sequential display labels Q1, Q2, … in discovery
// order to every state reachable from Start; states unreachable from
// Start are dropped from States, Final and Transitions. The underlying
// arena handles are untouched — only their display names and the
// reachable-state bookkeeping change — but the result is semantically
// equivalent to original_source/nfa.py's Nfa.normalize, which relabels
// the states themselves, since nothing outside this package observes
// raw handle values.
func (n *NFA) Normalize() {
	visited := automaton.Set{}
	var order []automaton.Handle

	var visit func(h automaton.Handle)
	visit = func(h automaton.Handle) {
		if visited.Has(h) {
			return
		}
		visited.Add(h)
		order = append(order, h)

		table := n.Transitions[h]
		symbols := make([]byte, 0, len(table))
		for symbol := range table {
			symbols = append(symbols, symbol)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, symbol := range symbols {
			targets := table[symbol].Sorted()
			for _, to := range targets {
				visit(to)
			}
		}
	}
	visit(n.Start)

	newStates := automaton.Set{}
	newFinal := automaton.Set{}
	newTransitions := map[automaton.Handle]map[byte]automaton.Set{}
	for i, h := range order {
		n.arena.Rename(h, fmt.Sprintf("%s%d", alphabet.StatePrefix, i+1))
		newStates.Add(h)
		if n.Final.Has(h) {
			newFinal.Add(h)
		}
		if table, ok := n.Transitions[h]; ok {
			filtered := map[byte]automaton.Set{}
			for symbol, targets := range table {
				keep := automaton.Set{}
				for to := range targets {
					if visited.Has(to) {
						keep.Add(to)
					}
				}
				if len(keep) > 0 {
					filtered[symbol] = keep
				}
			}
			if len(filtered) > 0 {
				newTransitions[h] = filtered
			}
		}
	}

	n.States = newStates
	n.Final = newFinal
	n.Transitions = newTransitions
}
