// Package dfa implements spec.md component F: the subset construction
// that determinizes an epsilon-NFA into a DFA with an explicit trap
// state absorbing every otherwise-undefined transition.
//
// Grounded on original_source/dfa.py's Dfa.nfa_to_dfa (worklist over
// tuples of NFA states, canonicalized via Python tuple equality) and on
// DanielRasho-CT-Project-1's internal/dfa package name
// (dfaAutomata.ConvertNFAtoAFD in cmd/auxiliar/functions.go). Subset
// identity here is canonicalized by sorting the member NFA handles
// (automaton.Set.Sorted) into a string key, per spec.md 4.F's
// "implementation must canonicalize... for equality" guidance.
package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgonzalez/regexfa/internal/alphabet"
	"github.com/rgonzalez/regexfa/internal/automaton"
	"github.com/rgonzalez/regexfa/internal/nfa"
)

// DFA is a deterministic finite automaton: δ: Q × Σ -> Q, total over Σ
// for every reachable state.
type DFA struct {
	arena       *automaton.Arena
	States      automaton.Set
	Start       automaton.Handle
	Final       automaton.Set
	Alphabet    map[byte]bool
	Transitions map[automaton.Handle]map[byte]automaton.Handle
	Trap        automaton.Handle
	HasTrap     bool
}

func subsetKey(s automaton.Set) string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, h := range sorted {
		parts[i] = fmt.Sprintf("%d", h)
	}
	return strings.Join(parts, ",")
}

// FromNFA runs the subset construction over n, producing a total DFA
// with a trap state for every symbol that would otherwise be
// undefined. Σ_DFA is Σ_NFA minus ε.
func FromNFA(n *nfa.NFA) *DFA {
	arena := automaton.NewArena()

	sigma := map[byte]bool{}
	var sigmaOrder []byte
	for c := range n.Alphabet {
		if c == automaton.EpsilonSymbol {
			continue
		}
		sigma[c] = true
		sigmaOrder = append(sigmaOrder, c)
	}
	sort.Slice(sigmaOrder, func(i, j int) bool { return sigmaOrder[i] < sigmaOrder[j] })

	d := &DFA{
		arena:       arena,
		States:      automaton.Set{},
		Final:       automaton.Set{},
		Alphabet:    sigma,
		Transitions: map[automaton.Handle]map[byte]automaton.Handle{},
	}

	stateOf := map[string]automaton.Handle{}
	subsetOf := map[automaton.Handle]automaton.Set{}
	counter := 1

	newState := func(set automaton.Set) automaton.Handle {
		h := arena.Fresh()
		arena.Rename(h, fmt.Sprintf("%s%d", alphabet.StatePrefix, counter))
		counter++
		stateOf[subsetKey(set)] = h
		subsetOf[h] = set
		d.States.Add(h)
		if set.Intersects(n.Final) {
			d.Final.Add(h)
		}
		return h
	}

	initialSet := nfa.EpsilonClosure(n, n.Start)
	d.Start = newState(initialSet)

	var trap automaton.Handle
	hasTrap := false
	ensureTrap := func() automaton.Handle {
		if hasTrap {
			return trap
		}
		trap = arena.Fresh()
		arena.Rename(trap, alphabet.Trap)
		d.States.Add(trap)
		d.Trap = trap
		d.HasTrap = true
		hasTrap = true
		return trap
	}

	worklist := []automaton.Handle{d.Start}
	processed := automaton.Set{}

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		if processed.Has(current) {
			continue
		}
		processed.Add(current)

		currentSet := subsetOf[current]
		table := map[byte]automaton.Handle{}
		for _, symbol := range sigmaOrder {
			moveSet := automaton.Set{}
			for s := range currentSet {
				if byTable, ok := n.Transitions[s]; ok {
					for t := range byTable[symbol] {
						for c := range nfa.EpsilonClosure(n, t) {
							moveSet.Add(c)
						}
					}
				}
			}

			var target automaton.Handle
			if len(moveSet) == 0 {
				target = ensureTrap()
			} else if existing, ok := stateOf[subsetKey(moveSet)]; ok {
				target = existing
			} else {
				target = newState(moveSet)
				worklist = append(worklist, target)
			}
			table[symbol] = target
		}
		d.Transitions[current] = table
	}

	if hasTrap {
		trapTable := map[byte]automaton.Handle{}
		for _, symbol := range sigmaOrder {
			trapTable[symbol] = trap
		}
		d.Transitions[trap] = trapTable
	}

	return d
}

// NewWithArena builds a DFA directly from its component parts. It
// exists so internal/minimize can hand back a minimized automaton
// through this same exported type instead of a parallel one — the
// minimal DFA is, after all, still a DFA (spec.md's Design Notes §9
// model NFA/DFA as variants of one tagged sum; minimization doesn't
// introduce a third flavor).
func NewWithArena(
	arena *automaton.Arena,
	states automaton.Set,
	start automaton.Handle,
	final automaton.Set,
	alphabet map[byte]bool,
	transitions map[automaton.Handle]map[byte]automaton.Handle,
	trap automaton.Handle,
	hasTrap bool,
) *DFA {
	return &DFA{
		arena:       arena,
		States:      states,
		Start:       start,
		Final:       final,
		Alphabet:    alphabet,
		Transitions: transitions,
		Trap:        trap,
		HasTrap:     hasTrap,
	}
}

// TypeName, StartHandle, IsFinal, IsTrap, DisplayName and OutEdges
// implement automaton.Automaton for internal/visualize.

func (d *DFA) TypeName() string             { return "dfa" }
func (d *DFA) StartHandle() automaton.Handle { return d.Start }
func (d *DFA) IsFinal(h automaton.Handle) bool {
	return d.Final.Has(h)
}
func (d *DFA) IsTrap(h automaton.Handle) bool {
	return d.HasTrap && h == d.Trap
}
func (d *DFA) DisplayName(h automaton.Handle) string {
	return d.arena.Name(h)
}

func (d *DFA) OutEdges(h automaton.Handle) []automaton.Edge {
	table, ok := d.Transitions[h]
	if !ok {
		return nil
	}
	bySymbolTarget := map[automaton.Handle][]string{}
	var order []automaton.Handle
	for symbol, target := range table {
		if _, seen := bySymbolTarget[target]; !seen {
			order = append(order, target)
		}
		bySymbolTarget[target] = append(bySymbolTarget[target], string(symbol))
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	edges := make([]automaton.Edge, 0, len(order))
	for _, target := range order {
		labels := bySymbolTarget[target]
		sort.Strings(labels)
		edges = append(edges, automaton.Edge{Symbol: strings.Join(labels, ","), Target: target})
	}
	return edges
}
