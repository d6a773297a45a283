// Package nfa implements spec.md components D (Thompson's construction)
// and E (the DFS normalizer), built on the shared internal/automaton
// handle and set types. Grounded on original_source/nfa.py's Nfa class — init_nfa,
// concat, union, kleene_star, kleene_one, kleene_plus, normalize,
// get_epsilon_closure — translated from Python's string-keyed
// dict-of-sets transition table to Go's arena-handle scheme described
// in internal/automaton, and on DanielRasho-CT-Project-1's internal/nfa
// package name and its BuildNFA entry point (cmd/auxiliar/functions.go
// calls nfaAutomata.BuildNFA(root) and prints via nfa.StartState /
// nfa.EndState / nfa.Transitions, the naming this package's exported
// API mirrors in spirit).
package nfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgonzalez/regexfa/internal/alphabet"
	"github.com/rgonzalez/regexfa/internal/automataerrors"
	"github.com/rgonzalez/regexfa/internal/automaton"
)

// NFA is an epsilon-NFA: δ: Q × (Σ ∪ {ε}) -> 𝒫(Q). Transitions maps a
// source handle to a symbol -> target-set table; automaton.EpsilonSymbol
// is the table key for ε-moves. Σ always contains ε, matching spec.md
// §3.
type NFA struct {
	arena       *automaton.Arena
	States      automaton.Set
	Start       automaton.Handle
	Final       automaton.Set
	Alphabet    map[byte]bool
	Transitions map[automaton.Handle]map[byte]automaton.Set
}

func newEmpty(arena *automaton.Arena) *NFA {
	return &NFA{
		arena:       arena,
		States:      automaton.Set{},
		Final:       automaton.Set{},
		Alphabet:    map[byte]bool{automaton.EpsilonSymbol: true},
		Transitions: map[automaton.Handle]map[byte]automaton.Set{},
	}
}

func (n *NFA) addTransition(from automaton.Handle, symbol byte, to automaton.Handle) {
	if n.Transitions[from] == nil {
		n.Transitions[from] = map[byte]automaton.Set{}
	}
	if n.Transitions[from][symbol] == nil {
		n.Transitions[from][symbol] = automaton.Set{}
	}
	n.Transitions[from][symbol].Add(to)
}

// Arena returns the arena this NFA's handles were issued from. Every
// fragment combined by Concat/Union/Kleene* must share one arena per
// regex_to_nfa call.
func (n *NFA) Arena() *automaton.Arena { return n.arena }

// NewAtom builds the two-state fragment for a single alphabet symbol:
// a fresh initial state s, a fresh final state f, and s --char--> f.
// Grounded on Nfa.init_nfa.
func NewAtom(arena *automaton.Arena, char byte) *NFA {
	n := newEmpty(arena)
	start := arena.Fresh()
	final := arena.Fresh()
	n.States.Add(start)
	n.States.Add(final)
	n.Start = start
	n.Final.Add(final)
	n.Alphabet[char] = true
	n.addTransition(start, char, final)
	return n
}

func mergeAlphabets(a, b map[byte]bool) map[byte]bool {
	out := make(map[byte]bool, len(a)+len(b))
	for c := range a {
		out[c] = true
	}
	for c := range b {
		out[c] = true
	}
	return out
}

// relabel rewrites every occurrence of old as a transition source or
// target within n to new, used by Concat to fuse n1's single final
// state with n2's initial state without leaving a dangling reference.
func relabel(n *NFA, old, new automaton.Handle) {
	if old == new {
		return
	}
	delete(n.States, old)
	n.States.Add(new)
	if n.Start == old {
		n.Start = new
	}
	if n.Final.Has(old) {
		delete(n.Final, old)
		n.Final.Add(new)
	}
	if table, ok := n.Transitions[old]; ok {
		delete(n.Transitions, old)
		n.Transitions[new] = table
	}
	for _, table := range n.Transitions {
		for symbol, targets := range table {
			if targets.Has(old) {
				delete(targets, old)
				targets.Add(new)
				table[symbol] = targets
			}
		}
	}
}

// Concat implements spec.md 4.D's concat(N1, N2): if N1 has exactly one
// final state, that state is identified with N2's initial state (N2's
// initial is renamed away); otherwise an ε-transition is added from
// every N1 final state to N2's initial state. Grounded on Nfa.concat,
// tolerating (per SPEC_FULL.md's open-question resolution) the absence
// of a pre-existing ε-entry on an N1 final state rather than assuming
// one, since with fresh handles there is nothing to assume.
func Concat(n1, n2 *NFA) *NFA {
	merged := len(n1.Final) == 1

	out := newEmpty(n1.arena)
	out.Alphabet = mergeAlphabets(n1.Alphabet, n2.Alphabet)

	if merged {
		var n1Final automaton.Handle
		for h := range n1.Final {
			n1Final = h
		}
		relabel(n2, n2.Start, n1Final)
	}

	for h := range n1.States {
		out.States.Add(h)
	}
	for h := range n2.States {
		out.States.Add(h)
	}
	out.Start = n1.Start
	for h := range n2.Final {
		out.Final.Add(h)
	}

	for from, table := range n1.Transitions {
		for symbol, targets := range table {
			for to := range targets {
				out.addTransition(from, symbol, to)
			}
		}
	}
	for from, table := range n2.Transitions {
		for symbol, targets := range table {
			for to := range targets {
				out.addTransition(from, symbol, to)
			}
		}
	}

	if !merged {
		for h := range n1.Final {
			out.addTransition(h, automaton.EpsilonSymbol, n2.Start)
		}
	}

	return out
}

// Union implements spec.md 4.D's union(N1, N2): a fresh initial state
// with ε-transitions to both sub-automata's initial states. Grounded on
// Nfa.union.
func Union(n1, n2 *NFA) *NFA {
	out := newEmpty(n1.arena)
	out.Alphabet = mergeAlphabets(n1.Alphabet, n2.Alphabet)

	for h := range n1.States {
		out.States.Add(h)
	}
	for h := range n2.States {
		out.States.Add(h)
	}
	for h := range n1.Final {
		out.Final.Add(h)
	}
	for h := range n2.Final {
		out.Final.Add(h)
	}

	for from, table := range n1.Transitions {
		for symbol, targets := range table {
			for to := range targets {
				out.addTransition(from, symbol, to)
			}
		}
	}
	for from, table := range n2.Transitions {
		for symbol, targets := range table {
			for to := range targets {
				out.addTransition(from, symbol, to)
			}
		}
	}

	start := n1.arena.Fresh()
	out.States.Add(start)
	out.Start = start
	out.addTransition(start, automaton.EpsilonSymbol, n1.Start)
	out.addTransition(start, automaton.EpsilonSymbol, n2.Start)

	return out
}

// consolidateFinal ensures n has exactly one final state, introducing a
// fresh one with incoming ε-transitions from every old final state if
// there was more than one. Shared by the three Kleene operators.
func consolidateFinal(n *NFA) automaton.Handle {
	if len(n.Final) > 1 {
		newFinal := n.arena.Fresh()
		old := n.Final
		n.Final = automaton.NewSet(newFinal)
		n.States.Add(newFinal)
		for h := range old {
			n.addTransition(h, automaton.EpsilonSymbol, newFinal)
		}
	}
	for h := range n.Final {
		return h
	}
	panic("nfa: consolidateFinal called on an NFA with no final state")
}

// KleeneStar implements spec.md 4.D's N*: consolidates to a single
// final state f, then adds the zero-match shortcut q0--ε-->f and the
// repetition back-edge f--ε-->q0. In-place, matching the teacher's
// mutation-based composition (spec.md's Design Notes leave this
// choice open). Grounded on Nfa.kleene_star.
func (n *NFA) KleeneStar() {
	final := consolidateFinal(n)
	n.addTransition(n.Start, automaton.EpsilonSymbol, final)
	n.addTransition(final, automaton.EpsilonSymbol, n.Start)
}

// KleeneZeroOrOne implements spec.md 4.D's N?: consolidates, then adds
// only the zero-match shortcut (no back-edge). Grounded on
// Nfa.kleene_one.
func (n *NFA) KleeneZeroOrOne() {
	final := consolidateFinal(n)
	n.addTransition(n.Start, automaton.EpsilonSymbol, final)
}

// KleenePlus implements spec.md 4.D's N+: consolidates, then adds only
// the repetition back-edge (no zero-match shortcut). Grounded on
// Nfa.kleene_plus.
func (n *NFA) KleenePlus() {
	final := consolidateFinal(n)
	n.addTransition(final, automaton.EpsilonSymbol, n.Start)
}

// Build evaluates a postfix expression into an NFA via Thompson's
// construction (spec.md 4.D), using a stack of NFA fragments. Fails
// with automataerrors.ErrMalformedRegex if an operator is applied to
// too few operands, or if more than one fragment remains on the stack
// at the end.
func Build(postfix string) (*NFA, error) {
	arena := automaton.NewArena()
	var stack []*NFA

	pop := func() (*NFA, bool) {
		n := len(stack)
		if n == 0 {
			return nil, false
		}
		top := stack[n-1]
		stack = stack[:n-1]
		return top, true
	}

	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch {
		case alphabet.IsAlphabet(c):
			stack = append(stack, NewAtom(arena, c))
		case c == alphabet.Concat:
			n2, ok2 := pop()
			n1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, automataerrors.Malformed(postfix, i, "concatenation operator missing operand")
			}
			stack = append(stack, Concat(n1, n2))
		case c == alphabet.Union:
			n2, ok2 := pop()
			n1, ok1 := pop()
			if !ok1 || !ok2 {
				return nil, automataerrors.Malformed(postfix, i, "union operator missing operand")
			}
			stack = append(stack, Union(n1, n2))
		case c == alphabet.ZeroOrMore:
			n, ok := pop()
			if !ok {
				return nil, automataerrors.Malformed(postfix, i, "'*' applied with no operand")
			}
			n.KleeneStar()
			stack = append(stack, n)
		case c == alphabet.ZeroOrOne:
			n, ok := pop()
			if !ok {
				return nil, automataerrors.Malformed(postfix, i, "'?' applied with no operand")
			}
			n.KleeneZeroOrOne()
			stack = append(stack, n)
		case c == alphabet.OneOrMore:
			n, ok := pop()
			if !ok {
				return nil, automataerrors.Malformed(postfix, i, "'+' applied with no operand")
			}
			n.KleenePlus()
			stack = append(stack, n)
		default:
			return nil, automataerrors.Malformed(postfix, i, fmt.Sprintf("unexpected postfix token %q", c))
		}
	}

	if len(stack) != 1 {
		return nil, automataerrors.Malformed(postfix, len(postfix), "expression does not reduce to a single automaton")
	}
	return stack[0], nil
}

// EpsilonClosure computes the least set C such that state ∈ C and for
// every u ∈ C and every v reachable from u by ε, v ∈ C. Grounded on
// Nfa.get_epsilon_closure's stack-based fixed-point traversal.
// Idempotent: EpsilonClosure(n, EpsilonClosure(n, s)) == EpsilonClosure(n, s)
// for any single s in the result, since closures are themselves fixed
// points.
func EpsilonClosure(n *NFA, state automaton.Handle) automaton.Set {
	result := automaton.Set{}
	stack := []automaton.Handle{state}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if result.Has(current) {
			continue
		}
		result.Add(current)
		if table, ok := n.Transitions[current]; ok {
			for next := range table[automaton.EpsilonSymbol] {
				if !result.Has(next) {
					stack = append(stack, next)
				}
			}
		}
	}
	return result
}

// ClosureOfSet unions the epsilon closure of every member of states.
func ClosureOfSet(n *NFA, states automaton.Set) automaton.Set {
	out := automaton.Set{}
	for h := range states {
		for c := range EpsilonClosure(n, h) {
			out.Add(c)
		}
	}
	return out
}

// TypeName, StartHandle, IsFinal, IsTrap, DisplayName and OutEdges
// implement automaton.Automaton for internal/visualize.

func (n *NFA) TypeName() string              { return "nfa" }
func (n *NFA) StartHandle() automaton.Handle  { return n.Start }
func (n *NFA) IsFinal(h automaton.Handle) bool { return n.Final.Has(h) }
func (n *NFA) IsTrap(automaton.Handle) bool    { return false }
func (n *NFA) DisplayName(h automaton.Handle) string {
	return n.arena.Name(h)
}

// OutEdges aggregates, per spec.md 4.H, every symbol shared between the
// same source and target into a single comma-joined edge label (ε
// rendered with its distinct glyph), matching original_source/fa.py's
// Fa.draw, which builds a state_transactions_reverse map keyed by
// destination state before emitting one edge per destination.
func (n *NFA) OutEdges(h automaton.Handle) []automaton.Edge {
	table, ok := n.Transitions[h]
	if !ok {
		return nil
	}
	labelsByTarget := map[automaton.Handle][]string{}
	var order []automaton.Handle
	for symbol, targets := range table {
		label := string(symbol)
		if symbol == automaton.EpsilonSymbol {
			label = alphabet.EpsilonGlyph
		}
		for to := range targets {
			if _, seen := labelsByTarget[to]; !seen {
				order = append(order, to)
			}
			labelsByTarget[to] = append(labelsByTarget[to], label)
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	edges := make([]automaton.Edge, 0, len(order))
	for _, to := range order {
		labels := labelsByTarget[to]
		sort.Strings(labels)
		edges = append(edges, automaton.Edge{Symbol: strings.Join(labels, ","), Target: to})
	}
	return edges
}
