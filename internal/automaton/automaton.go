// Package automaton holds the pieces every automaton flavor in this
// pipeline shares: arena-issued state handles, handle sets, rendering
// edges, and the Automaton interface. It declares no struct for the
// (Q, q0, F, Σ) part of the 5-tuple: nfa.NFA and dfa.DFA each declare
// their own States, Start, Final and Alphabet fields, next to a
// transition relation whose shape differs between an NFA (multi-valued,
// includes ε) and a DFA (single-valued, total).
//
// Per spec.md's Design Notes §9, states are arena-allocated integer
// handles rather than strings during construction: cheap equality,
// hashable, sortable for the subset constructor's canonical subset key.
// A display name (a UUID for a fresh handle, a canonical "Q<n>"/"T"
// label once relabeled) is only attached at the normalization /
// rendering boundary, mirroring original_source/nfa.py's str(uuid4())
// scheme without paying string-comparison cost during construction.
package automaton

import (
	"sort"

	"github.com/google/uuid"
)

// Handle is an opaque, arena-issued state identifier.
type Handle uint64

// EpsilonSymbol is the internal transition-table key for an ε-move. It
// is a control byte (NUL), disjoint from every printable alphabet
// character. shuntingyard.ToPostfix does not reject a NUL byte in its
// input, so a NUL in a regex is built as an ε-move, not as a literal.
const EpsilonSymbol byte = 0

// Arena issues fresh handles and tracks a display name for each one.
// The zero value is not usable; use NewArena.
type Arena struct {
	next  uint64
	names map[Handle]string
}

// NewArena returns an empty, ready-to-use arena.
func NewArena() *Arena {
	return &Arena{names: make(map[Handle]string)}
}

// Fresh allocates a new handle with a UUID display name, matching
// original_source/nfa.py's str(uuid.uuid4()) fresh-identifier scheme.
func (a *Arena) Fresh() Handle {
	h := Handle(a.next)
	a.next++
	a.names[h] = uuid.New().String()
	return h
}

// Name returns the current display name of h.
func (a *Arena) Name(h Handle) string {
	return a.names[h]
}

// Rename overwrites the display name of h, used by the NFA normalizer
// and the subset constructor to install canonical "Q<n>"/"T" labels.
func (a *Arena) Rename(h Handle, name string) {
	a.names[h] = name
}

// Set is an unordered collection of handles with O(1) membership.
type Set map[Handle]struct{}

// NewSet builds a Set from the given handles.
func NewSet(handles ...Handle) Set {
	s := make(Set, len(handles))
	for _, h := range handles {
		s[h] = struct{}{}
	}
	return s
}

// Add inserts h into the set.
func (s Set) Add(h Handle) { s[h] = struct{}{} }

// Has reports set membership.
func (s Set) Has(h Handle) bool {
	_, ok := s[h]
	return ok
}

// Union returns a new set containing every member of s and other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for h := range s {
		out[h] = struct{}{}
	}
	for h := range other {
		out[h] = struct{}{}
	}
	return out
}

// Intersects reports whether s and other share any member.
func (s Set) Intersects(other Set) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for h := range small {
		if big.Has(h) {
			return true
		}
	}
	return false
}

// Sorted returns the set's members as a slice in ascending handle
// order — the canonical ordering the subset constructor uses to key a
// set of NFA states as a single DFA state.
func (s Set) Sorted() []Handle {
	out := make([]Handle, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edge is a single outgoing transition for rendering purposes: a
// display-ready symbol label (already "ε" for an epsilon move) and the
// target handle.
type Edge struct {
	Symbol string
	Target Handle
}

// Automaton is the interface internal/visualize dispatches against: any
// of NFA, DFA, or minimized DFA. It intentionally exposes only what a
// BFS-wave renderer needs, not the transition-relation shape itself
// (which differs between flavors).
type Automaton interface {
	TypeName() string
	StartHandle() Handle
	IsFinal(h Handle) bool
	IsTrap(h Handle) bool
	DisplayName(h Handle) string
	OutEdges(h Handle) []Edge
}
