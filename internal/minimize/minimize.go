// Package minimize implements spec.md component G: the table-filling
// (Hopcroft-style pairwise) DFA minimizer. Reachable states are
// enumerated as 0..n-1, a lower-triangular mark table is filled to a
// fixed point, and unmarked pairs are collapsed via union-find into
// equivalence classes — one state per class in the output DFA.
//
// Grounded on original_source/dfa.py's Dfa.minimize_dfa (numpy mark
// table plus a hand-rolled union-find keyed by state name) and on
// DanielRasho-CT-Project-1's two-stage pipeline shape (build then
// reduce). Per spec.md's Design Notes §9 minimizer subtlety, merged
// transitions are routed through the union-find root rather than
// through a raw "first tuple member" reference, and the table-filling
// loop repeats until a full sweep marks nothing new rather than
// stopping after one pass.
package minimize

import (
	"fmt"
	"sort"

	"github.com/rgonzalez/regexfa/internal/alphabet"
	"github.com/rgonzalez/regexfa/internal/automaton"
	"github.com/rgonzalez/regexfa/internal/dfa"
)

type unionFind struct {
	parent map[automaton.Handle]automaton.Handle
}

func newUnionFind(states []automaton.Handle) *unionFind {
	u := &unionFind{parent: make(map[automaton.Handle]automaton.Handle, len(states))}
	for _, s := range states {
		u.parent[s] = s
	}
	return u
}

func (u *unionFind) find(x automaton.Handle) automaton.Handle {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

func (u *unionFind) union(a, b automaton.Handle) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}

func sortedAlphabet(sigma map[byte]bool) []byte {
	out := make([]byte, 0, len(sigma))
	for c := range sigma {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Run minimizes d, returning a new, language-equivalent DFA whose
// states are the equivalence classes of d's reachable states.
// Idempotent: minimizing an already-minimal DFA yields a DFA with one
// state per input state (up to relabeling), since no two distinct
// classes of an already-minimal DFA are ever merged.
func Run(d *dfa.DFA) *dfa.DFA {
	symbols := sortedAlphabet(d.Alphabet)

	// Enumerate reachable states via BFS from Start, per spec.md 4.G.
	var order []automaton.Handle
	idx := map[automaton.Handle]int{}
	visited := automaton.Set{}
	queue := []automaton.Handle{d.Start}
	visited.Add(d.Start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		idx[cur] = len(order)
		order = append(order, cur)
		for _, a := range symbols {
			to := d.Transitions[cur][a]
			if !visited.Has(to) {
				visited.Add(to)
				queue = append(queue, to)
			}
		}
	}
	n := len(order)

	isFinal := func(h automaton.Handle) bool { return d.Final.Has(h) }

	table := make([][]bool, n)
	for i := range table {
		table[i] = make([]bool, n)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < row; col++ {
			table[row][col] = isFinal(order[row]) != isFinal(order[col])
		}
	}

	for {
		changed := false
		for row := 0; row < n; row++ {
			for col := 0; col < row; col++ {
				if table[row][col] {
					continue
				}
				for _, a := range symbols {
					t1 := d.Transitions[order[row]][a]
					t2 := d.Transitions[order[col]][a]
					i1, i2 := idx[t1], idx[t2]
					if i1 == i2 {
						continue
					}
					var pairMarked bool
					if i1 > i2 {
						pairMarked = table[i1][i2]
					} else {
						pairMarked = table[i2][i1]
					}
					if pairMarked {
						table[row][col] = true
						changed = true
						break
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	uf := newUnionFind(order)
	for row := 0; row < n; row++ {
		for col := 0; col < row; col++ {
			if !table[row][col] {
				uf.union(order[row], order[col])
			}
		}
	}

	var classOrder []automaton.Handle
	seenRoot := automaton.Set{}
	for _, h := range order {
		root := uf.find(h)
		if !seenRoot.Has(root) {
			seenRoot.Add(root)
			classOrder = append(classOrder, root)
		}
	}

	var trapRoot automaton.Handle
	hasTrapClass := d.HasTrap
	if hasTrapClass {
		trapRoot = uf.find(d.Trap)
	}

	arena := automaton.NewArena()
	classHandle := map[automaton.Handle]automaton.Handle{}
	newStates := automaton.Set{}
	newFinal := automaton.Set{}

	counter := 1
	for _, root := range classOrder {
		nh := arena.Fresh()
		if hasTrapClass && root == trapRoot {
			arena.Rename(nh, alphabet.Trap)
		} else {
			arena.Rename(nh, fmt.Sprintf("%s%d", alphabet.StatePrefix, counter))
			counter++
		}
		classHandle[root] = nh
		newStates.Add(nh)
	}

	for _, h := range order {
		if isFinal(h) {
			newFinal.Add(classHandle[uf.find(h)])
		}
	}

	newTransitions := map[automaton.Handle]map[byte]automaton.Handle{}
	for _, root := range classOrder {
		nh := classHandle[root]
		row := map[byte]automaton.Handle{}
		for _, a := range symbols {
			target := d.Transitions[root][a]
			row[a] = classHandle[uf.find(target)]
		}
		newTransitions[nh] = row
	}

	newAlphabet := make(map[byte]bool, len(d.Alphabet))
	for c := range d.Alphabet {
		newAlphabet[c] = true
	}

	newStart := classHandle[uf.find(d.Start)]

	var trapHandle automaton.Handle
	if hasTrapClass {
		trapHandle = classHandle[trapRoot]
	}

	return dfa.NewWithArena(arena, newStates, newStart, newFinal, newAlphabet, newTransitions, trapHandle, hasTrapClass)
}
