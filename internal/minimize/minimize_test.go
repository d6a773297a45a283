package minimize

import (
	"testing"

	"github.com/rgonzalez/regexfa/internal/automaton"
	"github.com/rgonzalez/regexfa/internal/dfa"
	"github.com/rgonzalez/regexfa/internal/nfa"
	"github.com/rgonzalez/regexfa/internal/shuntingyard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMinDFA(t *testing.T, regex string) *dfa.DFA {
	t.Helper()
	postfix, err := shuntingyard.ToPostfix(regex)
	require.NoError(t, err)
	n, err := nfa.Build(postfix)
	require.NoError(t, err)
	n.Normalize()
	d := dfa.FromNFA(n)
	return Run(d)
}

func nonTrapCount(d *dfa.DFA) int {
	count := 0
	for s := range d.States {
		if !d.IsTrap(s) {
			count++
		}
	}
	return count
}

// TestScenario3_aStar: "a*" minimal DFA has exactly one accepting state
// with a self-loop on 'a'.
func TestScenario3_aStar(t *testing.T) {
	d := buildMinDFA(t, "a*")

	acceptingCount := 0
	var accepting automaton.Handle
	for s := range d.Final {
		acceptingCount++
		accepting = s
	}
	require.Equal(t, 1, acceptingCount)
	assert.Equal(t, accepting, d.Transitions[accepting]['a'])
}

// TestScenario4_aPlus: "a+" minimal DFA has two states: a non-accepting
// initial state that transitions to an accepting state on 'a', and the
// accepting state self-loops on 'a'.
func TestScenario4_aPlus(t *testing.T) {
	d := buildMinDFA(t, "a+")

	assert.Equal(t, 2, nonTrapCount(d))
	assert.False(t, d.Final.Has(d.Start))

	next := d.Transitions[d.Start]['a']
	assert.True(t, d.Final.Has(next))
	assert.Equal(t, next, d.Transitions[next]['a'])
}

// TestMinimizeIdempotent is testable property 5.
func TestMinimizeIdempotent(t *testing.T) {
	d := buildMinDFA(t, "(a|b)*c")
	twice := Run(d)
	assert.Equal(t, len(d.States), len(twice.States))
	assert.Equal(t, len(d.Final), len(twice.Final))
}

func TestMinimizeNeverRemovesDistinguishableStates(t *testing.T) {
	d := buildMinDFA(t, "ab")
	assert.Equal(t, 3, nonTrapCount(d))
}
