package dfa

import (
	"testing"

	"github.com/rgonzalez/regexfa/internal/nfa"
	"github.com/rgonzalez/regexfa/internal/shuntingyard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDFA(t *testing.T, regex string) *DFA {
	t.Helper()
	postfix, err := shuntingyard.ToPostfix(regex)
	require.NoError(t, err)
	n, err := nfa.Build(postfix)
	require.NoError(t, err)
	n.Normalize()
	return FromNFA(n)
}

// TestDFATotalAndTrapAbsorbing is testable property 4.
func TestDFATotalAndTrapAbsorbing(t *testing.T) {
	d := buildDFA(t, "(a|b)*c")
	for state := range d.States {
		for symbol := range d.Alphabet {
			_, ok := d.Transitions[state][symbol]
			assert.True(t, ok, "missing transition for state/symbol")
		}
	}
	if d.HasTrap {
		assert.False(t, d.Final.Has(d.Trap))
		for symbol := range d.Alphabet {
			assert.Equal(t, d.Trap, d.Transitions[d.Trap][symbol])
		}
	}
}

// TestScenario1ThreeReachableStates: scenario 1 ("ab") must have three
// non-trap reachable states.
func TestScenario1ThreeReachableStates(t *testing.T) {
	d := buildDFA(t, "ab")
	nonTrap := 0
	for state := range d.States {
		if !d.IsTrap(state) {
			nonTrap++
		}
	}
	assert.Equal(t, 3, nonTrap)
}
