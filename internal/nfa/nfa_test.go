package nfa

import (
	"strconv"
	"testing"

	"github.com/rgonzalez/regexfa/internal/shuntingyard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFromRegex(t *testing.T, regex string) *NFA {
	t.Helper()
	postfix, err := shuntingyard.ToPostfix(regex)
	require.NoError(t, err)
	n, err := Build(postfix)
	require.NoError(t, err)
	return n
}

// TestSingleFinalStateAfterKleene is testable property 2: the builder
// maintains a single final state at every composition step that uses a
// Kleene operator.
func TestSingleFinalStateAfterKleene(t *testing.T) {
	for _, regex := range []string{"a*", "a+", "a?", "(a|b)*c", "a*b+c?"} {
		n := buildFromRegex(t, regex)
		assert.Len(t, n.Final, 1, "regex %q", regex)
	}
}

// TestEpsilonClosureIdempotent is testable property 3: closing over an
// already-closed set changes nothing.
func TestEpsilonClosureIdempotent(t *testing.T) {
	n := buildFromRegex(t, "(a|b)*c")
	first := EpsilonClosure(n, n.Start)
	second := ClosureOfSet(n, first)
	assert.Equal(t, first, second)
}

func TestBuildScenario1_ab(t *testing.T) {
	n := buildFromRegex(t, "ab")
	n.Normalize()
	assert.Equal(t, 3, len(n.States), "ab should have three states")
	assert.Len(t, n.Final, 1)
}

func TestBuildScenario2_union(t *testing.T) {
	n := buildFromRegex(t, "a|b")
	assert.Equal(t, map[byte]bool{'a': true, 'b': true, 0: true}, n.Alphabet)
}

func TestBuildMalformed(t *testing.T) {
	_, err := Build("a*+")
	require.NoError(t, err) // '+' applied to the single '*' result is legal

	_, err = Build("*")
	require.Error(t, err)

	_, err = Build("ab.c..")
	require.Error(t, err)
}

func TestNormalizeAssignsSequentialLabels(t *testing.T) {
	n := buildFromRegex(t, "(a|b)*c")
	n.Normalize()

	seen := map[string]bool{}
	for h := range n.States {
		seen[n.DisplayName(h)] = true
	}
	for i := 1; i <= len(n.States); i++ {
		assert.True(t, seen["Q"+strconv.Itoa(i)], "missing canonical label Q%d", i)
	}
}
