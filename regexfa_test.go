package regexfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFacadeEndToEnd exercises the full public pipeline the way an
// external caller would, without reaching into internal/*.
func TestFacadeEndToEnd(t *testing.T) {
	postfix, err := RegexToPostfix("(a|b)*c")
	require.NoError(t, err)
	assert.NotEmpty(t, postfix)

	n, err := RegexToNFA("(a|b)*c")
	require.NoError(t, err)
	n.Normalize()

	d := NFAToDFA(n)
	m := MinimizeDFA(d)

	for _, s := range []string{"c", "ac", "abbac"} {
		assert.True(t, SimulateNFA(n, s))
		assert.True(t, SimulateDFA(m, s))
	}
	for _, s := range []string{"", "ab", "cc"} {
		assert.False(t, SimulateNFA(n, s))
		assert.False(t, SimulateDFA(m, s))
	}
}

func TestFacadeRejectsReservedCharacter(t *testing.T) {
	_, err := RegexToPostfix("a$b")
	assert.Error(t, err)
}
