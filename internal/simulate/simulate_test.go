package simulate

import (
	"testing"

	"github.com/rgonzalez/regexfa/internal/dfa"
	"github.com/rgonzalez/regexfa/internal/minimize"
	"github.com/rgonzalez/regexfa/internal/nfa"
	"github.com/rgonzalez/regexfa/internal/shuntingyard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	regex  string
	accept []string
	reject []string
}

// Literal end-to-end scenarios from SPEC_FULL.md §8.
var scenarios = []scenario{
	{"ab", []string{"ab"}, []string{"a", "b", "ba", ""}},
	{"a|b", []string{"a", "b"}, []string{"", "ab", "c"}},
	{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
	{"a+", []string{"a", "aaa"}, []string{"", "b"}},
	{"(a|b)*c", []string{"c", "ac", "bbac", "abbac"}, []string{"ab", "", "cc"}},
	{"a?b", []string{"b", "ab"}, []string{"", "aab", "a"}},
}

// TestScenariosAcrossAutomata is testable property 6: for every
// scenario string, NFA, DFA, and minimal DFA agree on acceptance.
func TestScenariosAcrossAutomata(t *testing.T) {
	for _, sc := range scenarios {
		postfix, err := shuntingyard.ToPostfix(sc.regex)
		require.NoError(t, err)
		n, err := nfa.Build(postfix)
		require.NoError(t, err)
		n.Normalize()
		d := dfa.FromNFA(n)
		m := minimize.Run(d)

		for _, s := range sc.accept {
			assert.True(t, NFAAccepts(n, s), "NFA(%q) should accept %q", sc.regex, s)
			assert.True(t, DFAAccepts(d, s), "DFA(%q) should accept %q", sc.regex, s)
			assert.True(t, DFAAccepts(m, s), "minDFA(%q) should accept %q", sc.regex, s)
		}
		for _, s := range sc.reject {
			assert.False(t, NFAAccepts(n, s), "NFA(%q) should reject %q", sc.regex, s)
			assert.False(t, DFAAccepts(d, s), "DFA(%q) should reject %q", sc.regex, s)
			assert.False(t, DFAAccepts(m, s), "minDFA(%q) should reject %q", sc.regex, s)
		}
	}
}
