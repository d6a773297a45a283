package shuntingyard

import (
	"errors"
	"testing"

	"github.com/rgonzalez/regexfa/internal/automataerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertConcat(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"c(aa|b)*|bw", "c.(a.a|b)*|b.w"},
		{"(a|b?c+|d*e|fgh|i|j)", "(a|b?.c+|d*.e|f.g.h|i|j)"},
		{"0?(1?)?0*", "0?.(1?)?.0*"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, insertConcat(c.in))
	}
}

func TestToPostfixScenarios(t *testing.T) {
	// Literal end-to-end scenarios from SPEC_FULL.md §8.
	cases := []struct {
		regex, postfix string
	}{
		{"ab", "ab."},
		{"a|b", "ab|"},
		{"a*", "a*"},
		{"a+", "a+"},
		{"(a|b)*c", "ab|*c."},
		{"a?b", "a?b."},
	}
	for _, c := range cases {
		got, err := ToPostfix(c.regex)
		require.NoError(t, err)
		assert.Equal(t, c.postfix, got, "regex %q", c.regex)
	}
}

func TestToPostfixPreservesOperandOrder(t *testing.T) {
	// Testable property 1: postfix contains exactly the operand
	// characters in original left-to-right order.
	postfix, err := ToPostfix("(a|b?c+|d*e|fgh|i|j)")
	require.NoError(t, err)

	var operands []byte
	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		if c != '|' && c != '*' && c != '+' && c != '?' && c != '.' {
			operands = append(operands, c)
		}
	}
	assert.Equal(t, "abcdefghij", string(operands))
}

func TestToPostfixUnbalancedParens(t *testing.T) {
	_, err := ToPostfix("(a|b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, automataerrors.ErrMalformedRegex))

	_, err = ToPostfix("a|b)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, automataerrors.ErrMalformedRegex))
}

func TestToPostfixReservedCharacter(t *testing.T) {
	_, err := ToPostfix("a.b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, automataerrors.ErrReservedCharacter))

	_, err = ToPostfix("a$b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, automataerrors.ErrReservedCharacter))
}
