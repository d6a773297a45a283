// Package shuntingyard implements spec.md components B (regex
// preprocessor) and C (shunting-yard converter): infix regex with
// implicit concatenation made explicit, converted to postfix form.
//
// Grounded on original_source/regex_to_postfix.py (and its duplicate,
// Nfa.regex_to_postfix in nfa.py) and on DanielRasho-CT-Project-1's
// internal/shuntingyard package, whose test file
// (internal/shuntingyard/shuntinYard_test.go) is the only surviving
// trace of that package's exported surface: convertToSymbols,
// addConcatenationSymbol and a shuntingYard function operating over a
// []Symbol rather than a raw string. This implementation keeps that
// same three-stage shape (scan -> insert concat -> shunting yard) but
// operates directly on bytes, since the spec's alphabet is single
// printable characters with no character classes or escapes.
package shuntingyard

import (
	"github.com/rgonzalez/regexfa/internal/alphabet"
	"github.com/rgonzalez/regexfa/internal/automataerrors"
)

// ToPostfix converts an infix regex to postfix form. It fails with
// automataerrors.ErrReservedCharacter if the caller's regex contains a
// literal '.' or '$' (both reserved internally — '.' for concatenation,
// '$' for epsilon), and with automataerrors.ErrMalformedRegex on
// unbalanced parentheses.
func ToPostfix(regex string) (string, error) {
	for i := 0; i < len(regex); i++ {
		c := regex[i]
		if c == alphabet.Concat || c == alphabet.Epsilon {
			return "", automataerrors.Reserved(c, i)
		}
	}

	preprocessed := insertConcat(regex)

	// regexPos maps an index into preprocessed back to the index of the
	// same byte in regex by discounting the Concat bytes inserted before it.
	regexPos := func(i int) int {
		pos := i
		for j := 0; j < i; j++ {
			if preprocessed[j] == alphabet.Concat {
				pos--
			}
		}
		return pos
	}

	output := make([]byte, 0, len(preprocessed))
	var operators []byte

	popOperator := func() (byte, bool) {
		n := len(operators)
		if n == 0 {
			return 0, false
		}
		top := operators[n-1]
		operators = operators[:n-1]
		return top, true
	}
	peekOperator := func() (byte, bool) {
		if len(operators) == 0 {
			return 0, false
		}
		return operators[len(operators)-1], true
	}

	for i := 0; i < len(preprocessed); i++ {
		c := preprocessed[i]
		switch {
		case alphabet.IsAlphabet(c):
			output = append(output, c)
		case c == alphabet.OpenParen:
			operators = append(operators, c)
		case c == alphabet.CloseParen:
			top, ok := popOperator()
			if !ok {
				return "", automataerrors.Malformed(regex, regexPos(i), "unmatched closing parenthesis")
			}
			for top != alphabet.OpenParen {
				output = append(output, top)
				top, ok = popOperator()
				if !ok {
					return "", automataerrors.Malformed(regex, regexPos(i), "unmatched closing parenthesis")
				}
			}
		default:
			if !alphabet.IsOperator(c) {
				return "", automataerrors.Malformed(regex, regexPos(i), "unexpected character")
			}
			for {
				top, ok := peekOperator()
				if !ok || top == alphabet.OpenParen {
					break
				}
				if alphabet.Priorities[top] < alphabet.Priorities[c] {
					break
				}
				output = append(output, top)
				popOperator()
			}
			operators = append(operators, c)
		}
	}

	for len(operators) > 0 {
		top, _ := popOperator()
		if top == alphabet.OpenParen {
			return "", automataerrors.Malformed(regex, len(regex), "unmatched opening parenthesis")
		}
		output = append(output, top)
	}

	return string(output), nil
}
