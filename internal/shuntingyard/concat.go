package shuntingyard

import "github.com/rgonzalez/regexfa/internal/alphabet"

// insertConcat produces a string containing an explicit Concat byte
// between every pair of adjacent tokens (x, y) where x is a close
// paren, a unary quantifier, or an alphabet character, and y is an open
// paren or an alphabet character. No other rewrite happens.
//
// Grounded on original_source/regex_to_postfix.py's add_concat_symbol
// (duplicated verbatim as Nfa.add_concat_symbol in nfa.py) and on
// DanielRasho-CT-Project-1's TestFormatRegex family, which pins the
// expected output shape (e.g. "c(aa|b)*|bw" -> "c.(a.a|b)*|b.w").
func insertConcat(regex string) string {
	out := make([]byte, 0, len(regex)*2)
	for i := 0; i < len(regex); i++ {
		c := regex[i]
		if len(out) > 0 {
			prev := out[len(out)-1]
			prevQualifies := prev == alphabet.CloseParen || alphabet.IsUnary(prev) || alphabet.IsAlphabet(prev)
			currQualifies := c == alphabet.OpenParen || alphabet.IsAlphabet(c)
			if prevQualifies && currQualifies {
				out = append(out, alphabet.Concat)
			}
		}
		out = append(out, c)
	}
	return string(out)
}
