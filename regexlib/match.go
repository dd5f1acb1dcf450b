package regexlib

import "unicode/utf8"

// Match reports whether s, decoded as Unicode scalar values, is in the
// language of x. It drives the expression by iterated derivation, one rune
// at a time. Byte sequences that do not decode as valid UTF-8 never match.
func (x *Exp) Match(s string) bool {
	x = x.Normalised()
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		x = x.Derivative(r)
		if x.kind == KindEmptySet {
			// ∅ is a fixed point of derivation, no point going on
			return false
		}
		i += size
	}
	return x.IsNullable()
}
