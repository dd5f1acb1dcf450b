package regexlib

import "testing"

func TestParseMatch(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    bool
	}{
		// precedence
		{"a|bc*", "a", true},
		{"a|bc*", "bc", true},
		{"a|bc*", "bccc", true},
		{"a|bc*", "ab", false},
		{"ab|cd", "ab", true},
		{"ab|cd", "ad", false},

		// closures
		{"(ab)*", "", true},
		{"(ab)*", "abab", true},
		{"(ab)*", "aba", false},
		{"a+", "", false},
		{"a+", "aaa", true},
		{"a?b", "b", true},
		{"a?b", "ab", true},
		{"a?b", "aab", false},

		// atoms
		{".", "a", true},
		{".", "", false},
		{".", "ab", false},
		{"#", "", true},
		{"#", "a", false},
		{"#|a", "", true},

		// boolean operators
		{"a&.", "a", true},
		{"a&b", "a", false},
		{"!(.*x.*)", "abc", true},
		{"!(.*x.*)", "axc", false},
		{"!(.*x.*)", "", true},
		{"[ab]*&a+", "aaa", true},
		{"[ab]*&a+", "b", false},
		{"!([ab]*)", "ccc", true},
		{"!([ab]*)", "aba", false},
		{"!!a", "a", true},

		// classes
		{"[a-c]+", "abcabc", true},
		{"[a-c]+", "d", false},
		{"[abc]", "b", true},
		{"[^ab]", "c", true},
		{"[^ab]", "a", false},
		{"[^ab]", "", false},
		{"[^ab]", "cc", false},
		{"[a-]", "-", true},
		{"[a-]", "a", true},

		// escapes
		{`\*`, "*", true},
		{`\*`, "a", false},
		{`a\|b`, "a|b", true},
		{`\n`, "\n", true},
		{`\d+`, "123", true},
		{`\d+`, "12a", false},
		{`\w\s\w`, "a b", true},
		{`\w\s\w`, "ab", false},
		{`\D`, "a", true},
		{`\D`, "5", false},
		{`[\d]`, "7", true},
		{`[\da]`, "a", true},
		{`[\n-]`, "\n", true},

		// unicode
		{"日*", "日日", true},
		{"日*", "本", false},
		{"[あ-ん]", "か", true},
	}
	for _, c := range cases {
		exp, err := Parse(c.pattern)
		if err != nil {
			t.Fatalf("parse %q: %v", c.pattern, err)
		}
		if got := exp.Match(c.input); got != c.want {
			t.Fatalf("%q on %q: got %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, pattern := range []string{
		"", "(", ")", "a)", "(a", "a|", "|a", "a&", "*", "a**b)", "[", "[a", "[]", "[z-a]",
	} {
		exp, err := Parse(pattern)
		if err == nil {
			t.Fatalf("parse %q: expected error, got %v", pattern, exp)
		}
		if exp != nil {
			t.Fatalf("parse %q: partial expression %v returned with error", pattern, exp)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	mustPanic(t, "MustParse(invalid)", func() { MustParse("(") })
}

// The printer writes surface syntax the parser accepts, with the language
// intact.
func TestStringRoundTrip(t *testing.T) {
	patterns := []string{"a|bc*", "(ab)*", "[a-c]+", "!(.*x.*)", "a&.", `\*a`, "[^ab]c"}
	words := wordsUpTo3([]string{"a", "b", "c", "x", "*"})
	for _, pat := range patterns {
		orig := MustParse(pat).Normalised()
		back, err := Parse(orig.String())
		if err != nil {
			t.Fatalf("%s: reparse of %q failed: %v", pat, orig.String(), err)
		}
		for _, s := range words {
			if got, want := back.Match(s), orig.Match(s); got != want {
				t.Fatalf("%s -> %q: disagree on %q", pat, orig.String(), s)
			}
		}
	}
}
