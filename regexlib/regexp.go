package regexlib

// Regexp bundles a parsed pattern with its normalised expression and
// compiled DFA. It is immutable and safe for concurrent use.
type Regexp struct {
	pattern string
	exp     *Exp
	dfa     *DFA
}

// Compile parses pattern and compiles it to a DFA. Matching is full-match:
// the pattern must cover the whole input. Wrap with .* for substring
// semantics.
func Compile(pattern string) (*Regexp, error) {
	exp, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	norm := exp.Normalised()
	return &Regexp{
		pattern: pattern,
		exp:     norm,
		dfa:     norm.Compile(),
	}, nil
}

func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

func (re *Regexp) String() string { return re.pattern }

// Exp returns the normalised expression of the pattern.
func (re *Regexp) Exp() *Exp { return re.exp }

// DFA returns the compiled transition table.
func (re *Regexp) DFA() *DFA { return re.dfa }

func (re *Regexp) NumStates() int { return re.dfa.NumStates() }

// MatchString reports whether s as a whole is in the pattern's language.
func (re *Regexp) MatchString(s string) bool { return re.dfa.Match(s) }
