package regexlib

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Surface syntax, loosest binding first:
//
//	disjunction    a|b
//	conjunction    a&b
//	concatenation  ab
//	complement     !a            (prefix)
//	closures       a*  a+  a?    (postfix)
//	atoms          char  .  #  (...)  [...]  [^...]  escapes
//
// # is the empty-string literal. Escapes \n \t \r \f \v, the perl classes
// \d \w \s with their negations, and identity escapes for metacharacters
// are recognised. A negated bracket class [^...] denotes exactly one rune
// outside the set.

var surfaceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Escape", Pattern: `\\.`},
		{Name: "OpenClass", Pattern: `\[`, Action: lexer.Push("Class")},
		{Name: "Meta", Pattern: `[|&!*+?().#]`},
		{Name: "Char", Pattern: `[^\\|&!*+?().#\[\]]`},
	},
	"Class": {
		{Name: "ClassEscape", Pattern: `\\.`},
		{Name: "CloseClass", Pattern: `\]`, Action: lexer.Pop()},
		{Name: "Caret", Pattern: `\^`},
		{Name: "Dash", Pattern: `-`},
		{Name: "ClassChar", Pattern: `[^\\\]\^-]`},
	},
})

type patAlternation struct {
	Terms []*patConjunction `parser:"@@ ('|' @@)*"`
}

type patConjunction struct {
	Terms []*patConcatenation `parser:"@@ ('&' @@)*"`
}

type patConcatenation struct {
	Factors []*patFactor `parser:"@@+"`
}

type patFactor struct {
	Not  []string `parser:"@'!'*"`
	Atom *patAtom `parser:"@@"`
	Ops  []string `parser:"@('*' | '+' | '?')*"`
}

type patAtom struct {
	Any     bool            `parser:"@'.'"`
	Epsilon bool            `parser:"| @'#'"`
	Group   *patAlternation `parser:"| '(' @@ ')'"`
	Class   *patClass       `parser:"| @@"`
	Escape  string          `parser:"| @Escape"`
	Char    string          `parser:"| @Char"`
}

type patClass struct {
	Negated bool            `parser:"OpenClass @Caret?"`
	Items   []*patClassItem `parser:"@@+ CloseClass"`
}

type patClassItem struct {
	Lo string  `parser:"@(ClassChar | ClassEscape | Caret | Dash)"`
	Hi *string `parser:"('-' @(ClassChar | ClassEscape | Caret))?"`
}

var surfaceParser = participle.MustBuild[patAlternation](
	participle.Lexer(surfaceLexer),
	participle.UseLookahead(2),
)

// Parse builds an expression tree from pattern. The tree is un-normalised;
// pass it through Normalised before derivation or compilation. On failure
// no partial expression is returned.
func Parse(pattern string) (*Exp, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}
	ast, err := surfaceParser.ParseString("", pattern)
	if err != nil {
		return nil, err
	}
	return ast.exp()
}

// MustParse is Parse for patterns known good at compile time.
func MustParse(pattern string) *Exp {
	exp, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return exp
}

/* ------------------------- tree construction --------------------------- */

func (a *patAlternation) exp() (*Exp, error) {
	subs, err := termList(len(a.Terms), func(i int) (*Exp, error) { return a.Terms[i].exp() })
	if err != nil {
		return nil, err
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return Disjunction(subs...), nil
}

func (c *patConjunction) exp() (*Exp, error) {
	subs, err := termList(len(c.Terms), func(i int) (*Exp, error) { return c.Terms[i].exp() })
	if err != nil {
		return nil, err
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return Conjunction(subs...), nil
}

func (c *patConcatenation) exp() (*Exp, error) {
	subs, err := termList(len(c.Factors), func(i int) (*Exp, error) { return c.Factors[i].exp() })
	if err != nil {
		return nil, err
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return Concatenation(subs...), nil
}

func termList(n int, exp func(int) (*Exp, error)) ([]*Exp, error) {
	subs := make([]*Exp, n)
	for i := range subs {
		var err error
		if subs[i], err = exp(i); err != nil {
			return nil, err
		}
	}
	return subs, nil
}

func (f *patFactor) exp() (*Exp, error) {
	x, err := f.Atom.exp()
	if err != nil {
		return nil, err
	}
	for _, op := range f.Ops {
		switch op {
		case "*":
			x = KleeneClosure(x)
		case "+":
			x = Concatenation(x, KleeneClosure(x))
		case "?":
			x = Disjunction(x, EmptyString())
		}
	}
	for range f.Not {
		x = Complement(x)
	}
	return x, nil
}

func (a *patAtom) exp() (*Exp, error) {
	switch {
	case a.Any:
		return AnyCharacter(), nil
	case a.Epsilon:
		return EmptyString(), nil
	case a.Group != nil:
		return a.Group.exp()
	case a.Class != nil:
		return a.Class.exp()
	case a.Escape != "":
		return escapeExp(a.Escape), nil
	}
	return Character(firstRune(a.Char)), nil
}

func (c *patClass) exp() (*Exp, error) {
	var rs []rune
	for _, item := range c.Items {
		expanded, err := item.runes()
		if err != nil {
			return nil, err
		}
		rs = append(rs, expanded...)
	}
	class := CharacterClass(rs...)
	if c.Negated {
		// one rune not in the set
		return Conjunction(AnyCharacter(), Complement(class)), nil
	}
	return class, nil
}

func (it *patClassItem) runes() ([]rune, error) {
	lo, err := classAtom(it.Lo, it.Hi != nil)
	if err != nil {
		return nil, err
	}
	if it.Hi == nil {
		return lo, nil
	}
	hi, err := classAtom(*it.Hi, true)
	if err != nil {
		return nil, err
	}
	if lo[0] > hi[0] {
		return nil, fmt.Errorf("invalid range %s-%s", it.Lo, *it.Hi)
	}
	return runeRange(lo[0], hi[0]), nil
}

// classAtom resolves one bracket-class token to its rune expansion.
// Multi-rune escapes like \d are not valid as range endpoints.
func classAtom(tok string, endpoint bool) ([]rune, error) {
	rs := []rune(tok)
	if rs[0] != '\\' {
		return rs[:1], nil
	}
	switch rs[1] {
	case 'n':
		return []rune{'\n'}, nil
	case 't':
		return []rune{'\t'}, nil
	case 'r':
		return []rune{'\r'}, nil
	case 'f':
		return []rune{'\f'}, nil
	case 'v':
		return []rune{'\v'}, nil
	case 'd', 'w', 's':
		if endpoint {
			return nil, fmt.Errorf("\\%c is not valid in a range", rs[1])
		}
		return perlClass(rs[1]), nil
	}
	return rs[1:2], nil
}

func escapeExp(tok string) *Exp {
	r := []rune(tok)[1]
	switch r {
	case 'n':
		return Character('\n')
	case 't':
		return Character('\t')
	case 'r':
		return Character('\r')
	case 'f':
		return Character('\f')
	case 'v':
		return Character('\v')
	case 'd', 'w', 's':
		return CharacterClass(perlClass(r)...)
	case 'D', 'W', 'S':
		return Conjunction(AnyCharacter(), Complement(CharacterClass(perlClass(r+'d'-'D')...)))
	}
	return Character(r)
}

func perlClass(r rune) []rune {
	switch r {
	case 'd':
		return runeRange('0', '9')
	case 'w':
		rs := runeRange('0', '9')
		rs = append(rs, runeRange('A', 'Z')...)
		rs = append(rs, '_')
		return append(rs, runeRange('a', 'z')...)
	case 's':
		return []rune{'\t', '\n', '\v', '\f', '\r', ' '}
	}
	panic("regexlib: unknown perl class")
}

func runeRange(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

func firstRune(s string) rune { return []rune(s)[0] }
