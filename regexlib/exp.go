// Package regexlib implements regular expressions over Unicode code points
// using Brzozowski derivatives. The algebra carries the full boolean
// operations (complement, conjunction, disjunction) in addition to the
// classical union, concatenation and Kleene star. Expressions are immutable
// and structurally shared; matching works either by iterated derivation or
// through a compiled DFA whose states are normalised derivatives.
package regexlib

type Kind int

const (
	KindEmptySet Kind = iota // matches nothing
	KindEmptyString          // matches only ε
	KindAnyCharacter         // any single rune
	KindCharacter            // exactly one rune
	KindCharacterClass       // any rune of a finite set
	KindKleeneClosure
	KindConcatenation
	KindComplement
	KindConjunction
	KindDisjunction
)

// Exp is a node of an expression tree. Nodes are immutable after
// construction and shared by reference, so a fully built expression may be
// read from any number of goroutines without synchronisation.
type Exp struct {
	kind  Kind
	ch    rune    // KindCharacter
	class RuneSet // KindCharacterClass, sorted and duplicate-free once normalised
	subs  []*Exp  // compound kinds
	norm  bool    // produced by Normalised
}

// Normalised constants. The norm flag never participates in Compare, so
// handing these out in place of freshly built twins is invisible to callers.
var (
	normEmptySet    = &Exp{kind: KindEmptySet, norm: true}
	normEmptyString = &Exp{kind: KindEmptyString, norm: true}
	normAnyChar     = &Exp{kind: KindAnyCharacter, norm: true}
	normSigmaStar   = &Exp{kind: KindComplement, subs: []*Exp{normEmptySet}, norm: true} // Σ*, the universal language
)

func (x *Exp) Kind() Kind { return x.kind }
func (x *Exp) Norm() bool { return x.norm }

// Character returns the rune of a KindCharacter node.
func (x *Exp) Character() rune {
	if x.kind != KindCharacter {
		panic("regexlib: Character called on " + x.kind.String())
	}
	return x.ch
}

// CharacterClass returns the rune set of a KindCharacterClass node.
func (x *Exp) CharacterClass() RuneSet {
	if x.kind != KindCharacterClass {
		panic("regexlib: CharacterClass called on " + x.kind.String())
	}
	return x.class
}

// Subs returns the subexpression list of a compound node.
func (x *Exp) Subs() []*Exp {
	switch x.kind {
	case KindKleeneClosure, KindConcatenation, KindComplement, KindConjunction, KindDisjunction:
		return x.subs
	}
	panic("regexlib: Subs called on " + x.kind.String())
}

// Sub returns the only subexpression of a KleeneClosure or Complement.
func (x *Exp) Sub() *Exp {
	if x.kind != KindKleeneClosure && x.kind != KindComplement {
		panic("regexlib: Sub called on " + x.kind.String())
	}
	return x.subs[0]
}

// Head and Tail address the binary spine of a Concatenation. Tail is
// typically another Concatenation; normalise before relying on the split.
func (x *Exp) Head() *Exp {
	if x.kind != KindConcatenation {
		panic("regexlib: Head called on " + x.kind.String())
	}
	return x.subs[0]
}

func (x *Exp) Tail() *Exp {
	if x.kind != KindConcatenation {
		panic("regexlib: Tail called on " + x.kind.String())
	}
	return x.subs[len(x.subs)-1]
}

/* ----------------------------- builders ------------------------------- */

// Builders construct fresh, un-normalised nodes. Pass the result through
// Normalised before using it as a derivative or DFA input.

func EmptySet() *Exp     { return &Exp{kind: KindEmptySet} }
func EmptyString() *Exp  { return &Exp{kind: KindEmptyString} }
func AnyCharacter() *Exp { return &Exp{kind: KindAnyCharacter} }

func Character(r rune) *Exp { return &Exp{kind: KindCharacter, ch: r} }

// CharacterClass builds a class from the given runes. The payload is kept
// sorted and duplicate-free so that Compare sees the set, not the argument
// order. Cardinality rules (empty → EmptySet, singleton → Character) are
// applied by the normaliser, not here.
func CharacterClass(rs ...rune) *Exp {
	return &Exp{kind: KindCharacterClass, class: newRuneSet(rs...)}
}

func KleeneClosure(x *Exp) *Exp {
	return &Exp{kind: KindKleeneClosure, subs: []*Exp{x}}
}

// Concatenation right-nests its arguments into a binary spine:
// Concatenation(a, b, c) is a·(b·c).
func Concatenation(xs ...*Exp) *Exp {
	if len(xs) < 2 {
		panic("regexlib: Concatenation needs at least two subexpressions")
	}
	x := xs[len(xs)-1]
	for i := len(xs) - 2; i >= 0; i-- {
		x = &Exp{kind: KindConcatenation, subs: []*Exp{xs[i], x}}
	}
	return x
}

func Complement(x *Exp) *Exp {
	return &Exp{kind: KindComplement, subs: []*Exp{x}}
}

func Conjunction(xs ...*Exp) *Exp {
	if len(xs) < 2 {
		panic("regexlib: Conjunction needs at least two subexpressions")
	}
	return &Exp{kind: KindConjunction, subs: xs}
}

func Disjunction(xs ...*Exp) *Exp {
	if len(xs) < 2 {
		panic("regexlib: Disjunction needs at least two subexpressions")
	}
	return &Exp{kind: KindDisjunction, subs: xs}
}

/* ---------------------------- total order ----------------------------- */

// Compare returns -1, 0 or +1 when x is less than, equal to or greater
// than y. The order is total and structural: kind first, then payload. The
// norm flag does not participate, so an expression and its normalised twin
// compare equal. Compare is the contract for using expressions as keys in
// ordered containers.
func Compare(x, y *Exp) int {
	if x == y {
		return 0
	}
	switch {
	case x.kind < y.kind:
		return -1
	case x.kind > y.kind:
		return 1
	}
	switch x.kind {
	case KindEmptySet, KindEmptyString, KindAnyCharacter:
		return 0
	case KindCharacter:
		return compareRunes(x.ch, y.ch)
	case KindCharacterClass:
		return x.class.Compare(y.class)
	}
	// compound kinds: lexicographic over subexpressions
	for i := 0; i < len(x.subs) && i < len(y.subs); i++ {
		if c := Compare(x.subs[i], y.subs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(x.subs) < len(y.subs):
		return -1
	case len(x.subs) > len(y.subs):
		return 1
	}
	return 0
}

// Equal reports structural equality, i.e. Compare(x, y) == 0.
func Equal(x, y *Exp) bool { return Compare(x, y) == 0 }

func compareRunes(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case KindEmptySet:
		return "EmptySet"
	case KindEmptyString:
		return "EmptyString"
	case KindAnyCharacter:
		return "AnyCharacter"
	case KindCharacter:
		return "Character"
	case KindCharacterClass:
		return "CharacterClass"
	case KindKleeneClosure:
		return "KleeneClosure"
	case KindConcatenation:
		return "Concatenation"
	case KindComplement:
		return "Complement"
	case KindConjunction:
		return "Conjunction"
	case KindDisjunction:
		return "Disjunction"
	}
	return "Kind(?)"
}
