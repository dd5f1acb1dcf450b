package regexlib

import (
	"strings"
	"testing"
)

// ------------------------------------------------------------------- scenarios

// a·b*: two live states.
func TestCompileLiteralConcat(t *testing.T) {
	e := Concatenation(Character('a'), KleeneClosure(Character('b')))
	d := e.Compile()
	if n := d.NumStates(); n != 2 {
		t.Fatalf("got %d states, want 2", n)
	}
	for in, want := range map[string]bool{"a": true, "abbb": true, "": false, "b": false, "ba": false} {
		if got := d.Match(in); got != want {
			t.Fatalf("Match(%q) = %v, want %v", in, got, want)
		}
	}
}

// Σ*: one accepting state with a default self-loop.
func TestCompileSigmaStar(t *testing.T) {
	d := Complement(EmptySet()).Compile()
	if n := d.NumStates(); n != 1 {
		t.Fatalf("got %d states, want 1", n)
	}
	if !d.Accepting[0] {
		t.Fatal("start state not accepting")
	}
	if to, ok := d.Transition[TransitionKey{0, InvalidRune}]; !ok || to != 0 {
		t.Fatalf("default transition %v, want self-loop", to)
	}
	for _, in := range []string{"", "a", "anything at all", "日本"} {
		if !d.Match(in) {
			t.Fatalf("Σ* rejected %q", in)
		}
	}
}

// Σ* ∧ ¬(Σ·x·Σ*): accepts strings without an x in the second position.
func TestCompileConjunctionComplement(t *testing.T) {
	e := Conjunction(
		KleeneClosure(AnyCharacter()),
		Complement(Concatenation(AnyCharacter(), Concatenation(Character('x'), KleeneClosure(AnyCharacter())))),
	)
	d := e.Compile()
	for in, want := range map[string]bool{"abc": true, "axc": false, "": true} {
		if got := d.Match(in); got != want {
			t.Fatalf("Match(%q) = %v, want %v", in, got, want)
		}
	}
}

// (a|b)*: a single state looping on a and b.
func TestCompileAlternationStar(t *testing.T) {
	e := KleeneClosure(Disjunction(Character('a'), Character('b')))
	d := e.Compile()
	if n := d.NumStates(); n != 1 {
		t.Fatalf("got %d states, want 1", n)
	}
	if !d.Match("abba") {
		t.Fatal("rejected abba")
	}
	if d.Match("abca") {
		t.Fatal("accepted abca")
	}
}

// ------------------------------------------------------------------- properties

// ∀e, s: the compiled table and direct derivation agree.
func TestDFAEquivalence(t *testing.T) {
	for _, e := range testCorpus() {
		d := e.Compile()
		for _, s := range testWords {
			if got, want := d.Match(s), e.Match(s); got != want {
				t.Fatalf("%v on %q: DFA says %v, derivation says %v", e, s, got, want)
			}
		}
	}
}

// Every live state carries a default transition.
func TestDefaultTransitionsPresent(t *testing.T) {
	for _, e := range testCorpus() {
		d := e.Compile()
		for s := range d.Accepting {
			if _, ok := d.Transition[TransitionKey{s, InvalidRune}]; !ok {
				t.Fatalf("%v: state %d has no default transition", e, s)
			}
		}
	}
}

func TestMatchRejectsInvalidUTF8(t *testing.T) {
	e := KleeneClosure(AnyCharacter())
	if e.Match("\xff") {
		t.Fatal("direct matcher accepted invalid UTF-8")
	}
	if e.Compile().Match("a\xc3") {
		t.Fatal("DFA matcher accepted a truncated sequence")
	}
}

// all words of length ≤ 3 over the given alphabet
func wordsUpTo3(alphabet []string) []string {
	words := []string{""}
	layer := []string{""}
	for i := 0; i < 3; i++ {
		var next []string
		for _, w := range layer {
			for _, c := range alphabet {
				next = append(next, w+c)
			}
		}
		words = append(words, next...)
		layer = next
	}
	return words
}

func TestDFAEquivalenceExhaustive(t *testing.T) {
	patterns := []string{"(ab|a)*c", "a|bc*", "!(a*)", "a*b&.*", "[ab][ab]?"}
	words := wordsUpTo3([]string{"a", "b", "c"})
	for _, pat := range patterns {
		e := MustParse(pat)
		d := e.Compile()
		for _, s := range words {
			if got, want := d.Match(s), e.Match(s); got != want {
				t.Fatalf("%s on %q: DFA says %v, derivation says %v", pat, s, got, want)
			}
		}
	}
}

// ------------------------------------------------------------------- export

func TestExportDOT(t *testing.T) {
	var b strings.Builder
	ExportDOT(&b, Complement(EmptySet()).Compile())
	out := b.String()
	for _, want := range []string{"digraph G {", "doublecircle", "Σ", "_start -> q0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("DOT output missing %q:\n%s", want, out)
		}
	}
}
