package regexlib

import (
	"sort"
	"unicode/utf8"
)

// InvalidRune is not a valid Unicode scalar value. It is the reserved
// transition key for the default branch of a state: the transition taken by
// every rune the state does not name explicitly.
const InvalidRune rune = -1

// DeadState is the sink for the EmptySet derivative. No accepting state is
// reachable from it, so the matchers reject as soon as they enter it. It is
// not counted among the DFA's states.
const DeadState = -1

// TransitionKey addresses one cell of the transition table.
type TransitionKey struct {
	State int
	Input rune
}

// DFA is a compiled expression. State 0 is the start state. Every reachable
// state has exactly one default transition keyed by InvalidRune and zero or
// more explicit rune transitions.
type DFA struct {
	Transition map[TransitionKey]int
	Accepting  map[int]bool
}

func (d *DFA) NumStates() int { return len(d.Accepting) }

// step is the total transition function: the explicit cell if present,
// the default otherwise.
func (d *DFA) step(state int, r rune) int {
	if next, ok := d.Transition[TransitionKey{state, r}]; ok {
		return next
	}
	return d.Transition[TransitionKey{state, InvalidRune}]
}

// Match executes the table over s. Invalid UTF-8 never matches.
func (d *DFA) Match(s string) bool {
	state := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		state = d.step(state, r)
		if state == DeadState {
			return false
		}
		i += size
	}
	return d.Accepting[state]
}

/* ----------------------------- compilation ----------------------------- */

// expMap is an ordered map from expression to state id, per the Compare
// contract. Expressions are interned by structure, never by node identity.
type expMap struct {
	keys []*Exp
	ids  []int
}

func (m *expMap) lookup(e *Exp) (int, bool) {
	i := sort.Search(len(m.keys), func(i int) bool { return Compare(m.keys[i], e) >= 0 })
	if i < len(m.keys) && Equal(m.keys[i], e) {
		return m.ids[i], true
	}
	return 0, false
}

func (m *expMap) insert(e *Exp, id int) {
	i := sort.Search(len(m.keys), func(i int) bool { return Compare(m.keys[i], e) >= 0 })
	m.keys = append(m.keys, nil)
	m.ids = append(m.ids, 0)
	copy(m.keys[i+1:], m.keys[i:])
	copy(m.ids[i+1:], m.ids[i:])
	m.keys[i] = e
	m.ids[i] = id
}

// Compile builds the DFA whose states are the normalised derivatives of x
// reachable under derivation. Per Brzozowski's theorem the number of
// dissimilar derivatives is finite, so the worklist drains. The partitioner
// bounds the fan-out per state: one derivative per equivalence class rather
// than one per rune. The EmptySet derivative becomes DeadState rather than
// a state of its own.
func (x *Exp) Compile() *DFA {
	d := &DFA{
		Transition: map[TransitionKey]int{},
		Accepting:  map[int]bool{},
	}

	type workItem struct {
		id  int
		exp *Exp
	}

	start := x.Normalised()
	var states expMap
	states.insert(start, 0)
	next := 1
	queue := []workItem{{0, start}}

	intern := func(e *Exp) int {
		if e.kind == KindEmptySet {
			return DeadState
		}
		if id, ok := states.lookup(e); ok {
			return id
		}
		id := next
		next++
		states.insert(e, id)
		queue = append(queue, workItem{id, e})
		return id
	}

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		parts := q.exp.Partitions()
		// default class first: derivative wrt any rune outside the
		// explicit classes
		def := q.exp.Derivative(defaultRepresentative(parts[0]))
		d.Transition[TransitionKey{q.id, InvalidRune}] = intern(def)
		for _, class := range parts[1:] {
			// the smallest member stands for the whole class
			target := intern(q.exp.Derivative(class[0]))
			for _, r := range class {
				d.Transition[TransitionKey{q.id, r}] = target
			}
		}
		d.Accepting[q.id] = q.exp.IsNullable()
	}
	return d
}
