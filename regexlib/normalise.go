package regexlib

import "sort"

// Normalised returns an expression denoting the same language as x in
// canonical form: Concatenations are right-associated with no unit factors,
// Conjunctions and Disjunctions are flattened, sorted and duplicate-free,
// and the algebraic identities of the regular-language boolean lattice are
// applied. Normalisation is idempotent, and every structurally equal pair
// of inputs maps to a structurally equal result, which is what keeps the
// set of dissimilar derivatives finite.
func (x *Exp) Normalised() *Exp {
	if x.norm {
		return x
	}
	switch x.kind {
	case KindEmptySet:
		return normEmptySet
	case KindEmptyString:
		return normEmptyString
	case KindAnyCharacter:
		return normAnyChar
	case KindCharacter:
		return &Exp{kind: KindCharacter, ch: x.ch, norm: true}
	case KindCharacterClass:
		// builders keep the payload sorted; collapse by cardinality
		switch len(x.class) {
		case 0:
			return normEmptySet
		case 1:
			return &Exp{kind: KindCharacter, ch: x.class[0], norm: true}
		}
		return &Exp{kind: KindCharacterClass, class: x.class, norm: true}
	case KindKleeneClosure:
		return normKleene(x.subs[0].Normalised())
	case KindConcatenation:
		return normConcat(x)
	case KindComplement:
		return normComplement(x.subs[0].Normalised())
	case KindConjunction, KindDisjunction:
		return normLattice(x.kind, x)
	}
	panic("regexlib: Normalised called on " + x.kind.String())
}

func normKleene(sub *Exp) *Exp {
	switch {
	case sub.kind == KindEmptySet, sub.kind == KindEmptyString:
		// ∅* = ε* = ε
		return normEmptyString
	case sub.kind == KindKleeneClosure:
		// (y*)* = y*
		return sub
	case sub.kind == KindComplement && sub.subs[0].kind == KindEmptySet:
		// (Σ*)* = Σ*
		return sub
	}
	return &Exp{kind: KindKleeneClosure, subs: []*Exp{sub}, norm: true}
}

func normComplement(sub *Exp) *Exp {
	if sub.kind == KindComplement {
		// ¬¬y = y, sub is already normalised
		return sub.subs[0]
	}
	return &Exp{kind: KindComplement, subs: []*Exp{sub}, norm: true}
}

func normConcat(x *Exp) *Exp {
	var factors []*Exp
	var add func(e *Exp)
	add = func(e *Exp) {
		if e.kind == KindConcatenation {
			for _, sub := range e.subs {
				add(sub)
			}
			return
		}
		e = e.Normalised()
		if e.kind == KindConcatenation {
			// a child collapsed into a concatenation, splice its spine in
			add(e)
			return
		}
		factors = append(factors, e)
	}
	add(x)

	n := 0
	for _, f := range factors {
		if f.kind == KindEmptySet {
			// ∅ annihilates the whole product
			return normEmptySet
		}
		if f.kind == KindEmptyString {
			continue
		}
		factors[n] = f
		n++
	}
	factors = factors[:n]

	switch len(factors) {
	case 0:
		return normEmptyString
	case 1:
		return factors[0]
	}
	// rebuild the right-associated spine
	out := factors[len(factors)-1]
	for i := len(factors) - 2; i >= 0; i-- {
		out = &Exp{kind: KindConcatenation, subs: []*Exp{factors[i], out}, norm: true}
	}
	return out
}

// normLattice normalises a Conjunction or Disjunction. The two share every
// shape rule and dualise the identity and annihilator elements: EmptySet
// annihilates ∧ and is the unit of ∨, Σ* annihilates ∨ and is the unit
// of ∧, and a child meeting its own complement collapses to the
// annihilator.
func normLattice(kind Kind, x *Exp) *Exp {
	annihilator, unit := normEmptySet, normSigmaStar
	if kind == KindDisjunction {
		annihilator, unit = normSigmaStar, normEmptySet
	}

	var children []*Exp
	var add func(e *Exp)
	add = func(e *Exp) {
		if e.kind == kind {
			for _, sub := range e.subs {
				add(sub)
			}
			return
		}
		e = e.Normalised()
		if e.kind == kind {
			add(e)
			return
		}
		children = append(children, e)
	}
	add(x)

	n := 0
	for _, c := range children {
		if Equal(c, annihilator) {
			return annihilator
		}
		if Equal(c, unit) {
			continue
		}
		children[n] = c
		n++
	}
	children = children[:n]

	sort.Slice(children, func(i, j int) bool { return Compare(children[i], children[j]) < 0 })
	n = 0
	for i, c := range children {
		if i > 0 && Equal(c, children[n-1]) {
			continue // idempotence
		}
		children[n] = c
		n++
	}
	children = children[:n]

	// x op ¬x collapses to the annihilator
	for _, c := range children {
		if c.kind != KindComplement {
			continue
		}
		if containsExp(children, c.subs[0]) {
			return annihilator
		}
	}

	switch len(children) {
	case 0:
		return unit
	case 1:
		return children[0]
	}
	return &Exp{kind: kind, subs: children, norm: true}
}

// containsExp binary-searches a Compare-sorted slice.
func containsExp(xs []*Exp, e *Exp) bool {
	i := sort.Search(len(xs), func(i int) bool { return Compare(xs[i], e) >= 0 })
	return i < len(xs) && Equal(xs[i], e)
}
