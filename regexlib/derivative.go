package regexlib

// Nullability reports whether x matches the empty string, encoded as an
// expression: EmptyString when ε ∈ L(x), EmptySet otherwise.
func (x *Exp) Nullability() *Exp {
	switch x.kind {
	case KindEmptySet, KindAnyCharacter, KindCharacter, KindCharacterClass:
		return normEmptySet
	case KindEmptyString, KindKleeneClosure:
		return normEmptyString
	case KindConcatenation:
		// every factor must be nullable
		return Conjunction(x.subs[0].Nullability(), x.subs[1].Nullability()).Normalised()
	case KindComplement:
		if x.subs[0].Nullability().kind == KindEmptyString {
			return normEmptySet
		}
		return normEmptyString
	case KindConjunction, KindDisjunction:
		subs := make([]*Exp, len(x.subs))
		for i, sub := range x.subs {
			subs[i] = sub.Nullability()
		}
		return (&Exp{kind: x.kind, subs: subs}).Normalised()
	}
	panic("regexlib: Nullability called on " + x.kind.String())
}

// IsNullable is Nullability reduced to a bool.
func (x *Exp) IsNullable() bool { return x.Nullability().kind == KindEmptyString }

// Derivative returns the Brzozowski derivative of x with respect to r:
// the expression for { w : r·w ∈ L(x) }. The result is normalised, so
// structurally identical derivatives collapse to the same representative.
func (x *Exp) Derivative(r rune) *Exp {
	return x.derivative(r).Normalised()
}

func (x *Exp) derivative(r rune) *Exp {
	switch x.kind {
	case KindEmptySet, KindEmptyString:
		return normEmptySet
	case KindAnyCharacter:
		return normEmptyString
	case KindCharacter:
		if x.ch == r {
			return normEmptyString
		}
		return normEmptySet
	case KindCharacterClass:
		if x.class.Contains(r) {
			return normEmptyString
		}
		return normEmptySet
	case KindKleeneClosure:
		// ∂(y*) = ∂y · y*
		return Concatenation(x.subs[0].derivative(r), KleeneClosure(x.subs[0]))
	case KindConcatenation:
		// ∂(h·t) = ∂h·t | ν(h)·∂t
		head, tail := x.subs[0], x.subs[1]
		return Disjunction(
			Concatenation(head.derivative(r), tail),
			Concatenation(head.Nullability(), tail.derivative(r)),
		)
	case KindComplement:
		return Complement(x.subs[0].derivative(r))
	case KindConjunction, KindDisjunction:
		subs := make([]*Exp, len(x.subs))
		for i, sub := range x.subs {
			subs[i] = sub.derivative(r)
		}
		return &Exp{kind: x.kind, subs: subs}
	}
	panic("regexlib: Derivative called on " + x.kind.String())
}
