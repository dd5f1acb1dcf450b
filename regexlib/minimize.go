package regexlib

import "sort"

// Minimize returns the minimal equivalent of d by partition refinement,
// renumbered with state 0 as start. Derivative DFAs are already close to
// minimal because equivalent derivatives collapse during normalisation, but
// dissimilar expressions can still denote the same language; Minimize folds
// those.
//
// The refinement alphabet is the set of explicitly named runes plus
// InvalidRune. That is sufficient: on any rune a state does not name, its
// behaviour is its default behaviour, which is exactly the InvalidRune
// column under the step fallback.
func Minimize(d *DFA) *DFA {
	if d == nil || len(d.Accepting) == 0 {
		return d
	}

	alpha := []rune{InvalidRune}
	seen := map[rune]struct{}{}
	for key := range d.Transition {
		if key.Input == InvalidRune {
			continue
		}
		if _, ok := seen[key.Input]; !ok {
			seen[key.Input] = struct{}{}
			alpha = append(alpha, key.Input)
		}
	}

	// initial split: accepting vs non-accepting
	acc, non := map[int]struct{}{}, map[int]struct{}{}
	for s, ok := range d.Accepting {
		if ok {
			acc[s] = struct{}{}
		} else {
			non[s] = struct{}{}
		}
	}
	partitions := make([]map[int]struct{}, 0, 2)
	if len(acc) != 0 {
		partitions = append(partitions, acc)
	}
	if len(non) != 0 {
		partitions = append(partitions, non)
	}

	work := make([]int, len(partitions))
	for i := range work {
		work[i] = i
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		A := partitions[idx]

		for _, c := range alpha {
			// X = preimage of A under c
			X := map[int]struct{}{}
			for s := range d.Accepting {
				if _, ok := A[d.step(s, c)]; ok {
					X[s] = struct{}{}
				}
			}

			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				Y := partitions[pIdx]
				inter := map[int]struct{}{}
				diff := map[int]struct{}{}
				for s := range Y {
					if _, ok := X[s]; ok {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}
				partitions[pIdx] = inter
				partitions = append(partitions, diff)
				// requeue both halves; blocks only ever shrink, so
				// this terminates
				work = append(work, pIdx, len(partitions)-1)
			}
		}
	}

	// renumber: the start block gets 0, the rest follow in order of their
	// smallest member, so minimisation is deterministic
	type block struct {
		min int
		set map[int]struct{}
	}
	blocks := make([]block, len(partitions))
	for i, P := range partitions {
		min := -1
		for s := range P {
			if min < 0 || s < min {
				min = s
			}
		}
		blocks[i] = block{min, P}
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].min < blocks[j].min })

	blockOf := map[int]int{DeadState: DeadState}
	startBlock := 0
	for i, b := range blocks {
		if _, ok := b.set[0]; ok {
			startBlock = i
		}
	}
	id := 1
	for i, b := range blocks {
		n := id
		if i == startBlock {
			n = 0
		} else {
			id++
		}
		for s := range b.set {
			blockOf[s] = n
		}
	}

	out := &DFA{
		Transition: map[TransitionKey]int{},
		Accepting:  map[int]bool{},
	}
	for _, b := range blocks {
		rep := b.min
		nb := blockOf[rep]
		def := blockOf[d.step(rep, InvalidRune)]
		out.Transition[TransitionKey{nb, InvalidRune}] = def
		for _, c := range alpha[1:] {
			if t := blockOf[d.step(rep, c)]; t != def {
				out.Transition[TransitionKey{nb, c}] = t
			}
		}
		out.Accepting[nb] = d.Accepting[rep]
	}
	return out
}
