package fsa

// Determinize converts an FSA (possibly with ε-transitions and/or multiple
// (state, symbol) successors) into an equivalent DFA via subset
// construction. The resulting states are frozen subsets of the input
// states, named canonically by canonicalSetName (sorted, comma-joined,
// brace-delimited — e.g. "{q0,q1}"). The result may be partial: if a
// subset has no successor on some symbol, no transition is added for it,
// rather than routing to a synthesized trap state. An input that is already
// deterministic is returned unchanged, with its original state names.
//
// Grounded on the teacher's FrozenIntSet canonical-subset idea
// (frozenintset.go, stateset.go), generalized from integer state ids to
// string ones, and on the standard subset-construction worklist shape.
func Determinize(f FSA) FSA {
	if IsDeterministic(f) {
		return f
	}

	ix := newIndex(f)

	startSet := epsilonClosure(ix, f.Initial)
	startKey := canonicalSetName(startSet)

	subsetByKey := map[string][]string{startKey: startSet}
	seen := map[string]bool{startKey: true}

	var outStates []string
	var outAccepting []string
	var outTransitions []Transition

	worklist := []string{startKey}
	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]

		subset := subsetByKey[key]
		outStates = append(outStates, key)
		if ix.AnyAccepting(subset) {
			outAccepting = append(outAccepting, key)
		}

		for _, symbol := range f.Alphabet {
			moved := ix.SuccSet(subset, symbol)
			if len(moved) == 0 {
				continue
			}
			nextSubset := epsilonClosureSet(ix, moved)
			nextKey := canonicalSetName(nextSubset)

			outTransitions = append(outTransitions, Transition{
				From:   key,
				To:     nextKey,
				Symbol: symbol,
			})

			if !seen[nextKey] {
				seen[nextKey] = true
				subsetByKey[nextKey] = nextSubset
				worklist = append(worklist, nextKey)
			}
		}
	}

	return FSA{
		States:      outStates,
		Alphabet:    f.Alphabet,
		Transitions: outTransitions,
		Initial:     startKey,
		Accepting:   outAccepting,
	}
}
