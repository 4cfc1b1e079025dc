package fsa

import "github.com/bits-and-blooms/bitset"

// EpsilonClosure computes the ε-closure of a single state: the set of
// states reachable from state by zero or more ε-transitions, including
// state itself. Traversal terminates on cycles via the visited bitset.
func EpsilonClosure(f FSA, state string) []string {
	return epsilonClosure(newIndex(f), state)
}

func epsilonClosure(ix *index, state string) []string {
	closure := []string{state}
	visited := bitset.New(uint(len(ix.name)))
	visited.Set(uint(ix.id[state]))
	worklist := []string{state}

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, next := range ix.eps[current] {
			if id := uint(ix.id[next]); !visited.Test(id) {
				visited.Set(id)
				closure = append(closure, next)
				worklist = append(worklist, next)
			}
		}
	}

	return closure
}

// EpsilonClosureSet computes the union of EpsilonClosure over every state
// in states.
func EpsilonClosureSet(f FSA, states []string) []string {
	ix := newIndex(f)
	return epsilonClosureSet(ix, states)
}

func epsilonClosureSet(ix *index, states []string) []string {
	var out []string
	for _, s := range states {
		out = appendUniqueAll(out, epsilonClosure(ix, s))
	}
	return out
}

// EpsilonClosureAll computes the ε-closure of every state in f in a single
// bulk pass, memoizing as it goes. An empty ε-transition table yields the
// identity closure for every state (each state's closure is just itself).
func EpsilonClosureAll(f FSA) map[string][]string {
	ix := newIndex(f)
	closures := make(map[string][]string, len(f.States))
	for _, s := range f.States {
		closures[s] = epsilonClosure(ix, s)
	}
	return closures
}
