package fsa

// index is the compiled, per-call view of an FSA's transition relation:
// dense state numbering plus forward/reverse adjacency, split into
// ε-edges and symbol edges. It is built fresh on entry to any algorithm
// that needs more than a single linear scan and discarded on return —
// nothing here survives past the call that built it.
type index struct {
	fsa FSA

	id     map[string]int
	name   []string
	accept map[string]bool

	// succ[state][symbol] = set of destination states reachable on a single
	// non-ε edge labeled symbol.
	succ map[string]map[string][]string

	// eps[state] = states reachable by a single direct ε-edge from state.
	eps map[string][]string

	// pred[state] = states with an edge (ε or symbol) landing on state.
	// Used by the dead-state analyzer, which treats ε-edges as ordinary
	// edges on the reverse graph per spec.
	pred map[string][]string
}

// newIndex compiles the derived views for fsa. It does not validate fsa;
// callers run Validate first and only build an index over an FSA that has
// passed structural validation (or, for the parts of the pipeline that
// tolerate partial FSAs, are aware that unknown states simply never appear
// as index keys).
func newIndex(f FSA) *index {
	ix := &index{
		fsa:    f,
		id:     make(map[string]int, len(f.States)),
		name:   make([]string, len(f.States)),
		accept: make(map[string]bool, len(f.Accepting)),
		succ:   make(map[string]map[string][]string),
		eps:    make(map[string][]string),
		pred:   make(map[string][]string),
	}

	for i, s := range f.States {
		ix.id[s] = i
		ix.name[i] = s
	}
	for _, a := range f.Accepting {
		ix.accept[a] = true
	}

	for _, t := range f.Transitions {
		if isEpsilon(t.Symbol) {
			ix.eps[t.From] = appendUnique(ix.eps[t.From], t.To)
		} else {
			bySym := ix.succ[t.From]
			if bySym == nil {
				bySym = make(map[string][]string)
				ix.succ[t.From] = bySym
			}
			bySym[t.Symbol] = appendUnique(bySym[t.Symbol], t.To)
		}
		ix.pred[t.To] = appendUnique(ix.pred[t.To], t.From)
	}

	return ix
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// Succ returns the (deduplicated) set of states reachable from state on a
// single non-ε edge labeled symbol.
func (ix *index) Succ(state, symbol string) []string {
	return ix.succ[state][symbol]
}

// SuccSet returns the union of Succ(q, symbol) over every q in states.
func (ix *index) SuccSet(states []string, symbol string) []string {
	var out []string
	for _, q := range states {
		out = appendUniqueAll(out, ix.Succ(q, symbol))
	}
	return out
}

func appendUniqueAll(list, add []string) []string {
	for _, v := range add {
		list = appendUnique(list, v)
	}
	return list
}

// IsAccepting reports whether state is in the FSA's accept set.
func (ix *index) IsAccepting(state string) bool {
	return ix.accept[state]
}

// AnyAccepting reports whether any state in states is accepting.
func (ix *index) AnyAccepting(states []string) bool {
	for _, s := range states {
		if ix.accept[s] {
			return true
		}
	}
	return false
}
