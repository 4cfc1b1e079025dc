package fsa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// bfsForward returns every state reachable from start by following any
// transition (ε or symbol) forward, start included. Visited/discovered
// bookkeeping uses a bitset over index's dense state numbering rather
// than a map, the way the teacher tracks live/reachable states over its
// own int-packed automata.
func bfsForward(ix *index, start string, alphabet []string) []string {
	visited := bitset.New(uint(len(ix.name)))
	var order []string
	var queue []string

	visited.Set(uint(ix.id[start]))
	order = append(order, start)
	queue = append(queue, start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range ix.eps[current] {
			if id := uint(ix.id[next]); !visited.Test(id) {
				visited.Set(id)
				order = append(order, next)
				queue = append(queue, next)
			}
		}
		for _, symbol := range alphabet {
			for _, next := range ix.Succ(current, symbol) {
				if id := uint(ix.id[next]); !visited.Test(id) {
					visited.Set(id)
					order = append(order, next)
					queue = append(queue, next)
				}
			}
		}
	}

	return order
}

// bfsReverse returns every state from which some state in targets is
// reachable, targets included, following the reverse adjacency (pred)
// that index builds over both ε and symbol edges.
func bfsReverse(ix *index, targets []string) []string {
	visited := bitset.New(uint(len(ix.name)))
	var order []string
	var queue []string

	for _, t := range targets {
		if id := uint(ix.id[t]); !visited.Test(id) {
			visited.Set(id)
			order = append(order, t)
			queue = append(queue, t)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, prev := range ix.pred[current] {
			if id := uint(ix.id[prev]); !visited.Test(id) {
				visited.Set(id)
				order = append(order, prev)
				queue = append(queue, prev)
			}
		}
	}

	return order
}

// FindUnreachableStates returns every state of f that cannot be reached
// from the initial state by any sequence of transitions.
func FindUnreachableStates(f FSA) []string {
	ix := newIndex(f)
	reachable := bitset.New(uint(len(ix.name)))
	for _, s := range bfsForward(ix, f.Initial, f.Alphabet) {
		reachable.Set(uint(ix.id[s]))
	}

	var unreachable []string
	for _, s := range f.States {
		if !reachable.Test(uint(ix.id[s])) {
			unreachable = append(unreachable, s)
		}
	}
	return unreachable
}

// FindDeadStates returns every state of f from which no accepting state
// can ever be reached — states that can never contribute to acceptance of
// any string. This is unconditional on reachability from the initial
// state: a state can be both unreachable and dead at once, matching
// find_dead_states's unfiltered `states \ reachable_to_accept` in the
// original implementation.
func FindDeadStates(f FSA) []string {
	ix := newIndex(f)

	canReachAccept := bitset.New(uint(len(ix.name)))
	for _, s := range bfsReverse(ix, f.Accepting) {
		canReachAccept.Set(uint(ix.id[s]))
	}

	var dead []string
	for _, s := range f.States {
		if !canReachAccept.Test(uint(ix.id[s])) {
			dead = append(dead, s)
		}
	}
	return dead
}

// StructuralDiagnostics runs the graph-shape analysis of §4.C6: determinism
// and completeness flags, counts, and the unreachable/dead state lists,
// each also surfaced as a warning/info-level ValidationError so callers
// that only look at the flat error list still see them.
func StructuralDiagnostics(f FSA) (StructuralInfo, []ValidationError) {
	unreachable := FindUnreachableStates(f)
	dead := FindDeadStates(f)

	info := StructuralInfo{
		IsDeterministic:   IsDeterministic(f),
		IsComplete:        IsComplete(f),
		NumStates:         len(f.States),
		NumTransitions:    len(f.Transitions),
		UnreachableStates: unreachable,
		DeadStates:        dead,
	}

	var diags []ValidationError
	for _, s := range unreachable {
		diags = append(diags, ValidationError{
			Code:       CodeUnreachableState,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("state %q is never reached from the initial state", s),
			Highlight:  &Highlight{Type: HighlightState, StateID: s},
			Suggestion: fmt.Sprintf("add a transition into %q, or remove it if it was left over from an earlier draft", s),
		})
	}
	for _, s := range dead {
		diags = append(diags, ValidationError{
			Code:       CodeDeadState,
			Severity:   SeverityInfo,
			Message:    fmt.Sprintf("state %q can never reach an accepting state", s),
			Highlight:  &Highlight{Type: HighlightState, StateID: s},
			Suggestion: fmt.Sprintf("check whether %q should have a path to an accept state, or is intentionally a trap", s),
		})
	}

	return info, diags
}
