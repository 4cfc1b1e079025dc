package fsa

import (
	"fmt"
	"strings"
)

// IdentifyTransitionErrors pinpoints the (state, symbol) pairs where the
// student FSA's transition relation diverges from the reference's, using
// the dual traces already collected in diffs. Two kinds of divergence are
// reported:
//   - wrong_destination: both sides have a transition out of the state the
//     traces agree on just before diverging, but it leads somewhere else.
//   - a missing transition: the reference has a (state, symbol) edge the
//     student FSA lacks entirely, reported with a shortest example input
//     that would exercise it if added.
//
// Grounded on correction.py's identify_transition_errors and
// _find_example_for_transition; unlike that function this walks the
// traces from GenerateDifferenceStrings rather than re-simulating.
func IdentifyTransitionErrors(student, reference FSA, diffs []DifferenceString) []ValidationError {
	var errs []ValidationError
	seen := map[[2]string]bool{}

	studentTransitions := transitionMap(student)
	referenceTransitions := transitionMap(reference)

	for _, d := range diffs {
		prevState, symbol, ok := firstDivergence(d)
		if !ok {
			continue
		}
		key := [2]string{prevState, symbol}
		if seen[key] {
			continue
		}
		studentDest, studentHas := studentTransitions[key]
		referenceDest, referenceHas := referenceTransitions[key]
		if !studentHas || !referenceHas || studentDest == referenceDest {
			continue
		}
		errs = append(errs, ValidationError{
			Code:     CodeLanguageMismatch,
			Severity: SeverityError,
			Message: fmt.Sprintf("on input %q, state %q takes symbol %q to %q but the reference expects %q",
				displayInput(d.Input), prevState, symbol, studentDest, referenceDest),
			Highlight: &Highlight{
				Type:   HighlightTransition,
				From:   prevState,
				To:     studentDest,
				Symbol: symbol,
			},
			Suggestion: fmt.Sprintf("redirect the transition from %q on symbol %q to %q", prevState, symbol, referenceDest),
		})
		seen[key] = true
	}

	alphabet := unionAlphabet(student.Alphabet, reference.Alphabet)
	for _, state := range student.States {
		for _, symbol := range alphabet {
			key := [2]string{state, symbol}
			if seen[key] {
				continue
			}
			_, studentHas := studentTransitions[key]
			referenceDest, referenceHas := referenceTransitions[key]
			if !referenceHas || studentHas {
				continue
			}
			suggestion := fmt.Sprintf("add a transition from %q on symbol %q to reach an equivalent of %q", state, symbol, referenceDest)
			if example, found := findExampleForTransition(student, state, symbol); found {
				suggestion = fmt.Sprintf("add a transition from %q on symbol %q; input %q would exercise it", state, symbol, example)
			}
			errs = append(errs, ValidationError{
				Code:       CodeMissingTransition,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("state %q is missing a transition on symbol %q that the reference has", state, symbol),
				Highlight:  &Highlight{Type: HighlightTransition, From: state, Symbol: symbol},
				Suggestion: suggestion,
			})
			seen[key] = true
		}
	}

	return errs
}

// firstDivergence returns the (state, symbol) pair just before d's two
// traces first disagree, i.e. the transition that produced the divergence.
// Trace records configurations as canonical set names (e.g. "{q0}", or
// "{q0,q1}" for an NFA mid-simulation); only a singleton config names a
// single raw state that transitionMap can look up, so a step through a
// multi-state configuration is not resolvable here and is skipped.
func firstDivergence(d DifferenceString) (state, symbol string, ok bool) {
	symbols := splitSymbols(d.Input)
	minLen := len(d.StudentTrace)
	if len(d.ReferenceTrace) < minLen {
		minLen = len(d.ReferenceTrace)
	}
	for i := 1; i < minLen; i++ {
		if d.StudentTrace[i] == d.ReferenceTrace[i] {
			continue
		}
		if i-1 >= len(symbols) {
			return "", "", false
		}
		prevState, singleton := singletonFromCanonical(d.StudentTrace[i-1])
		if !singleton {
			return "", "", false
		}
		return prevState, symbols[i-1], true
	}
	return "", "", false
}

// singletonFromCanonical extracts the lone state name from a canonical set
// name produced by canonicalSetName, if it names exactly one state.
func singletonFromCanonical(name string) (string, bool) {
	if len(name) < 2 || name[0] != '{' || name[len(name)-1] != '}' {
		return "", false
	}
	inner := name[1 : len(name)-1]
	if inner == "" || strings.Contains(inner, ",") {
		return "", false
	}
	return inner, true
}

// transitionMap indexes f's non-ε transitions by (from, symbol); f is
// assumed deterministic, so each key has at most one destination.
func transitionMap(f FSA) map[[2]string]string {
	m := make(map[[2]string]string, len(f.Transitions))
	for _, t := range f.Transitions {
		if isEpsilon(t.Symbol) {
			continue
		}
		m[[2]string{t.From, t.Symbol}] = t.To
	}
	return m
}

// findExampleForTransition returns the shortest input that drives f from
// its initial state to targetState, followed by symbol, for use as a
// concrete witness of a (targetState, symbol) transition that the
// reference has but the student's FSA lacks.
func findExampleForTransition(f FSA, targetState, symbol string) (string, bool) {
	if targetState == f.Initial {
		return symbol, true
	}

	type step struct {
		state string
		path  string
	}

	visited := map[string]bool{f.Initial: true}
	queue := []step{{f.Initial, ""}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range f.Transitions {
			if t.From != cur.state || isEpsilon(t.Symbol) || visited[t.To] {
				continue
			}
			visited[t.To] = true
			path := cur.path + t.Symbol
			if t.To == targetState {
				return path + symbol, true
			}
			queue = append(queue, step{t.To, path})
		}
	}

	return "", false
}
