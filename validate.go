package fsa

import "fmt"

// Validate performs the structural well-formedness checks of the FSA
// 5-tuple. Every independent check runs regardless of whether an earlier
// one failed, so a caller sees every problem in one pass — the only
// exception is that transition-membership checks are skipped once the
// state set itself is empty, since there is nothing left to check
// membership against.
func Validate(f FSA) []ValidationError {
	var errs []ValidationError

	states := make(map[string]bool, len(f.States))
	for _, s := range f.States {
		states[s] = true
	}
	alphabet := make(map[string]bool, len(f.Alphabet))
	for _, a := range f.Alphabet {
		alphabet[a] = true
	}

	if len(f.States) == 0 {
		errs = append(errs, ValidationError{
			Code:       CodeEmptyStates,
			Severity:   SeverityError,
			Message:    "the FSA has no states defined",
			Suggestion: "add at least one state to the FSA",
		})
	}

	if len(f.Alphabet) == 0 {
		errs = append(errs, ValidationError{
			Code:       CodeEmptyAlphabet,
			Severity:   SeverityError,
			Message:    "the alphabet is empty",
			Suggestion: "add at least one symbol to the alphabet",
		})
	}

	if !states[f.Initial] {
		errs = append(errs, ValidationError{
			Code:     CodeInvalidInitial,
			Severity: SeverityError,
			Message:  fmt.Sprintf("the initial state %q is not defined in the FSA", f.Initial),
			Highlight: &Highlight{
				Type:    HighlightInitialState,
				StateID: f.Initial,
			},
			Suggestion: "include the initial state in the states list or change the initial state",
		})
	}

	for _, acc := range f.Accepting {
		if !states[acc] {
			errs = append(errs, ValidationError{
				Code:     CodeInvalidAccept,
				Severity: SeverityError,
				Message:  fmt.Sprintf("the accept state %q is not defined in the FSA", acc),
				Highlight: &Highlight{
					Type:    HighlightAcceptState,
					StateID: acc,
				},
				Suggestion: fmt.Sprintf("add %q to the states list or remove it from the accept states", acc),
			})
		}
	}

	transitions := f.Transitions
	if len(f.States) == 0 {
		transitions = nil
	}

	for _, t := range transitions {
		if !states[t.From] {
			errs = append(errs, ValidationError{
				Code:     CodeInvalidTransitionSource,
				Severity: SeverityError,
				Message:  fmt.Sprintf("transition source state %q is not defined", t.From),
				Highlight: &Highlight{
					Type:   HighlightTransition,
					From:   t.From,
					To:     t.To,
					Symbol: t.Symbol,
				},
				Suggestion: fmt.Sprintf("add %q to the states list or change the transition source", t.From),
			})
		}
		if !states[t.To] {
			errs = append(errs, ValidationError{
				Code:     CodeInvalidTransitionDest,
				Severity: SeverityError,
				Message:  fmt.Sprintf("transition destination state %q is not defined", t.To),
				Highlight: &Highlight{
					Type:   HighlightTransition,
					From:   t.From,
					To:     t.To,
					Symbol: t.Symbol,
				},
				Suggestion: fmt.Sprintf("add %q to the states list or change the transition destination", t.To),
			})
		}
		if !isEpsilon(t.Symbol) && !alphabet[t.Symbol] {
			errs = append(errs, ValidationError{
				Code:     CodeInvalidTransitionSymbol,
				Severity: SeverityError,
				Message:  fmt.Sprintf("transition symbol %q is not in the alphabet", t.Symbol),
				Highlight: &Highlight{
					Type:   HighlightTransition,
					From:   t.From,
					To:     t.To,
					Symbol: t.Symbol,
				},
				Suggestion: fmt.Sprintf("add %q to the alphabet or change the transition symbol", t.Symbol),
			})
		}
	}

	for _, a := range f.Alphabet {
		if isEpsilon(a) {
			errs = append(errs, ValidationError{
				Code:       CodeInvalidSymbol,
				Severity:   SeverityError,
				Message:    fmt.Sprintf("the alphabet may not contain the ε-marker %q", a),
				Suggestion: "remove the ε spelling from the alphabet; ε-transitions never need to be declared as a symbol",
			})
		}
	}

	return errs
}

// IsDeterministic reports whether f has no ε-transitions and at most one
// transition per (state, non-ε symbol) pair.
func IsDeterministic(f FSA) bool {
	seen := make(map[[2]string]bool, len(f.Transitions))
	for _, t := range f.Transitions {
		if isEpsilon(t.Symbol) {
			return false
		}
		key := [2]string{t.From, t.Symbol}
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}

// IsComplete reports whether f is deterministic and has a transition for
// every (state, symbol) pair.
func IsComplete(f FSA) bool {
	if !IsDeterministic(f) {
		return false
	}
	seen := make(map[[2]string]bool, len(f.Transitions))
	for _, t := range f.Transitions {
		seen[[2]string{t.From, t.Symbol}] = true
	}
	for _, s := range f.States {
		for _, a := range f.Alphabet {
			if !seen[[2]string{s, a}] {
				return false
			}
		}
	}
	return true
}

// duplicateTransitionErrors finds, and reports as DUPLICATE_TRANSITION,
// every extra transition beyond the first that leaves the same state on
// the same symbol. Unlike IsDeterministic this returns diagnostics rather
// than a bool, for use by the correction pipeline.
func duplicateTransitionErrors(f FSA) []ValidationError {
	var errs []ValidationError
	seen := make(map[[2]string]bool, len(f.Transitions))
	for _, t := range f.Transitions {
		key := [2]string{t.From, t.Symbol}
		if seen[key] {
			errs = append(errs, ValidationError{
				Code:     CodeDuplicateTransition,
				Severity: SeverityError,
				Message:  fmt.Sprintf("multiple transitions from %q on symbol %q", t.From, t.Symbol),
				Highlight: &Highlight{
					Type:   HighlightTransition,
					From:   t.From,
					To:     t.To,
					Symbol: t.Symbol,
				},
				Suggestion: "remove the duplicate transition, or convert the FSA to an NFA if nondeterminism is intended",
			})
			continue
		}
		seen[key] = true
	}
	return errs
}
