// Package fsa evaluates student-submitted finite-state automata against a
// reference specification and produces structured, UI-highlightable feedback.
//
// The package is a pure value-in/value-out library: every exported function
// takes FSA values and returns diagnostic values without touching any shared
// state. Callers own JSON decoding, HTTP, persistence, and anything else at
// the edges; this package only knows about automata.
package fsa

import (
	"sort"
	"strings"
)

// epsilonGlyph is the spelling the core uses when it renders ε itself: an
// empty input string shown in hint and message text. Highlights that point
// at an ε-transition carry its Symbol exactly as the caller spelled it.
const epsilonGlyph = "ε"

// isEpsilon reports whether symbol is one of the three ε spellings an input
// FSA is allowed to use: "ε", "epsilon", or "".
func isEpsilon(symbol string) bool {
	return symbol == "ε" || symbol == "epsilon" || symbol == ""
}

// Transition is a single edge of the transition relation δ: (From, Symbol,
// To). Symbol may be any ε spelling, in which case the edge is an
// ε-transition.
type Transition struct {
	From   string
	To     string
	Symbol string
}

// FSA is the 5-tuple (Q, Σ, δ, q0, F): a finite-state automaton, possibly
// non-deterministic, possibly with ε-transitions. It is a value type —
// no exported function in this package mutates one.
type FSA struct {
	States      []string
	Alphabet    []string
	Transitions []Transition
	Initial     string
	Accepting   []string
}

// New builds an FSA from its five components. It performs no validation;
// call Validate to check well-formedness before running any other analysis.
func New(states, alphabet []string, transitions []Transition, initial string, accepting []string) FSA {
	return FSA{
		States:      states,
		Alphabet:    alphabet,
		Transitions: transitions,
		Initial:     initial,
		Accepting:   accepting,
	}
}

// Severity is the urgency of a ValidationError.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ErrorCode is the closed enumeration of diagnostic codes a caller's UI can
// switch on.
type ErrorCode string

const (
	CodeInvalidState            ErrorCode = "INVALID_STATE"
	CodeInvalidInitial          ErrorCode = "INVALID_INITIAL"
	CodeInvalidAccept           ErrorCode = "INVALID_ACCEPT"
	CodeInvalidSymbol           ErrorCode = "INVALID_SYMBOL"
	CodeInvalidTransitionSource ErrorCode = "INVALID_TRANSITION_SOURCE"
	CodeInvalidTransitionDest   ErrorCode = "INVALID_TRANSITION_DEST"
	CodeInvalidTransitionSymbol ErrorCode = "INVALID_TRANSITION_SYMBOL"
	CodeMissingTransition       ErrorCode = "MISSING_TRANSITION"
	CodeDuplicateTransition     ErrorCode = "DUPLICATE_TRANSITION"
	CodeUnreachableState        ErrorCode = "UNREACHABLE_STATE"
	CodeDeadState               ErrorCode = "DEAD_STATE"
	CodeWrongAutomatonType      ErrorCode = "WRONG_AUTOMATON_TYPE"
	CodeNotDeterministic        ErrorCode = "NOT_DETERMINISTIC"
	CodeNotComplete             ErrorCode = "NOT_COMPLETE"
	CodeLanguageMismatch        ErrorCode = "LANGUAGE_MISMATCH"
	CodeTestCaseFailed          ErrorCode = "TEST_CASE_FAILED"
	CodeEmptyStates             ErrorCode = "EMPTY_STATES"
	CodeEmptyAlphabet           ErrorCode = "EMPTY_ALPHABET"
	CodeEvaluationError         ErrorCode = "EVALUATION_ERROR"
)

// HighlightType discriminates which shape of Highlight is populated.
type HighlightType string

const (
	HighlightState         HighlightType = "state"
	HighlightTransition    HighlightType = "transition"
	HighlightInitialState  HighlightType = "initial_state"
	HighlightAcceptState   HighlightType = "accept_state"
	HighlightAlphabetSym   HighlightType = "alphabet_symbol"
	HighlightGeneral       HighlightType = "general"
)

// Highlight references a specific FSA element so a front end can mark it.
// Only the fields relevant to Type are populated.
type Highlight struct {
	Type HighlightType

	StateID string // state, initial_state, accept_state

	From   string // transition
	To     string // transition
	Symbol string // transition, alphabet_symbol
}

// ValidationError is a single diagnostic: what's wrong, how bad it is, and
// (optionally) where to point the UI and how to fix it.
type ValidationError struct {
	Code       ErrorCode
	Severity   Severity
	Message    string
	Suggestion string
	Highlight  *Highlight
}

// StructuralInfo summarizes the analyzable properties of a single FSA.
type StructuralInfo struct {
	IsDeterministic    bool
	IsComplete         bool
	NumStates          int
	NumTransitions     int
	UnreachableStates  []string
	DeadStates         []string
}

// TestResult is the outcome of simulating one input/expected test case.
type TestResult struct {
	Input    string
	Expected bool
	Actual   bool
	Passed   bool
	Trace    []string
}

// CounterexampleType labels a LanguageComparison counterexample from the
// student's point of view: "should_accept" means the student's FSA wrongly
// rejects a string the reference accepts.
type CounterexampleType string

const (
	ShouldAccept CounterexampleType = "should_accept"
	ShouldReject CounterexampleType = "should_reject"
)

// LanguageComparison is the outcome of comparing a student FSA's language
// against a reference FSA's language. Diagnostics carries the isomorphism
// checker's pre-check and bijection-mismatch findings as ValidationError
// values, ready to fold into FSAFeedback.Errors.
type LanguageComparison struct {
	AreEquivalent      bool
	Counterexample     string
	HasCounterexample  bool
	CounterexampleType CounterexampleType
	Diagnostics        []ValidationError
}

// DifferenceString is one witness of divergence between a student FSA and
// a reference FSA: an input string the two disagree on, plus both sides'
// configuration traces so a UI can show exactly where they parted ways.
type DifferenceString struct {
	Input           string
	Type            CounterexampleType
	StudentAccepts  bool
	ReferenceAccepts bool
	StudentTrace    []string
	ReferenceTrace  []string
}

// FSAFeedback is the full structured feedback produced by Evaluate.
type FSAFeedback struct {
	Summary      string
	Errors       []ValidationError
	Warnings     []ValidationError
	Structural   *StructuralInfo
	Language     *LanguageComparison
	TestResults  []TestResult
	Hints        []string
}

// canonicalSetName renders a set of state ids the way the determinizer names
// derived states and Trace names configurations: sorted, comma-joined,
// brace-delimited.
func canonicalSetName(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ",") + "}"
}
