package fsa

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// AnswerType discriminates the shapes an Answer can take. Go has no sum
// types, so a tag field plus the relevant optional payload stands in for
// one — the same pattern ValidationError.Highlight and Params.* use
// elsewhere in this package (see DESIGN.md).
type AnswerType string

const (
	AnswerTestCases    AnswerType = "test_cases"
	AnswerReferenceFSA AnswerType = "reference_fsa"
	AnswerRegex        AnswerType = "regex"
	AnswerGrammar      AnswerType = "grammar"
)

// TestCase is one input/expected pair supplied alongside a test_cases
// Answer.
type TestCase struct {
	Input    string
	Expected bool
}

// Answer is the student's submission plus whatever it should be checked
// against. Only the field named by Type is meaningful; regex and grammar
// answers carry no payload this core understands — Evaluate reports them
// as unsupported rather than inspecting TestCases/Reference.
type Answer struct {
	Type      AnswerType
	Student   FSA
	Reference FSA
	TestCases []TestCase
}

// Params configures one Evaluate run, mirroring the recognized keys of
// the external Params contract. Struct tags are enforced by
// ValidateParams via go-playground/validator, the same library the
// broader example corpus uses for request-shape validation.
type Params struct {
	// EvaluationMode: "strict" and "lenient" both require every
	// configured check to pass for is_correct; "partial" additionally
	// populates Score with weighted credit.
	EvaluationMode string `validate:"omitempty,oneof=strict lenient partial"`

	// ExpectedType, when "DFA", requires the student FSA to be
	// deterministic. "NFA" and "any" impose no determinism requirement.
	ExpectedType string `validate:"omitempty,oneof=DFA NFA any"`

	CheckCompleteness bool
	CheckMinimality   bool

	// FeedbackVerbosity truncates hints/test_results/traces: "minimal"
	// drops them entirely, "standard" keeps hints and test results but
	// drops per-step traces, "detailed" (the default) keeps everything.
	FeedbackVerbosity string `validate:"omitempty,oneof=minimal standard detailed"`

	// HighlightErrors, when explicitly false, strips Highlight from every
	// emitted ValidationError. Defaults to true (highlights included).
	HighlightErrors *bool

	// ShowCounterexample, when explicitly false, omits the counterexample
	// string from LanguageComparison. Defaults to true.
	ShowCounterexample *bool

	// MaxTestLength bounds bounded-enumeration length for both
	// counterexample search and difference-string generation.
	MaxTestLength int `validate:"omitempty,gte=0,lte=64"`

	// MaxDifferenceStrings bounds how many counterexamples
	// GenerateDifferenceStrings collects once languages are known to
	// diverge.
	MaxDifferenceStrings int `validate:"omitempty,gte=0,lte=100"`
}

func (p Params) highlightsEnabled() bool {
	return p.HighlightErrors == nil || *p.HighlightErrors
}

func (p Params) counterexampleEnabled() bool {
	return p.ShowCounterexample == nil || *p.ShowCounterexample
}

// ValidateParams checks Params against its struct tags and returns a
// descriptive error, or nil if Params is well-formed.
func ValidateParams(p Params) error {
	if err := paramsValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}

var paramsValidator = validator.New()

// Result is the top-level outcome of Evaluate, mirroring the external
// Result contract: IsCorrect is the pass/fail verdict, FeedbackText a
// short narrative summary, Score populated only in "partial" mode, and
// FSAFeedback the full structured diagnostics.
type Result struct {
	IsCorrect    bool
	FeedbackText string
	Score        *float64
	FSAFeedback  FSAFeedback
}

// Evaluate runs the full grading pipeline against one student Answer:
// structural validation (C2), graph diagnostics (C6), the expected-type
// and completeness checks Params asks for, language comparison or
// test-case simulation (C7/C9), and scoring. Every stage logs at debug
// level via log/slog so a caller that wires up a handler can see how a
// verdict was assembled without re-running anything.
func Evaluate(answer Answer, params Params) (Result, error) {
	if err := ValidateParams(params); err != nil {
		return Result{}, err
	}

	log := slog.Default()
	feedback := FSAFeedback{}

	if answer.Type == AnswerRegex || answer.Type == AnswerGrammar {
		diag := ValidationError{
			Code:     CodeEvaluationError,
			Severity: SeverityError,
			Message:  fmt.Sprintf("answer type %q is not supported by this evaluator", answer.Type),
		}
		applyFeedback(&feedback, []ValidationError{diag}, params)
		feedback.Summary = "this answer type is not supported"
		return finalizeResult(false, nil, feedback, params), nil
	}

	structuralErrs := Validate(answer.Student)
	log.Debug("fsa: structural validation complete", "errors", len(structuralErrs))
	if hasSeverity(structuralErrs, SeverityError) {
		applyFeedback(&feedback, structuralErrs, params)
		feedback.Summary = "the submitted FSA is not well-formed"
		return finalizeResult(false, nil, feedback, params), nil
	}

	structural, graphDiags := StructuralDiagnostics(answer.Student)
	feedback.Structural = &structural
	log.Debug("fsa: graph diagnostics complete",
		"unreachable", len(structural.UnreachableStates),
		"dead", len(structural.DeadStates))

	allDiags := append(append([]ValidationError{}, structuralErrs...), graphDiags...)

	var checks []checkOutcome

	if params.ExpectedType == "DFA" && !structural.IsDeterministic {
		checks = append(checks, checkOutcome{name: "expected_type", passed: false})
		allDiags = append(allDiags,
			ValidationError{
				Code:       CodeWrongAutomatonType,
				Severity:   SeverityError,
				Message:    "a DFA was expected but the submitted FSA is not deterministic",
				Suggestion: "determinize the FSA, or remove non-deterministic transitions",
			},
			ValidationError{
				Code:       CodeNotDeterministic,
				Severity:   SeverityError,
				Message:    "the FSA is not deterministic",
				Suggestion: "ensure every state has at most one transition per symbol and no ε-transitions",
			},
		)
		allDiags = append(allDiags, duplicateTransitionErrors(answer.Student)...)
	} else if params.ExpectedType == "DFA" || params.ExpectedType == "" {
		checks = append(checks, checkOutcome{name: "expected_type", passed: true})
	}

	if params.CheckCompleteness {
		ok := structural.IsComplete
		checks = append(checks, checkOutcome{name: "completeness", passed: ok})
		if !ok {
			allDiags = append(allDiags, ValidationError{
				Code:       CodeNotComplete,
				Severity:   SeverityError,
				Message:    "the FSA is not complete",
				Suggestion: "add a transition for every (state, symbol) pair, or route missing ones to a trap state",
			})
		}
	}

	if params.CheckMinimality {
		minimal := Minimize(answer.Student)
		determinized := Determinize(answer.Student)
		if len(minimal.States) != len(determinized.States) {
			feedback.Hints = append(feedback.Hints, fmt.Sprintf(
				"this FSA is not minimal: an equivalent minimal DFA has %d state(s), this one (determinized) has %d",
				len(minimal.States), len(determinized.States)))
		}
	}

	log.Debug("fsa: checks complete", "count", len(checks))

	var languageOK bool
	var score *float64
	var languageDiags []ValidationError
	switch answer.Type {
	case AnswerTestCases:
		languageOK, score = runTestCases(answer, params, &feedback)
	default:
		languageOK, score, languageDiags = runLanguageComparison(answer, params, &feedback)
	}
	checks = append(checks, checkOutcome{name: "language", passed: languageOK})
	allDiags = append(allDiags, languageDiags...)

	applyFeedback(&feedback, allDiags, params)

	isCorrect := true
	for _, c := range checks {
		if !c.passed {
			isCorrect = false
			break
		}
	}

	feedback.Summary = summarize(isCorrect, checks)

	log.Debug("fsa: evaluation complete", "is_correct", isCorrect)
	return finalizeResult(isCorrect, score, feedback, params), nil
}

func finalizeResult(isCorrect bool, score *float64, feedback FSAFeedback, params Params) Result {
	feedbackText := feedback.Summary
	var reportedScore *float64
	if params.EvaluationMode == "partial" {
		reportedScore = score
		if reportedScore == nil {
			v := 0.0
			if isCorrect {
				v = 1.0
			}
			reportedScore = &v
		}
	}
	truncateForVerbosity(&feedback, params.FeedbackVerbosity)
	return Result{
		IsCorrect:    isCorrect,
		FeedbackText: feedbackText,
		Score:        reportedScore,
		FSAFeedback:  feedback,
	}
}

func truncateForVerbosity(feedback *FSAFeedback, verbosity string) {
	switch verbosity {
	case "minimal":
		feedback.Hints = nil
		feedback.TestResults = nil
		if feedback.Language != nil {
			feedback.Language.Counterexample = ""
			feedback.Language.HasCounterexample = false
		}
	case "standard":
		for i := range feedback.TestResults {
			feedback.TestResults[i].Trace = nil
		}
	}
}

// runLanguageComparison handles the reference_fsa route: compare
// languages via C9, and, in partial mode, score by how many of the
// generated difference strings the student gets wrong relative to
// MaxDifferenceStrings. The returned diagnostics combine the isomorphism
// checker's own findings (C8, threaded through SameLanguage) with the
// transition-level divergence analysis of C10's supplemented features.
func runLanguageComparison(answer Answer, params Params, feedback *FSAFeedback) (bool, *float64, []ValidationError) {
	cmp := SameLanguage(answer.Student, answer.Reference, params.MaxTestLength)
	if !params.counterexampleEnabled() {
		cmp.Counterexample = ""
		cmp.HasCounterexample = false
	}
	feedback.Language = &cmp
	if cmp.AreEquivalent {
		return true, floatPtr(1), nil
	}

	maxDiff := params.MaxDifferenceStrings
	if maxDiff == 0 {
		maxDiff = 5
	}
	diffs := GenerateDifferenceStrings(answer.Student, answer.Reference, maxDiff, params.MaxTestLength)
	for _, d := range diffs {
		feedback.Hints = append(feedback.Hints, differenceHint(d))
	}

	diagnostics := append([]ValidationError{}, cmp.Diagnostics...)
	diagnostics = append(diagnostics, IdentifyTransitionErrors(answer.Student, answer.Reference, diffs)...)

	score := 1 - minFloat(1, float64(len(diffs))/float64(maxDiff))
	return false, &score, diagnostics
}

func runTestCases(answer Answer, _ Params, feedback *FSAFeedback) (bool, *float64) {
	allPassed := true
	passedCount := 0
	for _, tc := range answer.TestCases {
		actual, trace := Trace(answer.Student, tc.Input)
		passed := actual == tc.Expected
		if passed {
			passedCount++
		} else {
			allPassed = false
		}
		feedback.TestResults = append(feedback.TestResults, TestResult{
			Input:    tc.Input,
			Expected: tc.Expected,
			Actual:   actual,
			Passed:   passed,
			Trace:    trace,
		})
		if !passed {
			feedback.Errors = append(feedback.Errors, ValidationError{
				Code:     CodeTestCaseFailed,
				Severity: SeverityError,
				Message:  fmt.Sprintf("expected accepts(%q)=%v but got %v", tc.Input, tc.Expected, actual),
			})
		}
	}
	if len(answer.TestCases) == 0 {
		return true, floatPtr(1)
	}
	score := float64(passedCount) / float64(len(answer.TestCases))
	return allPassed, &score
}

func differenceHint(d DifferenceString) string {
	if d.Type == ShouldAccept {
		return fmt.Sprintf("the reference accepts %q but the submitted FSA rejects it", displayInput(d.Input))
	}
	return fmt.Sprintf("the submitted FSA accepts %q but the reference rejects it", displayInput(d.Input))
}

func displayInput(s string) string {
	if s == "" {
		return epsilonGlyph
	}
	return s
}

func floatPtr(v float64) *float64 { return &v }

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

type checkOutcome struct {
	name   string
	passed bool
}

func summarize(isCorrect bool, checks []checkOutcome) string {
	if isCorrect {
		return "all checks passed"
	}
	var failed []string
	for _, c := range checks {
		if !c.passed {
			failed = append(failed, c.name)
		}
	}
	return fmt.Sprintf("failed: %v", failed)
}

func hasSeverity(errs []ValidationError, sev Severity) bool {
	for _, e := range errs {
		if e.Severity == sev {
			return true
		}
	}
	return false
}

func filterSeverity(errs []ValidationError, sev Severity) []ValidationError {
	var out []ValidationError
	for _, e := range errs {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}

// applyFeedback splits diags by severity into feedback.Errors/Warnings,
// collects their suggestions into feedback.Hints, and — per
// Params.HighlightErrors — strips highlights before anything is stored.
func applyFeedback(feedback *FSAFeedback, diags []ValidationError, params Params) {
	if !params.highlightsEnabled() {
		stripped := make([]ValidationError, len(diags))
		for i, d := range diags {
			d.Highlight = nil
			stripped[i] = d
		}
		diags = stripped
	}
	feedback.Errors = append(feedback.Errors, filterSeverity(diags, SeverityError)...)
	feedback.Warnings = append(feedback.Warnings, filterSeverity(diags, SeverityWarning)...)
	feedback.Warnings = append(feedback.Warnings, filterSeverity(diags, SeverityInfo)...)
	for _, d := range diags {
		if d.Suggestion != "" {
			feedback.Hints = append(feedback.Hints, d.Suggestion)
		}
	}
}
