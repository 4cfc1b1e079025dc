package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingletonFromCanonical(t *testing.T) {
	state, ok := singletonFromCanonical("{q0}")
	require.True(t, ok)
	assert.Equal(t, "q0", state)

	_, ok = singletonFromCanonical("{q0,q1}")
	assert.False(t, ok, "a multi-state config names no single state")

	_, ok = singletonFromCanonical("{}")
	assert.False(t, ok, "the empty config names no state")

	_, ok = singletonFromCanonical("q0")
	assert.False(t, ok, "not brace-delimited")
}

func TestFindExampleForTransition_InitialState(t *testing.T) {
	f := New([]string{"q0", "q1"}, []string{"a"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}}, "q0", []string{"q1"})

	example, found := findExampleForTransition(f, "q0", "a")
	require.True(t, found)
	assert.Equal(t, "a", example)
}

func TestFindExampleForTransition_BFSShortestPath(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a", "b"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q0", To: "q2", Symbol: "b"},
			{From: "q1", To: "q2", Symbol: "a"},
		},
		"q0",
		[]string{"q2"},
	)

	example, found := findExampleForTransition(f, "q2", "b")
	require.True(t, found)
	// q2 is reachable from q0 in one step via "b"; that shortest path must
	// win over the two-step "a"+"a" route through q1.
	assert.Equal(t, "bb", example)
}

func TestFindExampleForTransition_UnreachableTargetFails(t *testing.T) {
	f := New([]string{"q0", "q1"}, []string{"a"}, nil, "q0", nil)
	_, found := findExampleForTransition(f, "q1", "a")
	assert.False(t, found)
}

func TestIdentifyTransitionErrors_WrongDestinationIsReported(t *testing.T) {
	student := New([]string{"q0", "q1"}, []string{"a"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}}, "q0", []string{"q1"})
	reference := New([]string{"q0", "q1"}, []string{"a"},
		[]Transition{{From: "q0", To: "q0", Symbol: "a"}}, "q0", nil)

	diffs := []DifferenceString{{
		Input:            "a",
		Type:             ShouldReject,
		StudentAccepts:   true,
		ReferenceAccepts: false,
		StudentTrace:     []string{"{q0}", "{q1}"},
		ReferenceTrace:   []string{"{q0}", "{q0}"},
	}}

	errs := IdentifyTransitionErrors(student, reference, diffs)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeLanguageMismatch, errs[0].Code)
	assert.Equal(t, SeverityError, errs[0].Severity)
	require.NotNil(t, errs[0].Highlight)
	assert.Equal(t, "q0", errs[0].Highlight.From)
	assert.Equal(t, "a", errs[0].Highlight.Symbol)
}

func TestIdentifyTransitionErrors_MissingTransitionIsReportedWithExample(t *testing.T) {
	student := New([]string{"q0", "q1"}, []string{"a", "b"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}}, "q0", []string{"q1"})
	reference := New([]string{"q0", "q1"}, []string{"a", "b"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q1", To: "q0", Symbol: "b"},
		}, "q0", []string{"q1"})

	errs := IdentifyTransitionErrors(student, reference, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeMissingTransition, errs[0].Code)
	require.NotNil(t, errs[0].Highlight)
	assert.Equal(t, "q1", errs[0].Highlight.From)
	assert.Equal(t, "b", errs[0].Highlight.Symbol)
	assert.Contains(t, errs[0].Suggestion, "ab")
}

func TestIdentifyTransitionErrors_NoDivergenceNoErrors(t *testing.T) {
	f := New([]string{"q0", "q1"}, []string{"a"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}}, "q0", []string{"q1"})
	assert.Empty(t, IdentifyTransitionErrors(f, f, nil))
}
