package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Testable property 6: find_unreachable_states returns exactly the states
// not in the forward BFS tree from initial.
func TestFindUnreachableStates(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "qGhost"},
		[]string{"a"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}},
		"q0",
		[]string{"q1"},
	)
	assert.Equal(t, []string{"qGhost"}, FindUnreachableStates(f))
}

func TestFindUnreachableStates_AllReachable(t *testing.T) {
	f := New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}},
		"q0",
		[]string{"q1"},
	)
	assert.Empty(t, FindUnreachableStates(f))
}

// S3 — dead state.
func TestFindDeadStates_S3(t *testing.T) {
	f := New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q1", To: "q1", Symbol: "a"},
		},
		"q0",
		[]string{"q0"},
	)
	assert.Equal(t, []string{"q1"}, FindDeadStates(f))
}

// Testable property 7: a state is dead iff no accepting state is
// reachable from it.
func TestFindDeadStates_AcceptingStateIsNeverDead(t *testing.T) {
	f := New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}},
		"q0",
		[]string{"q0", "q1"},
	)
	assert.Empty(t, FindDeadStates(f))
}

func TestStructuralDiagnostics_ReportsBoth(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "qDead", "qGhost"},
		[]string{"a"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q1", To: "qDead", Symbol: "a"},
			{From: "qDead", To: "qDead", Symbol: "a"},
		},
		"q0",
		[]string{"q1"},
	)
	info, diags := StructuralDiagnostics(f)
	assert.Equal(t, []string{"qGhost"}, info.UnreachableStates)
	// qGhost is both unreachable and dead: it has no path to any accepting
	// state, just like qDead, regardless of it also being unreachable.
	assert.Equal(t, []string{"qDead", "qGhost"}, info.DeadStates)

	var codes []ErrorCode
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, CodeUnreachableState)
	assert.Contains(t, codes, CodeDeadState)
}
