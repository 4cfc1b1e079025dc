package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterminize_AlreadyDeterministicIsUnchanged(t *testing.T) {
	f := New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}},
		"q0",
		[]string{"q1"},
	)
	out := Determinize(f)
	assert.Equal(t, f, out)
}

// Testable property 3: determinize(F) is deterministic and has no
// ε-transitions.
func TestDeterminize_ResultIsDeterministic(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q0", To: "q2", Symbol: "a"},
			{From: "q1", To: "q1", Symbol: "a"},
			{From: "q2", To: "q2", Symbol: "a"},
		},
		"q0",
		[]string{"q2"},
	)
	out := Determinize(f)
	assert.True(t, IsDeterministic(out))
}

func TestDeterminize_PreservesLanguage(t *testing.T) {
	// NFA over {a,b} accepting strings containing "ab".
	f := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a", "b"},
		[]Transition{
			{From: "q0", To: "q0", Symbol: "a"},
			{From: "q0", To: "q0", Symbol: "b"},
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q1", To: "q2", Symbol: "b"},
			{From: "q2", To: "q2", Symbol: "a"},
			{From: "q2", To: "q2", Symbol: "b"},
		},
		"q0",
		[]string{"q2"},
	)
	det := Determinize(f)

	for _, w := range []string{"", "a", "b", "ab", "aab", "ba", "bba", "abab"} {
		assert.Equal(t, Accepts(f, w), Accepts(det, w), "mismatch on %q", w)
	}
}

func TestDeterminize_EpsilonTransitions(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: ""},
			{From: "q1", To: "q2", Symbol: "a"},
		},
		"q0",
		[]string{"q2"},
	)
	det := Determinize(f)
	assert.True(t, IsDeterministic(det))
	assert.True(t, Accepts(det, "a"))
	assert.False(t, Accepts(det, ""))
}

func TestDeterminize_PartialStaysPartial(t *testing.T) {
	// No transition on 'b' from q0 at all; the resulting DFA must not
	// synthesize a trap state to cover it.
	f := New(
		[]string{"q0", "q1"},
		[]string{"a", "b"},
		[]Transition{{From: "q0", To: "q1", Symbol: "a"}},
		"q0",
		[]string{"q1"},
	)
	det := Determinize(f)
	assert.False(t, IsComplete(det))
}
