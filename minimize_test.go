package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimize_RemovesUnreachableStates(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "qUnreachable"},
		[]string{"a"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q1", To: "q1", Symbol: "a"},
			{From: "qUnreachable", To: "qUnreachable", Symbol: "a"},
		},
		"q0",
		[]string{"q1"},
	)
	min := Minimize(f)
	assert.Len(t, min.States, 2)
}

// S5 — student 2-state DFA for a(a|b)* vs. a 4-state non-minimal DFA for
// the same language: both minimize to the same 2-state shape.
func TestMinimize_S5_EquivalentViaMinimization(t *testing.T) {
	student := New(
		[]string{"s0", "s1"},
		[]string{"a", "b"},
		[]Transition{
			{From: "s0", To: "s1", Symbol: "a"},
			{From: "s1", To: "s1", Symbol: "a"},
			{From: "s1", To: "s1", Symbol: "b"},
		},
		"s0",
		[]string{"s1"},
	)

	reference := New(
		[]string{"r0", "r1", "r2", "r3"},
		[]string{"a", "b"},
		[]Transition{
			{From: "r0", To: "r1", Symbol: "a"},
			{From: "r1", To: "r2", Symbol: "a"},
			{From: "r2", To: "r1", Symbol: "a"},
			{From: "r1", To: "r3", Symbol: "b"},
			{From: "r2", To: "r3", Symbol: "b"},
			{From: "r3", To: "r3", Symbol: "a"},
			{From: "r3", To: "r3", Symbol: "b"},
		},
		"r0",
		[]string{"r1", "r2", "r3"},
	)

	cmp := SameLanguage(student, reference, 8)
	assert.True(t, cmp.AreEquivalent)
	assert.False(t, cmp.HasCounterexample)

	minStudent := Minimize(student)
	minReference := Minimize(reference)
	assert.Len(t, minStudent.States, 2)
	assert.Len(t, minReference.States, 2)
}

// Testable property 2: idempotence up to canonical renaming.
func TestMinimize_IsIdempotent(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2", "q3"},
		[]string{"a", "b"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q0", To: "q2", Symbol: "b"},
			{From: "q1", To: "q3", Symbol: "a"},
			{From: "q2", To: "q3", Symbol: "a"},
			{From: "q1", To: "q3", Symbol: "b"},
			{From: "q2", To: "q3", Symbol: "b"},
			{From: "q3", To: "q3", Symbol: "a"},
			{From: "q3", To: "q3", Symbol: "b"},
		},
		"q0",
		[]string{"q3"},
	)

	once := Minimize(f)
	twice := Minimize(once)
	assert.Equal(t, once, twice)
}

// Testable property 4: minimize(D) contains no unreachable states.
func TestMinimize_NoUnreachableStatesInResult(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q1", To: "q1", Symbol: "a"},
			{From: "q2", To: "q2", Symbol: "a"},
		},
		"q0",
		[]string{"q1"},
	)
	min := Minimize(f)
	assert.Empty(t, FindUnreachableStates(min))
}

func TestMinimize_UsesBFSDiscoveryNaming(t *testing.T) {
	f := New(
		[]string{"q0", "q1", "q2"},
		[]string{"a", "b"},
		[]Transition{
			{From: "q0", To: "q1", Symbol: "a"},
			{From: "q0", To: "q2", Symbol: "b"},
			{From: "q1", To: "q1", Symbol: "a"},
			{From: "q1", To: "q1", Symbol: "b"},
			{From: "q2", To: "q2", Symbol: "a"},
			{From: "q2", To: "q2", Symbol: "b"},
		},
		"q0",
		[]string{"q1"},
	)
	min := Minimize(f)
	assert.Equal(t, "M0", min.Initial)
	for _, s := range min.States {
		assert.Regexp(t, `^M\d+$`, s)
	}
}

// Testable property 1: language preservation through determinize+minimize.
func TestMinimize_PreservesLanguage(t *testing.T) {
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
	min := Minimize(f)
	for _, w := range []string{"", "a", "ab", "aab", "ba", "abab", "bba"} {
		assert.Equal(t, Accepts(f, w), Accepts(min, w), "mismatch on %q", w)
	}
}
