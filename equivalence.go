package fsa

import "sort"

// defaultCounterexampleLength and defaultDifferenceStringLength are the
// enumeration bounds used when a caller passes maxLength <= 0, matching
// the two default lengths named directly in the external Params contract
// ("max_test_length ... default 5 or 10 depending on entry point").
const (
	defaultCounterexampleLength   = 5
	defaultDifferenceStringLength = 10
)

// SameLanguage reports whether student and reference accept exactly the
// same language, and — when they don't — the shortest counterexample
// string, from the student's point of view: ShouldAccept means the
// reference accepts it but the student wrongly rejects it.
//
// Equivalence itself is decided by minimizing both sides and checking the
// minimal DFAs for isomorphism (C5 + C8) — not by enumeration — per spec;
// enumeration is used only afterward, to manufacture a human-readable
// counterexample once non-equivalence is already known.
func SameLanguage(student, reference FSA, maxLength int) LanguageComparison {
	minStudent := Minimize(student)
	minReference := Minimize(reference)

	iso := Isomorphic(minStudent, minReference)
	if iso.Isomorphic {
		return LanguageComparison{AreEquivalent: true}
	}

	if maxLength <= 0 {
		maxLength = defaultCounterexampleLength
	}

	witness, found := shortestDisagreement(student, reference, maxLength)
	if !found {
		// The two DFAs are not isomorphic yet every string up to maxLength
		// agrees — they differ only on longer strings than we searched.
		// The isomorphism diagnostics already explain the difference.
		return LanguageComparison{AreEquivalent: false, Diagnostics: iso.Diagnostics}
	}

	kind := ShouldAccept
	if witness.studentAccepts {
		kind = ShouldReject
	}

	return LanguageComparison{
		AreEquivalent:      false,
		Counterexample:     witness.input,
		HasCounterexample:  true,
		CounterexampleType: kind,
		Diagnostics:        iso.Diagnostics,
	}
}

// GenerateDifferenceStrings enumerates strings over the union of both
// FSAs' alphabets, shortest first, collecting up to maxCount inputs on
// which student and reference disagree, each with both sides' simulation
// trace attached. It stops early once maxCount witnesses are found or
// maxLength is exhausted, whichever comes first.
func GenerateDifferenceStrings(student, reference FSA, maxCount, maxLength int) []DifferenceString {
	if maxCount <= 0 {
		maxCount = 5
	}
	if maxLength <= 0 {
		maxLength = defaultDifferenceStringLength
	}

	alphabet := unionAlphabet(student.Alphabet, reference.Alphabet)

	var diffs []DifferenceString
	for _, input := range enumerateStrings(alphabet, maxLength) {
		if len(diffs) >= maxCount {
			break
		}
		studentAccepts, studentTrace := Trace(student, input)
		referenceAccepts, referenceTrace := Trace(reference, input)
		if studentAccepts == referenceAccepts {
			continue
		}

		kind := ShouldAccept
		if studentAccepts {
			kind = ShouldReject
		}

		diffs = append(diffs, DifferenceString{
			Input:            input,
			Type:             kind,
			StudentAccepts:   studentAccepts,
			ReferenceAccepts: referenceAccepts,
			StudentTrace:     studentTrace,
			ReferenceTrace:   referenceTrace,
		})
	}

	return diffs
}

type disagreement struct {
	input          string
	studentAccepts bool
}

func shortestDisagreement(student, reference FSA, maxLength int) (disagreement, bool) {
	alphabet := unionAlphabet(student.Alphabet, reference.Alphabet)
	for _, input := range enumerateStrings(alphabet, maxLength) {
		sa := Accepts(student, input)
		ra := Accepts(reference, input)
		if sa != ra {
			return disagreement{input: input, studentAccepts: sa}, true
		}
	}
	return disagreement{}, false
}

// enumerateStrings yields every string over alphabet of length 0..maxLength,
// shortest first, in lexicographic order within each length.
func enumerateStrings(alphabet []string, maxLength int) []string {
	if len(alphabet) == 0 {
		return []string{""}
	}
	sorted := append([]string{}, alphabet...)
	sort.Strings(sorted)

	out := []string{""}
	current := []string{""}
	for length := 1; length <= maxLength; length++ {
		var next []string
		for _, prefix := range current {
			for _, symbol := range sorted {
				next = append(next, prefix+symbol)
			}
		}
		out = append(out, next...)
		current = next
	}
	return out
}

func unionAlphabet(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
