package fsa

import "strings"

// Accepts reports whether f accepts the string w, running the standard
// NFA configuration-set recurrence: the current configuration is the set
// of states reachable by w's symbols so far, always closed under ε. A
// symbol of w that is not in f's alphabet, or that has no outgoing
// transition from every state in the current configuration, simply
// shrinks the configuration — it is never treated as an error.
func Accepts(f FSA, w string) bool {
	ix := newIndex(f)
	config := epsilonClosure(ix, f.Initial)

	for _, symbol := range splitSymbols(w) {
		if len(config) == 0 {
			break
		}
		moved := ix.SuccSet(config, symbol)
		config = epsilonClosureSet(ix, moved)
	}

	return ix.AnyAccepting(config)
}

// Trace runs the same recurrence as Accepts but also returns the sequence
// of configurations visited, one per symbol consumed plus the starting
// configuration, each rendered as a canonical set name (e.g. "{q0,q1}").
// This is the basis for the dual traces GenerateDifferenceStrings collects
// in equivalence.go and the divergence diagnostics built from them in
// transition_diagnostics.go.
func Trace(f FSA, w string) (accepted bool, path []string) {
	ix := newIndex(f)
	config := epsilonClosure(ix, f.Initial)
	path = append(path, canonicalSetName(config))

	for _, symbol := range splitSymbols(w) {
		if len(config) == 0 {
			path = append(path, canonicalSetName(nil))
			continue
		}
		moved := ix.SuccSet(config, symbol)
		config = epsilonClosureSet(ix, moved)
		path = append(path, canonicalSetName(config))
	}

	return ix.AnyAccepting(config), path
}

// splitSymbols splits w into individual alphabet symbols. Symbols in this
// package's FSA are single runes joined back-to-back in an input string —
// multi-character symbol names are not supported by simulation, matching
// the wire format's string inputs.
func splitSymbols(w string) []string {
	if w == "" {
		return nil
	}
	runes := strings.Split(w, "")
	return runes
}
