package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crillab/mcsat-euf/term"
)

// ModelString formats s's final assignment restricted to application
// terms (the declared functions' instantiations actually appearing in
// the problem), one "term = value" pair per line, sorted by term text
// for reproducible output. Intended for a Sat-terminal state, mirroring
// gophersat's Model.String() "var -> binding" report.
func ModelString(s *State) string {
	a := s.Assignment()
	lines := make([]string, 0, len(a))
	for t, v := range a {
		if t.Kind() != term.KindApp {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s = %s", t, v))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// LearnedClausesString formats every clause in s.Clauses beyond the
// first nOriginal (the lemmas and resolvents accumulated during
// search), one per line. Intended for an Unsat-terminal state, which
// spec §6 says this log "witnesses the refutation".
func LearnedClausesString(s *State, nOriginal int) string {
	if nOriginal >= len(s.Clauses) {
		return ""
	}
	lines := make([]string, 0, len(s.Clauses)-nOriginal)
	for _, c := range s.Clauses[nOriginal:] {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}
