package engine

import (
	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
)

// findFalseClause implements spec §4.7's first detection rule: if any
// clause evaluates to false under the current assignment, the state
// moves to ConflictBool(c).
func findFalseClause(s *State) (*State, string, bool) {
	a := s.Assignment()
	for _, c := range s.Clauses {
		if clause.EvalToFalse(a, c) {
			next := s.derive()
			next.Status = Status{Kind: ConflictBool, Conflict: c}
			return next, "found falsified clause " + c.String(), true
		}
	}
	return nil, "", false
}

// findUFDomainConflict implements spec §4.7's second detection rule:
// if the UF domain table contains a ConflictForbid or ConflictForced2
// entry, the state moves to ConflictUF with that record.
func findUFDomainConflict(s *State) (*State, string, bool) {
	for _, d := range s.UFDomain() {
		if d.kind == domainConflictForbid || d.kind == domainConflictForced2 {
			next := s.derive()
			next.Status = Status{Kind: ConflictUF, UF: d.conflict}
			return next, "found EUF domain conflict", true
		}
	}
	return nil, "", false
}

// findCongruenceConflict implements spec §4.7's third detection rule:
// for every trail entry (App(f,l), v) with l fully assigned, compare
// against the stored signature for (f, map(A,l)); a mismatch is a
// congruence conflict.
func findCongruenceConflict(s *State) (*State, string, bool) {
	sigs := s.UFSigs()
	a := s.Assignment()
	for e := s.Trail; e != nil; e = e.Next() {
		lit := e.Lit()
		if lit.Kind() != term.KindApp {
			continue
		}
		args := lit.Args()
		vals := make([]term.Value, len(args))
		allAssigned := true
		for i, arg := range args {
			v, ok := a.Get(arg)
			if !ok {
				allAssigned = false
				break
			}
			vals[i] = v
		}
		if !allAssigned {
			continue
		}
		sig, ok := sigs[sigKey(lit.Fn(), vals)]
		if !ok || sig.witness == lit {
			continue
		}
		if !sig.val.Equal(e.Value()) {
			next := s.derive()
			next.Status = Status{Kind: ConflictUF, UF: &UFConflict{
				Kind: Congruence,
				Fn:   lit.Fn(),
				T1:   lit,
				T2:   sig.witness,
			}}
			return next, "found congruence conflict", true
		}
	}
	return nil, "", false
}
