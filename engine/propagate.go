package engine

import (
	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
)

// propagateBCP implements spec §4.10's BCP rule: pick any clause whose
// filtered-false form is a singleton not yet assigned, and push it as
// a BCP-caused true literal.
func propagateBCP(s *State) (*State, string, bool) {
	a := s.Assignment()
	for _, c := range s.Clauses {
		unit, ok := clause.AsUnit(clause.FilterFalse(a, c))
		if !ok {
			continue
		}
		if _, assigned := a.Get(term.Abs(unit)); assigned {
			continue
		}
		next := s.derive()
		next.Trail = trail.Cons(trail.KindBCP, c, unit, term.ValueTrue, s.Trail)
		return next, "propagated " + unit.String() + " from " + c.String(), true
	}
	return nil, "", false
}

// propagateUFEq implements spec §4.10's theory-eval rule: pick any
// unassigned equality term whose both sides are assigned, and push its
// evaluated truth value as an Eval-caused entry.
func propagateUFEq(s *State) (*State, string, bool) {
	a := s.Assignment()
	for _, c := range s.Clauses {
		for _, lit := range c.Literals() {
			eq := term.Abs(lit)
			if eq.Kind() != term.KindEq {
				continue
			}
			if _, assigned := a.Get(eq); assigned {
				continue
			}
			x, y := eq.EqArgs()
			vx, okx := a.Get(x)
			vy, oky := a.Get(y)
			if !okx || !oky {
				continue
			}
			val := term.ValueFalse
			if vx.Equal(vy) {
				val = term.ValueTrue
			}
			next := s.derive()
			next.Trail = trail.Cons(trail.KindEval, nil, eq, val, s.Trail)
			return next, "theory-evaluated " + eq.String(), true
		}
	}
	return nil, "", false
}
