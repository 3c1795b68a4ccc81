package engine

import (
	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
)

func withLearnedClause(s *State, c *clause.Clause) *State {
	cs := make([]*clause.Clause, len(s.Clauses), len(s.Clauses)+1)
	copy(cs, s.Clauses)
	cs = append(cs, c)
	next := s.derive()
	next.Clauses = cs
	return next
}

// solveUFConflict implements spec §4.9's "solve_uf_domain_conflict":
// it turns a ConflictUF status into a ConflictBool status carrying the
// lemma mk_uf_lemma synthesizes, learning that lemma into the clause
// set so ordinary boolean resolution can take over.
func solveUFConflict(s *State) (*State, string, bool) {
	if s.Status.Kind != ConflictUF {
		return nil, "", false
	}
	lemma := mkUFLemma(s, s.Status.UF)
	next := withLearnedClause(s, lemma)
	next.Status = Status{Kind: ConflictBool, Conflict: lemma}
	return next, "synthesized EUF lemma " + lemma.String(), true
}

// resolveBoolConflict implements spec §4.9. Each call performs exactly
// one of: discharging a trivially-false literal from the conflict
// clause, popping one non-informative trail entry, resolving against
// a BCP cause, backjumping, taking a semantic case split, or
// concluding Unsat.
func resolveBoolConflict(s *State) (*State, string, bool) {
	if s.Status.Kind != ConflictBool {
		return nil, "", false
	}
	store := s.Env.Store
	c := s.Status.Conflict

	// 1. Empty conflict clause: Unsat.
	if c.Empty() {
		next := s.derive()
		next.Status = Status{Kind: Unsat}
		return next, "empty conflict clause: unsat", true
	}

	// 2. Discharge a literally-false constant literal.
	if c.Contains(store.Bool(false)) {
		next := s.derive()
		next.Status = Status{Kind: ConflictBool, Conflict: clause.Remove(c, store.Bool(false))}
		return next, "discharged constant false from conflict clause", true
	}

	// 3. Examine the top trail entry.
	e := s.Trail
	if e == nil {
		next := s.derive()
		next.Status = Status{Kind: Unsat}
		return next, "empty trail under conflict: unsat", true
	}

	switch e.Kind() {
	case trail.KindAxiom:
		next := s.derive()
		next.Trail = e.Next()
		return next, "consumed axiom entry", true

	case trail.KindEval:
		next := s.derive()
		next.Trail = e.Next()
		return next, "consumed theory-eval entry", true

	case trail.KindBCP:
		lit := e.Lit()
		notLit := store.Not_(lit)
		d := e.Cause()
		val := e.Value()
		switch {
		case val.IsBool() && !val.Bool() && d.Contains(notLit):
			resolved := clause.Union(clause.Remove(d, notLit), clause.Remove(c, lit))
			next := s.derive()
			next.Trail = e.Next()
			next.Status = Status{Kind: ConflictBool, Conflict: resolved}
			return next, "resolved against BCP cause on " + lit.String(), true
		case c.Contains(notLit):
			resolved := clause.Union(clause.Remove(d, lit), clause.Remove(c, notLit))
			next := s.derive()
			next.Trail = e.Next()
			next.Status = Status{Kind: ConflictBool, Conflict: resolved}
			return next, "resolved against BCP cause on " + notLit.String(), true
		default:
			next := s.derive()
			next.Trail = e.Next()
			return next, "consumed unrelated BCP entry", true
		}

	case trail.KindDecision:
		below := e.Next().Assignment()
		cPrime := clause.FilterFalse(below, c)
		switch cPrime.Len() {
		case 0:
			next := s.derive()
			next.Trail = e.Next()
			return next, "T-consumed decision entry", true
		case 1:
			next := withLearnedClause(s, c)
			next.Trail = e.Next()
			next.Status = Status{Kind: Searching}
			return next, "backjumped, learned " + c.String(), true
		case 2:
			chosen := pickSemanticCaseSplit(cPrime, e.Lit())
			next := withLearnedClause(s, c)
			next.Trail = trail.Cons(trail.KindDecision, nil, chosen, term.ValueTrue, e.Next())
			next.Status = Status{Kind: Searching}
			return next, "semantic case split, learned " + c.String(), true
		default:
			panicInternal("resolve_bool_conflict", "decision-filtered conflict clause has %d literals, expected 0..2", cPrime.Len())
			return nil, "", false
		}

	default:
		panicInternal("resolve_bool_conflict", "unknown trail entry kind")
		return nil, "", false
	}
}

// pickSemanticCaseSplit chooses, among the two surviving literals of a
// decision-level-filtered conflict clause, the one to assign true for
// the semantic case split branch of resolveBoolConflict (spec §4.9's
// "|c'|=2" case, which leaves "the chosen literal" unspecified). See
// DESIGN.md for the resolved Open Question: prefer the literal whose
// abs is not the popped decision's own literal, falling back to the
// first literal when both differ.
func pickSemanticCaseSplit(cPrime *clause.Clause, decisionLit *term.Term) *term.Term {
	lits := cPrime.Literals()
	for _, l := range lits {
		if term.Abs(l) != decisionLit {
			return l
		}
	}
	return lits[0]
}
