package engine

import (
	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
)

// otherSide returns the operand of equality literal eqLit that is not
// t (eqLit must be a KindEq term mentioning t on one side).
func otherSide(eqLit, t *term.Term) *term.Term {
	a, b := eqLit.EqArgs()
	if a == t {
		return b
	}
	if b == t {
		return a
	}
	panicInternal("mk_uf_lemma", "equality %s does not mention %s", eqLit, t)
	return nil
}

// mkUFLemma turns an EUF conflict into a learned propositional clause
// that is false under the current trail (spec §4.8). It panics with an
// *InternalError if the produced lemma is not in fact false under s's
// assignment, per spec §7 class 2 / §8 "Lemma soundness".
func mkUFLemma(s *State, uf *UFConflict) *clause.Clause {
	store := s.Env.Store
	var lemma *clause.Clause

	switch uf.Kind {
	case Forbid:
		t1 := otherSide(uf.ForbidLit, uf.Term)
		t2 := otherSide(uf.ForceLit, uf.Term)
		lemma = clause.New(
			store.Eq(t1, uf.Term),
			store.Not_(store.Eq(t2, uf.Term)),
			store.Not_(store.Eq(t1, t2)),
		)
	case Forced2:
		t1 := otherSide(uf.Lit1, uf.Term)
		t2 := otherSide(uf.Lit2, uf.Term)
		lemma = clause.New(
			store.Not_(store.Eq(t1, uf.Term)),
			store.Not_(store.Eq(t2, uf.Term)),
			store.Eq(t1, t2),
		)
	case Congruence:
		l1 := uf.T1.Args()
		l2 := uf.T2.Args()
		if len(l1) != len(l2) {
			panicInternal("mk_uf_lemma", "congruence arity mismatch")
		}
		hyps := make([]*term.Term, len(l1))
		for i := range l1 {
			hyps[i] = store.Not_(store.Eq(l1[i], l2[i]))
		}
		var conclusion []*term.Term
		if uf.T1.Type().Kind() == term.KBool {
			a := s.Assignment()
			t1True := clause.EvalTrue(a, uf.T1)
			t2True := clause.EvalTrue(a, uf.T2)
			switch {
			case t1True && !t2True:
				conclusion = []*term.Term{store.Not_(uf.T1), uf.T2}
			case t2True && !t1True:
				conclusion = []*term.Term{store.Not_(uf.T2), uf.T1}
			default:
				panicInternal("mk_uf_lemma", "boolean congruence terms do not disagree in truth value")
			}
		} else {
			conclusion = []*term.Term{store.Eq(uf.T1, uf.T2)}
		}
		lemma = clause.New(append(conclusion, hyps...)...)
	default:
		panicInternal("mk_uf_lemma", "unknown UF conflict kind %d", uf.Kind)
	}

	if !clause.EvalToFalse(s.Assignment(), lemma) {
		panicInternal("mk_uf_lemma", "lemma %s does not evaluate to false under the current trail", lemma)
	}
	return lemma
}
