package engine

import (
	"fmt"

	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
)

// substitute rebuilds t with every occurrence of from replaced by to,
// rebuilding ancestors bottom-up through the store's smart
// constructors so the result stays hash-consed.
func substitute(store *term.Store, t, from, to *term.Term) *term.Term {
	if t == from {
		return to
	}
	switch t.Kind() {
	case term.KindNot:
		sub := substitute(store, t.Sub(), from, to)
		if sub == t.Sub() {
			return t
		}
		return store.Not_(sub)
	case term.KindEq:
		a, b := t.EqArgs()
		na := substitute(store, a, from, to)
		nb := substitute(store, b, from, to)
		if na == a && nb == b {
			return t
		}
		return store.Eq(na, nb)
	case term.KindApp:
		args := t.Args()
		newArgs := make([]*term.Term, len(args))
		changed := false
		for i, a := range args {
			na := substitute(store, a, from, to)
			newArgs[i] = na
			if na != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return store.App(t.Fn(), newArgs)
	case term.KindIf:
		args := t.Args()
		cond := substitute(store, args[0], from, to)
		then := substitute(store, args[1], from, to)
		els := substitute(store, args[2], from, to)
		if cond == args[0] && then == args[1] && els == args[2] {
			return t
		}
		return store.If_(cond, then, els)
	default: // KindBool
		return t
	}
}

// findIfTerm returns some If(...) term occurring among s.AllVars, or
// nil if none remain.
func findIfTerm(s *State) *term.Term {
	for _, v := range s.AllVars().Slice() {
		if v.Kind() == term.KindIf {
			return v
		}
	}
	return nil
}

// RemoveIf implements spec §4.12's remove_ifs rule for one occurrence:
// mints a fresh constant of t's type, rewrites the clause set and
// trail replacing t by it, adds the two defining clauses, and records
// the substitution. Returns (nil, "", false) if no If term remains.
func RemoveIf(s *State) (*State, string, bool) {
	t := findIfTerm(s)
	if t == nil {
		return nil, "", false
	}
	store := s.Env.Store
	args := t.Args()
	cond, then, els := args[0], args[1], args[2]

	u := store.App(store.DeclareVar(fmt.Sprintf("$ite%d", t.ID()), t.Type()), nil)

	newClauses := make([]*clause.Clause, len(s.Clauses))
	for i, c := range s.Clauses {
		lits := c.Literals()
		newLits := make([]*term.Term, len(lits))
		for j, l := range lits {
			newLits[j] = substitute(store, l, t, u)
		}
		newClauses[i] = clause.New(newLits...)
	}
	newClauses = append(newClauses,
		clause.New(store.Not_(cond), store.Eq(u, then)),
		clause.New(cond, store.Eq(u, els)),
	)

	newTrail := rewriteTrail(store, s.Trail, t, u)

	next := s.derive()
	next.Clauses = newClauses
	next.Trail = newTrail
	subst := make(map[*term.Term]*term.Term, len(s.Subst)+1)
	for k, v := range s.Subst {
		subst[k] = v
	}
	subst[t] = u
	next.Subst = subst
	return next, fmt.Sprintf("lifted %s to fresh constant %s", t, u), true
}

// rewriteTrail rebuilds the trail bottom-up with every literal
// substituted, preserving kind/value/level structure. Used only by
// if-lifting, which in practice runs before search begins (the trail
// is then just the axiom entry), but implemented generally.
func rewriteTrail(store *term.Store, tr *trail.Entry, from, to *term.Term) *trail.Entry {
	if tr == nil {
		return nil
	}
	if tr.Kind() == trail.KindAxiom {
		return tr
	}
	below := rewriteTrail(store, tr.Next(), from, to)
	newLit := substitute(store, tr.Lit(), from, to)
	return trail.Cons(tr.Kind(), tr.Cause(), newLit, tr.Value(), below)
}
