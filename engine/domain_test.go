package engine

import (
	"testing"

	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
)

func TestDomainForcedThenForbidIsConflict(t *testing.T) {
	s := term.NewStore()
	u := s.Types().Uninterpreted("U")
	a := s.App(s.DeclareVar("a", u), nil)
	b := s.App(s.DeclareVar("b", u), nil)
	c := s.App(s.DeclareVar("c", u), nil)

	vb := s.Value(u, 0)
	tr := trail.New(s)
	tr = trail.Cons(trail.KindDecision, nil, b, vb, tr)
	eqAB := s.Eq(a, b)
	tr = trail.Cons(trail.KindBCP, nil, eqAB, term.ValueTrue, tr) // forces a = vb

	vc := s.Value(u, 0)
	tr = trail.Cons(trail.KindDecision, nil, c, vc, tr)
	eqAC := s.Eq(a, c)
	tr = trail.Cons(trail.KindBCP, nil, s.Not_(eqAC), term.ValueTrue, tr) // forbids a = vc, but vc == vb

	dom := computeUFDomain(tr)
	entry, ok := dom[a]
	if !ok {
		t.Fatalf("expected a domain entry for a")
	}
	if entry.kind != domainConflictForbid {
		t.Fatalf("expected a ConflictForbid entry, got kind %d", entry.kind)
	}
}

func TestDomainForcedTwiceDifferentlyIsConflict(t *testing.T) {
	s := term.NewStore()
	u := s.Types().Uninterpreted("U")
	a := s.App(s.DeclareVar("a", u), nil)
	b := s.App(s.DeclareVar("b", u), nil)
	c := s.App(s.DeclareVar("c", u), nil)

	tr := trail.New(s)
	tr = trail.Cons(trail.KindDecision, nil, b, s.Value(u, 0), tr)
	tr = trail.Cons(trail.KindBCP, nil, s.Eq(a, b), term.ValueTrue, tr)
	tr = trail.Cons(trail.KindDecision, nil, c, s.Value(u, 1), tr)
	tr = trail.Cons(trail.KindBCP, nil, s.Eq(a, c), term.ValueTrue, tr)

	dom := computeUFDomain(tr)
	entry, ok := dom[a]
	if !ok || entry.kind != domainConflictForced2 {
		t.Fatalf("expected a ConflictForced2 entry for a")
	}
}

func TestDomainForbidThenForceDifferentValueIsFine(t *testing.T) {
	s := term.NewStore()
	u := s.Types().Uninterpreted("U")
	a := s.App(s.DeclareVar("a", u), nil)
	b := s.App(s.DeclareVar("b", u), nil)
	c := s.App(s.DeclareVar("c", u), nil)

	tr := trail.New(s)
	tr = trail.Cons(trail.KindDecision, nil, b, s.Value(u, 0), tr)
	tr = trail.Cons(trail.KindBCP, nil, s.Not_(s.Eq(a, b)), term.ValueTrue, tr) // forbid a=0
	tr = trail.Cons(trail.KindDecision, nil, c, s.Value(u, 1), tr)
	tr = trail.Cons(trail.KindBCP, nil, s.Eq(a, c), term.ValueTrue, tr) // force a=1, no conflict

	dom := computeUFDomain(tr)
	entry, ok := dom[a]
	if !ok || entry.kind != domainForced {
		t.Fatalf("expected a Forced entry for a, got %v", dom[a])
	}
	if !entry.forcedVal.Equal(s.Value(u, 1)) {
		t.Fatalf("expected a forced to value index 1")
	}
}
