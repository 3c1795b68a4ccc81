package trail

import (
	"testing"

	"github.com/crillab/mcsat-euf/term"
)

func TestAxiomEntry(t *testing.T) {
	s := term.NewStore()
	tr := New(s)
	if tr.Kind() != KindAxiom {
		t.Errorf("New() should produce the axiom entry")
	}
	if tr.Level() != 0 {
		t.Errorf("axiom entry should be at level 0")
	}
	v, ok := tr.Assignment().Get(s.Bool(true))
	if !ok || !v.IsBool() || !v.Bool() {
		t.Errorf("axiom entry should assign true to the Bool(true) term")
	}
}

func TestConsCoherence(t *testing.T) {
	s := term.NewStore()
	p := s.App(s.DeclareVar("p", s.Types().Bool()), nil)
	tr := Cons(KindDecision, nil, p, term.ValueTrue, New(s))

	a := tr.Assignment()
	v, ok := a.Get(p)
	if !ok || !v.IsBool() || !v.Bool() {
		t.Errorf("p should be assigned true")
	}
	notP := s.Not_(p)
	nv, ok := a.Get(notP)
	if !ok || nv.IsBool() != true || nv.Bool() != false {
		t.Errorf("not(p) should be assigned false for trail coherence")
	}
}

func TestConsNormalizesNegatedLiteral(t *testing.T) {
	s := term.NewStore()
	p := s.App(s.DeclareVar("p", s.Types().Bool()), nil)
	notP := s.Not_(p)
	tr := Cons(KindBCP, nil, notP, term.ValueTrue, New(s))

	if tr.Lit() != p {
		t.Errorf("Cons should normalize a negated literal to its positive form")
	}
	if tr.Value().Bool() != false {
		t.Errorf("Cons should flip the value when normalizing sign")
	}
}

func TestLevelIncreasesOnlyOnDecision(t *testing.T) {
	s := term.NewStore()
	p := s.App(s.DeclareVar("p", s.Types().Bool()), nil)
	q := s.App(s.DeclareVar("q", s.Types().Bool()), nil)
	tr := New(s)
	tr = Cons(KindDecision, nil, p, term.ValueTrue, tr)
	tr = Cons(KindBCP, nil, q, term.ValueTrue, tr)

	if tr.Level() != 1 {
		t.Errorf("BCP entry should stay at the enclosing decision's level, got %d", tr.Level())
	}
	if tr.Next().Level() != 1 {
		t.Errorf("decision entry itself should be at level 1")
	}
	if tr.Next().Next().Level() != 0 {
		t.Errorf("axiom entry should remain at level 0")
	}
}

func TestAssignmentInversionOnPop(t *testing.T) {
	s := term.NewStore()
	p := s.App(s.DeclareVar("p", s.Types().Bool()), nil)
	base := New(s)
	tr := Cons(KindDecision, nil, p, term.ValueTrue, base)

	if _, ok := tr.Next().Assignment().Get(p); ok {
		t.Errorf("popping the entry that assigned p should remove p from the assignment")
	}
}

func TestUnwindTillNextDecision(t *testing.T) {
	s := term.NewStore()
	p := s.App(s.DeclareVar("p", s.Types().Bool()), nil)
	q := s.App(s.DeclareVar("q", s.Types().Bool()), nil)
	r := s.App(s.DeclareVar("r", s.Types().Bool()), nil)

	tr := New(s)
	tr = Cons(KindDecision, nil, p, term.ValueTrue, tr)
	tr = Cons(KindBCP, nil, q, term.ValueTrue, tr)
	tr = Cons(KindDecision, nil, r, term.ValueTrue, tr)

	below := UnwindTillNextDecision(tr)
	if below.Lit() != q {
		t.Errorf("unwinding past the last decision should leave the BCP entry for q on top, got %s", below.Lit())
	}

	noDecision := UnwindTillNextDecision(New(s))
	if noDecision != nil {
		t.Errorf("unwinding a trail with no decision entries should return nil")
	}
}

func TestNilTrailIsSafe(t *testing.T) {
	var e *Entry
	if e.Level() != 0 {
		t.Errorf("nil trail level should be 0")
	}
	if e.Next() != nil {
		t.Errorf("nil trail Next() should be nil")
	}
	if len(e.Assignment()) != 0 {
		t.Errorf("nil trail assignment should be empty")
	}
}
