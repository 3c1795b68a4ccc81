package engine

import (
	"testing"

	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
)

func TestStepTerminalStatesAreDone(t *testing.T) {
	s := term.NewStore()
	for _, kind := range []StatusKind{Sat, Unsat} {
		st := &State{Env: &Env{Store: s}, Status: Status{Kind: kind}}
		res := Step(st)
		if res.Kind != ResultDone {
			t.Errorf("Step on a %s state should return Done, got kind %d", kind, res.Kind)
		}
	}
}

func TestStepOffersChoiceWhenNoRuleIsDeterministic(t *testing.T) {
	s := term.NewStore()
	p := boolVar(s, "p")
	q := boolVar(s, "q")
	c := clause.New(p, q) // not a unit clause: BCP cannot fire yet
	st := New(&Env{Store: s}, []*clause.Clause{c})

	res := Step(st)
	if res.Kind != ResultChoice {
		t.Fatalf("deciding an undecided boolean should offer a Choice, got kind %d", res.Kind)
	}
	if len(res.Choices) != 2 {
		t.Fatalf("expected two alternatives, got %d", len(res.Choices))
	}
}

func TestStepPropagatesUnitClause(t *testing.T) {
	s := term.NewStore()
	p := boolVar(s, "p")
	c := clause.New(p)
	st := New(&Env{Store: s}, []*clause.Clause{c})

	res := Step(st)
	if res.Kind != ResultOne {
		t.Fatalf("a unit clause should propagate deterministically via BCP, got kind %d", res.Kind)
	}
	v, ok := res.State.Assignment().Get(p)
	if !ok || !v.Bool() {
		t.Errorf("p should be propagated to true")
	}
}

func TestStepEndToEndPAndNotPIsUnsat(t *testing.T) {
	s := term.NewStore()
	p := boolVar(s, "p")
	clauses := []*clause.Clause{clause.New(p), clause.New(s.Not_(p))}
	st := New(&Env{Store: s}, clauses)

	for i := 0; i < 100; i++ {
		res := Step(st)
		switch res.Kind {
		case ResultOne:
			st = res.State
		case ResultChoice:
			st = res.Choices[0].State
		case ResultDone:
			if res.State.Status.Kind != Unsat {
				t.Fatalf("expected Unsat, got %s", res.State.Status.Kind)
			}
			return
		case ResultError:
			t.Fatalf("unexpected error result: %v", res.Err)
		}
	}
	t.Fatalf("did not reach a terminal state within 100 steps")
}

func TestStepEndToEndPOrNotPIsSat(t *testing.T) {
	s := term.NewStore()
	p := boolVar(s, "p")
	clauses := []*clause.Clause{clause.New(p, s.Not_(p))}
	st := New(&Env{Store: s}, clauses)

	for i := 0; i < 100; i++ {
		res := Step(st)
		switch res.Kind {
		case ResultOne:
			st = res.State
		case ResultChoice:
			st = res.Choices[0].State
		case ResultDone:
			if res.State.Status.Kind != Sat {
				t.Fatalf("expected Sat, got %s", res.State.Status.Kind)
			}
			return
		case ResultError:
			t.Fatalf("unexpected error result: %v", res.Err)
		}
	}
	t.Fatalf("did not reach a terminal state within 100 steps")
}
