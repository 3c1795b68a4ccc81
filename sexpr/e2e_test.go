package sexpr

import (
	"strings"
	"testing"

	"github.com/crillab/mcsat-euf/engine"
	"github.com/crillab/mcsat-euf/term"
)

// runToVerdict drives src through Lex/Parse/Elaborate and then steps
// the engine, always taking the first alternative at a Choice, until a
// terminal verdict is reached or maxSteps is exceeded.
func runToVerdict(t *testing.T, src string, maxSteps int) engine.StatusKind {
	t.Helper()
	toks, err := Lex(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	prog, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	store := term.NewStore()
	env, clauses, err := Elaborate(prog, store)
	if err != nil {
		t.Fatalf("Elaborate: %v", err)
	}
	st := engine.New(env, clauses)
	for i := 0; i < maxSteps; i++ {
		res := engine.Step(st)
		switch res.Kind {
		case engine.ResultOne:
			st = res.State
		case engine.ResultChoice:
			st = res.Choices[0].State
		case engine.ResultDone:
			return res.State.Status.Kind
		case engine.ResultError:
			t.Fatalf("unexpected error result: %v", res.Err)
		}
	}
	t.Fatalf("did not reach a terminal state within %d steps", maxSteps)
	return 0
}

func TestEndToEndDirectEqualityContradictionIsUnsat(t *testing.T) {
	got := runToVerdict(t, `
		(ty U) (fun a U) (fun b U)
		(assert (= a b))
		(assert (not (= a b)))
	`, 200)
	if got != engine.Unsat {
		t.Errorf("expected Unsat, got %s", got)
	}
}

func TestEndToEndTransitivityContradictionIsUnsat(t *testing.T) {
	got := runToVerdict(t, `
		(ty U) (fun a U) (fun b U) (fun c U)
		(assert (= a b))
		(assert (= b c))
		(assert (not (= a c)))
	`, 200)
	if got != engine.Unsat {
		t.Errorf("expected Unsat, got %s", got)
	}
}

func TestEndToEndCongruenceContradictionIsUnsat(t *testing.T) {
	got := runToVerdict(t, `
		(ty U) (fun f (-> U U)) (fun a U) (fun b U)
		(assert (= a b))
		(assert (not (= (f a) (f b))))
	`, 200)
	if got != engine.Unsat {
		t.Errorf("expected Unsat, got %s", got)
	}
}

func TestEndToEndPureBooleanResolutionIsUnsat(t *testing.T) {
	got := runToVerdict(t, `
		(fun p bool) (fun q bool)
		(assert (or p q))
		(assert (or (not p) q))
		(assert (not q))
	`, 200)
	if got != engine.Unsat {
		t.Errorf("expected Unsat, got %s", got)
	}
}

func TestEndToEndBooleanTautologyIsSat(t *testing.T) {
	got := runToVerdict(t, "(fun p bool) (assert (or p (not p)))", 200)
	if got != engine.Sat {
		t.Errorf("expected Sat, got %s", got)
	}
}

func TestEndToEndEqualityTautologyIsSat(t *testing.T) {
	got := runToVerdict(t, `
		(ty U) (fun a U) (fun b U)
		(assert (or (= a b) (not (= a b))))
	`, 200)
	if got != engine.Sat {
		t.Errorf("expected Sat, got %s", got)
	}
}
