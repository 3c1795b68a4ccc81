package engine

// ResultKind discriminates the four shapes Step can return (spec §6
// "Driver interface", §9 "Avoid introducing coroutines").
type ResultKind uint8

const (
	// ResultOne is a single deterministic successor.
	ResultOne ResultKind = iota
	// ResultChoice is a nondeterministic choice among successors.
	ResultChoice
	// ResultDone means the state is terminal (Sat or Unsat).
	ResultDone
	// ResultError means a caller-facing error occurred (never used for
	// internal invariant violations, which panic instead per spec §7).
	ResultError
)

// Result is the tagged return value of Step.
type Result struct {
	Kind        ResultKind
	State       *State        // ResultOne, ResultDone
	Explanation string        // ResultOne, ResultDone
	Choices     []Alternative // ResultChoice
	Err         error         // ResultError
}

// Step applies the first applicable rule to s, per the priority order
// of spec §4.4:
//
//  1. terminal check
//  2. conflict resolution (resolve_bool_conflict, solve_uf_domain_conflict)
//  3. conflict detection (only while Searching)
//  4. propagation (only while Searching)
//  5. decision (only while Searching)
func Step(s *State) Result {
	// 1. Terminal check.
	switch s.Status.Kind {
	case Sat, Unsat:
		return Result{Kind: ResultDone, State: s, Explanation: "done: " + s.Status.Kind.String()}
	}

	// 2. Conflict resolution.
	if s.Status.Kind == ConflictBool {
		if next, expl, ok := resolveBoolConflict(s); ok {
			return oneOrDone(next, expl)
		}
	}
	if s.Status.Kind == ConflictUF {
		if next, expl, ok := solveUFConflict(s); ok {
			return oneOrDone(next, expl)
		}
	}

	if s.Status.Kind == Searching {
		// 3. Conflict detection.
		if next, expl, ok := findFalseClause(s); ok {
			return oneOrDone(next, expl)
		}
		if next, expl, ok := findUFDomainConflict(s); ok {
			return oneOrDone(next, expl)
		}
		if next, expl, ok := findCongruenceConflict(s); ok {
			return oneOrDone(next, expl)
		}

		// 4. Propagation.
		if next, expl, ok := propagateBCP(s); ok {
			return oneOrDone(next, expl)
		}
		if next, expl, ok := propagateUFEq(s); ok {
			return oneOrDone(next, expl)
		}

		// 5. Decision.
		alts, _, ok := decide(s)
		if ok {
			if len(alts) == 1 {
				return oneOrDone(alts[0].State, alts[0].Explanation)
			}
			return Result{Kind: ResultChoice, Choices: alts}
		}
	}

	return Result{Kind: ResultError, Err: errNoRuleApplicable}
}

func oneOrDone(next *State, expl string) Result {
	switch next.Status.Kind {
	case Sat, Unsat:
		return Result{Kind: ResultDone, State: next, Explanation: expl}
	default:
		return Result{Kind: ResultOne, State: next, Explanation: expl}
	}
}
