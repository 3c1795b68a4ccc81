package engine

import (
	"fmt"

	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
)

// StatusKind discriminates the variants of Status (spec §3).
type StatusKind uint8

const (
	// Searching is the default, "still exploring" status.
	Searching StatusKind = iota
	// Sat means the trail is a satisfying model.
	Sat
	// Unsat means the clause set has no model.
	Unsat
	// ConflictBool means a clause evaluates to false under the trail.
	ConflictBool
	// ConflictUF means the EUF domain or signature tables detected an
	// inconsistency.
	ConflictUF
)

func (k StatusKind) String() string {
	switch k {
	case Searching:
		return "SEARCHING"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	case ConflictBool:
		return "CONFLICT_BOOL"
	case ConflictUF:
		return "CONFLICT_UF"
	default:
		panic("engine: invalid status kind")
	}
}

// UFConflictKind discriminates the three shapes a Conflict_uf record
// can take (spec §3, §4.7).
type UFConflictKind uint8

const (
	// Forbid: a term was forced to a value another equality forbade.
	Forbid UFConflictKind = iota
	// Forced2: a term was forced to two distinct values.
	Forced2
	// Congruence: two applications of the same function disagree
	// in value despite equal arguments.
	Congruence
)

// UFConflict is the payload of a ConflictUF status (spec §4.5–§4.7).
type UFConflict struct {
	Kind UFConflictKind

	// Forbid / Forced2: the unassigned term the conflict is about.
	Term *term.Term

	// Forbid: lit_force forces Term to ForcedVal; lit_forbid forbids
	// Term from being ForbidVal, and ForcedVal = ForbidVal.
	ForceLit   *term.Term
	ForcedVal  term.Value
	ForbidLit  *term.Term
	ForbidVal  term.Value

	// Forced2: lit_v1 and lit_v2 force Term to two distinct values.
	Lit1, Lit2 *term.Term
	Val1, Val2 term.Value

	// Congruence.
	Fn         *term.Var
	T1, T2     *term.Term // current application, stored witness
}

// Status is the state's current standing (spec §3).
type Status struct {
	Kind     StatusKind
	Conflict *clause.Clause // ConflictBool
	UF       *UFConflict    // ConflictUF
}

func (s Status) String() string {
	switch s.Kind {
	case ConflictBool:
		return fmt.Sprintf("CONFLICT_BOOL(%s)", s.Conflict)
	case ConflictUF:
		return fmt.Sprintf("CONFLICT_UF(%d)", s.UF.Kind)
	default:
		return s.Kind.String()
	}
}
