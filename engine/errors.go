package engine

import (
	"errors"
	"fmt"
)

// errNoRuleApplicable is returned by Step when the state is Searching
// (or under an unresolved conflict) but none of the priority-ordered
// rule groups found anything to do. Reaching it signals a gap in rule
// coverage rather than a legitimate terminal state; Sat/Unsat are
// reported through ResultDone instead.
var errNoRuleApplicable = errors.New("engine: no applicable rule for current state")

// InternalError reports a violated engine invariant: a programmer
// error (spec §7 class 2), never a recoverable condition. The driver
// does not catch these; only a caller at the process boundary (the
// cmd/mcsat CLI) recovers and reports them, mirroring the teacher's
// own bare panic("...") calls for the same class of error but giving
// the payload a type callers can errors.As against.
type InternalError struct {
	Rule    string
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("engine: internal error in %s: %s", e.Rule, e.Message)
}

func panicInternal(rule, format string, args ...interface{}) {
	panic(&InternalError{Rule: rule, Message: fmt.Sprintf(format, args...)})
}
