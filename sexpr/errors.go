package sexpr

import "fmt"

// SyntaxError reports a malformed token stream: unbalanced
// parentheses, an empty list where a statement was expected, or
// similar (spec §7 class 1).
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sexpr: syntax error at line %d: %s", e.Line, e.Message)
}

// TypeError reports a well-formed but ill-typed or misdeclared
// program: unknown type/function names, arity mismatches, shadowing,
// or redeclaration (spec §6, §7 class 1).
type TypeError struct {
	Line    int
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("sexpr: type error at line %d: %s", e.Line, e.Message)
}
