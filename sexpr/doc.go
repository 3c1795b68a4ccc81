// Package sexpr reads the S-expression problem syntax: a top-level
// sequence of (ty NAME), (fun NAME TYPE), and (assert CLAUSE)
// statements, and elaborates it into a declaration environment and an
// initial clause set. It is the thin external collaborator that
// produces engine input; its own correctness is judged against the
// input grammar only, never against engine internals.
package sexpr
