package main

// Config holds the CLI's run-time options, populated by flag.Parse in
// main, in the shape of a small solver.Config struct rather than a
// CLI-framework context object (spec.md §1 excludes a CLI/visualizer
// from the design; the flag package is all the retrieved corpus's
// SAT/SMT front-ends use).
type Config struct {
	// Verbose logs every Step explanation to stderr.
	Verbose bool
	// Interactive prompts for a 1-based choice index on a Choice
	// result instead of auto-picking the first alternative.
	Interactive bool
	// MaxSteps bounds the number of Step calls before giving up, since
	// the core engine has no built-in termination bound beyond
	// Sat/Unsat.
	MaxSteps int
}
