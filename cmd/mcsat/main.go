package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/crillab/mcsat-euf/engine"
	"github.com/crillab/mcsat-euf/sexpr"
	"github.com/crillab/mcsat-euf/term"
)

func main() {
	var cfg Config
	flag.BoolVar(&cfg.Verbose, "verbose", false, "log every step's explanation to stderr")
	flag.BoolVar(&cfg.Interactive, "interactive", false, "prompt for a choice index instead of auto-resolving")
	flag.IntVar(&cfg.MaxSteps, "maxsteps", 1_000_000, "give up after this many Step calls")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax: %s [options] problem.sx\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err := run(cfg, flag.Args()[0]); err != nil {
		fmt.Fprintf(os.Stderr, "mcsat: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*engine.InternalError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	f, oerr := os.Open(path)
	if oerr != nil {
		return fmt.Errorf("could not open %q: %w", path, oerr)
	}
	defer f.Close()

	toks, lerr := sexpr.Lex(f)
	if lerr != nil {
		return lerr
	}
	prog, perr := sexpr.Parse(toks)
	if perr != nil {
		return perr
	}

	store := term.NewStore()
	env, clauses, eerr := sexpr.Elaborate(prog, store)
	if eerr != nil {
		return eerr
	}

	s := engine.New(env, clauses)
	for {
		next, expl, ok := engine.RemoveIf(s)
		if !ok {
			break
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "c %s\n", expl)
		}
		s = next
	}
	nOriginal := len(s.Clauses)
	for step := 0; step < cfg.MaxSteps; step++ {
		res := engine.Step(s)
		switch res.Kind {
		case engine.ResultOne:
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "c %s\n", res.Explanation)
			}
			s = res.State
		case engine.ResultChoice:
			s = resolveChoice(cfg, res.Choices)
		case engine.ResultDone:
			printVerdict(res.State, nOriginal)
			return nil
		case engine.ResultError:
			return res.Err
		}
	}
	return fmt.Errorf("exceeded -maxsteps=%d without reaching a verdict", cfg.MaxSteps)
}

func resolveChoice(cfg Config, alts []engine.Alternative) *engine.State {
	if cfg.Verbose {
		for i, a := range alts {
			fmt.Fprintf(os.Stderr, "c choice %d: %s\n", i+1, a.Explanation)
		}
	}
	if !cfg.Interactive {
		return alts[0].State
	}
	fmt.Fprintf(os.Stderr, "pick 1-%d: ", len(alts))
	var idx int
	if _, err := fmt.Scanln(&idx); err != nil || idx < 1 || idx > len(alts) {
		fmt.Fprintf(os.Stderr, "invalid choice, defaulting to 1\n")
		idx = 1
	}
	return alts[idx-1].State
}

func printVerdict(done *engine.State, nOriginal int) {
	switch done.Status.Kind {
	case engine.Sat:
		fmt.Println("sat")
		if model := engine.ModelString(done); model != "" {
			fmt.Println(model)
		}
	case engine.Unsat:
		fmt.Println("unsat")
		if log := engine.LearnedClausesString(done, nOriginal); log != "" {
			fmt.Println(log)
		}
	}
}
