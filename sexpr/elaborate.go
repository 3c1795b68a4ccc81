package sexpr

import (
	"fmt"

	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/engine"
	"github.com/crillab/mcsat-euf/term"
)

// Elaborate walks prog, declaring types and functions into a fresh
// Env (spec §6's no-shadowing/no-redeclaration rule is enforced by
// Env.DeclareType/DeclareFun themselves) and building the initial
// clause set from every (assert ...) statement.
func Elaborate(prog *Program, store *term.Store) (*engine.Env, []*clause.Clause, error) {
	env := engine.NewEnv(store)
	var clauses []*clause.Clause
	for _, stmt := range prog.Stmts {
		if stmt.IsAtm || len(stmt.List) == 0 {
			return nil, nil, &SyntaxError{Line: stmt.Line, Message: "expected a statement of the form (ty ...), (fun ...), or (assert ...)"}
		}
		head := stmt.List[0]
		if !head.IsAtm {
			return nil, nil, &SyntaxError{Line: stmt.Line, Message: "statement must begin with an atom"}
		}
		switch head.Atom {
		case "ty":
			if len(stmt.List) != 2 || !stmt.List[1].IsAtm {
				return nil, nil, &SyntaxError{Line: stmt.Line, Message: "(ty NAME) expects exactly one name"}
			}
			if _, err := env.DeclareType(stmt.List[1].Atom); err != nil {
				return nil, nil, &TypeError{Line: stmt.Line, Message: err.Error()}
			}
		case "fun":
			if len(stmt.List) != 3 || !stmt.List[1].IsAtm {
				return nil, nil, &SyntaxError{Line: stmt.Line, Message: "(fun NAME TYPE) expects a name and a type"}
			}
			typ, err := parseType(env, stmt.List[2])
			if err != nil {
				return nil, nil, err
			}
			if _, err := env.DeclareFun(stmt.List[1].Atom, typ); err != nil {
				return nil, nil, &TypeError{Line: stmt.Line, Message: err.Error()}
			}
		case "assert":
			if len(stmt.List) != 2 {
				return nil, nil, &SyntaxError{Line: stmt.Line, Message: "(assert CLAUSE) expects exactly one clause"}
			}
			c, err := parseClause(env, stmt.List[1])
			if err != nil {
				return nil, nil, err
			}
			clauses = append(clauses, c)
		default:
			return nil, nil, &SyntaxError{Line: stmt.Line, Message: fmt.Sprintf("unknown statement %q", head.Atom)}
		}
	}
	return env, clauses, nil
}

// parseType resolves a TYPE expression: "bool", "rat", a declared
// name, or (-> T1 ... Tn Tret).
func parseType(env *engine.Env, s *SExpr) (*term.Type, error) {
	if s.IsAtm {
		switch s.Atom {
		case "bool":
			return env.Store.Types().Bool(), nil
		case "rat":
			return env.Store.Types().Rat(), nil
		default:
			typ, ok := env.LookupType(s.Atom)
			if !ok {
				return nil, &TypeError{Line: s.Line, Message: fmt.Sprintf("undeclared type %q", s.Atom)}
			}
			return typ, nil
		}
	}
	if len(s.List) < 3 || !s.List[0].IsAtm || s.List[0].Atom != "->" {
		return nil, &SyntaxError{Line: s.Line, Message: "expected a type name or (-> T1 ... Tn Tret)"}
	}
	parts := make([]*term.Type, len(s.List)-1)
	for i, c := range s.List[1:] {
		t, err := parseType(env, c)
		if err != nil {
			return nil, err
		}
		parts[i] = t
	}
	args, ret := parts[:len(parts)-1], parts[len(parts)-1]
	return env.Store.Types().ArrowN(args, ret), nil
}

// parseTerm resolves a TERM expression: true/false, an identifier
// (nullary application), (= a b), (not t), (if c t e), or (f a1 ... an).
func parseTerm(env *engine.Env, s *SExpr) (*term.Term, error) {
	store := env.Store
	if s.IsAtm {
		switch s.Atom {
		case "true":
			return store.Bool(true), nil
		case "false":
			return store.Bool(false), nil
		default:
			return applyFun(env, s.Line, s.Atom, nil)
		}
	}
	if len(s.List) == 0 {
		return nil, &SyntaxError{Line: s.Line, Message: "empty term"}
	}
	head := s.List[0]
	if !head.IsAtm {
		return nil, &SyntaxError{Line: s.Line, Message: "term must begin with an atom"}
	}
	switch head.Atom {
	case "=":
		if len(s.List) != 3 {
			return nil, &SyntaxError{Line: s.Line, Message: "(= a b) expects exactly two operands"}
		}
		a, err := parseTerm(env, s.List[1])
		if err != nil {
			return nil, err
		}
		b, err := parseTerm(env, s.List[2])
		if err != nil {
			return nil, err
		}
		if a.Type() != b.Type() {
			return nil, &TypeError{Line: s.Line, Message: fmt.Sprintf("(= %s %s): operand types differ", a, b)}
		}
		return store.Eq(a, b), nil
	case "not":
		if len(s.List) != 2 {
			return nil, &SyntaxError{Line: s.Line, Message: "(not t) expects exactly one operand"}
		}
		t, err := parseTerm(env, s.List[1])
		if err != nil {
			return nil, err
		}
		if t.Type().Kind() != term.KBool {
			return nil, &TypeError{Line: s.Line, Message: fmt.Sprintf("(not %s): operand must be boolean", t)}
		}
		return store.Not_(t), nil
	case "if":
		if len(s.List) != 4 {
			return nil, &SyntaxError{Line: s.Line, Message: "(if c t e) expects exactly three operands"}
		}
		cond, err := parseTerm(env, s.List[1])
		if err != nil {
			return nil, err
		}
		then, err := parseTerm(env, s.List[2])
		if err != nil {
			return nil, err
		}
		els, err := parseTerm(env, s.List[3])
		if err != nil {
			return nil, err
		}
		if cond.Type().Kind() != term.KBool {
			return nil, &TypeError{Line: s.Line, Message: "(if c t e): condition must be boolean"}
		}
		if then.Type() != els.Type() {
			return nil, &TypeError{Line: s.Line, Message: "(if c t e): branches must share a type"}
		}
		return store.If_(cond, then, els), nil
	default:
		args := make([]*term.Term, len(s.List)-1)
		for i, c := range s.List[1:] {
			t, err := parseTerm(env, c)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return applyFun(env, s.Line, head.Atom, args)
	}
}

func applyFun(env *engine.Env, line int, name string, args []*term.Term) (*term.Term, error) {
	fn, ok := env.LookupFun(name)
	if !ok {
		return nil, &TypeError{Line: line, Message: fmt.Sprintf("undeclared function %q", name)}
	}
	argTypes, _ := term.Open(fn.Type())
	if len(args) != len(argTypes) {
		return nil, &TypeError{Line: line, Message: fmt.Sprintf("%q expects %d argument(s), got %d", name, len(argTypes), len(args))}
	}
	for i, a := range args {
		if a.Type() != argTypes[i] {
			return nil, &TypeError{Line: line, Message: fmt.Sprintf("%q argument %d: type mismatch", name, i+1)}
		}
	}
	return env.Store.App(fn, args), nil
}

// parseClause resolves a CLAUSE expression: a single term, or
// (or t1 ... tn).
func parseClause(env *engine.Env, s *SExpr) (*clause.Clause, error) {
	if !s.IsAtm && len(s.List) > 0 && s.List[0].IsAtm && s.List[0].Atom == "or" {
		lits := make([]*term.Term, len(s.List)-1)
		for i, c := range s.List[1:] {
			t, err := parseTerm(env, c)
			if err != nil {
				return nil, err
			}
			if t.Type().Kind() != term.KBool {
				return nil, &TypeError{Line: c.Line, Message: fmt.Sprintf("clause literal %s must be boolean", t)}
			}
			lits[i] = t
		}
		return clause.New(lits...), nil
	}
	t, err := parseTerm(env, s)
	if err != nil {
		return nil, err
	}
	if t.Type().Kind() != term.KBool {
		return nil, &TypeError{Line: s.Line, Message: fmt.Sprintf("clause %s must be boolean", t)}
	}
	return clause.New(t), nil
}
