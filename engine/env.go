package engine

import (
	"fmt"

	"github.com/crillab/mcsat-euf/term"
)

// Env is the declaration environment: the set of declared types and
// function symbols, keyed by name, in a single flat scope (spec §6:
// "Names must not shadow previously declared symbols within the same
// scope; re-declaration is an error").
type Env struct {
	Store *term.Store

	types map[string]*term.Type
	vars  map[string]*term.Var
}

// NewEnv creates an environment backed by store.
func NewEnv(store *term.Store) *Env {
	return &Env{
		Store: store,
		types: make(map[string]*term.Type),
		vars:  make(map[string]*term.Var),
	}
}

// DeclareType declares a fresh uninterpreted type named name. It is an
// error to redeclare a name already used for a type or a function.
func (e *Env) DeclareType(name string) (*term.Type, error) {
	if err := e.checkFresh(name); err != nil {
		return nil, err
	}
	t := e.Store.Types().Uninterpreted(name)
	e.types[name] = t
	return t, nil
}

// DeclareFun declares a fresh function symbol named name with type typ.
// It is an error to redeclare a name already used for a type or a
// function.
func (e *Env) DeclareFun(name string, typ *term.Type) (*term.Var, error) {
	if err := e.checkFresh(name); err != nil {
		return nil, err
	}
	v := e.Store.DeclareVar(name, typ)
	e.vars[name] = v
	return v, nil
}

func (e *Env) checkFresh(name string) error {
	if _, ok := e.types[name]; ok {
		return fmt.Errorf("engine: %q already declared as a type", name)
	}
	if _, ok := e.vars[name]; ok {
		return fmt.Errorf("engine: %q already declared as a function", name)
	}
	return nil
}

// LookupType returns the type declared under name, if any.
func (e *Env) LookupType(name string) (*term.Type, bool) {
	t, ok := e.types[name]
	return t, ok
}

// LookupFun returns the function symbol declared under name, if any.
func (e *Env) LookupFun(name string) (*term.Var, bool) {
	v, ok := e.vars[name]
	return v, ok
}
