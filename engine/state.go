package engine

import (
	"sync"

	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
	set "github.com/hashicorp/go-set/v3"
)

// State bundles the environment, clause set, trail, if-lifting
// substitution, and status, plus lazily-derived, memoized projections
// (spec §3, §5). A State is never mutated after construction; every
// rule produces a new State value.
type State struct {
	Env     *Env
	Clauses []*clause.Clause
	Trail   *trail.Entry
	Subst   map[*term.Term]*term.Term // if-lifting: original term -> fresh const
	Status  Status

	allVarsOnce sync.Once
	allVars     *set.Set[*term.Term]

	toDecideOnce sync.Once
	toDecide     *set.Set[*term.Term]

	domainOnce sync.Once
	domain     map[*term.Term]*domainEntry

	sigsOnce sync.Once
	sigs     map[string]*sigEntry
}

// New builds the initial searching state for a freshly-elaborated
// problem: an empty trail and the given clause set.
func New(env *Env, clauses []*clause.Clause) *State {
	return &State{
		Env:     env,
		Clauses: clauses,
		Trail:   trail.New(env.Store),
		Subst:   map[*term.Term]*term.Term{},
		Status:  Status{Kind: Searching},
	}
}

// derive returns a shallow copy of s with every memoized projection
// reset, for use as the basis of a successor state that changes
// Clauses/Trail/Subst/Status. Callers set the fields they change on
// the returned State before using it.
func (s *State) derive() *State {
	return &State{
		Env:     s.Env,
		Clauses: s.Clauses,
		Trail:   s.Trail,
		Subst:   s.Subst,
		Status:  s.Status,
	}
}

// Assignment returns the cumulative assignment at the top of the
// trail.
func (s *State) Assignment() term.Assignment { return s.Trail.Assignment() }

// AllVars returns abs(subterm) of every subterm of every literal in
// every clause (spec §3): the full set of positions the decide rule
// may ever need to assign.
func (s *State) AllVars() *set.Set[*term.Term] {
	s.allVarsOnce.Do(func() {
		acc := set.New[*term.Term](64)
		for _, c := range s.Clauses {
			for _, lit := range c.Literals() {
				collectSubterms(lit, acc)
			}
		}
		s.allVars = acc
	})
	return s.allVars
}

func collectSubterms(t *term.Term, acc *set.Set[*term.Term]) {
	a := term.Abs(t)
	if acc.Contains(a) {
		return
	}
	acc.Insert(a)
	switch a.Kind() {
	case term.KindEq:
		x, y := a.EqArgs()
		collectSubterms(x, acc)
		collectSubterms(y, acc)
	case term.KindApp, term.KindIf:
		for _, arg := range a.Args() {
			collectSubterms(arg, acc)
		}
	}
}

// ToDecide returns AllVars minus the abs of every term mentioned in
// the trail (spec §3).
func (s *State) ToDecide() *set.Set[*term.Term] {
	s.toDecideOnce.Do(func() {
		assigned := set.New[*term.Term](32)
		for e := s.Trail; e != nil; e = e.Next() {
			assigned.Insert(e.Lit())
		}
		s.toDecide = s.AllVars().Difference(assigned).(*set.Set[*term.Term])
	})
	return s.toDecide
}

// UFDomain returns the per-term forced/forbidden domain table derived
// from the trail (spec §4.5).
func (s *State) UFDomain() map[*term.Term]*domainEntry {
	s.domainOnce.Do(func() {
		s.domain = computeUFDomain(s.Trail)
	})
	return s.domain
}

// UFSigs returns the (f, value-tuple) -> (value, witness) congruence
// table derived from the trail (spec §4.6).
func (s *State) UFSigs() map[string]*sigEntry {
	s.sigsOnce.Do(func() {
		s.sigs = computeUFSigs(s.Trail)
	})
	return s.sigs
}
