package trail

import (
	"sync"

	"github.com/crillab/mcsat-euf/clause"
	"github.com/crillab/mcsat-euf/term"
)

// Kind discriminates the cause of a trail entry.
type Kind uint8

const (
	// KindAxiom is the one entry present in every trail: true ↦ Bool(true)
	// at level 0 (spec §3, Trail invariant iii).
	KindAxiom Kind = iota
	// KindDecision is a nondeterministic choice made by the decide rule.
	KindDecision
	// KindBCP is a boolean-constraint-propagated literal, caused by the
	// clause that forced it.
	KindBCP
	// KindEval is a theory-evaluated literal (propagate_uf_eq).
	KindEval
)

// Entry is one link of a Trail: the assignment it records, the rule
// that produced it, and (for KindBCP) the clause that forced it.
type Entry struct {
	kind  Kind
	cause *clause.Clause // KindBCP
	lit   *term.Term     // always stored in positive form
	val   term.Value
	next  *Entry
	level int
	store *term.Store // owning store, needed to compute not(lit) for coherence

	once       sync.Once
	assignment term.Assignment
}

// Kind returns the entry's cause.
func (e *Entry) Kind() Kind { return e.kind }

// Cause returns the clause that forced a KindBCP entry.
func (e *Entry) Cause() *clause.Clause { return e.cause }

// Lit returns the entry's literal, always in positive (non-Not) form.
func (e *Entry) Lit() *term.Term { return e.lit }

// Value returns the value assigned to Lit.
func (e *Entry) Value() term.Value { return e.val }

// Next returns the trail below this entry (the older entries), or nil
// if e is itself nil or the axiom entry.
func (e *Entry) Next() *Entry {
	if e == nil {
		return nil
	}
	return e.next
}

// Level returns the entry's decision level: the number of Decision
// entries at or below it. A nil trail (no entries at all) is level 0.
func (e *Entry) Level() int {
	if e == nil {
		return 0
	}
	return e.level
}

// Assignment returns the cumulative assignment at this entry,
// including it and everything below it. Computed once and cached. A
// nil trail has the empty assignment.
func (e *Entry) Assignment() term.Assignment {
	if e == nil {
		return term.Assignment{}
	}
	e.once.Do(func() {
		var base term.Assignment
		if e.next != nil {
			base = e.next.Assignment()
		}
		a := make(term.Assignment, len(base)+2)
		for k, v := range base {
			a[k] = v
		}
		a[e.lit] = e.val
		if e.lit.Type().Kind() == term.KBool {
			a[e.store.Not_(e.lit)] = e.val.Not()
		}
		e.assignment = a
	})
	return e.assignment
}

// New returns the empty trail: just the axiomatic true ↦ Bool(true)
// entry at level 0 (spec §3, Trail invariant iii).
func New(store *term.Store) *Entry {
	trueTerm := store.Bool(true)
	e := &Entry{kind: KindAxiom, lit: trueTerm, val: term.ValueTrue, level: 0, store: store}
	e.once.Do(func() {
		e.assignment = term.Assignment{trueTerm: term.ValueTrue}
	})
	return e
}

// Cons normalizes lit's sign (pushing a negated literal as (not_lit,
// not_value) instead, per spec §3 invariant i), then appends a new
// entry on top of next.
func Cons(kind Kind, cause *clause.Clause, lit *term.Term, val term.Value, next *Entry) *Entry {
	store := next.store
	if lit.Kind() == term.KindNot {
		lit = lit.Sub()
		val = val.Not()
	}
	level := next.Level()
	if kind == KindDecision {
		level++
	}
	return &Entry{kind: kind, cause: cause, lit: lit, val: val, next: next, level: level, store: store}
}

// UnwindTillNextDecision pops entries until the most recent Decision
// entry is consumed, returning the trail below it. Returns nil if no
// Decision entry remains (spec §4.3).
func UnwindTillNextDecision(tr *Entry) *Entry {
	for tr != nil {
		e := tr
		tr = tr.next
		if e.kind == KindDecision {
			return tr
		}
	}
	return nil
}
