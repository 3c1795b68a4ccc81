package clause

import (
	"strings"

	"github.com/crillab/mcsat-euf/term"
	set "github.com/hashicorp/go-set/v3"
)

// Clause is a set (unordered, duplicate-free) of boolean-typed terms,
// interpreted as their disjunction (spec §3).
type Clause struct {
	lits *set.Set[*term.Term]
}

// New builds a Clause from the given literals, deduplicating them.
func New(lits ...*term.Term) *Clause {
	s := set.New[*term.Term](len(lits))
	for _, l := range lits {
		if l.Type().Kind() != term.KBool {
			panic("clause: literal must be boolean-typed")
		}
		s.Insert(l)
	}
	return &Clause{lits: s}
}

// FromSlice builds a Clause from a slice of literals.
func FromSlice(lits []*term.Term) *Clause { return New(lits...) }

// Len returns the number of distinct literals in the clause.
func (c *Clause) Len() int { return c.lits.Size() }

// Empty reports whether the clause is the empty clause (⊥).
func (c *Clause) Empty() bool { return c.lits.Empty() }

// Literals returns the clause's literals in unspecified order.
func (c *Clause) Literals() []*term.Term { return c.lits.Slice() }

// Contains reports whether lit is one of the clause's literals.
func (c *Clause) Contains(lit *term.Term) bool { return c.lits.Contains(lit) }

// Union returns a new clause containing every literal of c and other.
func Union(c, other *Clause) *Clause {
	u := c.lits.Union(other.lits).(*set.Set[*term.Term])
	return &Clause{lits: u}
}

// Remove returns a new clause equal to c with lit removed, if present.
func Remove(c *Clause, lit *term.Term) *Clause {
	cp := c.lits.Copy()
	cp.Remove(lit)
	return &Clause{lits: cp}
}

// Add returns a new clause equal to c with lit added.
func Add(c *Clause, lit *term.Term) *Clause {
	cp := c.lits.Copy()
	cp.Insert(lit)
	return &Clause{lits: cp}
}

func (c *Clause) String() string {
	lits := c.lits.Slice()
	switch len(lits) {
	case 0:
		return "⊥"
	case 1:
		return lits[0].String()
	default:
		parts := make([]string, len(lits))
		for i, l := range lits {
			parts[i] = l.String()
		}
		return "(or " + strings.Join(parts, " ") + ")"
	}
}

// EvalFalse reports whether literal t evaluates to false under a.
// Per spec §4.2: either A(t) = Bool(false) directly, or (recursively,
// via semantic evaluation) t = Eq(a,b) with both sides assigned and
// unequal, or t = Not(u) with u evaluating to true.
func EvalFalse(a term.Assignment, t *term.Term) bool {
	if v, ok := a.Get(t); ok && v.IsBool() && !v.Bool() {
		return true
	}
	switch t.Kind() {
	case term.KindEq:
		x, y := t.EqArgs()
		vx, okx := a.Get(x)
		vy, oky := a.Get(y)
		if okx && oky {
			return !vx.Equal(vy)
		}
	case term.KindNot:
		return EvalTrue(a, t.Sub())
	}
	return false
}

// EvalTrue reports whether literal t evaluates to true under a, the
// mirror image of EvalFalse.
func EvalTrue(a term.Assignment, t *term.Term) bool {
	if v, ok := a.Get(t); ok && v.IsBool() && v.Bool() {
		return true
	}
	switch t.Kind() {
	case term.KindEq:
		x, y := t.EqArgs()
		vx, okx := a.Get(x)
		vy, oky := a.Get(y)
		if okx && oky {
			return vx.Equal(vy)
		}
	case term.KindNot:
		return EvalFalse(a, t.Sub())
	}
	return false
}

// FilterFalse returns a new clause containing only the literals of c
// that do not evaluate to false under a.
func FilterFalse(a term.Assignment, c *Clause) *Clause {
	kept := make([]*term.Term, 0, c.Len())
	for _, l := range c.Literals() {
		if !EvalFalse(a, l) {
			kept = append(kept, l)
		}
	}
	return New(kept...)
}

// AsUnit returns the unique remaining literal of c and true, if c has
// exactly one literal; otherwise it returns (nil, false).
func AsUnit(c *Clause) (*term.Term, bool) {
	if c.Len() != 1 {
		return nil, false
	}
	return c.Literals()[0], true
}

// EvalToFalse reports whether every literal of c evaluates to false
// under a (c is a falsified clause, i.e. a conflict).
func EvalToFalse(a term.Assignment, c *Clause) bool {
	for _, l := range c.Literals() {
		if !EvalFalse(a, l) {
			return false
		}
	}
	return true
}
