package term

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Kind discriminates the variants of Term.
type Kind uint8

const (
	// KindBool is a boolean constant.
	KindBool Kind = iota
	// KindNot is the negation of a boolean term.
	KindNot
	// KindEq is an equality between two same-typed terms, stored with
	// its operands canonically ordered by id.
	KindEq
	// KindApp is the application of a function symbol to arguments.
	KindApp
	// KindIf is the supplemental if-then-else term eliminated by
	// engine.RemoveIf (spec §3's optional extension, §4.12).
	KindIf
)

// Term is a hash-consed, well-typed term. Two Terms obtained from the
// same Store are pointer-equal iff they are structurally equal.
type Term struct {
	id   uint64
	kind Kind
	typ  *Type

	b    bool    // KindBool
	args []*Term // KindNot (len 1), KindEq (len 2), KindApp (len N), KindIf (len 3)
	fn   *Var    // KindApp
}

// ID returns the hash-cons identifier, stable for the owning Store's
// lifetime.
func (t *Term) ID() uint64 { return t.id }

// Kind returns the term's variant.
func (t *Term) Kind() Kind { return t.kind }

// Type returns the term's type.
func (t *Term) Type() *Type { return t.typ }

// BoolValue returns the boolean payload of a KindBool term.
func (t *Term) BoolValue() bool {
	if t.kind != KindBool {
		panic("term: BoolValue() on a non-constant term")
	}
	return t.b
}

// Sub returns the operand of a KindNot term.
func (t *Term) Sub() *Term {
	if t.kind != KindNot {
		panic("term: Sub() on a non-Not term")
	}
	return t.args[0]
}

// EqArgs returns the two operands of a KindEq term, in their
// canonical (smaller-id-first) order.
func (t *Term) EqArgs() (*Term, *Term) {
	if t.kind != KindEq {
		panic("term: EqArgs() on a non-Eq term")
	}
	return t.args[0], t.args[1]
}

// Fn returns the applied function symbol of a KindApp term.
func (t *Term) Fn() *Var {
	if t.kind != KindApp {
		panic("term: Fn() on a non-App term")
	}
	return t.fn
}

// Args returns the arguments of a KindApp term, or the three branches
// (cond, then, else) of a KindIf term.
func (t *Term) Args() []*Term {
	if t.kind != KindApp && t.kind != KindIf {
		panic("term: Args() on a term with no argument list")
	}
	return t.args
}

func (t *Term) String() string {
	switch t.kind {
	case KindBool:
		if t.b {
			return "true"
		}
		return "false"
	case KindNot:
		return fmt.Sprintf("(not %s)", t.args[0])
	case KindEq:
		return fmt.Sprintf("(= %s %s)", t.args[0], t.args[1])
	case KindApp:
		if len(t.args) == 0 {
			return t.fn.Name()
		}
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("(%s %s)", t.fn.Name(), strings.Join(parts, " "))
	case KindIf:
		return fmt.Sprintf("(if %s %s %s)", t.args[0], t.args[1], t.args[2])
	default:
		panic("term: invalid term kind")
	}
}

// Abs strips a leading Not, returning t's sole non-negated form. Abs
// of anything other than a KindNot term is the term itself.
func Abs(t *Term) *Term {
	if t.kind == KindNot {
		return t.args[0]
	}
	return t
}

// Sign reports false iff t's top constructor is Not or the boolean
// constant false; true otherwise. This is the one true definition of
// a literal's polarity used throughout the engine (spec §4.1).
func Sign(t *Term) bool {
	if t.kind == KindNot {
		return false
	}
	if t.kind == KindBool && !t.b {
		return false
	}
	return true
}

// Store owns the hash-cons tables for types and terms, and the
// memoized anonymous-value supply. A Store is not safe for concurrent
// use; per spec §5 an implementation localizes one per solver instance.
type Store struct {
	types  *TypeStore
	values *valueStore

	nextTermID uint64
	nextVarID  uint64
	buckets    map[uint64][]*Term

	trueTerm  *Term
	falseTerm *Term
}

// NewStore creates an empty term/type/value store.
func NewStore() *Store {
	s := &Store{
		types:   newTypeStore(),
		values:  newValueStore(),
		buckets: make(map[uint64][]*Term),
	}
	s.trueTerm = s.internBool(true)
	s.falseTerm = s.internBool(false)
	return s
}

// Types returns the store's type sub-store (Bool, Rat, Uninterpreted, Arrow).
func (s *Store) Types() *TypeStore { return s.types }

// Value returns the store's memoized anonymous value at index idx of
// type t.
func (s *Store) Value(t *Type, idx int) Value { return s.values.Unin(t, idx) }

// DeclareVar creates a fresh function symbol. Each call returns a
// distinct Var even if name/typ match a previous call: uniqueness of
// names within a scope is the caller's (sexpr.Elaborate's) concern,
// per spec §6.
func (s *Store) DeclareVar(name string, typ *Type) *Var {
	s.nextVarID++
	return &Var{id: s.nextVarID, name: name, typ: typ}
}

func hashKey(kind Kind, typ uint64, b bool, fn uint64, argIDs []uint64) uint64 {
	h := xxhash.New()
	var buf [8]byte
	putU64 := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	putU64(uint64(kind))
	putU64(typ)
	if b {
		putU64(1)
	} else {
		putU64(0)
	}
	putU64(fn)
	for _, id := range argIDs {
		putU64(id)
	}
	return h.Sum64()
}

func sameArgs(a, b []*Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Store) intern(kind Kind, typ *Type, b bool, fn *Var, args []*Term) *Term {
	var fnID uint64
	if fn != nil {
		fnID = fn.id
	}
	argIDs := make([]uint64, len(args))
	for i, a := range args {
		argIDs[i] = a.id
	}
	key := hashKey(kind, typ.id, b, fnID, argIDs)
	for _, cand := range s.buckets[key] {
		if cand.kind == kind && cand.typ == typ && cand.b == b && cand.fn == fn && sameArgs(cand.args, args) {
			return cand
		}
	}
	s.nextTermID++
	t := &Term{id: s.nextTermID, kind: kind, typ: typ, b: b, fn: fn, args: args}
	s.buckets[key] = append(s.buckets[key], t)
	return t
}

func (s *Store) internBool(b bool) *Term {
	return s.intern(KindBool, s.types.Bool(), b, nil, nil)
}

// Bool returns the hash-consed boolean constant term.
func (s *Store) Bool(b bool) *Term {
	if b {
		return s.trueTerm
	}
	return s.falseTerm
}

// Not_ builds the negation of t, folding double negation and boolean
// constants per spec §4.1. t must have Bool type.
func (s *Store) Not_(t *Term) *Term {
	if t.typ != s.types.Bool() {
		panic("term: Not_ on a non-boolean term")
	}
	switch t.kind {
	case KindBool:
		return s.Bool(!t.b)
	case KindNot:
		return t.args[0]
	default:
		return s.intern(KindNot, s.types.Bool(), false, nil, []*Term{t})
	}
}

// Eq builds an equality between a and b, requiring ty(a) = ty(b), and
// canonically orders the operands by id so that Eq(a,b) and Eq(b,a)
// hash-cons to the same term.
func (s *Store) Eq(a, b *Term) *Term {
	if a.typ != b.typ {
		panic("term: Eq on mismatched types")
	}
	if a.id > b.id {
		a, b = b, a
	}
	return s.intern(KindEq, s.types.Bool(), false, nil, []*Term{a, b})
}

// App builds the application of fn to args, validating arity and
// argument types against fn's declared arrow type.
func (s *Store) App(fn *Var, args []*Term) *Term {
	argTypes, ret := Open(fn.typ)
	if len(args) != len(argTypes) {
		panic(fmt.Sprintf("term: %s expects %d args, got %d", fn.Name(), len(argTypes), len(args)))
	}
	for i, a := range args {
		if a.typ != argTypes[i] {
			panic(fmt.Sprintf("term: %s arg %d: type mismatch", fn.Name(), i))
		}
	}
	cp := make([]*Term, len(args))
	copy(cp, args)
	return s.intern(KindApp, ret, false, fn, cp)
}

// If_ builds an if-then-else term: cond must be Bool-typed and then/els
// must share a type, which becomes the term's type.
func (s *Store) If_(cond, then, els *Term) *Term {
	if cond.typ != s.types.Bool() {
		panic("term: If_ condition must be boolean")
	}
	if then.typ != els.typ {
		panic("term: If_ branches must share a type")
	}
	return s.intern(KindIf, then.typ, false, nil, []*Term{cond, then, els})
}
