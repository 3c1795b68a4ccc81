package engine

import (
	"sort"

	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
)

// Alternative is one nondeterministic successor exposed by a Choice
// result (spec §9 "Nondeterminism (Choice)").
type Alternative struct {
	State       *State
	Explanation string
}

// decide implements spec §4.11. If no variable remains to decide, the
// state becomes Sat. Otherwise it picks the lowest-id candidate (for
// reproducible, deterministic driving) and either exposes the two
// boolean alternatives or deterministically assigns the value the UF
// domain table forces/permits for a non-boolean candidate.
func decide(s *State) ([]Alternative, string, bool) {
	candidates := s.ToDecide().Slice()
	if len(candidates) == 0 {
		next := s.derive()
		next.Status = Status{Kind: Sat}
		return []Alternative{{State: next, Explanation: "no variables left to decide: sat"}}, "", true
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID() < candidates[j].ID() })
	x := candidates[0]

	if x.Type().Kind() == term.KBool {
		trueState := s.derive()
		trueState.Trail = trail.Cons(trail.KindDecision, nil, x, term.ValueTrue, s.Trail)
		falseState := s.derive()
		falseState.Trail = trail.Cons(trail.KindDecision, nil, x, term.ValueFalse, s.Trail)
		return []Alternative{
			{State: trueState, Explanation: "decide " + x.String() + " = true"},
			{State: falseState, Explanation: "decide " + x.String() + " = false"},
		}, "", true
	}

	val := pickUFValue(s, x)
	next := s.derive()
	next.Trail = trail.Cons(trail.KindDecision, nil, x, val, s.Trail)
	return []Alternative{{State: next, Explanation: "decide " + x.String() + " = " + val.String()}}, "", true
}

// pickUFValue implements spec §4.11's non-boolean branch: absent ->
// anonymous value index 0; Forced(v) -> v; Forbid(list) -> the
// smallest-index anonymous value not in list.
func pickUFValue(s *State, x *term.Term) term.Value {
	store := s.Env.Store
	d, ok := s.UFDomain()[x]
	if !ok {
		return store.Value(x.Type(), 0)
	}
	switch d.kind {
	case domainForced:
		return d.forcedVal
	case domainForbid:
		idx := 0
		for {
			candidate := store.Value(x.Type(), idx)
			if !forbids(d.forbidden, candidate) {
				return candidate
			}
			idx++
		}
	default:
		panicInternal("decide", "uf_domain entry for %s is a conflict; decide must not run under a UF conflict", x)
		return term.Value{}
	}
}

func forbids(list []forbidObs, v term.Value) bool {
	for _, f := range list {
		if f.val.Equal(v) {
			return true
		}
	}
	return false
}
