package engine

import (
	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
)

// domainKind discriminates the value an unassigned term's domain entry
// carries (spec §4.5).
type domainKind uint8

const (
	domainForced domainKind = iota
	domainForbid
	domainConflictForced2
	domainConflictForbid
)

type forbidObs struct {
	val     term.Value
	witness *term.Term
}

// domainEntry is one unassigned term's accumulated domain constraint.
type domainEntry struct {
	kind domainKind

	// domainForced
	forcedVal term.Value
	forcedWit *term.Term

	// domainForbid
	forbidden []forbidObs

	// domainConflictForced2 / domainConflictForbid
	conflict *UFConflict
}

// computeUFDomain scans the trail's equality-literal entries and folds
// per-term forced/forbidden observations, per spec §4.5. Which sides
// are assigned is judged by the assignment at the top of the trail.
// Once a term's entry becomes a conflict variant, further observations
// about that term are ignored (absorbing).
func computeUFDomain(tr *trail.Entry) map[*term.Term]*domainEntry {
	result := make(map[*term.Term]*domainEntry)
	asg := tr.Assignment()
	for e := tr; e != nil; e = e.Next() {
		lit := e.Lit()
		if lit.Kind() != term.KindEq {
			continue
		}
		a, b := lit.EqArgs()
		va, oka := asg.Get(a)
		vb, okb := asg.Get(b)
		var unassigned, assignedSide *term.Term
		var assignedVal term.Value
		switch {
		case oka && !okb:
			unassigned, assignedSide, assignedVal = b, a, va
		case okb && !oka:
			unassigned, assignedSide, assignedVal = a, b, vb
		default:
			continue // both or neither assigned: nothing forced here
		}
		positive := e.Value().IsBool() && e.Value().Bool()
		observeDomain(result, unassigned, lit, assignedSide, assignedVal, positive)
	}
	return result
}

func observeDomain(result map[*term.Term]*domainEntry, t *term.Term, eqLit, other *term.Term, val term.Value, positive bool) {
	existing, ok := result[t]
	if ok && existing.kind == domainConflictForced2 || ok && existing.kind == domainConflictForbid {
		return // absorbing
	}
	if positive {
		observeForced(result, t, eqLit, val)
	} else {
		observeForbid(result, t, eqLit, val)
	}
}

func observeForced(result map[*term.Term]*domainEntry, t *term.Term, witness *term.Term, val term.Value) {
	existing, ok := result[t]
	if !ok {
		result[t] = &domainEntry{kind: domainForced, forcedVal: val, forcedWit: witness}
		return
	}
	switch existing.kind {
	case domainForced:
		if !existing.forcedVal.Equal(val) {
			result[t] = &domainEntry{
				kind: domainConflictForced2,
				conflict: &UFConflict{
					Kind: Forced2, Term: t,
					Lit1: existing.forcedWit, Val1: existing.forcedVal,
					Lit2: witness, Val2: val,
				},
			}
		}
	case domainForbid:
		for _, f := range existing.forbidden {
			if f.val.Equal(val) {
				result[t] = &domainEntry{
					kind: domainConflictForbid,
					conflict: &UFConflict{
						Kind: Forbid, Term: t,
						ForceLit: witness, ForcedVal: val,
						ForbidLit: f.witness, ForbidVal: f.val,
					},
				}
				return
			}
		}
		existing.kind = domainForced
		existing.forcedVal = val
		existing.forcedWit = witness
	}
}

func observeForbid(result map[*term.Term]*domainEntry, t *term.Term, witness *term.Term, val term.Value) {
	existing, ok := result[t]
	if !ok {
		result[t] = &domainEntry{kind: domainForbid, forbidden: []forbidObs{{val: val, witness: witness}}}
		return
	}
	switch existing.kind {
	case domainForbid:
		for _, f := range existing.forbidden {
			if f.val.Equal(val) {
				return
			}
		}
		existing.forbidden = append(existing.forbidden, forbidObs{val: val, witness: witness})
	case domainForced:
		if existing.forcedVal.Equal(val) {
			result[t] = &domainEntry{
				kind: domainConflictForbid,
				conflict: &UFConflict{
					Kind: Forbid, Term: t,
					ForceLit: existing.forcedWit, ForcedVal: existing.forcedVal,
					ForbidLit: witness, ForbidVal: val,
				},
			}
		}
	}
}
