package engine

import (
	"fmt"
	"strings"

	"github.com/crillab/mcsat-euf/term"
	"github.com/crillab/mcsat-euf/trail"
)

// sigEntry is the value of the (f, value-tuple) -> (value, witness)
// congruence table (spec §4.6).
type sigEntry struct {
	val     term.Value
	witness *term.Term
}

func sigKey(fn *term.Var, args []term.Value) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", fn.ID())
	for _, v := range args {
		b.WriteByte('|')
		b.WriteString(v.String())
	}
	return b.String()
}

// computeUFSigs scans trail entries whose literal is App(f, args) with
// every arg assigned, and maps (f, assigned-arg-values) to (assigned
// value of the application, the application term itself). Last writer
// wins (spec §4.6: "acceptable because later checks reconcile arbitrary
// pairs"): the trail is walked newest-first, so the first entry seen
// for a given key is the one that stays.
func computeUFSigs(tr *trail.Entry) map[string]*sigEntry {
	result := make(map[string]*sigEntry)
	for e := tr; e != nil; e = e.Next() {
		lit := e.Lit()
		if lit.Kind() != term.KindApp {
			continue
		}
		args := lit.Args()
		vals := make([]term.Value, len(args))
		allAssigned := true
		for i, a := range args {
			v, ok := e.Assignment().Get(a)
			if !ok {
				allAssigned = false
				break
			}
			vals[i] = v
		}
		if !allAssigned {
			continue
		}
		key := sigKey(lit.Fn(), vals)
		if _, seen := result[key]; seen {
			continue
		}
		result[key] = &sigEntry{val: e.Value(), witness: lit}
	}
	return result
}
