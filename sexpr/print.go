package sexpr

import (
	"strings"

	"github.com/crillab/mcsat-euf/clause"
)

// PrintClause renders c as valid sexpr input: a single literal's
// String() is already legal TERM syntax, and two or more become
// (or l1 l2 ...), mirroring Clause.String() but guaranteed to parse
// back via Lex/Parse/parseClause.
func PrintClause(c *clause.Clause) string {
	lits := c.Literals()
	if len(lits) == 0 {
		return "(or)"
	}
	if len(lits) == 1 {
		return lits[0].String()
	}
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return "(or " + strings.Join(parts, " ") + ")"
}
