/*
Package clause implements Clause, the set-of-literals disjunction
spec §3/§4.2 describe, and its semantic evaluation against a partial
Assignment: FilterFalse, AsUnit, and EvalToFalse.

A Clause never stores duplicate literals (it is backed by a
hashicorp/go-set Set of *term.Term, whose canonical hash-consed
pointers make pointer identity the right notion of set membership).
*/
package clause
