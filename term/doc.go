/*
Package term implements the hash-consed data model the MCSat-EUF engine
reasons over: types, typed function symbols, domain values, and the
terms built from them.

Every Type and every Term is hash-consed through a Store: two requests
for the structurally identical type or term return the exact same
pointer, so structural equality reduces to a pointer comparison. Values
are memoized per type as well, so that two requests for anonymous value
index i of a given uninterpreted type return the same Value.

The only entry points that construct terms are the smart constructors on
Store (Eq, Not_, App, If_, Bool) and the Value supply (Store.Value and
the ValueTrue/ValueFalse constants). Callers should never build a Term or Value literal by hand; doing
so bypasses canonicalization and breaks the id-equal-iff-structurally-
equal invariant the rest of the engine relies on.
*/
package term
