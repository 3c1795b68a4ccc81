package term

// Assignment is a partial mapping from terms to values. Per spec §3's
// coherence invariant, whenever a boolean term t is present with value
// Bool(b), not(t) is also present with value Bool(!b); the trail
// package's Entry.Assignment is the single place that invariant is
// established and maintained.
type Assignment map[*Term]Value

// Get returns the value assigned to t and whether it is assigned.
func (a Assignment) Get(t *Term) (Value, bool) {
	v, ok := a[t]
	return v, ok
}
