/*
Package trail implements Trail, the persistent, chronological log of
assignments with decision levels spec §3/§4.3 describe.

A Trail is represented as a linked list of Entry values, youngest
entry first; popping is simply following the Next pointer, so the
trail "at level k" or "below some decision" is a value, not a
mutation, and can be shared freely between states (spec §5: "state is
immutable by contract"). Level and the cumulative Assignment are
derived fields, computed once and cached on the Entry.
*/
package trail
