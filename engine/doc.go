/*
Package engine implements the MCSat-EUF transition system: State, the
EUF domain/signature bookkeeping derived from a trail, and every
transition rule (conflict detection, conflict resolution, boolean and
theory propagation, and decision), dispatched through the single Step
function per spec §4.4/§6. If-lifting (RemoveIf) is not dispatched by
Step; callers apply it to the initial state before the first Step.

No I/O happens in this package (spec §5). Callers drive the search by
repeatedly calling Step and acting on its Result: continue on One,
pick an Alternative on Choice, stop on Done, surface on Error.
*/
package engine
