// Package statemachine implements a small finite state machine keyed by
// string states and events.
//
// Transitions are looked up by (from, event). Several transitions may share
// the same key; the first one whose guards all pass is taken, which lets a
// single event branch on runtime data:
//
//	m := statemachine.MustNew(Pristine,
//		statemachine.WithTransition(Pristine, Errored, Blur, statemachine.WithGuard(invalid)),
//		statemachine.WithTransition(Pristine, Valid, Blur, statemachine.WithGuard(valid)),
//	)
//	err := m.Fire(ctx, Blur, result)
//
// Actions run in order before the state changes; an action error aborts the
// transition. A Machine is not safe for concurrent use.
package statemachine
