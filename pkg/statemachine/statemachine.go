package statemachine

import (
	"context"
	"fmt"
)

// State names a machine state.
type State string

// Event names something that can trigger a transition.
type Event string

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard decides whether a transition may be taken for the given data.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition defines a state change triggered by an event.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard  // all must pass
	Actions []Action // executed in order before the state change
}

// Machine holds the current state and the transition table.
type Machine struct {
	initial     State
	current     State
	transitions map[State]map[Event][]Transition
}

func newMachine(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[State]map[Event][]Transition),
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// AddTransition registers a transition. Registration order is the guard evaluation order.
func (m *Machine) AddTransition(t Transition) error {
	if t.From == "" || t.To == "" || t.Event == "" {
		return ErrInvalidTransition
	}
	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[Event][]Transition)
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
	return nil
}

// Fire triggers event. It returns *ErrNoTransitionAvailable when nothing is
// registered for the current state and event, and *ErrTransitionRejected when
// every candidate was blocked by a guard.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == "" {
		return ErrInvalidEvent
	}

	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return NewErrNoTransitionAvailable(m.current, event)
	}

	t, ok := m.pick(ctx, candidates, event, data)
	if !ok {
		return NewErrTransitionRejected(m.current, event)
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}

// CanFire reports whether Fire would take a transition.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	_, ok := m.pick(ctx, m.transitions[m.current][event], event, data)
	return ok
}

// Reset returns the machine to its initial state without running actions.
func (m *Machine) Reset() {
	m.current = m.initial
}

func (m *Machine) pick(ctx context.Context, candidates []Transition, event Event, data any) (Transition, bool) {
	for _, t := range candidates {
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return Transition{}, false
}
