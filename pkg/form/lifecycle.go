package form

import (
	"context"

	"github.com/dmitrymomot/bistro/pkg/statemachine"
	"github.com/dmitrymomot/bistro/pkg/validator"
)

// State is the decoration state of a field.
type State = statemachine.State

const (
	StatePristine State = "pristine"
	StateErrored  State = "errored"
	StateValid    State = "valid"
)

// Event is a user interaction that re-validates a field.
type Event = statemachine.Event

const (
	EventBlur   Event = "blur"
	EventInput  Event = "input"
	EventChange Event = "change"
	EventSubmit Event = "submit"
)

// ParseEvent maps an interaction name to an Event.
func ParseEvent(name string) (Event, bool) {
	switch e := Event(name); e {
	case EventBlur, EventInput, EventChange, EventSubmit:
		return e, true
	default:
		return "", false
	}
}

var allStates = []State{StatePristine, StateErrored, StateValid}

func isValid(_ context.Context, _ State, _ Event, data any) bool {
	res, _ := data.(validator.Result)
	return res.Valid
}

func isInvalid(ctx context.Context, s State, e Event, data any) bool {
	return !isValid(ctx, s, e, data)
}

// newFieldMachine wires the field transitions to presenter calls:
//
//	blur          any     -> Errored | Valid
//	input, change Errored -> Valid (only when the value now passes)
//	submit        any     -> Errored | Valid
func newFieldMachine(p Presenter, fieldID string, from State) *statemachine.Machine {
	show := func(_ context.Context, _, _ State, _ Event, data any) error {
		res, _ := data.(validator.Result)
		p.ShowError(fieldID, res.First())
		return nil
	}
	hide := func(context.Context, State, State, Event, any) error {
		p.ClearError(fieldID)
		return nil
	}

	return statemachine.MustNew(from,
		statemachine.WithTransitionFromAny(allStates, StateErrored, EventBlur,
			statemachine.WithGuard(isInvalid), statemachine.WithAction(show)),
		statemachine.WithTransitionFromAny(allStates, StateValid, EventBlur,
			statemachine.WithGuard(isValid), statemachine.WithAction(hide)),
		statemachine.WithTransition(StateErrored, StateValid, EventInput,
			statemachine.WithGuard(isValid), statemachine.WithAction(hide)),
		statemachine.WithTransition(StateErrored, StateValid, EventChange,
			statemachine.WithGuard(isValid), statemachine.WithAction(hide)),
		statemachine.WithTransitionFromAny(allStates, StateErrored, EventSubmit,
			statemachine.WithGuard(isInvalid), statemachine.WithAction(show)),
		statemachine.WithTransitionFromAny(allStates, StateValid, EventSubmit,
			statemachine.WithGuard(isValid), statemachine.WithAction(hide)),
	)
}

// Apply runs event for fieldID with the given validation result and returns
// the field's new state. Events with no matching transition leave the field
// untouched. Unknown fields are ignored and report an empty state.
func (d *Document) Apply(ctx context.Context, fieldID string, event Event, res validator.Result) (State, error) {
	fld := d.Field(fieldID)
	if fld == nil {
		return "", nil
	}
	if fld.State == "" {
		fld.State = StatePristine
	}

	m := newFieldMachine(d, fieldID, fld.State)
	err := m.Fire(ctx, event, res)
	switch {
	case err == nil:
	case statemachine.IsNoTransitionAvailableError(err), statemachine.IsTransitionRejectedError(err):
		return fld.State, nil
	default:
		return fld.State, err
	}

	fld.State = m.Current()
	return fld.State, nil
}
