package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bistro/pkg/statemachine"
)

const (
	draft     = statemachine.State("draft")
	review    = statemachine.State("review")
	published = statemachine.State("published")
	rejected  = statemachine.State("rejected")

	submit  = statemachine.Event("submit")
	decide  = statemachine.Event("decide")
	archive = statemachine.Event("archive")
)

func approved(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	ok, _ := data.(bool)
	return ok
}

func notApproved(ctx context.Context, s statemachine.State, e statemachine.Event, data any) bool {
	return !approved(ctx, s, e, data)
}

func TestMachine_Fire(t *testing.T) {
	t.Parallel()

	newMachine := func(actions ...statemachine.Action) *statemachine.Machine {
		opts := make([]statemachine.TransitionOption, 0, len(actions))
		for _, a := range actions {
			opts = append(opts, statemachine.WithAction(a))
		}
		return statemachine.MustNew(draft,
			statemachine.WithTransition(draft, review, submit, opts...),
			statemachine.WithTransition(review, published, decide, statemachine.WithGuard(approved)),
			statemachine.WithTransition(review, rejected, decide, statemachine.WithGuard(notApproved)),
		)
	}

	t.Run("moves along a defined transition", func(t *testing.T) {
		t.Parallel()
		m := newMachine()
		assert.Equal(t, draft, m.Current())

		require.NoError(t, m.Fire(context.Background(), submit, nil))
		assert.Equal(t, review, m.Current())
	})

	t.Run("branches on guards in registration order", func(t *testing.T) {
		t.Parallel()
		m := newMachine()
		require.NoError(t, m.Fire(context.Background(), submit, nil))
		require.NoError(t, m.Fire(context.Background(), decide, false))
		assert.Equal(t, rejected, m.Current())

		m.Reset()
		require.NoError(t, m.Fire(context.Background(), submit, nil))
		require.NoError(t, m.Fire(context.Background(), decide, true))
		assert.Equal(t, published, m.Current())
	})

	t.Run("reports a missing transition", func(t *testing.T) {
		t.Parallel()
		m := newMachine()
		err := m.Fire(context.Background(), archive, nil)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.Equal(t, draft, m.Current())
	})

	t.Run("reports guard rejection", func(t *testing.T) {
		t.Parallel()
		m := statemachine.MustNew(draft,
			statemachine.WithTransition(draft, review, submit, statemachine.WithGuard(approved)),
		)
		err := m.Fire(context.Background(), submit, false)
		require.Error(t, err)
		assert.True(t, statemachine.IsTransitionRejectedError(err))
		assert.False(t, m.CanFire(context.Background(), submit, false))
		assert.True(t, m.CanFire(context.Background(), submit, true))
	})

	t.Run("runs actions before changing state", func(t *testing.T) {
		t.Parallel()
		var seen []statemachine.State
		m := newMachine(func(_ context.Context, from, to statemachine.State, _ statemachine.Event, _ any) error {
			seen = append(seen, from, to)
			return nil
		})
		require.NoError(t, m.Fire(context.Background(), submit, nil))
		assert.Equal(t, []statemachine.State{draft, review}, seen)
	})

	t.Run("failing action aborts the transition", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		m := newMachine(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
			return boom
		})
		err := m.Fire(context.Background(), submit, nil)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, draft, m.Current())
	})

	t.Run("rejects empty event", func(t *testing.T) {
		t.Parallel()
		m := newMachine()
		assert.ErrorIs(t, m.Fire(context.Background(), "", nil), statemachine.ErrInvalidEvent)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty initial state", func(t *testing.T) {
		t.Parallel()
		_, err := statemachine.New("")
		assert.ErrorIs(t, err, statemachine.ErrInvalidState)
	})

	t.Run("rejects incomplete transition", func(t *testing.T) {
		t.Parallel()
		_, err := statemachine.New(draft, statemachine.WithTransition(draft, "", submit))
		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	})

	t.Run("adds the same transition from several states", func(t *testing.T) {
		t.Parallel()
		m := statemachine.MustNew(review,
			statemachine.WithTransitionFromAny([]statemachine.State{draft, review}, draft, archive),
		)
		require.NoError(t, m.Fire(context.Background(), archive, nil))
		assert.Equal(t, draft, m.Current())
		require.NoError(t, m.Fire(context.Background(), archive, nil))
		assert.Equal(t, draft, m.Current())
	})

	t.Run("MustNew panics on bad config", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { statemachine.MustNew("") })
	})
}
