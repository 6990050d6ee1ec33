package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bistro/pkg/validator"
)

func TestNotBeforeDay(t *testing.T) {
	now := time.Date(2026, 10, 17, 18, 45, 0, 0, time.UTC)

	t.Run("same day passes regardless of time of day", func(t *testing.T) {
		day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
		assert.True(t, validator.NotBeforeDay("bookingDate", day, now).Check())
	})

	t.Run("previous day fails", func(t *testing.T) {
		day := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
		rule := validator.NotBeforeDay("bookingDate", day, now)
		assert.False(t, rule.Check())
		assert.Equal(t, validator.MsgPastDate, rule.Error.Message)
	})

	t.Run("future day passes", func(t *testing.T) {
		day := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, validator.NotBeforeDay("bookingDate", day, now).Check())
	})
}

func TestAfterInstant(t *testing.T) {
	now := time.Date(2026, 10, 17, 18, 45, 30, 0, time.UTC)

	t.Run("later passes", func(t *testing.T) {
		at := now.Add(time.Minute)
		assert.True(t, validator.AfterInstant("bookingTime", at, now).Check())
	})

	t.Run("equal fails", func(t *testing.T) {
		assert.False(t, validator.AfterInstant("bookingTime", now, now).Check())
	})

	t.Run("earlier fails", func(t *testing.T) {
		rule := validator.AfterInstant("bookingTime", now.Add(-time.Second), now)
		assert.False(t, rule.Check())
		assert.Equal(t, validator.MsgPastTime, rule.Error.Message)
	})
}

func TestInvalid(t *testing.T) {
	rule := validator.Invalid("bookingDate", validator.MsgInvalidDate)
	assert.False(t, rule.Check())
	assert.Equal(t, validator.MsgInvalidDate, rule.Error.Message)
}
