package validator

import "time"

const (
	// DateLayout is the wire format of date inputs.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format of time inputs.
	TimeLayout = "15:04"
)

// Invalid always fails with message. It reports values that could not be parsed.
func Invalid(field, message string) Rule {
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{Field: field, Message: message},
	}
}

// NotBeforeDay fails when day is strictly earlier than today. Both are
// truncated to midnight in day's location, so the same day passes.
func NotBeforeDay(field string, day, today time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !midnight(day).Before(midnight(today.In(day.Location())))
		},
		Error: ValidationError{Field: field, Message: MsgPastDate},
	}
}

// AfterInstant fails when at is earlier than or equal to now.
func AfterInstant(field string, at, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return at.After(now)
		},
		Error: ValidationError{Field: field, Message: MsgPastTime},
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
