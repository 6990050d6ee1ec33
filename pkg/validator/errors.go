package validator

import "errors"

var (
	// ErrInvalidRule is returned when a rule definition cannot be compiled.
	ErrInvalidRule = errors.New("invalid field rule")

	// ErrDuplicateRule is returned when a rule file defines the same field twice.
	ErrDuplicateRule = errors.New("duplicate field rule")

	// ErrRulesNotLoaded is returned when a rule source cannot be read or parsed.
	ErrRulesNotLoaded = errors.New("field rules not loaded")
)

// User-facing messages. Only the first message of a result is displayed.
const (
	MsgRequired     = "This field is required"
	MsgMinLength    = "Must be at least %d characters"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgInvalidPhone = "Please enter a valid phone number"
	MsgInvalidName  = "Name should only contain letters and spaces"
	MsgPastDate     = "Please select a future date"
	MsgInvalidDate  = "Please enter a valid date"
	MsgPastTime     = "Please select a future time"
	MsgInvalidTime  = "Please enter a valid time"
)
