// Package validator is the field validation engine used by the site's forms.
//
// Validation is driven by a RuleTable: a static mapping from field identifier
// to a FieldRule (required, minimum length, pattern). A Validator evaluates a
// single field value against that table and returns a Result carrying every
// applicable message in a fixed order: required, length, pattern, then the
// date and time checks configured for the booking form. Only the first
// message is meant to be shown; the rest are kept for logging and tests.
//
// Fields without a rule are always valid.
//
// Internally each check is a Rule (a Check func plus the ValidationError to
// report), so the same primitives can be composed directly:
//
//	errs := validator.Collect(
//		validator.Required("email", email),
//		validator.Matches("email", email, emailRe, validator.MsgInvalidEmail),
//	)
//
// Validation failures are values, never errors. ValidationErrors implements
// error only so a whole form result can be logged or returned through APIs
// that expect one.
package validator
