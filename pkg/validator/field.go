package validator

import (
	"strings"
	"time"
)

// Result is the outcome of validating one field.
type Result struct {
	Valid  bool
	Errors []string
}

// First returns the message to display, or "" for a valid result.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Config is the immutable configuration of a Validator.
type Config struct {
	// Rules is copied by New.
	Rules RuleTable
	// DateField must hold a date that is today or later.
	DateField string
	// TimeField must hold a time later than now when the date is today.
	TimeField string
	// FallbackPatternMessage is reported for a failed pattern on a field whose
	// identifier contains none of "email", "phone", "name". Empty keeps the
	// failure silent.
	FallbackPatternMessage string
	// Location defines "today". Nil means time.Local.
	Location *time.Location
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// FieldOption passes related values into a single Validate call.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	bookingDate string
}

// WithBookingDate supplies the date the time field is compared against.
// Without it the same-day time check never engages.
func WithBookingDate(date string) FieldOption {
	return func(o *fieldOptions) { o.bookingDate = strings.TrimSpace(date) }
}

// Validator validates field values against a rule table. It is safe for concurrent use.
type Validator struct {
	rules    RuleTable
	dateID   string
	timeID   string
	fallback string
	loc      *time.Location
	now      func() time.Time
}

// New creates a Validator from cfg.
func New(cfg Config, opts ...Option) *Validator {
	v := &Validator{
		rules:    cfg.Rules.Clone(),
		dateID:   cfg.DateField,
		timeID:   cfg.TimeField,
		fallback: cfg.FallbackPatternMessage,
		loc:      cfg.Location,
		now:      time.Now,
	}
	if v.rules == nil {
		v.rules = RuleTable{}
	}
	if v.loc == nil {
		v.loc = time.Local
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Today returns the current date in the validator's location, formatted as DateLayout.
func (v *Validator) Today() string {
	return v.now().In(v.loc).Format(DateLayout)
}

// Validate checks value against the rule for fieldID. All applicable checks
// run; messages come back in check order.
func (v *Validator) Validate(fieldID, value string, opts ...FieldOption) Result {
	rule, ok := v.rules.Lookup(fieldID)
	if !ok {
		return Result{Valid: true}
	}

	var fo fieldOptions
	for _, opt := range opts {
		opt(&fo)
	}

	value = strings.TrimSpace(value)
	var rules []Rule

	if rule.Required {
		rules = append(rules, Required(fieldID, value))
	}
	if rule.MinLength > 0 {
		rules = append(rules, MinLen(fieldID, value, rule.MinLength))
	}
	if rule.Pattern != nil && value != "" {
		msg := patternMessage(fieldID)
		if msg == "" {
			msg = v.fallback
		}
		if msg != "" {
			rules = append(rules, Matches(fieldID, value, rule.Pattern, msg))
		}
	}
	if fieldID == v.dateID && value != "" {
		rules = append(rules, v.dateRule(fieldID, value))
	}
	if fieldID == v.timeID && value != "" && fo.bookingDate != "" && fo.bookingDate == v.Today() {
		rules = append(rules, v.timeRule(fieldID, value))
	}

	errs := Collect(rules...)
	res := Result{Valid: errs.IsEmpty()}
	for _, e := range errs {
		res.Errors = append(res.Errors, e.Message)
	}
	return res
}

// ValidateAll validates the listed fields of values and returns every failure.
// The date field's value is passed to the time field check.
func (v *Validator) ValidateAll(fields []string, values map[string]string) ValidationErrors {
	var errs ValidationErrors
	for _, id := range fields {
		res := v.Validate(id, values[id], WithBookingDate(values[v.dateID]))
		for _, msg := range res.Errors {
			errs.Add(ValidationError{Field: id, Message: msg})
		}
	}
	return errs
}

func (v *Validator) dateRule(fieldID, value string) Rule {
	day, err := time.ParseInLocation(DateLayout, value, v.loc)
	if err != nil {
		return Invalid(fieldID, MsgInvalidDate)
	}
	return NotBeforeDay(fieldID, day, v.now())
}

func (v *Validator) timeRule(fieldID, value string) Rule {
	clock, err := time.Parse(TimeLayout, value)
	if err != nil {
		return Invalid(fieldID, MsgInvalidTime)
	}
	now := v.now().In(v.loc)
	y, m, d := now.Date()
	at := time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, v.loc)
	return AfterInstant(fieldID, at, now)
}

// Rule returns the rule for fieldID.
func (v *Validator) Rule(fieldID string) (FieldRule, bool) {
	return v.rules.Lookup(fieldID)
}
