package validator

import (
	"maps"
	"regexp"
)

// FieldRule is the validation policy of one field.
// A zero MinLength and a nil Pattern mean the check is not configured.
type FieldRule struct {
	Required  bool
	MinLength int
	Pattern   *regexp.Regexp
}

// RuleTable maps field identifiers to their rules.
type RuleTable map[string]FieldRule

// Lookup returns the rule for fieldID.
func (t RuleTable) Lookup(fieldID string) (FieldRule, bool) {
	rule, ok := t[fieldID]
	return rule, ok
}

// Clone returns a shallow copy. Compiled patterns are shared; they are safe
// for concurrent use.
func (t RuleTable) Clone() RuleTable {
	return maps.Clone(t)
}

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// Field identifiers of the contact and booking forms. The two forms use
// distinct identifiers so each is validated without touching the other.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"

	FieldBookingName     = "bookingName"
	FieldBookingEmail    = "bookingEmail"
	FieldBookingPhone    = "bookingPhone"
	FieldBookingDate     = "bookingDate"
	FieldBookingTime     = "bookingTime"
	FieldGuests          = "guests"
	FieldSpecialRequests = "specialRequests"
)

// DefaultRules returns the rule table of the site's contact and booking forms.
func DefaultRules() RuleTable {
	return RuleTable{
		FieldName:    {Required: true, MinLength: 2, Pattern: namePattern},
		FieldEmail:   {Required: true, Pattern: emailPattern},
		FieldPhone:   {Pattern: phonePattern},
		FieldSubject: {Required: true, MinLength: 2},
		FieldMessage: {Required: true, MinLength: 10},

		FieldBookingName:  {Required: true, MinLength: 2, Pattern: namePattern},
		FieldBookingEmail: {Required: true, Pattern: emailPattern},
		FieldBookingPhone: {Required: true, Pattern: phonePattern},
		FieldBookingDate:  {Required: true},
		FieldBookingTime:  {Required: true},
		FieldGuests:       {Required: true},
	}
}
