package validator

import (
	"regexp"
	"strings"
)

// Matches fails when a non-empty value does not match re.
// Empty values pass; presence is the job of Required.
func Matches(field, value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			value := strings.TrimSpace(value)
			if value == "" || re == nil {
				return true
			}
			return re.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: message},
	}
}

// patternMessage picks the message for a failed pattern from the field
// identifier. Matching is case-sensitive and checked in this order.
func patternMessage(fieldID string) string {
	switch {
	case strings.Contains(fieldID, "email"):
		return MsgInvalidEmail
	case strings.Contains(fieldID, "phone"):
		return MsgInvalidPhone
	case strings.Contains(fieldID, "name"):
		return MsgInvalidName
	default:
		return ""
	}
}
