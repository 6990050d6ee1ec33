package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Required fails when value is empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: MsgRequired},
	}
}

// MinLen fails when the trimmed value has fewer than min characters.
// Characters are counted after NFC normalisation so composed and decomposed
// input of the same text measure the same.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) >= min
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf(MsgMinLength, min)},
	}
}

// Length returns the number of characters in the trimmed, NFC-normalised value.
func Length(value string) int {
	return utf8.RuneCountInString(norm.NFC.String(strings.TrimSpace(value)))
}
