package site

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/bistro/pkg/form"
	"github.com/dmitrymomot/bistro/pkg/validator"
)

// FieldSpec describes one control of a form.
type FieldSpec struct {
	ID          string
	Label       string
	Kind        form.Kind
	InputType   string
	Placeholder string
	Options     []string
	// ErrorSlot is false for controls rendered without an <id>Error element.
	ErrorSlot bool
	// Events lists the interactions that trigger live validation.
	Events []form.Event
}

// FormSpec describes a form: its element ids, its fields in validation order
// and what happens after a clean submission.
type FormSpec struct {
	ID        string
	SuccessID string
	// Path is the URL segment the controller is attached under.
	Path   string
	Title  string
	Submit string
	Fields []FieldSpec
	// DateField names the field whose value is passed to the time check.
	DateField string
	// Notice builds the success text from the submitted payload.
	Notice func(values map[string]string) string
	// DismissAfter is how long the success notice stays visible.
	DismissAfter time.Duration
}

// Field returns the field spec with the given id.
func (s FormSpec) Field(id string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FieldIDs returns the field ids in declaration order.
func (s FormSpec) FieldIDs() []string {
	ids := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		ids[i] = f.ID
	}
	return ids
}

func (s FormSpec) newForm() *form.Form {
	f := &form.Form{ID: s.ID, NoticeID: s.SuccessID}
	for _, fs := range s.Fields {
		f.Fields = append(f.Fields, &form.Field{
			ID:           fs.ID,
			Kind:         fs.Kind,
			HasErrorSlot: fs.ErrorSlot,
			State:        form.StatePristine,
		})
	}
	return f
}

// ListensTo reports whether the field is live-validated on event.
func (f FieldSpec) ListensTo(event form.Event) bool {
	for _, e := range f.Events {
		if e == event {
			return true
		}
	}
	return false
}

const (
	contactNotice = "Thank you! Your message has been sent successfully. We will get back to you soon."
	// bookingNoticeDate renders the booking date in long form, e.g. "Saturday, October 17, 2026".
	bookingNoticeDate = "Monday, January 2, 2006"
)

// ContactForm is the contact form: name, email, optional phone, subject and message.
func ContactForm() FormSpec {
	live := []form.Event{form.EventBlur, form.EventInput}
	return FormSpec{
		ID:        "contactForm",
		SuccessID: "formSuccess",
		Path:      "contact",
		Title:     "Get in Touch",
		Submit:    "Send Message",
		Fields: []FieldSpec{
			{ID: validator.FieldName, Label: "Your Name", Kind: form.KindInput, InputType: "text", ErrorSlot: true, Events: live},
			{ID: validator.FieldEmail, Label: "Email Address", Kind: form.KindInput, InputType: "email", ErrorSlot: true, Events: live},
			{ID: validator.FieldPhone, Label: "Phone Number (optional)", Kind: form.KindInput, InputType: "tel", ErrorSlot: true, Events: live},
			{ID: validator.FieldSubject, Label: "Subject", Kind: form.KindInput, InputType: "text", ErrorSlot: true, Events: live},
			{ID: validator.FieldMessage, Label: "Message", Kind: form.KindTextarea, ErrorSlot: true, Events: live},
		},
		Notice:       func(map[string]string) string { return contactNotice },
		DismissAfter: 5 * time.Second,
	}
}

// BookingForm is the table reservation form.
func BookingForm() FormSpec {
	live := []form.Event{form.EventBlur, form.EventChange, form.EventInput}
	return FormSpec{
		ID:        "bookingForm",
		SuccessID: "bookingSuccess",
		Path:      "booking",
		Title:     "Reserve a Table",
		Submit:    "Book Now",
		Fields: []FieldSpec{
			{ID: validator.FieldBookingName, Label: "Full Name", Kind: form.KindInput, InputType: "text", ErrorSlot: true, Events: live},
			{ID: validator.FieldBookingEmail, Label: "Email", Kind: form.KindInput, InputType: "email", ErrorSlot: true, Events: live},
			{ID: validator.FieldBookingPhone, Label: "Phone", Kind: form.KindInput, InputType: "tel", ErrorSlot: true, Events: live},
			{ID: validator.FieldBookingDate, Label: "Date", Kind: form.KindInput, InputType: "date", ErrorSlot: true, Events: live},
			{ID: validator.FieldBookingTime, Label: "Time", Kind: form.KindInput, InputType: "time", ErrorSlot: true, Events: live},
			{
				ID: validator.FieldGuests, Label: "Number of Guests", Kind: form.KindSelect, ErrorSlot: true, Events: live,
				Options: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10+"},
			},
			{
				ID: FieldOccasion, Label: "Occasion (optional)", Kind: form.KindSelect,
				Options: []string{"Birthday", "Anniversary", "Business", "Date Night", "Other"},
			},
			{ID: validator.FieldSpecialRequests, Label: "Special Requests", Kind: form.KindTextarea},
		},
		DateField:    validator.FieldBookingDate,
		Notice:       bookingNotice,
		DismissAfter: 8 * time.Second,
	}
}

// FieldOccasion is the optional occasion select of the booking form. It has no rule.
const FieldOccasion = "occasion"

func bookingNotice(values map[string]string) string {
	date := values[validator.FieldBookingDate]
	if d, err := time.Parse(validator.DateLayout, date); err == nil {
		date = d.Format(bookingNoticeDate)
	}
	return fmt.Sprintf(
		"Thank you, %s! Your table reservation for %s at %s has been confirmed. We look forward to serving you!",
		values[validator.FieldBookingName], date, values[validator.FieldBookingTime],
	)
}
