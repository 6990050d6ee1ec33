package site_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bistro/modules/site"
	"github.com/dmitrymomot/bistro/pkg/form"
)

func TestContactForm(t *testing.T) {
	t.Parallel()

	spec := site.ContactForm()
	assert.Equal(t, "contactForm", spec.ID)
	assert.Equal(t, "formSuccess", spec.SuccessID)
	assert.Equal(t, []string{"name", "email", "phone", "subject", "message"}, spec.FieldIDs())
	assert.Equal(t, 5*time.Second, spec.DismissAfter)
	assert.Equal(t,
		"Thank you! Your message has been sent successfully. We will get back to you soon.",
		spec.Notice(nil))

	msg, ok := spec.Field("message")
	require.True(t, ok)
	assert.Equal(t, form.KindTextarea, msg.Kind)
	assert.True(t, msg.ListensTo(form.EventInput))
	assert.False(t, msg.ListensTo(form.EventChange))

	_, ok = spec.Field("bookingName")
	assert.False(t, ok)
}

func TestBookingForm(t *testing.T) {
	t.Parallel()

	spec := site.BookingForm()
	assert.Equal(t, "bookingForm", spec.ID)
	assert.Equal(t, "bookingSuccess", spec.SuccessID)
	assert.Equal(t, []string{
		"bookingName", "bookingEmail", "bookingPhone", "bookingDate", "bookingTime",
		"guests", "occasion", "specialRequests",
	}, spec.FieldIDs())
	assert.Equal(t, 8*time.Second, spec.DismissAfter)
	assert.Equal(t, "bookingDate", spec.DateField)

	guests, ok := spec.Field("guests")
	require.True(t, ok)
	assert.Equal(t, form.KindSelect, guests.Kind)
	assert.True(t, guests.ListensTo(form.EventChange))
}

func TestBookingForm_Notice(t *testing.T) {
	t.Parallel()

	notice := site.BookingForm().Notice(map[string]string{
		"bookingName": "Jane Doe",
		"bookingDate": "2026-10-18",
		"bookingTime": "19:30",
	})
	assert.Equal(t,
		"Thank you, Jane Doe! Your table reservation for Sunday, October 18, 2026 at 19:30 has been confirmed. We look forward to serving you!",
		notice)

	raw := site.BookingForm().Notice(map[string]string{"bookingName": "A", "bookingDate": "soon", "bookingTime": "x"})
	assert.Contains(t, raw, "for soon at x")
}
