package views_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bistro/handler"
	"github.com/dmitrymomot/bistro/modules/site"
	"github.com/dmitrymomot/bistro/modules/site/views"
	"github.com/dmitrymomot/bistro/pkg/form"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func contactParams() site.FormParams {
	spec := site.ContactForm()
	p := site.FormParams{
		ID:             spec.ID,
		SuccessID:      spec.SuccessID,
		Title:          spec.Title,
		Submit:         spec.Submit,
		Action:         "/contact",
		ValidateAction: "/contact/validate",
	}
	for _, fs := range spec.Fields {
		p.Fields = append(p.Fields, site.FieldParams{FieldSpec: fs})
	}
	return p
}

func TestErrorSlot(t *testing.T) {
	t.Parallel()

	html := render(t, views.ErrorSlot("email", "Please enter a valid email address"))
	assert.Equal(t,
		`<span id="emailError" class="error-message" data-text="$errors.email">Please enter a valid email address</span>`,
		html)

	assert.Contains(t, render(t, views.ErrorSlot("name", "<b>")), "&lt;b&gt;")
}

func TestNotice(t *testing.T) {
	t.Parallel()

	hidden := render(t, views.Notice("formSuccess", ""))
	assert.Contains(t, hidden, `class="success-message"`)
	assert.NotContains(t, hidden, "success-message show")

	shown := render(t, views.Notice("formSuccess", "Thanks"))
	assert.Contains(t, shown, `class="success-message show"`)
	assert.Contains(t, shown, ">Thanks</div>")
}

func TestField(t *testing.T) {
	t.Parallel()

	p := contactParams()

	t.Run("errored input", func(t *testing.T) {
		t.Parallel()
		f := p.Fields[0]
		f.Value, f.Error, f.Errored, f.Required = "J", "Must be at least 2 characters", true, true

		html := render(t, views.Field(p, f))
		assert.Contains(t, html, `<label for="name">Your Name *</label>`)
		assert.Contains(t, html, `class="error"`)
		assert.Contains(t, html, `value="J"`)
		assert.Contains(t, html, `data-bind="fields.name"`)
		assert.Contains(t, html, "/contact/validate?field=name&amp;event=blur")
		assert.Contains(t, html, "$invalid.name &amp;&amp; @post(")
		assert.Contains(t, html, `id="nameError"`)
		assert.Contains(t, html, "Must be at least 2 characters</span>")
	})

	t.Run("textarea", func(t *testing.T) {
		t.Parallel()
		f := p.Fields[4]
		f.Value = "a < b"
		html := render(t, views.Field(p, f))
		assert.Contains(t, html, `<textarea id="message"`)
		assert.Contains(t, html, ">a &lt; b</textarea>")
		assert.NotContains(t, html, `class="error"`)
	})

	t.Run("select marks the chosen option", func(t *testing.T) {
		t.Parallel()
		guests, ok := site.BookingForm().Field("guests")
		require.True(t, ok)
		html := render(t, views.Field(p, site.FieldParams{FieldSpec: guests, Value: "4"}))
		assert.Contains(t, html, `<select id="guests"`)
		assert.Contains(t, html, `<option value="4" selected>4</option>`)
		assert.Contains(t, html, "data-on-change=")
	})

	t.Run("no error slot", func(t *testing.T) {
		t.Parallel()
		html := render(t, views.Field(p, site.FieldParams{
			FieldSpec: site.FieldSpec{ID: "nickname", Label: "Nickname", Kind: form.KindInput, InputType: "text"},
		}))
		assert.NotContains(t, html, "nicknameError")
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	p := contactParams()
	p.Notice = "Sent"
	html := render(t, views.Form(p))

	assert.True(t, strings.HasPrefix(html, `<form id="contactForm" action="/contact" method="post"`))
	assert.Contains(t, html, " novalidate>")
	assert.Contains(t, html, `data-on-submit="@post(&#39;/contact&#39;)"`)
	assert.Contains(t, html, ">Send Message</button>")
	assert.Contains(t, html, `id="formSuccess" class="success-message show"`)
}

func TestPage(t *testing.T) {
	t.Parallel()

	p := site.PageParams{Forms: []site.FormParams{contactParams()}}
	html := render(t, views.Page(p))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<section id="contact"`)
	assert.Contains(t, html, `class="menu-toggle"`)
	assert.Contains(t, html, "$menuOpen = !$menuOpen")
	assert.Contains(t, html, "window.scrollY &gt; 100")
	assert.Contains(t, html, `loading="lazy"`)
	assert.Contains(t, html, views.DataStarScript)
	assert.Contains(t, html, "&#34;fields&#34;:{")
}

func TestPageParams_Signals(t *testing.T) {
	t.Parallel()

	p := contactParams()
	p.Fields[1].Value = "jane@"
	p.Fields[1].Error = "Please enter a valid email address"
	p.Fields[1].Errored = true
	p.Notice = "hello"

	s := site.PageParams{Forms: []site.FormParams{p}}.Signals()
	assert.Equal(t, "jane@", s.Values["email"])
	assert.Equal(t, "Please enter a valid email address", s.Errors["email"])
	assert.True(t, s.Invalid["email"])
	assert.False(t, s.Invalid["name"])
	assert.Equal(t, map[string]string{"formSuccess": "hello"}, s.Notices)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	html := render(t, views.ErrorPage(handler.ErrorPageParams{StatusCode: 404, Message: "Not Found", RequestID: "req-1"}))
	assert.Contains(t, html, "<h1>Not Found</h1>")
	assert.Contains(t, html, "Reference: req-1")
}

func TestNew(t *testing.T) {
	t.Parallel()

	v := views.New()
	assert.NotNil(t, v.Page)
	assert.NotNil(t, v.Form)
	assert.NotNil(t, v.ErrorPage)
}
