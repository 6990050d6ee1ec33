package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bistro/modules/site"
	"github.com/dmitrymomot/bistro/pkg/form"
)

// Form renders a form with its fields, submit button and success notice.
// The form posts normally without JavaScript; DataStar takes over submission
// and live validation when present.
func Form(p site.FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw("<form")
		writeAttrs(w, []string{
			"id", p.ID,
			"action", p.Action,
			"method", "post",
			"data-on-submit", fmt.Sprintf("@post('%s')", p.Action),
		})
		w.raw(" novalidate>")
		for _, f := range p.Fields {
			w.component(Field(p, f))
		}
		w.open("button", "type", "submit", "class", "btn btn-primary")
		w.text(p.Submit)
		w.close("button")
		w.component(Notice(p.SuccessID, p.Notice))
		w.close("form")
		return w.err
	})
}

// Field renders a labelled control, bound to $fields.<id>, decorated by
// $invalid.<id>, followed by its error slot when it has one.
func Field(p site.FormParams, f site.FieldParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)

		group := "form-group"
		if f.Value != "" {
			group += " focused"
		}
		w.open("div", "class", group)

		label := f.Label
		if f.Required {
			label += " *"
		}
		w.open("label", "for", f.ID)
		w.text(label)
		w.close("label")

		class := ""
		if f.Errored {
			class = "error"
		}
		attrs := []string{
			"id", f.ID,
			"name", f.ID,
			"class", class,
			"data-bind", "fields." + f.ID,
			"data-class", fmt.Sprintf("{'error': $invalid.%s}", f.ID),
			"data-on-focus", "el.parentElement.classList.add('focused')",
		}
		attrs = append(attrs, liveAttrs(p.ValidateAction, f)...)

		switch f.Kind {
		case form.KindTextarea:
			w.raw("<textarea")
			writeAttrs(w, attrs)
			w.raw(` rows="5">`)
			w.text(f.Value)
			w.close("textarea")
		case form.KindSelect:
			w.raw("<select")
			writeAttrs(w, attrs)
			w.raw(">")
			w.open("option", "value", "")
			w.text("Select...")
			w.close("option")
			for _, opt := range f.Options {
				w.raw("<option")
				w.attr("value", opt)
				w.flag("selected", opt == f.Value)
				w.raw(">")
				w.text(opt)
				w.close("option")
			}
			w.close("select")
		default:
			w.raw("<input")
			writeAttrs(w, append(attrs, "type", f.InputType, "value", f.Value))
			if f.Placeholder != "" {
				w.attr("placeholder", f.Placeholder)
			}
			if f.Min != "" {
				w.attr("min", f.Min)
			}
			w.raw(">")
		}

		if f.ErrorSlot {
			w.component(ErrorSlot(f.ID, f.Error))
		}
		w.close("div")
		return w.err
	})
}

// liveAttrs wires the field's live validation events. Blur always validates;
// input and change only re-check a field that is currently errored.
func liveAttrs(action string, f site.FieldParams) []string {
	var attrs []string
	for _, e := range f.Events {
		post := fmt.Sprintf("@post('%s?field=%s&event=%s')", action, f.ID, e)
		switch e {
		case form.EventBlur:
			attrs = append(attrs, "data-on-blur",
				"el.value || el.parentElement.classList.remove('focused'); "+post)
		case form.EventInput:
			attrs = append(attrs, "data-on-input__debounce.300ms",
				fmt.Sprintf("$invalid.%s && %s", f.ID, post))
		case form.EventChange:
			attrs = append(attrs, "data-on-change",
				fmt.Sprintf("$invalid.%s && %s", f.ID, post))
		}
	}
	return attrs
}

func writeAttrs(w *writer, attrs []string) {
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" && attrs[i] == "class" {
			continue
		}
		w.attr(attrs[i], attrs[i+1])
	}
}

// ErrorSlot renders the <fieldId>Error element bound to $errors.<fieldId>.
func ErrorSlot(fieldID, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.open("span",
			"id", form.ErrorSlotID(fieldID),
			"class", "error-message",
			"data-text", "$errors."+fieldID,
		)
		w.text(message)
		w.close("span")
		return w.err
	})
}

// Notice renders a success notice. It carries the show class while it has text.
func Notice(id, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		class := "success-message"
		if strings.TrimSpace(text) != "" {
			class += " show"
		}
		w.open("div",
			"id", id,
			"class", class,
			"role", "status",
			"data-class", fmt.Sprintf("{'show': $notices.%s != ''}", id),
			"data-text", "$notices."+id,
		)
		w.text(text)
		w.close("div")
		return w.err
	})
}

// ContactForm renders the contact section around its form.
func ContactForm(p site.FormParams) templ.Component {
	return section("contact", p, "We'd love to hear from you. Send us a message and we'll respond as soon as possible.")
}

// BookingForm renders the reservation section around its form.
func BookingForm(p site.FormParams) templ.Component {
	return section("booking", p, "Reserve your table in advance. Open daily from 11:00 to 23:00.")
}

func section(anchor string, p site.FormParams, intro string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.open("section", "id", anchor, "class", "form-section fade-in", "data-on-intersect__once", "el.classList.add('visible')")
		w.open("h2")
		w.text(p.Title)
		w.close("h2")
		w.open("p", "class", "section-intro")
		w.text(intro)
		w.close("p")
		w.component(Form(p))
		w.close("section")
		return w.err
	})
}
