package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// writer stops writing after the first error.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *writer {
	return &writer{ctx: ctx, w: w}
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) attr(name, value string) {
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// flag writes a boolean attribute when on is true.
func (w *writer) flag(name string, on bool) {
	if on {
		w.raw(" " + name)
	}
}

func (w *writer) open(tag string, attrs ...string) {
	w.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		w.attr(attrs[i], attrs[i+1])
	}
	w.raw(">")
}

func (w *writer) close(tag string) {
	w.raw("</" + tag + ">")
}

func (w *writer) component(c templ.Component) {
	if w.err == nil {
		w.err = c.Render(w.ctx, w.w)
	}
}
