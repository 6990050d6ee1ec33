// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already populated by
// the configured binders, and returns a Response that knows how to render
// itself. Responses cover server-rendered templ components and DataStar
// server-sent event streams; both are chosen per request, so the same
// endpoint serves a classic form post and a DataStar action.
//
//	h := handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, SubmitRequest](handler.NewErrorHandler(log)),
//	)
//	r.Post("/contact", h)
package handler
