// Package binder populates request structs from HTTP requests.
//
// Each binder handles one kind of input and returns ErrBinderNotApplicable for
// requests that are not of its kind, so several binders can be chained:
//
//	type SubmitRequest struct {
//		Field  string            `query:"field"`
//		Values map[string]string `form:"*" json:"fields"`
//	}
//
//	handler.WithBinders[handler.Context, SubmitRequest](
//		binder.Query(),   // query: tags
//		binder.Signals(), // DataStar signals, json: tags
//		binder.Form(),    // form: tags
//	)
//
// A map[string]string field tagged `form:"*"` or `query:"*"` receives every
// submitted key with its first value.
package binder
