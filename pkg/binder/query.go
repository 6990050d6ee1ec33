package binder

import "net/http"

// Query binds URL query parameters using `query` tags. It always applies.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
