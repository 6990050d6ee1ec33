package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/bistro/pkg/binder"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNotDataStar is returned by SSE responses rendered for a non-DataStar request.
	ErrNotDataStar = NewHTTPError(http.StatusBadRequest, "datastar_required")
)

// HTTPError is an error carrying the status code to respond with.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// StatusCode maps err to an HTTP status. HTTPError keeps its code, binder
// errors map to 400 or 415, everything else is 500.
func StatusCode(err error) int {
	var httpErr HTTPError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case binder.IsBindError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
