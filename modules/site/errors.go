package site

import (
	"net/http"

	"github.com/dmitrymomot/bistro/handler"
)

var (
	ErrUnknownField     = handler.NewHTTPError(http.StatusNotFound, "unknown_field")
	ErrUnsupportedEvent = handler.NewHTTPError(http.StatusBadRequest, "unsupported_event")
)
