package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bistro/pkg/logger"
	"github.com/dmitrymomot/bistro/pkg/requestid"
)

// ErrorPageParams is passed to the error page component.
type ErrorPageParams struct {
	StatusCode int
	Message    string
	RequestID  string
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

type errorHandlerConfig struct {
	page func(ErrorPageParams) templ.Component
}

// WithErrorPage renders full error pages for non-DataStar requests.
func WithErrorPage(page func(ErrorPageParams) templ.Component) ErrorHandlerOption {
	return func(c *errorHandlerConfig) { c.page = page }
}

// NewErrorHandler logs err and answers with its status code. Client errors
// log at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	cfg := &errorHandlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := StatusCode(err)
		reqID := requestid.FromContext(r.Context())

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		w := ctx.ResponseWriter()
		if cfg.page == nil || IsDataStar(r) {
			http.Error(w, http.StatusText(status), status)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		params := ErrorPageParams{StatusCode: status, Message: http.StatusText(status), RequestID: reqID}
		if renderErr := cfg.page(params).Render(r.Context(), w); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error page",
				logger.RequestID(reqID),
				logger.Error(renderErr),
			)
		}
	}
}
