package site

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/bistro/handler"
	"github.com/dmitrymomot/bistro/pkg/form"
	"github.com/dmitrymomot/bistro/pkg/logger"
	"github.com/dmitrymomot/bistro/pkg/validator"
)

// Service serves the page and the controllers of its forms.
type Service struct {
	validator    *validator.Validator
	views        *Views
	forms        []FormSpec
	controllers  []*Controller
	errorHandler handler.ErrorHandler[handler.Context]
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	forms     []FormSpec
	reference func() string
	submitMW  []func(http.Handler) http.Handler
}

// WithForms replaces the default contact and booking forms.
func WithForms(specs ...FormSpec) ServiceOption {
	return func(o *serviceOptions) { o.forms = specs }
}

// WithReferenceGenerator is passed to every controller.
func WithReferenceGenerator(fn func() string) ServiceOption {
	return func(o *serviceOptions) { o.reference = fn }
}

// WithSubmitLimit wraps every submission route with mws.
func WithSubmitLimit(mws ...func(http.Handler) http.Handler) ServiceOption {
	return func(o *serviceOptions) { o.submitMW = append(o.submitMW, mws...) }
}

func NewService(v *validator.Validator, views *Views, log *slog.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = logger.Discard()
	}
	o := &serviceOptions{forms: []FormSpec{ContactForm(), BookingForm()}}
	for _, opt := range opts {
		opt(o)
	}

	s := &Service{
		validator:    v,
		views:        views,
		forms:        o.forms,
		errorHandler: newErrorHandler(log, views),
	}
	for _, spec := range o.forms {
		s.controllers = append(s.controllers, NewController(spec, v, views, log,
			WithPageForms(o.forms...),
			WithErrorHandler(s.errorHandler),
			WithReference(o.reference),
			WithSubmitMiddleware(o.submitMW...),
		))
	}
	return s
}

// Handle returns the site router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	for _, c := range s.controllers {
		c.Attach(r)
	}

	return r
}

func (s *Service) page(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(buildPage(s.forms, form.NewDocument(), s.validator)))
}
