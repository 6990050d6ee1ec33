package site

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/bistro/handler"
	"github.com/dmitrymomot/bistro/pkg/binder"
	"github.com/dmitrymomot/bistro/pkg/form"
	"github.com/dmitrymomot/bistro/pkg/logger"
	"github.com/dmitrymomot/bistro/pkg/validator"
)

// Controller serves live validation and submission of one form.
type Controller struct {
	spec         FormSpec
	validator    *validator.Validator
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	pageForms    []FormSpec
	reference    func() string
	submitMW     []func(http.Handler) http.Handler
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithPageForms lists every form of the page, in render order, for full page
// responses. The controller's own form is rendered from the request state.
func WithPageForms(specs ...FormSpec) ControllerOption {
	return func(c *Controller) { c.pageForms = specs }
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ControllerOption {
	return func(c *Controller) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithSubmitMiddleware wraps the submission route, e.g. with a rate limiter.
func WithSubmitMiddleware(mws ...func(http.Handler) http.Handler) ControllerOption {
	return func(c *Controller) { c.submitMW = append(c.submitMW, mws...) }
}

// WithReference replaces the submission reference generator.
func WithReference(fn func() string) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.reference = fn
		}
	}
}

func NewController(spec FormSpec, v *validator.Validator, views *Views, log *slog.Logger, opts ...ControllerOption) *Controller {
	if log == nil {
		log = logger.Discard()
	}
	c := &Controller{
		spec:      spec,
		validator: v,
		views:     views,
		log:       log.With(logger.Component("site"), logger.Form(spec.ID)),
		pageForms: []FormSpec{spec},
		reference: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.errorHandler == nil {
		c.errorHandler = newErrorHandler(log, views)
	}
	return c
}

// Attach registers the form's routes on r.
func (c *Controller) Attach(r chi.Router) {
	r.With(c.submitMW...).Post("/"+c.spec.Path, handler.Wrap(c.submit,
		handler.WithBinders[handler.Context, SubmitRequest](
			binder.Signals(), // DataStar action
			binder.Form(),    // classic post
		),
		handler.WithErrorHandler[handler.Context, SubmitRequest](c.errorHandler),
	))

	r.Post("/"+c.spec.Path+"/validate", handler.Wrap(c.validate,
		handler.WithBinders[handler.Context, ValidateRequest](
			binder.Query(),
			binder.Signals(),
		),
		handler.WithErrorHandler[handler.Context, ValidateRequest](c.errorHandler),
	))
}

// ValidateRequest carries the field to validate and the browser's form state.
type ValidateRequest struct {
	form.Snapshot
	Field string `query:"field" json:"-"`
	Event string `query:"event" json:"-"`
}

func (c *Controller) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Error(handler.ErrNotDataStar)
	}
	fs, ok := c.spec.Field(req.Field)
	if !ok {
		return handler.Error(ErrUnknownField)
	}
	event, ok := form.ParseEvent(req.Event)
	if !ok || !fs.ListensTo(event) {
		return handler.Error(ErrUnsupportedEvent)
	}

	doc := form.NewDocument(c.spec.newForm())
	doc.Load(req.Snapshot)

	state, err := doc.Apply(ctx, fs.ID, event, c.check(doc, fs.ID))
	if err != nil {
		return handler.Error(err)
	}
	c.log.DebugContext(ctx, "field validated",
		logger.Field(fs.ID),
		logger.Event(string(event)),
		slog.String("state", string(state)),
	)

	patch := doc.FieldSnapshot(fs.ID)
	return handler.SSE(func(s handler.StreamContext) error {
		return s.SendSignals(patch)
	})
}

func (c *Controller) check(doc *form.Document, fieldID string) validator.Result {
	return c.validator.Validate(fieldID, doc.Value(fieldID),
		validator.WithBookingDate(doc.Value(c.spec.DateField)))
}

// SubmitRequest carries a submission: DataStar signals or posted form values.
type SubmitRequest struct {
	form.Snapshot
	Posted map[string]string `form:"*" json:"-"`
}

func (c *Controller) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	live := handler.IsDataStar(ctx.Request())

	doc := form.NewDocument(c.spec.newForm())
	if live {
		doc.Load(req.Snapshot)
	} else {
		doc.Load(form.Snapshot{Values: req.Posted})
	}
	doc.ClearAllErrors(c.spec.ID)

	ids := c.spec.FieldIDs()
	values := doc.Values(c.spec.ID)
	errs := c.validator.ValidateAll(ids, values)
	for _, id := range ids {
		res := validator.Result{Valid: !errs.Has(id), Errors: errs.Get(id)}
		if _, err := doc.Apply(ctx, id, form.EventSubmit, res); err != nil {
			return handler.Error(err)
		}
	}

	if !errs.IsEmpty() {
		c.log.DebugContext(ctx, "submission rejected", logger.Fields(errs.Fields()), logger.Error(errs))
		if !live {
			return handler.TemplStatus(http.StatusUnprocessableEntity, c.page(doc))
		}
		patch := doc.Snapshot(c.spec.ID)
		patch.Values, patch.Notices = nil, nil
		return handler.SSE(func(s handler.StreamContext) error {
			return s.SendSignals(patch)
		})
	}

	ref := c.reference()
	c.log.InfoContext(ctx, "form submitted", logger.Reference(ref), logger.Payload(values))

	doc.Reset(c.spec.ID)
	if c.spec.Notice != nil {
		doc.SetNotice(c.spec.ID, c.spec.Notice(values))
	}
	if !live {
		return handler.Templ(c.page(doc))
	}

	patch := doc.Snapshot(c.spec.ID)
	return handler.SSE(func(s handler.StreamContext) error {
		if err := s.SendSignals(patch); err != nil {
			return err
		}
		return c.dismiss(s)
	})
}

// dismiss holds the stream open for DismissAfter and then hides the notice.
// A closed connection ends the wait without patching.
func (c *Controller) dismiss(s handler.StreamContext) error {
	if c.spec.DismissAfter <= 0 || c.spec.SuccessID == "" {
		return nil
	}
	t := time.NewTimer(c.spec.DismissAfter)
	defer t.Stop()

	select {
	case <-s.Done():
		return nil
	case <-t.C:
	}
	return s.SendSignals(form.Snapshot{Notices: map[string]string{c.spec.SuccessID: ""}})
}

func (c *Controller) page(doc *form.Document) templ.Component {
	return c.views.Page(buildPage(c.pageForms, doc, c.validator))
}

// buildPage renders specs from doc, falling back to blank forms.
func buildPage(specs []FormSpec, doc *form.Document, v *validator.Validator) PageParams {
	var p PageParams
	for _, spec := range specs {
		f := doc.Form(spec.ID)
		if f == nil {
			f = spec.newForm()
		}
		p.Forms = append(p.Forms, newFormParams(spec, f, v))
	}
	return p
}

func newErrorHandler(log *slog.Logger, views *Views) handler.ErrorHandler[handler.Context] {
	var opts []handler.ErrorHandlerOption
	if views != nil && views.ErrorPage != nil {
		opts = append(opts, handler.WithErrorPage(views.ErrorPage))
	}
	return handler.NewErrorHandler(log, opts...)
}
