package site

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/bistro/handler"
	"github.com/dmitrymomot/bistro/pkg/form"
	"github.com/dmitrymomot/bistro/pkg/validator"
)

// Views renders the site. Components are swappable so tests and themes can
// provide their own markup.
type Views struct {
	// Page renders the full document with every form.
	Page func(PageParams) templ.Component
	// Form renders one form; used when a form is patched on its own.
	Form func(FormParams) templ.Component
	// ErrorPage renders non-DataStar error responses. Optional.
	ErrorPage func(handler.ErrorPageParams) templ.Component
}

// PageParams contains data for rendering the page.
type PageParams struct {
	Forms []FormParams
}

// Signals returns the initial DataStar signal store for every form on the page.
func (p PageParams) Signals() form.Snapshot {
	s := form.Snapshot{
		Values:  map[string]string{},
		Errors:  map[string]string{},
		Invalid: map[string]bool{},
		Notices: map[string]string{},
	}
	for _, f := range p.Forms {
		for _, fld := range f.Fields {
			s.Values[fld.ID] = fld.Value
			s.Errors[fld.ID] = fld.Error
			s.Invalid[fld.ID] = fld.Errored
		}
		s.Notices[f.SuccessID] = f.Notice
	}
	return s
}

// FormParams contains data for rendering a form.
type FormParams struct {
	ID        string
	SuccessID string
	Title     string
	Submit    string
	// Action receives the submission.
	Action string
	// ValidateAction receives live validation requests.
	ValidateAction string
	Notice         string
	Fields         []FieldParams
}

// FieldParams contains data for rendering one control.
type FieldParams struct {
	FieldSpec
	Value    string
	Error    string
	Errored  bool
	Required bool
	// Min is the earliest selectable date for date inputs.
	Min string
}

func newFormParams(spec FormSpec, f *form.Form, v *validator.Validator) FormParams {
	p := FormParams{
		ID:             spec.ID,
		SuccessID:      spec.SuccessID,
		Title:          spec.Title,
		Submit:         spec.Submit,
		Action:         "/" + spec.Path,
		ValidateAction: "/" + spec.Path + "/validate",
		Notice:         f.Notice,
	}
	for _, fs := range spec.Fields {
		fp := FieldParams{FieldSpec: fs}
		if fld := f.Field(fs.ID); fld != nil {
			fp.Value = fld.Value
			fp.Error = fld.Error
			fp.Errored = fld.Errored
		}
		if rule, ok := v.Rule(fs.ID); ok {
			fp.Required = rule.Required
		}
		if fs.ID == spec.DateField {
			fp.Min = v.Today()
		}
		p.Fields = append(p.Fields, fp)
	}
	return p
}
