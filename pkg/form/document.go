package form

import "strings"

// Kind is the element type of a field.
type Kind string

const (
	KindInput    Kind = "input"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
)

// ErrorSlotSuffix is appended to a field identifier to address its error message element.
const ErrorSlotSuffix = "Error"

// ErrorSlotID returns the id of the element that displays fieldID's error.
func ErrorSlotID(fieldID string) string {
	return fieldID + ErrorSlotSuffix
}

// Field is a form control with its current value and error decoration.
type Field struct {
	ID    string
	Kind  Kind
	Value string
	// Errored is the visual error decoration of the control.
	Errored bool
	// Error is the text of the error slot. It stays empty when the field has no slot.
	Error string
	// HasErrorSlot is false when the markup has no <id>Error element.
	HasErrorSlot bool
	State        State
}

// Form is a named group of fields with a success notice element.
type Form struct {
	ID       string
	NoticeID string
	Notice   string
	Fields   []*Field
}

// Field returns the field with the given id, or nil.
func (f *Form) Field(id string) *Field {
	for _, fld := range f.Fields {
		if fld.ID == id {
			return fld
		}
	}
	return nil
}

// FieldIDs returns the declared field identifiers in order.
func (f *Form) FieldIDs() []string {
	ids := make([]string, len(f.Fields))
	for i, fld := range f.Fields {
		ids[i] = fld.ID
	}
	return ids
}

// Document is the set of forms on a page.
type Document struct {
	forms []*Form
}

// NewDocument creates a document holding forms.
func NewDocument(forms ...*Form) *Document {
	return &Document{forms: forms}
}

// Form returns the form with the given id, or nil.
func (d *Document) Form(id string) *Form {
	for _, f := range d.forms {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Field finds a field by id across all forms.
func (d *Document) Field(id string) *Field {
	for _, f := range d.forms {
		if fld := f.Field(id); fld != nil {
			return fld
		}
	}
	return nil
}

// Forms returns every form of the document.
func (d *Document) Forms() []*Form {
	return d.forms
}

// Snapshot is the browser-side state of one or more forms: field values,
// displayed error text, error decorations and notice text, keyed by element id.
// Empty maps are omitted so a partial snapshot only patches what it carries.
type Snapshot struct {
	Values  map[string]string `json:"fields,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Invalid map[string]bool   `json:"invalid,omitempty"`
	Notices map[string]string `json:"notices,omitempty"`
}

// Load copies a snapshot into the document. Keys that name no element are
// ignored. A decorated field or one with error text starts in the Errored state.
func (d *Document) Load(s Snapshot) {
	for _, f := range d.forms {
		if text, ok := s.Notices[f.NoticeID]; ok && f.NoticeID != "" {
			f.Notice = text
		}
		for _, fld := range f.Fields {
			if v, ok := s.Values[fld.ID]; ok {
				fld.Value = v
			}
			msg := s.Errors[fld.ID]
			if msg == "" && !s.Invalid[fld.ID] {
				continue
			}
			fld.Errored = true
			if fld.HasErrorSlot {
				fld.Error = msg
			}
			fld.State = StateErrored
		}
	}
}

// Snapshot returns the state of formID. Every declared field is present in
// each map so applying it in the browser overwrites stale entries.
func (d *Document) Snapshot(formID string) Snapshot {
	f := d.Form(formID)
	if f == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Values:  make(map[string]string, len(f.Fields)),
		Errors:  make(map[string]string, len(f.Fields)),
		Invalid: make(map[string]bool, len(f.Fields)),
	}
	for _, fld := range f.Fields {
		s.Values[fld.ID] = fld.Value
		s.Errors[fld.ID] = fld.Error
		s.Invalid[fld.ID] = fld.Errored
	}
	if f.NoticeID != "" {
		s.Notices = map[string]string{f.NoticeID: f.Notice}
	}
	return s
}

// Values returns the trimmed values of formID's declared fields.
func (d *Document) Values(formID string) map[string]string {
	f := d.Form(formID)
	if f == nil {
		return nil
	}
	values := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		values[fld.ID] = strings.TrimSpace(fld.Value)
	}
	return values
}

// Value returns the raw value of a field, or "" when it does not exist.
func (d *Document) Value(fieldID string) string {
	if fld := d.Field(fieldID); fld != nil {
		return fld.Value
	}
	return ""
}

// Reset empties every field of formID and returns them to Pristine.
func (d *Document) Reset(formID string) {
	f := d.Form(formID)
	if f == nil {
		return
	}
	for _, fld := range f.Fields {
		fld.Value = ""
		fld.Errored = false
		fld.Error = ""
		fld.State = StatePristine
	}
}

// SetNotice sets the success notice text of formID. Empty text hides it.
func (d *Document) SetNotice(formID, text string) {
	if f := d.Form(formID); f != nil && f.NoticeID != "" {
		f.Notice = text
	}
}

// FieldSnapshot returns only the error decoration of fieldID. Unknown fields
// give an empty snapshot.
func (d *Document) FieldSnapshot(fieldID string) Snapshot {
	fld := d.Field(fieldID)
	if fld == nil {
		return Snapshot{}
	}
	return Snapshot{
		Errors:  map[string]string{fld.ID: fld.Error},
		Invalid: map[string]bool{fld.ID: fld.Errored},
	}
}
