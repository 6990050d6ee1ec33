package form

// Presenter applies and removes error decorations.
type Presenter interface {
	ShowError(fieldID, message string)
	ClearError(fieldID string)
	ClearAllErrors(formID string)
}

var _ Presenter = (*Document)(nil)

// ShowError decorates the field as errored and writes message into its error
// slot. The slot text is skipped when the field has no slot.
func (d *Document) ShowError(fieldID, message string) {
	fld := d.Field(fieldID)
	if fld == nil {
		return
	}
	fld.Errored = true
	if fld.HasErrorSlot {
		fld.Error = message
	}
}

// ClearError removes the decoration and blanks the slot.
func (d *Document) ClearError(fieldID string) {
	fld := d.Field(fieldID)
	if fld == nil {
		return
	}
	fld.Errored = false
	fld.Error = ""
}

// ClearAllErrors clears every field of formID.
func (d *Document) ClearAllErrors(formID string) {
	f := d.Form(formID)
	if f == nil {
		return
	}
	for _, fld := range f.Fields {
		d.ClearError(fld.ID)
	}
}
