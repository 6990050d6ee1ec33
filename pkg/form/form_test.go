package form_test

import (
	"github.com/dmitrymomot/bistro/pkg/form"
)

func newContactDocument() *form.Document {
	return form.NewDocument(&form.Form{
		ID:       "contactForm",
		NoticeID: "formSuccess",
		Fields: []*form.Field{
			{ID: "name", Kind: form.KindInput, HasErrorSlot: true},
			{ID: "email", Kind: form.KindInput, HasErrorSlot: true},
			{ID: "phone", Kind: form.KindInput},
			{ID: "message", Kind: form.KindTextarea, HasErrorSlot: true},
		},
	}, &form.Form{
		ID: "newsletter",
		Fields: []*form.Field{
			{ID: "newsletterEmail", Kind: form.KindInput, HasErrorSlot: true},
		},
	})
}
