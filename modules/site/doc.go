// Package site serves the restaurant pages and their contact and booking forms.
//
// Each form is described by a FormSpec and served by a Controller. The
// controller answers two kinds of requests:
//
//   - live validation (POST /{form}/validate?field=<id>&event=<blur|input|change>),
//     sent by DataStar when a control loses focus or changes. The browser's
//     signal store carries the form's values and current error decorations;
//     the controller runs the field through its lifecycle and patches the
//     resulting error signals back.
//   - submission (POST /{form}), sent by DataStar or as a classic form post.
//     Every declared field is re-validated. A clean submission is logged with
//     a reference id, the success notice is shown and the form is reset.
//
// Service mounts the page and every controller on a chi router:
//
//	svc := site.NewService(v, views.New(), log)
//	r.Mount("/", svc.Handle())
//
// WithSubmitLimit wraps only the submission routes, typically with a
// ratelimit.Middleware keyed by client ip. Live validation is never limited.
package site
