// Package views renders the site's HTML as templ components.
//
// Form state lives in the DataStar signal store: $fields.<id> holds a control's
// value, $errors.<id> the text of its <id>Error slot, $invalid.<id> its error
// decoration and $notices.<noticeId> the success notice. The server patches
// these signals; the markup binds to them.
package views
