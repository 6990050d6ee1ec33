// Package form models the forms of a page and the error decorations shown on
// their fields.
//
// A Document is rebuilt for every request from what the browser sent (field
// values and the error text currently displayed), mutated by the presenter
// operations and the per-field lifecycle, then rendered or diffed back to the
// browser. Presenter operations on unknown forms or fields are silent no-ops
// so partial markup never breaks a request.
package form
