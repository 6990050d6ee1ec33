package binder

import "errors"

var (
	// ErrBinderNotApplicable tells the caller to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
)

// IsBindError reports whether err was produced while parsing request input.
func IsBindError(err error) bool {
	return errors.Is(err, ErrInvalidForm) ||
		errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrInvalidSignals) ||
		errors.Is(err, ErrUnsupportedMediaType)
}
