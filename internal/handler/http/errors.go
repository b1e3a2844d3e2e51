package http

import "errors"

var (
	// ErrMissingCallback is returned when a poll request has no callback
	// parameter, so there is nothing to call with the envelope.
	ErrMissingCallback = errors.New("missing `callback` query parameter")

	// ErrInvalidCallback is returned when the callback parameter is not a
	// plain identifier.
	ErrInvalidCallback = errors.New("invalid `callback` query parameter")

	// ErrInvalidUploadBody is returned when the upload body is not a JSON
	// object.
	ErrInvalidUploadBody = errors.New("upload body must be a JSON object")
)
