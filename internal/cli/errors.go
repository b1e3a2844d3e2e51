package cli

import "errors"

var (
	// ErrInvalidParam is returned for a positional parameter that is not in
	// key=value form.
	ErrInvalidParam = errors.New("parameter must be in key=value form")

	// ErrInvalidStatus is returned for an unknown request status filter.
	ErrInvalidStatus = errors.New("unknown request status")
)
