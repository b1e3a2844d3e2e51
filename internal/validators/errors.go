package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyRoom         = errors.New("room is required")
	ErrEmptyComputer     = errors.New("computer is required")
	ErrEmptySoftware     = errors.New("software is required")
	ErrInvalidDecision   = errors.New("decision must approve or reject")
	ErrInvalidExpiration = errors.New("invalid expiration date")
	ErrEmptyReason       = errors.New("reject reason is required")
	ErrEmptyRequestID    = errors.New("request ID is required")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidRowIndex   = errors.New("invalid row index")
	ErrEmptyFileName     = errors.New("file name is required")
	ErrInvalidFileData   = errors.New("file data must be non-empty base64")
	ErrFileTooLarge      = errors.New("file is too large")
)
