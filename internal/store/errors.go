package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRequestNotFound is returned when no request has the given ID.
	ErrRequestNotFound = errors.New("request was not found")

	// ErrRequestAlreadyDecided is returned when a decision targets a request
	// that is no longer pending.
	ErrRequestAlreadyDecided = errors.New("request was already decided")

	// ErrSurveyAlreadySubmitted is returned when a survey for the same
	// request ID was stored before.
	ErrSurveyAlreadySubmitted = errors.New("survey was already submitted")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database errors. Repository methods wrap driver errors with them
// so that the failing step stays visible.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan request row")
	ErrScanningRows     = errors.New("failed to scan request rows")
)
