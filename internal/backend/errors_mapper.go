package backend

import (
	"errors"

	"github.com/MKhiriev/go-lab-access/internal/app"
	"github.com/MKhiriev/go-lab-access/internal/store"
	"github.com/MKhiriev/go-lab-access/internal/validators"
)

// errorMessageList is checked in order; the first match wins.
var errorMessageList = []struct {
	err error
	msg string
}{
	{errInvalidParam, app.MsgInvalidDataProvided},
	{errUnknownRoom, app.MsgUnknownRoom},
	{errUnknownComputer, app.MsgUnknownComputer},
	{errComputerBusy, app.MsgComputerNotAvailable},
	{errInvalidCredentials, app.MsgInvalidLoginPassword},
	{errInvalidToken, app.MsgTokenIsExpiredOrInvalid},
	{errInvalidStatus, app.MsgInvalidStatus},
	{errRenewalNotFound, app.MsgRenewalNotFound},
	{errUnknownPath, app.MsgUnknownOperation},

	{store.ErrRequestNotFound, app.MsgRequestNotFound},
	{store.ErrRequestAlreadyDecided, app.MsgRequestAlreadyDecided},
	{store.ErrSurveyAlreadySubmitted, app.MsgSurveyAlreadySubmitted},

	{validators.ErrInvalidExpiration, app.MsgInvalidExpirationDate},
	{validators.ErrEmptyReason, app.MsgRejectReasonRequired},
	{validators.ErrInvalidRating, app.MsgInvalidRating},
	{validators.ErrFileTooLarge, app.MsgFileTooLarge},
	{validators.ErrInvalidFileData, app.MsgInvalidFile},
	{validators.ErrEmptyFileName, app.MsgInvalidFile},
}

// validationErrors are shown to the user with their own wording.
var validationErrors = []error{
	validators.ErrEmptyName,
	validators.ErrInvalidEmail,
	validators.ErrEmptyRoom,
	validators.ErrEmptyComputer,
	validators.ErrEmptySoftware,
	validators.ErrEmptyRequestID,
	validators.ErrInvalidRowIndex,
	validators.ErrInvalidDecision,
}

// messageFromError returns the user-facing text for err.
func messageFromError(err error) string {
	for _, m := range errorMessageList {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return app.MsgInternalServerError
}
