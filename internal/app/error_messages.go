// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing texts of the development backend.
//
// Every failed envelope carries one of the Msg* strings as its message, so
// the client shows the same wording whichever transport delivered it.
package app

const (
	// MsgInvalidDataProvided is returned when parameters are missing or
	// malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for unexpected backend failures.
	MsgInternalServerError = "internal server error"

	// MsgUnknownOperation is returned for a path the backend does not serve.
	MsgUnknownOperation = "unknown operation"

	// MsgInvalidLoginPassword is returned when the admin credentials do not
	// match.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpiredOrInvalid is returned when an admin token was given
	// but cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgRequestNotFound       = "request not found"
	MsgRequestAlreadyDecided = "request was already decided"
	MsgRenewalNotFound       = "previous request not found"

	// MsgComputerNotAvailable is returned when the requested computer is
	// already assigned to an active approval.
	MsgComputerNotAvailable = "computer is not available"

	MsgUnknownRoom     = "unknown room"
	MsgUnknownComputer = "unknown computer"
	MsgInvalidStatus   = "invalid status filter"

	MsgSurveyAlreadySubmitted = "survey was already submitted for this request"

	// MsgInvalidExpirationDate is returned when an approval has no
	// expiration date in YYYY-MM-DD form, or the date has passed.
	MsgInvalidExpirationDate = "expiration date must be today or later (YYYY-MM-DD)"

	MsgRejectReasonRequired = "reject reason is required"
	MsgInvalidRating        = "every rating must be between 1 and 5"
	MsgInvalidFile          = "invalid file"
	MsgFileTooLarge         = "file is too large"
)
