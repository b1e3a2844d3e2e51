package backend

import "errors"

var (
	errInvalidParam       = errors.New("invalid parameter")
	errUnknownRoom        = errors.New("unknown room")
	errUnknownComputer    = errors.New("unknown computer")
	errComputerBusy       = errors.New("computer is not available")
	errInvalidCredentials = errors.New("invalid admin credentials")
	errInvalidToken       = errors.New("invalid admin token")
	errInvalidStatus      = errors.New("invalid status filter")
	errRenewalNotFound    = errors.New("renewal request not found")
	errUnknownPath        = errors.New("unknown path")
)
