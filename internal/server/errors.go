package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no listen
	// address is configured.
	errNoServersAreCreated = errors.New("no JSONP listener configured")
	errNoServersToRun      = errors.New("no JSONP listener to run")
)
