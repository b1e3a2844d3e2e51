package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned without any network I/O when remote mode
	// is selected but no API URL is configured.
	ErrConfiguration = errors.New("API URL (ADAPTER_API_URL) is not configured")

	// ErrTransport marks failures below the application layer: the script
	// could not be loaded (network, DNS, HTTP error status).
	ErrTransport = errors.New("transport failure")

	// ErrApplication marks envelopes that arrived with success=false.
	ErrApplication = errors.New("application failure")

	// ErrBridge marks failures reported by the bridge failure callback.
	ErrBridge = errors.New("bridge failure")

	// ErrTimeout is returned when no response arrived within the configured
	// request timeout.
	ErrTimeout = errors.New("no response before request timeout")
)

// ApplicationError is a backend-declared failure. Its text is exactly the
// backend message, or [models.DefaultFailureMessage] when none was given.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// Is reports ErrApplication as the error kind.
func (e *ApplicationError) Is(target error) bool {
	return target == ErrApplication
}

// TransportError reports that the script at URL could not be loaded.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("script load failed. URL: %s", e.URL)
	}
	return fmt.Sprintf("script load failed. URL: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as the error kind.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// BridgeError carries the value passed to the bridge failure callback,
// unmodified.
type BridgeError struct {
	Value any
}

func (e *BridgeError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap exposes the native value when it is itself an error.
func (e *BridgeError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Is reports ErrBridge as the error kind.
func (e *BridgeError) Is(target error) bool {
	return target == ErrBridge
}
