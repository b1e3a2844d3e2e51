// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// DefaultFailureMessage is the error text used when the backend reports a
// failure without a message.
const DefaultFailureMessage = "Request failed at backend"

// Envelope is the response shape every backend operation conforms to.
//
// Data is kept as raw JSON so that the client can tell an absent "data" key
// (nil) apart from an explicit null ("null").
type Envelope struct {
	// Success reports whether the backend handled the operation.
	Success bool `json:"success"`

	// Data is the operation payload. Only meaningful when Success is true.
	Data json.RawMessage `json:"data,omitempty"`

	// Message is the user-facing error text when Success is false.
	Message string `json:"message,omitempty"`
}

// OK builds a successful envelope around data. A marshalling failure is
// reported as a failed envelope so the result is always deliverable.
func OK(data any) Envelope {
	if data == nil {
		return Envelope{Success: true}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return Fail("encode response: " + err.Error())
	}

	return Envelope{Success: true, Data: raw}
}

// Fail builds a failed envelope carrying message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// FailureMessage returns Message, or [DefaultFailureMessage] when the
// backend did not provide one.
func (e Envelope) FailureMessage() string {
	if e.Message == "" {
		return DefaultFailureMessage
	}
	return e.Message
}
