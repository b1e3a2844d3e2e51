// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transports used to reach the lab-access
// backend.
//
// The primary abstraction is [Transport], which decouples the API client
// from the way a call travels. Two implementations exist:
//
//   - [BridgedTransport] delegates to a same-runtime procedure bridge
//     ([Bridge]) that is only present when running inside the host platform;
//   - [RemoteTransport] issues cross-origin poll requests: a GET whose
//     response is a script calling a per-request callback token with the
//     response envelope.
//
// Errors are reported with the sentinels in errors.go so that callers can
// tell configuration, transport, application and bridge failures apart with
// [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-lab-access/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Mode names the transport selected for a client.
type Mode string

const (
	// ModeBridged is the same-runtime procedure-call path.
	ModeBridged Mode = "bridged"
	// ModeRemote is the cross-origin script-injection path.
	ModeRemote Mode = "remote"
)

// Transport delivers operations to the backend and normalizes the outcome.
type Transport interface {
	// Mode reports which transport this is.
	Mode() Mode

	// Invoke runs operationID with params and returns the resolved payload.
	// It completes exactly once: either with a value or with an error.
	Invoke(ctx context.Context, operationID string, params models.Params) (json.RawMessage, error)

	// UploadFile submits a file. Remote mode yields an opaque result that
	// was sent but never confirmed.
	UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)
}

// Bridge is a same-runtime procedure-call bridge. Run calls the procedure
// registered under name with the positional args and must invoke exactly one
// of onSuccess or onFailure, possibly from another goroutine.
type Bridge interface {
	Run(name string, onSuccess func(value any), onFailure func(reason any), args ...any)
}
