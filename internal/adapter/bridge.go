// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/models"
)

// BridgedTransport calls backend procedures through a same-runtime [Bridge].
type BridgedTransport struct {
	bridge Bridge
	logger *logger.Logger
}

// NewBridgedTransport constructs a [BridgedTransport] over bridge.
func NewBridgedTransport(bridge Bridge, logger *logger.Logger) *BridgedTransport {
	return &BridgedTransport{bridge: bridge, logger: logger}
}

// Mode implements [Transport].
func (t *BridgedTransport) Mode() Mode {
	return ModeBridged
}

// Invoke implements [Transport]. The procedure named operationID receives
// params as its only argument, or no argument when params is nil. Success
// values shaped like an envelope are unwrapped with the same rule as remote
// mode; any other value is returned as JSON. Failures are returned as
// [BridgeError].
func (t *BridgedTransport) Invoke(ctx context.Context, operationID string, params models.Params) (json.RawMessage, error) {
	var args []any
	if params != nil {
		args = []any{params}
	}

	value, err := t.run(ctx, operationID, args)
	if err != nil {
		return nil, err
	}

	if isEnvelope(value) {
		return settleEnvelope(value)
	}
	return value, nil
}

// UploadFile implements [Transport]. The bridge returns a real response, so
// the result is verified.
func (t *BridgedTransport) UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	value, err := t.Invoke(ctx, models.OpUploadFile, req.Params())
	if err != nil {
		return models.UploadResult{}, err
	}

	return models.UploadResult{Success: true, Data: value}, nil
}

func (t *BridgedTransport) run(ctx context.Context, name string, args []any) (json.RawMessage, error) {
	resCh := make(chan callResult, 1)
	var once sync.Once
	settle := func(res callResult) {
		once.Do(func() { resCh <- res })
	}

	onSuccess := func(value any) {
		raw, err := toRawJSON(value)
		if err != nil {
			settle(callResult{err: fmt.Errorf("encode %s result: %w", name, err)})
			return
		}
		settle(callResult{value: raw})
	}
	onFailure := func(reason any) {
		t.logger.Error().Str("operation", name).Any("reason", reason).Msg("bridge call failed")
		settle(callResult{err: &BridgeError{Value: reason}})
	}

	t.bridge.Run(name, onSuccess, onFailure, args...)

	select {
	case res := <-resCh:
		return res.value, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("bridge call %s: %w", name, ctx.Err())
	}
}

func toRawJSON(value any) (json.RawMessage, error) {
	switch v := value.(type) {
	case json.RawMessage:
		return v, nil
	case nil:
		return json.RawMessage("null"), nil
	default:
		return json.Marshal(v)
	}
}
