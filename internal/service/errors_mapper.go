// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/app"
)

// mapAdapterError translates a backend failure into a service error.
// Messages without a service counterpart pass through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *adapter.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}

	switch appErr.Message {
	case app.MsgInvalidLoginPassword:
		return ErrWrongPassword
	case app.MsgTokenIsExpiredOrInvalid:
		return ErrSessionExpired
	case app.MsgRequestNotFound:
		return ErrRequestNotFound
	case app.MsgRequestAlreadyDecided:
		return ErrRequestAlreadyDecided
	case app.MsgSurveyAlreadySubmitted:
		return ErrSurveyAlreadySubmitted
	}

	return err
}

func decode[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, mapAdapterError(err)
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return out, nil
}
