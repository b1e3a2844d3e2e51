// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the state of the development backend: access
// requests, their uploaded files and survey responses.
//
// [RequestRepository] has an in-memory implementation and a SQL one that
// runs on SQLite or PostgreSQL. Both report domain failures with the
// sentinels in errors.go.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lab-access/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RequestRepository stores access requests and everything attached to them.
type RequestRepository interface {
	// CreateRequest saves req as a new pending request and returns it with
	// its assigned ID.
	CreateRequest(ctx context.Context, req models.AccessRequest) (models.AccessRequest, error)

	// GetRequest returns the request with the given ID or
	// [ErrRequestNotFound].
	GetRequest(ctx context.Context, id int64) (models.AccessRequest, error)

	// ListRequests returns requests with the given status, newest first.
	// [models.StatusAll] lists every request.
	ListRequests(ctx context.Context, status models.RequestStatus) ([]models.AccessRequest, error)

	// Decide applies an admin decision to a pending request. Requests that
	// are no longer pending yield [ErrRequestAlreadyDecided].
	Decide(ctx context.Context, id int64, decision models.Decision) (models.AccessRequest, error)

	// ExpireApprovals marks approved requests whose expiration date is
	// before today as expired and returns how many were changed.
	ExpireApprovals(ctx context.Context, today time.Time) (int64, error)

	// AttachFile stores an uploaded file for an existing request.
	AttachFile(ctx context.Context, file models.StoredFile) error

	// SaveSurvey stores a survey. Only one survey per request ID is
	// accepted; a second one yields [ErrSurveyAlreadySubmitted].
	SaveSurvey(ctx context.Context, survey models.Survey) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
