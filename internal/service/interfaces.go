// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side use cases built on the lab-access
// API: the satisfaction survey and the admin review workflow.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-lab-access/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LabAPI is the part of the API client the services depend on.
type LabAPI interface {
	GetBranding(ctx context.Context) (json.RawMessage, error)
	SubmitQuisioner(ctx context.Context, payload models.Params) (json.RawMessage, error)
	UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)

	AdminLogin(ctx context.Context, email, password string) (json.RawMessage, error)
	CheckAuth(ctx context.Context, token string) (json.RawMessage, error)
	GetAdminRequests(ctx context.Context, status string) (json.RawMessage, error)
	ApproveRequest(ctx context.Context, requestID int64, expirationDate, adminNotes, activationKey string) (json.RawMessage, error)
	RejectRequest(ctx context.Context, requestID int64, reason string) (json.RawMessage, error)
}

// SurveyService drives the satisfaction survey page.
type SurveyService interface {
	// Branding returns the page branding with the logo normalized into
	// something an image element can load.
	Branding(ctx context.Context) (models.Branding, error)

	// Submit validates the survey and sends it.
	Submit(ctx context.Context, survey models.Survey) error

	// Attach validates and uploads a file for a request row. Remote uploads
	// are opaque; check [models.UploadResult.Verified] before relying on it.
	Attach(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)
}

// AdminService drives the admin review workflow. It keeps the session token
// in memory only.
type AdminService interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (models.AdminSession, error)

	// CheckSession asks the backend whether the current session is still
	// valid. An invalid session is dropped and reported as ErrSessionExpired.
	CheckSession(ctx context.Context) (models.AuthCheck, error)

	// Session returns the current session, if any.
	Session() (models.AdminSession, bool)

	// Logout forgets the current session.
	Logout()

	ListRequests(ctx context.Context, status models.RequestStatus) ([]models.AccessRequest, error)
	Approve(ctx context.Context, requestID int64, expirationDate, adminNotes, activationKey string) (models.AccessRequest, error)
	Reject(ctx context.Context, requestID int64, reason string) (models.AccessRequest, error)
}
