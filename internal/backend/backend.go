// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend is an in-process implementation of the lab-access
// backend. It serves every path of the wire contract and answers with
// response envelopes, so the same code can sit behind the JSONP HTTP
// handler and behind a procedure bridge.
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lab-access/internal/app"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/crypto"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/store"
	"github.com/MKhiriev/go-lab-access/internal/validators"
	"github.com/MKhiriev/go-lab-access/models"
)

// operation handles one backend path. The returned value becomes the data
// of a successful envelope and must not be nil.
type operation func(ctx context.Context, p models.Params) (any, error)

// Backend dispatches backend paths to their handlers.
type Backend struct {
	requests  store.RequestRepository
	catalog   Catalog
	validator validators.Validator
	passwords crypto.PasswordVerifier
	keys      crypto.ActivationKeyGenerator
	auth      config.BackendAuth
	now       func() time.Time
	logger    *logger.Logger

	routes map[string]operation
}

// clockSetter is implemented by repositories that stamp records with the
// current time.
type clockSetter interface {
	SetClock(now func() time.Time)
}

// Option customizes a [Backend].
type Option func(*Backend)

// WithCatalog replaces the [DefaultCatalog].
func WithCatalog(c Catalog) Option {
	return func(b *Backend) { b.catalog = c }
}

// WithPasswordVerifier replaces the bcrypt verifier.
func WithPasswordVerifier(v crypto.PasswordVerifier) Option {
	return func(b *Backend) { b.passwords = v }
}

// WithActivationKeys replaces the random activation key generator.
func WithActivationKeys(g crypto.ActivationKeyGenerator) Option {
	return func(b *Backend) { b.keys = g }
}

// WithClock replaces time.Now for the backend, its validator and, when the
// repository supports it, the repository timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

// NewBackend constructs a [Backend] over requests.
func NewBackend(requests store.RequestRepository, auth config.BackendAuth, logger *logger.Logger, opts ...Option) *Backend {
	b := &Backend{
		requests:  requests,
		catalog:   DefaultCatalog(),
		passwords: crypto.NewPasswordVerifier(),
		keys:      crypto.NewActivationKeys(),
		auth:      auth,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.validator = validators.NewAccessRequestValidator(b.now)
	if c, ok := requests.(clockSetter); ok {
		c.SetClock(b.now)
	}

	b.routes = map[string]operation{
		models.ResolvePath(models.OpGetInitialData):            b.initialData,
		models.ResolvePath(models.OpGetAvailableComputers):     b.availableComputers,
		models.ResolvePath(models.OpGetBranding):               b.branding,
		models.ResolvePath(models.OpCheckSoftwareRestrictions): b.checkRestrictions,
		models.ResolvePath(models.OpSubmitRequest):             b.submitRequest,
		models.ResolvePath(models.OpAdminLogin):                b.adminLogin,
		models.ResolvePath(models.OpCheckAuth):                 b.checkAuth,
		models.ResolvePath(models.OpGetAdminRequests):          b.adminRequests,
		models.ResolvePath(models.OpApproveRequest):            b.approveRequest,
		models.ResolvePath(models.OpRejectRequest):             b.rejectRequest,
		models.ResolvePath(models.OpSubmitQuisioner):           b.submitQuisioner,
		models.PathUploadFile:                                  b.uploadFile,
	}

	return b
}

// Handle runs the operation served under path. It never returns an error:
// failures are reported as envelopes with a user-facing message.
func (b *Backend) Handle(ctx context.Context, path string, params models.Params) models.Envelope {
	log := logger.FromContext(ctx)

	op, ok := b.routes[path]
	if !ok {
		return b.fail(ctx, path, fmt.Errorf("%w: %q", errUnknownPath, path))
	}

	data, err := op(ctx, params.Clone())
	if err != nil {
		return b.fail(ctx, path, err)
	}

	log.Debug().Str("path", path).Msg("operation handled")
	return models.OK(data)
}

// Paths lists the paths served by Handle.
func (b *Backend) Paths() []string {
	paths := make([]string, 0, len(b.routes))
	for p := range b.routes {
		paths = append(paths, p)
	}
	return paths
}

func (b *Backend) fail(ctx context.Context, path string, err error) models.Envelope {
	msg := messageFromError(err)

	event := logger.FromContext(ctx).Debug()
	if errors.Is(err, errInvalidCredentials) || errors.Is(err, errInvalidToken) {
		event = logger.FromContext(ctx).Warn()
	}
	if msg == app.MsgInternalServerError {
		event = logger.FromContext(ctx).Error()
	}
	event.Err(err).Str("path", path).Str("message", msg).Msg("operation failed")

	return models.Fail(msg)
}
