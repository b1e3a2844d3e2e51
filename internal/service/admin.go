package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/validators"
	"github.com/MKhiriev/go-lab-access/models"
)

type adminService struct {
	api       LabAPI
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.RWMutex
	session *models.AdminSession
}

func NewAdminService(api LabAPI, validator validators.Validator, logger *logger.Logger) AdminService {
	return &adminService{api: api, validator: validator, logger: logger}
}

func (a *adminService) Login(ctx context.Context, email, password string) (models.AdminSession, error) {
	session, err := decode[models.AdminSession](a.api.AdminLogin(ctx, email, password))
	if err != nil {
		return models.AdminSession{}, err
	}
	if session.Token == "" {
		return models.AdminSession{}, ErrInvalidResponse
	}

	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	a.logger.Info().Str("email", session.Email).Msg("admin logged in")
	return session, nil
}

func (a *adminService) CheckSession(ctx context.Context) (models.AuthCheck, error) {
	session, ok := a.Session()
	if !ok {
		return models.AuthCheck{}, ErrNotLoggedIn
	}

	check, err := decode[models.AuthCheck](a.api.CheckAuth(ctx, session.Token))
	if err != nil {
		return models.AuthCheck{}, err
	}
	if !check.Valid {
		a.Logout()
		return check, ErrSessionExpired
	}

	return check, nil
}

func (a *adminService) Session() (models.AdminSession, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return models.AdminSession{}, false
	}
	return *a.session, true
}

func (a *adminService) Logout() {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()
}

func (a *adminService) ListRequests(ctx context.Context, status models.RequestStatus) ([]models.AccessRequest, error) {
	if _, ok := a.Session(); !ok {
		return nil, ErrNotLoggedIn
	}

	requests, err := decode[[]models.AccessRequest](a.api.GetAdminRequests(ctx, string(status)))
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (a *adminService) Approve(ctx context.Context, requestID int64, expirationDate, adminNotes, activationKey string) (models.AccessRequest, error) {
	if _, ok := a.Session(); !ok {
		return models.AccessRequest{}, ErrNotLoggedIn
	}

	decision := models.Decision{Status: models.StatusApproved, ExpirationDate: expirationDate}
	if err := a.validator.Validate(ctx, decision); err != nil {
		return models.AccessRequest{}, err
	}

	approved, err := decode[models.AccessRequest](a.api.ApproveRequest(ctx, requestID, expirationDate, adminNotes, activationKey))
	if err != nil {
		return models.AccessRequest{}, err
	}

	a.logger.Info().Int64("request_id", requestID).Msg("request approved")
	return approved, nil
}

func (a *adminService) Reject(ctx context.Context, requestID int64, reason string) (models.AccessRequest, error) {
	if _, ok := a.Session(); !ok {
		return models.AccessRequest{}, ErrNotLoggedIn
	}

	decision := models.Decision{Status: models.StatusRejected, Reason: reason}
	if err := a.validator.Validate(ctx, decision); err != nil {
		return models.AccessRequest{}, err
	}

	rejected, err := decode[models.AccessRequest](a.api.RejectRequest(ctx, requestID, reason))
	if err != nil {
		return models.AccessRequest{}, err
	}

	a.logger.Info().Int64("request_id", requestID).Msg("request rejected")
	return rejected, nil
}
