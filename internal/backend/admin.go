package backend

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-lab-access/internal/crypto"
	"github.com/MKhiriev/go-lab-access/internal/utils"
	"github.com/MKhiriev/go-lab-access/models"
)

func (b *Backend) adminLogin(ctx context.Context, p models.Params) (any, error) {
	email := param(p, "email")
	password := p.String("password")

	if b.auth.AdminEmail == "" || b.auth.AdminPasswordHash == "" {
		b.logger.Warn().Msg("admin login attempted but no admin credentials are configured")
		return nil, errInvalidCredentials
	}
	if !strings.EqualFold(email, b.auth.AdminEmail) {
		return nil, errInvalidCredentials
	}

	if err := b.passwords.Verify(b.auth.AdminPasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	token, err := utils.GenerateJWTToken(b.auth.TokenIssuer, b.auth.AdminEmail, b.auth.TokenDuration, b.auth.TokenSignKey)
	if err != nil {
		return nil, err
	}

	return models.AdminSession{
		Token:     token.SignedString,
		Email:     token.Email,
		ExpiresAt: expiresAt(token),
	}, nil
}

func expiresAt(token models.Token) time.Time {
	if token.ExpiresAt == nil {
		return time.Time{}
	}
	return token.ExpiresAt.Time
}

// checkAuth reports validity instead of failing, so an expired session is
// an ordinary answer for the caller.
func (b *Backend) checkAuth(_ context.Context, p models.Params) (any, error) {
	token, err := b.verifyToken(param(p, "token"))
	if err != nil {
		return models.AuthCheck{Valid: false}, nil
	}

	return models.AuthCheck{
		Valid:     true,
		Email:     token.Email,
		ExpiresAt: expiresAt(token),
	}, nil
}

func (b *Backend) verifyToken(raw string) (models.Token, error) {
	if raw == "" || b.auth.TokenSignKey == "" {
		return models.Token{}, errInvalidToken
	}

	token, err := utils.ValidateAndParseJWTToken(raw, b.auth.TokenSignKey, b.auth.TokenIssuer)
	if err != nil {
		return models.Token{}, errors.Join(errInvalidToken, err)
	}
	if !strings.EqualFold(token.Email, b.auth.AdminEmail) {
		return models.Token{}, errInvalidToken
	}

	return token, nil
}

// checkOptionalToken rejects a token that was sent but does not verify.
// Admin operations carry no token on the wire, so its absence is accepted.
func (b *Backend) checkOptionalToken(p models.Params) error {
	raw := param(p, "token")
	if raw == "" {
		return nil
	}
	_, err := b.verifyToken(raw)
	return err
}

func (b *Backend) adminRequests(ctx context.Context, p models.Params) (any, error) {
	if err := b.checkOptionalToken(p); err != nil {
		return nil, err
	}

	status, ok := models.ParseRequestStatus(param(p, "status"))
	if !ok {
		return nil, errInvalidStatus
	}

	return b.requests.ListRequests(ctx, status)
}

// approveRequest approves a pending request. An empty activation key is
// replaced with a generated one.
func (b *Backend) approveRequest(ctx context.Context, p models.Params) (any, error) {
	if err := b.checkOptionalToken(p); err != nil {
		return nil, err
	}

	id, err := paramInt64(p, "requestId")
	if err != nil {
		return nil, err
	}

	decision := models.Decision{
		Status:         models.StatusApproved,
		ExpirationDate: param(p, "expirationDate"),
		AdminNotes:     param(p, "adminNotes"),
		ActivationKey:  param(p, "activationKey"),
		DecidedAt:      b.now(),
	}
	if err = b.validator.Validate(ctx, decision); err != nil {
		return nil, err
	}

	if decision.ActivationKey == "" {
		if decision.ActivationKey, err = b.keys.Generate(); err != nil {
			return nil, err
		}
	}

	approved, err := b.requests.Decide(ctx, id, decision)
	if err != nil {
		return nil, err
	}

	b.logger.Info().Int64("request_id", id).Str("expiration_date", decision.ExpirationDate).Msg("request approved")
	return approved, nil
}

func (b *Backend) rejectRequest(ctx context.Context, p models.Params) (any, error) {
	if err := b.checkOptionalToken(p); err != nil {
		return nil, err
	}

	id, err := paramInt64(p, "requestId")
	if err != nil {
		return nil, err
	}

	decision := models.Decision{
		Status:    models.StatusRejected,
		Reason:    param(p, "reason"),
		DecidedAt: b.now(),
	}
	if err = b.validator.Validate(ctx, decision); err != nil {
		return nil, err
	}

	rejected, err := b.requests.Decide(ctx, id, decision)
	if err != nil {
		return nil, err
	}

	b.logger.Info().Int64("request_id", id).Msg("request rejected")
	return rejected, nil
}
