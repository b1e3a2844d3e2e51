package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-lab-access/models"
)

// Field names for field-level scoping.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldRoom     = "room"
	FieldComputer = "computer"
	FieldSoftware = "software"

	FieldStatus         = "status"
	FieldExpirationDate = "expiration_date"
	FieldReason         = "reason"

	FieldRequestID = "request_id"
	FieldRatings   = "ratings"

	FieldRowIndex = "row_index"
	FieldFileName = "file_name"
	FieldFileData = "file_data"
)

// MaxUploadSize is the largest decoded attachment accepted by the backend.
const MaxUploadSize = 10 << 20

// AccessRequestValidator validates the models handled by the development
// backend: access requests, admin decisions, surveys and uploads.
type AccessRequestValidator struct {
	now func() time.Time
}

// NewAccessRequestValidator constructs an AccessRequestValidator and
// returns it as the Validator interface. now decides what "today" is for
// expiration dates; nil means time.Now.
func NewAccessRequestValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &AccessRequestValidator{now: now}
}

// Validate dispatches on the dynamic type of obj. Supported types, by value
// or pointer: models.AccessRequest, models.Decision, models.Survey,
// models.UploadRequest. Returns ErrUnsupportedType otherwise.
func (v *AccessRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccessRequest:
		return v.validateAccessRequest(ctx, value, fields...)
	case *models.AccessRequest:
		return v.validateAccessRequest(ctx, *value, fields...)

	case models.Decision:
		return v.validateDecision(ctx, value, fields...)
	case *models.Decision:
		return v.validateDecision(ctx, *value, fields...)

	case models.Survey:
		return v.validateSurvey(ctx, value, fields...)
	case *models.Survey:
		return v.validateSurvey(ctx, *value, fields...)

	case models.UploadRequest:
		return v.validateUpload(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUpload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccessRequestValidator) validateAccessRequest(_ context.Context, req models.AccessRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldRoom, FieldComputer, FieldSoftware}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			addr, err := mail.ParseAddress(req.Email)
			if err != nil || addr.Address != strings.TrimSpace(req.Email) {
				return ErrInvalidEmail
			}
		case FieldRoom:
			if strings.TrimSpace(req.Room) == "" {
				return ErrEmptyRoom
			}
		case FieldComputer:
			if strings.TrimSpace(req.Computer) == "" {
				return ErrEmptyComputer
			}
		case FieldSoftware:
			if strings.TrimSpace(req.Software) == "" {
				return ErrEmptySoftware
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDecision requires an expiration date that is not in the past for
// approvals and a reason for rejections.
func (v *AccessRequestValidator) validateDecision(_ context.Context, d models.Decision, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldExpirationDate, FieldReason}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if d.Status != models.StatusApproved && d.Status != models.StatusRejected {
				return ErrInvalidDecision
			}
		case FieldExpirationDate:
			if d.Status != models.StatusApproved {
				continue
			}
			date, err := time.Parse(models.DateLayout, d.ExpirationDate)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidExpiration, d.ExpirationDate)
			}
			if date.Before(truncateDay(v.now())) {
				return fmt.Errorf("%w: %s is in the past", ErrInvalidExpiration, d.ExpirationDate)
			}
		case FieldReason:
			if d.Status == models.StatusRejected && strings.TrimSpace(d.Reason) == "" {
				return ErrEmptyReason
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccessRequestValidator) validateSurvey(_ context.Context, s models.Survey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequestID, FieldRatings}
	}

	for _, f := range fields {
		switch f {
		case FieldRequestID:
			if strings.TrimSpace(s.RequestID) == "" {
				return ErrEmptyRequestID
			}
		case FieldRatings:
			for _, category := range models.RatingCategories {
				if r := s.Ratings[category]; r < 1 || r > 5 {
					return fmt.Errorf("%w: %s=%d", ErrInvalidRating, category, r)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccessRequestValidator) validateUpload(_ context.Context, u models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRowIndex, FieldFileName, FieldFileData}
	}

	for _, f := range fields {
		switch f {
		case FieldRowIndex:
			if u.RowIndex <= 0 {
				return ErrInvalidRowIndex
			}
		case FieldFileName:
			if strings.TrimSpace(u.FileName) == "" {
				return ErrEmptyFileName
			}
		case FieldFileData:
			if u.FileData == "" {
				return ErrInvalidFileData
			}
			if base64.StdEncoding.DecodedLen(len(u.FileData)) > MaxUploadSize {
				return ErrFileTooLarge
			}
			if _, err := base64.StdEncoding.DecodeString(u.FileData); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidFileData, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
