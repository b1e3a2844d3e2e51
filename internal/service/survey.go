package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/validators"
	"github.com/MKhiriev/go-lab-access/models"
)

const pngDataURLPrefix = "data:image/png;base64,"

var ratingLabels = map[int]string{
	1: "Sangat Kurang",
	2: "Kurang Baik",
	3: "Cukup",
	4: "Baik",
	5: "Sangat Baik",
}

// RatingLabel returns the label shown next to a 1..5 score, or "" for any
// other value.
func RatingLabel(score int) string {
	return ratingLabels[score]
}

// NormalizeLogo turns a logo value into something an image element can
// load. URLs and data URLs are kept; bare base64 is assumed to be PNG.
func NormalizeLogo(logo string) string {
	logo = strings.TrimSpace(logo)
	switch {
	case logo == "":
		return ""
	case strings.HasPrefix(logo, "data:"),
		strings.HasPrefix(logo, "http://"),
		strings.HasPrefix(logo, "https://"):
		return logo
	default:
		return pngDataURLPrefix + logo
	}
}

type surveyService struct {
	api       LabAPI
	validator validators.Validator
	logger    *logger.Logger
}

func NewSurveyService(api LabAPI, validator validators.Validator, logger *logger.Logger) SurveyService {
	return &surveyService{api: api, validator: validator, logger: logger}
}

func (s *surveyService) Branding(ctx context.Context) (models.Branding, error) {
	branding, err := decode[models.Branding](s.api.GetBranding(ctx))
	if err != nil {
		return models.Branding{}, err
	}

	branding.Logo = NormalizeLogo(branding.Logo)
	return branding, nil
}

func (s *surveyService) Submit(ctx context.Context, survey models.Survey) error {
	survey.RequestID = strings.TrimSpace(survey.RequestID)
	if err := s.validator.Validate(ctx, survey); err != nil {
		return err
	}

	if _, err := s.api.SubmitQuisioner(ctx, survey.Params()); err != nil {
		return mapAdapterError(err)
	}

	s.logger.Info().Str("request_id", survey.RequestID).Msg("survey submitted")
	return nil
}

func (s *surveyService) Attach(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UploadResult{}, err
	}

	res, err := s.api.UploadFile(ctx, req)
	if err != nil {
		return models.UploadResult{}, mapAdapterError(err)
	}
	if !res.Verified() {
		s.logger.Warn().Str("file", req.FileName).Msg("upload sent without confirmation")
	}

	return res, nil
}
