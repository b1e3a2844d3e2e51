package service

import (
	"time"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/validators"
)

type Services struct {
	SurveyService SurveyService
	AdminService  AdminService
}

func NewServices(api LabAPI, logger *logger.Logger) *Services {
	validator := validators.NewAccessRequestValidator(time.Now)

	return &Services{
		SurveyService: NewSurveyService(api, validator, logger),
		AdminService:  NewAdminService(api, validator, logger),
	}
}
