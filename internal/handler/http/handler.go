package http

import (
	"github.com/MKhiriev/go-lab-access/internal/backend"
	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// maxUploadBody bounds the opaque upload body; base64 inflates the file by
// a third.
const maxUploadBody = 16 << 20

type Handler struct {
	backend *backend.Backend

	logger *logger.Logger
}

func NewHandler(b *backend.Backend, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend: b,
		logger:  logger,
	}
}
