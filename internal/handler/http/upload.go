package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/utils"
	"github.com/MKhiriev/go-lab-access/models"
)

// upload accepts the opaque upload submission. Remote callers never read
// the answer, but the envelope is still returned for tools that can.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.Params
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUploadBody))
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil || body == nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		log.Warn().Err(fmt.Errorf("%w: %w", ErrInvalidUploadBody, err)).Send()
		http.Error(w, ErrInvalidUploadBody.Error(), http.StatusBadRequest)
		return
	}

	path := body.String("path")
	delete(body, "path")

	var env models.Envelope
	if path != models.PathUploadFile {
		env = models.Fail(fmt.Sprintf("unsupported upload path %q", path))
	} else {
		env = h.backend.Handle(r.Context(), path, body)
	}

	if _, err := utils.WriteJSON(w, env, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error writing upload response")
	}
}
