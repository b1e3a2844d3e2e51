// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/utils"
	"github.com/MKhiriev/go-lab-access/models"
)

// Reserved query parameters of a poll request. Every other parameter is
// passed to the backend operation.
const (
	queryPath     = "path"
	queryCallback = "callback"
)

// poll answers a cross-origin poll request with a callback script. Backend
// failures are delivered as failed envelopes with status 200; only a
// request that cannot be answered with a script gets an HTTP error.
func (h *Handler) poll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	callback := query.Get(queryCallback)
	if callback == "" {
		log.Warn().Err(ErrMissingCallback).Send()
		http.Error(w, ErrMissingCallback.Error(), http.StatusBadRequest)
		return
	}
	// rejected before the operation runs, so a 400 never hides a write
	if !utils.ValidCallbackName(callback) {
		log.Warn().Err(ErrInvalidCallback).Str("callback", callback).Send()
		http.Error(w, ErrInvalidCallback.Error(), http.StatusBadRequest)
		return
	}

	params := make(models.Params, len(query))
	for key, values := range query {
		if key == queryPath || key == queryCallback || len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}

	env := h.backend.Handle(r.Context(), query.Get(queryPath), params)

	if _, err := utils.WriteCallbackScript(w, callback, env); err != nil {
		log.Err(err).Str("func", "*Handler.poll").Msg("error writing callback script")
	}
}
