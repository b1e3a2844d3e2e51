// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// notFoundForOtherMethods is installed as the router's MethodNotAllowed
// handler. The endpoint only answers GET polls and POST uploads; any other
// method gets 404 rather than chi's 405, so scanners learn nothing about the
// route table.
func notFoundForOtherMethods(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		logger.FromRequest(r).Debug().Str("method", r.Method).Msg("unsupported method")
		http.NotFound(w, r)
	}
}
