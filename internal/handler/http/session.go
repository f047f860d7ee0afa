// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// serveSession adapts one session operation to HTTP. Structured failures are
// part of the body, so the status is always 200 unless the body could not
// be decoded.
func serveSession[Req, Resp any](call func(context.Context, Req) Resp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := utils.ReadJSON(r.Body, &req); err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("uri", r.URL.Path).Msg("invalid JSON was passed")
			writeInvalidJSON(w)
			return
		}

		if _, err := utils.WriteJSON(w, call(r.Context(), req), http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing session response")
		}
	}
}

func writeInvalidJSON(w http.ResponseWriter) {
	utils.WriteJSON(w, models.Result{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
}
