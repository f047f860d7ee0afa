package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// adminQueryParam marks the caller of /api/app-data as an administrator.
const adminQueryParam = "admin"

// filterAppData returns the app data contributed by the installed plugins.
// Failed outcomes are already logged by the dispatcher and never change the
// status code.
func (h *Handler) filterAppData(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := strconv.ParseBool(r.URL.Query().Get(adminQueryParam))

	data := map[string]any{}
	h.hooks.OnFilterAppData(r.Context(), isAdmin, data)

	utils.WriteJSON(w, data, http.StatusOK)
}

func (h *Handler) loginSuccess(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := utils.ReadJSON(r.Body, &account); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid login-success payload")
		writeInvalidJSON(w)
		return
	}

	outcomes := h.hooks.OnLoginSuccess(r.Context(), account)

	result := models.Result{Success: true}
	for _, outcome := range outcomes {
		if !outcome.OK() {
			result.Success = false
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
