package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/ether-notes/internal/logger"
)

// getVersion replies with the gateway build version as plain text.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Msg("write version response")
	}
}
