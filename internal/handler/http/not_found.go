// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ether-notes/internal/utils"
	"github.com/MKhiriev/ether-notes/models"
)

// notFound answers both unknown paths and unsupported methods with 404, so
// the API does not reveal which methods a known route accepts.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
