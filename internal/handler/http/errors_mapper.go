package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ether-notes/internal/app"
	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/store"
	"github.com/MKhiriev/ether-notes/internal/utils"
	"github.com/MKhiriev/ether-notes/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order: a not-found note wrapping a chain
// failure is reported as 404.
var errorStatuses = []errorStatus{
	{service.ErrInvalidAddress, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},
	{service.ErrNoteNotFound, http.StatusNotFound},
	{chain.ErrChainCallFailed, http.StatusBadGateway},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError replies with the mapped status. Details of 5xx errors stay in
// the log.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	var msg string
	switch {
	case status < http.StatusInternalServerError:
		msg = err.Error()
	case status == http.StatusInternalServerError:
		msg = app.MsgInternalServerError
	default:
		msg = http.StatusText(status)
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Error:   msg,
		TraceID: w.Header().Get(traceIDHeader),
	}, status)
}
