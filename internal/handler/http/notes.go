// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
)

// getNotes serves the notes of one author, newest first. Encrypted notes
// come back locked with a null body.
func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := h.authorParam(w, r)
	if !ok {
		return
	}

	resp, err := h.services.GatewayService.NotesFor(ctx, author)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNotes").Str("author", author.Hex()).Msg("failed to get notes")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// trackAuthor adds an author to the index and indexes them right away.
func (h *Handler) trackAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := h.authorParam(w, r)
	if !ok {
		return
	}

	if err := h.services.GatewayService.Track(ctx, author); err != nil {
		log.Err(err).Str("func", "*Handler.trackAuthor").Str("author", author.Hex()).Msg("failed to track author")
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) authorParam(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	raw := chi.URLParam(r, "address")
	if err := h.validator.Validate(r.Context(), raw); err != nil {
		h.writeError(w, r, err)
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}
