// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteCard is the gateway's JSON representation of one note. Content is the
// raw on-chain string; Body is only present for public notes because the
// gateway never holds wallet keys.
type NoteCard struct {
	Author       string     `json:"author"`
	Content      string     `json:"content"`
	Timestamp    uint64     `json:"timestamp"`
	Visibility   Visibility `json:"visibility"`
	Body         *string    `json:"body"`
	MintEligible bool       `json:"mint_eligible"`
}

// NotesResponse is returned by GET /api/notes/{address}.
type NotesResponse struct {
	Author      string     `json:"author"`
	DisplayName string     `json:"display_name"`
	Notes       []NoteCard `json:"notes"`

	// Length is len(Notes), kept for clients that pre-allocate.
	Length int `json:"length"`
}

// RefreshStats summarises one pass of the gateway index refresher.
type RefreshStats struct {
	Authors int
	Notes   int
	Failed  int
}

// ErrorResponse is the body of every non-2xx gateway reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}
