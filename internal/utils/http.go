// Package utils holds the small helpers shared by the gateway and the
// client: JSON responses, the resty JSON-RPC client and id generation.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// WriteJSON encodes data and writes it with statusCode. Note bodies are
// user text, so HTML characters are kept as is.
//
// When encoding fails nothing from data reaches the client: the response is
// a bare 500 and the error is returned.
//
//	WriteJSON(w, models.ErrorResponse{Error: "author not tracked"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode json response: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
