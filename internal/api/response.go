package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/logger"
)

// WriteJSON marshals v as JSON and writes it to w with the given status code.
// Write failures are logged through r's logger.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to write JSON response", zap.Error(err))
	}
}

// WriteText writes body as text/plain, byte for byte.
func WriteText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		logger.FromContext(r.Context()).Error("failed to write text response", zap.Error(err))
	}
}

// CollectionResponse wraps a list result.
type CollectionResponse[T any] struct {
	Results []T `json:"results"`
}

// Collection returns results wrapped for the wire, with nil turned into
// an empty list.
func Collection[T any](results []T) CollectionResponse[T] {
	if results == nil {
		results = []T{}
	}
	return CollectionResponse[T]{Results: results}
}

// DecodeJSON decodes the request body into v. Malformed or unknown input is
// an InvalidArgument error.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.InvalidArgument("request body is empty")
		}
		return domain.InvalidArgument("invalid JSON body: %v", err)
	}
	return nil
}
