package api

import (
	"context"
	"net/http"
)

// Pinger reports whether a backing service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health returns a handler answering 200 {"status":"ok"} while p answers
// and 503 otherwise.
func Health(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			WriteJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
