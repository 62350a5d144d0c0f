package admin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/database"
	"github.com/johnwards/temple/internal/seed"
	"github.com/johnwards/temple/internal/store"
	"github.com/johnwards/temple/internal/workspace"
)

// Handler serves the admin API at /_temple/.
type Handler struct {
	store *store.SQLiteStore
}

// Reset drops all data from all tables and re-runs seeds.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := ResetData(r.Context(), h.store); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// SeedData runs seed data without dropping existing data first.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Seed(r.Context(), h.store); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Import handles POST /_temple/import. The body is a YAML workspace
// document; the response counts what was created. The import runs in one
// transaction, so a failure creates nothing.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	doc, err := workspace.Parse(r.Body)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	sum, err := ImportData(r.Context(), h.store, doc)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	api.WriteJSON(w, r, http.StatusCreated, sum)
}

// Export handles GET /_temple/export and writes the workspace as YAML.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := workspace.Export(r.Context(), h.store)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := workspace.Write(&buf, doc); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ResetData clears all data tables and re-seeds.
func ResetData(ctx context.Context, s *store.SQLiteStore) error {
	if err := database.Reset(ctx, s.DB()); err != nil {
		return err
	}
	if err := seed.Seed(ctx, s); err != nil {
		return fmt.Errorf("re-seed: %w", err)
	}
	return nil
}

// ImportData imports doc in a single transaction.
func ImportData(ctx context.Context, s *store.SQLiteStore, doc workspace.Document) (workspace.Summary, error) {
	var sum workspace.Summary
	err := s.WithTx(ctx, func(tx *store.SQLiteStore) error {
		var err error
		sum, err = workspace.Import(ctx, tx, doc)
		return err
	})
	if err != nil {
		return workspace.Summary{}, err
	}
	return sum, nil
}
