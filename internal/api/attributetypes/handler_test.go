package attributetypes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnwards/temple/internal/api"
	"github.com/johnwards/temple/internal/api/attributetypes"
	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/seed"
	"github.com/johnwards/temple/internal/store"
	"github.com/johnwards/temple/internal/testhelpers"
)

func setupServer(t *testing.T) (*httptest.Server, *store.SQLiteStore) {
	t.Helper()
	s := store.New(testhelpers.NewMigratedDB(t))
	if err := seed.Seed(context.Background(), s); err != nil {
		t.Fatalf("seed: %v", err)
	}

	mux := http.NewServeMux()
	attributetypes.RegisterRoutes(mux, s)

	srv := httptest.NewServer(api.Chain(mux, api.RequestID(nil)))
	t.Cleanup(srv.Close)
	return srv, s
}

func TestListAttributeTypes(t *testing.T) {
	srv, _ := setupServer(t)

	resp := testhelpers.Do(t, http.MethodGet, srv.URL+"/api/v1/attribute-types", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	list := testhelpers.Decode[api.CollectionResponse[domain.AttributeType]](t, resp)
	if len(list.Results) != 3 {
		t.Fatalf("expected 3 seeded types, got %d", len(list.Results))
	}
	if list.Results[0].Slug != "string" {
		t.Errorf("expected first type 'string', got %q", list.Results[0].Slug)
	}
}

func TestCreateGetAttributeType(t *testing.T) {
	srv, _ := setupServer(t)

	resp := testhelpers.Do(t, http.MethodPost, srv.URL+"/api/v1/attribute-types", `{"name":"Timestamp"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp = testhelpers.Do(t, http.MethodGet, srv.URL+"/api/v1/attribute-types/timestamp", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if at := testhelpers.Decode[domain.AttributeType](t, resp); at.Name != "Timestamp" {
		t.Errorf("expected name 'Timestamp', got %q", at.Name)
	}

	resp = testhelpers.Do(t, http.MethodPost, srv.URL+"/api/v1/attribute-types", `{"name":"timestamp"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", resp.StatusCode)
	}
}

func TestUpdateAttributeType(t *testing.T) {
	srv, _ := setupServer(t)

	resp := testhelpers.Do(t, http.MethodPatch, srv.URL+"/api/v1/attribute-types/string", `{"name":"Text","description":"Free text"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	at := testhelpers.Decode[domain.AttributeType](t, resp)
	if at.Slug != "text" {
		t.Errorf("expected slug 'text', got %q", at.Slug)
	}
}

func TestUpdateAttributeType_DescriptionOnly(t *testing.T) {
	srv, _ := setupServer(t)

	resp := testhelpers.Do(t, http.MethodPatch, srv.URL+"/api/v1/attribute-types/integer", `{"description":"Counts"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, testhelpers.ReadBody(t, resp))
	}
	at := testhelpers.Decode[domain.AttributeType](t, resp)
	if at.Slug != "integer" || at.Name != "Integer" {
		t.Errorf("expected name and slug unchanged, got %q / %q", at.Name, at.Slug)
	}
	if at.Description == nil || *at.Description != "Counts" {
		t.Errorf("expected description 'Counts', got %v", at.Description)
	}
}

func TestDeleteAttributeTypeInUse(t *testing.T) {
	srv, s := setupServer(t)
	ctx := context.Background()

	p, err := s.CreateProjectRecord(ctx, domain.Project{Name: "Shop", Slug: "shop"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	m, err := s.CreateModelRecord(ctx, p, domain.Model{Name: "Book", Slug: "book"})
	if err != nil {
		t.Fatalf("create model: %v", err)
	}
	typ, err := s.GetAttributeTypeRecord(ctx, "integer")
	if err != nil {
		t.Fatalf("get type: %v", err)
	}
	if _, err := s.CreateAttributeRecord(ctx, m, typ, domain.Attribute{Name: "pages"}); err != nil {
		t.Fatalf("create attribute: %v", err)
	}

	resp := testhelpers.Do(t, http.MethodDelete, srv.URL+"/api/v1/attribute-types/integer", "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	resp = testhelpers.Do(t, http.MethodDelete, srv.URL+"/api/v1/attribute-types/boolean", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	resp = testhelpers.Do(t, http.MethodGet, srv.URL+"/api/v1/attribute-types/boolean", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
