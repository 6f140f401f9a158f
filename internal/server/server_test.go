package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mehrshaddarzi/seqid/internal/registry"
	"github.com/mehrshaddarzi/seqid/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc, err := registry.New(st, registry.Options{
		Categories:         []string{"product", "event"},
		StorefrontCategory: "product",
	})
	require.NoError(t, err)
	return New(svc), st
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func publishBody(permanentID, category string) map[string]any {
	return map[string]any{
		"permanent_id": permanentID,
		"category":     category,
		"parent_id":    0,
		"status":       "published",
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/v1/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPublishThenResolve(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/events/publish", publishBody("501", "product"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Allocated  bool   `json:"allocated"`
		SequenceID int64  `json:"sequence_id"`
		Path       string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Allocated)
	require.Equal(t, int64(1), resp.SequenceID)
	require.Equal(t, "/product/1/", resp.Path)

	rec = doJSON(t, h, http.MethodGet, "/v1/resolve?category=product&sequence=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resolved map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	require.Equal(t, "501", resolved["permanent_id"])
}

func TestPublish_IneligibleAcknowledged(t *testing.T) {
	srv, _ := newTestServer(t)

	body := publishBody("7", "product")
	body["status"] = "draft"
	rec := doJSON(t, srv.Handler(), http.MethodPost, "/v1/events/publish", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, false, resp["allocated"])
}

func TestResolve_MalformedSequenceIsNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/v1/resolve?category=product&sequence=abc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMappingLookup(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	doJSON(t, h, http.MethodPost, "/v1/events/publish", publishBody("501", "event"))

	rec := doJSON(t, h, http.MethodGet, "/v1/mappings?permanent_id=501", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SequenceID int64  `json:"sequence_id"`
		Category   string `json:"category"`
		Path       string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.SequenceID)
	require.Equal(t, "event", resp.Category)
	require.Equal(t, "/event/1/", resp.Path)
}

func TestDeleteEvent(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	doJSON(t, h, http.MethodPost, "/v1/events/publish", publishBody("501", "product"))

	rec := doJSON(t, h, http.MethodPost, "/v1/events/delete", map[string]string{"permanent_id": "501"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/resolve?category=product&sequence=1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Deleting again is a no-op, not an error.
	rec = doJSON(t, h, http.MethodPost, "/v1/events/delete", map[string]string{"permanent_id": "501"})
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSequencedURLRouting(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	doJSON(t, h, http.MethodPost, "/v1/events/publish", publishBody("501", "product"))

	// The public path is consumed ahead of default content resolution.
	rec := doJSON(t, h, http.MethodGet, "/product/1/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		PermanentID string `json:"permanent_id"`
		Category    string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "501", resp.PermanentID)
	require.Equal(t, "product", resp.Category)
}

func TestSequencedURLRouting_StorefrontOverride(t *testing.T) {
	srv, st := newTestServer(t)
	h := srv.Handler()

	doJSON(t, h, http.MethodPost, "/v1/events/publish", publishBody("501", "product"))
	require.NoError(t, st.SetSetting(context.Background(), "storefront_base_path", "shop"))

	rec := doJSON(t, h, http.MethodGet, "/shop/1/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		PermanentID string `json:"permanent_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "501", resp.PermanentID)

	// The overridden name no longer routes.
	rec = doJSON(t, h, http.MethodGet, "/product/1/", nil)
	var fallthru map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fallthru))
	require.Equal(t, "default", fallthru["content"])
}

func TestUnmappedURLFallsThrough(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/product/99/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "default", resp["content"])
}
