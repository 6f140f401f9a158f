package server

import (
	"encoding/json"
	"net/http"

	"github.com/mehrshaddarzi/seqid/internal/registry"
	"github.com/mehrshaddarzi/seqid/internal/router"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_serving"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type publishResponse struct {
	Allocated  bool   `json:"allocated"`
	SequenceID int64  `json:"sequence_id,omitempty"`
	Path       string `json:"path,omitempty"`
}

// handlePublish consumes a publish-lifecycle event. Ineligible events are
// acknowledged with allocated=false - they are routine shapes, not
// client errors.
func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var ev registry.PublishEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	seq, allocated, err := s.svc.Allocate(r.Context(), ev)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !allocated {
		writeJSON(w, http.StatusOK, publishResponse{Allocated: false})
		return
	}

	resp := publishResponse{Allocated: true, SequenceID: seq}
	if path, found, err := s.svc.Link(r.Context(), ev.PermanentID); err == nil && found {
		resp.Path = path
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleDelete consumes a deletion event. Deleting an unmapped record is
// a no-op, same as the reconciler contract.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var ev registry.DeleteEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if ev.PermanentID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.svc.OnDelete(r.Context(), ev.PermanentID); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleResolve is the forward lookup: ?category=<name>&sequence=<id>.
// Malformed sequence input is a 404, not a 400 - resolution is
// best-effort.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	category := r.URL.Query().Get("category")
	sequence := r.URL.Query().Get("sequence")

	permanentID, found, err := s.svc.ResolveSequenceString(r.Context(), category, sequence)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"permanent_id": permanentID})
}

type mappingResponse struct {
	PermanentID string `json:"permanent_id"`
	SequenceID  int64  `json:"sequence_id"`
	Category    string `json:"category"`
	Path        string `json:"path,omitempty"`
}

// handleMapping is the reverse lookup: ?permanent_id=<id>.
func (s *Server) handleMapping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	permanentID := r.URL.Query().Get("permanent_id")

	m, found, err := s.svc.ResolveByPermanentID(r.Context(), permanentID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	resp := mappingResponse{
		PermanentID: m.PermanentID,
		SequenceID:  m.SequenceID,
		Category:    m.Category,
	}
	if path, ok, err := s.svc.Link(r.Context(), m.PermanentID); err == nil && ok {
		resp.Path = path
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleContent stands in for the host's default content resolution. By
// the time a sequenced URL reaches it, the routing middleware has
// replaced the path with the canonical permanent_id query.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	permanentID := r.URL.Query().Get(router.PermanentIDParam)
	if permanentID == "" {
		writeJSON(w, http.StatusOK, map[string]string{"content": "default"})
		return
	}

	m, found, err := s.svc.ResolveByPermanentID(r.Context(), permanentID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, mappingResponse{
		PermanentID: m.PermanentID,
		SequenceID:  m.SequenceID,
		Category:    m.Category,
	})
}
