package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/mehrshaddarzi/seqid/internal/registry"
	"github.com/mehrshaddarzi/seqid/internal/router"
)

// Server is the HTTP surface over a registry.Service.
type Server struct {
	svc *registry.Service
	srv *http.Server
	lis net.Listener
}

// New builds a Server. Sequence-id routing is wired ahead of the default
// content handler, so a request for /<base_path>/<sequence_id>/ reaches
// the content handler already rewritten to its permanent record.
func New(svc *registry.Service) *Server {
	mux := http.NewServeMux()
	s := &Server{svc: svc, srv: &http.Server{Handler: router.Rewrite(svc, mux)}}
	mux.HandleFunc("/v1/healthz", s.handleHealth)
	mux.HandleFunc("/v1/events/publish", s.handlePublish)
	mux.HandleFunc("/v1/events/delete", s.handleDelete)
	mux.HandleFunc("/v1/resolve", s.handleResolve)
	mux.HandleFunc("/v1/mappings", s.handleMapping)
	mux.HandleFunc("/", s.handleContent)
	return s
}

// Handler returns the root handler, routing middleware included.
// Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	slog.Info("http server listening", "addr", l.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close releases the listener if one is open.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
