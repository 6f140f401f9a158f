package router

import (
	"context"
	"log/slog"
	"net/http"
)

// PermanentIDParam is the canonical content-query parameter the rewrite
// installs after a successful match.
const PermanentIDParam = "permanent_id"

// Resolver is the lookup surface the rewrite needs. Satisfied by
// registry.Service.
type Resolver interface {
	// CategoryForBasePath maps a public base path back to its category.
	CategoryForBasePath(ctx context.Context, base string) (string, bool, error)

	// ResolveBySequence returns the permanent id for (category, sequence).
	ResolveBySequence(ctx context.Context, category string, sequenceID int64) (string, bool, error)
}

// Rewrite wires sequence-id routing in ahead of the default content
// handler. A request for /<base_path>/<sequence_id>/ that resolves gets
// its URL rewritten to the canonical content query ("/" with the
// permanent_id parameter set) before reaching next; the path-derived
// segments are cleared so they cannot be interpreted twice. Everything
// else - non-matching paths, unknown base paths, unmapped sequence ids -
// passes through unchanged.
func Rewrite(resolver Resolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base, seq, ok := MatchPath(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		category, found, err := resolver.CategoryForBasePath(r.Context(), base)
		if err != nil {
			slog.Error("base path lookup failed", "base", base, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !found {
			next.ServeHTTP(w, r)
			return
		}

		permanentID, found, err := resolver.ResolveBySequence(r.Context(), category, seq)
		if err != nil {
			slog.Error("sequence resolution failed",
				"category", category, "sequence_id", seq, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !found {
			// Lookup miss falls back to default routing.
			next.ServeHTTP(w, r)
			return
		}

		rewritten := r.Clone(r.Context())
		rewritten.URL.Path = "/"
		q := rewritten.URL.Query()
		q.Set(PermanentIDParam, permanentID)
		rewritten.URL.RawQuery = q.Encode()

		slog.Debug("request rewritten",
			"category", category,
			"sequence_id", seq,
			"permanent_id", permanentID)
		next.ServeHTTP(w, rewritten)
	})
}
