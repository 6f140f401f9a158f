package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mehrshaddarzi/seqid/internal/router"
	"github.com/mehrshaddarzi/seqid/internal/store"
)

// Service is the sequential-id registry. Construct one per process with
// New and share it; all methods are safe for concurrent use - durable
// state lives in the store, and the allocation claim is atomic at the
// storage layer.
type Service struct {
	store      *store.Store
	categories map[string]bool
	order      []string // configured categories in declaration order

	// The single category whose base path an external storefront
	// collaborator may override, and the settings key it publishes under.
	storefrontCategory string
	storefrontKey      string

	idGen IDGenerator
}

// Options configures a Service.
type Options struct {
	// Categories is the fixed set of record categories eligible for
	// sequencing. Order is preserved for listing.
	Categories []string

	// StorefrontCategory names the one category whose base path may be
	// overridden via the settings store. Empty disables the override.
	StorefrontCategory string

	// StorefrontOptionKey is the settings key the storefront collaborator
	// writes its base path under. Defaults to "storefront_base_path".
	StorefrontOptionKey string

	// IDGen mints permanent ids on demand (CLI and demo use). Defaults
	// to UUIDv7Generator.
	IDGen IDGenerator
}

// New creates a Service backed by the given store.
func New(st *store.Store, opts Options) (*Service, error) {
	if len(opts.Categories) == 0 {
		return nil, fmt.Errorf("registry: at least one category is required")
	}

	categories := make(map[string]bool, len(opts.Categories))
	order := make([]string, 0, len(opts.Categories))
	for _, c := range opts.Categories {
		if categories[c] {
			return nil, fmt.Errorf("registry: duplicate category %q", c)
		}
		categories[c] = true
		order = append(order, c)
	}

	if opts.StorefrontCategory != "" && !categories[opts.StorefrontCategory] {
		return nil, fmt.Errorf("registry: storefront category %q is not a configured category", opts.StorefrontCategory)
	}

	key := opts.StorefrontOptionKey
	if key == "" {
		key = "storefront_base_path"
	}

	idGen := opts.IDGen
	if idGen == nil {
		idGen = UUIDv7Generator{}
	}

	return &Service{
		store:              st,
		categories:         categories,
		order:              order,
		storefrontCategory: opts.StorefrontCategory,
		storefrontKey:      key,
		idGen:              idGen,
	}, nil
}

// Ping verifies the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Categories returns the configured categories in declaration order.
func (s *Service) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// NewPermanentID mints a permanent id using the configured generator.
func (s *Service) NewPermanentID() string {
	return s.idGen.Generate()
}

// Allocate processes a publish-lifecycle event. If the event is eligible
// (configured category, top-level record, published status) it returns
// the record's sequence id, claiming a fresh one when the record has
// never been sequenced before.
//
// Ineligible events return allocated=false with no error and no side
// effects - they are routine shapes, not faults. Repeat events for an
// already-sequenced record return the existing id without advancing the
// category counter.
func (s *Service) Allocate(ctx context.Context, ev PublishEvent) (int64, bool, error) {
	if ev.PermanentID == "" {
		return 0, false, nil
	}
	if !s.categories[ev.Category] || !ev.Eligible() {
		slog.Debug("allocation skipped",
			"permanent_id", ev.PermanentID,
			"category", ev.Category,
			"parent_id", ev.ParentID,
			"status", ev.Status)
		return 0, false, nil
	}

	m, created, err := s.store.AllocateMapping(ctx, ev.PermanentID, ev.Category)
	if err != nil {
		return 0, false, fmt.Errorf("allocate %q: %w", ev.PermanentID, err)
	}

	if created {
		slog.Info("sequence allocated",
			"permanent_id", m.PermanentID,
			"category", m.Category,
			"sequence_id", m.SequenceID)
	}
	return m.SequenceID, true, nil
}

// ResolveBySequence returns the permanent id mapped to (category,
// sequence id). Unknown categories and non-positive sequence ids read as
// not found; a miss is never an error.
func (s *Service) ResolveBySequence(ctx context.Context, category string, sequenceID int64) (string, bool, error) {
	if !s.categories[category] {
		return "", false, nil
	}
	m, found, err := s.store.MappingBySequence(ctx, category, sequenceID)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	return m.PermanentID, true, nil
}

// ResolveSequenceString is ResolveBySequence with the sequence id still
// in its wire form. Malformed input reads as not found - resolution is a
// best-effort lookup, not a validated command.
func (s *Service) ResolveSequenceString(ctx context.Context, category, raw string) (string, bool, error) {
	seq, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", false, nil
	}
	return s.ResolveBySequence(ctx, category, seq)
}

// ResolveByPermanentID returns the mapping for a permanent id, if one
// exists.
func (s *Service) ResolveByPermanentID(ctx context.Context, permanentID string) (store.Mapping, bool, error) {
	return s.store.MappingByPermanentID(ctx, permanentID)
}

// CounterValue exposes the highest sequence id ever issued for a
// category (0 when none has been).
func (s *Service) CounterValue(ctx context.Context, category string) (int64, error) {
	return s.store.CounterValue(ctx, category)
}

// OnDelete processes a deletion event: the record's mapping, if any, is
// removed. The category counter is untouched - deleted sequence ids are
// never reused, leaving a permanent gap.
func (s *Service) OnDelete(ctx context.Context, permanentID string) error {
	deleted, err := s.store.DeleteMapping(ctx, permanentID)
	if err != nil {
		return fmt.Errorf("reconcile delete %q: %w", permanentID, err)
	}
	if deleted {
		slog.Info("mapping removed", "permanent_id", permanentID)
	}
	return nil
}

// Link builds the public display path for a permanent id: the category's
// base path joined with the record's sequence id. Returns found=false
// when the record has no mapping.
func (s *Service) Link(ctx context.Context, permanentID string) (string, bool, error) {
	m, found, err := s.store.MappingByPermanentID(ctx, permanentID)
	if err != nil || !found {
		return "", false, err
	}
	base, ok, err := s.BasePath(ctx, m.Category)
	if err != nil {
		return "", false, err
	}
	if !ok {
		// Mapping exists for a category that is no longer configured;
		// treat as unresolvable rather than failing.
		return "", false, nil
	}
	return router.BuildPath(base, m.SequenceID), true, nil
}
