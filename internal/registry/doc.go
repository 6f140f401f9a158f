// Package registry implements the sequential-id registry service.
//
// The registry assigns compact, per-category, strictly increasing
// sequence ids to records as they are published, and maintains the
// durable mapping between a record's permanent id and its sequence id.
//
// One Service is constructed at process start and owns the full public
// API: Allocate (publish events), ResolveBySequence / ResolveByPermanentID
// (lookups in both directions), OnDelete (record removal), and BasePath /
// Link (public URL construction).
//
// Lifecycle events arrive as explicit method calls - the HTTP handlers
// and CLI commands deliver them. Routine, expected event shapes that are
// not eligible for allocation (child records, non-published statuses,
// unconfigured categories) are ignored without error; lookup misses are
// normal outcomes, not failures.
package registry
