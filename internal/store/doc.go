// Package store provides SQLite-backed durable storage for the seqid
// registry.
//
// Three tables:
//   - counters: highest sequence id ever issued per category
//   - mappings: permanent-id <-> sequence-id associations
//   - settings: key-value surface for external collaborators
//
// # Critical Patterns
//
// Atomic increment-and-fetch
//   - NextSequence uses a single upsert with RETURNING
//   - An application-level read-then-write on the counter is forbidden
//
// Storage-enforced uniqueness
//   - UNIQUE(permanent_id) and UNIQUE(sequence_id, category)
//   - A losing racer's insert fails deterministically
//
// Transactional claim
//   - AllocateMapping runs existence check, counter increment, and
//     mapping insert in one transaction, so a duplicate trigger
//     resolves to one row and one counter advance
//
// Monotonic counters
//   - Counter values never decrease and are never reused; deletion of
//     a mapping leaves a permanent gap in the sequence
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
