package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// NextSequence atomically increments the counter for a category and
// returns the new value. The counter row is created at 1 on first use.
//
// The upsert-with-RETURNING form makes the read-increment-write a single
// statement at the storage layer. Callers must never reproduce this as a
// read followed by a write.
//
// This is the only statement that touches counters.value, and it only
// ever adds one, so counter values are monotonic.
func (s *Store) NextSequence(ctx context.Context, category string) (int64, error) {
	var value int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO counters (category, value)
		VALUES (?, 1)
		ON CONFLICT(category) DO UPDATE SET value = value + 1
		RETURNING value
	`, category).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("next sequence for %q: %w", category, err)
	}
	return value, nil
}

// CounterValue returns the highest sequence id ever issued for a category.
// A category with no counter row reads as 0; the zero default is part of
// the contract, not a caller-supplied fallback.
func (s *Store) CounterValue(ctx context.Context, category string) (int64, error) {
	var value int64
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM counters WHERE category = ?
	`, category).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("counter value for %q: %w", category, err)
	}
	return value, nil
}

// nextSequenceTx is the transactional variant of NextSequence, used by
// AllocateMapping so the increment commits or rolls back with the claim.
func nextSequenceTx(ctx context.Context, tx *sql.Tx, category string) (int64, error) {
	var value int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO counters (category, value)
		VALUES (?, 1)
		ON CONFLICT(category) DO UPDATE SET value = value + 1
		RETURNING value
	`, category).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("next sequence for %q: %w", category, err)
	}
	return value, nil
}
