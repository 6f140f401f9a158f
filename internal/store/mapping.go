package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Mapping is a durable (permanent id, sequence id, category) association.
// Rows are created once by AllocateMapping, never mutated, and removed by
// DeleteMapping when the underlying record goes away.
type Mapping struct {
	ID          int64
	PermanentID string
	SequenceID  int64
	Category    string
}

// AllocateMapping claims the next sequence id for a category and inserts
// the mapping for a permanent id. Returns the mapping and whether a new
// row was created.
//
// Idempotency: if a mapping already exists for the permanent id, the
// existing row is returned with created=false and the counter is not
// advanced. The existence check, counter increment, and insert run in a
// single transaction, so two near-simultaneous claims for the same
// permanent id resolve to exactly one row and one counter advance.
//
// The unique indexes on permanent_id and (sequence_id, category) remain
// the safety net: any residual race surfaces as a constraint violation
// here, never as a corrupted mapping.
func (s *Store) AllocateMapping(ctx context.Context, permanentID, category string) (Mapping, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Mapping{}, false, fmt.Errorf("allocate mapping: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	// Step 1: idempotency check - an earlier trigger may have claimed
	// this permanent id already.
	var m Mapping
	err = tx.QueryRowContext(ctx, `
		SELECT id, permanent_id, sequence_id, category
		FROM mappings
		WHERE permanent_id = ?
	`, permanentID).Scan(&m.ID, &m.PermanentID, &m.SequenceID, &m.Category)
	if err == nil {
		if commitErr := tx.Commit(); commitErr != nil {
			return Mapping{}, false, fmt.Errorf("allocate mapping: commit (existing): %w", commitErr)
		}
		return m, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Mapping{}, false, fmt.Errorf("allocate mapping: check existing: %w", err)
	}

	// Step 2: claim a fresh sequence id.
	seq, err := nextSequenceTx(ctx, tx, category)
	if err != nil {
		return Mapping{}, false, fmt.Errorf("allocate mapping: %w", err)
	}

	// Step 3: persist the mapping. No ON CONFLICT clause - a violation
	// here means a race slipped past the transaction and must fail loudly.
	result, err := tx.ExecContext(ctx, `
		INSERT INTO mappings (permanent_id, sequence_id, category)
		VALUES (?, ?, ?)
	`, permanentID, seq, category)
	if err != nil {
		return Mapping{}, false, fmt.Errorf("allocate mapping: insert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Mapping{}, false, fmt.Errorf("allocate mapping: last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Mapping{}, false, fmt.Errorf("allocate mapping: commit: %w", err)
	}

	return Mapping{
		ID:          id,
		PermanentID: permanentID,
		SequenceID:  seq,
		Category:    category,
	}, true, nil
}

// MappingByPermanentID retrieves the mapping for a permanent id.
// Returns found=false (not an error) when no mapping exists.
func (s *Store) MappingByPermanentID(ctx context.Context, permanentID string) (Mapping, bool, error) {
	var m Mapping
	err := s.db.QueryRowContext(ctx, `
		SELECT id, permanent_id, sequence_id, category
		FROM mappings
		WHERE permanent_id = ?
	`, permanentID).Scan(&m.ID, &m.PermanentID, &m.SequenceID, &m.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return Mapping{}, false, nil
	}
	if err != nil {
		return Mapping{}, false, fmt.Errorf("mapping by permanent id: %w", err)
	}
	return m, true, nil
}

// MappingBySequence retrieves the mapping for a (sequence id, category)
// pair. Non-positive sequence ids read as not found without touching the
// database - resolution is a best-effort lookup, not a validated command.
func (s *Store) MappingBySequence(ctx context.Context, category string, sequenceID int64) (Mapping, bool, error) {
	if sequenceID <= 0 {
		return Mapping{}, false, nil
	}

	var m Mapping
	err := s.db.QueryRowContext(ctx, `
		SELECT id, permanent_id, sequence_id, category
		FROM mappings
		WHERE sequence_id = ? AND category = ?
	`, sequenceID, category).Scan(&m.ID, &m.PermanentID, &m.SequenceID, &m.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return Mapping{}, false, nil
	}
	if err != nil {
		return Mapping{}, false, fmt.Errorf("mapping by sequence: %w", err)
	}
	return m, true, nil
}

// MappingsByCategory returns all mappings for a category ordered by
// sequence id. Returns an empty slice (not nil) when none exist.
func (s *Store) MappingsByCategory(ctx context.Context, category string) ([]Mapping, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, permanent_id, sequence_id, category
		FROM mappings
		WHERE category = ?
		ORDER BY sequence_id ASC
	`, category)
	if err != nil {
		return nil, fmt.Errorf("query mappings: %w", err)
	}
	defer rows.Close()

	var mappings []Mapping
	for rows.Next() {
		var m Mapping
		if err := rows.Scan(&m.ID, &m.PermanentID, &m.SequenceID, &m.Category); err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mappings: %w", err)
	}

	if mappings == nil {
		mappings = []Mapping{}
	}

	return mappings, nil
}

// DeleteMapping removes the mapping for a permanent id, if any. Returns
// whether a row was actually deleted. The category counter is never
// touched: deleted sequence ids leave permanent gaps.
func (s *Store) DeleteMapping(ctx context.Context, permanentID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM mappings WHERE permanent_id = ?
	`, permanentID)
	if err != nil {
		return false, fmt.Errorf("delete mapping: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete mapping: rows affected: %w", err)
	}
	return affected > 0, nil
}

// MappingCount returns the number of mappings in a category.
func (s *Store) MappingCount(ctx context.Context, category string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM mappings WHERE category = ?
	`, category).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count mappings: %w", err)
	}
	return count, nil
}
