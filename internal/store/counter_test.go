package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNextSequence_StartsAtOne(t *testing.T) {
	s := openTestStore(t)

	seq, err := s.NextSequence(context.Background(), "product")
	if err != nil {
		t.Fatalf("NextSequence() failed: %v", err)
	}
	if seq != 1 {
		t.Errorf("first sequence = %d, want 1", seq)
	}
}

func TestNextSequence_Monotonic(t *testing.T) {
	s := openTestStore(t)

	for want := int64(1); want <= 5; want++ {
		seq, err := s.NextSequence(context.Background(), "product")
		if err != nil {
			t.Fatalf("NextSequence() failed: %v", err)
		}
		if seq != want {
			t.Errorf("sequence = %d, want %d", seq, want)
		}
	}
}

func TestNextSequence_PerCategory(t *testing.T) {
	s := openTestStore(t)

	// Counters are scoped to a category; ids may repeat across
	// categories by design.
	for i := 0; i < 3; i++ {
		if _, err := s.NextSequence(context.Background(), "product"); err != nil {
			t.Fatalf("NextSequence(product) failed: %v", err)
		}
	}

	seq, err := s.NextSequence(context.Background(), "event")
	if err != nil {
		t.Fatalf("NextSequence(event) failed: %v", err)
	}
	if seq != 1 {
		t.Errorf("event sequence = %d, want 1", seq)
	}
}

func TestCounterValue_DefaultsToZero(t *testing.T) {
	s := openTestStore(t)

	value, err := s.CounterValue(context.Background(), "product")
	if err != nil {
		t.Fatalf("CounterValue() failed: %v", err)
	}
	if value != 0 {
		t.Errorf("counter value = %d, want 0", value)
	}
}

func TestCounterValue_TracksHighestIssued(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 4; i++ {
		if _, err := s.NextSequence(context.Background(), "portfolio"); err != nil {
			t.Fatalf("NextSequence() failed: %v", err)
		}
	}

	value, err := s.CounterValue(context.Background(), "portfolio")
	if err != nil {
		t.Fatalf("CounterValue() failed: %v", err)
	}
	if value != 4 {
		t.Errorf("counter value = %d, want 4", value)
	}
}
