package store

import (
	"context"
	"testing"
)

func TestSetting_Absent(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Setting(context.Background(), "storefront_base_path")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if found {
		t.Error("found = true for absent key")
	}
}

func TestSetSetting_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetSetting(context.Background(), "storefront_base_path", "shop"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}

	value, found, err := s.Setting(context.Background(), "storefront_base_path")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if !found {
		t.Fatal("key not found after set")
	}
	if value != "shop" {
		t.Errorf("value = %q, want %q", value, "shop")
	}
}

func TestSetSetting_Overwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetSetting(context.Background(), "storefront_base_path", "shop"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := s.SetSetting(context.Background(), "storefront_base_path", "store"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}

	value, _, err := s.Setting(context.Background(), "storefront_base_path")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if value != "store" {
		t.Errorf("value = %q, want %q", value, "store")
	}
}

func TestDeleteSetting(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetSetting(context.Background(), "k", "v"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := s.DeleteSetting(context.Background(), "k"); err != nil {
		t.Fatalf("DeleteSetting() failed: %v", err)
	}

	_, found, err := s.Setting(context.Background(), "k")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if found {
		t.Error("key still present after delete")
	}

	// Deleting an absent key is a no-op.
	if err := s.DeleteSetting(context.Background(), "k"); err != nil {
		t.Errorf("DeleteSetting() on absent key failed: %v", err)
	}
}
