package cache

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache_test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_PutGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("obs:GDP::", []byte(`{"points":[]}`), time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	payload, ok, err := s.Get("obs:GDP::")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if !bytes.Equal(payload, []byte(`{"points":[]}`)) {
		t.Errorf("unexpected payload: %s", payload)
	}
}

func TestSQLiteStore_MissAndExpiry(t *testing.T) {
	s := newTestStore(t)

	if _, ok, _ := s.Get("absent"); ok {
		t.Fatal("expected a miss for an absent key")
	}

	// An already-expired entry must read as a miss.
	if err := s.Put("stale", []byte("x"), -time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, _ := s.Get("stale"); ok {
		t.Fatal("expected a miss for an expired key")
	}
}

func TestSQLiteStore_Upsert(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("k", []byte("old"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", []byte("new"), time.Hour); err != nil {
		t.Fatal(err)
	}
	payload, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(payload) != "new" {
		t.Errorf("expected overwrite, got %s", payload)
	}
}

func TestSQLiteStore_Prune(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("fresh", []byte("a"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("stale", []byte("b"), -time.Minute); err != nil {
		t.Fatal(err)
	}

	removed, err := s.Prune()
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 pruned entry, got %d", removed)
	}
	if _, ok, _ := s.Get("fresh"); !ok {
		t.Error("fresh entry must survive pruning")
	}
}
