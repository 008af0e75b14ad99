package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "studio.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)

	data, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || data != nil {
		t.Fatalf("missing key returned ok=%v data=%q, want absent", ok, data)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("k", map[string]int{"v": 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", map[string]int{"v": 2}); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	var got map[string]int
	ok, err := s.GetJSON("k", &got)
	if err != nil || !ok {
		t.Fatalf("GetJSON: ok=%v err=%v", ok, err)
	}
	if got["v"] != 2 {
		t.Fatalf("got %v, want last write to win", got)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("k", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Second removal of the same (now absent) key must be a no-op.
	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove absent key: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key still present after Remove")
	}
}

func TestDurableAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studio.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set("k", []string{"a", "b"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	var got []string
	ok, err := s2.GetJSON("k", &got)
	if err != nil || !ok {
		t.Fatalf("GetJSON after reopen: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Fatalf("got %v after reopen", got)
	}
}
