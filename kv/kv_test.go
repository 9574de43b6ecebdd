package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMem_GetPutDelete(t *testing.T) {
	m := NewMem()

	if _, err := m.Get("bucket", "missing"); err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := m.Put("bucket", "key", []byte("value")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := m.Get("bucket", "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("expected %q, got %q", "value", got)
	}

	// Mutating the returned slice must not touch the stored value.
	got[0] = 'X'
	again, _ := m.Get("bucket", "key")
	if string(again) != "value" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}

	if err := m.Delete("bucket", "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := m.Get("bucket", "key"); err != ErrKeyNotFound {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// Deleting a missing key is not an error.
	if err := m.Delete("bucket", "never"); err != nil {
		t.Errorf("delete of missing key should be nil, got %v", err)
	}
}

func TestMem_BucketsAreIndependent(t *testing.T) {
	m := NewMem()
	m.Put("a", "k", []byte("1"))
	m.Put("b", "k", []byte("2"))

	got, _ := m.Get("a", "k")
	if string(got) != "1" {
		t.Errorf("bucket a: expected 1, got %s", got)
	}
	got, _ = m.Get("b", "k")
	if string(got) != "2" {
		t.Errorf("bucket b: expected 2, got %s", got)
	}
}

func TestFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	if _, err := f.Get("entries", "user1"); err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := f.Put("entries", "user1", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := f.Get("entries", "user1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Errorf("unexpected value: %s", got)
	}

	// Overwrite replaces the previous value.
	if err := f.Put("entries", "user1", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = f.Get("entries", "user1")
	if string(got) != `[]` {
		t.Errorf("expected overwritten value, got %s", got)
	}

	// No temp files should linger after a write.
	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}

	if err := f.Delete("entries", "user1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := f.Get("entries", "user1"); err != ErrKeyNotFound {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
	if err := f.Delete("entries", "user1"); err != nil {
		t.Errorf("delete of missing key should be nil, got %v", err)
	}
}

func TestFile_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	f.Put("clients", "user1", []byte(`["a"]`))

	reopened, err := NewFile(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := reopened.Get("clients", "user1")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != `["a"]` {
		t.Errorf("unexpected value after reopen: %s", got)
	}
}

func TestNewFile_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := NewFile(dir); err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}
