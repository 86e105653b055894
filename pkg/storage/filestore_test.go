package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_ReadMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	data, found, err := s.Read("smartchoice-cart")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if found {
		t.Fatalf("found = true, want false for missing key")
	}
	if data != nil {
		t.Fatalf("data = %q, want nil", data)
	}
}

func TestFileStore_WriteThenRead(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	want := []byte(`[{"product":{"id":1},"quantity":2}]`)
	if err := s.Write("smartchoice-cart", want); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, found, err := s.Read("smartchoice-cart")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !found {
		t.Fatalf("found = false, want true")
	}
	if string(got) != string(want) {
		t.Fatalf("Read = %q, want %q", got, want)
	}
}

func TestFileStore_WriteReplacesWholeDocument(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if err := s.Write("wishlist", []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := s.Write("wishlist", []byte(`[]`)); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, _, err := s.Read("wishlist")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("Read = %q, want %q", got, `[]`)
	}
}

func TestFileStore_Delete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if err := s.Delete("recentlyViewed"); err != nil {
		t.Fatalf("Delete of absent key returned error: %v", err)
	}

	if err := s.Write("recentlyViewed", []byte(`[]`)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := s.Delete("recentlyViewed"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, found, _ := s.Read("recentlyViewed"); found {
		t.Fatalf("found = true after Delete, want false")
	}
	if _, err := os.Stat(filepath.Join(dir, "recentlyViewed.json")); !os.IsNotExist(err) {
		t.Fatalf("document file still exists after Delete")
	}
}

func TestFileStore_KeySanitization(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if err := s.Write("../escape", []byte(`{}`)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 (document must stay inside the state dir)", len(entries))
	}
}
