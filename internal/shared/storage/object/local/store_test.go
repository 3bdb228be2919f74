package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	store := New(t.TempDir())

	key, size, mimeType, err := store.Save(context.Background(), "договор.txt", strings.NewReader("Стороны обязуются"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key == "" {
		t.Fatal("expected a storage key")
	}
	if size == 0 {
		t.Fatal("expected a non-zero size")
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("expected text/plain mime, got %q", mimeType)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Стороны обязуются" {
		t.Fatalf("round-trip mismatch: %q", data)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Open(context.Background(), "../outside"); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatal("expected absolute key to be rejected")
	}
}

func TestSaveRejectsBadName(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "../evil.txt", strings.NewReader("x")); err == nil {
		t.Fatal("expected traversal name to be rejected")
	}
}
