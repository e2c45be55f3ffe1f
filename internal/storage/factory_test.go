package storage

import (
	"path/filepath"
	"testing"
)

func TestNewStoreMemory(t *testing.T) {
	store, err := NewStore("memory", "")
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	if store == nil {
		t.Fatal("expected non-nil store")
	}
	if err := CloseIfSupported(store); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewStoreBolt(t *testing.T) {
	store, err := NewStore("bolt", filepath.Join(t.TempDir(), "gridscape.db"))
	if err != nil {
		t.Fatalf("new bolt store: %v", err)
	}
	if _, ok := store.(*BoltStore); !ok {
		t.Fatalf("expected bolt store, got %T", store)
	}
}

func TestNewStoreUnsupported(t *testing.T) {
	_, err := NewStore("unknown", "")
	if err == nil {
		t.Fatal("expected unsupported store error")
	}
}
