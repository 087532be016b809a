package core

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cantonlabs/ledgerview/internal/errors"
)

func newTestStore(t *testing.T) *DocStore {
	t.Helper()

	store, err := NewDocStore(filepath.Join(t.TempDir(), "docs"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestDocStore_CreateAndRead(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("guide", "hello")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id != "guide" {
		t.Errorf("expected canonical id 'guide', got %q", id)
	}

	content, err := store.Read(id)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "hello" {
		t.Errorf("expected content 'hello', got %q", content)
	}

	// Extension was auto-appended on disk.
	if _, err := os.Stat(filepath.Join(store.Dir(), "guide.md")); err != nil {
		t.Errorf("expected guide.md on disk: %v", err)
	}
}

func TestDocStore_Create_Duplicate(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Create("guide", "first"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create("guide.md", "second")
	if !errors.Is(err, errors.CodeDocExists) {
		t.Fatalf("expected DOC_EXISTS, got %v", err)
	}

	// Content after both calls equals the first call's content only.
	content, err := store.Read("guide")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "first" {
		t.Errorf("second Create must not overwrite: got %q", content)
	}
}

func TestDocStore_Create_TraversalConfined(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("../../x", "body")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if strings.ContainsAny(id, `/\`) {
		t.Errorf("canonical id %q contains a path separator", id)
	}

	// The document landed inside the store root, nowhere else.
	if _, err := os.Stat(filepath.Join(store.Dir(), "x.md")); err != nil {
		t.Errorf("expected x.md inside store root: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), "..", "..", "x.md")); err == nil {
		t.Error("document escaped the store root")
	}
}

func TestDocStore_Create_InvalidName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create("", "body")
	if !errors.Is(err, errors.CodeDocNameInvalid) {
		t.Fatalf("expected DOC_NAME_INVALID, got %v", err)
	}
}

func TestDocStore_Read_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Read("nope")
	if !errors.Is(err, errors.CodeDocNotFound) {
		t.Fatalf("expected DOC_NOT_FOUND, got %v", err)
	}
}

func TestDocStore_List(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"zulu", "alpha", "mike"} {
		if _, err := store.Create(name, "content of "+name); err != nil {
			t.Fatalf("Create(%q) failed: %v", name, err)
		}
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"alpha", "mike", "zulu"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d: %v", len(want), len(ids), ids)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("ids[%d] = %q, want %q (sorted)", i, ids[i], id)
		}
	}

	// Every listed id reads back without error.
	for _, id := range ids {
		if _, err := store.Read(id); err != nil {
			t.Errorf("Read(%q) failed for listed id: %v", id, err)
		}
	}
}

func TestDocStore_List_SeesExternalFiles(t *testing.T) {
	store := newTestStore(t)

	// A file added behind the store's back shows up without restart.
	external := filepath.Join(store.Dir(), "dropped.md")
	if err := os.WriteFile(external, []byte("external"), 0600); err != nil {
		t.Fatalf("failed to write external file: %v", err)
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "dropped" {
		t.Errorf("expected [dropped], got %v", ids)
	}

	content, err := store.Read("dropped")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "external" {
		t.Errorf("expected 'external', got %q", content)
	}
}

func TestDocStore_ConcurrentCreate(t *testing.T) {
	store := newTestStore(t)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = store.Create("contested", "body")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errors.CodeDocExists):
			// expected for the losers
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("expected exactly one winner, got %d", succeeded)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("failed to read store dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}
}

func TestDocStore_Seed(t *testing.T) {
	store := newTestStore(t)

	if err := store.Seed("safety-gates", "seeded"); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	// Seeding again must not disturb existing content.
	if err := store.Seed("safety-gates", "clobbered"); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	content, err := store.Read("safety-gates")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "seeded" {
		t.Errorf("expected 'seeded', got %q", content)
	}
}
