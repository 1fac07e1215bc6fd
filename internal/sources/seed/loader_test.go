package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	loader := NewLoader("")
	if !loader.Embedded() {
		t.Fatal("empty path should select the embedded catalog")
	}

	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(doc.Events) != 8 || len(doc.Artists) != 5 || len(doc.Venues) != 5 {
		t.Errorf("embedded catalog = %d/%d/%d entities, want 8/5/5",
			len(doc.Events), len(doc.Artists), len(doc.Venues))
	}
	if doc.Events[0].ID != "evt1" || doc.Events[0].Name != "Rock Revolution" {
		t.Errorf("first event = %+v, want evt1 Rock Revolution", doc.Events[0])
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `
events:
  - id: e1
    name: Test Show
    date: "2025-06-01T20:00:00"
    price: 20
    category: Concert
venues:
  - id: v1
    name: Test Hall
    location: Testville
    capacity: 100
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(doc.Events) != 1 || len(doc.Venues) != 1 || len(doc.Artists) != 0 {
		t.Errorf("parsed %d/%d/%d entities, want 1/0/1",
			len(doc.Events), len(doc.Artists), len(doc.Venues))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader("/nonexistent/catalog.yaml").Load()
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("events: [unclosed"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("Load() should fail for malformed yaml")
	}
}
