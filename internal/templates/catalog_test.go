package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCatalogListRoundTrip(t *testing.T) {
	files := map[string]string{
		"bug.md":     "# Bug Fix\n\nDetails here.\n",
		"feature.md": "# New Feature\n",
		"docs.md":    "# Documentation Update\n",
	}
	catalog := NewCatalog(writeCatalog(t, files))

	descriptors, err := catalog.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(descriptors) != len(files) {
		t.Fatalf("expected %d descriptors, got %d", len(files), len(descriptors))
	}
	for _, d := range descriptors {
		if files[d.Name] != d.Content {
			t.Fatalf("content mismatch for %s", d.Name)
		}
	}
	// os.ReadDir sorts entries, so the listing is deterministic.
	if descriptors[0].Name != "bug.md" || descriptors[2].Name != "feature.md" {
		t.Fatalf("unexpected order: %s, %s, %s", descriptors[0].Name, descriptors[1].Name, descriptors[2].Name)
	}
}

func TestCatalogMissingDir(t *testing.T) {
	catalog := NewCatalog(filepath.Join(t.TempDir(), "nope"))
	if _, err := catalog.List(); !errors.Is(err, ErrCatalogMissing) {
		t.Fatalf("expected ErrCatalogMissing, got %v", err)
	}
}

func TestCatalogEmptyDir(t *testing.T) {
	catalog := NewCatalog(t.TempDir())
	if _, err := catalog.List(); !errors.Is(err, ErrCatalogMissing) {
		t.Fatalf("expected ErrCatalogMissing, got %v", err)
	}
}

func TestCatalogSkipsSubdirectories(t *testing.T) {
	dir := writeCatalog(t, map[string]string{"bug.md": "# Bug\n"})
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0o755); err != nil {
		t.Fatal(err)
	}
	descriptors, err := NewCatalog(dir).List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(descriptors) != 1 || descriptors[0].Name != "bug.md" {
		t.Fatalf("expected only bug.md, got %+v", descriptors)
	}
}
