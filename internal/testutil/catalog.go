package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/seriesview/internal/catalog"
)

// WriteCatalog saves c as YAML in a fresh temp dir and returns the path.
func WriteCatalog(t *testing.T, c *catalog.Catalog) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := catalog.Save(c, path); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

// Rewrite replaces the file at path with data.
func Rewrite(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to rewrite %s: %v", path, err)
	}
}

// MustCatalog builds a catalog from series, failing the test on error.
func MustCatalog(t *testing.T, patient catalog.Patient, series ...catalog.Series) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(patient, series)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}
