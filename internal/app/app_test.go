package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/seriesview/internal/catalog"
	"github.com/atomicstack/seriesview/internal/testutil"
	"github.com/atomicstack/seriesview/internal/viewport"
)

func TestNewSessionUsesBuiltinCatalog(t *testing.T) {
	session, err := NewSession(Config{
		SeriesID:    2,
		Adjustments: viewport.DefaultAdjustments,
		Calibration: viewport.DefaultCalibration,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer session.Close()
	if session.Watcher != nil {
		t.Fatalf("expected no watcher without a catalog path")
	}
	if session.Catalog.Len() != 4 {
		t.Fatalf("expected builtin catalog, got %d series", session.Catalog.Len())
	}
	d := session.Orchestrator.CurrentDescriptor()
	if d.ContrastPercent != 120 || d.BrightnessPercent != 90 || d.Scale != 1 {
		t.Fatalf("unexpected descriptor %#v", d)
	}
}

func TestNewSessionAppliesOverrides(t *testing.T) {
	session, err := NewSession(Config{
		SeriesID:    999,
		Adjustments: viewport.Adjustments{Window: 84, Level: 64, Zoom: 150},
		Calibration: viewport.Calibration{ContrastOffset: 0, BrightnessOffset: 0},
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer session.Close()
	st := session.Orchestrator.State()
	if st.SeriesID != 1 {
		t.Fatalf("expected fallback to first series, got %d", st.SeriesID)
	}
	d := session.Orchestrator.CurrentDescriptor()
	if d.ContrastPercent != 84 || d.BrightnessPercent != 64 || d.Scale != 1.5 {
		t.Fatalf("expected overrides in descriptor, got %#v", d)
	}
}

func TestNewSessionWatchesCatalogFile(t *testing.T) {
	path := testutil.WriteCatalog(t, catalog.Default())
	session, err := NewSession(Config{
		CatalogPath:   path,
		WatchInterval: time.Second,
		SeriesID:      3,
		Adjustments:   viewport.DefaultAdjustments,
		Calibration:   viewport.DefaultCalibration,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer session.Close()
	if session.Watcher == nil {
		t.Fatalf("expected watcher for catalog path")
	}
	if session.Orchestrator.ActiveSeries().Name != "Brain Axial T2" {
		t.Fatalf("unexpected active series %#v", session.Orchestrator.ActiveSeries())
	}
}

func TestNewSessionMissingCatalog(t *testing.T) {
	_, err := NewSession(Config{CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
