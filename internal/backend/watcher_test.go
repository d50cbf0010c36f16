package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const initialCatalog = `patient:
  name: Test Patient
  id: T-1
series:
  - id: 1
    name: Localizer
    count: 1
`

const updatedCatalog = `patient:
  name: Test Patient
  id: T-1
series:
  - id: 5
    name: Brain Axial T2
    count: 24
  - id: 6
    name: Knee Coronal PD
    count: 15
`

func writeCatalog(t *testing.T, path, body string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed unexpectedly")
		}
		return evt
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherReloadsChangedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	base := time.Now().Add(-time.Hour)
	writeCatalog(t, path, initialCatalog, base)

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeCatalog(t, path, updatedCatalog, base.Add(time.Minute))
	evt := nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected error: %v", evt.Err)
	}
	if evt.Catalog == nil || evt.Catalog.Len() != 2 || evt.Catalog.First().ID != 5 {
		t.Fatalf("unexpected reloaded catalog %#v", evt.Catalog)
	}
}

func TestWatcherReportsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	base := time.Now().Add(-time.Hour)
	writeCatalog(t, path, initialCatalog, base)

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeCatalog(t, path, "series: []\n", base.Add(time.Minute))
	evt := nextEvent(t, w)
	if evt.Err == nil {
		t.Fatalf("expected error for empty catalog")
	}
	if evt.Catalog != nil {
		t.Fatalf("expected no catalog alongside error")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeCatalog(t, path, initialCatalog, time.Now())
	w := NewWatcher(path, 10*time.Millisecond)
	w.Stop()
	w.Wait()
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected no events after stop")
		}
	case <-time.After(time.Second):
		t.Fatalf("expected events channel to close")
	}
}
