package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRejectsEmptyCatalog(t *testing.T) {
	if _, err := New(Patient{}, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(Patient{}, []Series{
		{ID: 1, Name: "a", FrameCount: 1},
		{ID: 1, Name: "b", FrameCount: 1},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestNewDerivesFrameCountFromFrames(t *testing.T) {
	c, err := New(Patient{}, []Series{{ID: 7, Name: "a", Frames: []string{"f1", "f2", "f3"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := c.Find(7)
	if !ok {
		t.Fatalf("expected series 7")
	}
	if s.FrameCount != 3 {
		t.Fatalf("expected frame count 3, got %d", s.FrameCount)
	}
}

func TestNewRejectsSeriesWithoutFrames(t *testing.T) {
	_, err := New(Patient{}, []Series{{ID: 1, Name: "empty"}})
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestFindAndFirst(t *testing.T) {
	c := Default()
	if c.Len() != 4 {
		t.Fatalf("expected 4 default series, got %d", c.Len())
	}
	if first := c.First(); first.ID != 1 {
		t.Fatalf("expected first id 1, got %d", first.ID)
	}
	if _, ok := c.Find(999); ok {
		t.Fatalf("expected id 999 to be absent")
	}
	s, ok := c.Find(3)
	if !ok || s.Name != "Brain Axial T2" {
		t.Fatalf("unexpected lookup result %#v", s)
	}
}

func TestSeriesReturnsCopy(t *testing.T) {
	c := Default()
	list := c.Series()
	list[0].Name = "mutated"
	if c.First().Name == "mutated" {
		t.Fatalf("expected catalog to be unaffected by caller mutation")
	}
}

func TestSeriesFrameClampsToAvailableReferences(t *testing.T) {
	s := Series{FrameCount: 12, Frames: []string{"a", "b"}}
	if got := s.Frame(1); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := s.Frame(9); got != "b" {
		t.Fatalf("expected last reference for out of range index, got %q", got)
	}
	if got := s.Frame(0); got != "" {
		t.Fatalf("expected empty reference for index 0, got %q", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.yaml")
	if err := Save(Default(), path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Patient().ID != "MR-8492-X" {
		t.Fatalf("expected patient id to survive, got %q", loaded.Patient().ID)
	}
	s, ok := loaded.Find(2)
	if !ok || s.FrameCount != 12 || s.Metadata.Modality != "MR" {
		t.Fatalf("unexpected series after reload: %#v", s)
	}
}

func TestParseRejectsInvalidDocument(t *testing.T) {
	if _, err := Parse([]byte("series: []\n")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for empty series list, got %v", err)
	}
	if _, err := Parse([]byte("series: [")); err == nil {
		t.Fatalf("expected YAML error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
