package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/seriesview/internal/backend"
	"github.com/atomicstack/seriesview/internal/catalog"
	"github.com/atomicstack/seriesview/internal/logging/events"
	"github.com/atomicstack/seriesview/internal/ui"
	"github.com/atomicstack/seriesview/internal/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath   string
	WatchInterval time.Duration
	SeriesID      int
	Adjustments   viewport.Adjustments
	Calibration   viewport.Calibration
	Width         int
	Height        int
	ShowFooter    bool
}

// Session is everything a viewing session needs before the program starts.
type Session struct {
	Catalog      *catalog.Catalog
	Orchestrator *viewport.Orchestrator
	Watcher      *backend.Watcher
	Model        *ui.Model
}

// Close stops the catalog watcher, if any.
func (s *Session) Close() {
	if s.Watcher != nil {
		s.Watcher.Stop()
	}
}

// LoadCatalog reads the catalog at path, or returns the built-in study when
// path is empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat := catalog.Default()
		events.Catalog.Loaded("builtin", cat.Len())
		return cat, nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	events.Catalog.Loaded(path, cat.Len())
	return cat, nil
}

// NewSession loads the catalog and wires orchestrator, watcher and model.
func NewSession(cfg Config) (*Session, error) {
	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var watcher *backend.Watcher
	if cfg.CatalogPath != "" && cfg.WatchInterval > 0 {
		watcher = backend.NewWatcher(cfg.CatalogPath, cfg.WatchInterval)
	}
	orch := viewport.New(cat, cfg.SeriesID,
		viewport.WithAdjustments(cfg.Adjustments),
		viewport.WithCalibration(cfg.Calibration),
		viewport.WithPresenter(ui.TracePresenter{}),
	)
	model := ui.NewModel(orch, cat, watcher, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	return &Session{Catalog: cat, Orchestrator: orch, Watcher: watcher, Model: model}, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	session, err := NewSession(cfg)
	if err != nil {
		return err
	}
	defer session.Close()
	program := tea.NewProgram(session.Model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
