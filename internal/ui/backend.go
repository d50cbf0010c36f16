package ui

import (
	"fmt"

	"github.com/atomicstack/seriesview/internal/backend"
	"github.com/atomicstack/seriesview/internal/logging"
	"github.com/atomicstack/seriesview/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	info := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return tea.Batch(info, waitForBackendEvent(m.backend))
	}
	return info
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded catalog. A failed reload keeps the
// current catalog on screen and reports the error in the status line. The
// returned command expires the reload notice.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		m.setError("catalog reload failed: %v", evt.Err)
		logging.Error(evt.Err)
		events.Catalog.ReloadFailed(evt.Path, evt.Err)
		return nil
	}
	if evt.Catalog == nil {
		return nil
	}
	m.catalog = evt.Catalog
	m.orch.ReplaceCatalog(evt.Catalog)
	m.list.UpdateRows(seriesRows(evt.Catalog))
	m.list.Focus(m.snapshot.State.SeriesID)
	m.errMsg = ""
	events.Catalog.Reloaded(evt.Path, evt.Catalog.Len())
	return m.setInfo(fmt.Sprintf("Catalog reloaded (%d series)", evt.Catalog.Len()))
}
