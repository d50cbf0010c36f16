package ui

import (
	"github.com/atomicstack/seriesview/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.filtering {
		return m.handleFilterKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleBack()
	case key.Matches(keyMsg, m.keys.Filter):
		return m.openFilter()
	case key.Matches(keyMsg, m.keys.Up):
		if m.list.MoveCursorUp() {
			events.UI.Cursor(m.list.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.list.MoveCursorDown() {
			events.UI.Cursor(m.list.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Home):
		if m.list.MoveCursorHome() {
			events.UI.Cursor(m.list.Cursor)
		}
	case key.Matches(keyMsg, m.keys.End):
		if m.list.MoveCursorEnd() {
			events.UI.Cursor(m.list.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Select):
		if row, ok := m.list.Current(); ok {
			m.selectSeries(row.ID)
		}
	case key.Matches(keyMsg, m.keys.WindowDown):
		m.setWindow(m.snapshot.State.Window - windowStep)
	case key.Matches(keyMsg, m.keys.WindowUp):
		m.setWindow(m.snapshot.State.Window + windowStep)
	case key.Matches(keyMsg, m.keys.LevelDown):
		m.setLevel(m.snapshot.State.Level - levelStep)
	case key.Matches(keyMsg, m.keys.LevelUp):
		m.setLevel(m.snapshot.State.Level + levelStep)
	case key.Matches(keyMsg, m.keys.ZoomOut):
		m.setZoom(m.snapshot.State.Zoom - zoomStep)
	case key.Matches(keyMsg, m.keys.ZoomIn):
		m.setZoom(m.snapshot.State.Zoom + zoomStep)
	case key.Matches(keyMsg, m.keys.PrevFrame):
		m.orch.PrevFrame()
		events.Viewport.Frame(m.snapshot.State.SeriesID, m.snapshot.State.FrameIndex)
	case key.Matches(keyMsg, m.keys.NextFrame):
		m.orch.NextFrame()
		events.Viewport.Frame(m.snapshot.State.SeriesID, m.snapshot.State.FrameIndex)
	case key.Matches(keyMsg, m.keys.Reset):
		m.orch.Reset()
		events.Viewport.Reset()
		return m.setInfo("Adjustments reset")
	}
	return nil
}

// handleBack ends a drag first, then clears the filter, then quits.
func (m *Model) handleBack() tea.Cmd {
	if m.snapshot.State.Dragging() {
		m.orch.EndDrag()
		events.Viewport.DragEnd("cancel")
		return nil
	}
	if m.list.Filter != "" {
		m.clearFilter()
		return nil
	}
	return tea.Quit
}

func (m *Model) setWindow(v float64) {
	m.orch.SetWindow(v)
	events.Viewport.Slider("window", m.snapshot.State.Window)
}

func (m *Model) setLevel(v float64) {
	m.orch.SetLevel(v)
	events.Viewport.Slider("level", m.snapshot.State.Level)
}

func (m *Model) setZoom(v float64) {
	m.orch.SetZoom(v)
	events.Viewport.Slider("zoom", m.snapshot.State.Zoom)
}

func (m *Model) openFilter() tea.Cmd {
	m.filtering = true
	m.filter.SetValue(m.list.Filter)
	m.filter.CursorEnd()
	events.Filter.Open()
	return m.filter.Focus()
}

func (m *Model) closeFilter() {
	m.filtering = false
	m.filter.Blur()
}

func (m *Model) clearFilter() {
	m.closeFilter()
	m.filter.SetValue("")
	m.list.SetFilter("")
	m.list.Focus(m.snapshot.State.SeriesID)
	events.Filter.Cleared()
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.clearFilter()
		return nil
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEnter:
		m.closeFilter()
		if row, ok := m.list.Current(); ok {
			m.selectSeries(row.ID)
		}
		return nil
	case tea.KeyUp:
		m.list.MoveCursorUp()
		return nil
	case tea.KeyDown:
		m.list.MoveCursorDown()
		return nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if value := m.filter.Value(); value != before {
		m.list.SetFilter(value)
		events.Filter.Changed(value, len(m.list.Rows))
	}
	return cmd
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	lay := m.layout()
	inImage := lay.image.contains(ev.X, ev.Y)
	dragging := m.snapshot.State.Dragging()

	switch ev.Action {
	case tea.MouseActionRelease:
		if dragging {
			m.orch.EndDrag()
			events.Viewport.DragEnd("release")
		}
	case tea.MouseActionMotion:
		if !dragging {
			return nil
		}
		// Leaving the image surface ends the session like a release would.
		if !inImage {
			m.orch.EndDrag()
			events.Viewport.DragEnd("leave")
			return nil
		}
		m.orch.ContinueDrag(float64(ev.X), float64(ev.Y))
	case tea.MouseActionPress:
		switch ev.Button {
		case tea.MouseButtonWheelUp:
			if inImage {
				m.orch.PrevFrame()
				events.Viewport.Frame(m.snapshot.State.SeriesID, m.snapshot.State.FrameIndex)
			} else if lay.inList(ev.X, ev.Y) {
				m.list.MoveCursorUp()
			}
		case tea.MouseButtonWheelDown:
			if inImage {
				m.orch.NextFrame()
				events.Viewport.Frame(m.snapshot.State.SeriesID, m.snapshot.State.FrameIndex)
			} else if lay.inList(ev.X, ev.Y) {
				m.list.MoveCursorDown()
			}
		case tea.MouseButtonLeft:
			if inImage {
				m.orch.BeginDrag(float64(ev.X), float64(ev.Y))
				events.Viewport.DragBegin(ev.X, ev.Y)
				return nil
			}
			if id, ok := m.rowAt(lay, ev.X, ev.Y); ok {
				m.selectSeries(id)
			}
		}
	}
	return nil
}

// rowAt maps a screen position onto the series id drawn there.
func (m *Model) rowAt(lay layout, x, y int) (int, bool) {
	if !lay.inList(x, y) {
		return 0, false
	}
	offset := y - lay.listRowsTop()
	if offset < 0 {
		return 0, false
	}
	rows, _ := m.list.Visible(lay.listRows())
	if offset >= len(rows) {
		return 0, false
	}
	return rows[offset].ID, true
}
