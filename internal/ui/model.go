package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/seriesview/internal/backend"
	"github.com/atomicstack/seriesview/internal/catalog"
	"github.com/atomicstack/seriesview/internal/logging/events"
	"github.com/atomicstack/seriesview/internal/theme"
	uistate "github.com/atomicstack/seriesview/internal/ui/state"
	"github.com/atomicstack/seriesview/internal/viewport"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	infoDuration  = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries presentation settings for the model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the series viewer.
type Model struct {
	orch     *viewport.Orchestrator
	catalog  *catalog.Catalog
	snapshot viewport.Snapshot

	list      *uistate.List
	filter    textinput.Model
	filtering bool

	keys keyMap
	help help.Model
	note *notesRenderer

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	infoTTL    time.Duration

	backend  *backend.Watcher
	handlers map[reflect.Type]msgHandler
}

// NewModel wires the model to an orchestrator and registers it as presenter.
func NewModel(orch *viewport.Orchestrator, c *catalog.Catalog, watcher *backend.Watcher, opts Options) *Model {
	m := &Model{
		orch:       orch,
		catalog:    c,
		list:       uistate.NewList(seriesRows(c)),
		keys:       defaultKeyMap(),
		help:       help.New(),
		note:       newNotesRenderer(),
		showFooter: opts.ShowFooter,
		infoTTL:    infoDuration,
		backend:    watcher,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.filter = newFilterInput()
	orch.Attach(m)
	m.list.Focus(m.snapshot.State.SeriesID)
	m.registerHandlers()
	return m
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter series"
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	return ti
}

// seriesRows converts catalog entries into explorer rows.
func seriesRows(c *catalog.Catalog) []uistate.Row {
	if c == nil {
		return nil
	}
	series := c.Series()
	rows := make([]uistate.Row, len(series))
	for i, s := range series {
		rows[i] = uistate.Row{ID: s.ID, Label: s.Name, Detail: fmt.Sprintf("%d img", s.FrameCount)}
	}
	return rows
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(infoExpiredMsg{}):    m.handleInfoExpiredMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Present implements viewport.Presenter.
func (m *Model) Present(s viewport.Snapshot) {
	m.snapshot = s
}

// selectSeries activates id and keeps the explorer cursor on the active row.
func (m *Model) selectSeries(id int) {
	found := m.orch.SelectSeries(id)
	active := m.snapshot.State.SeriesID
	events.Viewport.Select(id, active, !found)
	m.list.Focus(active)
	m.errMsg = ""
}

// infoExpiredMsg clears the info line set with the matching deadline.
type infoExpiredMsg struct {
	deadline time.Time
}

// setInfo shows message in the status line and returns the tick that clears
// it once infoTTL has passed.
func (m *Model) setInfo(message string) tea.Cmd {
	deadline := time.Now().Add(m.infoTTL)
	m.infoMsg = message
	m.infoExpire = deadline
	return tea.Tick(m.infoTTL, func(time.Time) tea.Msg {
		return infoExpiredMsg{deadline: deadline}
	})
}

func (m *Model) handleInfoExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(infoExpiredMsg)
	if !ok {
		return nil
	}
	// a newer message owns a later deadline
	if m.infoMsg != "" && m.infoExpire.Equal(expired.deadline) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return nil
}

// setError shows err in the status line until the next successful action.
func (m *Model) setError(format string, err error) {
	m.errMsg = fmt.Sprintf(format, err)
	events.UI.Error(err)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}
