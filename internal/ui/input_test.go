package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// At 100x30 without footer the image surface spans x 26..64, y 4..25.
const (
	imageX = 40
	imageY = 10
)

func TestLayoutImageRegion(t *testing.T) {
	lay := computeLayout(100, 30, false)
	want := rect{x: 26, y: 4, w: 39, h: 22}
	if lay.image != want {
		t.Fatalf("expected image rect %#v, got %#v", want, lay.image)
	}
	if lay.listWidth+lay.centerWidth+lay.sideWidth != 100 {
		t.Fatalf("expected columns to fill width, got %#v", lay)
	}
	narrow := computeLayout(60, 20, true)
	if narrow.sideWidth != 0 {
		t.Fatalf("expected side column dropped on narrow screens, got %d", narrow.sideWidth)
	}
	if narrow.bodyHeight != 17 {
		t.Fatalf("expected body height 17 with footer, got %d", narrow.bodyHeight)
	}
}

func TestMouseDragAdjustsWindowAndLevel(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Press(imageX, imageY)
	if !h.Model().snapshot.State.Dragging() {
		t.Fatalf("expected drag session after press on image")
	}

	h.Motion(imageX+10, imageY)
	s := h.Model().snapshot.State
	if !approx(s.Window, 82) || !approx(s.Level, 60) {
		t.Fatalf("expected window 82 level 60, got %v/%v", s.Window, s.Level)
	}

	// Moving up raises level.
	h.Motion(imageX+10, imageY-5)
	s = h.Model().snapshot.State
	if !approx(s.Window, 82) || !approx(s.Level, 61) {
		t.Fatalf("expected window 82 level 61, got %v/%v", s.Window, s.Level)
	}

	h.Release(imageX+10, imageY-5)
	if h.Model().snapshot.State.Dragging() {
		t.Fatalf("expected release to end drag")
	}
	h.Motion(imageX+20, imageY)
	if !approx(h.Model().snapshot.State.Window, 82) {
		t.Fatalf("expected motion after release to be ignored")
	}
}

func TestMouseLeaveEndsDrag(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Press(imageX, imageY)
	h.Motion(5, imageY)
	s := h.Model().snapshot.State
	if s.Dragging() {
		t.Fatalf("expected leaving the image to end the drag")
	}
	if !approx(s.Window, 80) || !approx(s.Level, 60) {
		t.Fatalf("expected leave to leave adjustments untouched, got %v/%v", s.Window, s.Level)
	}
	h.Motion(imageX+25, imageY)
	if !approx(h.Model().snapshot.State.Window, 80) {
		t.Fatalf("expected re-entry without press to be ignored")
	}
}

func TestMouseClickSelectsSeries(t *testing.T) {
	h := NewHarness(newTestModel(t))
	lay := h.Model().layout()
	// Third explorer row is the brain series.
	h.Press(3, lay.listRowsTop()+2)
	s := h.Model().snapshot
	if s.State.SeriesID != 3 || s.State.FrameIndex != 1 {
		t.Fatalf("expected series 3 frame 1, got %#v", s.State)
	}
	if s.State.Dragging() {
		t.Fatalf("expected list click not to start a drag")
	}
	h.Press(3, lay.listRowsTop()+10)
	if h.Model().snapshot.State.SeriesID != 3 {
		t.Fatalf("expected click below rows to be ignored")
	}
}

func TestMouseWheelStepsFrames(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Send(tea.MouseMsg{X: imageX, Y: imageY, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	h.Send(tea.MouseMsg{X: imageX, Y: imageY, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := h.Model().snapshot.State.FrameIndex; got != 3 {
		t.Fatalf("expected frame 3, got %d", got)
	}
	h.Send(tea.MouseMsg{X: imageX, Y: imageY, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := h.Model().snapshot.State.FrameIndex; got != 2 {
		t.Fatalf("expected frame 2, got %d", got)
	}
}

func TestKeySlidersClampAndReset(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Key("]")
	h.Key("-")
	h.Key("Z")
	s := h.Model().snapshot.State
	if !approx(s.Window, 85) || !approx(s.Level, 55) || !approx(s.Zoom, 110) {
		t.Fatalf("unexpected adjustments %#v", s)
	}
	for i := 0; i < 10; i++ {
		h.Key("]")
	}
	if !approx(h.Model().snapshot.State.Window, 100) {
		t.Fatalf("expected window clamped to 100, got %v", h.Model().snapshot.State.Window)
	}
	h.Key("r")
	s = h.Model().snapshot.State
	if !approx(s.Window, 80) || !approx(s.Level, 60) || !approx(s.Zoom, 100) {
		t.Fatalf("expected defaults after reset, got %#v", s)
	}
}

func TestKeyNavigationSelectsSeries(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Key("down")
	h.Key("j")
	if h.Model().snapshot.State.SeriesID != 2 {
		t.Fatalf("expected cursor movement alone not to change series")
	}
	h.Key("enter")
	if got := h.Model().snapshot.State.SeriesID; got != 4 {
		t.Fatalf("expected series 4, got %d", got)
	}
	h.Key("pgdown")
	if got := h.Model().snapshot.State.FrameIndex; got != 2 {
		t.Fatalf("expected frame 2, got %d", got)
	}
}

func TestKeyHomeEndJumpCursor(t *testing.T) {
	h := NewHarness(newTestModel(t))
	cursorID := func() int {
		t.Helper()
		row, ok := h.Model().list.Current()
		if !ok {
			t.Fatalf("expected a current row")
		}
		return row.ID
	}
	h.Key("G")
	if got := cursorID(); got != 4 {
		t.Fatalf("expected G to move to the last row, got %d", got)
	}
	h.Key("g")
	if got := cursorID(); got != 1 {
		t.Fatalf("expected g to move to the first row, got %d", got)
	}
	h.Key("end")
	if got := cursorID(); got != 4 {
		t.Fatalf("expected end to move to the last row, got %d", got)
	}
	h.Key("home")
	if got := cursorID(); got != 1 {
		t.Fatalf("expected home to move to the first row, got %d", got)
	}
	if h.Model().snapshot.State.SeriesID != 2 {
		t.Fatalf("expected cursor jumps alone not to change series")
	}
	h.Key("enter")
	if got := h.Model().snapshot.State.SeriesID; got != 1 {
		t.Fatalf("expected series 1, got %d", got)
	}
}

func TestFilterSelectsAndClears(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Key("/")
	if !h.Model().filtering {
		t.Fatalf("expected filter mode")
	}
	for _, r := range "knee" {
		h.Key(string(r))
	}
	if rows := h.Model().list.Rows; len(rows) != 1 || rows[0].ID != 4 {
		t.Fatalf("expected knee series only, got %#v", rows)
	}
	h.Key("enter")
	if h.Model().filtering {
		t.Fatalf("expected enter to close filter input")
	}
	if got := h.Model().snapshot.State.SeriesID; got != 4 {
		t.Fatalf("expected series 4 selected, got %d", got)
	}

	h.Key("esc")
	if h.Model().list.Filter != "" || len(h.Model().list.Rows) != 4 {
		t.Fatalf("expected esc to clear filter")
	}
	if h.Quit() {
		t.Fatalf("expected esc with filter not to quit")
	}
	h.Key("esc")
	if !h.Quit() {
		t.Fatalf("expected esc without filter to quit")
	}
}

func TestEscEndsDragBeforeQuitting(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Press(imageX, imageY)
	h.Key("esc")
	if h.Model().snapshot.State.Dragging() || h.Quit() {
		t.Fatalf("expected esc to cancel drag without quitting")
	}
	h.Key("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
}
