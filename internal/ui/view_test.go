package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/seriesview/internal/catalog"
	"github.com/atomicstack/seriesview/internal/viewport"
	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsOverlaysAndReadout(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{
		"SERIESVIEW",
		"Adrian Lunea",
		"MR-8492-X",
		"SERIES EXPLORER",
		"Se: 2  T2 Sagittal Spine",
		"WL: 1200 / WW: 2400",
		"Im: 1/12",
		"Zoom: 100%",
		"ADJUSTMENTS",
		"Contrast",
		"120%",
		"DIAGNOSIS HELPER",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, view =\n%s", want, view)
		}
	}
}

func TestViewFillsScreenExactly(t *testing.T) {
	m := newTestModel(t)
	m.showFooter = true
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 100 {
			t.Fatalf("line %d has width %d: %q", i, w, line)
		}
	}
}

func TestViewTracksAdjustments(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Key("]")
	h.Key("=")
	view := h.View()
	if !strings.Contains(view, "WL: 1300 / WW: 2550") {
		t.Fatalf("expected updated readout, view =\n%s", view)
	}
	h.Press(imageX, imageY)
	if !strings.Contains(h.View(), "adjusting") {
		t.Fatalf("expected drag indicator while dragging")
	}
	h.Release(imageX, imageY)
	if strings.Contains(h.View(), "adjusting") {
		t.Fatalf("expected drag indicator cleared after release")
	}
}

func TestViewFilterStates(t *testing.T) {
	h := NewHarness(newTestModel(t))
	h.Key("/")
	for _, r := range "zzz" {
		h.Key(string(r))
	}
	view := h.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected empty filter message, view =\n%s", view)
	}
	if !strings.Contains(view, "SERIES · 0/4") {
		t.Fatalf("expected filtered title, view =\n%s", view)
	}
}

func TestViewNarrowDropsSidePanel(t *testing.T) {
	cat := catalog.Default()
	m := NewModel(viewport.New(cat, 3), cat, nil, Options{Width: 60, Height: 20})
	view := m.View()
	if strings.Contains(view, "ADJUSTMENTS") {
		t.Fatalf("expected no side panel at width 60")
	}
	if !strings.Contains(view, "Brain Axial T2") {
		t.Fatalf("expected active series overlay")
	}
}

func TestSliderBar(t *testing.T) {
	bar := sliderBar(50, viewport.WindowRange, 10)
	if got := strings.Count(bar, "━"); got != 5 {
		t.Fatalf("expected half-filled bar, got %q", bar)
	}
	if got := lipgloss.Width(bar); got != 10 {
		t.Fatalf("expected width 10, got %d", got)
	}
	if got := strings.Count(sliderBar(250, viewport.ZoomRange, 10), "━"); got != 10 {
		t.Fatalf("expected out of range value clamped to full bar")
	}
	if sliderBar(10, viewport.LevelRange, 0) != "" {
		t.Fatalf("expected empty bar for zero width")
	}
}

func TestRenderLinePadsAndTruncates(t *testing.T) {
	if got := renderLine(styledLine{text: "abc"}, 5); got != "abc  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := renderLine(styledLine{text: "abcdef"}, 4); got != "abc…" {
		t.Fatalf("expected truncation, got %q", got)
	}
	if got := renderLine(styledLine{text: "abc"}, 0); got != "" {
		t.Fatalf("expected empty for zero width, got %q", got)
	}
}

func TestLimitHeight(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("expected ellipsis row, got %#v", got)
	}
	if len(limitHeight(lines, 5, 10)) != 3 {
		t.Fatalf("expected short input untouched")
	}
}
