package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/seriesview/internal/format/table"
	"github.com/atomicstack/seriesview/internal/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	brandName   = "SERIESVIEW"
	brandAccent = " PRO"
	sliderWidth = 20
)

// styledLine is one row of a column before width is applied. raw lines
// already carry escapes and are only truncated and padded.
type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool
}

// View renders header, the three body columns and the status/footer rows.
func (m *Model) View() string {
	lay := m.layout()
	lines := make([]string, 0, lay.height)
	lines = append(lines, renderLine(m.headerLine(lay.width), lay.width))

	left := m.listColumn(lay)
	center := m.imageColumn(lay)
	right := m.sideColumn(lay)
	for i := 0; i < lay.bodyHeight; i++ {
		lines = append(lines, lineAt(left, i, lay.listWidth)+lineAt(center, i, lay.centerWidth)+lineAt(right, i, lay.sideWidth))
	}

	lines = append(lines, renderLine(m.statusLine(), lay.width))
	if m.showFooter {
		m.help.Width = lay.width
		lines = append(lines, renderLine(styledLine{text: m.help.View(m.keys), raw: true}, lay.width))
	}
	return strings.Join(lines, "\n")
}

func lineAt(column []string, i, width int) string {
	if i < len(column) {
		return column[i]
	}
	return strings.Repeat(" ", width)
}

func (m *Model) headerLine(width int) styledLine {
	patient := m.catalog.Patient()
	parts := []string{
		styles.Brand.Render(brandName) + styles.BrandAccent.Render(brandAccent),
		styles.Patient.Render(patient.Name),
		styles.PatientMuted.Render(patient.ID),
	}
	if patient.BirthDate != "" {
		parts = append(parts, styles.PatientMuted.Render("DOB "+patient.BirthDate))
	}
	left := strings.Join(parts, styles.PatientMuted.Render("  │  "))
	var right string
	if m.snapshot.State.Dragging() {
		right = styles.BrandAccent.Render("● adjusting")
	} else if mod := m.snapshot.Series.Metadata.Modality; mod != "" {
		right = styles.Header.Render(mod)
	}
	if right != "" {
		gap := width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap > 0 {
			left += strings.Repeat(" ", gap) + right
		}
	}
	return styledLine{text: left, raw: true}
}

// listColumn draws the series explorer. The last cell of every line is the
// column separator.
func (m *Model) listColumn(lay layout) []string {
	inner := lay.listWidth - 1
	sep := styles.PatientMuted.Render("│")
	lines := make([]styledLine, 0, lay.bodyHeight)
	title := "SERIES EXPLORER"
	if m.list.Filter != "" {
		title = fmt.Sprintf("SERIES · %d/%d", len(m.list.Rows), len(m.list.Full))
	}
	lines = append(lines, styledLine{text: title, style: styles.SectionTitle})

	rows, start := m.list.Visible(lay.listRows())
	if len(rows) == 0 && m.list.Filter != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", m.list.Filter), style: styles.Info})
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{row.Label, row.Detail}
	}
	labelWidth := inner - 2 - 2 - 6
	if labelWidth < 4 {
		labelWidth = 4
	}
	formatted := table.Format(cells, []table.Column{{MaxWidth: labelWidth}, {Align: table.AlignRight}})
	active := m.snapshot.State.SeriesID
	for i, row := range rows {
		marker := "  "
		style := styles.Row
		if row.ID == active {
			marker = "▌ "
			style = styles.ActiveRow
		}
		if start+i == m.list.Cursor {
			style = styles.CursorRow
		}
		text := marker + formatted[i]
		if pad := inner - runewidth.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		lines = append(lines, styledLine{text: text, style: style})
	}

	out := make([]string, lay.bodyHeight)
	for i := range out {
		line := styledLine{}
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = renderLine(line, inner) + sep
	}
	return out
}

// imageColumn draws overlays, the bordered image surface and the readout.
// Its geometry must agree with layout.image for hit testing.
func (m *Model) imageColumn(lay layout) []string {
	w := lay.centerWidth
	s := m.snapshot
	out := make([]string, 0, lay.bodyHeight)

	title := fmt.Sprintf(" Se: %d  %s", s.Series.ID, s.Series.Name)
	out = append(out, renderLine(styledLine{text: title, style: styles.OverlayTitle}, w))
	desc := s.Series.Metadata.Description
	if desc == "" {
		desc = s.Series.Metadata.Modality
	}
	out = append(out, renderLine(styledLine{text: " " + desc, style: styles.Overlay}, w))

	border := styles.Image
	if s.State.Dragging() {
		border = styles.Dragging
	}
	edge := lipgloss.NewStyle().Foreground(border.GetBorderTopForeground())
	inner := lay.image.w
	out = append(out, edge.Render("┌"+strings.Repeat("─", inner)+"┐"))
	for _, row := range phantomRows(s, inner, lay.image.h) {
		out = append(out, edge.Render("│")+row+edge.Render("│"))
	}
	out = append(out, edge.Render("└"+strings.Repeat("─", inner)+"┘"))

	readout := viewport.ReadoutFor(s.State)
	out = append(out, renderLine(styledLine{text: " " + readout.String(), style: styles.Overlay}, w))
	frames := fmt.Sprintf(" Im: %d/%d   Zoom: %d%%", s.State.FrameIndex, s.Series.FrameCount, int(s.State.Zoom+0.5))
	if ref := s.Series.Frame(s.State.FrameIndex); ref != "" {
		frames += "   " + ref
	}
	out = append(out, renderLine(styledLine{text: frames, style: styles.Overlay}, w))
	return out
}

// sideColumn draws the adjustment sliders, render values and series notes.
func (m *Model) sideColumn(lay layout) []string {
	if lay.sideWidth == 0 {
		return nil
	}
	inner := lay.sideWidth - 2
	s := m.snapshot
	d := s.Descriptor
	lines := []styledLine{
		{text: "ADJUSTMENTS", style: styles.SectionTitle},
		{},
		labelValue("Window", fmt.Sprintf("%d", int(s.State.Window+0.5)), inner),
		{text: sliderBar(s.State.Window, viewport.WindowRange, min(sliderWidth, inner)), raw: true},
		labelValue("Level", fmt.Sprintf("%d", int(s.State.Level+0.5)), inner),
		{text: sliderBar(s.State.Level, viewport.LevelRange, min(sliderWidth, inner)), raw: true},
		labelValue("Zoom", fmt.Sprintf("%d%%", int(s.State.Zoom+0.5)), inner),
		{text: sliderBar(s.State.Zoom, viewport.ZoomRange, min(sliderWidth, inner)), raw: true},
		{},
		{text: "RENDER", style: styles.SectionTitle},
		labelValue("Contrast", fmt.Sprintf("%.0f%%", d.ContrastPercent), inner),
		labelValue("Brightness", fmt.Sprintf("%.0f%%", d.BrightnessPercent), inner),
		labelValue("Scale", fmt.Sprintf("×%.2f", d.Scale), inner),
	}
	if notes := s.Series.Metadata.Notes; notes != "" {
		lines = append(lines, styledLine{}, styledLine{text: "DIAGNOSIS HELPER", style: styles.NotesTitle})
		for _, line := range m.note.render(notes, inner) {
			lines = append(lines, styledLine{text: line, raw: true})
		}
	}
	lines = limitHeight(lines, lay.bodyHeight, inner)

	sep := styles.PatientMuted.Render("│") + " "
	out := make([]string, lay.bodyHeight)
	for i := range out {
		line := styledLine{}
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = sep + renderLine(line, inner)
	}
	return out
}

func labelValue(label, value string, width int) styledLine {
	gap := width - runewidth.StringWidth(label) - runewidth.StringWidth(value)
	if gap < 1 {
		gap = 1
	}
	text := styles.Label.Render(label) + strings.Repeat(" ", gap) + styles.Value.Render(value)
	return styledLine{text: text, raw: true}
}

// sliderBar draws value's position within r as a filled track.
func sliderBar(value float64, r viewport.Range, width int) string {
	if width <= 0 {
		return ""
	}
	span := r.Max - r.Min
	filled := 0
	if span > 0 {
		filled = int((r.Clamp(value)-r.Min)/span*float64(width) + 0.5)
	}
	return styles.SliderFill.Render(strings.Repeat("━", filled)) +
		styles.SliderTrack.Render(strings.Repeat("─", width-filled))
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.filtering:
		return styledLine{text: m.filter.View(), raw: true}
	case m.errMsg != "":
		return styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	if m.list.Filter != "" {
		return styledLine{text: fmt.Sprintf("filter: %s (esc to clear)", m.list.Filter), style: styles.Filter}
	}
	return styledLine{text: "Drag on the image: ←→ window, ↑↓ level", style: styles.Footer}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

// renderLine truncates, styles and pads a line to exactly width cells.
func renderLine(line styledLine, width int) string {
	if width <= 0 {
		return ""
	}
	text := line.text
	if line.raw {
		if lipgloss.Width(text) > width {
			text = truncate.StringWithTail(text, uint(width), "…")
		}
	} else {
		text = truncateText(text, width)
	}
	pad := width - lipgloss.Width(text)
	if !line.raw && line.style != nil {
		text = line.style.Render(text)
	}
	if pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
