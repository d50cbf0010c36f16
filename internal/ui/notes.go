package ui

import (
	"strings"

	"github.com/atomicstack/seriesview/internal/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// notesRenderer turns series notes (markdown) into terminal lines. Output is
// cached per text and width because View runs on every message.
type notesRenderer struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[string][]string
}

func newNotesRenderer() *notesRenderer {
	return &notesRenderer{cache: make(map[string][]string)}
}

func (n *notesRenderer) ensure(width int) {
	if n.renderer != nil && n.width == width {
		return
	}
	n.width = width
	n.cache = make(map[string][]string)
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Error(err)
		n.renderer = nil
		return
	}
	n.renderer = r
}

func (n *notesRenderer) render(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" || width <= 0 {
		return nil
	}
	n.ensure(width)
	if lines, ok := n.cache[text]; ok {
		return lines
	}
	var out string
	if n.renderer != nil {
		rendered, err := n.renderer.Render(text)
		if err != nil {
			logging.Error(err)
		} else {
			out = rendered
		}
	}
	if out == "" {
		out = wordwrap.String(text, width)
	}
	lines := trimBlankLines(strings.Split(strings.TrimRight(out, "\n"), "\n"))
	n.cache[text] = lines
	return lines
}

func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	return lines[start:end]
}
