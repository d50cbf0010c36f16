package ui

import (
	"github.com/atomicstack/seriesview/internal/logging"
	"github.com/atomicstack/seriesview/internal/logging/events"
	"github.com/atomicstack/seriesview/internal/viewport"
)

// TracePresenter writes every snapshot to the trace log.
type TracePresenter struct{}

// Present implements viewport.Presenter.
func (TracePresenter) Present(s viewport.Snapshot) {
	if !logging.TraceEnabled() {
		return
	}
	events.Viewport.Render(map[string]interface{}{
		"series":    s.State.SeriesID,
		"frame":     s.State.FrameIndex,
		"window":    s.State.Window,
		"level":     s.State.Level,
		"zoom":      s.State.Zoom,
		"dragging":  s.State.Dragging(),
		"filter":    s.Descriptor.CSSFilter(),
		"transform": s.Descriptor.CSSTransform(),
		"image":     s.Series.Frame(s.State.FrameIndex),
	})
}
