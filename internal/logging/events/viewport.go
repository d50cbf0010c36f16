package events

import "github.com/atomicstack/seriesview/internal/logging"

type ViewportTracer struct{}

var Viewport = ViewportTracer{}

// Select records a series selection; fallback is true when the requested id
// was missing and the first series was shown instead.
func (ViewportTracer) Select(requested, active int, fallback bool) {
	logging.Trace("viewport.select", map[string]interface{}{
		"requested": requested,
		"active":    active,
		"fallback":  fallback,
	})
}

func (ViewportTracer) DragBegin(x, y int) {
	logging.Trace("viewport.drag-begin", map[string]interface{}{"x": x, "y": y})
}

func (ViewportTracer) DragEnd(reason string) {
	logging.Trace("viewport.drag-end", map[string]interface{}{"reason": reason})
}

func (ViewportTracer) Slider(field string, value float64) {
	logging.Trace("viewport.slider", map[string]interface{}{"field": field, "value": value})
}

func (ViewportTracer) Frame(series, frame int) {
	logging.Trace("viewport.frame", map[string]interface{}{"series": series, "frame": frame})
}

func (ViewportTracer) Reset() {
	logging.Trace("viewport.reset", nil)
}

func (ViewportTracer) Render(payload map[string]interface{}) {
	logging.Trace("viewport.render", payload)
}
