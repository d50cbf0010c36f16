// Package viewport implements the window/level interaction engine: the
// session state, the drag controller that folds pointer motion into window and
// level, the mapping from those parameters to render settings, and the
// orchestrator that owns and mutates the state.
//
// Every write to State goes through Range.Clamp, so window, level and zoom
// never leave their ranges whatever the input path (drag, slider, reset).
// The Orchestrator is not safe for concurrent use; callers serialize events
// through a single owner such as the Bubble Tea update loop.
package viewport

import "math"

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

var (
	WindowRange = Range{Min: 0, Max: 100}
	LevelRange  = Range{Min: 0, Max: 100}
	ZoomRange   = Range{Min: 50, Max: 200}
)

// Clamp bounds v to the range. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DragSession anchors an in-progress pointer drag.
type DragSession struct {
	AnchorX float64
	AnchorY float64
}

// State is the mutable viewing-session state.
type State struct {
	SeriesID   int
	FrameIndex int
	Window     float64
	Level      float64
	Zoom       float64
	Drag       *DragSession
}

// Dragging reports whether a drag session is open.
func (s State) Dragging() bool {
	return s.Drag != nil
}

// Clone returns a copy that shares nothing with s.
func (s State) Clone() State {
	if s.Drag != nil {
		d := *s.Drag
		s.Drag = &d
	}
	return s
}

// Adjustments groups the three user-controlled display parameters.
type Adjustments struct {
	Window float64
	Level  float64
	Zoom   float64
}

// DefaultAdjustments is the start state of a viewing session.
var DefaultAdjustments = Adjustments{Window: 80, Level: 60, Zoom: 100}

func (a Adjustments) clamped() Adjustments {
	return Adjustments{
		Window: WindowRange.Clamp(a.Window),
		Level:  LevelRange.Clamp(a.Level),
		Zoom:   ZoomRange.Clamp(a.Zoom),
	}
}
