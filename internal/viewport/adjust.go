package viewport

import "math"

// DragSensitivity converts one unit of pointer travel into window/level units.
const DragSensitivity = 0.2

// dragController folds pointer motion into window and level. Moves are
// incremental: after each move the anchor follows the pointer.
type dragController struct {
	sensitivity float64
}

func newDragController() dragController {
	return dragController{sensitivity: DragSensitivity}
}

// begin opens a session at (x, y), re-anchoring an already open one.
func (c dragController) begin(s *State, x, y float64) {
	s.Drag = &DragSession{AnchorX: x, AnchorY: y}
}

// finiteDelta returns b-a, or 0 when either operand is NaN or infinite.
func finiteDelta(a, b float64) float64 {
	d := b - a
	if !isFinite(d) {
		return 0
	}
	return d
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// move applies the delta since the anchor and reports whether window or level
// changed. Without an open session it does nothing. A non-finite delta on
// either axis counts as no motion on that axis, and the anchor only follows
// finite coordinates.
func (c dragController) move(s *State, x, y float64) bool {
	if s.Drag == nil {
		return false
	}
	dx := finiteDelta(s.Drag.AnchorX, x)
	// screen y grows downward; upward motion raises the level
	dy := finiteDelta(y, s.Drag.AnchorY)
	window := WindowRange.Clamp(s.Window + dx*c.sensitivity)
	level := LevelRange.Clamp(s.Level + dy*c.sensitivity)
	changed := window != s.Window || level != s.Level
	s.Window = window
	s.Level = level
	if isFinite(x) {
		s.Drag.AnchorX = x
	}
	if isFinite(y) {
		s.Drag.AnchorY = y
	}
	return changed
}

// end closes the session and reports whether one was open.
func (c dragController) end(s *State) bool {
	open := s.Drag != nil
	s.Drag = nil
	return open
}
