package viewport

import "github.com/atomicstack/seriesview/internal/catalog"

// Catalog is the read-only series source the orchestrator selects from.
type Catalog interface {
	Find(id int) (catalog.Series, bool)
	First() catalog.Series
}

// Snapshot is what presenters receive after each mutation.
type Snapshot struct {
	State      State
	Series     catalog.Series
	Descriptor Descriptor
}

// Presenter consumes snapshots, typically to redraw a display surface.
type Presenter interface {
	Present(Snapshot)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(Snapshot)

// Present calls f(s).
func (f PresenterFunc) Present(s Snapshot) {
	f(s)
}

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithAdjustments sets the session's initial (and reset) window, level and zoom.
func WithAdjustments(a Adjustments) Option {
	return func(o *Orchestrator) {
		o.initial = a.clamped()
	}
}

// WithCalibration overrides the render mapping offsets.
func WithCalibration(c Calibration) Option {
	return func(o *Orchestrator) {
		o.mapper = Mapper{Calibration: c}
	}
}

// WithPresenter attaches a presenter at construction time.
func WithPresenter(p Presenter) Option {
	return func(o *Orchestrator) {
		if p != nil {
			o.presenters = append(o.presenters, p)
		}
	}
}

// Orchestrator is the single writer of a viewing session's State.
type Orchestrator struct {
	catalog    Catalog
	series     catalog.Series
	state      State
	initial    Adjustments
	mapper     Mapper
	drag       dragController
	presenters []Presenter
}

// New starts a session on seriesID, falling back to the catalog's first entry
// when the id is unknown.
func New(c Catalog, seriesID int, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: c,
		initial: DefaultAdjustments,
		mapper:  Mapper{Calibration: DefaultCalibration},
		drag:    newDragController(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.series = o.resolve(seriesID)
	o.state = State{
		SeriesID:   o.series.ID,
		FrameIndex: 1,
		Window:     o.initial.Window,
		Level:      o.initial.Level,
		Zoom:       o.initial.Zoom,
	}
	return o
}

// Attach registers a presenter and immediately sends it the current snapshot.
func (o *Orchestrator) Attach(p Presenter) {
	if p == nil {
		return
	}
	o.presenters = append(o.presenters, p)
	p.Present(o.Snapshot())
}

// State returns a copy of the current state.
func (o *Orchestrator) State() State {
	return o.state.Clone()
}

// ActiveSeries returns the series currently on display.
func (o *Orchestrator) ActiveSeries() catalog.Series {
	return o.series
}

// CurrentDescriptor maps the current adjustments to render settings.
func (o *Orchestrator) CurrentDescriptor() Descriptor {
	return o.mapper.Map(o.state.Window, o.state.Level, o.state.Zoom)
}

// Snapshot bundles state, series and descriptor.
func (o *Orchestrator) Snapshot() Snapshot {
	return Snapshot{
		State:      o.State(),
		Series:     o.series,
		Descriptor: o.CurrentDescriptor(),
	}
}

// SelectSeries activates id, or the first series when id is unknown, and
// rewinds to the first frame. Adjustments carry over. The result reports
// whether the requested id was found.
func (o *Orchestrator) SelectSeries(id int) bool {
	s, found := o.catalog.Find(id)
	if !found {
		s = o.catalog.First()
	}
	o.series = s
	o.state.SeriesID = s.ID
	o.state.FrameIndex = 1
	o.publish()
	return found
}

// ReplaceCatalog swaps the series source, keeping the active series when the
// new catalog still has it. A nil catalog, including a nil *catalog.Catalog,
// is ignored.
func (o *Orchestrator) ReplaceCatalog(c Catalog) {
	if isNilCatalog(c) {
		return
	}
	o.catalog = c
	s, found := c.Find(o.state.SeriesID)
	if !found {
		s = c.First()
		o.state.FrameIndex = 1
	}
	o.series = s
	o.state.SeriesID = s.ID
	o.state.FrameIndex = o.clampFrame(o.state.FrameIndex)
	o.publish()
}

// SetWindow assigns the window, clamped to WindowRange.
func (o *Orchestrator) SetWindow(v float64) {
	o.state.Window = WindowRange.Clamp(v)
	o.publish()
}

// SetLevel assigns the level, clamped to LevelRange.
func (o *Orchestrator) SetLevel(v float64) {
	o.state.Level = LevelRange.Clamp(v)
	o.publish()
}

// SetZoom assigns the zoom, clamped to ZoomRange.
func (o *Orchestrator) SetZoom(v float64) {
	o.state.Zoom = ZoomRange.Clamp(v)
	o.publish()
}

// Reset restores the session's initial adjustments.
func (o *Orchestrator) Reset() {
	o.state.Window = o.initial.Window
	o.state.Level = o.initial.Level
	o.state.Zoom = o.initial.Zoom
	o.publish()
}

// BeginDrag opens (or re-anchors) a drag session at the pointer position.
func (o *Orchestrator) BeginDrag(x, y float64) {
	o.drag.begin(&o.state, x, y)
	o.publish()
}

// ContinueDrag folds pointer motion into window and level. It is a no-op when
// no drag session is open.
func (o *Orchestrator) ContinueDrag(x, y float64) {
	if !o.state.Dragging() {
		return
	}
	o.drag.move(&o.state, x, y)
	o.publish()
}

// EndDrag closes any open drag session.
func (o *Orchestrator) EndDrag() {
	if o.drag.end(&o.state) {
		o.publish()
	}
}

// SetFrame moves to a 1-based frame of the active series, clamped to its
// frame count.
func (o *Orchestrator) SetFrame(index int) {
	o.state.FrameIndex = o.clampFrame(index)
	o.publish()
}

// NextFrame advances one frame, stopping at the last.
func (o *Orchestrator) NextFrame() {
	o.SetFrame(o.state.FrameIndex + 1)
}

// PrevFrame steps back one frame, stopping at the first.
func (o *Orchestrator) PrevFrame() {
	o.SetFrame(o.state.FrameIndex - 1)
}

func (o *Orchestrator) resolve(id int) catalog.Series {
	if s, ok := o.catalog.Find(id); ok {
		return s
	}
	return o.catalog.First()
}

func (o *Orchestrator) clampFrame(index int) int {
	last := o.series.FrameCount
	if last < 1 {
		last = 1
	}
	if index < 1 {
		return 1
	}
	if index > last {
		return last
	}
	return index
}

func (o *Orchestrator) publish() {
	if len(o.presenters) == 0 {
		return
	}
	snap := o.Snapshot()
	for _, p := range o.presenters {
		p.Present(snap)
	}
}

func isNilCatalog(c Catalog) bool {
	if c == nil {
		return true
	}
	cc, ok := c.(*catalog.Catalog)
	return ok && cc == nil
}
