package tablekit

import "log/slog"

// PointerEvent is one pointer position in viewport coordinates.
type PointerEvent struct {
	X, Y int
}

// PointerSource hands out temporary global pointer listeners for the
// lifetime of one drag. The surface registers a move/up pair on
// pointer-down and calls the returned remove func on pointer-up; this
// is the only dynamic subscription in the system.
type PointerSource interface {
	AddDragListeners(move, up func(PointerEvent)) (remove func())
}

// Surface wires the resize components to one editing surface: it owns
// the single ResizeState value, feeds pointer events through the edge
// detector and session, previews drags through the renderer, and
// commits on pointer-up. All methods run synchronously on the caller's
// event loop; the session is re-validated against every document change
// instead of locking.
type Surface struct {
	opts     *Options
	table    *Node
	grid     *GridMap
	state    ResizeState
	renderer TableRenderer
	detector *EdgeDetector
	measurer Measurer
	source   PointerSource
	log      *slog.Logger

	preview    *Override
	removeDrag func()
	onCommit   []func(*Transaction)
	onFrame    func()
}

// NewSurface creates a surface for one table. Collaborators are wired
// with the fluent setters; a surface without a renderer or locator can
// still run the session against injected events (useful in tests).
func NewSurface(table *Node, opts *Options) *Surface {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Surface{
		opts:  opts,
		table: table,
		grid:  BuildGridMap(table),
		state: NewResizeState(),
		log:   slog.New(slog.DiscardHandler),
	}
}

// Renderer sets the rendering adapter. A *TermRenderer also provides
// measurement and point lookup, so it is wired into those roles unless
// they were set explicitly.
func (s *Surface) Renderer(r TableRenderer) *Surface {
	s.renderer = r
	if loc, ok := r.(PointLocator); ok && s.detector == nil {
		s.detector = NewEdgeDetector(loc, s.opts)
	}
	if m, ok := r.(Measurer); ok && s.measurer == nil {
		s.measurer = m
	}
	return s
}

// Locator sets the viewport-to-cell lookup used for edge detection.
func (s *Surface) Locator(loc PointLocator) *Surface {
	s.detector = NewEdgeDetector(loc, s.opts)
	return s
}

// MeasureWith sets the rendered-size measurer used at drag start.
func (s *Surface) MeasureWith(m Measurer) *Surface {
	s.measurer = m
	return s
}

// Source sets the pointer source used for per-drag global listeners.
func (s *Surface) Source(src PointerSource) *Surface {
	s.source = src
	return s
}

// Logger sets the debug logger. The default discards everything.
func (s *Surface) Logger(l *slog.Logger) *Surface {
	if l != nil {
		s.log = l
	}
	return s
}

// OnCommit registers an observer for committed transactions.
func (s *Surface) OnCommit(f func(*Transaction)) *Surface {
	s.onCommit = append(s.onCommit, f)
	return s
}

// OnFrame registers a redraw trigger, called whenever the visual state
// changed without a document change (hover moves, drag previews).
func (s *Surface) OnFrame(f func()) *Surface {
	s.onFrame = f
	return s
}

// Table returns the current table node.
func (s *Surface) Table() *Node { return s.table }

// State returns the current session snapshot.
func (s *Surface) State() ResizeState { return s.state }

// GridMap returns the current grid geometry.
func (s *Surface) GridMap() *GridMap { return s.grid }

// ----------------------------------------------------------------------------
// pointer protocol
// ----------------------------------------------------------------------------

// PointerMove updates the hover handle from a pointer position. Ignored
// mid-drag; drag tracking runs on the listeners registered at
// pointer-down.
func (s *Surface) PointerMove(ev PointerEvent) {
	if s.state.Dragging() || s.detector == nil {
		return
	}
	handle, axis := s.detector.Hit(s.table, s.grid, ev.X, ev.Y)
	if handle == s.state.Handle && axis == s.state.Axis {
		return
	}
	if handle < 0 {
		s.apply(ClearHover{})
	} else {
		s.apply(SetHover{Handle: handle, Axis: axis})
	}
	s.requestFrame()
}

// PointerLeave clears the hover handle when the pointer leaves the
// surface. A drag in progress is unaffected.
func (s *Surface) PointerLeave() {
	if s.state.Dragging() {
		return
	}
	if !s.state.Idle() {
		s.apply(ClearHover{})
		s.requestFrame()
	}
}

// PointerDown starts a drag on the active handle. Without a handle, or
// with a drag already running, it is a no-op. The drag baseline is the
// targeted track's current effective size; when that cannot be
// determined the press is absorbed.
func (s *Surface) PointerDown(ev PointerEvent) {
	if s.state.Handle < 0 || s.state.Dragging() {
		return
	}
	size, ok := EffectiveSize(s.table, s.state.Handle, s.state.Axis, s.measurer)
	if !ok {
		s.log.Debug("resize: no measurable size", "handle", s.state.Handle)
		return
	}
	s.apply(StartDrag{X: ev.X, Y: ev.Y, StartSize: size})
	s.log.Debug("resize: drag start", "handle", s.state.Handle, "axis", s.state.Axis.String(), "size", size)
	if s.source != nil {
		s.removeDrag = s.source.AddDragListeners(s.DragMove, s.DragEnd)
	}
	s.requestFrame()
}

// DragMove previews the drag at a new pointer position.
func (s *Surface) DragMove(ev PointerEvent) {
	if !s.state.Dragging() {
		return
	}
	size := PreviewSize(s.state.Drag, s.state.Axis, ev.X, ev.Y, s.opts.MinSize(s.state.Axis))
	track := TargetTrack(s.table, s.grid, s.state.Handle, s.state.Axis)
	if track < 0 {
		return
	}
	s.preview = &Override{Axis: s.state.Axis, Track: track, Size: size}
	s.requestFrame()
}

// DragEnd commits the drag at its final pointer position and releases
// the drag listeners. The committed value is exactly the last preview.
func (s *Surface) DragEnd(ev PointerEvent) {
	if !s.state.Dragging() {
		return
	}
	size := PreviewSize(s.state.Drag, s.state.Axis, ev.X, ev.Y, s.opts.MinSize(s.state.Axis))
	handle, axis := s.state.Handle, s.state.Axis
	s.detachDrag()
	s.preview = nil
	s.apply(EndDrag{})

	var tx *Transaction
	switch axis {
	case AxisHorizontal:
		tx = PropagateColumnSize(s.table, s.grid, handle, size)
	case AxisVertical:
		tx = PropagateRowSize(s.table, s.grid, handle, size)
	}
	if tx == nil {
		// nothing changed; drop the commit entirely
		s.log.Debug("resize: no-op commit dropped", "handle", handle)
		s.requestFrame()
		return
	}
	tx.SetMeta("setDragging", nil)
	s.ApplyTransaction(tx)
	s.log.Debug("resize: committed", "handle", handle, "axis", axis.String(), "size", size)
}

// CancelDrag abandons the drag without committing, reverting the
// preview. Pointer-up always commits; cancel only ever runs from an
// explicit caller action such as an escape key.
func (s *Surface) CancelDrag() {
	if !s.state.Dragging() {
		return
	}
	s.detachDrag()
	s.preview = nil
	s.apply(EndDrag{})
	s.log.Debug("resize: drag cancelled", "handle", s.state.Handle)
	s.requestFrame()
}

func (s *Surface) detachDrag() {
	if s.removeDrag != nil {
		s.removeDrag()
		s.removeDrag = nil
	}
}

// ----------------------------------------------------------------------------
// document changes
// ----------------------------------------------------------------------------

// ApplyTransaction applies one of our own attribute transactions to the
// table and notifies commit observers. Attribute edits keep every
// offset stable, so the session is re-validated with an identity
// mapping.
func (s *Surface) ApplyTransaction(tx *Transaction) {
	if tx == nil || tx.Empty() {
		return
	}
	s.table = tx.Apply(s.table)
	s.grid = BuildGridMap(s.table)
	s.apply(DocChanged{Table: s.table})
	for _, f := range s.onCommit {
		f(tx)
	}
	s.requestFrame()
}

// DocChanged installs a table produced by an external edit. The mapping
// re-targets the active handle; when its cell no longer exists the
// session collapses to idle and any drag in progress is abandoned
// without committing.
func (s *Surface) DocChanged(table *Node, mapping *Mapping) {
	s.table = table
	s.grid = BuildGridMap(table)
	wasDragging := s.state.Dragging()
	s.apply(DocChanged{Table: table, Map: mapping})
	if wasDragging && !s.state.Dragging() {
		s.detachDrag()
		s.preview = nil
		s.log.Debug("resize: handle invalidated by edit")
	}
	s.requestFrame()
}

func (s *Surface) apply(ev SessionEvent) {
	s.state = Transition(s.state, ev)
}

func (s *Surface) requestFrame() {
	if s.onFrame != nil {
		s.onFrame()
	}
}

// View renders the current table with the active preview and handle
// decorations. It requires a renderer.
func (s *Surface) View() string {
	if s.renderer == nil {
		return ""
	}
	lay := s.renderer.Layout(s.table, s.preview)
	decos := Decorations(s.table, s.grid, s.state)
	return s.renderer.Render(s.table, lay, decos)
}
