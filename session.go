package tablekit

// DragState records a drag in progress: where the pointer went down and
// the size of the targeted track at that moment.
type DragState struct {
	StartX    int
	StartY    int
	StartSize int
}

// ResizeState is one snapshot of the resize session. Handle is the
// table-relative offset of the cell owning the targeted boundary, or -1.
// States: idle (Handle -1), hovering (Handle set, Drag nil), dragging
// (Handle set, Drag set). The value is never mutated; every event
// produces a fresh snapshot via Transition.
type ResizeState struct {
	Handle int
	Axis   Axis
	Drag   *DragState
}

// NewResizeState returns the idle state.
func NewResizeState() ResizeState {
	return ResizeState{Handle: -1}
}

// Idle reports whether no handle is active.
func (s ResizeState) Idle() bool { return s.Handle < 0 }

// Hovering reports whether a handle is active without a drag.
func (s ResizeState) Hovering() bool { return s.Handle >= 0 && s.Drag == nil }

// Dragging reports whether a drag is in progress.
func (s ResizeState) Dragging() bool { return s.Handle >= 0 && s.Drag != nil }

// SessionEvent is one input to the session state machine.
type SessionEvent interface{ sessionEvent() }

// SetHover activates a handle found by the edge detector.
type SetHover struct {
	Handle int
	Axis   Axis
}

// ClearHover deactivates the handle (pointer left the surface or moved
// away from every edge).
type ClearHover struct{}

// StartDrag begins a drag on the active handle, capturing the pointer
// position and the track's current effective size.
type StartDrag struct {
	X, Y      int
	StartSize int
}

// EndDrag finishes a drag. The handle stays active; the pointer is still
// next to the boundary it just moved.
type EndDrag struct{}

// DocChanged reports a document edit. Table is the post-edit table and
// Map re-targets pre-edit offsets (nil for attribute-only edits).
type DocChanged struct {
	Table *Node
	Map   *Mapping
}

func (SetHover) sessionEvent()   {}
func (ClearHover) sessionEvent() {}
func (StartDrag) sessionEvent()  {}
func (EndDrag) sessionEvent()    {}
func (DocChanged) sessionEvent() {}

// Transition is the session's pure step function. Events that are not
// legal in the current state leave it unchanged: hover updates are
// ignored mid-drag, a second drag cannot start, and a drag cannot start
// without a handle.
func Transition(s ResizeState, ev SessionEvent) ResizeState {
	switch ev := ev.(type) {
	case SetHover:
		if s.Drag != nil {
			return s
		}
		if ev.Handle < 0 {
			return NewResizeState()
		}
		return ResizeState{Handle: ev.Handle, Axis: ev.Axis}

	case ClearHover:
		if s.Drag != nil {
			return s
		}
		return NewResizeState()

	case StartDrag:
		if s.Handle < 0 || s.Drag != nil {
			return s
		}
		return ResizeState{Handle: s.Handle, Axis: s.Axis, Drag: &DragState{
			StartX:    ev.X,
			StartY:    ev.Y,
			StartSize: ev.StartSize,
		}}

	case EndDrag:
		if s.Drag == nil {
			return s
		}
		return ResizeState{Handle: s.Handle, Axis: s.Axis}

	case DocChanged:
		if s.Handle < 0 {
			return s
		}
		mapped, deleted := ev.Map.Map(s.Handle)
		if deleted || ev.Table == nil || ev.Table.CellAt(mapped) == nil {
			return NewResizeState()
		}
		return ResizeState{Handle: mapped, Axis: s.Axis, Drag: s.Drag}
	}
	return s
}
