package tablekit

import "testing"

func TestSessionHoverTransitions(t *testing.T) {
	s := NewResizeState()
	if !s.Idle() {
		t.Fatal("fresh state should be idle")
	}

	s = Transition(s, SetHover{Handle: offB, Axis: AxisHorizontal})
	if !s.Hovering() || s.Handle != offB || s.Axis != AxisHorizontal {
		t.Fatalf("after hover: %+v", s)
	}

	s = Transition(s, SetHover{Handle: offC, Axis: AxisVertical})
	if s.Handle != offC || s.Axis != AxisVertical {
		t.Fatalf("hover should retarget: %+v", s)
	}

	s = Transition(s, ClearHover{})
	if !s.Idle() {
		t.Fatalf("after clear: %+v", s)
	}
}

func TestSessionDragLifecycle(t *testing.T) {
	s := NewResizeState()

	// drag without a handle is rejected
	s = Transition(s, StartDrag{X: 10, Y: 0, StartSize: 100})
	if !s.Idle() {
		t.Fatalf("drag without handle should be a no-op: %+v", s)
	}

	s = Transition(s, SetHover{Handle: offB, Axis: AxisHorizontal})
	s = Transition(s, StartDrag{X: 10, Y: 0, StartSize: 100})
	if !s.Dragging() || s.Drag.StartSize != 100 || s.Drag.StartX != 10 {
		t.Fatalf("after drag start: %+v", s)
	}

	// second drag start is rejected, state unchanged
	s2 := Transition(s, StartDrag{X: 99, Y: 99, StartSize: 1})
	if s2.Drag.StartX != 10 {
		t.Fatalf("second drag start should be a no-op: %+v", s2)
	}

	// hover updates are ignored mid-drag
	s2 = Transition(s, SetHover{Handle: offC, Axis: AxisVertical})
	if s2.Handle != offB || !s2.Dragging() {
		t.Fatalf("hover mid-drag should be a no-op: %+v", s2)
	}
	s2 = Transition(s, ClearHover{})
	if !s2.Dragging() {
		t.Fatalf("clear mid-drag should be a no-op: %+v", s2)
	}

	s = Transition(s, EndDrag{})
	if !s.Hovering() || s.Handle != offB {
		t.Fatalf("after drag end the handle should stay hovered: %+v", s)
	}
}

func TestSessionDocChangedRemapsHandle(t *testing.T) {
	s := Transition(NewResizeState(), SetHover{Handle: offF, Axis: AxisHorizontal})

	// an edit before the handle shifts its offset: pretend 4 tokens were
	// inserted at position 0
	grown := NewTable(
		NewRow(cell(1, 1)), // 4 tokens
		spanTable().Children[0],
		spanTable().Children[1],
		spanTable().Children[2],
	)
	s = Transition(s, DocChanged{Table: grown, Map: NewMapping(MapRange{Start: 0, OldSize: 0, NewSize: 4})})
	if s.Handle != offF+4 {
		t.Fatalf("handle = %d, want %d", s.Handle, offF+4)
	}
}

func TestSessionDocChangedInvalidation(t *testing.T) {
	// deleting the row that owns the handle collapses the session
	s := Transition(NewResizeState(), SetHover{Handle: offF, Axis: AxisVertical})
	s = Transition(s, StartDrag{X: 0, Y: 0, StartSize: 25})

	// drop row 2 (6 tokens at offset 14)
	shrunk := NewTable(
		spanTable().Children[0],
		spanTable().Children[1],
	)
	s = Transition(s, DocChanged{Table: shrunk, Map: NewMapping(MapRange{Start: 14, OldSize: 6, NewSize: 0})})
	if !s.Idle() {
		t.Fatalf("deleted handle should idle the session: %+v", s)
	}
	if s.Drag != nil {
		t.Fatal("drag should be abandoned on invalidation")
	}
}

func TestSessionDocChangedDeletionAtHandle(t *testing.T) {
	// the deleted range starts exactly at the handle's offset; the cell
	// that slides into that position must not inherit the session
	s := Transition(NewResizeState(), SetHover{Handle: offA, Axis: AxisHorizontal})
	s = Transition(s, StartDrag{X: 0, Y: 0, StartSize: 25})

	// drop cell a (2 tokens at offset 1): b slides into offset 1
	shrunk := NewTable(
		NewRow(cell(1, 1), cell(1, 1)),
		spanTable().Children[1],
		spanTable().Children[2],
	)
	s = Transition(s, DocChanged{Table: shrunk, Map: NewMapping(MapRange{Start: offA, OldSize: 2, NewSize: 0})})
	if !s.Idle() {
		t.Fatalf("handle at the start of a deleted range should idle the session: %+v", s)
	}
}

func TestSessionDocChangedStaleOffset(t *testing.T) {
	// the mapping survives but the offset no longer starts a cell
	s := Transition(NewResizeState(), SetHover{Handle: offB, Axis: AxisHorizontal})
	tiny := NewTable(NewRow(cell(1, 1)))
	s = Transition(s, DocChanged{Table: tiny, Map: nil})
	if !s.Idle() {
		t.Fatalf("stale offset should idle the session: %+v", s)
	}
}
