package tablekit

import tea "github.com/charmbracelet/bubbletea"

// TeaInput adapts bubbletea mouse messages to the surface's pointer
// protocol. Bubbletea delivers every event through one Update loop, so
// "global" drag listeners are a pair of callbacks the adapter routes
// motion and release events to while a drag is live.
type TeaInput struct {
	dragMove func(PointerEvent)
	dragUp   func(PointerEvent)
}

// NewTeaInput creates the adapter.
func NewTeaInput() *TeaInput {
	return &TeaInput{}
}

// AddDragListeners implements PointerSource.
func (t *TeaInput) AddDragListeners(move, up func(PointerEvent)) func() {
	t.dragMove = move
	t.dragUp = up
	return func() {
		t.dragMove = nil
		t.dragUp = nil
	}
}

// Dragging reports whether drag listeners are registered.
func (t *TeaInput) Dragging() bool {
	return t.dragMove != nil
}

// Dispatch routes one bubbletea mouse message into the surface. Motion
// goes to the drag listener when one is registered and to hover
// detection otherwise; a left press starts a drag, a release finishes
// one.
func (t *TeaInput) Dispatch(msg tea.MouseMsg, s *Surface) {
	ev := PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionMotion:
		if t.dragMove != nil {
			t.dragMove(ev)
			return
		}
		s.PointerMove(ev)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		// hover state first: the press lands where the pointer already is
		s.PointerMove(ev)
		s.PointerDown(ev)
	case tea.MouseActionRelease:
		if t.dragUp != nil {
			t.dragUp(ev)
		}
	}
}
