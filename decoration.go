package tablekit

// Decoration marks one visual resize handle: the boundary of grid slot
// (Row, Col) along Axis, owned by the cell at Cell. Decorations are
// recomputed from the session state on every redraw and never persisted.
type Decoration struct {
	Cell int
	Row  int
	Col  int
	Axis Axis
}

// Decorations emits the handle markers for the current session state:
// one marker per distinct cell along the targeted boundary. For a column
// handle that is one marker per grid row, skipping rows that continue a
// row-spanning cell from above; symmetric for row handles. Idle and
// mid-miss states emit nothing.
func Decorations(table *Node, m *GridMap, s ResizeState) []Decoration {
	if s.Handle < 0 || s.Axis == AxisNone {
		return nil
	}
	track := TargetTrack(table, m, s.Handle, s.Axis)
	if track < 0 {
		return nil
	}
	var out []Decoration
	switch s.Axis {
	case AxisHorizontal:
		for row := 0; row < m.Height; row++ {
			if m.sameCellAbove(row, track) {
				continue
			}
			off := m.CellAt(row, track)
			if off < 0 {
				continue
			}
			out = append(out, Decoration{Cell: off, Row: row, Col: track, Axis: AxisHorizontal})
		}
	case AxisVertical:
		for col := 0; col < m.Width; col++ {
			if m.sameCellLeft(track, col) {
				continue
			}
			off := m.CellAt(track, col)
			if off < 0 {
				continue
			}
			out = append(out, Decoration{Cell: off, Row: track, Col: col, Axis: AxisVertical})
		}
	}
	return out
}
