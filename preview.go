package tablekit

// Override carries a live preview value for one track: while a drag is
// in progress the renderer substitutes Size for the stored size of grid
// column/row Track. No document change is involved.
type Override struct {
	Axis  Axis
	Track int
	Size  int
}

// PreviewSize computes the size shown (and ultimately committed) for a
// drag with the pointer at (x, y): the drag-start size plus the pointer
// delta along the drag axis, floored at min. Pointer-up commits exactly
// the value last previewed.
func PreviewSize(drag *DragState, axis Axis, x, y, min int) int {
	if drag == nil {
		return min
	}
	size := drag.StartSize
	switch axis {
	case AxisHorizontal:
		size += x - drag.StartX
	case AxisVertical:
		size += y - drag.StartY
	}
	if size < min {
		return min
	}
	return size
}
