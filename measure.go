package tablekit

// Measurer reports the currently rendered size of a cell's box. It
// abstracts the host's rendering surface so effective-size computation
// stays testable without one. ok is false when the cell has no rendered
// box to measure.
type Measurer interface {
	MeasureCell(offset int) (w, h int, ok bool)
}

// EffectiveSize returns the current size of the track a handle targets,
// used as the baseline when a drag starts.
//
// The stored hint of the cell's last spanned track wins when present.
// Otherwise the cell's rendered box is measured, any explicitly hinted
// tracks are subtracted from it, and the remainder is split evenly
// across the tracks that lack a hint. ok is false when there is neither
// a hint nor a measurable box.
func EffectiveSize(table *Node, handle int, axis Axis, meas Measurer) (int, bool) {
	cell := table.CellAt(handle)
	if cell == nil {
		return 0, false
	}
	switch axis {
	case AxisHorizontal:
		return effectiveTrackSize(cell.Colspan(), cell.ColWidths(), func() (int, bool) {
			if meas == nil {
				return 0, false
			}
			w, _, ok := meas.MeasureCell(handle)
			return w, ok
		})
	case AxisVertical:
		return effectiveTrackSize(cell.Rowspan(), cell.RowHeights(), func() (int, bool) {
			if meas == nil {
				return 0, false
			}
			_, h, ok := meas.MeasureCell(handle)
			return h, ok
		})
	}
	return 0, false
}

func effectiveTrackSize(span int, hints []int, measure func() (int, bool)) (int, bool) {
	if hints != nil && hints[span-1] > 0 {
		return hints[span-1], true
	}
	box, ok := measure()
	if !ok {
		return 0, false
	}
	parts := span
	if hints != nil {
		for _, h := range hints {
			if h > 0 {
				box -= h
				parts--
			}
		}
	}
	if parts < 1 || box < 0 {
		return 0, false
	}
	return box / parts, true
}
