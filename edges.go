package tablekit

// CellHit is the result of resolving a viewport point to a cell: the
// cell's table-relative offset and its rendered box. X/Y are the box's
// top-left corner; the right and bottom edges sit at X+W-1 and Y+H-1.
type CellHit struct {
	Offset     int
	X, Y, W, H int
}

// PointLocator resolves a viewport coordinate to the cell rendered
// there. It is the host-rendering side of edge detection; TermRenderer
// provides one for terminal output.
type PointLocator interface {
	LocateCell(x, y int) (CellHit, bool)
}

// EdgeDetector finds resize handles near cell boundaries.
type EdgeDetector struct {
	loc  PointLocator
	opts *Options
}

// NewEdgeDetector builds a detector over a point locator.
func NewEdgeDetector(loc PointLocator, opts *Options) *EdgeDetector {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &EdgeDetector{loc: loc, opts: opts}
}

// Hit reports the handle targeted by a pointer position: the offset of
// the cell whose trailing edge would move, and the boundary's axis. A
// miss returns (-1, AxisNone).
//
// The right and bottom edges of a cell belong to that cell. The left and
// top edges belong to the cell on the far side of the boundary, found by
// re-locating the point one handle width across at the pointer's own
// row or column, because dragging a boundary always resizes the cell
// whose trailing edge it is. The grid's first column/row has no cell on
// the far side, so its leading edge yields no handle.
func (d *EdgeDetector) Hit(table *Node, m *GridMap, x, y int) (int, Axis) {
	hit, ok := d.loc.LocateCell(x, y)
	if !ok || !m.Contains(hit.Offset) {
		return -1, AxisNone
	}
	hw := d.opts.handleWidth

	if x-hit.X <= hw || hit.X+hit.W-1-x <= hw {
		handle := -1
		if x-hit.X <= hw {
			if n, ok := d.loc.LocateCell(x-hw, y); ok && n.Offset != hit.Offset && m.Contains(n.Offset) {
				handle = n.Offset
			}
		} else {
			handle = hit.Offset
		}
		if handle < 0 {
			return -1, AxisNone
		}
		if !d.opts.lastColumnResizable && TargetTrack(table, m, handle, AxisHorizontal) == m.Width-1 {
			return -1, AxisNone
		}
		return handle, AxisHorizontal
	}

	if y-hit.Y <= hw || hit.Y+hit.H-1-y <= hw {
		handle := -1
		if y-hit.Y <= hw {
			if n, ok := d.loc.LocateCell(x, y-hw); ok && n.Offset != hit.Offset && m.Contains(n.Offset) {
				handle = n.Offset
			}
		} else {
			handle = hit.Offset
		}
		if handle < 0 {
			return -1, AxisNone
		}
		if !d.opts.lastRowResizable && TargetTrack(table, m, handle, AxisVertical) == m.Height-1 {
			return -1, AxisNone
		}
		return handle, AxisVertical
	}

	return -1, AxisNone
}
