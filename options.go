package tablekit

// Axis is the direction of a resize boundary.
type Axis int

const (
	AxisNone Axis = iota
	// AxisHorizontal targets a column boundary (width change).
	AxisHorizontal
	// AxisVertical targets a row boundary (height change).
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	}
	return "none"
}

// Options configures resize behavior. Zero values are never used
// directly; construct with DefaultOptions and adjust.
type Options struct {
	handleWidth         int
	cellMinWidth        int
	cellMinHeight       int
	lastColumnResizable bool
	lastRowResizable    bool
}

// DefaultOptions returns the standard configuration: 5-unit grab zone,
// 25-unit minimum cell size, every boundary resizable.
func DefaultOptions() *Options {
	return &Options{
		handleWidth:         5,
		cellMinWidth:        25,
		cellMinHeight:       25,
		lastColumnResizable: true,
		lastRowResizable:    true,
	}
}

// HandleWidth sets the distance from a boundary within which the pointer
// grabs a resize handle.
func (o *Options) HandleWidth(w int) *Options {
	o.handleWidth = w
	return o
}

// CellMinWidth sets the smallest width a column can be dragged to.
func (o *Options) CellMinWidth(w int) *Options {
	o.cellMinWidth = w
	return o
}

// CellMinHeight sets the smallest height a row can be dragged to.
func (o *Options) CellMinHeight(h int) *Options {
	o.cellMinHeight = h
	return o
}

// LastColumnResizable controls whether the table's trailing column
// boundary accepts a handle.
func (o *Options) LastColumnResizable(ok bool) *Options {
	o.lastColumnResizable = ok
	return o
}

// LastRowResizable controls whether the table's trailing row boundary
// accepts a handle.
func (o *Options) LastRowResizable(ok bool) *Options {
	o.lastRowResizable = ok
	return o
}

// MinSize returns the minimum size for the given axis.
func (o *Options) MinSize(axis Axis) int {
	if axis == AxisVertical {
		return o.cellMinHeight
	}
	return o.cellMinWidth
}
