package tablekit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// render styles
var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	handleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// TrackLayout holds the resolved size of every grid track.
type TrackLayout struct {
	ColWidths  []int
	RowHeights []int
}

// TableRenderer lays a table out from its attributes and draws it.
// Layout accepts an optional preview override for one track so a drag
// can be shown without touching the document.
type TableRenderer interface {
	Layout(table *Node, override *Override) TrackLayout
	Render(table *Node, layout TrackLayout, decos []Decoration) string
}

// TermRenderer renders a table to a terminal string using box-drawing
// borders. It keeps the geometry of its last layout so it can also act
// as the Measurer and PointLocator for a terminal host.
type TermRenderer struct {
	opts      *Options
	defColW   int
	defRowH   int
	originX   int
	originY   int
	lastTable *Node
	lastMap   *GridMap
	lastBX    []int // vertical border x positions, len Width+1
	lastBY    []int // horizontal border y positions, len Height+1
}

// NewTermRenderer builds a renderer with 10-wide columns and 1-high rows
// by default.
func NewTermRenderer(opts *Options) *TermRenderer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TermRenderer{opts: opts, defColW: 10, defRowH: 1}
}

// DefaultColWidth sets the width used for columns without a stored hint.
func (r *TermRenderer) DefaultColWidth(w int) *TermRenderer {
	r.defColW = w
	return r
}

// DefaultRowHeight sets the height used for rows without a stored hint.
func (r *TermRenderer) DefaultRowHeight(h int) *TermRenderer {
	r.defRowH = h
	return r
}

// Origin sets the screen position of the table's top-left border.
func (r *TermRenderer) Origin(x, y int) *TermRenderer {
	r.originX = x
	r.originY = y
	return r
}

// Layout resolves track sizes from the table's attributes. A column
// takes the first explicit width hint found for it scanning rows top to
// bottom; a row takes its row node's own height hint. Unhinted tracks
// fall back to the renderer defaults, floored at the configured minima.
// The override, if any, replaces one track's size afterwards.
func (r *TermRenderer) Layout(table *Node, override *Override) TrackLayout {
	m := BuildGridMap(table)
	lay := TrackLayout{
		ColWidths:  make([]int, m.Width),
		RowHeights: make([]int, m.Height),
	}

	for c := 0; c < m.Width; c++ {
		w := 0
		for row := 0; row < m.Height && w == 0; row++ {
			off := m.CellAt(row, c)
			if off < 0 {
				continue
			}
			cell := table.CellAt(off)
			if cell == nil {
				continue
			}
			if hints := cell.ColWidths(); hints != nil {
				if h := hints[c-m.ColCount(off)]; h > 0 {
					w = h
				}
			}
		}
		if w == 0 {
			w = r.defColW
		}
		if w < r.opts.cellMinWidth {
			w = r.opts.cellMinWidth
		}
		lay.ColWidths[c] = w
	}

	for row := 0; row < m.Height; row++ {
		h := 0
		if hints := table.Children[row].RowHeights(); hints != nil && hints[0] > 0 {
			h = hints[0]
		}
		if h == 0 {
			h = r.defRowH
		}
		if h < r.opts.cellMinHeight {
			h = r.opts.cellMinHeight
		}
		lay.RowHeights[row] = h
	}

	if override != nil {
		switch override.Axis {
		case AxisHorizontal:
			if override.Track >= 0 && override.Track < len(lay.ColWidths) {
				lay.ColWidths[override.Track] = override.Size
			}
		case AxisVertical:
			if override.Track >= 0 && override.Track < len(lay.RowHeights) {
				lay.RowHeights[override.Track] = override.Size
			}
		}
	}

	r.lastTable = table
	r.lastMap = m
	r.lastBX = boundaries(lay.ColWidths)
	r.lastBY = boundaries(lay.RowHeights)
	return lay
}

// boundaries turns track sizes into border line positions: border i sits
// before track i, border len(sizes) closes the grid.
func boundaries(sizes []int) []int {
	b := make([]int, len(sizes)+1)
	for i, s := range sizes {
		b[i+1] = b[i] + s + 1
	}
	return b
}

// cell paint classes
const (
	paintText = iota
	paintBorder
	paintHandle
)

// Render draws the table. Merged cells are drawn as one box across
// their spanned tracks; decorations highlight the boundary they mark.
func (r *TermRenderer) Render(table *Node, lay TrackLayout, decos []Decoration) string {
	m := BuildGridMap(table)
	bx := boundaries(lay.ColWidths)
	by := boundaries(lay.RowHeights)
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	w, h := bx[m.Width]+1, by[m.Height]+1

	canvas := make([][]rune, h)
	class := make([][]int, h)
	for y := range canvas {
		canvas[y] = make([]rune, w)
		class[y] = make([]int, w)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	set := func(x, y int, ch rune, cl int) {
		if y < 0 || y >= h || x < 0 || x >= w {
			return
		}
		// crossing borders become junctions
		if cl == paintBorder {
			old := canvas[y][x]
			if (old == '─' && ch == '│') || (old == '│' && ch == '─') {
				ch = '+'
			}
		}
		canvas[y][x] = ch
		if cl > class[y][x] {
			class[y][x] = cl
		}
	}

	// cell boxes
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			off := m.CellAt(row, col)
			if off < 0 || m.sameCellAbove(row, col) || m.sameCellLeft(row, col) {
				continue
			}
			cell := table.CellAt(off)
			if cell == nil {
				continue
			}
			x0, x1 := bx[col], bx[col+cell.Colspan()]
			y0, y1 := by[row], by[row+cell.Rowspan()]
			for x := x0; x <= x1; x++ {
				set(x, y0, '─', paintBorder)
				set(x, y1, '─', paintBorder)
			}
			for y := y0; y <= y1; y++ {
				set(x0, y, '│', paintBorder)
				set(x1, y, '│', paintBorder)
			}
			set(x0, y0, '+', paintBorder)
			set(x1, y0, '+', paintBorder)
			set(x0, y1, '+', paintBorder)
			set(x1, y1, '+', paintBorder)

			text := []rune(cellText(cell))
			maxLen := x1 - x0 - 3
			if maxLen > 0 {
				if len(text) > maxLen {
					text = text[:maxLen]
				}
				for i, ch := range text {
					set(x0+2+i, y0+1, ch, paintText)
				}
			}
		}
	}

	// handle markers
	for _, d := range decos {
		cell := table.CellAt(d.Cell)
		if cell == nil {
			continue
		}
		switch d.Axis {
		case AxisHorizontal:
			x := bx[d.Col+1]
			for y := by[d.Row]; y <= by[d.Row+1]; y++ {
				set(x, y, '│', paintHandle)
			}
		case AxisVertical:
			y := by[d.Row+1]
			for x := bx[d.Col]; x <= bx[d.Col+1]; x++ {
				set(x, y, '─', paintHandle)
			}
		}
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		x := 0
		for x < w {
			cl := class[y][x]
			run := x
			for run < w && class[y][run] == cl {
				run++
			}
			seg := string(canvas[y][x:run])
			switch cl {
			case paintBorder:
				b.WriteString(borderStyle.Render(seg))
			case paintHandle:
				b.WriteString(handleStyle.Render(seg))
			default:
				b.WriteString(seg)
			}
			x = run
		}
		if y < h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellText(cell *Node) string {
	for _, c := range cell.Children {
		if c.Type == NodeBlock {
			if t := c.Attrs.Text("text"); t != "" {
				return t
			}
		}
	}
	return ""
}

// ----------------------------------------------------------------------------
// Measurer / PointLocator over the last layout
// ----------------------------------------------------------------------------

// MeasureCell reports the interior size of a cell's rendered box from
// the most recent Layout call.
func (r *TermRenderer) MeasureCell(offset int) (int, int, bool) {
	if r.lastTable == nil || r.lastMap == nil {
		return 0, 0, false
	}
	cell := r.lastTable.CellAt(offset)
	if cell == nil {
		return 0, 0, false
	}
	c0, r0 := r.lastMap.ColCount(offset), r.lastMap.RowCount(offset)
	if c0 < 0 || r0 < 0 {
		return 0, 0, false
	}
	c1, r1 := c0+cell.Colspan(), r0+cell.Rowspan()
	if c1 >= len(r.lastBX) || r1 >= len(r.lastBY) {
		return 0, 0, false
	}
	return r.lastBX[c1] - r.lastBX[c0] - 1, r.lastBY[r1] - r.lastBY[r0] - 1, true
}

// LocateCell resolves a screen coordinate to the cell rendered there,
// using the most recent Layout call. Points on a shared border resolve
// to the cell before it.
func (r *TermRenderer) LocateCell(x, y int) (CellHit, bool) {
	if r.lastTable == nil || r.lastMap == nil {
		return CellHit{}, false
	}
	lx, ly := x-r.originX, y-r.originY
	m := r.lastMap
	col := trackAt(r.lastBX, lx)
	row := trackAt(r.lastBY, ly)
	if col < 0 || row < 0 {
		return CellHit{}, false
	}
	off := m.CellAt(row, col)
	if off < 0 {
		return CellHit{}, false
	}
	cell := r.lastTable.CellAt(off)
	if cell == nil {
		return CellHit{}, false
	}
	c0, r0 := m.ColCount(off), m.RowCount(off)
	c1, r1 := c0+cell.Colspan(), r0+cell.Rowspan()
	return CellHit{
		Offset: off,
		X:      r.originX + r.lastBX[c0],
		Y:      r.originY + r.lastBY[r0],
		W:      r.lastBX[c1] - r.lastBX[c0] + 1,
		H:      r.lastBY[r1] - r.lastBY[r0] + 1,
	}, true
}

// trackAt finds the track whose span (borders inclusive) contains pos.
func trackAt(borders []int, pos int) int {
	if pos < 0 || len(borders) < 2 || pos > borders[len(borders)-1] {
		return -1
	}
	for i := 0; i < len(borders)-1; i++ {
		if pos <= borders[i+1] {
			return i
		}
	}
	return -1
}
