package tablekit

// GridMap maps the logical row/column grid of a table to the cells
// occupying it. The backing store is a flat Width*Height slice holding,
// per grid slot, the table-relative offset of the owning cell; a cell
// spanning several slots repeats its offset in every one of them, so
// span boundaries are detected by comparing neighboring slots for
// equality. Slots no cell reaches hold -1.
type GridMap struct {
	Width  int
	Height int
	cells  []int
}

// BuildGridMap derives the grid geometry of a table node. It is a pure
// function of the table's structure and span attributes. Tables are
// assumed well-formed; a cell overlapping an already-claimed slot
// overwrites it.
func BuildGridMap(table *Node) *GridMap {
	if table == nil || table.Type != NodeTable {
		return &GridMap{}
	}
	height := len(table.Children)
	grid := make([][]int, height)

	claim := func(r, c, offset int) {
		if r >= height {
			return
		}
		for len(grid[r]) <= c {
			grid[r] = append(grid[r], -1)
		}
		grid[r][c] = offset
	}

	rowOff := 0
	for r, row := range table.Children {
		pos := rowOff + 1
		col := 0
		for _, cell := range row.Children {
			// skip slots claimed by rowspans from rows above
			for col < len(grid[r]) && grid[r][col] != -1 {
				col++
			}
			cs, rs := cell.Colspan(), cell.Rowspan()
			for dr := 0; dr < rs; dr++ {
				for dc := 0; dc < cs; dc++ {
					claim(r+dr, col+dc, pos)
				}
			}
			col += cs
			pos += cell.Size()
		}
		rowOff += row.Size()
	}

	width := 0
	for _, r := range grid {
		if len(r) > width {
			width = len(r)
		}
	}
	m := &GridMap{Width: width, Height: height, cells: make([]int, width*height)}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if c < len(grid[r]) {
				m.cells[r*width+c] = grid[r][c]
			} else {
				m.cells[r*width+c] = -1
			}
		}
	}
	return m
}

// CellAt returns the offset of the cell occupying a grid slot, or -1.
func (m *GridMap) CellAt(row, col int) int {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return -1
	}
	return m.cells[row*m.Width+col]
}

// ColCount returns the leftmost grid column occupied by the cell at the
// given offset, or -1 when the offset is not in the map.
func (m *GridMap) ColCount(offset int) int {
	for i, v := range m.cells {
		if v == offset {
			return i % m.Width
		}
	}
	return -1
}

// RowCount returns the topmost grid row occupied by the cell at the
// given offset, or -1 when the offset is not in the map.
func (m *GridMap) RowCount(offset int) int {
	for i, v := range m.cells {
		if v == offset {
			return i / m.Width
		}
	}
	return -1
}

// Contains reports whether an offset owns at least one grid slot.
func (m *GridMap) Contains(offset int) bool {
	if offset < 0 {
		return false
	}
	for _, v := range m.cells {
		if v == offset {
			return true
		}
	}
	return false
}

// sameCellAbove reports whether a slot continues the cell from the row
// above (a rowspan continuation).
func (m *GridMap) sameCellAbove(row, col int) bool {
	return row > 0 && m.cells[row*m.Width+col] == m.cells[(row-1)*m.Width+col]
}

// sameCellLeft reports whether a slot continues the cell from the column
// to its left (a colspan continuation).
func (m *GridMap) sameCellLeft(row, col int) bool {
	return col > 0 && m.cells[row*m.Width+col] == m.cells[row*m.Width+col-1]
}

// TargetTrack returns the grid column (horizontal) or row (vertical)
// whose trailing boundary a handle resizes: the last track spanned by
// the handle's cell. It returns -1 when the handle is unknown.
func TargetTrack(table *Node, m *GridMap, handle int, axis Axis) int {
	cell := table.CellAt(handle)
	if cell == nil {
		return -1
	}
	switch axis {
	case AxisHorizontal:
		start := m.ColCount(handle)
		if start < 0 {
			return -1
		}
		return start + cell.Colspan() - 1
	case AxisVertical:
		start := m.RowCount(handle)
		if start < 0 {
			return -1
		}
		return start + cell.Rowspan() - 1
	}
	return -1
}
