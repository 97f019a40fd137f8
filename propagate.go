package tablekit

// PropagateColumnSize builds the transaction committing a column resize:
// the targeted grid column takes the new width in every cell that spans
// it, exactly once per distinct cell. Rows whose slot continues a
// row-spanning cell from the row above are skipped. Cells already
// storing the value are left alone; when nothing changes the function
// returns nil and no transaction should be emitted.
func PropagateColumnSize(table *Node, m *GridMap, handle, width int) *Transaction {
	col := TargetTrack(table, m, handle, AxisHorizontal)
	if col < 0 {
		return nil
	}
	tx := NewTransaction()
	for row := 0; row < m.Height; row++ {
		if m.sameCellAbove(row, col) {
			continue
		}
		off := m.CellAt(row, col)
		if off < 0 {
			continue
		}
		cell := table.CellAt(off)
		if cell == nil {
			continue
		}
		local := col - m.ColCount(off)
		cur := cell.ColWidths()
		if cur != nil && cur[local] == width {
			continue
		}
		next := make([]int, cell.Colspan())
		copy(next, cur)
		next[local] = width
		tx.SetAttr(off, "colwidth", next)
	}
	if tx.Empty() {
		return nil
	}
	return tx
}

// PropagateRowSize builds the transaction committing a row resize.
// Per-cell height hints record the new value at each spanning cell's
// local row index, and the row node's own single-element height hint is
// set to the new value as well; the row-level hint is what rendering
// reads, the per-cell hints only feed later measurements. Returns nil
// when nothing would change.
func PropagateRowSize(table *Node, m *GridMap, handle, height int) *Transaction {
	row := TargetTrack(table, m, handle, AxisVertical)
	if row < 0 {
		return nil
	}
	tx := NewTransaction()
	for col := 0; col < m.Width; col++ {
		if m.sameCellLeft(row, col) {
			continue
		}
		off := m.CellAt(row, col)
		if off < 0 {
			continue
		}
		cell := table.CellAt(off)
		if cell == nil {
			continue
		}
		local := row - m.RowCount(off)
		cur := cell.RowHeights()
		if cur != nil && cur[local] == height {
			continue
		}
		next := make([]int, cell.Rowspan())
		copy(next, cur)
		next[local] = height
		tx.SetAttr(off, "rowheight", next)
	}
	rowOff := table.RowStart(row)
	if rowNode := table.RowAt(rowOff); rowNode != nil {
		cur := rowNode.RowHeights()
		if cur == nil || cur[0] != height {
			tx.SetAttr(rowOff, "rowheight", []int{height})
		}
	}
	if tx.Empty() {
		return nil
	}
	return tx
}
