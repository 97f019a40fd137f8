package tablekit

// NodeType identifies the role of a document node.
type NodeType int

const (
	// NodeBlock is opaque cell content (a paragraph, an image, ...).
	NodeBlock NodeType = iota
	// NodeCell is a table cell, possibly spanning several columns/rows.
	NodeCell
	// NodeRow is a table row holding a sequence of cells.
	NodeRow
	// NodeTable is a table holding a sequence of rows.
	NodeTable
)

// Node is an immutable document node. Edits never mutate a node in place;
// they build a new tree sharing the untouched subtrees.
type Node struct {
	Type     NodeType
	Attrs    Attrs
	Children []*Node
}

// NewTable builds a table node from row nodes.
func NewTable(rows ...*Node) *Node {
	return &Node{Type: NodeTable, Children: rows}
}

// NewRow builds a row node from cell nodes.
func NewRow(cells ...*Node) *Node {
	return &Node{Type: NodeRow, Children: cells}
}

// NewCell builds a cell node with the given spans. Spans below 1 are
// normalized to 1.
func NewCell(colspan, rowspan int) *Node {
	if colspan < 1 {
		colspan = 1
	}
	if rowspan < 1 {
		rowspan = 1
	}
	return &Node{Type: NodeCell, Attrs: Attrs{"colspan": colspan, "rowspan": rowspan}}
}

// NewBlock builds an opaque content leaf. The text is only used for display.
func NewBlock(text string) *Node {
	return &Node{Type: NodeBlock, Attrs: Attrs{"text": text}}
}

// WithAttr returns a copy of the node with one attribute replaced.
// The children are shared with the original.
func (n *Node) WithAttr(name string, value any) *Node {
	attrs := make(Attrs, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	attrs[name] = value
	return &Node{Type: n.Type, Attrs: attrs, Children: n.Children}
}

// WithChildren returns a copy of the node with its children replaced.
func (n *Node) WithChildren(children []*Node) *Node {
	return &Node{Type: n.Type, Attrs: n.Attrs, Children: children}
}

// Size returns the node's size in position tokens. A content leaf
// occupies one token; structured nodes occupy an opening and a closing
// token around their content.
func (n *Node) Size() int {
	if n.Type == NodeBlock {
		return 1
	}
	s := 2
	for _, c := range n.Children {
		s += c.Size()
	}
	return s
}

// ContentSize returns the token size of the node's content alone.
func (n *Node) ContentSize() int {
	s := 0
	for _, c := range n.Children {
		s += c.Size()
	}
	return s
}

// ----------------------------------------------------------------------------
// offset resolution
//
// All offsets are relative to the table's content start: the first row
// begins at offset 0, a cell at (sum of previous row sizes) + 1 + (sum of
// previous cell sizes in its row).
// ----------------------------------------------------------------------------

// RowStart returns the offset of row index i within the table's content,
// or -1 when the index is out of range.
func (t *Node) RowStart(i int) int {
	if t.Type != NodeTable || i < 0 || i >= len(t.Children) {
		return -1
	}
	off := 0
	for r := 0; r < i; r++ {
		off += t.Children[r].Size()
	}
	return off
}

// RowIndexAt returns the index of the row whose token range contains the
// offset, or -1 when the offset is outside the table's content.
func (t *Node) RowIndexAt(offset int) int {
	if t.Type != NodeTable || offset < 0 {
		return -1
	}
	off := 0
	for i, row := range t.Children {
		next := off + row.Size()
		if offset < next {
			return i
		}
		off = next
	}
	return -1
}

// CellAt resolves a table-relative offset to the cell node starting
// there. It returns nil when the offset is not the start of a cell.
func (t *Node) CellAt(offset int) *Node {
	if t.Type != NodeTable || offset < 0 {
		return nil
	}
	rowOff := 0
	for _, row := range t.Children {
		next := rowOff + row.Size()
		if offset < next {
			cellOff := rowOff + 1
			for _, cell := range row.Children {
				if cellOff == offset {
					if cell.Type == NodeCell {
						return cell
					}
					return nil
				}
				if offset < cellOff {
					return nil
				}
				cellOff += cell.Size()
			}
			return nil
		}
		rowOff = next
	}
	return nil
}

// RowAt resolves a table-relative offset to the row node starting there.
// It returns nil when the offset is not the start of a row.
func (t *Node) RowAt(offset int) *Node {
	if t.Type != NodeTable || offset < 0 {
		return nil
	}
	off := 0
	for _, row := range t.Children {
		if off == offset {
			return row
		}
		if offset < off {
			return nil
		}
		off += row.Size()
	}
	return nil
}
