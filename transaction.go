package tablekit

// SetAttrStep replaces one attribute on the node (row or cell) starting
// at a table-relative offset.
type SetAttrStep struct {
	Offset int
	Name   string
	Value  any
}

// Transaction is an ordered list of attribute updates plus metadata,
// applied to a table as a single edit. Attribute updates never move
// positions, so a transaction's mapping is the identity.
type Transaction struct {
	steps []SetAttrStep
	meta  map[string]any
}

// NewTransaction creates an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// SetAttr queues an attribute replacement.
func (tx *Transaction) SetAttr(offset int, name string, value any) *Transaction {
	tx.steps = append(tx.steps, SetAttrStep{Offset: offset, Name: name, Value: value})
	return tx
}

// SetMeta attaches metadata to the transaction. Session state updates
// travel this way so they stay versioned with the document change.
func (tx *Transaction) SetMeta(key string, value any) *Transaction {
	if tx.meta == nil {
		tx.meta = make(map[string]any)
	}
	tx.meta[key] = value
	return tx
}

// Meta returns previously attached metadata.
func (tx *Transaction) Meta(key string) (any, bool) {
	v, ok := tx.meta[key]
	return v, ok
}

// Steps returns the queued attribute updates.
func (tx *Transaction) Steps() []SetAttrStep {
	return tx.steps
}

// Empty reports whether the transaction carries no steps.
func (tx *Transaction) Empty() bool {
	return len(tx.steps) == 0
}

// Apply produces the table resulting from the transaction. The input is
// left untouched; unaffected rows and cells are shared between the two
// trees. Steps whose offset resolves to nothing are dropped silently.
func (tx *Transaction) Apply(table *Node) *Node {
	out := table
	for _, st := range tx.steps {
		out = applyAttrStep(out, st)
	}
	return out
}

func applyAttrStep(table *Node, st SetAttrStep) *Node {
	rowOff := 0
	for ri, row := range table.Children {
		next := rowOff + row.Size()
		if st.Offset >= next {
			rowOff = next
			continue
		}
		if st.Offset == rowOff {
			return replaceChild(table, ri, row.WithAttr(st.Name, st.Value))
		}
		cellOff := rowOff + 1
		for ci, cell := range row.Children {
			if cellOff == st.Offset {
				return replaceChild(table, ri, replaceChild(row, ci, cell.WithAttr(st.Name, st.Value)))
			}
			if st.Offset < cellOff {
				return table
			}
			cellOff += cell.Size()
		}
		return table
	}
	return table
}

func replaceChild(n *Node, i int, child *Node) *Node {
	children := make([]*Node, len(n.Children))
	copy(children, n.Children)
	children[i] = child
	return n.WithChildren(children)
}

// ----------------------------------------------------------------------------
// position mapping
// ----------------------------------------------------------------------------

// MapRange describes one structural replacement: OldSize tokens starting
// at Start were replaced by NewSize tokens.
type MapRange struct {
	Start   int
	OldSize int
	NewSize int
}

// Mapping re-targets table-relative offsets through a structural edit.
// A nil *Mapping is the identity.
type Mapping struct {
	ranges []MapRange
}

// NewMapping builds a mapping from replacement ranges, applied in order.
func NewMapping(ranges ...MapRange) *Mapping {
	return &Mapping{ranges: ranges}
}

// Map returns the offset's position after the edit. deleted is true when
// the offset fell inside a replaced range, its first token included, in
// which case the returned offset is the range start. Pure insertions
// (OldSize 0) never delete; an offset at an insertion point stays put.
func (m *Mapping) Map(offset int) (mapped int, deleted bool) {
	if m == nil {
		return offset, false
	}
	for _, r := range m.ranges {
		if r.OldSize > 0 && offset >= r.Start && offset < r.Start+r.OldSize {
			return r.Start, true
		}
		if offset <= r.Start {
			continue
		}
		offset += r.NewSize - r.OldSize
	}
	return offset, false
}
