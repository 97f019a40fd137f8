package tablekit

// Attrs holds a node's attribute values. Values written by this package
// are ints and []int; values arriving from a host document may be
// anything, so every accessor parses defensively and substitutes a safe
// default instead of failing.
type Attrs map[string]any

// Int returns an integer attribute, or def when absent or not a number.
func (a Attrs) Int(name string, def int) int {
	v, ok := a[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// Ints returns an integer-slice attribute, or nil when absent or
// malformed. A copy is never made; callers must not mutate the result.
func (a Attrs) Ints(name string) []int {
	v, ok := a[name]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []int:
		return s
	case []any:
		out := make([]int, len(s))
		for i, e := range s {
			switch n := e.(type) {
			case int:
				out[i] = n
			case int64:
				out[i] = int(n)
			case float64:
				out[i] = int(n)
			default:
				return nil
			}
		}
		return out
	}
	return nil
}

// Text returns a string attribute, or "" when absent.
func (a Attrs) Text(name string) string {
	if s, ok := a[name].(string); ok {
		return s
	}
	return ""
}

// Colspan returns the cell's column span (>= 1).
func (n *Node) Colspan() int {
	s := n.Attrs.Int("colspan", 1)
	if s < 1 {
		return 1
	}
	return s
}

// Rowspan returns the cell's row span (>= 1).
func (n *Node) Rowspan() int {
	s := n.Attrs.Int("rowspan", 1)
	if s < 1 {
		return 1
	}
	return s
}

// ColWidths returns the cell's per-column width hints. A stored array
// whose length disagrees with the current colspan is treated as absent.
// A zero entry means "no hint for that column".
func (n *Node) ColWidths() []int {
	w := n.Attrs.Ints("colwidth")
	if w == nil || len(w) != n.Colspan() {
		return nil
	}
	return w
}

// RowHeights returns the node's row height hints. For a cell the array is
// sized by rowspan; for a row node it is a single element. Mismatched
// lengths are treated as absent.
func (n *Node) RowHeights() []int {
	h := n.Attrs.Ints("rowheight")
	if h == nil {
		return nil
	}
	want := 1
	if n.Type == NodeCell {
		want = n.Rowspan()
	}
	if len(h) != want {
		return nil
	}
	return h
}
