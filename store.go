package tablekit

import (
	"fmt"
	"os"

	"github.com/automerge/automerge-go"
)

// Table documents are persisted as automerge docs so edits merge across
// sessions: a root "type" marker plus a "rows" list of
// {rowheight, cells: [{colspan, rowspan, colwidth, rowheight, text}]}.
// Reading is defensive throughout; malformed entries degrade to
// defaults rather than failing the load.

// SaveTable writes a table node into an automerge doc and commits.
func SaveTable(doc *automerge.Doc, table *Node) error {
	if table == nil || table.Type != NodeTable {
		return fmt.Errorf("save table: not a table node")
	}
	rows := make([]any, 0, len(table.Children))
	for _, row := range table.Children {
		rowVal := map[string]any{}
		if h := row.RowHeights(); h != nil {
			rowVal["rowheight"] = h
		}
		cells := make([]any, 0, len(row.Children))
		for _, cell := range row.Children {
			cellVal := map[string]any{
				"colspan": cell.Colspan(),
				"rowspan": cell.Rowspan(),
			}
			if w := cell.ColWidths(); w != nil {
				cellVal["colwidth"] = w
			}
			if h := cell.RowHeights(); h != nil {
				cellVal["rowheight"] = h
			}
			if t := cellText(cell); t != "" {
				cellVal["text"] = t
			}
			cells = append(cells, cellVal)
		}
		rowVal["cells"] = cells
		rows = append(rows, rowVal)
	}
	if err := doc.Path("type").Set("table"); err != nil {
		return fmt.Errorf("save table: %w", err)
	}
	if err := doc.Path("rows").Set(rows); err != nil {
		return fmt.Errorf("save table: %w", err)
	}
	if _, err := doc.Commit("save table"); err != nil {
		return fmt.Errorf("save table: %w", err)
	}
	return nil
}

// LoadTable rebuilds a table node from an automerge doc.
func LoadTable(doc *automerge.Doc) (*Node, error) {
	rowsVal, err := doc.Path("rows").Get()
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	if rowsVal.Kind() != automerge.KindList {
		return nil, fmt.Errorf("load table: rows is not a list")
	}
	rowsList := rowsVal.List()
	rows := make([]*Node, 0, rowsList.Len())
	for i := 0; i < rowsList.Len(); i++ {
		rv, err := rowsList.Get(i)
		if err != nil || rv.Kind() != automerge.KindMap {
			continue
		}
		rows = append(rows, loadRow(rv.Map()))
	}
	return NewTable(rows...), nil
}

func loadRow(m *automerge.Map) *Node {
	row := NewRow()
	cellsVal, err := m.Get("cells")
	if err == nil && cellsVal.Kind() == automerge.KindList {
		list := cellsVal.List()
		for i := 0; i < list.Len(); i++ {
			cv, err := list.Get(i)
			if err != nil || cv.Kind() != automerge.KindMap {
				continue
			}
			row.Children = append(row.Children, loadCell(cv.Map()))
		}
	}
	if h := amInts(m, "rowheight"); h != nil {
		row = row.WithAttr("rowheight", h)
	}
	return row
}

func loadCell(m *automerge.Map) *Node {
	cell := NewCell(amInt(m, "colspan", 1), amInt(m, "rowspan", 1))
	if w := amInts(m, "colwidth"); w != nil {
		cell = cell.WithAttr("colwidth", w)
	}
	if h := amInts(m, "rowheight"); h != nil {
		cell = cell.WithAttr("rowheight", h)
	}
	if tv, err := m.Get("text"); err == nil && tv.Kind() == automerge.KindStr {
		cell = cell.WithChildren([]*Node{NewBlock(tv.Str())})
	}
	return cell
}

// amInt reads one integer map entry, tolerating any numeric encoding.
func amInt(m *automerge.Map, key string, def int) int {
	v, err := m.Get(key)
	if err != nil {
		return def
	}
	switch n := v.Interface().(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	case int:
		return n
	}
	return def
}

// amInts reads an integer-list map entry, or nil when absent/malformed.
func amInts(m *automerge.Map, key string) []int {
	v, err := m.Get(key)
	if err != nil || v.Kind() != automerge.KindList {
		return nil
	}
	list := v.List()
	out := make([]int, list.Len())
	for i := 0; i < list.Len(); i++ {
		e, err := list.Get(i)
		if err != nil {
			return nil
		}
		switch n := e.Interface().(type) {
		case int64:
			out[i] = int(n)
		case float64:
			out[i] = int(n)
		case int:
			out[i] = n
		default:
			return nil
		}
	}
	return out
}

// EncodeTable serializes a table into automerge's binary format.
func EncodeTable(table *Node) ([]byte, error) {
	doc := automerge.New()
	if err := SaveTable(doc, table); err != nil {
		return nil, err
	}
	return doc.Save(), nil
}

// DecodeTable loads a table from automerge's binary format.
func DecodeTable(data []byte) (*Node, error) {
	doc, err := automerge.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	return LoadTable(doc)
}

// WriteTableFile persists a table to a file.
func WriteTableFile(path string, table *Node) error {
	data, err := EncodeTable(table)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadTableFile loads a table from a file.
func ReadTableFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	return DecodeTable(data)
}
