package tablekit

import (
	"reflect"
	"testing"
)

func TestPropagateColumnSimple(t *testing.T) {
	table := simpleTable(1, 2) // cells at offsets 1 and 3
	m := BuildGridMap(table)

	tx := PropagateColumnSize(table, m, 1, 130)
	if tx == nil {
		t.Fatal("expected a transaction")
	}
	out := tx.Apply(table)

	if got := out.CellAt(1).ColWidths(); !reflect.DeepEqual(got, []int{130}) {
		t.Errorf("left colwidth = %v, want [130]", got)
	}
	if out.CellAt(3).ColWidths() != nil {
		t.Error("right cell must stay untouched")
	}
}

func TestPropagateColumnThroughSpan(t *testing.T) {
	// resizing column 2 must write e's hint at local index 1
	// (col 2 - e's start col 1), not index 0
	table := spanTable()
	m := BuildGridMap(table)

	tx := PropagateColumnSize(table, m, offC, 60)
	if tx == nil {
		t.Fatal("expected a transaction")
	}
	out := tx.Apply(table)

	if got := out.CellAt(offE).ColWidths(); !reflect.DeepEqual(got, []int{0, 60}) {
		t.Errorf("e colwidth = %v, want [0 60]", got)
	}
	if got := out.CellAt(offC).ColWidths(); !reflect.DeepEqual(got, []int{60}) {
		t.Errorf("c colwidth = %v, want [60]", got)
	}
	if got := out.CellAt(offG).ColWidths(); !reflect.DeepEqual(got, []int{60}) {
		t.Errorf("g colwidth = %v, want [60]", got)
	}
	// column 2 has three distinct cells: c, e, g
	if got := len(tx.Steps()); got != 3 {
		t.Errorf("steps = %d, want 3", got)
	}
}

func TestPropagateColumnSkipsRowspanAlias(t *testing.T) {
	// column 0 rows 1 and 2 are the same cell d: exactly one write
	table := spanTable()
	m := BuildGridMap(table)

	tx := PropagateColumnSize(table, m, offA, 42)
	if tx == nil {
		t.Fatal("expected a transaction")
	}
	writes := 0
	for _, st := range tx.Steps() {
		if st.Offset == offD {
			writes++
		}
	}
	if writes != 1 {
		t.Errorf("d written %d times, want exactly once", writes)
	}
}

func TestPropagateColumnIdempotent(t *testing.T) {
	table := simpleTable(1, 2)
	m := BuildGridMap(table)

	first := PropagateColumnSize(table, m, 1, 130)
	table = first.Apply(table)
	m = BuildGridMap(table)

	if second := PropagateColumnSize(table, m, 1, 130); second != nil {
		t.Errorf("second identical commit should be dropped, got %d steps", len(second.Steps()))
	}
}

func TestPropagateColumnPartialChange(t *testing.T) {
	// one of the two cells in the column already stores the value: only
	// the other gets a step
	table := simpleTable(2, 1)
	tx := NewTransaction().SetAttr(1, "colwidth", []int{90})
	table = tx.Apply(table)
	m := BuildGridMap(table)

	commit := PropagateColumnSize(table, m, 1, 90)
	if commit == nil {
		t.Fatal("expected a transaction for the unhinted cell")
	}
	if len(commit.Steps()) != 1 || commit.Steps()[0].Offset == 1 {
		t.Errorf("steps = %+v, want one step for the second row's cell", commit.Steps())
	}
}

func TestPropagateRowWritesRowAndCellHints(t *testing.T) {
	// vertical resize on d (rowspan 2): target row is 2, the last row d
	// spans; the commit writes d's hint at local index 1, every other
	// cell in row 2 at local index 0, and row 2's own height
	table := spanTable()
	m := BuildGridMap(table)

	tx := PropagateRowSize(table, m, offD, 3)
	if tx == nil {
		t.Fatal("expected a transaction")
	}
	out := tx.Apply(table)

	if got := out.CellAt(offD).RowHeights(); !reflect.DeepEqual(got, []int{0, 3}) {
		t.Errorf("d rowheight = %v, want [0 3]", got)
	}
	if got := out.CellAt(offF).RowHeights(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("f rowheight = %v, want [3]", got)
	}
	if got := out.CellAt(offG).RowHeights(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("g rowheight = %v, want [3]", got)
	}
	rowOff := out.RowStart(2)
	if got := out.RowAt(rowOff).RowHeights(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("row rowheight = %v, want [3]", got)
	}
	// row 1 untouched
	if out.RowAt(out.RowStart(1)).RowHeights() != nil {
		t.Error("row 1 must stay untouched")
	}
}

func TestPropagateRowSkipsColspanAlias(t *testing.T) {
	// row 1: e spans columns 1 and 2, one write only
	table := spanTable()
	m := BuildGridMap(table)

	tx := PropagateRowSize(table, m, offE, 5)
	if tx == nil {
		t.Fatal("expected a transaction")
	}
	writes := 0
	for _, st := range tx.Steps() {
		if st.Offset == offE {
			writes++
		}
	}
	if writes != 1 {
		t.Errorf("e written %d times, want exactly once", writes)
	}
}

func TestPropagateRowIdempotent(t *testing.T) {
	table := spanTable()
	m := BuildGridMap(table)

	first := PropagateRowSize(table, m, offE, 5)
	table = first.Apply(table)
	m = BuildGridMap(table)

	if second := PropagateRowSize(table, m, offE, 5); second != nil {
		t.Errorf("second identical commit should be dropped, got %d steps", len(second.Steps()))
	}
}

func TestPropagateUnknownHandle(t *testing.T) {
	table := spanTable()
	m := BuildGridMap(table)

	if tx := PropagateColumnSize(table, m, 999, 10); tx != nil {
		t.Error("unknown handle should produce no transaction")
	}
	if tx := PropagateRowSize(table, m, 999, 10); tx != nil {
		t.Error("unknown handle should produce no transaction")
	}
}
