package tablekit

import "testing"

func TestBuildGridMapSimple(t *testing.T) {
	table := simpleTable(2, 2)
	m := BuildGridMap(table)

	if m.Width != 2 || m.Height != 2 {
		t.Fatalf("grid = %dx%d, want 2x2", m.Width, m.Height)
	}
	// row size 6: cells at 1,3 then 7,9
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	offs := []int{1, 3, 7, 9}
	for i, rc := range want {
		if got := m.CellAt(rc[0], rc[1]); got != offs[i] {
			t.Errorf("CellAt(%d,%d) = %d, want %d", rc[0], rc[1], got, offs[i])
		}
	}
}

func TestBuildGridMapSpans(t *testing.T) {
	m := BuildGridMap(spanTable())

	if m.Width != 3 || m.Height != 3 {
		t.Fatalf("grid = %dx%d, want 3x3", m.Width, m.Height)
	}
	want := []int{
		offA, offB, offC,
		offD, offE, offE,
		offD, offF, offG,
	}
	for i, w := range want {
		if got := m.CellAt(i/3, i%3); got != w {
			t.Errorf("slot (%d,%d) = %d, want %d", i/3, i%3, got, w)
		}
	}
}

func TestGridMapSpanRectangles(t *testing.T) {
	table := spanTable()
	m := BuildGridMap(table)

	// every cell's claimed slots must form a contiguous rectangle whose
	// top-left corner is (RowCount, ColCount) and whose extent matches
	// the cell's spans
	for _, off := range []int{offA, offB, offC, offD, offE, offF, offG} {
		cell := table.CellAt(off)
		r0, c0 := m.RowCount(off), m.ColCount(off)
		if r0 < 0 || c0 < 0 {
			t.Fatalf("offset %d missing from map", off)
		}
		for r := 0; r < m.Height; r++ {
			for c := 0; c < m.Width; c++ {
				inRect := r >= r0 && r < r0+cell.Rowspan() && c >= c0 && c < c0+cell.Colspan()
				if (m.CellAt(r, c) == off) != inRect {
					t.Errorf("offset %d: slot (%d,%d) rectangle violation", off, r, c)
				}
			}
		}
	}
}

func TestGridMapCounts(t *testing.T) {
	m := BuildGridMap(spanTable())

	tests := []struct {
		off      int
		row, col int
	}{
		{offA, 0, 0},
		{offC, 0, 2},
		{offD, 1, 0}, // rowspan cell: top row
		{offE, 1, 1}, // colspan cell: left column
		{offG, 2, 2},
	}
	for _, tt := range tests {
		if got := m.RowCount(tt.off); got != tt.row {
			t.Errorf("RowCount(%d) = %d, want %d", tt.off, got, tt.row)
		}
		if got := m.ColCount(tt.off); got != tt.col {
			t.Errorf("ColCount(%d) = %d, want %d", tt.off, got, tt.col)
		}
	}

	if m.RowCount(999) != -1 || m.ColCount(999) != -1 {
		t.Error("unknown offset should report -1")
	}
	if m.Contains(999) {
		t.Error("Contains(999) = true, want false")
	}
	if !m.Contains(offE) {
		t.Error("Contains(offE) = false, want true")
	}
}

func TestTargetTrack(t *testing.T) {
	table := spanTable()
	m := BuildGridMap(table)

	tests := []struct {
		off  int
		axis Axis
		want int
	}{
		{offA, AxisHorizontal, 0},
		{offE, AxisHorizontal, 2}, // colspan 2 starting at col 1
		{offE, AxisVertical, 1},
		{offD, AxisVertical, 2}, // rowspan 2 starting at row 1
		{offD, AxisHorizontal, 0},
	}
	for _, tt := range tests {
		if got := TargetTrack(table, m, tt.off, tt.axis); got != tt.want {
			t.Errorf("TargetTrack(%d, %v) = %d, want %d", tt.off, tt.axis, got, tt.want)
		}
	}

	if got := TargetTrack(table, m, 999, AxisHorizontal); got != -1 {
		t.Errorf("TargetTrack(bad offset) = %d, want -1", got)
	}
}

func TestNodeOffsets(t *testing.T) {
	table := spanTable()

	if got := table.RowStart(1); got != 8 {
		t.Errorf("RowStart(1) = %d, want 8", got)
	}
	if got := table.RowIndexAt(offE); got != 1 {
		t.Errorf("RowIndexAt(offE) = %d, want 1", got)
	}
	if table.CellAt(offD) == nil {
		t.Error("CellAt(offD) = nil, want cell")
	}
	if table.CellAt(offD + 1) != nil {
		t.Error("CellAt(offD+1) should not resolve to a cell start")
	}
	if table.RowAt(8) == nil {
		t.Error("RowAt(8) = nil, want row")
	}
	if table.RowAt(9) != nil {
		t.Error("RowAt(9) should not resolve to a row start")
	}
}
