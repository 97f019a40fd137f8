package tablekit

// test fixtures shared across the suite

// cell builds an empty spanning cell.
func cell(colspan, rowspan int) *Node {
	return NewCell(colspan, rowspan)
}

// simpleTable builds a rows x cols table of 1x1 cells.
func simpleTable(rows, cols int) *Node {
	rr := make([]*Node, rows)
	for r := range rr {
		cc := make([]*Node, cols)
		for c := range cc {
			cc[c] = cell(1, 1)
		}
		rr[r] = NewRow(cc...)
	}
	return NewTable(rr...)
}

// spanTable builds the fixture used throughout:
//
//	+----+----+----+
//	| a  | b  | c  |
//	+----+----+----+
//	| d  | e       |
//	+    +----+----+
//	|    | f  | g  |
//	+----+----+----+
//
// d has rowspan 2, e has colspan 2.
func spanTable() *Node {
	return NewTable(
		NewRow(cell(1, 1), cell(1, 1), cell(1, 1)), // a b c
		NewRow(cell(1, 2), cell(2, 1)),             // d e
		NewRow(cell(1, 1), cell(1, 1)),             // f g
	)
}

// span table offsets: empty cells have size 2.
// row0 (size 8) starts at 0: a=1 b=3 c=5
// row1 (size 6) starts at 8: d=9 e=11
// row2 (size 6) starts at 14: f=15 g=17
const (
	offA = 1
	offB = 3
	offC = 5
	offD = 9
	offE = 11
	offF = 15
	offG = 17
)

// fixedMeasurer returns canned box sizes per offset.
type fixedMeasurer map[int][2]int

func (m fixedMeasurer) MeasureCell(offset int) (int, int, bool) {
	box, ok := m[offset]
	return box[0], box[1], ok
}

// boxLocator resolves points against fixed cell boxes.
type boxLocator []CellHit

func (l boxLocator) LocateCell(x, y int) (CellHit, bool) {
	for _, h := range l {
		if x >= h.X && x <= h.X+h.W-1 && y >= h.Y && y <= h.Y+h.H-1 {
			return h, true
		}
	}
	return CellHit{}, false
}
