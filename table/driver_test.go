package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// atomicRow builds a row with one zero-padding cell; paired with
// atomicRowMeasure, the cell carries a single line spanning the row's full
// height, so the row behaves as an indivisible unit of content at the
// available heights these tests choose.
func atomicRow(cantSplit bool) TableRow {
	return TableRow{
		Cells: []TableCell{{
			Blocks: []ContentBlock{ParagraphBlock{}},
			Attrs:  CellAttrs{Padding: &Padding{}},
		}},
		Attrs: TableRowAttrs{CantSplit: cantSplit},
	}
}

func atomicRowMeasure(height float64) RowMeasure {
	return RowMeasure{
		Height: height,
		Cells:  []CellMeasure{{Blocks: []BlockMeasure{{Lines: []LineMeasure{{LineHeight: height}}, TotalHeight: height}}}},
	}
}

// TestZeroRowsNonZeroHeightPlaceholder: a table with zero rows but
// non-zero TotalHeight still emits one placeholder fragment
// {fromRow:0, toRow:0, height: min(total, available)} rather than nothing
// at all.
func TestZeroRowsNonZeroHeightPlaceholder(t *testing.T) {
	block := &TableBlock{Rows: nil}
	measure := &TableMeasure{TotalHeight: 40}
	p := newFakePaginator(500, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	frags := p.AllFragments()
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	f := frags[0]
	if f.FromRow != 0 || f.ToRow != 0 || f.Y != 0 || f.Height != 40 {
		t.Errorf("fragment = %+v, want {FromRow:0 ToRow:0 Y:0 Height:40}", f)
	}
}

// TestEmptyTableZeroFragments: a table with zero rows and zero
// TotalHeight contributes nothing at all.
func TestEmptyTableZeroFragments(t *testing.T) {
	block := &TableBlock{Rows: nil}
	measure := &TableMeasure{TotalHeight: 0}
	p := newFakePaginator(500, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	if frags := p.AllFragments(); len(frags) != 0 {
		t.Fatalf("got %d fragments, want 0", len(frags))
	}
}

func TestMonolithicSingleRow(t *testing.T) {
	block := &TableBlock{Rows: []TableRow{atomicRow(false)}}
	measure := &TableMeasure{Rows: []RowMeasure{atomicRowMeasure(50)}, TotalHeight: 50}
	p := newFakePaginator(500, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	frags := p.AllFragments()
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	f := frags[0]
	if f.FromRow != 0 || f.ToRow != 1 || f.Y != 0 || f.Height != 50 {
		t.Errorf("fragment = %+v, want {FromRow:0 ToRow:1 Y:0 Height:50}", f)
	}
}

func TestRowBoundarySplit(t *testing.T) {
	rows := []TableRow{atomicRow(false), atomicRow(false), atomicRow(false)}
	measures := []RowMeasure{atomicRowMeasure(200), atomicRowMeasure(200), atomicRowMeasure(200)}
	block := &TableBlock{Rows: rows}
	measure := &TableMeasure{Rows: measures, TotalHeight: 600}
	p := newFakePaginator(500, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	frags := p.AllFragments()
	if len(frags) != 2 {
		t.Fatalf("got %d fragments, want 2", len(frags))
	}

	a, b := frags[0], frags[1]
	if a.FromRow != 0 || a.ToRow != 2 || a.Height != 400 {
		t.Errorf("fragment A = %+v, want {FromRow:0 ToRow:2 Height:400}", a)
	}
	if a.ContinuesFromPrev {
		t.Error("fragment A should not continue from a previous fragment")
	}
	if b.FromRow != 2 || b.ToRow != 3 || b.Height != 200 {
		t.Errorf("fragment B = %+v, want {FromRow:2 ToRow:3 Height:200}", b)
	}
	if !b.ContinuesFromPrev {
		t.Error("fragment B should continue from fragment A")
	}
	if b.RepeatHeaderCount != 0 {
		t.Errorf("RepeatHeaderCount = %d, want 0 (no header rows)", b.RepeatHeaderCount)
	}
}

// TestHeaderRepetition: two header rows repeat at the top of continuation
// fragments whenever they fit, and never appear on the first fragment's
// RepeatHeaderCount (there they are body rows).
func TestHeaderRepetition(t *testing.T) {
	header := func() TableRow {
		r := atomicRow(false)
		r.Attrs.RepeatHeader = true
		return r
	}
	body := func() TableRow { return atomicRow(false) }

	block := &TableBlock{Rows: []TableRow{header(), header(), body(), body(), body(), body()}}
	measure := &TableMeasure{
		Rows: []RowMeasure{
			atomicRowMeasure(30), atomicRowMeasure(30),
			atomicRowMeasure(100), atomicRowMeasure(100), atomicRowMeasure(100), atomicRowMeasure(100),
		},
		TotalHeight: 460,
	}
	p := newFakePaginator(250, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	frags := p.AllFragments()
	if len(frags) < 2 {
		t.Fatalf("got %d fragments, want at least 2", len(frags))
	}
	if frags[0].RepeatHeaderCount != 0 {
		t.Errorf("first fragment RepeatHeaderCount = %d, want 0", frags[0].RepeatHeaderCount)
	}
	for _, f := range frags[1:] {
		if f.RepeatHeaderCount != 0 && f.RepeatHeaderCount != 2 {
			t.Errorf("continuation fragment RepeatHeaderCount = %d, want 0 or 2", f.RepeatHeaderCount)
		}
	}
	assertFullRowCoverage(t, block, measure, frags)
}

// TestCantSplitRowDefersWhole: a cantSplit row that doesn't fit moves
// whole to the next page rather than splitting mid-content.
func TestCantSplitRowDefersWhole(t *testing.T) {
	block := &TableBlock{Rows: []TableRow{atomicRow(false), atomicRow(true)}}
	measure := &TableMeasure{Rows: []RowMeasure{atomicRowMeasure(300), atomicRowMeasure(300)}, TotalHeight: 600}
	p := newFakePaginator(500, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	frags := p.AllFragments()
	if len(frags) != 2 {
		t.Fatalf("got %d fragments, want 2", len(frags))
	}
	a, b := frags[0], frags[1]
	if a.FromRow != 0 || a.ToRow != 1 || a.Height != 300 {
		t.Errorf("fragment A = %+v", a)
	}
	if b.FromRow != 1 || b.ToRow != 2 || b.Height != 300 || !b.ContinuesFromPrev {
		t.Errorf("fragment B = %+v", b)
	}
}

// TestOverTallCantSplitForcesPartial: a cantSplit row taller than a full
// page triggers the over-tall escape hatch and splits anyway.
func TestOverTallCantSplitForcesPartial(t *testing.T) {
	row := TableRow{
		Cells: []TableCell{{
			Blocks: []ContentBlock{ParagraphBlock{}},
			Attrs:  CellAttrs{Padding: &Padding{}},
		}},
		Attrs: TableRowAttrs{CantSplit: true},
	}
	lines := make([]LineMeasure, 10)
	for i := range lines {
		lines[i] = LineMeasure{LineHeight: 100}
	}
	block := &TableBlock{Rows: []TableRow{row}}
	measure := &TableMeasure{
		Rows:        []RowMeasure{{Height: 1000, Cells: []CellMeasure{{Blocks: []BlockMeasure{{Lines: lines}}}}}},
		TotalHeight: 1000,
	}
	p := newFakePaginator(500, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	frags := p.AllFragments()
	if len(frags) == 0 {
		t.Fatal("expected at least one fragment")
	}
	sawPartial := false
	var total float64
	for _, f := range frags {
		if f.PartialRow != nil {
			sawPartial = true
		}
		total += f.Height
	}
	if !sawPartial {
		t.Error("expected at least one fragment with a forced partial row")
	}
	if total != 1000 {
		t.Errorf("total emitted height = %v, want 1000", total)
	}
}

// TestIdempotence runs layout twice on independent deep copies of the same
// input and asserts byte-identical fragment sequences.
func TestIdempotence(t *testing.T) {
	build := func() (*TableBlock, *TableMeasure) {
		rows := make([]TableRow, 5)
		measures := make([]RowMeasure, 5)
		var total float64
		for i := range rows {
			h := float64(80 + i*10)
			rows[i] = atomicRow(false)
			measures[i] = atomicRowMeasure(h)
			total += h
		}
		return &TableBlock{Rows: rows}, &TableMeasure{Rows: measures, TotalHeight: total}
	}

	block1, measure1 := build()
	p1 := newFakePaginator(150, 300, 2)
	if err := LayoutTable(block1, measure1, p1); err != nil {
		t.Fatalf("first run: %v", err)
	}

	block2, measure2 := build()
	p2 := newFakePaginator(150, 300, 2)
	if err := LayoutTable(block2, measure2, p2); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if diff := cmp.Diff(p1.AllFragments(), p2.AllFragments()); diff != "" {
		t.Errorf("layout is not idempotent (-first +second):\n%s", diff)
	}
}

// TestRowCoverage exercises the full row-range coverage invariant across
// several differently shaped tables.
func TestRowCoverage(t *testing.T) {
	cases := []struct {
		name       string
		rowHeights []float64
		pageHeight float64
	}{
		{"fits one page", []float64{50, 50}, 500},
		{"exact boundary split", []float64{200, 200, 200}, 400},
		{"many small pages", []float64{90, 90, 90, 90, 90}, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := make([]TableRow, len(tc.rowHeights))
			measures := make([]RowMeasure, len(tc.rowHeights))
			var total float64
			for i, h := range tc.rowHeights {
				rows[i] = atomicRow(false)
				measures[i] = atomicRowMeasure(h)
				total += h
			}
			block := &TableBlock{Rows: rows}
			measure := &TableMeasure{Rows: measures, TotalHeight: total}
			p := newFakePaginator(tc.pageHeight, 300, 1)

			if err := LayoutTable(block, measure, p); err != nil {
				t.Fatalf("LayoutTable: %v", err)
			}
			assertFullRowCoverage(t, block, measure, p.AllFragments())
		})
	}
}

// assertFullRowCoverage checks that fragments' row ranges cover
// [0, len(rows)) exactly once with no gaps or overlaps.
func assertFullRowCoverage(t *testing.T, block *TableBlock, measure *TableMeasure, frags []*TableFragment) {
	t.Helper()
	expected := 0
	for _, f := range frags {
		if f.FromRow != expected {
			t.Fatalf("gap or overlap: fragment %+v expected FromRow=%d", f, expected)
		}
		if f.PartialRow != nil && !f.PartialRow.IsLastPart {
			// row continues into a later fragment; the row index itself
			// doesn't advance past ToRow-1 yet.
			expected = f.ToRow - 1
		} else {
			expected = f.ToRow
		}
	}
	if expected != len(block.Rows) {
		t.Fatalf("coverage ended at row %d, want %d", expected, len(block.Rows))
	}
}

// TestCursorCorrectness checks that the cursor advances by exactly each
// fragment's height, and that the fragment heights add up to the table's
// measured height.
func TestCursorCorrectness(t *testing.T) {
	rows := []TableRow{atomicRow(false), atomicRow(false), atomicRow(false)}
	measures := []RowMeasure{atomicRowMeasure(100), atomicRowMeasure(100), atomicRowMeasure(100)}
	block := &TableBlock{Rows: rows}
	measure := &TableMeasure{Rows: measures, TotalHeight: 300}
	p := newFakePaginator(150, 300, 1)

	if err := LayoutTable(block, measure, p); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}

	// Replaying the current page's fragment heights from its starting
	// cursor must reproduce each fragment's Y and the page's final CursorY
	// exactly, since PageState.emit only ever adds f.Height.
	page := p.EnsurePage()
	cursor := p.marginTop
	for _, f := range page.Fragments {
		if f.Y != cursor {
			t.Errorf("fragment Y = %v, want %v", f.Y, cursor)
		}
		cursor += f.Height
	}
	if page.CursorY != cursor {
		t.Errorf("CursorY = %v, want %v (last fragment's Y + Height)", page.CursorY, cursor)
	}

	var lastCursor float64
	for _, f := range p.AllFragments() {
		lastCursor += f.Height
	}
	if lastCursor != 300 {
		t.Errorf("sum of fragment heights = %v, want 300 (round-trip invariant)", lastCursor)
	}
}
