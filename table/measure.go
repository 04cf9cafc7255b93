package table

// TableMeasure is the immutable output of the measurement pass: per-row,
// per-cell, per-block line heights plus the resolved column geometry. This
// package only reads it - producing it is the measurement pass's job.
type TableMeasure struct {
	Rows         []RowMeasure
	ColumnWidths []float64
	TotalWidth   float64
	TotalHeight  float64
}

// RowMeasure is the measured height of one row plus its cells' measurements.
type RowMeasure struct {
	Height float64
	Cells  []CellMeasure
}

// CellMeasure is the measured content of one cell: one BlockMeasure per
// entry in the corresponding TableCell.Blocks.
type CellMeasure struct {
	Blocks []BlockMeasure
}

// BlockMeasure is the measured height of one content block. Only paragraph
// blocks populate Lines; other block kinds leave it nil (zero lines).
type BlockMeasure struct {
	Lines       []LineMeasure
	TotalHeight float64
}

// LineMeasure is the measured height of a single line of paragraph content.
type LineMeasure struct {
	LineHeight float64
}

// CellLines flattens every paragraph block's lines in a cell, in block
// order, into one per-cell line sequence. Non-paragraph blocks (Other, or
// any block whose measurement carries no Lines) contribute nothing. This
// is the "global line index" space that PartialRowInfo.FromLineByCell and
// ToLineByCell index into.
func CellLines(cell CellMeasure) []LineMeasure {
	var lines []LineMeasure
	for _, block := range cell.Blocks {
		lines = append(lines, block.Lines...)
	}
	return lines
}

// TotalLines returns the number of lines in a cell's flattened line
// sequence - the upper bound ToLineByCell entries must respect.
func TotalLines(cell CellMeasure) int {
	return len(CellLines(cell))
}

// rowAt returns the measured row at index i, or a zero-value RowMeasure if
// the index is out of range. Degenerate/empty measurement input (e.g. a
// table whose rows don't match measure.Rows 1:1) should never reach this
// package in practice, but returning a zero value rather than panicking
// keeps callers like findSplitPoint and the driver simple to reason about.
func rowAt(measure *TableMeasure, i int) RowMeasure {
	if i < 0 || i >= len(measure.Rows) {
		return RowMeasure{}
	}
	return measure.Rows[i]
}
