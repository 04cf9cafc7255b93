package table

import "github.com/boergens/tablecore/layout"

// CreateAnchoredTableFragment builds the single fragment for a table whose
// placement the float manager already decided, bypassing the driver's own
// page/column bookkeeping entirely. The caller supplies the
// resolved top-left corner; this function's only job is to size the
// fragment and apply table indent.
func CreateAnchoredTableFragment(block *TableBlock, measure *TableMeasure, x, y float64) *TableFragment {
	indent := GetTableIndentWidth(block.Attrs)
	width := layout.Abs(measure.TotalWidth)
	fx, fwidth := ApplyTableIndent(layout.Abs(x), width, indent)

	return &TableFragment{
		Kind:    "table",
		BlockID: block.ID,
		FromRow: 0,
		ToRow:   len(block.Rows),
		X:       float64(fx),
		Y:       y,
		Width:   float64(fwidth),
		Height:  measure.TotalHeight,
		Metadata: FragmentMetadata{
			ColumnBoundaries: GenerateColumnBoundaries(measure),
			CoordinateSystem: "fragment",
		},
	}
}
