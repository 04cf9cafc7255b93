package table

import "github.com/boergens/tablecore/layout"

// CountHeaderRows returns the length of the contiguous prefix of rows whose
// RepeatHeader flag is true. The first false row terminates the count even
// if a later row happens to have RepeatHeader set again - headers must be a
// prefix, not a scattered set.
func CountHeaderRows(block *TableBlock) int {
	count := 0
	for _, row := range block.Rows {
		if !row.Attrs.RepeatHeader {
			break
		}
		count++
	}
	return count
}

// SumRowHeights sums the measured heights of rows [from, to), tolerating a
// to index that exceeds the number of measured rows: indices past the last
// measured row contribute nothing.
func SumRowHeights(measure *TableMeasure, from, to int) float64 {
	var sum float64
	for i := from; i < to && i < len(measure.Rows); i++ {
		if i < 0 {
			continue
		}
		sum += measure.Rows[i].Height
	}
	return sum
}

// HeaderHeight sums the measured heights of the first headerCount rows.
func HeaderHeight(measure *TableMeasure, headerCount int) float64 {
	return SumRowHeights(measure, 0, headerCount)
}

// CalculateColumnMinWidth clamps a measured column width into the
// documented minimum-width band, substituting the default minimum when the
// measured width is zero (falsy in the source format).
func CalculateColumnMinWidth(i int, measure *TableMeasure) float64 {
	width := float64(DefaultMinColumnWidth)
	if i < len(measure.ColumnWidths) && measure.ColumnWidths[i] != 0 {
		width = measure.ColumnWidths[i]
	}
	if width < DefaultMinColumnWidth {
		return DefaultMinColumnWidth
	}
	if width > MaxMinColumnWidth {
		return MaxMinColumnWidth
	}
	return width
}

// GenerateColumnBoundaries walks the measured column widths left to right,
// producing the per-column boundary metadata fragments carry for
// downstream interactive features. An empty ColumnWidths input produces no
// boundaries rather than erroring.
func GenerateColumnBoundaries(measure *TableMeasure) []ColumnBoundary {
	boundaries := make([]ColumnBoundary, 0, len(measure.ColumnWidths))
	var x float64
	for i, w := range measure.ColumnWidths {
		boundaries = append(boundaries, ColumnBoundary{
			Index:     i,
			X:         x,
			Width:     w,
			MinWidth:  CalculateColumnMinWidth(i, measure),
			Resizable: true,
		})
		x += w
	}
	return boundaries
}

// ApplyTableIndent shifts x right by indent and narrows width by the same
// amount, clamping width at 0 so an indent larger than the column can never
// produce a negative width.
func ApplyTableIndent(x, width, indent layout.Abs) (layout.Abs, layout.Abs) {
	return x + indent, (width - indent).Max(0)
}
