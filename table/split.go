package table

// SplitResult is what the split-point finder returns: the exclusive end
// row that fits in the available height, plus a partial-row plan if the
// split falls mid-row rather than on a row boundary.
type SplitResult struct {
	EndRow     int
	PartialRow *PartialRowInfo
}

// findSplitPoint walks rows starting at startRow, accumulating height,
// until it finds the last row that fits in availableHeight. fullPageHeight
// is the height of an entirely empty region, used only to detect rows
// taller than any page could ever hold.
//
// pendingPartialRow is accepted but currently unused: it reserves a slot
// for letting the finder see an in-progress partial row when probing past
// it, a path the driver handles itself today via continuePartialRow.
func findSplitPoint(block *TableBlock, measure *TableMeasure, startRow int, availableHeight, fullPageHeight float64, pendingPartialRow *PartialRowInfo) SplitResult {
	rows := block.Rows
	lastFitRow := startRow
	var accumulated float64

	for i := startRow; i < len(rows); i++ {
		rowHeight := rowAt(measure, i).Height

		if accumulated+rowHeight <= availableHeight {
			accumulated += rowHeight
			lastFitRow = i + 1
			continue
		}

		remainingHeight := availableHeight - accumulated

		if rowHeight > fullPageHeight {
			rm := rowAt(measure, i)
			partial := planPartialRow(i, &rows[i], &rm, remainingHeight, nil)
			return SplitResult{EndRow: i + 1, PartialRow: partial}
		}

		if rows[i].Attrs.CantSplit {
			endRow := lastFitRow
			if lastFitRow == startRow {
				endRow = startRow
			}
			return SplitResult{EndRow: endRow, PartialRow: nil}
		}

		if remainingHeight >= MinPartialRowHeight {
			rm := rowAt(measure, i)
			partial := planPartialRow(i, &rows[i], &rm, remainingHeight, nil)
			if partialMadeProgress(partial) {
				return SplitResult{EndRow: i + 1, PartialRow: partial}
			}
		}
		return SplitResult{EndRow: lastFitRow, PartialRow: nil}
	}

	return SplitResult{EndRow: len(rows), PartialRow: nil}
}
