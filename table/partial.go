package table

// planPartialRow runs the two-pass per-cell line split used whenever a row
// must be emitted across more than one fragment. Pass 1 greedily fits as
// many lines as possible into each cell independently; pass 2 re-aligns
// cells by line count (not height) so that cells with differently sized
// lines stay structurally synchronized across the resulting fragments.
//
// fromLineByCell is nil on a row's first slice and the prior slice's
// ToLineByCell on a continuation.
func planPartialRow(rowIndex int, row *TableRow, rowMeasure *RowMeasure, availableHeight float64, fromLineByCell []int) *PartialRowInfo {
	n := len(row.Cells)

	startLine := make([]int, n)
	for i := range startLine {
		if fromLineByCell != nil && i < len(fromLineByCell) {
			startLine[i] = fromLineByCell[i]
		}
	}

	lines := make([][]LineMeasure, n)
	totalLines := make([]int, n)
	padTop := make([]float64, n)
	padBot := make([]float64, n)
	for i := 0; i < n; i++ {
		cellMeasure := CellMeasure{}
		if i < len(rowMeasure.Cells) {
			cellMeasure = rowMeasure.Cells[i]
		}
		lines[i] = CellLines(cellMeasure)
		totalLines[i] = len(lines[i])
		p := ResolvePadding(row.Cells[i].Attrs.Padding)
		padTop[i] = p.Top
		padBot[i] = p.Bottom
	}

	// Pass 1: greedy fit per cell, independent of every other cell.
	cutLine := make([]int, n)
	heightByCell := make([]float64, n)
	for i := 0; i < n; i++ {
		availableForLines := availableHeight - (padTop[i] + padBot[i])
		if availableForLines < 0 {
			availableForLines = 0
		}
		cut := startLine[i]
		var accumulated float64
		for cut < totalLines[i] {
			h := lines[i][cut].LineHeight
			if accumulated+h > availableForLines {
				break
			}
			accumulated += h
			cut++
		}
		cutLine[i] = cut
		heightByCell[i] = accumulated
	}

	// Pass 2: re-align by line-count advancement unless every cell
	// exhausted its remaining lines in pass 1, in which case pass 1's
	// natural cutoffs are kept rather than shrunk to the minimum
	// advancement: the last slice of a row has nothing left to stay
	// aligned with.
	allComplete := true
	for i := 0; i < n; i++ {
		if cutLine[i] < totalLines[i] {
			allComplete = false
			break
		}
	}

	toLine := cutLine
	finalHeight := heightByCell
	if !allComplete {
		minAdv := -1
		for i := 0; i < n; i++ {
			adv := cutLine[i] - startLine[i]
			if adv > 0 && (minAdv == -1 || adv < minAdv) {
				minAdv = adv
			}
		}
		if minAdv == -1 {
			minAdv = 0
		}

		toLine = make([]int, n)
		finalHeight = make([]float64, n)
		for i := 0; i < n; i++ {
			newCut := startLine[i] + minAdv
			if newCut > totalLines[i] {
				newCut = totalLines[i]
			}
			toLine[i] = newCut

			var h float64
			for l := startLine[i]; l < newCut; l++ {
				h += lines[i][l].LineHeight
			}
			finalHeight[i] = h
		}
	}

	var partialHeight float64
	for i := 0; i < n; i++ {
		h := finalHeight[i] + padTop[i] + padBot[i]
		if h > partialHeight {
			partialHeight = h
		}
	}

	isFirstPart := true
	madeProgress := false
	allExhausted := true
	for i := 0; i < n; i++ {
		if startLine[i] != 0 {
			isFirstPart = false
		}
		if toLine[i] > startLine[i] {
			madeProgress = true
		}
		if toLine[i] < totalLines[i] {
			allExhausted = false
		}
	}
	isLastPart := allExhausted || !madeProgress

	if partialHeight == 0 && isFirstPart {
		// An empty first slice still occupies padding space rather than
		// collapsing to a zero-height fragment.
		for i := 0; i < n; i++ {
			h := padTop[i] + padBot[i]
			if h > partialHeight {
				partialHeight = h
			}
		}
	}

	return &PartialRowInfo{
		RowIndex:       rowIndex,
		FromLineByCell: append([]int(nil), startLine...),
		ToLineByCell:   append([]int(nil), toLine...),
		IsFirstPart:    isFirstPart,
		IsLastPart:     isLastPart,
		PartialHeight:  partialHeight,
	}
}

// partialMadeProgress reports whether a partial row plan advanced at least
// one cell past its starting line - the split-point finder's signal that a
// partial split is worth taking rather than deferring the whole row.
func partialMadeProgress(p *PartialRowInfo) bool {
	for i := range p.ToLineByCell {
		if p.ToLineByCell[i] > p.FromLineByCell[i] {
			return true
		}
	}
	return false
}
