package table

import "github.com/boergens/tablecore/layout"

// LayoutTable is the pagination core's single entry point: given a
// measured table and a paginator, it emits the ordered sequence of
// TableFragment values describing where the table's rows land on pages.
//
// Layout is a pure function of (block, measure) plus whatever state the
// paginator mutates as fragments are appended to it. There is no other
// shared state, and no two calls to LayoutTable interact.
func LayoutTable(block *TableBlock, measure *TableMeasure, ctx Paginator) error {
	if block.Attrs.Anchored {
		// The float manager drives anchored tables itself via
		// CreateAnchoredTableFragment once it has computed a placement.
		return nil
	}

	if len(block.Rows) == 0 && measure.TotalHeight == 0 {
		// A genuinely empty table contributes nothing - contrast with the
		// zero-row-but-nonzero-height placeholder case below, which still
		// goes through the monolithic path and emits one slot fragment.
		return nil
	}

	if block.Attrs.Floating {
		monolithicPath(block, measure, ctx)
		return nil
	}

	if len(block.Rows) == 0 {
		// A zero-row table with non-zero TotalHeight is a placeholder slot:
		// it has no rows for the split path's loop to walk, so it must
		// always go through the monolithic path regardless of how its
		// TotalHeight compares to a page's content height.
		monolithicPath(block, measure, ctx)
		return nil
	}

	page := ctx.EnsurePage()
	onePageHeight := contentHeightOfOnePage(page)
	if measure.TotalHeight <= onePageHeight {
		// Tables that fit on one page are never split, even if the
		// current page happens to have less room than that (the
		// preflight inside the split path is what handles "less room
		// than a full page" for tables that don't fit on one page).
		monolithicPath(block, measure, ctx)
		return nil
	}

	return splitPath(block, measure, ctx)
}

// contentHeightOfOnePage is "one page's worth of content height": it is
// contentBottom minus the page's top margin, deliberately NOT contentBottom
// minus the current cursor position (which may already be below the margin
// because of earlier content on the page). Word uses the full-page figure
// when gating the monolithic path, so we do too.
func contentHeightOfOnePage(page *PageState) float64 {
	marginTop := 0.0
	if page.MarginTop != nil {
		marginTop = *page.MarginTop
	}
	return page.ContentBottom - marginTop
}

// monolithicPath emits the whole table as a single fragment: used for
// floating/anchored-adjacent tables and any table that fits on one page.
func monolithicPath(block *TableBlock, measure *TableMeasure, ctx Paginator) {
	page := ctx.EnsurePage()
	if page.CursorY+measure.TotalHeight > page.ContentBottom && page.HasFragments() {
		page = ctx.AdvanceColumn(page)
	}
	page = ctx.EnsurePage()

	available := page.ContentBottom - page.CursorY
	height := measure.TotalHeight
	if height > available {
		height = available
	}
	if height < 0 {
		height = 0
	}

	emitFragment(ctx, page, block, measure, 0, len(block.Rows), 0, nil, false, false, height)
}

// splitPath is the main loop: it walks the table row by row (and, mid-row,
// line by line) across however many pages/columns it takes, maintaining an
// explicit (currentRow, pendingPartialRow, isTableContinuation) state
// machine.
func splitPath(block *TableBlock, measure *TableMeasure, ctx Paginator) error {
	preflightTableStart(block, measure, ctx)

	currentRow := 0
	var pendingPartialRow *PartialRowInfo
	isTableContinuation := false

	for currentRow < len(block.Rows) || pendingPartialRow != nil {
		page := ctx.EnsurePage()
		availableHeight := page.ContentBottom - page.CursorY

		headerCount := CountHeaderRows(block)
		isFirstFragment := currentRow == 0 && pendingPartialRow == nil
		repeatHeaderCount := 0
		if !isFirstFragment {
			if hh := HeaderHeight(measure, headerCount); hh <= availableHeight {
				repeatHeaderCount = headerCount
			}
		}
		var headerHeight float64
		if repeatHeaderCount > 0 {
			headerHeight = HeaderHeight(measure, repeatHeaderCount)
		}
		availableForBody := availableHeight - headerHeight

		if pendingPartialRow != nil {
			outcome := continuePartialRow(block, measure, ctx, page, pendingPartialRow, availableForBody, repeatHeaderCount, headerHeight, isTableContinuation)
			if outcome.retried {
				continue
			}
			if outcome.next == nil {
				currentRow = pendingPartialRow.RowIndex + 1
				pendingPartialRow = nil
			} else {
				pendingPartialRow = outcome.next
			}
			isTableContinuation = true
			continue
		}

		result := findSplitPoint(block, measure, currentRow, availableForBody, page.ContentBottom, nil)
		endRow := result.EndRow
		partialRow := result.PartialRow

		if endRow == currentRow && partialRow == nil {
			if page.HasFragments() {
				ctx.AdvanceColumn(page)
				continue
			}
			// Over-tall-row escape hatch: force a mid-row split of the
			// current row - even one marked cantSplit - so an empty page
			// can never fail to make progress.
			row := &block.Rows[currentRow]
			rm := rowAt(measure, currentRow)
			partialRow = planPartialRow(currentRow, row, &rm, availableForBody, nil)
			endRow = currentRow + 1
		}

		var fragHeight float64
		if partialRow != nil {
			fragHeight = SumRowHeights(measure, currentRow, endRow-1) + partialRow.PartialHeight
		} else {
			fragHeight = SumRowHeights(measure, currentRow, endRow)
		}
		fragHeight += headerHeight

		continuesOnNext := endRow < len(block.Rows) || (partialRow != nil && !partialRow.IsLastPart)
		emitFragment(ctx, page, block, measure, currentRow, endRow, repeatHeaderCount, partialRow, isTableContinuation, continuesOnNext, fragHeight)

		if partialRow != nil && !partialRow.IsLastPart {
			pendingPartialRow = partialRow
			currentRow = partialRow.RowIndex
		} else {
			currentRow = endRow
			pendingPartialRow = nil
		}
		isTableContinuation = true
	}

	return nil
}

// preflightTableStart applies the start-of-table advance decision: when
// the current page already carries other content, decide whether the
// table's first row can begin there at all or the table should open on a
// fresh column instead.
func preflightTableStart(block *TableBlock, measure *TableMeasure, ctx Paginator) {
	page := ctx.EnsurePage()
	if !page.HasFragments() {
		return
	}

	available := page.ContentBottom - page.CursorY

	if len(measure.Rows) > 0 && len(block.Rows) > 0 {
		row0 := block.Rows[0]
		if row0.Attrs.CantSplit {
			if rowAt(measure, 0).Height > available {
				ctx.AdvanceColumn(page)
			}
			return
		}

		rm := rowAt(measure, 0)
		partial := planPartialRow(0, &row0, &rm, available, nil)
		if !partialMadeProgress(partial) && partial.PartialHeight == 0 {
			ctx.AdvanceColumn(page)
		}
		return
	}

	// Fallback when no measured rows exist at all: fall back to comparing
	// whatever height information is available.
	h := rowAt(measure, 0).Height
	if h == 0 {
		h = measure.TotalHeight
	}
	if h > available {
		ctx.AdvanceColumn(page)
	}
}

// continuationOutcome reports the result of continuing an in-progress
// partial row onto the current page.
type continuationOutcome struct {
	// retried is true when no fragment was emitted because the page
	// offered no room to make progress; continuePartialRow has already
	// advanced to a new column, and the caller should simply loop again
	// with the same pending partial row.
	retried bool
	// next is the updated partial-row plan to keep pending, or nil if the
	// row is now fully emitted.
	next *PartialRowInfo
}

// continuePartialRow carries an in-progress partial row onto the current
// page: it re-plans the pending row's remaining lines against the new
// page's available body height, aligned from where the previous slice
// left off.
func continuePartialRow(block *TableBlock, measure *TableMeasure, ctx Paginator, page *PageState, pending *PartialRowInfo, availableForBody float64, repeatHeaderCount int, headerHeight float64, isTableContinuation bool) continuationOutcome {
	rowIndex := pending.RowIndex
	row := &block.Rows[rowIndex]
	rm := rowAt(measure, rowIndex)

	newPartial := planPartialRow(rowIndex, row, &rm, availableForBody, pending.ToLineByCell)
	madeProgress := partialMadeProgress(newPartial)
	hasMore := partialHasMore(newPartial, &rm)

	if madeProgress && newPartial.PartialHeight > 0 {
		fragHeight := newPartial.PartialHeight + headerHeight
		continuesOnNext := hasMore || (rowIndex+1 < len(block.Rows))
		emitFragment(ctx, page, block, measure, rowIndex, rowIndex+1, repeatHeaderCount, newPartial, isTableContinuation, continuesOnNext, fragHeight)
		if !hasMore {
			return continuationOutcome{next: nil}
		}
		return continuationOutcome{next: newPartial}
	}

	if page.HasFragments() {
		ctx.AdvanceColumn(page)
		return continuationOutcome{retried: true}
	}

	// No progress on what the driver believes is an empty page. A fresh
	// page always offers more room than MinPartialRowHeight plus padding,
	// so this should never happen, but advancing anyway guarantees the
	// loop cannot spin forever if a paginator implementation violates
	// that guarantee.
	ctx.AdvanceColumn(page)
	return continuationOutcome{retried: true}
}

// partialHasMore reports whether any cell still has lines remaining past
// a partial-row plan's cutoffs.
func partialHasMore(p *PartialRowInfo, rm *RowMeasure) bool {
	for i, to := range p.ToLineByCell {
		var total int
		if i < len(rm.Cells) {
			total = TotalLines(rm.Cells[i])
		}
		if to < total {
			return true
		}
	}
	return false
}

// emitFragment resolves a fragment's geometry (indent, column boundaries)
// and appends it to the page, advancing the cursor by exactly its height.
func emitFragment(ctx Paginator, page *PageState, block *TableBlock, measure *TableMeasure, fromRow, toRow, repeatHeaderCount int, partialRow *PartialRowInfo, continuesFromPrev, continuesOnNext bool, height float64) *TableFragment {
	indent := GetTableIndentWidth(block.Attrs)
	colWidth := layout.Abs(ctx.ColumnWidth())
	width := colWidth
	if measure.TotalWidth > 0 {
		width = colWidth.Min(layout.Abs(measure.TotalWidth))
	}
	x, width := ApplyTableIndent(layout.Abs(ctx.ColumnX(page.ColumnIndex)), width, indent)

	frag := &TableFragment{
		Kind:              "table",
		BlockID:           block.ID,
		FromRow:           fromRow,
		ToRow:             toRow,
		X:                 float64(x),
		Y:                 page.CursorY,
		Width:             float64(width),
		Height:            height,
		ContinuesFromPrev: continuesFromPrev,
		ContinuesOnNext:   continuesOnNext,
		RepeatHeaderCount: repeatHeaderCount,
		PartialRow:        partialRow,
		Metadata: FragmentMetadata{
			ColumnBoundaries: GenerateColumnBoundaries(measure),
			CoordinateSystem: "fragment",
		},
	}
	page.emit(frag)
	return frag
}
