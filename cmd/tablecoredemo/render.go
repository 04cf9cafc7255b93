package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/boergens/tablecore/table"
)

// renderFragments prints the emitted fragment sequence as a table, one row
// per fragment, so a reviewer can eyeball where a table's rows landed
// without reaching for a debugger.
func renderFragments(w io.Writer, fragments []*table.TableFragment) error {
	t := tablewriter.NewTable(w, tablewriter.WithHeader([]string{
		"#", "rows", "y", "height", "header", "partial", "prev", "next",
	}))

	for i, f := range fragments {
		partial := "-"
		if f.PartialRow != nil {
			partial = fmt.Sprintf("row %d lines %v->%v", f.PartialRow.RowIndex, f.PartialRow.FromLineByCell, f.PartialRow.ToLineByCell)
		}
		row := []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("[%d,%d)", f.FromRow, f.ToRow),
			fmt.Sprintf("%.1f", f.Y),
			fmt.Sprintf("%.1f", f.Height),
			fmt.Sprintf("%d", f.RepeatHeaderCount),
			partial,
			fmt.Sprintf("%v", f.ContinuesFromPrev),
			fmt.Sprintf("%v", f.ContinuesOnNext),
		}
		if err := t.Append(row); err != nil {
			return fmt.Errorf("appending fragment row: %w", err)
		}
	}

	return t.Render()
}
