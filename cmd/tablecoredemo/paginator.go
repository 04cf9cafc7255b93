package main

import "github.com/boergens/tablecore/table"

// pageGeometry is the demo's page/column layout, optionally overridden from
// a TOML config file.
type pageGeometry struct {
	PageHeight     float64 `toml:"page_height"`
	MarginTop      float64 `toml:"margin_top"`
	ColumnWidth    float64 `toml:"column_width"`
	ColumnGap      float64 `toml:"column_gap"`
	ColumnsPerPage int     `toml:"columns_per_page"`
}

// demoPaginator is a standalone implementation of table.Paginator for the
// CLI: it simulates a document made of uniformly sized pages and columns,
// printing nothing itself - it only tracks cursor/column state the way a
// real document layout engine's page manager would.
type demoPaginator struct {
	geom pageGeometry

	colIndex int
	pageNum  int
	current  *table.PageState

	history []*table.TableFragment
}

func newDemoPaginator(geom pageGeometry) *demoPaginator {
	if geom.ColumnsPerPage < 1 {
		geom.ColumnsPerPage = 1
	}
	return &demoPaginator{geom: geom}
}

func (p *demoPaginator) EnsurePage() *table.PageState {
	if p.current == nil {
		p.current = p.freshPage()
	}
	return p.current
}

func (p *demoPaginator) AdvanceColumn(state *table.PageState) *table.PageState {
	p.history = append(p.history, state.Fragments...)
	p.colIndex++
	if p.colIndex >= p.geom.ColumnsPerPage {
		p.colIndex = 0
		p.pageNum++
	}
	p.current = p.freshPage()
	return p.current
}

func (p *demoPaginator) ColumnX(columnIndex int) float64 {
	return float64(columnIndex) * (p.geom.ColumnWidth + p.geom.ColumnGap)
}

func (p *demoPaginator) ColumnWidth() float64 {
	return p.geom.ColumnWidth
}

func (p *demoPaginator) freshPage() *table.PageState {
	mt := p.geom.MarginTop
	return &table.PageState{
		CursorY:       mt,
		ContentBottom: p.geom.PageHeight,
		ColumnIndex:   p.colIndex,
		MarginTop:     &mt,
	}
}

// AllFragments returns every fragment emitted so far, in emission order.
func (p *demoPaginator) AllFragments() []*table.TableFragment {
	all := append([]*table.TableFragment(nil), p.history...)
	if p.current != nil {
		all = append(all, p.current.Fragments...)
	}
	return all
}
