package table

// fakePaginator is a minimal in-memory Paginator used by the tests in this
// package. It models a document with a fixed page content height, a fixed
// column width, and a fixed number of columns per page; advancing past the
// last column starts a fresh page.
type fakePaginator struct {
	pageHeight     float64
	marginTop      float64
	colWidth       float64
	colGap         float64
	columnsPerPage int

	colIndex int
	pageNum  int
	current  *PageState

	// history accumulates every fragment emitted on a page once that page
	// is advanced past; AllFragments() combines it with the current page's
	// fragments to give the full ordered sequence for a test.
	history []*TableFragment
}

func newFakePaginator(pageHeight, colWidth float64, columnsPerPage int) *fakePaginator {
	return &fakePaginator{
		pageHeight:     pageHeight,
		colWidth:       colWidth,
		columnsPerPage: columnsPerPage,
	}
}

func (p *fakePaginator) EnsurePage() *PageState {
	if p.current == nil {
		p.current = p.freshPage()
	}
	return p.current
}

func (p *fakePaginator) AdvanceColumn(state *PageState) *PageState {
	p.history = append(p.history, state.Fragments...)
	p.colIndex++
	if p.colIndex >= p.columnsPerPage {
		p.colIndex = 0
		p.pageNum++
	}
	p.current = p.freshPage()
	return p.current
}

func (p *fakePaginator) ColumnX(columnIndex int) float64 {
	return float64(columnIndex) * (p.colWidth + p.colGap)
}

func (p *fakePaginator) ColumnWidth() float64 {
	return p.colWidth
}

func (p *fakePaginator) freshPage() *PageState {
	mt := p.marginTop
	return &PageState{
		CursorY:       mt,
		ContentBottom: p.pageHeight,
		ColumnIndex:   p.colIndex,
		MarginTop:     &mt,
	}
}

// AllFragments returns every fragment emitted across the paginator's
// lifetime, in emission order.
func (p *fakePaginator) AllFragments() []*TableFragment {
	all := append([]*TableFragment(nil), p.history...)
	if p.current != nil {
		all = append(all, p.current.Fragments...)
	}
	return all
}
