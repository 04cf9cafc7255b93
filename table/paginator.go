package table

// Paginator is the external collaborator that owns pages and columns. The
// table pagination core never constructs pages itself; it only asks for
// one, appends fragments to it, and advances the cursor and column as it
// goes. This mirrors how gotypst's pages package hands a Regions handle to
// a layouter rather than letting the layouter manage page creation itself.
type Paginator interface {
	// EnsurePage returns the current page, creating one if none exists yet
	// or the current one is full. Idempotent when called repeatedly
	// without an intervening AdvanceColumn.
	EnsurePage() *PageState

	// AdvanceColumn moves to the next column within the current page, or
	// to a fresh page if columns are exhausted, and returns the resulting
	// state.
	AdvanceColumn(state *PageState) *PageState

	// ColumnX returns the left edge of the indexed column in document
	// coordinates.
	ColumnX(columnIndex int) float64

	// ColumnWidth returns the width of a single column.
	ColumnWidth() float64
}

// PageState is the mutable paginator state this package reads and writes.
// CursorY is advanced by exactly each emitted fragment's height (the
// cursor-correctness invariant); Fragments is appended to, never replaced.
type PageState struct {
	Fragments []*TableFragment

	CursorY       float64
	ContentBottom float64
	ColumnIndex   int

	// MarginTop is the page's top margin, if the paginator tracks one.
	// Only the monolithic-layout gate's "content height of one page"
	// formula consults it.
	MarginTop *float64
}

// HasFragments reports whether any fragment has been placed on this page
// yet; several driver decisions (advance vs. start in place) hinge on it.
func (p *PageState) HasFragments() bool {
	return p != nil && len(p.Fragments) > 0
}

// emit appends a fragment to the page and advances the cursor by exactly
// the fragment's height, preserving the cursor-correctness invariant by
// construction.
func (p *PageState) emit(f *TableFragment) {
	p.Fragments = append(p.Fragments, f)
	p.CursorY += f.Height
}
