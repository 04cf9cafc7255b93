package table

// TableFragment is a rectangular slice of a table placed on a page. A
// table that fits on one page emits exactly one fragment; a table that
// must split emits one per page/column it touches.
type TableFragment struct {
	Kind    string
	BlockID BlockID

	FromRow int
	ToRow   int // exclusive

	X, Y          float64
	Width, Height float64

	// ContinuesFromPrev is true when this fragment picks up where a prior
	// fragment for the same table left off.
	ContinuesFromPrev bool
	// ContinuesOnNext is true when more of the table follows this fragment.
	ContinuesOnNext bool

	// RepeatHeaderCount is the number of header rows prepended to this
	// fragment's body; 0 on the first fragment of a table.
	RepeatHeaderCount int

	// PartialRow describes a mid-row split, if this fragment ends (or
	// begins, on a continuation) partway through a row's content.
	PartialRow *PartialRowInfo

	Metadata FragmentMetadata
}

// FragmentMetadata carries information a downstream interactive feature
// (e.g. column-resize handles) needs but that has no bearing on pagination
// itself.
type FragmentMetadata struct {
	ColumnBoundaries []ColumnBoundary
	// CoordinateSystem is always "fragment": coordinates are relative to
	// this fragment's own origin, not the page.
	CoordinateSystem string
}

// ColumnBoundary describes one column's horizontal extent within a
// fragment, for downstream column-resize affordances.
type ColumnBoundary struct {
	Index     int
	X         float64
	Width     float64
	MinWidth  float64
	Resizable bool
}

// PartialRowInfo describes a row that is being emitted across more than
// one fragment, cut on per-cell line boundaries rather than by height.
type PartialRowInfo struct {
	RowIndex int

	// FromLineByCell and ToLineByCell are per-cell global line indices
	// (flattened across all paragraph blocks in the cell); ToLineByCell is
	// exclusive. Invariant: 0 <= from[i] <= to[i] <= TotalLines(cell i).
	FromLineByCell []int
	ToLineByCell   []int

	IsFirstPart bool
	IsLastPart  bool

	// PartialHeight is the height in pixels this slice contributes to its
	// fragment: the max over cells of (included line heights + padding),
	// not the sum - cells share the row's height.
	PartialHeight float64
}
