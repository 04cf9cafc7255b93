package table

import "github.com/boergens/tablecore/layout"

// Default cell padding and column-width bounds, per the wire-level
// constants consumed by both layout and tests.
const (
	DefaultPaddingTop    = 2
	DefaultPaddingLeft   = 4
	DefaultPaddingRight  = 4
	DefaultPaddingBottom = 2

	DefaultMinColumnWidth = 25
	MaxMinColumnWidth     = 200

	// MinPartialRowHeight is the smallest remaining height for which the
	// split-point finder will bother planning a partial row rather than
	// pushing the whole row to the next region.
	MinPartialRowHeight = 20
)

// BlockID is an opaque identifier for a table block, assigned by whatever
// produced the document tree upstream of this package.
type BlockID string

// TableBlock is the immutable input describing one table to be paginated.
type TableBlock struct {
	ID    BlockID
	Rows  []TableRow
	Attrs TableBlockAttrs
}

// TableBlockAttrs mirrors the loose "attrs bag" the source document format
// allows on a table element, narrowed down to the fields this package
// actually interprets. Unknown keys are the measurement layer's concern,
// not this package's: we only ever see the fields below.
type TableBlockAttrs struct {
	// TableIndent, if set, shifts the table right and narrows its width.
	TableIndent *TableIndent
	// Floating marks a table that carries floatingTableProperties; its
	// mere presence (regardless of contents) forces the monolithic path.
	Floating bool
	// Anchored marks a table fully delegated to the float manager.
	Anchored bool
}

// TableIndent is the resolved tableIndent.width attribute.
type TableIndent struct {
	Width float64
}

// GetTableIndentWidth returns attrs.tableIndent.width iff it is a finite
// number, else 0. NaN and infinite widths in source documents are treated
// as "no indent" rather than propagated into fragment geometry.
func GetTableIndentWidth(attrs TableBlockAttrs) layout.Abs {
	if attrs.TableIndent == nil {
		return 0
	}
	w := layout.Abs(attrs.TableIndent.Width)
	if !w.IsFinite() {
		return 0
	}
	return w
}

// TableRow is one row of a table, carrying its cells and row-level flags.
type TableRow struct {
	Cells []TableCell
	Attrs TableRowAttrs
}

// TableRowAttrs holds the two row-level flags this package cares about.
type TableRowAttrs struct {
	// RepeatHeader marks a row as part of the header prefix. Only a
	// contiguous run starting at row 0 counts - see CountHeaderRows.
	RepeatHeader bool
	// CantSplit forbids a mid-content split of this row, except via the
	// over-tall escape hatch.
	CantSplit bool
}

// TableCell is one cell of a row: a sequence of content blocks plus the
// attributes a painter (not this package) will eventually need.
type TableCell struct {
	Blocks []ContentBlock
	Attrs  CellAttrs
}

// NewCellFromParagraph builds a cell from the backward-compatible single
// "paragraph" field some documents still carry instead of a blocks array:
// the ingestion boundary treats it as a one-element block sequence so the
// rest of this package only ever sees the uniform Blocks shape.
func NewCellFromParagraph(p ParagraphBlock, attrs CellAttrs) TableCell {
	return TableCell{Blocks: []ContentBlock{p}, Attrs: attrs}
}

// CellAttrs holds cell-level styling. Background and VerticalAlign are
// opaque to this package - they exist purely so the data model round-trips
// what a painter will need.
type CellAttrs struct {
	// Padding is a pointer so that an unset padding (nil, use the
	// documented default) is distinguishable from an explicit all-zero
	// padding.
	Padding       *Padding
	Background    *layout.Color
	VerticalAlign layout.VAlign
}

// Padding is the per-side cell inset, defaulting to {top:2, left:4,
// right:4, bottom:2} px when left unset (nil).
type Padding struct {
	Top, Left, Right, Bottom float64
}

// DefaultPadding is the padding applied when a cell specifies none.
var DefaultPadding = Padding{
	Top:    DefaultPaddingTop,
	Left:   DefaultPaddingLeft,
	Right:  DefaultPaddingRight,
	Bottom: DefaultPaddingBottom,
}

// ResolvePadding returns DefaultPadding when p is nil and *p unchanged
// otherwise. Defaults apply to the padding as a whole: zero fields of a
// non-nil Padding stay zero and are not replaced by per-side defaults.
func ResolvePadding(p *Padding) Padding {
	if p == nil {
		return DefaultPadding
	}
	return *p
}

// ContentBlock is a polymorphic block within a cell: either a paragraph
// (which contributes lines to the partial-row planner) or some other block
// kind (which contributes zero lines, e.g. an image or nested table).
type ContentBlock interface {
	isContentBlock()
}

// ParagraphBlock is a paragraph content block. Its actual inline content is
// irrelevant to this package; only the measured line heights (carried in
// TableMeasure, not here) matter for pagination.
type ParagraphBlock struct{}

func (ParagraphBlock) isContentBlock() {}

// OtherBlock is any non-paragraph block kind (image, nested table, ...).
// It never contributes lines to a cell's line sequence.
type OtherBlock struct {
	Kind string
}

func (OtherBlock) isContentBlock() {}
