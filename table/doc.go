// Package table implements the table pagination core of a word-processor
// style document layout engine: given a measured table (rows, cells,
// per-cell line heights) and a paginator that exposes page/column
// geometry, it produces an ordered sequence of TableFragment values -
// rectangular slices of the table placed on pages.
//
// The package is organized the way gotypst's layout/grid package organizes
// the analogous (but Typst-flavored) grid layout problem: a driver
// (Layouter) owns the top-level loop, a split-point finder decides where a
// page break falls, a partial-row planner works out mid-row line cutoffs,
// and a handful of geometry helpers do the bookkeeping. Word tables have no
// colspan/rowspan/gutter/fractional tracks, so none of that machinery
// carries over; what does carry over is the shape of the state machine and
// the idea of a header manager that promotes/repeats header rows across
// regions.
package table
