// Package layout provides the small set of geometric primitives shared by
// the table pagination core: absolute lengths, points, sizes and per-side
// insets. Units are document pixels, matching the measurement pass that
// feeds the table package.
//
// This package is a pared-down descendant of gotypst's layout package: the
// frame/shape/transform machinery used for general document rendering has
// been dropped since the table pagination core never rasterizes content
// itself, but the Abs/Point/Size/Sides vocabulary and its method set are
// kept verbatim. The table package builds its geometry on Abs.
package layout
