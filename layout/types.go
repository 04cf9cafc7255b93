package layout

import "math"

// Abs represents an absolute length in document pixels.
// This is the fundamental unit for all pagination math in this module.
type Abs float64

// IsZero returns true if the length is zero.
func (a Abs) IsZero() bool {
	return a == 0
}

// Abs returns the absolute value.
func (a Abs) Abs() Abs {
	if a < 0 {
		return -a
	}
	return a
}

// Min returns the smaller of two lengths.
func (a Abs) Min(b Abs) Abs {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two lengths.
func (a Abs) Max(b Abs) Abs {
	if a > b {
		return a
	}
	return b
}

// Clamp clamps the length to the given range.
func (a Abs) Clamp(min, max Abs) Abs {
	if a < min {
		return min
	}
	if a > max {
		return max
	}
	return a
}

// IsFinite reports whether the length is a well-defined, finite number.
// Degenerate inputs (NaN, +/-Inf) are treated as non-finite so callers can
// fall back to documented defaults instead of propagating garbage.
func (a Abs) IsFinite() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Point represents a 2D point in document coordinates.
type Point struct {
	X Abs
	Y Abs
}

// Add adds two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size represents 2D dimensions (width and height).
type Size struct {
	Width  Abs
	Height Abs
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Sides holds per-edge values, used for padding, margins and indents.
type Sides[T any] struct {
	Left   T
	Top    T
	Right  T
	Bottom T
}

// SidesSplat creates Sides with the same value on all sides.
func SidesSplat[T any](v T) Sides[T] {
	return Sides[T]{Left: v, Top: v, Right: v, Bottom: v}
}

// Ratio represents a ratio/percentage value (0.5 = 50%).
type Ratio float64

// Resolve resolves the ratio against a given whole.
func (r Ratio) Resolve(whole Abs) Abs {
	return Abs(float64(r) * float64(whole))
}

// VAlign represents vertical alignment of cell content, consumed only by
// the downstream painter - the pagination core never interprets it.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// Color represents an RGBA color used for cell backgrounds. Like VAlign,
// this is opaque to the pagination core and only meaningful to a painter.
type Color struct {
	R, G, B, A uint8
}
