// Package array4d implements a dense rank-4 numeric array for building and
// describing convolution-style {plane, depth, height, width} values.
package array4d

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Numeric is the constraint for supported element types.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// epsilon is the absolute per-element tolerance Equal applies to floating
// element types.
const epsilon = 1e-6

// Array4D is a dense rank-4 array backed by a flat contiguous buffer it
// exclusively owns.
//
// The data layout is, in order from major to minor:
//
//	 First dimension: plane, batch, n1
//	Second dimension: depth, feature, z, n2
//	 Third dimension: height, y, n3
//	Fourth dimension: width, x, n4
//
// Element (p, z, y, x) lives at flat offset
// p*(depth*height*width) + z*(height*width) + y*width + x, so the width
// index varies fastest. The buffer length always equals
// planes*depth*height*width.
type Array4D[T Numeric] struct {
	planes int
	depth  int
	height int
	width  int
	values []T
}

// New creates an Array4D with a zeroed buffer.
//
// Example:
//
//	a := array4d.New[float32](2, 3, 4, 5)
func New[T Numeric](planes, depth, height, width int) *Array4D[T] {
	return &Array4D[T]{
		planes: planes,
		depth:  depth,
		height: height,
		width:  width,
		values: make([]T, planes*depth*height*width),
	}
}

// NewFilled creates an Array4D with every element set to value.
func NewFilled[T Numeric](planes, depth, height, width int, value T) *Array4D[T] {
	a := New[T](planes, depth, height, width)
	a.Fill(value)
	return a
}

// NewFromSlice creates an Array4D whose buffer is a copy of data, taken in
// canonical offset order. data must hold exactly planes*depth*height*width
// elements; panics otherwise.
func NewFromSlice[T Numeric](planes, depth, height, width int, data []T) *Array4D[T] {
	a := New[T](planes, depth, height, width)
	if len(data) != a.NumElements() {
		panic(fmt.Sprintf("array4d: shape (%d, %d, %d, %d) requires %d elements, got %d",
			planes, depth, height, width, a.NumElements(), len(data)))
	}
	copy(a.values, data)
	return a
}

// NewFromSeq creates an Array4D populated from seq in iteration order. The
// sequence must yield exactly planes*depth*height*width values; panics
// otherwise.
//
// Example:
//
//	a := array4d.NewFromSeq[int32](1, 1, 2, 2, slices.Values(data))
func NewFromSeq[T Numeric](planes, depth, height, width int, seq iter.Seq[T]) *Array4D[T] {
	a := New[T](planes, depth, height, width)
	n := 0
	for v := range seq {
		if n < len(a.values) {
			a.values[n] = v
		}
		n++
	}
	if n != a.NumElements() {
		panic(fmt.Sprintf("array4d: shape (%d, %d, %d, %d) requires %d elements, sequence yielded %d",
			planes, depth, height, width, a.NumElements(), n))
	}
	return a
}

// NewFromNested creates an Array4D from a 4-level nested literal, inferring
// all four dimensions from the nesting: the outer level lists planes, then
// depth, then height, then width. The nesting must be rectangular; panics
// otherwise.
//
// Example:
//
//	a := array4d.NewFromNested([][][][]float32{{{{1, 2}, {3, 4}}}}) // shape (1, 1, 2, 2)
func NewFromNested[T Numeric](values [][][][]T) *Array4D[T] {
	planes := len(values)
	var depth, height, width int
	if planes > 0 {
		depth = len(values[0])
		if depth > 0 {
			height = len(values[0][0])
			if height > 0 {
				width = len(values[0][0][0])
			}
		}
	}
	a := New[T](planes, depth, height, width)
	for p, plane := range values {
		if len(plane) != depth {
			panic(fmt.Sprintf("array4d: ragged nested literal: plane %d has depth %d, want %d", p, len(plane), depth))
		}
		for z, rows := range plane {
			if len(rows) != height {
				panic(fmt.Sprintf("array4d: ragged nested literal: plane %d depth %d has height %d, want %d", p, z, len(rows), height))
			}
			for y, row := range rows {
				if len(row) != width {
					panic(fmt.Sprintf("array4d: ragged nested literal: plane %d depth %d row %d has width %d, want %d", p, z, y, len(row), width))
				}
				copy(a.values[a.offset(p, z, y, 0):], row)
			}
		}
	}
	return a
}

// offset maps (p, z, y, x) to the flat buffer position. This is the single
// source of truth for the layout; every indexed access goes through it.
func (a *Array4D[T]) offset(p, z, y, x int) int {
	return p*(a.depth*a.height*a.width) + z*(a.height*a.width) + y*a.width + x
}

func (a *Array4D[T]) checkBounds(p, z, y, x int) {
	if p < 0 || p >= a.planes {
		panic(fmt.Sprintf("array4d: plane index %d out of bounds (size %d)", p, a.planes))
	}
	if z < 0 || z >= a.depth {
		panic(fmt.Sprintf("array4d: depth index %d out of bounds (size %d)", z, a.depth))
	}
	if y < 0 || y >= a.height {
		panic(fmt.Sprintf("array4d: height index %d out of bounds (size %d)", y, a.height))
	}
	if x < 0 || x >= a.width {
		panic(fmt.Sprintf("array4d: width index %d out of bounds (size %d)", x, a.width))
	}
}

// At returns the element at the given (plane, depth, height, width) indices.
// Panics if any index is out of bounds.
func (a *Array4D[T]) At(p, z, y, x int) T {
	a.checkBounds(p, z, y, x)
	return a.values[a.offset(p, z, y, x)]
}

// Set writes value at the given (plane, depth, height, width) indices.
// Panics if any index is out of bounds.
func (a *Array4D[T]) Set(value T, p, z, y, x int) {
	a.checkBounds(p, z, y, x)
	a.values[a.offset(p, z, y, x)] = value
}

// Planes returns the size of the most-major dimension.
func (a *Array4D[T]) Planes() int { return a.planes }

// Depth returns the size of the second-major dimension.
func (a *Array4D[T]) Depth() int { return a.depth }

// Height returns the size of the third dimension.
func (a *Array4D[T]) Height() int { return a.height }

// Width returns the size of the most-minor dimension.
func (a *Array4D[T]) Width() int { return a.width }

// Numerically-named aliases for the four dimensions, major to minor.

func (a *Array4D[T]) N1() int { return a.planes }
func (a *Array4D[T]) N2() int { return a.depth }
func (a *Array4D[T]) N3() int { return a.height }
func (a *Array4D[T]) N4() int { return a.width }

// NumElements returns the total number of elements.
func (a *Array4D[T]) NumElements() int { return len(a.values) }

// Shape returns the four dimension sizes, major to minor.
func (a *Array4D[T]) Shape() [4]int {
	return [4]int{a.planes, a.depth, a.height, a.width}
}

// Values returns the flat backing buffer in canonical offset order.
//
// WARNING: Modifications to the returned slice modify the array.
func (a *Array4D[T]) Values() []T { return a.values }

// Equal reports whether rhs has the same dimensions and the same element
// values. Floating element types compare with an absolute tolerance of 1e-6
// per element; integer element types compare exactly. A shape mismatch is a
// defined false result, never a panic.
func (a *Array4D[T]) Equal(rhs *Array4D[T]) bool {
	if a.planes != rhs.planes || a.depth != rhs.depth || a.height != rhs.height || a.width != rhs.width {
		return false
	}
	var dummy T
	switch any(dummy).(type) {
	case float32, float64:
		for i := range a.values {
			if math.Abs(float64(a.values[i])-float64(rhs.values[i])) >= epsilon {
				return false
			}
		}
	default:
		for i := range a.values {
			if a.values[i] != rhs.values[i] {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy with an independently owned buffer.
func (a *Array4D[T]) Clone() *Array4D[T] {
	c := New[T](a.planes, a.depth, a.height, a.width)
	copy(c.values, a.values)
	return c
}

// Convert produces a new array with identical dimensions whose elements are
// src's converted to To with a plain Go conversion. No range checking is
// performed: values outside To's range truncate or wrap per Go's conversion
// rules, so callers needing safety must validate ranges themselves.
func Convert[To, From Numeric](src *Array4D[From]) *Array4D[To] {
	dst := New[To](src.planes, src.depth, src.height, src.width)
	for i, v := range src.values {
		dst.values[i] = To(v)
	}
	return dst
}

// String returns a nested-brace rendering of all elements grouped by plane,
// depth and height, for debugging and test failure output.
func (a *Array4D[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p=%d,z=%d,y=%d,x=%d\n[\n", a.planes, a.depth, a.height, a.width)
	for p := 0; p < a.planes; p++ {
		sb.WriteString("  {\n")
		for z := 0; z < a.depth; z++ {
			sb.WriteString("    {\n")
			for y := 0; y < a.height; y++ {
				sb.WriteString("      {")
				for x := 0; x < a.width; x++ {
					fmt.Fprintf(&sb, "%v, ", a.values[a.offset(p, z, y, x)])
				}
				sb.WriteString("},\n")
			}
			sb.WriteString("    },\n")
		}
		sb.WriteString("  },\n")
	}
	sb.WriteString("]")
	return sb.String()
}
