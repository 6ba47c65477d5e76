package array4d

import "fmt"

// Plane is the read-only rank-2 contract consumed by the YX and PZ fills.
// The core never mutates a Plane.
type Plane[T Numeric] interface {
	At(row, col int) T
	Height() int
	Width() int
}

// Array2D is a dense rank-2 array with the same row-major layout and value
// semantics as Array4D. It satisfies Plane.
type Array2D[T Numeric] struct {
	height int
	width  int
	values []T
}

// NewArray2D creates an Array2D with a zeroed buffer.
func NewArray2D[T Numeric](height, width int) *Array2D[T] {
	return &Array2D[T]{
		height: height,
		width:  width,
		values: make([]T, height*width),
	}
}

// NewArray2DFilled creates an Array2D with every element set to value.
func NewArray2DFilled[T Numeric](height, width int, value T) *Array2D[T] {
	a := NewArray2D[T](height, width)
	for i := range a.values {
		a.values[i] = value
	}
	return a
}

// NewArray2DFromSlice creates an Array2D whose buffer is a copy of data in
// row-major order. data must hold exactly height*width elements; panics
// otherwise.
func NewArray2DFromSlice[T Numeric](height, width int, data []T) *Array2D[T] {
	a := NewArray2D[T](height, width)
	if len(data) != a.NumElements() {
		panic(fmt.Sprintf("array4d: shape (%d, %d) requires %d elements, got %d",
			height, width, a.NumElements(), len(data)))
	}
	copy(a.values, data)
	return a
}

// NewArray2DFromNested creates an Array2D from a nested literal, inferring
// both dimensions. The rows must all have equal length; panics otherwise.
func NewArray2DFromNested[T Numeric](values [][]T) *Array2D[T] {
	height := len(values)
	var width int
	if height > 0 {
		width = len(values[0])
	}
	a := NewArray2D[T](height, width)
	for y, row := range values {
		if len(row) != width {
			panic(fmt.Sprintf("array4d: ragged nested literal: row %d has width %d, want %d", y, len(row), width))
		}
		copy(a.values[y*width:], row)
	}
	return a
}

// At returns the element at (row, col). Panics if either index is out of
// bounds.
func (a *Array2D[T]) At(row, col int) T {
	a.checkBounds(row, col)
	return a.values[row*a.width+col]
}

// Set writes value at (row, col). Panics if either index is out of bounds.
func (a *Array2D[T]) Set(value T, row, col int) {
	a.checkBounds(row, col)
	a.values[row*a.width+col] = value
}

func (a *Array2D[T]) checkBounds(row, col int) {
	if row < 0 || row >= a.height {
		panic(fmt.Sprintf("array4d: row index %d out of bounds (size %d)", row, a.height))
	}
	if col < 0 || col >= a.width {
		panic(fmt.Sprintf("array4d: col index %d out of bounds (size %d)", col, a.width))
	}
}

// Height returns the number of rows.
func (a *Array2D[T]) Height() int { return a.height }

// Width returns the number of columns.
func (a *Array2D[T]) Width() int { return a.width }

// NumElements returns the total number of elements.
func (a *Array2D[T]) NumElements() int { return len(a.values) }

// Values returns the flat backing buffer in row-major order.
//
// WARNING: Modifications to the returned slice modify the array.
func (a *Array2D[T]) Values() []T { return a.values }
