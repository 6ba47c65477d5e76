// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array4d

import (
	"iter"

	"github.com/dense-ml/dense/internal/array4d"
)

// Type aliases for the public API.

// Numeric is the constraint for supported element types.
type Numeric = array4d.Numeric

// Array4D is a dense rank-4 array backed by a flat contiguous buffer.
type Array4D[T Numeric] = array4d.Array4D[T]

// Array2D is a dense rank-2 array; it satisfies Plane and is the usual
// source for the YX and PZ fills.
type Array2D[T Numeric] = array4d.Array2D[T]

// Plane is the read-only rank-2 contract consumed by the YX and PZ fills.
type Plane[T Numeric] = array4d.Plane[T]

// Index is the 4-tuple coordinate of one element.
type Index = array4d.Index

// DefaultRandomSeed seeds FillRandom so that repeated runs draw identical
// values.
const DefaultRandomSeed = array4d.DefaultRandomSeed

// New creates an Array4D with a zeroed buffer.
func New[T Numeric](planes, depth, height, width int) *Array4D[T] {
	return array4d.New[T](planes, depth, height, width)
}

// NewFilled creates an Array4D with every element set to value.
func NewFilled[T Numeric](planes, depth, height, width int, value T) *Array4D[T] {
	return array4d.NewFilled(planes, depth, height, width, value)
}

// NewFromSlice creates an Array4D whose buffer is a copy of data in
// canonical offset order. Panics unless data holds exactly
// planes*depth*height*width elements.
func NewFromSlice[T Numeric](planes, depth, height, width int, data []T) *Array4D[T] {
	return array4d.NewFromSlice(planes, depth, height, width, data)
}

// NewFromSeq creates an Array4D populated from seq in iteration order.
// Panics unless the sequence yields exactly planes*depth*height*width
// values.
func NewFromSeq[T Numeric](planes, depth, height, width int, seq iter.Seq[T]) *Array4D[T] {
	return array4d.NewFromSeq(planes, depth, height, width, seq)
}

// NewFromNested creates an Array4D from a 4-level nested literal, inferring
// all four dimensions from the nesting. Panics if the nesting is not
// rectangular.
func NewFromNested[T Numeric](values [][][][]T) *Array4D[T] {
	return array4d.NewFromNested(values)
}

// Convert produces a new array with identical dimensions whose elements are
// src's converted to To with a plain, unchecked Go conversion.
func Convert[To, From Numeric](src *Array4D[From]) *Array4D[To] {
	return array4d.Convert[To](src)
}

// NewArray2D creates an Array2D with a zeroed buffer.
func NewArray2D[T Numeric](height, width int) *Array2D[T] {
	return array4d.NewArray2D[T](height, width)
}

// NewArray2DFilled creates an Array2D with every element set to value.
func NewArray2DFilled[T Numeric](height, width int, value T) *Array2D[T] {
	return array4d.NewArray2DFilled(height, width, value)
}

// NewArray2DFromSlice creates an Array2D whose buffer is a copy of data in
// row-major order. Panics on a length mismatch.
func NewArray2DFromSlice[T Numeric](height, width int, data []T) *Array2D[T] {
	return array4d.NewArray2DFromSlice(height, width, data)
}

// NewArray2DFromNested creates an Array2D from a nested literal, inferring
// both dimensions. Panics if the rows have unequal lengths.
func NewArray2DFromNested[T Numeric](values [][]T) *Array2D[T] {
	return array4d.NewArray2DFromNested(values)
}

// BatchMatMulInto multiplies lhs (B, D, P, R) by rhs (B, D, R, Q) into dst
// (B, D, P, Q), treating plane and depth as independent batch indices and
// height and width as the matrix axes. Panics on any shape contract
// violation.
func BatchMatMulInto[T Numeric](dst, lhs, rhs *Array4D[T]) {
	array4d.BatchMatMulInto(dst, lhs, rhs)
}

// BatchMatMul allocates a correctly shaped result, multiplies lhs by rhs
// into it and returns it.
func BatchMatMul[T Numeric](lhs, rhs *Array4D[T]) *Array4D[T] {
	return array4d.BatchMatMul(lhs, rhs)
}
