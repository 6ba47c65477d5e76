// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array4d provides a dense rank-4 numeric array for building and
// describing convolution-style values.
//
// # Overview
//
// Array4D[T] owns a flat contiguous buffer of planes*depth*height*width
// elements. The four dimensions are, in order from major to minor:
//
//	 First dimension: plane, batch, n1
//	Second dimension: depth, feature, z, n2
//	 Third dimension: height, y, n3
//	Fourth dimension: width, x, n4
//
// Element (p, z, y, x) lives at flat offset
// p*(depth*height*width) + z*(height*width) + y*width + x, so the width
// index varies fastest.
//
// # Basic Usage
//
//	import "github.com/dense-ml/dense/array4d"
//
//	func main() {
//	    a := array4d.New[float32](1, 2, 3, 4)
//	    a.FillIota(0)
//
//	    b := array4d.NewFromNested([][][][]float32{{{{1, 2}, {3, 4}}}})
//	    c := array4d.BatchMatMul(b, b)
//	    fmt.Println(c)
//	}
//
// # Supported Element Types
//
// Any type satisfying the Numeric constraint: float32, float64, int32,
// int64, uint8.
//
// # Error Handling
//
// Shape and bound violations are programmer errors and panic with a
// diagnostic naming the expected and actual sizes. Equality on mismatched
// shapes is the one defined exception: it returns false.
//
// # Concurrency
//
// Every array owns its buffer exclusively and all operations are
// single-threaded and run to completion. Two goroutines sharing one array
// need external synchronization; distinct arrays never alias.
package array4d
