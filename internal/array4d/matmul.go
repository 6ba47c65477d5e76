package array4d

import "fmt"

// BatchMatMulInto multiplies lhs, shaped (B, D, P, R), by rhs, shaped
// (B, D, R, Q), writing into dst, shaped (B, D, P, Q). Plane and depth are
// independent batch indices; height and width are the matrix row and column
// axes, so for every (b, d) pair
//
//	dst[b, d, i, j] = Σ_r lhs[b, d, i, r] * rhs[b, d, r, j]
//
// Each output cell starts from a zero accumulator and sums over r in
// increasing order, which fixes the floating-point rounding. Panics on any
// violation of the shape contract.
func BatchMatMulInto[T Numeric](dst, lhs, rhs *Array4D[T]) {
	if lhs.width != rhs.height {
		panic(fmt.Sprintf("array4d: batch matmul contraction mismatch: lhs width %d vs rhs height %d",
			lhs.width, rhs.height))
	}
	if lhs.planes != rhs.planes || lhs.depth != rhs.depth {
		panic(fmt.Sprintf("array4d: batch matmul batch mismatch: lhs (%d, %d) vs rhs (%d, %d)",
			lhs.planes, lhs.depth, rhs.planes, rhs.depth))
	}
	if dst.planes != lhs.planes || dst.depth != lhs.depth || dst.height != lhs.height || dst.width != rhs.width {
		panic(fmt.Sprintf("array4d: batch matmul result shape: want (%d, %d, %d, %d), got (%d, %d, %d, %d)",
			lhs.planes, lhs.depth, lhs.height, rhs.width, dst.planes, dst.depth, dst.height, dst.width))
	}

	for b := 0; b < dst.planes; b++ {
		for d := 0; d < dst.depth; d++ {
			for i := 0; i < lhs.height; i++ {
				for j := 0; j < rhs.width; j++ {
					var sum T
					for r := 0; r < lhs.width; r++ {
						sum += lhs.values[lhs.offset(b, d, i, r)] * rhs.values[rhs.offset(b, d, r, j)]
					}
					dst.values[dst.offset(b, d, i, j)] = sum
				}
			}
		}
	}
}

// BatchMatMul allocates a correctly shaped result, multiplies lhs by rhs
// into it and returns it. Same contract as BatchMatMulInto.
func BatchMatMul[T Numeric](lhs, rhs *Array4D[T]) *Array4D[T] {
	dst := New[T](lhs.planes, lhs.depth, lhs.height, rhs.width)
	BatchMatMulInto(dst, lhs, rhs)
	return dst
}
