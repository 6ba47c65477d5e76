package array4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchMatMulIdentity(t *testing.T) {
	lhs := NewFromNested([][][][]float32{{{{1, 2}, {3, 4}}}})
	rhs := NewFromNested([][][][]float32{{{{1, 0}, {0, 1}}}})

	result := BatchMatMul(lhs, rhs)

	require.Equal(t, [4]int{1, 1, 2, 2}, result.Shape())
	assert.True(t, result.Equal(lhs))
}

func TestBatchMatMulValues(t *testing.T) {
	// (1, 1, 2, 3) x (1, 1, 3, 2)
	lhs := NewFromSlice(1, 1, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	rhs := NewFromSlice(1, 1, 3, 2, []float64{
		7, 8,
		9, 10,
		11, 12,
	})

	result := BatchMatMul(lhs, rhs)

	require.Equal(t, [4]int{1, 1, 2, 2}, result.Shape())
	assert.Equal(t, []float64{
		58, 64,
		139, 154,
	}, result.Values())
}

func TestBatchMatMulBatchIndependence(t *testing.T) {
	// Two independent 1x2 rows times two independent 2x1 columns.
	lhs := NewFromSlice(2, 1, 1, 2, []float32{
		1, 2,
		3, 4,
	})
	rhs := NewFromSlice(2, 1, 2, 1, []float32{
		1, 1,
		2, 2,
	})

	result := BatchMatMul(lhs, rhs)

	require.Equal(t, [4]int{2, 1, 1, 1}, result.Shape())
	assert.Equal(t, float32(3), result.At(0, 0, 0, 0))
	assert.Equal(t, float32(14), result.At(1, 0, 0, 0))
}

func TestBatchMatMulDepthBatches(t *testing.T) {
	lhs := New[int64](1, 2, 2, 2)
	rhs := New[int64](1, 2, 2, 2)
	lhs.FillIota(1) // two 2x2 matrices: [1 2; 3 4] and [5 6; 7 8]
	rhs.Fill(1)

	result := BatchMatMul(lhs, rhs)

	assert.Equal(t, []int64{
		3, 3,
		7, 7,
		11, 11,
		15, 15,
	}, result.Values())
}

func TestBatchMatMulInto(t *testing.T) {
	lhs := NewFromNested([][][][]float32{{{{1, 2}, {3, 4}}}})
	rhs := NewFromNested([][][][]float32{{{{1, 0}, {0, 1}}}})
	dst := NewFilled[float32](1, 1, 2, 2, 99)

	BatchMatMulInto(dst, lhs, rhs)

	// Every cell is overwritten from a zero accumulator.
	assert.True(t, dst.Equal(lhs))
}

func TestBatchMatMulShapeViolations(t *testing.T) {
	tests := []struct {
		name          string
		lhs, rhs, dst *Array4D[float32]
	}{
		{
			name: "contraction mismatch",
			lhs:  New[float32](1, 1, 2, 3),
			rhs:  New[float32](1, 1, 2, 2),
			dst:  New[float32](1, 1, 2, 2),
		},
		{
			name: "plane batch mismatch",
			lhs:  New[float32](2, 1, 2, 2),
			rhs:  New[float32](1, 1, 2, 2),
			dst:  New[float32](2, 1, 2, 2),
		},
		{
			name: "depth batch mismatch",
			lhs:  New[float32](1, 2, 2, 2),
			rhs:  New[float32](1, 1, 2, 2),
			dst:  New[float32](1, 2, 2, 2),
		},
		{
			name: "result height mismatch",
			lhs:  New[float32](1, 1, 2, 2),
			rhs:  New[float32](1, 1, 2, 2),
			dst:  New[float32](1, 1, 3, 2),
		},
		{
			name: "result width mismatch",
			lhs:  New[float32](1, 1, 2, 2),
			rhs:  New[float32](1, 1, 2, 2),
			dst:  New[float32](1, 1, 2, 3),
		},
		{
			name: "result batch mismatch",
			lhs:  New[float32](1, 1, 2, 2),
			rhs:  New[float32](1, 1, 2, 2),
			dst:  New[float32](2, 1, 2, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { BatchMatMulInto(tt.dst, tt.lhs, tt.rhs) })
		})
	}
}

func TestBatchMatMulAllocatesResultShape(t *testing.T) {
	lhs := New[float32](3, 2, 4, 5)
	rhs := New[float32](3, 2, 5, 7)

	result := BatchMatMul(lhs, rhs)

	assert.Equal(t, [4]int{3, 2, 4, 7}, result.Shape())
}
