package array4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray2DSatisfiesPlane(_ *testing.T) {
	var _ Plane[float32] = (*Array2D[float32])(nil)
	var _ Plane[int64] = (*Array2D[int64])(nil)
}

func TestArray2DAtSet(t *testing.T) {
	a := NewArray2D[float32](2, 3)

	assert.Equal(t, 2, a.Height())
	assert.Equal(t, 3, a.Width())
	assert.Equal(t, 6, a.NumElements())

	a.Set(5, 1, 2)
	assert.Equal(t, float32(5), a.At(1, 2))
	// Row-major: (1, 2) lands at 1*3 + 2.
	assert.Equal(t, float32(5), a.Values()[5])
}

func TestArray2DFilled(t *testing.T) {
	a := NewArray2DFilled[int32](2, 2, 7)
	assert.Equal(t, []int32{7, 7, 7, 7}, a.Values())
}

func TestArray2DFromSlice(t *testing.T) {
	a := NewArray2DFromSlice(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, float64(3), a.At(1, 0))

	assert.Panics(t, func() { NewArray2DFromSlice(2, 2, []float64{1, 2, 3}) })
}

func TestArray2DFromNested(t *testing.T) {
	a := NewArray2DFromNested([][]float32{{1, 2}, {3, 4}})

	assert.Equal(t, 2, a.Height())
	assert.Equal(t, 2, a.Width())
	assert.Equal(t, []float32{1, 2, 3, 4}, a.Values())

	assert.Panics(t, func() {
		NewArray2DFromNested([][]float32{{1, 2}, {3}})
	})
}

func TestArray2DBounds(t *testing.T) {
	a := NewArray2D[float32](2, 3)

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0, 3) })
	assert.Panics(t, func() { a.Set(1, -1, 0) })
}
