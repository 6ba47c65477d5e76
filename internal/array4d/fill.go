package array4d

import (
	"fmt"
	"iter"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultRandomSeed seeds FillRandom so that repeated runs draw identical
// values.
const DefaultRandomSeed = 12345

// Fill sets every element to value.
func (a *Array4D[T]) Fill(value T) {
	for i := range a.values {
		a.values[i] = value
	}
}

// FillIota sets the element at flat offset i to start + i.
func (a *Array4D[T]) FillIota(start T) {
	for i := range a.values {
		a.values[i] = start + T(i)
	}
}

// FillWithMultiples sets the element at flat offset i to i * multiplier.
func (a *Array4D[T]) FillWithMultiples(multiplier T) {
	for i := range a.values {
		a.values[i] = T(i) * multiplier
	}
}

// FillRandom fills the array with independent draws from a normal
// distribution with the given standard deviation, mean 0 and the default
// seed.
func (a *Array4D[T]) FillRandom(stddev T) {
	a.FillRandomSeeded(stddev, 0, DefaultRandomSeed)
}

// FillRandomSeeded fills the array with independent draws from a normal
// distribution with the given standard deviation and mean. The generator is
// local to the call and seeded explicitly, so the same seed always produces
// the same sequence regardless of call history.
func (a *Array4D[T]) FillRandomSeeded(stddev T, mean float64, seed uint64) {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: float64(stddev),
		Src:   rand.NewSource(seed),
	}
	for i := range a.values {
		a.values[i] = T(dist.Rand())
	}
}

// Scale multiplies every element in place by multiplier.
func (a *Array4D[T]) Scale(multiplier T) {
	for i := range a.values {
		a.values[i] *= multiplier
	}
}

// Mul multiplies this array elementwise in place by rhs. Panics unless rhs
// has identical dimensions on all four axes.
func (a *Array4D[T]) Mul(rhs *Array4D[T]) {
	if a.planes != rhs.planes || a.depth != rhs.depth || a.height != rhs.height || a.width != rhs.width {
		panic(fmt.Sprintf("array4d: elementwise mul shape mismatch: (%d, %d, %d, %d) vs (%d, %d, %d, %d)",
			a.planes, a.depth, a.height, a.width, rhs.planes, rhs.depth, rhs.height, rhs.width))
	}
	for i := range a.values {
		a.values[i] *= rhs.values[i]
	}
}

// Index is the 4-tuple coordinate of one element.
type Index struct {
	Plane  int
	Depth  int
	Height int
	Width  int
}

// Each invokes f once per element in canonical order (planes outer, width
// fastest) with the element's four indices and a pointer through which the
// element may be mutated. Traversal is sequential.
func (a *Array4D[T]) Each(f func(p, z, y, x int, v *T)) {
	i := 0
	for p := 0; p < a.planes; p++ {
		for z := 0; z < a.depth; z++ {
			for y := 0; y < a.height; y++ {
				for x := 0; x < a.width; x++ {
					f(p, z, y, x, &a.values[i])
					i++
				}
			}
		}
	}
}

// All returns a restartable sequence of (index, value) pairs in canonical
// order. Values are read at iteration time; mutate through Each or Set
// instead.
func (a *Array4D[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		i := 0
		for p := 0; p < a.planes; p++ {
			for z := 0; z < a.depth; z++ {
				for y := 0; y < a.height; y++ {
					for x := 0; x < a.width; x++ {
						if !yield(Index{p, z, y, x}, a.values[i]) {
							return
						}
						i++
					}
				}
			}
		}
	}
}

// FillWithYX copies value, a (height, width) plane, into every (plane, depth)
// slice of the array. Panics unless value's dimensions equal this array's
// height and width.
func (a *Array4D[T]) FillWithYX(value Plane[T]) {
	if value.Height() != a.height || value.Width() != a.width {
		panic(fmt.Sprintf("array4d: yx fill wants a %dx%d plane, got %dx%d",
			a.height, a.width, value.Height(), value.Width()))
	}
	for p := 0; p < a.planes; p++ {
		for z := 0; z < a.depth; z++ {
			for y := 0; y < a.height; y++ {
				for x := 0; x < a.width; x++ {
					a.values[a.offset(p, z, y, x)] = value.At(y, x)
				}
			}
		}
	}
}

// FillWithPZ broadcasts value, a (planes, depth) array, across every
// (height, width) position: element (p, z, y, x) becomes value.At(p, z).
// Panics unless value's dimensions equal this array's planes and depth.
func (a *Array4D[T]) FillWithPZ(value Plane[T]) {
	if value.Height() != a.planes || value.Width() != a.depth {
		panic(fmt.Sprintf("array4d: pz fill wants a %dx%d plane, got %dx%d",
			a.planes, a.depth, value.Height(), value.Width()))
	}
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			for p := 0; p < a.planes; p++ {
				for z := 0; z < a.depth; z++ {
					a.values[a.offset(p, z, y, x)] = value.At(p, z)
				}
			}
		}
	}
}

// FillWithMinorDimNum sets every element at (p, z, y, x) to p*depth + z,
// independent of y and x, marking which minor-dim matrix encloses it.
func (a *Array4D[T]) FillWithMinorDimNum() {
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			for p := 0; p < a.planes; p++ {
				for z := 0; z < a.depth; z++ {
					a.values[a.offset(p, z, y, x)] = T(p*a.depth + z)
				}
			}
		}
	}
}
