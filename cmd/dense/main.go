// Package main provides the dense command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/dense-ml/dense/array4d"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("dense %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("dense - rank-4 dense array toolkit")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Print a small batched matrix multiply")
}

// demo multiplies a batch of iota-filled matrices by the identity and prints
// both operands and the result.
func demo() {
	lhs := array4d.New[float32](1, 2, 2, 2)
	lhs.FillIota(1)

	rhs := array4d.NewFromNested([][][][]float32{{
		{{1, 0}, {0, 1}},
		{{1, 0}, {0, 1}},
	}})

	fmt.Println("lhs:", lhs)
	fmt.Println("rhs:", rhs)
	fmt.Println("lhs x rhs:", array4d.BatchMatMul(lhs, rhs))
}
