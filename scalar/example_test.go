package scalar_test

import (
	"fmt"

	"github.com/cwbudde/algo-motion/scalar"
)

func ExampleSafeDivide() {
	fmt.Println(scalar.SafeDivide(1, 4, -1))
	fmt.Println(scalar.SafeDivide(1, 0, -1))

	// Output:
	// 0.25
	// -1
}

func ExampleLerpClamp() {
	fmt.Println(scalar.Lerp(10, 20, 1.5))
	fmt.Println(scalar.LerpClamp(10, 20, 1.5))

	// Output:
	// 25
	// 20
}
