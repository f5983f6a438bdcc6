package tupl_test

import (
	"fmt"

	"github.com/Dragoteryx/tupl"
)

func ExampleNewT2() {
	pair := tupl.NewT2("answer", 42)
	fmt.Println(pair)
	// Output: (answer, 42)
}

func ExampleAppend2() {
	pair := tupl.NewT2("x", 1)
	fmt.Println(tupl.Append2(pair, true))
	// Output: (x, 1, true)
}

func ExampleT3_TruncateHead() {
	head, rest := tupl.NewT3(1, 2, 3).TruncateHead()
	fmt.Println(head, rest)
	// Output: 1 (2, 3)
}

func ExampleT2_HeadPtr() {
	pair := tupl.NewT2(1, "b")
	*pair.HeadPtr() = 100
	fmt.Println(pair)
	// Output: (100, b)
}
