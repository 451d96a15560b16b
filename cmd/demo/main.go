package main

import (
	"fmt"

	"github.com/comalice/vecx"
)

func main() {
	v, err := vecx.New[int]()
	if err != nil {
		panic(err)
	}

	for _, x := range []int{1, 2, 3} {
		if err := v.PushBack(x); err != nil {
			panic(err)
		}
		fmt.Printf("pushed %d: len=%d cap=%d\n", x, v.Len(), v.Cap())
	}

	if _, err := v.Insert(1, 99); err != nil {
		panic(err)
	}
	fmt.Println("after insert at 1:", v.AppendTo(nil))

	if _, err := v.Erase(0); err != nil {
		panic(err)
	}
	fmt.Println("after erase at 0:", v.AppendTo(nil))

	v.PopBack()
	fmt.Println("after pop:", v.AppendTo(nil))

	clone, err := v.Clone()
	if err != nil {
		panic(err)
	}
	clone.Set(0, -1)
	fmt.Printf("clone mutated: clone=%v original=%v\n", clone.AppendTo(nil), v.AppendTo(nil))
}
