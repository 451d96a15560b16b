package vecx_test

import (
	"testing"

	. "github.com/comalice/vecx"
)

func TestOfEmpty(t *testing.T) {
	v, err := Of[int]()
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("Len=%d Cap=%d, want 0 0", v.Len(), v.Cap())
	}
}

func TestOfExactFit(t *testing.T) {
	v, err := Of(1, 2, 3, 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 5 {
		t.Errorf("Cap = %d, want exact 5", v.Cap())
	}
}

func TestCollectWithOptions(t *testing.T) {
	src, _ := Of(1, 2)
	v, err := Collect(src.Values(), WithCapacity[int](16))
	if err != nil {
		t.Fatal(err)
	}
	wantContents(t, v, []int{1, 2})
	if v.Cap() != 16 {
		t.Errorf("Cap = %d, want preallocated 16", v.Cap())
	}
}
