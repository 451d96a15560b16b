package vecx_test

import (
	"errors"
	"testing"

	. "github.com/comalice/vecx"
)

var errBoom = errors.New("boom")

// tracked is an element type with observable lifetime. alive marks values
// constructed through the harness; moved-from and destroyed slots drop it.
type tracked struct {
	val   int
	alive bool
}

// harness builds lifecycles whose operations count construction and
// destruction and can be told to fail on the nth clone or default.
type harness struct {
	live        int
	clones      int
	moves       int
	failCloneAt int // 1-based clone call that fails; 0 = never
	failDfltAt  int
}

func (h *harness) make(val int) tracked {
	h.live++
	return tracked{val: val, alive: true}
}

func (h *harness) ctor(val int) Ctor[tracked] {
	return func() (tracked, error) { return h.make(val), nil }
}

func (h *harness) lifecycle(caps Traits) Lifecycle[tracked] {
	return Funcs[tracked]{
		DefaultFn: func() (tracked, error) {
			if h.failDfltAt > 0 && h.live+1 >= h.failDfltAt {
				return tracked{}, errBoom
			}
			h.live++
			return tracked{alive: true}, nil
		},
		CloneFn: func(src *tracked) (tracked, error) {
			h.clones++
			if h.failCloneAt > 0 && h.clones >= h.failCloneAt {
				return tracked{}, errBoom
			}
			h.live++
			return tracked{val: src.val, alive: true}, nil
		},
		MoveFn: func(src *tracked) (tracked, error) {
			h.moves++
			out := *src
			*src = tracked{}
			return out, nil
		},
		DestroyFn: func(slot *tracked) {
			if slot.alive {
				h.live--
			}
			*slot = tracked{}
		},
		Caps: caps,
	}
}

func trackedVec(t *testing.T, h *harness, caps Traits, vals ...int) *Vector[tracked] {
	t.Helper()
	v, err := New(WithLifecycle[tracked](h.lifecycle(caps)), WithCapacity[tracked](len(vals)))
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range vals {
		if err := v.PushBack(h.make(x)); err != nil {
			t.Fatal(err)
		}
	}
	return v
}

func wantVals(t *testing.T, v *Vector[tracked], want []int) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", v.Len(), len(want))
	}
	for i, w := range want {
		if got := v.At(i); got.val != w || !got.alive {
			t.Fatalf("At(%d) = {%d %v}, want live %d", i, got.val, got.alive, w)
		}
	}
}

func TestRelocationPrefersMove(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable|NoFailMove, 1)
	for i := 2; i <= 16; i++ {
		if err := v.PushBack(h.make(i)); err != nil {
			t.Fatal(err)
		}
	}
	if h.clones != 0 {
		t.Errorf("growth cloned %d elements despite NoFailMove", h.clones)
	}
	if h.moves == 0 {
		t.Error("growth never moved an element")
	}
}

func TestRelocationFallsBackToClone(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable, 1) // move may fail: growth must clone
	for i := 2; i <= 8; i++ {
		if err := v.PushBack(h.make(i)); err != nil {
			t.Fatal(err)
		}
	}
	if h.clones == 0 {
		t.Error("growth never cloned despite fallible move")
	}
}

func TestRelocationMovesWhenNotCopyable(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, NoFailMove, 1) // not copyable: move is the only option
	for i := 2; i <= 8; i++ {
		if err := v.PushBack(h.make(i)); err != nil {
			t.Fatal(err)
		}
	}
	if h.clones != 0 {
		t.Errorf("growth cloned %d elements of a non-copyable type", h.clones)
	}
}

func TestReserveCloneFailureLeavesOldState(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable, 1, 2, 3)
	h.failCloneAt = h.clones + 2 // fail on the second relocated element

	err := v.Reserve(64)
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	wantVals(t, v, []int{1, 2, 3})
	if v.Cap() != 3 {
		t.Errorf("Cap = %d, want unchanged 3", v.Cap())
	}
	if h.live != v.Len() {
		t.Errorf("live accounting = %d, want %d (unwound side buffer leaked)", h.live, v.Len())
	}
}

func TestPushBackCtorFailureLeavesVectorUntouched(t *testing.T) {
	h := &harness{}
	fail := func() (tracked, error) { return tracked{}, errBoom }

	t.Run("without realloc", func(t *testing.T) {
		v := trackedVec(t, h, Copyable|NoFailMove, 1)
		v.Reserve(4)
		if _, err := v.EmplaceBack(fail); !errors.Is(err, errBoom) {
			t.Fatalf("err = %v, want errBoom", err)
		}
		wantVals(t, v, []int{1})
	})
	t.Run("with realloc", func(t *testing.T) {
		v := trackedVec(t, h, Copyable|NoFailMove, 1)
		capBefore := v.Cap()
		if _, err := v.EmplaceBack(fail); !errors.Is(err, errBoom) {
			t.Fatalf("err = %v, want errBoom", err)
		}
		wantVals(t, v, []int{1})
		if v.Cap() != capBefore {
			t.Errorf("failed push changed Cap %d -> %d", capBefore, v.Cap())
		}
	})
}

func TestPushBackGrowthCloneFailure(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable, 1, 2) // full: next push reallocates by clone
	h.failCloneAt = h.clones + 1

	err := v.PushBack(h.make(9))
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	wantVals(t, v, []int{1, 2})
	// The constructed new element and the side buffer were unwound.
	if h.live != v.Len() {
		t.Errorf("live accounting = %d, want %d", h.live, v.Len())
	}
}

func TestInsertShiftCloneFailureDropsTailDuplicate(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable, 1, 2, 3, 4)
	v.Reserve(8) // in-place insert path
	h.failCloneAt = h.clones + 2 // second shift copy fails

	_, err := v.Emplace(0, h.ctor(99))
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	if v.Len() != 4 {
		t.Errorf("Len = %d, want pre-insert 4", v.Len())
	}
	// The duplicated tail element beyond Len was destroyed: accounting of
	// live elements must match what the vector still owns. Already-shifted
	// slots may hold shifted values; that is the documented weaker
	// guarantee of the in-place path.
	if h.live != v.Len() {
		t.Errorf("live accounting = %d, want %d", h.live, v.Len())
	}
}

func TestInsertGrowCloneFailure(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable, 1, 2, 3)
	h.failCloneAt = h.clones + 3 // fail in the second relocated range

	_, err := v.Emplace(1, h.ctor(99))
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	wantVals(t, v, []int{1, 2, 3})
	if v.Cap() != 3 {
		t.Errorf("Cap = %d, want unchanged 3", v.Cap())
	}
	if h.live != v.Len() {
		t.Errorf("live accounting = %d, want %d", h.live, v.Len())
	}
}

func TestCloneElementFailureUnwinds(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable, 1, 2, 3)
	h.failCloneAt = h.clones + 3

	if _, err := v.Clone(); !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	wantVals(t, v, []int{1, 2, 3})
	if h.live != v.Len() {
		t.Errorf("live accounting = %d, want %d", h.live, v.Len())
	}
}

func TestCopyFromAllocatingPathIsStrong(t *testing.T) {
	h := &harness{}
	dst := trackedVec(t, h, Copyable, 7)
	src := trackedVec(t, h, Copyable, 1, 2, 3, 4)
	h.failCloneAt = h.clones + 2

	err := dst.CopyFrom(src)
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	wantVals(t, dst, []int{7})
	wantVals(t, src, []int{1, 2, 3, 4})
	if h.live != dst.Len()+src.Len() {
		t.Errorf("live accounting = %d, want %d", h.live, dst.Len()+src.Len())
	}
}

func TestCopyFromReusePathUnwindsTail(t *testing.T) {
	h := &harness{}
	dst := trackedVec(t, h, Copyable, 7, 8)
	dst.Reserve(8)
	src := trackedVec(t, h, Copyable, 1, 2, 3, 4)
	h.failCloneAt = h.clones + 4 // fails constructing the second new tail element

	err := dst.CopyFrom(src)
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	// Weaker guarantee: the prefix was already overwritten, but size is
	// unchanged and the partially constructed tail is destroyed.
	if dst.Len() != 2 {
		t.Errorf("Len = %d, want 2", dst.Len())
	}
	if h.live != dst.Len()+src.Len() {
		t.Errorf("live accounting = %d, want %d", h.live, dst.Len()+src.Len())
	}
}

func TestSizedConstructionFailureUnwinds(t *testing.T) {
	h := &harness{failDfltAt: 3}
	_, err := New(
		WithLifecycle[tracked](h.lifecycle(Copyable|NoFailMove)),
		WithLen[tracked](5),
	)
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	if h.live != 0 {
		t.Errorf("live accounting = %d, want 0 after unwind", h.live)
	}
}

func TestResizeGrowFailureUnwindsTail(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable|NoFailMove, 1, 2)
	h.failDfltAt = h.live + 2

	err := v.Resize(6)
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	wantVals(t, v, []int{1, 2})
	if h.live != v.Len() {
		t.Errorf("live accounting = %d, want %d", h.live, v.Len())
	}
}

func TestDestroyBalancesLiveness(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, Copyable|NoFailMove, 1, 2, 3, 4, 5)
	v.Insert(2, h.make(9))
	v.Erase(0)
	v.Resize(3)
	v.Destroy()
	if h.live != 0 {
		t.Errorf("live accounting = %d, want 0 after Destroy", h.live)
	}
}

func TestNotCopyableRefusals(t *testing.T) {
	h := &harness{}
	v := trackedVec(t, h, NoFailMove, 1)
	if _, err := v.Clone(); !errors.Is(err, ErrNotCopyable) {
		t.Errorf("Clone err = %v, want ErrNotCopyable", err)
	}
	x := h.make(2)
	if err := v.PushBackCopy(&x); !errors.Is(err, ErrNotCopyable) {
		t.Errorf("PushBackCopy err = %v, want ErrNotCopyable", err)
	}
	if _, err := v.InsertCopy(0, &x); !errors.Is(err, ErrNotCopyable) {
		t.Errorf("InsertCopy err = %v, want ErrNotCopyable", err)
	}
}
