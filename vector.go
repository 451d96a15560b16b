package vecx

import (
	"errors"
	"fmt"
)

// Ctor constructs an element in place of constructor arguments. It runs
// before any existing element is disturbed, so it may safely read the
// vector it is being inserted into.
type Ctor[T any] func() (T, error)

// Vector is a contiguous growable sequence. Elements live at indexes
// [0, Len()); slots [Len(), Cap()) are reserved but dead. See the package
// documentation for the failure-safety rules.
type Vector[T any] struct {
	data rawBuffer[T]
	size int
	lc   Lifecycle[T]

	// relocByMove is resolved once from the lifecycle traits: relocate by
	// move iff move cannot fail or the type cannot be cloned at all.
	relocByMove bool
}

// New builds a vector. With no options it is empty, allocates nothing, and
// cannot fail. WithLen default-constructs elements; if any construction
// fails, everything built so far is destroyed and the storage released
// before the error is returned.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	s := settings[T]{lc: Plain[T]()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.lc == nil {
		return nil, errors.New("nil lifecycle")
	}
	if s.length < 0 || s.capacity < 0 {
		return nil, errors.New("negative length or capacity")
	}

	v := newEmpty(s.lc)
	capacity := max(s.capacity, s.length)
	if capacity > 0 {
		buf, err := newRawBuffer[T](capacity)
		if err != nil {
			return nil, err
		}
		v.data = buf
	}
	for i := 0; i < s.length; i++ {
		elem, err := s.lc.Default()
		if err != nil {
			v.destroyIn(&v.data, 0, i)
			v.data.release()
			return nil, fmt.Errorf("default-construct element %d: %w", i, err)
		}
		*v.data.slot(i) = elem
	}
	v.size = s.length
	return v, nil
}

func newEmpty[T any](lc Lifecycle[T]) *Vector[T] {
	tr := lc.Traits()
	return &Vector[T]{
		lc:          lc,
		relocByMove: tr.Has(NoFailMove) || !tr.Has(Copyable),
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of reserved slots.
func (v *Vector[T]) Cap() int { return v.data.cap() }

// At returns the element at index i. Panics when i is out of range.
func (v *Vector[T]) At(i int) T {
	v.check(i)
	return *v.data.slot(i)
}

// Ptr returns the address of the element at index i. The address is
// invalidated by any mutation that relocates storage. Panics out of range.
func (v *Vector[T]) Ptr(i int) *T {
	v.check(i)
	return v.data.slot(i)
}

// Set replaces the element at index i with val, destroying the previous
// value. The vector takes ownership of val. Panics when i is out of range.
func (v *Vector[T]) Set(i int, val T) {
	v.check(i)
	slot := v.data.slot(i)
	v.lc.Destroy(slot)
	*slot = val
}

func (v *Vector[T]) check(i int) {
	if i < 0 || i >= v.size {
		panic("vecx: index out of range")
	}
}

// Reserve grows capacity to at least n slots. It is a no-op when n does not
// exceed the current capacity; otherwise it allocates exactly n slots,
// relocates the live elements in ascending index order, destroys the old
// ones, and swaps storage. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.cap() {
		return nil
	}
	buf, err := newRawBuffer[T](n)
	if err != nil {
		return err
	}
	if err := v.relocate(&buf, 0, 0, v.size); err != nil {
		buf.release()
		return err
	}
	v.commit(&buf)
	return nil
}

// Resize sets the live-element count to n: shrinking destroys the tail,
// growing reserves capacity and default-constructs the new elements. A
// construction failure unwinds the partially built tail; size is unchanged
// though capacity may already have grown.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vecx: negative size")
	}
	if n < v.size {
		v.destroyIn(&v.data, n, v.size)
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		elem, err := v.lc.Default()
		if err != nil {
			v.destroyIn(&v.data, v.size, i)
			return fmt.Errorf("default-construct element %d: %w", i, err)
		}
		*v.data.slot(i) = elem
	}
	v.size = n
	return nil
}

// PushBack appends val, taking ownership of it. Amortized O(1); growth
// doubles capacity (1 when growing from empty).
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.EmplaceBack(func() (T, error) { return val, nil })
	return err
}

// PushBackCopy appends a lifecycle-made copy of *src. src may point into
// this vector.
func (v *Vector[T]) PushBackCopy(src *T) error {
	if !v.lc.Traits().Has(Copyable) {
		return ErrNotCopyable
	}
	_, err := v.EmplaceBack(func() (T, error) { return v.lc.Clone(src) })
	return err
}

// EmplaceBack constructs a new element at the end and returns its address.
// When growth is needed the element is constructed into the new block before
// anything is relocated, so a constructor failure leaves the vector
// untouched. The returned address is valid until the next relocation.
func (v *Vector[T]) EmplaceBack(ctor Ctor[T]) (*T, error) {
	if v.size < v.data.cap() {
		elem, err := ctor()
		if err != nil {
			return nil, fmt.Errorf("construct element: %w", err)
		}
		slot := v.data.slot(v.size)
		*slot = elem
		v.size++
		return slot, nil
	}

	buf, err := newRawBuffer[T](v.grownCapacity())
	if err != nil {
		return nil, err
	}
	elem, err := ctor()
	if err != nil {
		buf.release()
		return nil, fmt.Errorf("construct element: %w", err)
	}
	*buf.slot(v.size) = elem
	if err := v.relocate(&buf, 0, 0, v.size); err != nil {
		v.lc.Destroy(buf.slot(v.size))
		buf.release()
		return nil, err
	}
	v.commit(&buf)
	slot := v.data.slot(v.size)
	v.size++
	return slot, nil
}

// Insert places val at index i, taking ownership of it, and returns the
// element's index. i may equal Len() to append. Elements at indexes >= i
// shift one slot toward the tail.
func (v *Vector[T]) Insert(i int, val T) (int, error) {
	return v.Emplace(i, func() (T, error) { return val, nil })
}

// InsertCopy places a lifecycle-made copy of *src at index i. src may point
// into this vector: the copy is taken before any element moves.
func (v *Vector[T]) InsertCopy(i int, src *T) (int, error) {
	if !v.lc.Traits().Has(Copyable) {
		return 0, ErrNotCopyable
	}
	return v.Emplace(i, func() (T, error) { return v.lc.Clone(src) })
}

// Emplace constructs a new element at index i and returns its index.
//
// Without reallocation the new value is materialized into a temporary before
// any existing element moves (the constructor may read the vector), the last
// element is moved one past the end to open a hole, the range [i, Len()-1)
// shifts one slot tailward, and the temporary moves into slot i. If a shift
// or the final move fails, the duplicated tail element is destroyed before
// the error surfaces and the size is unchanged; already-shifted slots keep
// their shifted values (documented weaker guarantee, as for CopyFrom reuse).
//
// With reallocation the new element is constructed directly at its final
// index in the new block, both old ranges are relocated around it, and the
// block is swapped in only when everything succeeded.
func (v *Vector[T]) Emplace(i int, ctor Ctor[T]) (int, error) {
	if i < 0 || i > v.size {
		panic("vecx: insert position out of range")
	}

	if v.size == v.data.cap() {
		return i, v.emplaceGrow(i, ctor)
	}
	if i == v.size {
		_, err := v.EmplaceBack(ctor)
		return i, err
	}

	tmp, err := ctor()
	if err != nil {
		return 0, fmt.Errorf("construct element: %w", err)
	}
	last, err := v.lc.Move(v.data.slot(v.size - 1))
	if err != nil {
		v.lc.Destroy(&tmp)
		return 0, fmt.Errorf("move tail element: %w", err)
	}
	*v.data.slot(v.size) = last

	for j := v.size - 1; j > i; j-- {
		if err := v.shiftAssign(v.data.slot(j), v.data.slot(j-1)); err != nil {
			v.lc.Destroy(v.data.slot(v.size))
			v.lc.Destroy(&tmp)
			return 0, fmt.Errorf("shift element %d: %w", j-1, err)
		}
	}
	if err := v.moveAssign(v.data.slot(i), &tmp); err != nil {
		v.lc.Destroy(v.data.slot(v.size))
		v.lc.Destroy(&tmp)
		return 0, fmt.Errorf("place element %d: %w", i, err)
	}
	v.size++
	return i, nil
}

func (v *Vector[T]) emplaceGrow(i int, ctor Ctor[T]) error {
	buf, err := newRawBuffer[T](v.grownCapacity())
	if err != nil {
		return err
	}
	elem, err := ctor()
	if err != nil {
		buf.release()
		return fmt.Errorf("construct element: %w", err)
	}
	*buf.slot(i) = elem

	if err := v.relocate(&buf, 0, 0, i); err != nil {
		v.lc.Destroy(buf.slot(i))
		buf.release()
		return err
	}
	if err := v.relocate(&buf, i+1, i, v.size-i); err != nil {
		v.destroyIn(&buf, 0, i+1)
		buf.release()
		return err
	}
	v.commit(&buf)
	v.size++
	return nil
}

// Erase removes the element at index i by move-assigning [i+1, Len()) one
// slot frontward and destroying the vacated tail. Never reallocates. The
// returned index addresses the element that followed the erased one (== i,
// or Len() when the last element was erased).
func (v *Vector[T]) Erase(i int) (int, error) {
	v.check(i)
	for j := i + 1; j < v.size; j++ {
		if err := v.moveAssign(v.data.slot(j-1), v.data.slot(j)); err != nil {
			return 0, fmt.Errorf("shift element %d: %w", j, err)
		}
	}
	v.PopBack()
	return i, nil
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vecx: pop on empty vector")
	}
	v.lc.Destroy(v.data.slot(v.size - 1))
	v.size--
}

// Clone deep-copies the vector. The copy's capacity equals its size exactly:
// copies favor compactness over spare growth room. A failing element clone
// unwinds everything built so far.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.lc.Traits().Has(Copyable) {
		return nil, ErrNotCopyable
	}
	out := newEmpty(v.lc)
	if v.size == 0 {
		return out, nil
	}
	buf, err := newRawBuffer[T](v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		elem, err := v.lc.Clone(v.data.slot(i))
		if err != nil {
			v.destroyIn(&buf, 0, i)
			buf.release()
			return nil, fmt.Errorf("clone element %d: %w", i, err)
		}
		*buf.slot(i) = elem
	}
	out.data = buf
	out.size = v.size
	return out, nil
}

// Move transfers the contents into a new vector in O(1). The source stays
// valid and reusable: it is left empty with unspecified capacity.
func (v *Vector[T]) Move() *Vector[T] {
	out := newEmpty(v.lc)
	out.data.swap(&v.data)
	out.size = v.size
	v.size = 0
	return out
}

// CopyFrom is copy assignment from rhs.
//
// When current capacity cannot hold rhs's elements, a full temporary copy is
// built and swapped in: on failure the vector is unchanged (strong
// guarantee). Otherwise existing slots are reused in place without
// allocating: min(Len, rhs.Len) elements are copy-assigned over live slots,
// then the excess is destroyed or the remainder clone-constructed. The reuse
// path mutates live slots directly, so a failing element copy leaves the
// already-assigned prefix in place (size is unchanged).
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if !v.lc.Traits().Has(Copyable) {
		return ErrNotCopyable
	}

	if v.data.cap() < rhs.size {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Destroy()
		return nil
	}

	for i := 0; i < min(v.size, rhs.size); i++ {
		if err := v.cloneAssign(v.data.slot(i), rhs.data.slot(i)); err != nil {
			return fmt.Errorf("copy-assign element %d: %w", i, err)
		}
	}
	switch {
	case rhs.size < v.size:
		v.destroyIn(&v.data, rhs.size, v.size)
	case rhs.size > v.size:
		for i := v.size; i < rhs.size; i++ {
			elem, err := v.lc.Clone(rhs.data.slot(i))
			if err != nil {
				v.destroyIn(&v.data, v.size, i)
				return fmt.Errorf("clone element %d: %w", i, err)
			}
			*v.data.slot(i) = elem
		}
	}
	v.size = rhs.size
	return nil
}

// MoveFrom is move assignment: v takes rhs's contents and rhs is left
// holding what v previously owned. O(1), never fails.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Swap(rhs)
}

// Swap exchanges storage and size with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Destroy destroys every live element and releases the storage. The vector
// remains valid and reusable (empty, zero capacity). Required when elements
// own resources; optional for Plain lifecycles, where the garbage collector
// reclaims the storage anyway.
func (v *Vector[T]) Destroy() {
	v.destroyIn(&v.data, 0, v.size)
	v.size = 0
	v.data.release()
}

//
// Internal machinery
//

func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}

// relocate transfers count elements from v's slots starting at srcOff into
// dst starting at dstOff, ascending, by move or clone per relocByMove. On
// failure it destroys the elements it constructed in dst and reports; slots
// it did not construct are the caller's to clean.
func (v *Vector[T]) relocate(dst *rawBuffer[T], dstOff, srcOff, count int) error {
	for k := 0; k < count; k++ {
		var elem T
		var err error
		if v.relocByMove {
			elem, err = v.lc.Move(v.data.slot(srcOff + k))
		} else {
			elem, err = v.lc.Clone(v.data.slot(srcOff + k))
		}
		if err != nil {
			v.destroyIn(dst, dstOff, dstOff+k)
			return fmt.Errorf("relocate element %d: %w", srcOff+k, err)
		}
		*dst.slot(dstOff + k) = elem
	}
	return nil
}

// commit destroys the old live elements and swaps buf in. Only called once
// every element operation against buf has succeeded.
func (v *Vector[T]) commit(buf *rawBuffer[T]) {
	v.destroyIn(&v.data, 0, v.size)
	v.data.swap(buf)
	buf.release()
}

func (v *Vector[T]) destroyIn(b *rawBuffer[T], from, to int) {
	for i := from; i < to; i++ {
		v.lc.Destroy(b.slot(i))
	}
}

// moveAssign transfers *src into the live slot *dst, destroying dst's
// previous value. The replacement is produced before the old value is
// destroyed, so a failed move leaves *dst intact.
func (v *Vector[T]) moveAssign(dst, src *T) error {
	elem, err := v.lc.Move(src)
	if err != nil {
		return err
	}
	v.lc.Destroy(dst)
	*dst = elem
	return nil
}

func (v *Vector[T]) cloneAssign(dst, src *T) error {
	elem, err := v.lc.Clone(src)
	if err != nil {
		return err
	}
	v.lc.Destroy(dst)
	*dst = elem
	return nil
}

// shiftAssign is the assignment used for in-place shifts: move when the
// lifecycle relocates by move, clone otherwise.
func (v *Vector[T]) shiftAssign(dst, src *T) error {
	if v.relocByMove {
		return v.moveAssign(dst, src)
	}
	return v.cloneAssign(dst, src)
}
