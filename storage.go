package vecx

import "unsafe"

// rawBuffer owns reserved storage for a fixed number of element slots. It
// never constructs or destroys elements; which slots hold live values is
// tracked solely by the owning Vector. A slot outside the owner's live range
// is dead regardless of its bit pattern and must not be read as an element.
//
// rawBuffer is deliberately not copyable: duplicating possibly-dead slots has
// no meaning at this layer. Duplication happens one level up, element by
// element, through the Lifecycle.
type rawBuffer[T any] struct {
	slots []T // nil when capacity is 0; len(slots) == capacity
}

// newRawBuffer reserves space for capacity elements without constructing any.
// Zero capacity reserves nothing. Requests that cannot possibly fit the
// address space are refused with ErrOutOfMemory; actual heap exhaustion is
// fatal by Go runtime design and cannot be reported here.
func newRawBuffer[T any](capacity int) (rawBuffer[T], error) {
	if capacity == 0 {
		return rawBuffer[T]{}, nil
	}
	if capacity < 0 || !fitsAddressSpace[T](capacity) {
		return rawBuffer[T]{}, ErrOutOfMemory
	}
	return rawBuffer[T]{slots: make([]T, capacity)}, nil
}

func fitsAddressSpace[T any](capacity int) bool {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return true
	}
	return uintptr(capacity) <= ^uintptr(0)/size
}

func (b *rawBuffer[T]) cap() int { return len(b.slots) }

// slot returns the address of slot i. The slot may be dead; the caller is
// responsible for knowing. Out-of-capacity access is a programmer error.
func (b *rawBuffer[T]) slot(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vecx: raw slot index out of range")
	}
	return &b.slots[i]
}

// swap exchanges owned storage between two buffers. O(1), never fails.
func (b *rawBuffer[T]) swap(other *rawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// release drops the block. Every live element must already be destroyed;
// that is the owner's job, not checked here.
func (b *rawBuffer[T]) release() {
	b.slots = nil
}
