// Package vecx implements a contiguous, growable sequence container over
// manually managed element storage.
//
// Unlike a plain Go slice, a Vector separates the memory it has reserved
// (capacity) from the elements that are actually alive (size), and routes
// every construction, copy, transfer, and destruction of an element through
// a Lifecycle. That makes it usable for element types whose copy or
// construction can fail, and for element types that own resources which must
// be released deterministically.
//
// # Layers
//
//   - rawBuffer: an owned region of element slots. It never constructs or
//     destroys elements; slots outside the owner's live range are dead no
//     matter what bits they hold.
//   - Vector: owns one rawBuffer plus a live-element count and implements
//     all mutation on top of the element type's Lifecycle.
//
// # Failure safety
//
// Mutations that need more capacity build the new state in a side buffer and
// swap it in only after every element operation has succeeded. If an element
// clone or constructor fails partway, everything built in the side buffer is
// destroyed and the buffer released before the error is returned, so the
// caller observes either the old state or the new one, never a mix. The only
// documented exceptions are the allocation-free reuse path of CopyFrom and
// the in-place shift of Insert, which mutate live slots directly.
//
// During relocation the Vector moves elements when the Lifecycle promises
// NoFailMove (or the type is not Copyable), and clones them otherwise, so a
// failing clone can never leave the old block half-destroyed.
//
// # Example Usage
//
//	v, _ := vecx.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 99) // [1 99 2]
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// The zero Lifecycle for ordinary value types is Plain; pass a custom one
// with WithLifecycle when elements need real construction or destruction.
//
// Vectors are not safe for concurrent mutation; callers synchronize if a
// vector is shared. Out-of-range indexes, popping an empty vector, and
// inserting past Len() are programmer errors and panic.
package vecx
