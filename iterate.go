package vecx

import "iter"

// All ranges over index/element pairs of the live range [0, Len()).
// Mutating the vector during iteration invalidates the walk.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.slot(i)) {
				return
			}
		}
	}
}

// Values ranges over the live elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.slot(i)) {
				return
			}
		}
	}
}

// AppendTo appends the live elements to dst and returns it. Handy for test
// assertions and snapshots.
func (v *Vector[T]) AppendTo(dst []T) []T {
	for i := 0; i < v.size; i++ {
		dst = append(dst, *v.data.slot(i))
	}
	return dst
}
