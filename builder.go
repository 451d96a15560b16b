package vecx

import "iter"

// Of builds a vector holding the given values in order, taking ownership of
// them. Capacity equals the value count exactly.
func Of[T any](vals ...T) (*Vector[T], error) {
	v, err := New(WithCapacity[T](len(vals)))
	if err != nil {
		return nil, err
	}
	for i := range vals {
		if err := v.PushBack(vals[i]); err != nil {
			v.Destroy()
			return nil, err
		}
	}
	return v, nil
}

// Collect drains an iterator into a new vector.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for val := range seq {
		if err := v.PushBack(val); err != nil {
			v.Destroy()
			return nil, err
		}
	}
	return v, nil
}
