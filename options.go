// Options for configuring Vector construction.
package vecx

// Option configures a Vector under construction.
type Option[T any] func(*settings[T])

type settings[T any] struct {
	lc       Lifecycle[T]
	length   int
	capacity int
}

// WithLifecycle sets the element lifecycle. Defaults to Plain.
func WithLifecycle[T any](lc Lifecycle[T]) Option[T] {
	return func(s *settings[T]) {
		s.lc = lc
	}
}

// WithLen sized-constructs the vector: exactly n slots are allocated and n
// elements are default-constructed into them.
func WithLen[T any](n int) Option[T] {
	return func(s *settings[T]) {
		s.length = n
	}
}

// WithCapacity reserves slots up front without constructing elements.
func WithCapacity[T any](n int) Option[T] {
	return func(s *settings[T]) {
		s.capacity = n
	}
}
