package vecx

import "errors"

var (
	// ErrOutOfMemory reports a raw-storage request that cannot be satisfied.
	ErrOutOfMemory = errors.New("raw allocation refused")
	// ErrNotCopyable reports a copy operation on a lifecycle without Copyable.
	ErrNotCopyable = errors.New("element type is not copyable")
)
