package vecx

// Traits is the capability bitset a Lifecycle declares for its element type.
type Traits uint8

const (
	// Copyable means Clone is implemented and may be used.
	Copyable Traits = 1 << iota
	// NoFailMove promises that Move never returns an error. Relocation during
	// growth moves instead of cloning when this (or !Copyable) holds.
	NoFailMove
)

// Has reports whether all flags in f are set.
func (t Traits) Has(f Traits) bool { return t&f == f }

// Lifecycle is the element type's capability set: how to construct, copy,
// transfer, and destroy a value. The container treats element failures as
// opaque and surfaces them wrapped, so callers can errors.Is/As against their
// own types.
//
// Contract:
//   - Move must leave *src dead but safe to Destroy.
//   - Destroy must accept moved-from values and must clear the slot of any
//     references, so dead capacity never pins memory.
//   - NoFailMove must be honest: a failing Move during relocation leaves the
//     old block half-transferred, which is exactly what the trait exists to
//     rule out.
//
// Two vectors exchanging elements (Swap, MoveFrom, CopyFrom) must use
// equivalent lifecycles for the element type.
type Lifecycle[T any] interface {
	Default() (T, error)
	Clone(src *T) (T, error)
	Move(src *T) (T, error)
	Destroy(slot *T)
	Traits() Traits
}

// Plain returns the lifecycle for ordinary value types: zero-value default,
// bitwise clone and move, zeroing destroy. It is Copyable and NoFailMove.
func Plain[T any]() Lifecycle[T] { return plain[T]{} }

type plain[T any] struct{}

func (plain[T]) Default() (T, error) {
	var zero T
	return zero, nil
}

func (plain[T]) Clone(src *T) (T, error) { return *src, nil }

func (plain[T]) Move(src *T) (T, error) {
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func (plain[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

func (plain[T]) Traits() Traits { return Copyable | NoFailMove }

// Funcs adapts a set of functions into a Lifecycle. Nil fields fall back to
// the Plain behavior for that operation, so a custom lifecycle only spells
// out what differs.
type Funcs[T any] struct {
	DefaultFn func() (T, error)
	CloneFn   func(src *T) (T, error)
	MoveFn    func(src *T) (T, error)
	DestroyFn func(slot *T)
	Caps      Traits
}

func (f Funcs[T]) Default() (T, error) {
	if f.DefaultFn != nil {
		return f.DefaultFn()
	}
	return plain[T]{}.Default()
}

func (f Funcs[T]) Clone(src *T) (T, error) {
	if f.CloneFn != nil {
		return f.CloneFn(src)
	}
	return plain[T]{}.Clone(src)
}

func (f Funcs[T]) Move(src *T) (T, error) {
	if f.MoveFn != nil {
		return f.MoveFn(src)
	}
	return plain[T]{}.Move(src)
}

func (f Funcs[T]) Destroy(slot *T) {
	if f.DestroyFn != nil {
		f.DestroyFn(slot)
		return
	}
	plain[T]{}.Destroy(slot)
}

func (f Funcs[T]) Traits() Traits { return f.Caps }
