package buffer

import "github.com/rob-gra/midi2/errs"

// Bounded is a fixed-capacity buffer: growth is fallible and never
// allocates past the capacity fixed at construction. It models both a
// library-allocated fixed-array buffer (NewBounded) and a caller-supplied
// borrowed exclusive slice (NewView, whose capacity is cap(backing)).
type Bounded[U Unit] struct {
	data []U // len(data) == capacity, logical length tracked separately
	n    int
}

// NewBounded returns an empty Bounded buffer with the given fixed
// capacity.
func NewBounded[U Unit](capacity int) *Bounded[U] {
	return &Bounded[U]{data: make([]U, capacity)}
}

// NewView wraps a caller-supplied slice as a Bounded buffer without
// copying; its capacity is cap(backing) and its initial logical length is
// len(backing).
func NewView[U Unit](backing []U) *Bounded[U] {
	full := backing[:cap(backing)]
	return &Bounded[U]{data: full, n: len(backing)}
}

func (b *Bounded[U]) Units() []U    { return b.data[:b.n] }
func (b *Bounded[U]) UnitsMut() []U { return b.data[:b.n] }

// Capacity returns the fixed capacity this buffer can never grow past.
func (b *Bounded[U]) Capacity() int { return len(b.data) }

// TryResize grows or shrinks the logical length to n. Growth zero-fills
// the new units. A request beyond Capacity() returns BufferOverflow and
// leaves the buffer's logical length unchanged.
func (b *Bounded[U]) TryResize(n int) error {
	if n > len(b.data) {
		return errs.ErrBufferOverflow
	}
	if n < b.n {
		var zero U
		for i := n; i < b.n; i++ {
			b.data[i] = zero
		}
	} else if n > b.n {
		var zero U
		for i := b.n; i < n; i++ {
			b.data[i] = zero
		}
	}
	b.n = n
	return nil
}
