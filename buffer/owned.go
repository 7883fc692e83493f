package buffer

// Owned is a heap-backed, infallibly resizable buffer: a message wrapper
// built over one exclusively owns it, and Clone copies it (value
// semantics: copying an Owned copies its slice header only, not the
// backing array, unless the caller calls Clone).
type Owned[U Unit] struct {
	data []U
}

// New returns an empty, resizable Owned buffer, the default-constructible
// buffer kind `new()` message constructors are built over.
func New[U Unit]() *Owned[U] {
	return &Owned[U]{}
}

// NewOwnedSize returns a zero-filled Owned buffer of length n.
func NewOwnedSize[U Unit](n int) *Owned[U] {
	return &Owned[U]{data: make([]U, n)}
}

// FromUnits wraps an existing slice as an Owned buffer without copying.
func FromUnits[U Unit](data []U) *Owned[U] {
	return &Owned[U]{data: data}
}

func (o *Owned[U]) Units() []U    { return o.data }
func (o *Owned[U]) UnitsMut() []U { return o.data }

// Resize grows or shrinks the buffer in place. Growth zero-fills the new
// units; shrinking truncates (the freed units remain allocated but are no
// longer part of the logical contents).
func (o *Owned[U]) Resize(n int) {
	old := len(o.data)
	switch {
	case n <= old:
		// Zero the freed suffix (still reachable via cap) so that a
		// later re-grow does not resurrect stale data.
		full := o.data[:old]
		var zero U
		for i := n; i < old; i++ {
			full[i] = zero
		}
		o.data = o.data[:n]
	case n <= cap(o.data):
		grown := o.data[:n]
		var zero U
		for i := old; i < n; i++ {
			grown[i] = zero
		}
		o.data = grown
	default:
		grown := make([]U, n)
		copy(grown, o.data)
		o.data = grown
	}
}

// Clone returns an independent copy of the buffer's current contents.
func (o *Owned[U]) Clone() *Owned[U] {
	cp := make([]U, len(o.data))
	copy(cp, o.data)
	return &Owned[U]{data: cp}
}
