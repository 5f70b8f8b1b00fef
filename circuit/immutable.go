package circuit

// ImmutableCircuit is a read-only, freely-shareable snapshot of a circuit.
// Many holders may reference the same storage; it is never mutated through
// any immutable handle, so concurrent readers need no synchronization.
type ImmutableCircuit struct {
	st *storage
}

func (c *ImmutableCircuit) QubitCount() int { return c.st.nbQubits }
func (c *ImmutableCircuit) CbitCount() int  { return c.st.nbCbits }
func (c *ImmutableCircuit) GateCount() int  { return len(c.st.gates) }
func (c *ImmutableCircuit) Depth() int      { return c.st.depth() }

// Gates returns the ordered gate sequence without copying. The returned slice
// must be treated as read-only.
func (c *ImmutableCircuit) Gates() []Gate { return c.st.gates }

func (c *ImmutableCircuit) storageRef() *storage { return c.st }

// Freeze is the identity: an immutable circuit is already frozen, so the
// receiver itself is returned.
func (c *ImmutableCircuit) Freeze() *ImmutableCircuit { return c }

// MutableCopy deep-copies the gate sequence and counts into a brand-new,
// independently-owned mutable circuit. Mutating the copy never affects this
// snapshot.
func (c *ImmutableCircuit) MutableCopy() *Circuit {
	return &Circuit{st: c.st.clone()}
}

// Combine returns a new mutable circuit equal to a deep copy of this one with
// the gates appended, validated against this circuit's counts. The receiver
// is never mutated.
func (c *ImmutableCircuit) Combine(gates []Gate) (*Circuit, error) {
	return combine(c, gates)
}

// CombineCircuit is Combine over another circuit's gate sequence. Gate indices
// are taken verbatim; src's own counts are not cross-checked.
func (c *ImmutableCircuit) CombineCircuit(src Reader) (*Circuit, error) {
	return combine(c, src.Gates())
}

// Equal reports structural equality with another circuit of either form.
func (c *ImmutableCircuit) Equal(other Reader) bool {
	return equalReaders(c, other)
}

// Inverse returns a new immutable circuit applying the adjoint of each gate in
// reverse order. It fails with ErrGateNotInvertible if the circuit contains a
// measurement.
func (c *ImmutableCircuit) Inverse() (*ImmutableCircuit, error) {
	st, err := inverseStorage(c.st)
	if err != nil {
		return nil, err
	}
	return &ImmutableCircuit{st: st}, nil
}
