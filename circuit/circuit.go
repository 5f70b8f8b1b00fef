package circuit

import (
	"fmt"

	"github.com/quarclab/quarc/logger"
	"github.com/quarclab/quarc/recording"
	"golang.org/x/exp/slices"
)

// Reader is the read-only view shared by [Circuit] and [ImmutableCircuit].
// Depth analysis, combination and equality operate uniformly over either form
// through this interface.
type Reader interface {
	// QubitCount returns the number of qubits, fixed for the circuit's lifetime.
	QubitCount() int
	// CbitCount returns the number of classical bits, fixed for the circuit's
	// lifetime.
	CbitCount() int
	// Gates returns the ordered gate sequence without copying. Callers must
	// treat the returned slice and its gates as read-only.
	Gates() []Gate
	// GateCount returns the length of the gate sequence.
	GateCount() int
	// Depth returns the length of the longest wire-dependency chain.
	Depth() int

	storageRef() *storage
}

var cowRecorder = recording.Recordable("quarc/circuit", "copyOnWrite")

// Circuit is a mutable quantum circuit, exclusively owned by its creator.
//
// A Circuit is NOT safe for concurrent mutation; external synchronization is
// the caller's responsibility when a builder is shared across goroutines.
// Snapshots obtained from Freeze are safe for any number of concurrent
// readers.
type Circuit struct {
	st *storage

	// shared is set by Freeze: the storage is then also referenced by at
	// least one ImmutableCircuit and must be cloned before the next mutation.
	shared bool
}

// NewCircuit returns a mutable circuit over nbQubits qubits (at least 1) and
// nbCbits classical bits (at least 0), holding the given initial gates.
// Initial gates are validated in order against the declared counts; the first
// invalid gate fails the whole construction with its position in the error.
func NewCircuit(nbQubits, nbCbits int, gates ...Gate) (*Circuit, error) {
	st, err := newStorage(nbQubits, nbCbits)
	if err != nil {
		return nil, err
	}
	for i, g := range gates {
		if err := st.validateGate(g); err != nil {
			return nil, fmt.Errorf("initial gate %d: %w", i, err)
		}
	}
	st.gates = append(st.gates, gates...)
	return &Circuit{st: st}, nil
}

func (c *Circuit) QubitCount() int { return c.st.nbQubits }
func (c *Circuit) CbitCount() int  { return c.st.nbCbits }
func (c *Circuit) GateCount() int  { return len(c.st.gates) }
func (c *Circuit) Depth() int      { return c.st.depth() }

// Gates returns the ordered gate sequence without copying. The returned slice
// aliases the circuit's storage and must be treated as read-only; it is only
// valid until the next mutation of the circuit.
func (c *Circuit) Gates() []Gate { return c.st.gates }

func (c *Circuit) storageRef() *storage { return c.st }

// ensureOwned gives the circuit a private storage before a mutation. It is a
// no-op unless the storage was shared out by a previous Freeze.
func (c *Circuit) ensureOwned() {
	if !c.shared {
		return
	}
	nbGates := len(c.st.gates)
	c.st = c.st.clone()
	c.shared = false

	log := logger.Logger()
	log.Trace().Int("nbGates", nbGates).Msg("copy-on-write clone")
	if cowRecorder.Enabled(recording.Debug) {
		stop := cowRecorder.Start()
		cowRecorder.Debug("nbGates", nbGates)
		stop()
	}
}

// Add validates the gate against this circuit's counts and appends it.
// On failure the circuit is unchanged.
func (c *Circuit) Add(g Gate) error {
	if err := c.st.validateGate(g); err != nil {
		return err
	}
	c.ensureOwned()
	c.st.gates = append(c.st.gates, g)
	return nil
}

// AddAt validates the gate and inserts it at position pos, shifting subsequent
// gates. pos must be in [0, GateCount()]; otherwise ErrInvalidGateIndex is
// returned and the circuit is unchanged.
func (c *Circuit) AddAt(g Gate, pos int) error {
	if pos < 0 || pos > len(c.st.gates) {
		return fmt.Errorf("%w: %d with %d gate(s)", ErrInvalidGateIndex, pos, len(c.st.gates))
	}
	if err := c.st.validateGate(g); err != nil {
		return err
	}
	c.ensureOwned()
	c.st.gates = slices.Insert(c.st.gates, pos, g)
	return nil
}

// Extend appends the gates in order. Each gate's indices are validated against
// THIS circuit's counts; no remapping is performed. The batch is all-or-nothing:
// if any gate is invalid, no gate from the batch is applied and the error
// carries the offending gate's position.
func (c *Circuit) Extend(gates []Gate) error {
	for i, g := range gates {
		if err := c.st.validateGate(g); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	if len(gates) == 0 {
		return nil
	}
	c.ensureOwned()
	c.st.gates = append(c.st.gates, gates...)
	return nil
}

// ExtendFrom appends the gate sequence of another circuit. Only the gate list
// of src is consumed; its own qubit and classical bit counts are not
// cross-checked against the receiver's. Index compatibility is the caller's
// contract when merging circuits built over different qubit spaces.
func (c *Circuit) ExtendFrom(src Reader) error {
	return c.Extend(src.Gates())
}

// Measure appends one measurement gate pairing the two index lists
// positionally. The lists must have equal length, entries pairwise distinct,
// qubit indices below QubitCount and classical indices below CbitCount.
func (c *Circuit) Measure(qubits, cbits []int) error {
	g, err := Measurement(qubits, cbits)
	if err != nil {
		return err
	}
	return c.Add(g)
}

// MeasureOne measures a single qubit into a single classical bit.
func (c *Circuit) MeasureOne(qubit, cbit int) error {
	return c.Measure([]int{qubit}, []int{cbit})
}

// Freeze returns an immutable snapshot sharing this circuit's current storage
// without copying. The builder remains usable: its next mutation clones the
// storage, leaving the snapshot (and any previously returned snapshot)
// unaffected.
func (c *Circuit) Freeze() *ImmutableCircuit {
	c.shared = true
	return &ImmutableCircuit{st: c.st}
}

// MutableCopy returns an independently-owned deep copy. Mutating either
// circuit never affects the other.
func (c *Circuit) MutableCopy() *Circuit {
	return &Circuit{st: c.st.clone()}
}

// Combine returns a new mutable circuit equal to a deep copy of this one with
// the gates appended, under the same validation contract as Extend. The
// receiver is never mutated.
func (c *Circuit) Combine(gates []Gate) (*Circuit, error) {
	return combine(c, gates)
}

// CombineCircuit is Combine over another circuit's gate sequence.
func (c *Circuit) CombineCircuit(src Reader) (*Circuit, error) {
	return combine(c, src.Gates())
}

// Equal reports structural equality with another circuit of either form: same
// qubit and classical bit counts and pairwise-equal gate sequences. Gate
// parameters and matrix entries are compared exactly, not by tolerance.
func (c *Circuit) Equal(other Reader) bool {
	return equalReaders(c, other)
}

// Inverse returns a new circuit applying the adjoint of each gate in reverse
// order. It fails with ErrGateNotInvertible if the circuit contains a
// measurement.
func (c *Circuit) Inverse() (*Circuit, error) {
	st, err := inverseStorage(c.st)
	if err != nil {
		return nil, err
	}
	return &Circuit{st: st}, nil
}

func combine(base Reader, gates []Gate) (*Circuit, error) {
	out := &Circuit{st: base.storageRef().clone()}
	if err := out.Extend(gates); err != nil {
		return nil, err
	}
	return out, nil
}

func equalReaders(a, b Reader) bool {
	if a.QubitCount() != b.QubitCount() || a.CbitCount() != b.CbitCount() {
		return false
	}
	ag, bg := a.Gates(), b.Gates()
	if len(ag) != len(bg) {
		return false
	}
	for i := range ag {
		if !ag[i].Equal(bg[i]) {
			return false
		}
	}
	return true
}
