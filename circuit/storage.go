package circuit

import (
	"fmt"
)

// storage is the raw container shared by both circuit forms: the fixed qubit
// and classical bit counts plus the ordered gate sequence. Insertion order is
// the execution order.
//
// A storage referenced by at least one ImmutableCircuit is never mutated; the
// owning Circuit clones it before the next mutation instead.
type storage struct {
	nbQubits int
	nbCbits  int
	gates    []Gate
}

func newStorage(nbQubits, nbCbits int) (*storage, error) {
	if nbQubits < 1 {
		return nil, fmt.Errorf("qubit count must be positive, got %d", nbQubits)
	}
	if nbCbits < 0 {
		return nil, fmt.Errorf("classical bit count must be non-negative, got %d", nbCbits)
	}
	return &storage{nbQubits: nbQubits, nbCbits: nbCbits}, nil
}

// validateGate checks the gate's shape and binds its indices to this storage's
// counts. It never mutates the storage.
func (s *storage) validateGate(g Gate) error {
	return validateGateFor(s.nbQubits, s.nbCbits, g)
}

func validateGateFor(nbQubits, nbCbits int, g Gate) error {
	if err := g.validateShape(); err != nil {
		return err
	}
	for _, q := range g.QubitIndices() {
		if q < 0 || q >= nbQubits {
			return fmt.Errorf("%w: qubit index %d with qubit count %d",
				ErrIndexOutOfRange, q, nbQubits)
		}
	}
	for _, c := range g.ClassicalIndices {
		if c < 0 || c >= nbCbits {
			return fmt.Errorf("%w: classical index %d with classical bit count %d",
				ErrIndexOutOfRange, c, nbCbits)
		}
	}
	return nil
}

func (s *storage) clone() *storage {
	gates := make([]Gate, len(s.gates))
	for i, g := range s.gates {
		gates[i] = g.clone()
	}
	return &storage{nbQubits: s.nbQubits, nbCbits: s.nbCbits, gates: gates}
}
