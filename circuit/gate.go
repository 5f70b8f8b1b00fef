package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
)

// GateName identifies a gate variant. All structural validation, depth and
// equality logic dispatches over this tag.
type GateName uint8

const (
	GateUnknown GateName = iota

	// fixed single-qubit gates
	GateIdentity
	GateX
	GateY
	GateZ
	GateH
	GateS
	GateSdag
	GateSqrtX
	GateSqrtXdag
	GateSqrtY
	GateSqrtYdag
	GateT
	GateTdag

	// parameterized single-qubit gates
	GateU1
	GateU2
	GateU3
	GateRX
	GateRY
	GateRZ

	// fixed multi-qubit gates
	GateCNOT
	GateCZ
	GateSWAP
	GateTOFFOLI

	// generic gates
	GateUnitaryMatrix
	GatePauli
	GatePauliRotation

	GateMeasurement

	// placeholders used by ParametricCircuit; they never appear in a bound
	// circuit's gate sequence
	GateParametricRX
	GateParametricRY
	GateParametricRZ
	GateParametricPauliRotation
)

var gateNames = map[GateName]string{
	GateIdentity:                "Identity",
	GateX:                       "X",
	GateY:                       "Y",
	GateZ:                       "Z",
	GateH:                       "H",
	GateS:                       "S",
	GateSdag:                    "Sdag",
	GateSqrtX:                   "SqrtX",
	GateSqrtXdag:                "SqrtXdag",
	GateSqrtY:                   "SqrtY",
	GateSqrtYdag:                "SqrtYdag",
	GateT:                       "T",
	GateTdag:                    "Tdag",
	GateU1:                      "U1",
	GateU2:                      "U2",
	GateU3:                      "U3",
	GateRX:                      "RX",
	GateRY:                      "RY",
	GateRZ:                      "RZ",
	GateCNOT:                    "CNOT",
	GateCZ:                      "CZ",
	GateSWAP:                    "SWAP",
	GateTOFFOLI:                 "TOFFOLI",
	GateUnitaryMatrix:           "UnitaryMatrix",
	GatePauli:                   "Pauli",
	GatePauliRotation:           "PauliRotation",
	GateMeasurement:             "Measurement",
	GateParametricRX:            "ParametricRX",
	GateParametricRY:            "ParametricRY",
	GateParametricRZ:            "ParametricRZ",
	GateParametricPauliRotation: "ParametricPauliRotation",
}

func (n GateName) String() string {
	if s, ok := gateNames[n]; ok {
		return s
	}
	return "Unknown"
}

// PauliID encodes one of the single-qubit Pauli operators used in multi-qubit
// Pauli strings and rotations.
type PauliID uint8

const (
	PauliI PauliID = iota
	PauliX
	PauliY
	PauliZ
)

// Matrix is a square complex matrix, row major. For a gate acting on n target
// qubits the side must be exactly 2^n.
type Matrix [][]complex128

func (m Matrix) clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}

func (m Matrix) equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		// exact complex128 comparison, by contract
		if !slices.Equal(m[i], other[i]) {
			return false
		}
	}
	return true
}

// conjTranspose returns the conjugate transpose of m.
func (m Matrix) conjTranspose() Matrix {
	out := make(Matrix, len(m))
	for i := range out {
		out[i] = make([]complex128, len(m))
	}
	for i, row := range m {
		for j, v := range row {
			out[j][i] = complex(real(v), -imag(v))
		}
	}
	return out
}

// Gate is one operation in a circuit: a variant tagged by Name with
// kind-specific index lists and parameters. A Gate is treated as immutable
// once constructed; the library never modifies a gate in place, and callers
// must not either once the gate has been added to a circuit.
//
// Construction and insertion validate shape only (list lengths, matrix
// dimensions, Pauli identifier range, duplicate indices within the gate).
// Matrices are NOT checked for unitarity; that is the caller's responsibility.
type Gate struct {
	Name             GateName
	TargetIndices    []int
	ControlIndices   []int
	ClassicalIndices []int
	Params           []float64
	PauliIDs         []PauliID
	UnitaryMatrix    Matrix
}

// QubitIndices returns the control indices followed by the target indices.
// The returned slice is freshly allocated.
func (g Gate) QubitIndices() []int {
	out := make([]int, 0, len(g.ControlIndices)+len(g.TargetIndices))
	out = append(out, g.ControlIndices...)
	out = append(out, g.TargetIndices...)
	return out
}

func (g Gate) clone() Gate {
	return Gate{
		Name:             g.Name,
		TargetIndices:    slices.Clone(g.TargetIndices),
		ControlIndices:   slices.Clone(g.ControlIndices),
		ClassicalIndices: slices.Clone(g.ClassicalIndices),
		Params:           slices.Clone(g.Params),
		PauliIDs:         slices.Clone(g.PauliIDs),
		UnitaryMatrix:    g.UnitaryMatrix.clone(),
	}
}

// Equal reports structural equality: same variant tag, same index lists, same
// parameters. Angles and matrix entries are compared exactly (bit-identical
// float values), not by tolerance.
func (g Gate) Equal(other Gate) bool {
	return g.Name == other.Name &&
		slices.Equal(g.TargetIndices, other.TargetIndices) &&
		slices.Equal(g.ControlIndices, other.ControlIndices) &&
		slices.Equal(g.ClassicalIndices, other.ClassicalIndices) &&
		slices.Equal(g.Params, other.Params) &&
		slices.Equal(g.PauliIDs, other.PauliIDs) &&
		g.UnitaryMatrix.equal(other.UnitaryMatrix)
}

// validateShape checks the gate's own structure, independent of any circuit:
// index-list lengths, parameter counts, matrix dimensions, Pauli identifier
// range and duplicate indices within the gate. Qubit and classical bit counts
// are not known here; bound checks happen at insertion.
func (g Gate) validateShape() error {
	switch g.Name {
	case GateIdentity, GateX, GateY, GateZ, GateH,
		GateS, GateSdag, GateSqrtX, GateSqrtXdag, GateSqrtY, GateSqrtYdag,
		GateT, GateTdag:
		if err := wantIndices(g, 1, 0); err != nil {
			return err
		}
	case GateU1, GateRX, GateRY, GateRZ:
		if err := wantIndices(g, 1, 0); err != nil {
			return err
		}
		if err := wantParams(g, 1); err != nil {
			return err
		}
	case GateU2:
		if err := wantIndices(g, 1, 0); err != nil {
			return err
		}
		if err := wantParams(g, 2); err != nil {
			return err
		}
	case GateU3:
		if err := wantIndices(g, 1, 0); err != nil {
			return err
		}
		if err := wantParams(g, 3); err != nil {
			return err
		}
	case GateCNOT, GateCZ:
		if err := wantIndices(g, 1, 1); err != nil {
			return err
		}
	case GateSWAP:
		if err := wantIndices(g, 2, 0); err != nil {
			return err
		}
	case GateTOFFOLI:
		if err := wantIndices(g, 1, 2); err != nil {
			return err
		}
	case GateUnitaryMatrix:
		if len(g.TargetIndices) == 0 {
			return fmt.Errorf("%w: %s gate with empty target list", ErrLengthMismatch, g.Name)
		}
		side := 1 << len(g.TargetIndices)
		if len(g.UnitaryMatrix) != side {
			return fmt.Errorf("%w: matrix has %d rows, want %d for %d target(s)",
				ErrDimensionMismatch, len(g.UnitaryMatrix), side, len(g.TargetIndices))
		}
		for i, row := range g.UnitaryMatrix {
			if len(row) != side {
				return fmt.Errorf("%w: matrix row %d has %d entries, want %d",
					ErrDimensionMismatch, i, len(row), side)
			}
		}
	case GatePauli, GatePauliRotation:
		if len(g.TargetIndices) == 0 {
			return fmt.Errorf("%w: %s gate with empty target list", ErrLengthMismatch, g.Name)
		}
		if len(g.PauliIDs) != len(g.TargetIndices) {
			return fmt.Errorf("%w: %d pauli ids for %d target(s)",
				ErrLengthMismatch, len(g.PauliIDs), len(g.TargetIndices))
		}
		for _, id := range g.PauliIDs {
			if id > PauliZ {
				return fmt.Errorf("%w: %d", ErrInvalidPauliID, id)
			}
		}
		if g.Name == GatePauliRotation {
			if err := wantParams(g, 1); err != nil {
				return err
			}
		}
	case GateMeasurement:
		if len(g.TargetIndices) == 0 {
			return fmt.Errorf("%w: measurement with empty qubit list", ErrLengthMismatch)
		}
		if len(g.ClassicalIndices) != len(g.TargetIndices) {
			return fmt.Errorf("%w: %d qubit(s) measured into %d classical bit(s)",
				ErrLengthMismatch, len(g.TargetIndices), len(g.ClassicalIndices))
		}
		if err := noDuplicates(g.ClassicalIndices, "classical"); err != nil {
			return err
		}
	case GateParametricRX, GateParametricRY, GateParametricRZ:
		if err := wantIndices(g, 1, 0); err != nil {
			return err
		}
	case GateParametricPauliRotation:
		if len(g.TargetIndices) == 0 {
			return fmt.Errorf("%w: %s gate with empty target list", ErrLengthMismatch, g.Name)
		}
		if len(g.PauliIDs) != len(g.TargetIndices) {
			return fmt.Errorf("%w: %d pauli ids for %d target(s)",
				ErrLengthMismatch, len(g.PauliIDs), len(g.TargetIndices))
		}
		for _, id := range g.PauliIDs {
			if id > PauliZ {
				return fmt.Errorf("%w: %d", ErrInvalidPauliID, id)
			}
		}
	default:
		return fmt.Errorf("unknown gate name %d", uint8(g.Name))
	}

	return noDuplicates(g.QubitIndices(), "qubit")
}

func wantIndices(g Gate, targets, controls int) error {
	if len(g.TargetIndices) != targets {
		return fmt.Errorf("%w: %s gate with %d target(s), want %d",
			ErrLengthMismatch, g.Name, len(g.TargetIndices), targets)
	}
	if len(g.ControlIndices) != controls {
		return fmt.Errorf("%w: %s gate with %d control(s), want %d",
			ErrLengthMismatch, g.Name, len(g.ControlIndices), controls)
	}
	return nil
}

func wantParams(g Gate, n int) error {
	if len(g.Params) != n {
		return fmt.Errorf("%w: %s gate with %d parameter(s), want %d",
			ErrLengthMismatch, g.Name, len(g.Params), n)
	}
	return nil
}

// denseIndexLimit bounds the bitset used for duplicate detection; the bitset
// sizes itself to the largest index set in it.
const denseIndexLimit = 1 << 16

// noDuplicates rejects repeated indices within one gate's own index list.
// Negative indices are skipped here; they are rejected by the bound check at
// insertion. Indices at or above denseIndexLimit are tracked in a sparse set
// so they still fail cleanly at the bound check.
func noDuplicates(indices []int, kind string) error {
	var seen bitset.BitSet
	var sparse map[int]struct{}
	for _, i := range indices {
		if i < 0 {
			continue
		}
		if i >= denseIndexLimit {
			if _, ok := sparse[i]; ok {
				return fmt.Errorf("%w: %s index %d", ErrDuplicateIndex, kind, i)
			}
			if sparse == nil {
				sparse = make(map[int]struct{})
			}
			sparse[i] = struct{}{}
			continue
		}
		if seen.Test(uint(i)) {
			return fmt.Errorf("%w: %s index %d", ErrDuplicateIndex, kind, i)
		}
		seen.Set(uint(i))
	}
	return nil
}
