package circuit

import "golang.org/x/exp/slices"

// Factory functions for every gate variant in the catalog. Factories whose
// inputs can violate gate shape (matrix dimensions, parallel list lengths)
// return an error; the rest cannot fail structurally. None of them check the
// gate's indices against a circuit's qubit or classical bit counts — a gate is
// bound to a circuit only at insertion.

func single(name GateName, q int) Gate {
	return Gate{Name: name, TargetIndices: []int{q}}
}

// Identity returns an identity gate on qubit q.
func Identity(q int) Gate { return single(GateIdentity, q) }

// X returns a Pauli-X gate on qubit q.
func X(q int) Gate { return single(GateX, q) }

// Y returns a Pauli-Y gate on qubit q.
func Y(q int) Gate { return single(GateY, q) }

// Z returns a Pauli-Z gate on qubit q.
func Z(q int) Gate { return single(GateZ, q) }

// H returns a Hadamard gate on qubit q.
func H(q int) Gate { return single(GateH, q) }

// S returns an S gate (square root of Z) on qubit q.
func S(q int) Gate { return single(GateS, q) }

// Sdag returns the adjoint of the S gate on qubit q.
func Sdag(q int) Gate { return single(GateSdag, q) }

// SqrtX returns a square root of X gate on qubit q.
func SqrtX(q int) Gate { return single(GateSqrtX, q) }

// SqrtXdag returns the adjoint of the square root of X gate on qubit q.
func SqrtXdag(q int) Gate { return single(GateSqrtXdag, q) }

// SqrtY returns a square root of Y gate on qubit q.
func SqrtY(q int) Gate { return single(GateSqrtY, q) }

// SqrtYdag returns the adjoint of the square root of Y gate on qubit q.
func SqrtYdag(q int) Gate { return single(GateSqrtYdag, q) }

// T returns a T gate (fourth root of Z) on qubit q.
func T(q int) Gate { return single(GateT, q) }

// Tdag returns the adjoint of the T gate on qubit q.
func Tdag(q int) Gate { return single(GateTdag, q) }

// U1 returns a U1 gate with phase lambda on qubit q.
func U1(q int, lambda float64) Gate {
	return Gate{Name: GateU1, TargetIndices: []int{q}, Params: []float64{lambda}}
}

// U2 returns a U2 gate with angles phi and lambda on qubit q.
func U2(q int, phi, lambda float64) Gate {
	return Gate{Name: GateU2, TargetIndices: []int{q}, Params: []float64{phi, lambda}}
}

// U3 returns a U3 gate with angles theta, phi and lambda on qubit q.
func U3(q int, theta, phi, lambda float64) Gate {
	return Gate{Name: GateU3, TargetIndices: []int{q}, Params: []float64{theta, phi, lambda}}
}

// RX returns a rotation gate around the X axis by angle theta on qubit q.
func RX(q int, theta float64) Gate {
	return Gate{Name: GateRX, TargetIndices: []int{q}, Params: []float64{theta}}
}

// RY returns a rotation gate around the Y axis by angle theta on qubit q.
func RY(q int, theta float64) Gate {
	return Gate{Name: GateRY, TargetIndices: []int{q}, Params: []float64{theta}}
}

// RZ returns a rotation gate around the Z axis by angle theta on qubit q.
func RZ(q int, theta float64) Gate {
	return Gate{Name: GateRZ, TargetIndices: []int{q}, Params: []float64{theta}}
}

// CNOT returns a controlled-NOT gate.
func CNOT(control, target int) Gate {
	return Gate{Name: GateCNOT, ControlIndices: []int{control}, TargetIndices: []int{target}}
}

// CZ returns a controlled-Z gate.
func CZ(control, target int) Gate {
	return Gate{Name: GateCZ, ControlIndices: []int{control}, TargetIndices: []int{target}}
}

// SWAP returns a gate exchanging qubits q1 and q2.
func SWAP(q1, q2 int) Gate {
	return Gate{Name: GateSWAP, TargetIndices: []int{q1, q2}}
}

// Toffoli returns a doubly-controlled NOT gate.
func Toffoli(control1, control2, target int) Gate {
	return Gate{
		Name:           GateTOFFOLI,
		ControlIndices: []int{control1, control2},
		TargetIndices:  []int{target},
	}
}

// UnitaryMatrix returns a gate applying an arbitrary unitary matrix to the
// ordered target qubits. The matrix must be square with side
// 2^len(targets); it is NOT checked for unitarity.
func UnitaryMatrix(targets []int, mat Matrix) (Gate, error) {
	g := Gate{
		Name:          GateUnitaryMatrix,
		TargetIndices: slices.Clone(targets),
		UnitaryMatrix: mat.clone(),
	}
	if err := g.validateShape(); err != nil {
		return Gate{}, err
	}
	return g, nil
}

// SingleQubitUnitaryMatrix returns a unitary-matrix gate on one qubit.
func SingleQubitUnitaryMatrix(q int, mat Matrix) (Gate, error) {
	return UnitaryMatrix([]int{q}, mat)
}

// TwoQubitUnitaryMatrix returns a unitary-matrix gate on two qubits.
func TwoQubitUnitaryMatrix(q1, q2 int, mat Matrix) (Gate, error) {
	return UnitaryMatrix([]int{q1, q2}, mat)
}

// Pauli returns a multi-qubit Pauli gate. pauliIDs is parallel to targets and
// must have the same length.
func Pauli(targets []int, pauliIDs []PauliID) (Gate, error) {
	g := Gate{
		Name:          GatePauli,
		TargetIndices: slices.Clone(targets),
		PauliIDs:      slices.Clone(pauliIDs),
	}
	if err := g.validateShape(); err != nil {
		return Gate{}, err
	}
	return g, nil
}

// PauliRotation returns a rotation gate exp(-i angle P/2) for the multi-qubit
// Pauli operator P described by targets and pauliIDs.
func PauliRotation(targets []int, pauliIDs []PauliID, angle float64) (Gate, error) {
	g := Gate{
		Name:          GatePauliRotation,
		TargetIndices: slices.Clone(targets),
		PauliIDs:      slices.Clone(pauliIDs),
		Params:        []float64{angle},
	}
	if err := g.validateShape(); err != nil {
		return Gate{}, err
	}
	return g, nil
}

// Measurement returns a gate measuring each qubit in qubits into the classical
// bit at the same position of cbits. The two lists must have the same length
// and each list's entries must be pairwise distinct.
func Measurement(qubits, cbits []int) (Gate, error) {
	g := Gate{
		Name:             GateMeasurement,
		TargetIndices:    slices.Clone(qubits),
		ClassicalIndices: slices.Clone(cbits),
	}
	if err := g.validateShape(); err != nil {
		return Gate{}, err
	}
	return g, nil
}
