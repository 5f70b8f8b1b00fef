package circuit

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Parameter is a handle for one unbound rotation angle of a
// [ParametricCircuit]. Parameters are positional: the n-th parametric gate
// added to a circuit holds the parameter with index n.
type Parameter struct {
	index int
}

// Index returns the parameter's position among the circuit's parameters, in
// the order the parametric gates were added.
func (p Parameter) Index() int { return p.index }

// parametricEntry is one slot of a parametric circuit's sequence: either an
// ordinary gate or a placeholder gate paired with a parameter slot.
type parametricEntry struct {
	gate  Gate
	param int // -1 for an ordinary gate
}

// ParametricCircuit is a mutable circuit whose RX, RY, RZ and PauliRotation
// gates may carry unbound angle parameters, mixed freely with ordinary gates.
// It cannot be frozen directly; [ParametricCircuit.Bind] substitutes concrete
// angles and yields an immutable circuit, leaving the parametric circuit
// reusable for further bindings.
type ParametricCircuit struct {
	nbQubits int
	nbCbits  int
	entries  []parametricEntry
	nbParams int
}

// NewParametricCircuit returns an empty parametric circuit over nbQubits
// qubits (at least 1) and nbCbits classical bits.
func NewParametricCircuit(nbQubits, nbCbits int) (*ParametricCircuit, error) {
	if nbQubits < 1 {
		return nil, fmt.Errorf("qubit count must be positive, got %d", nbQubits)
	}
	if nbCbits < 0 {
		return nil, fmt.Errorf("classical bit count must be non-negative, got %d", nbCbits)
	}
	return &ParametricCircuit{nbQubits: nbQubits, nbCbits: nbCbits}, nil
}

func (c *ParametricCircuit) QubitCount() int { return c.nbQubits }
func (c *ParametricCircuit) CbitCount() int  { return c.nbCbits }
func (c *ParametricCircuit) GateCount() int  { return len(c.entries) }

// ParameterCount returns the number of unbound parameters.
func (c *ParametricCircuit) ParameterCount() int { return c.nbParams }

// Add appends an ordinary (fully bound) gate, under the same validation
// contract as [Circuit.Add].
func (c *ParametricCircuit) Add(g Gate) error {
	if err := validateGateFor(c.nbQubits, c.nbCbits, g); err != nil {
		return err
	}
	c.entries = append(c.entries, parametricEntry{gate: g, param: -1})
	return nil
}

func (c *ParametricCircuit) addParametric(g Gate) (Parameter, error) {
	if err := validateGateFor(c.nbQubits, c.nbCbits, g); err != nil {
		return Parameter{}, err
	}
	p := Parameter{index: c.nbParams}
	c.entries = append(c.entries, parametricEntry{gate: g, param: p.index})
	c.nbParams++
	return p, nil
}

// AddParametricRXGate appends an RX gate with an unbound angle on qubit q and
// returns the handle of the new parameter.
func (c *ParametricCircuit) AddParametricRXGate(q int) (Parameter, error) {
	return c.addParametric(Gate{Name: GateParametricRX, TargetIndices: []int{q}})
}

// AddParametricRYGate appends an RY gate with an unbound angle on qubit q.
func (c *ParametricCircuit) AddParametricRYGate(q int) (Parameter, error) {
	return c.addParametric(Gate{Name: GateParametricRY, TargetIndices: []int{q}})
}

// AddParametricRZGate appends an RZ gate with an unbound angle on qubit q.
func (c *ParametricCircuit) AddParametricRZGate(q int) (Parameter, error) {
	return c.addParametric(Gate{Name: GateParametricRZ, TargetIndices: []int{q}})
}

// AddParametricPauliRotationGate appends a Pauli rotation with an unbound
// angle over the given targets and Pauli identifiers.
func (c *ParametricCircuit) AddParametricPauliRotationGate(targets []int, pauliIDs []PauliID) (Parameter, error) {
	return c.addParametric(Gate{
		Name:          GateParametricPauliRotation,
		TargetIndices: slices.Clone(targets),
		PauliIDs:      slices.Clone(pauliIDs),
	})
}

// Bind substitutes the given angles for the circuit's parameters, positionally,
// and returns the resulting immutable circuit. len(values) must equal
// ParameterCount; otherwise ErrLengthMismatch is returned. The parametric
// circuit is left unchanged and may be bound again with different values.
func (c *ParametricCircuit) Bind(values []float64) (*ImmutableCircuit, error) {
	if len(values) != c.nbParams {
		return nil, fmt.Errorf("%w: %d value(s) for %d parameter(s)",
			ErrLengthMismatch, len(values), c.nbParams)
	}

	gates := make([]Gate, len(c.entries))
	for i, e := range c.entries {
		if e.param < 0 {
			gates[i] = e.gate
			continue
		}
		angle := values[e.param]
		switch e.gate.Name {
		case GateParametricRX:
			gates[i] = RX(e.gate.TargetIndices[0], angle)
		case GateParametricRY:
			gates[i] = RY(e.gate.TargetIndices[0], angle)
		case GateParametricRZ:
			gates[i] = RZ(e.gate.TargetIndices[0], angle)
		case GateParametricPauliRotation:
			gates[i] = Gate{
				Name:          GatePauliRotation,
				TargetIndices: slices.Clone(e.gate.TargetIndices),
				PauliIDs:      slices.Clone(e.gate.PauliIDs),
				Params:        []float64{angle},
			}
		}
	}
	st := &storage{nbQubits: c.nbQubits, nbCbits: c.nbCbits, gates: gates}
	return &ImmutableCircuit{st: st}, nil
}
