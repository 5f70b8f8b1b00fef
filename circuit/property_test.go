package circuit

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propNbQubits = 4

// gateFromSeed maps an arbitrary non-negative int to a valid gate over
// propNbQubits qubits, covering single-, two- and multi-qubit kinds.
func gateFromSeed(seed int) Gate {
	q := seed % propNbQubits
	q2 := (q + 1 + seed/propNbQubits%(propNbQubits-1)) % propNbQubits
	switch seed % 7 {
	case 0:
		return H(q)
	case 1:
		return X(q)
	case 2:
		return RZ(q, float64(seed%97)/13)
	case 3:
		return CNOT(q, q2)
	case 4:
		return SWAP(q, q2)
	case 5:
		return T(q)
	default:
		g, _ := PauliRotation([]int{q, q2}, []PauliID{PauliX, PauliZ}, float64(seed%31)/7)
		return g
	}
}

func gatesFromSeeds(seeds []int) []Gate {
	gates := make([]Gate, len(seeds))
	for i, s := range seeds {
		gates[i] = gateFromSeed(s)
	}
	return gates
}

func genSeeds() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 1<<20))
}

func TestCircuitProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("frozen snapshot is immune to later mutation", prop.ForAll(
		func(seeds []int) bool {
			m, err := NewCircuit(propNbQubits, 0, gatesFromSeeds(seeds)...)
			if err != nil {
				return false
			}
			frozen := m.Freeze()
			before := frozen.GateCount()
			if err := m.AddHGate(0); err != nil {
				return false
			}
			return frozen.GateCount() == before && m.GateCount() == before+1
		},
		genSeeds(),
	))

	properties.Property("mutable copy equals its source and is independent", prop.ForAll(
		func(seeds []int) bool {
			m, err := NewCircuit(propNbQubits, 0, gatesFromSeeds(seeds)...)
			if err != nil {
				return false
			}
			cp := m.MutableCopy()
			if !cp.Equal(m) {
				return false
			}
			if err := cp.AddXGate(1); err != nil {
				return false
			}
			return m.GateCount()+1 == cp.GateCount()
		},
		genSeeds(),
	))

	properties.Property("combine never mutates its receiver", prop.ForAll(
		func(seeds, extra []int) bool {
			m, err := NewCircuit(propNbQubits, 0, gatesFromSeeds(seeds)...)
			if err != nil {
				return false
			}
			frozen := m.Freeze()
			out, err := frozen.Combine(gatesFromSeeds(extra))
			if err != nil {
				return false
			}
			return frozen.GateCount() == len(seeds) &&
				out.GateCount() == len(seeds)+len(extra)
		},
		genSeeds(),
		genSeeds(),
	))

	properties.Property("depth is bounded by gate count and zero iff empty", prop.ForAll(
		func(seeds []int) bool {
			m, err := NewCircuit(propNbQubits, 0, gatesFromSeeds(seeds)...)
			if err != nil {
				return false
			}
			d := m.Depth()
			if len(seeds) == 0 {
				return d == 0
			}
			return d >= 1 && d <= len(seeds)
		},
		genSeeds(),
	))

	properties.Property("depth never decreases when appending", prop.ForAll(
		func(seeds []int, extraSeed int) bool {
			m, err := NewCircuit(propNbQubits, 0, gatesFromSeeds(seeds)...)
			if err != nil {
				return false
			}
			before := m.Depth()
			if err := m.Add(gateFromSeed(extraSeed)); err != nil {
				return false
			}
			after := m.Depth()
			return after >= before && after <= before+1
		},
		genSeeds(),
		gen.IntRange(0, 1<<20),
	))

	properties.Property("inverse of inverse round-trips", prop.ForAll(
		func(seeds []int) bool {
			m, err := NewCircuit(propNbQubits, 0, gatesFromSeeds(seeds)...)
			if err != nil {
				return false
			}
			inv, err := m.Inverse()
			if err != nil {
				return false
			}
			back, err := inv.Inverse()
			if err != nil {
				return false
			}
			return back.Equal(m)
		},
		genSeeds(),
	))

	properties.Property("failed extend leaves the circuit unchanged", prop.ForAll(
		func(seeds, extra []int) bool {
			m, err := NewCircuit(propNbQubits, 0, gatesFromSeeds(seeds)...)
			if err != nil {
				return false
			}
			// poison the batch with an out-of-range gate
			batch := append(gatesFromSeeds(extra), X(propNbQubits))
			if err := m.Extend(batch); err == nil {
				return false
			}
			return m.GateCount() == len(seeds)
		},
		genSeeds(),
		genSeeds(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
