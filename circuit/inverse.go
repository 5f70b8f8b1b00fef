package circuit

import (
	"fmt"
	"math"
)

// InverseGate returns the adjoint of g.
//
//   - Self-inverse gates are returned as-is.
//   - S, T, SqrtX and SqrtY swap with their adjoint variants.
//   - Rotations negate their angles; U2(φ,λ) becomes U3(−π/2,−λ,−φ) and
//     U3(θ,φ,λ) becomes U3(−θ,−λ,−φ).
//   - A unitary-matrix gate gets its conjugate transpose.
//
// Measurement and parametric placeholder gates have no inverse and fail with
// ErrGateNotInvertible.
func InverseGate(g Gate) (Gate, error) {
	switch g.Name {
	case GateIdentity, GateX, GateY, GateZ, GateH,
		GateCNOT, GateCZ, GateSWAP, GateTOFFOLI, GatePauli:
		return g, nil
	case GateS:
		return renamed(g, GateSdag), nil
	case GateSdag:
		return renamed(g, GateS), nil
	case GateT:
		return renamed(g, GateTdag), nil
	case GateTdag:
		return renamed(g, GateT), nil
	case GateSqrtX:
		return renamed(g, GateSqrtXdag), nil
	case GateSqrtXdag:
		return renamed(g, GateSqrtX), nil
	case GateSqrtY:
		return renamed(g, GateSqrtYdag), nil
	case GateSqrtYdag:
		return renamed(g, GateSqrtY), nil
	case GateU1:
		return U1(g.TargetIndices[0], -g.Params[0]), nil
	case GateU2:
		return U3(g.TargetIndices[0], -math.Pi/2, -g.Params[1], -g.Params[0]), nil
	case GateU3:
		return U3(g.TargetIndices[0], -g.Params[0], -g.Params[2], -g.Params[1]), nil
	case GateRX, GateRY, GateRZ, GatePauliRotation:
		inv := g.clone()
		inv.Params[0] = -inv.Params[0]
		return inv, nil
	case GateUnitaryMatrix:
		inv := g.clone()
		inv.UnitaryMatrix = g.UnitaryMatrix.conjTranspose()
		return inv, nil
	default:
		return Gate{}, fmt.Errorf("%w: %s", ErrGateNotInvertible, g.Name)
	}
}

func renamed(g Gate, name GateName) Gate {
	inv := g.clone()
	inv.Name = name
	return inv
}

func inverseStorage(s *storage) (*storage, error) {
	gates := make([]Gate, 0, len(s.gates))
	for i := len(s.gates) - 1; i >= 0; i-- {
		inv, err := InverseGate(s.gates[i])
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		gates = append(gates, inv)
	}
	return &storage{nbQubits: s.nbQubits, nbCbits: s.nbCbits, gates: gates}, nil
}
