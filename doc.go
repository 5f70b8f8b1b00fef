// Package quarc provides the core data structures of a quantum-program toolkit:
// quantum circuits as ordered gate sequences over a fixed set of qubits and
// classical bits.
//
// The library is organized around a dual ownership model:
//   - circuit.Circuit is an exclusively-owned, growable builder
//   - circuit.ImmutableCircuit is a frozen, freely-shareable snapshot obtained
//     without copying
//
// Execution backends, optimizers and serializers are external consumers; they
// traverse circuits through read-only accessors and are not part of this module.
package quarc

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
