// Package circuit implements quantum circuits as ordered gate sequences over a
// fixed number of qubits and classical bits.
//
// A circuit exists in one of two forms sharing the same underlying storage:
//
//   - [Circuit] is a mutable builder, exclusively owned by its creator. It
//     grows by appending or inserting validated gates.
//   - [ImmutableCircuit] is a read-only snapshot obtained from [Circuit.Freeze]
//     without copying. Any number of holders may share it concurrently.
//
// Freezing does not invalidate the builder: the first mutation after a freeze
// copies the storage so previously shared snapshots are unaffected
// (copy-on-write).
//
// Gates are tagged variants (see [Gate]); the catalog covers fixed single-,
// two- and three-qubit gates, parameterized rotations, generic unitary
// matrices, multi-qubit Pauli strings and rotations, and measurement. All
// validation happens eagerly at insertion: a failing operation leaves the
// circuit exactly as it was.
package circuit
